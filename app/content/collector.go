package content

import (
	"context"
	"log/slog"

	"github.com/deanos-app/deanos-jobs/app/config"
	"github.com/deanos-app/deanos-jobs/app/feed"
	"github.com/deanos-app/deanos-jobs/app/fetch"
)

// Collector runs the shared fetch → parse → dedupe → sort pipeline over an
// ordered feed list. Every per-feed failure is logged and isolated: the
// feed contributes zero items and collection continues.
type Collector struct {
	fetcher *fetch.Client
	parser  *feed.Parser
}

func NewCollector(fetcher *fetch.Client) *Collector {
	return &Collector{
		fetcher: fetcher,
		parser:  feed.NewParser(),
	}
}

func (c *Collector) Run(ctx context.Context, feeds []config.Feed) []feed.Item {
	var all []feed.Item

	for _, source := range feeds {
		data, err := c.fetcher.Get(ctx, source.URL)
		if err != nil {
			slog.Warn("Failed to fetch feed", "feed", source.Name, "error", err)
			continue
		}

		items, err := c.parser.Run(data, source.Name)
		if err != nil {
			slog.Warn("Failed to parse feed", "feed", source.Name, "error", err)
			continue
		}

		all = append(all, items...)
	}

	deduped := feed.Dedupe(all)
	feed.SortByPublished(deduped)
	return deduped
}
