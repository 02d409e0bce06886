package feed

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mmcdole/gofeed"
)

type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run parses a raw feed payload (RSS or Atom) into canonical items. Items
// missing a non-empty title or link are dropped, not reported. A structural
// parse failure is returned to the caller, which treats the source as
// contributing zero items.
func (p *Parser) Run(data []byte, source string) ([]Item, error) {
	parsed, err := p.gofeedParser.Parse(bytes.NewReader(Sanitize(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]Item, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		title := strings.TrimSpace(entry.Title)
		link := strings.TrimSpace(entry.Link)
		if title == "" || link == "" {
			continue
		}

		items = append(items, Item{
			Title:     title,
			URL:       link,
			Source:    source,
			Published: p.publishedAt(entry),
		})
	}

	return items, nil
}

func (p *Parser) publishedAt(entry *gofeed.Item) *time.Time {
	if entry.PublishedParsed != nil {
		t := entry.PublishedParsed.UTC()
		return &t
	}
	if entry.UpdatedParsed != nil {
		t := entry.UpdatedParsed.UTC()
		return &t
	}
	if t := ParseDate(entry.Published); t != nil {
		return t
	}
	return ParseDate(entry.Updated)
}

// Sanitize strips bytes outside the allowed XML character set (tab, newline,
// carriage return, printable-or-above). Upstream feed providers are observed
// to emit invalid markup bytes that break structural parsing.
func Sanitize(data []byte) []byte {
	cleaned := make([]byte, 0, len(data))
	for _, b := range data {
		if b == '\t' || b == '\n' || b == '\r' || b >= 0x20 {
			cleaned = append(cleaned, b)
		}
	}
	return cleaned
}

var rfc822Layouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
}

// ParseDate accepts an RFC-822-style date string or an ISO-8601 string,
// tried in that order. A timestamp without explicit zone information is
// assumed UTC; the result is always normalized to UTC. Unparseable or
// absent input yields nil, never an error.
func ParseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	for _, layout := range rfc822Layouts {
		if t, err := time.Parse(layout, value); err == nil {
			utc := t.UTC()
			return &utc
		}
	}

	if t, err := dateparse.ParseIn(value, time.UTC); err == nil {
		utc := t.UTC()
		return &utc
	}

	return nil
}
