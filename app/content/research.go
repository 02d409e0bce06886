package content

import (
	"context"
	"log/slog"
	"time"

	"github.com/deanos-app/deanos-jobs/app/config"
	"github.com/deanos-app/deanos-jobs/app/feed"
	"github.com/deanos-app/deanos-jobs/app/snapshot"
)

const researchMaxItems = 50

// ResearchJob aggregates the configured research feeds into
// research-feed.json, flagging items not seen in the previous snapshot.
type ResearchJob struct {
	collector  *Collector
	loader     *config.Loader
	outputPath string
}

func NewResearchJob(collector *Collector, loader *config.Loader, outputPath string) *ResearchJob {
	return &ResearchJob{
		collector:  collector,
		loader:     loader,
		outputPath: outputPath,
	}
}

func (j *ResearchJob) Name() string {
	return "research-feed"
}

func (j *ResearchJob) Run(ctx context.Context) error {
	list, err := j.loader.Load("research")
	if err != nil {
		return err
	}

	items := j.collector.Run(ctx, list.Feeds)

	var previous feed.Snapshot
	snapshot.Load(j.outputPath, &previous)
	feed.MarkNew(items, previous.Keys())

	if len(items) > researchMaxItems {
		items = items[:researchMaxItems]
	}

	doc := feed.Snapshot{
		Updated: time.Now().UTC(),
		Items:   items,
	}
	if doc.Items == nil {
		doc.Items = []feed.Item{}
	}

	if err := snapshot.Write(j.outputPath, doc); err != nil {
		return err
	}

	slog.Info("Research feed updated", "items", len(doc.Items), "feeds", len(list.Feeds))
	return nil
}
