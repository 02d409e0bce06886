package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/deanos-app/deanos-jobs/app/config"
	"github.com/deanos-app/deanos-jobs/app/feed"
	"github.com/deanos-app/deanos-jobs/app/fetch"
	"github.com/deanos-app/deanos-jobs/app/snapshot"
)

func writeFeedList(t *testing.T, dir, name, yaml string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(yaml), 0644); err != nil {
		t.Fatalf("Failed to write feed list: %v", err)
	}
}

func TestResearchJobDiffsAgainstPreviousSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Research</title>
    <item>
      <title>X</title>
      <link>https://A/1</link>
    </item>
    <item>
      <title>Y</title>
      <link>https://a/2</link>
    </item>
  </channel>
</rss>`))
	}))
	defer server.Close()

	feedsDir := t.TempDir()
	writeFeedList(t, feedsDir, "research.yaml", fmt.Sprintf("feeds:\n  - name: Research\n    url: %s\n    type: rss\n", server.URL))

	outputPath := filepath.Join(t.TempDir(), "research-feed.json")
	previous := feed.Snapshot{
		Updated: time.Now().UTC(),
		Items:   []feed.Item{{Title: "X", URL: "https://a/1"}},
	}
	if err := snapshot.Write(outputPath, previous); err != nil {
		t.Fatalf("Failed to seed previous snapshot: %v", err)
	}

	job := NewResearchJob(
		NewCollector(fetch.NewClient("test", 5*time.Second)),
		config.NewLoader(feedsDir),
		outputPath,
	)

	if job.Name() != "research-feed" {
		t.Errorf("Expected job name 'research-feed', got '%s'", job.Name())
	}

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	var doc feed.Snapshot
	data, _ := os.ReadFile(outputPath)
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Failed to parse snapshot: %v", err)
	}

	if len(doc.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(doc.Items))
	}

	byURL := map[string]feed.Item{}
	for _, item := range doc.Items {
		byURL[item.URL] = item
	}

	if byURL["https://A/1"].IsNew {
		t.Error("Expected https://A/1 to match previous https://a/1 case-insensitively")
	}
	if !byURL["https://a/2"].IsNew {
		t.Error("Expected https://a/2 to be marked new")
	}
}

func TestResearchJobTruncatesToFifty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0"?><rss version="2.0"><channel><title>R</title>`)
		for i := 0; i < 60; i++ {
			fmt.Fprintf(w, `<item><title>Item %d</title><link>https://a/%d</link></item>`, i, i)
		}
		fmt.Fprint(w, `</channel></rss>`)
	}))
	defer server.Close()

	feedsDir := t.TempDir()
	writeFeedList(t, feedsDir, "research.yaml", fmt.Sprintf("feeds:\n  - name: R\n    url: %s\n", server.URL))

	outputPath := filepath.Join(t.TempDir(), "research-feed.json")
	job := NewResearchJob(
		NewCollector(fetch.NewClient("test", 5*time.Second)),
		config.NewLoader(feedsDir),
		outputPath,
	)

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	var doc feed.Snapshot
	data, _ := os.ReadFile(outputPath)
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Failed to parse snapshot: %v", err)
	}
	if len(doc.Items) != 50 {
		t.Errorf("Expected 50 items, got %d", len(doc.Items))
	}
}

func TestResearchJobAllSourcesFailingStillWrites(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	feedsDir := t.TempDir()
	writeFeedList(t, feedsDir, "research.yaml", fmt.Sprintf("feeds:\n  - name: Down\n    url: %s\n", server.URL))

	outputPath := filepath.Join(t.TempDir(), "research-feed.json")
	job := NewResearchJob(
		NewCollector(fetch.NewClient("test", 5*time.Second)),
		config.NewLoader(feedsDir),
		outputPath,
	)

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Expected failing sources to still produce a snapshot, got: %v", err)
	}

	var doc feed.Snapshot
	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Expected snapshot to be written: %v", err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Failed to parse snapshot: %v", err)
	}
	if doc.Items == nil || len(doc.Items) != 0 {
		t.Errorf("Expected empty items array, got %v", doc.Items)
	}
}
