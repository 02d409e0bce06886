package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()

	yamlData := `feeds:
  - name: "Google News"
    url: "https://news.google.com/rss/search?q=dysautonomia"
    type: rss
  - name: "arXiv"
    url: "http://export.arxiv.org/api/query?search_query=all:dysautonomia"
    type: atom
`
	if err := os.WriteFile(filepath.Join(dir, "research.yaml"), []byte(yamlData), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	loader := NewLoader(dir)
	lists, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	list, ok := lists["research"]
	if !ok {
		t.Fatal("Expected list named 'research' derived from filename")
	}
	if len(list.Feeds) != 2 {
		t.Fatalf("Expected 2 feeds, got %d", len(list.Feeds))
	}
	if list.Feeds[0].Name != "Google News" {
		t.Errorf("Expected first feed 'Google News', got '%s'", list.Feeds[0].Name)
	}
	if list.Feeds[1].Type != "atom" {
		t.Errorf("Expected second feed type 'atom', got '%s'", list.Feeds[1].Type)
	}
}

func TestLoadAllMissingDirectory(t *testing.T) {
	loader := NewLoader("/nonexistent/feeds/dir")
	lists, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("Expected no error for missing directory, got: %v", err)
	}
	if len(lists) != 0 {
		t.Errorf("Expected empty map, got %d lists", len(lists))
	}
}

func TestLoadMissingListDegradesToEmpty(t *testing.T) {
	loader := NewLoader(t.TempDir())
	list, err := loader.Load("recipes")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if list.Name != "recipes" {
		t.Errorf("Expected list name 'recipes', got '%s'", list.Name)
	}
	if len(list.Feeds) != 0 {
		t.Errorf("Expected no feeds, got %d", len(list.Feeds))
	}
}

func TestDefaultFeedType(t *testing.T) {
	dir := t.TempDir()
	yamlData := `feeds:
  - name: "Serious Eats"
    url: "https://feeds.feedburner.com/seriouseats/recipes"
`
	if err := os.WriteFile(filepath.Join(dir, "recipes.yml"), []byte(yamlData), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	loader := NewLoader(dir)
	lists, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if lists["recipes"].Feeds[0].Type != "rss" {
		t.Errorf("Expected default type 'rss', got '%s'", lists["recipes"].Feeds[0].Type)
	}
}

func TestValidateRejectsMissingURL(t *testing.T) {
	dir := t.TempDir()
	yamlData := `feeds:
  - name: "Broken"
`
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte(yamlData), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	loader := NewLoader(dir)
	if _, err := loader.LoadAll(); err == nil {
		t.Error("Expected validation error for feed without URL")
	}
}

func TestValidateRejectsUnknownType(t *testing.T) {
	dir := t.TempDir()
	yamlData := `feeds:
  - name: "Broken"
    url: "https://example.com/feed"
    type: jsonfeed
`
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte(yamlData), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	loader := NewLoader(dir)
	if _, err := loader.LoadAll(); err == nil {
		t.Error("Expected validation error for unknown feed type")
	}
}
