package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of feed list configurations
type Loader struct {
	feedsDir string
}

// NewLoader creates a new configuration loader
func NewLoader(feedsDir string) *Loader {
	return &Loader{feedsDir: feedsDir}
}

// LoadAll loads all YAML feed list files from the feeds directory, keyed by
// list name (derived from the filename when the file does not set one).
func (l *Loader) LoadAll() (map[string]*FeedList, error) {
	lists := make(map[string]*FeedList)

	if _, err := os.Stat(l.feedsDir); os.IsNotExist(err) {
		return lists, nil // Return empty map if directory doesn't exist
	}

	files, err := filepath.Glob(filepath.Join(l.feedsDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YAML files: %w", err)
	}

	ymlFiles, err := filepath.Glob(filepath.Join(l.feedsDir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YML files: %w", err)
	}
	files = append(files, ymlFiles...)

	for _, file := range files {
		list, err := l.loadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", file, err)
		}

		if err := l.validate(list); err != nil {
			return nil, fmt.Errorf("invalid feed list %s: %w", file, err)
		}

		lists[list.Name] = list
		slog.Debug("Loaded feed list", "file", file, "name", list.Name, "feeds", len(list.Feeds))
	}

	return lists, nil
}

// Load loads a single named feed list, tolerating its absence: a missing
// list is an empty list, not an error, so a job degrades to zero sources.
func (l *Loader) Load(name string) (*FeedList, error) {
	lists, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	if list, ok := lists[name]; ok {
		return list, nil
	}
	return &FeedList{Name: name}, nil
}

func (l *Loader) loadFile(path string) (*FeedList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var list FeedList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	l.setDefaults(&list, path)

	return &list, nil
}

func (l *Loader) setDefaults(list *FeedList, path string) {
	if list.Name == "" {
		base := filepath.Base(path)
		list.Name = strings.TrimSuffix(strings.TrimSuffix(base, ".yaml"), ".yml")
	}
	for i := range list.Feeds {
		if list.Feeds[i].Type == "" {
			list.Feeds[i].Type = "rss"
		}
	}
}

func (l *Loader) validate(list *FeedList) error {
	for _, feed := range list.Feeds {
		if feed.URL == "" {
			return fmt.Errorf("feed URL is required")
		}
		if feed.Name == "" {
			return fmt.Errorf("feed name is required")
		}
		if feed.Type != "rss" && feed.Type != "atom" {
			return fmt.Errorf("invalid feed type '%s' for %s", feed.Type, feed.Name)
		}
	}
	return nil
}
