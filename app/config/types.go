package config

// FeedList is one feed group configuration file (research.yaml,
// recipes.yaml, ...). The declared feed order is significant: sources are
// fetched and merged in this order.
type FeedList struct {
	Name  string `yaml:"name"`
	Feeds []Feed `yaml:"feeds"`
}

// Feed describes a single upstream feed source
type Feed struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	Type string `yaml:"type"` // "rss" or "atom"
}
