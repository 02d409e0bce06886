package cfg

type Cfg struct {
	// Output and feed configuration
	OutputDir string
	FeedsDir  string

	// Source credentials. All optional: a missing credential disables the
	// source, it never fails startup.
	OuraToken       string
	GistID          string
	GithubToken     string
	AnthropicAPIKey string
	YoutubeAPIKey   string
	GoodreadsUserID string
	GoodreadsRSSKey string

	// HTTP client settings
	UserAgent string
	Timeout   int

	// Oura fetch window
	OuraDays int

	// Application metadata
	Debug   bool
	Version string

	// Positional arguments: names of the jobs to run. Empty means all.
	Jobs []string
}
