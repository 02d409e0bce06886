package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Output and feed configuration
	OutputDir string `long:"output-dir" env:"OUTPUT_DIR" default:"./public/data" description:"Directory the snapshot documents are written to"`
	FeedsDir  string `long:"feeds-dir" env:"FEEDS_DIR" default:"./feeds" description:"Directory containing feed list configuration files"`

	// Source credentials
	OuraToken       string `long:"oura-token" env:"OURA_PAT" description:"Oura personal access token"`
	GistID          string `long:"gist-id" env:"GIST_ID" description:"GitHub Gist ID holding meal logs"`
	GithubToken     string `long:"github-token" env:"GITHUB_TOKEN" description:"GitHub token for gist access"`
	AnthropicAPIKey string `long:"anthropic-api-key" env:"ANTHROPIC_API_KEY" description:"Anthropic API key for nutrition analysis"`
	YoutubeAPIKey   string `long:"youtube-api-key" env:"YOUTUBE_API_KEY" description:"YouTube Data API key for workout video search"`
	GoodreadsUserID string `long:"goodreads-user-id" env:"GOODREADS_USER_ID" description:"Goodreads user ID"`
	GoodreadsRSSKey string `long:"goodreads-rss-key" env:"GOODREADS_RSS_KEY" description:"Goodreads RSS shelf key"`

	// HTTP client settings
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"DeanOS Sync/1.0" description:"User agent string for HTTP requests"`
	Timeout   int    `long:"timeout" env:"HTTP_TIMEOUT" default:"30" description:"Per-request HTTP timeout in seconds"`

	// Oura fetch window
	OuraDays int `long:"oura-days" env:"OURA_DAYS" default:"90" description:"Number of trailing days to fetch from the Oura API"`

	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	args, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		OutputDir:       raw.OutputDir,
		FeedsDir:        raw.FeedsDir,
		OuraToken:       raw.OuraToken,
		GistID:          raw.GistID,
		GithubToken:     raw.GithubToken,
		AnthropicAPIKey: raw.AnthropicAPIKey,
		YoutubeAPIKey:   raw.YoutubeAPIKey,
		GoodreadsUserID: raw.GoodreadsUserID,
		GoodreadsRSSKey: raw.GoodreadsRSSKey,
		UserAgent:       raw.UserAgent,
		Timeout:         raw.Timeout,
		OuraDays:        raw.OuraDays,
		Debug:           raw.Debug,
		Version:         GetVersion(),
		Jobs:            args,
	}

	return cfg, nil
}
