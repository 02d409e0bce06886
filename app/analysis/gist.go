package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deanos-app/deanos-jobs/app/fetch"
)

const gistAPIURL = "https://api.github.com/gists/"

// MealWeek is the meal-logs.json document the dashboard syncs into a
// GitHub Gist.
type MealWeek struct {
	WeekOf string    `json:"weekOf"`
	Meals  []MealDay `json:"meals"`
}

type MealDay struct {
	Day   string      `json:"day"`
	Date  string      `json:"date"`
	Meals MealEntries `json:"meals"`
}

type MealEntries struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Snacks    string `json:"snacks"`
}

// GistClient fetches the meal logs gist.
type GistClient struct {
	fetcher *fetch.Client
	token   string
	baseURL string
}

func NewGistClient(fetcher *fetch.Client, token string) *GistClient {
	return &GistClient{
		fetcher: fetcher,
		token:   token,
		baseURL: gistAPIURL,
	}
}

// SetBaseURL overrides the gists API base, for tests.
func (c *GistClient) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// MealLogs fetches the gist and extracts the meal-logs.json file content.
func (c *GistClient) MealLogs(ctx context.Context, gistID string) (*MealWeek, error) {
	headers := map[string]string{
		"Accept": "application/vnd.github.v3+json",
	}
	if c.token != "" {
		headers["Authorization"] = "token " + c.token
	}

	data, err := c.fetcher.GetWithHeaders(ctx, c.baseURL+gistID, headers)
	if err != nil {
		return nil, err
	}

	var gist struct {
		Files map[string]struct {
			Content string `json:"content"`
		} `json:"files"`
	}
	if err := json.Unmarshal(data, &gist); err != nil {
		return nil, fmt.Errorf("failed to decode gist: %w", err)
	}

	content := gist.Files["meal-logs.json"].Content
	if content == "" {
		return nil, fmt.Errorf("no meal-logs.json found in gist")
	}

	var week MealWeek
	if err := json.Unmarshal([]byte(content), &week); err != nil {
		return nil, fmt.Errorf("failed to decode meal logs: %w", err)
	}
	return &week, nil
}
