package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/deanos-app/deanos-jobs/app/feed"
	"github.com/deanos-app/deanos-jobs/app/fetch"
)

const youtubeSearchURL = "https://www.googleapis.com/youtube/v3/search"

// ErrNoAPIKey reports that the YouTube source is unavailable because no
// API key is configured.
var ErrNoAPIKey = errors.New("missing YOUTUBE_API_KEY")

// YouTubeClient is the source adapter for the YouTube Data API search
// endpoint. Results are mapped into canonical items so the plan builder
// can treat them like any other source.
type YouTubeClient struct {
	fetcher *fetch.Client
	apiKey  string
	baseURL string
}

func NewYouTubeClient(fetcher *fetch.Client, apiKey string) *YouTubeClient {
	return &YouTubeClient{
		fetcher: fetcher,
		apiKey:  apiKey,
		baseURL: youtubeSearchURL,
	}
}

// SetBaseURL overrides the search endpoint, for tests.
func (c *YouTubeClient) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

func (c *YouTubeClient) Search(ctx context.Context, query string, maxResults int) ([]feed.Item, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))
	params.Set("q", query)
	params.Set("key", c.apiKey)

	data, err := c.fetcher.Get(ctx, c.baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var resp struct {
		Items []struct {
			ID struct {
				VideoID string `json:"videoId"`
			} `json:"id"`
			Snippet struct {
				Title       string `json:"title"`
				PublishedAt string `json:"publishedAt"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	videos := make([]feed.Item, 0, len(resp.Items))
	for _, item := range resp.Items {
		title := strings.TrimSpace(item.Snippet.Title)
		if item.ID.VideoID == "" || title == "" {
			continue
		}
		videos = append(videos, feed.Item{
			Title:     title,
			URL:       "https://www.youtube.com/watch?v=" + item.ID.VideoID,
			Source:    "YouTube",
			Published: feed.ParseDate(item.Snippet.PublishedAt),
		})
	}
	return videos, nil
}
