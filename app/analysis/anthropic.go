package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deanos-app/deanos-jobs/app/fetch"
)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"
	anthropicModel       = "claude-sonnet-4-20250514"
	anthropicMaxTokens   = 1500
)

// AnthropicClient calls the Anthropic messages API.
type AnthropicClient struct {
	fetcher *fetch.Client
	apiKey  string
	baseURL string
}

func NewAnthropicClient(fetcher *fetch.Client, apiKey string) *AnthropicClient {
	return &AnthropicClient{
		fetcher: fetcher,
		apiKey:  apiKey,
		baseURL: anthropicMessagesURL,
	}
}

// SetBaseURL overrides the messages endpoint, for tests.
func (c *AnthropicClient) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// Complete sends a single-turn prompt and returns the text of the first
// content block in the response.
func (c *AnthropicClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("no API key configured")
	}

	headers := map[string]string{
		"x-api-key":         c.apiKey,
		"anthropic-version": anthropicVersion,
		"Content-Type":      "application/json",
	}
	body := map[string]any{
		"model":      anthropicModel,
		"max_tokens": anthropicMaxTokens,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}

	data, err := c.fetcher.Post(ctx, c.baseURL, headers, body)
	if err != nil {
		return "", err
	}

	var resp struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(resp.Content) == 0 || resp.Content[0].Text == "" {
		return "", fmt.Errorf("empty response")
	}
	return resp.Content[0].Text, nil
}
