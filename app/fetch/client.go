package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Error is a typed fetch failure for a single source. Callers recover from
// it locally; it never aborts the rest of a run.
type Error struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Client wraps resty with the fixed client identification header and a
// bounded per-request timeout. One attempt per request: failed sources are
// retried on the next scheduled run, not within one.
type Client struct {
	resty *resty.Client
}

func NewClient(userAgent string, timeout time.Duration) *Client {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetRetryCount(0)

	return &Client{resty: client}
}

// Get fetches raw bytes from url.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	return c.GetWithHeaders(ctx, url, nil)
}

// GetWithHeaders fetches raw bytes from url with additional request headers
// (authorization, accept).
func (c *Client) GetWithHeaders(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	req := c.resty.R().SetContext(ctx)
	for k, v := range headers {
		req.SetHeader(k, v)
	}

	resp, err := req.Get(url)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &Error{URL: url, StatusCode: resp.StatusCode()}
	}

	return resp.Body(), nil
}

// Post sends a JSON body and returns the raw response bytes.
func (c *Client) Post(ctx context.Context, url string, headers map[string]string, body any) ([]byte, error) {
	req := c.resty.R().SetContext(ctx).SetBody(body)
	req.SetHeader("Content-Type", "application/json")
	for k, v := range headers {
		req.SetHeader(k, v)
	}

	resp, err := req.Post(url)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &Error{URL: url, StatusCode: resp.StatusCode()}
	}

	return resp.Body(), nil
}
