package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/deanos-app/deanos-jobs/app/fetch"
)

const DefaultBaseURL = "https://api.ouraring.com/v2/usercollection"

// Client is the source adapter for the Oura API v2 usercollection
// endpoints. Each call is one bounded-timeout request; a failure is
// returned to the job, which logs it and treats the endpoint as
// contributing zero rows.
type Client struct {
	fetcher *fetch.Client
	baseURL string
	token   string
}

func NewClient(fetcher *fetch.Client, token string) *Client {
	return &Client{
		fetcher: fetcher,
		baseURL: DefaultBaseURL,
		token:   token,
	}
}

// SetBaseURL overrides the API base URL, for tests.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

func (c *Client) get(ctx context.Context, endpoint, startDate, endDate string, out any) error {
	requestURL := fmt.Sprintf("%s/%s?start_date=%s&end_date=%s",
		c.baseURL, endpoint, url.QueryEscape(startDate), url.QueryEscape(endDate))

	data, err := c.fetcher.GetWithHeaders(ctx, requestURL, map[string]string{
		"Authorization": "Bearer " + c.token,
		"Accept":        "application/json",
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) DailySleep(ctx context.Context, startDate, endDate string) ([]DailySleep, error) {
	var resp struct {
		Data []DailySleep `json:"data"`
	}
	if err := c.get(ctx, "daily_sleep", startDate, endDate, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) SleepPeriods(ctx context.Context, startDate, endDate string) ([]SleepPeriod, error) {
	var resp struct {
		Data []SleepPeriod `json:"data"`
	}
	if err := c.get(ctx, "sleep", startDate, endDate, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) DailyReadiness(ctx context.Context, startDate, endDate string) ([]DailyReadiness, error) {
	var resp struct {
		Data []DailyReadiness `json:"data"`
	}
	if err := c.get(ctx, "daily_readiness", startDate, endDate, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) DailyActivity(ctx context.Context, startDate, endDate string) ([]DailyActivity, error) {
	var resp struct {
		Data []DailyActivity `json:"data"`
	}
	if err := c.get(ctx, "daily_activity", startDate, endDate, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) HeartRate(ctx context.Context, startDate, endDate string) ([]HeartRateSample, error) {
	var resp struct {
		Data []HeartRateSample `json:"data"`
	}
	if err := c.get(ctx, "heartrate", startDate, endDate, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) Workouts(ctx context.Context, startDate, endDate string) ([]Workout, error) {
	var resp struct {
		Data []workoutRow `json:"data"`
	}
	if err := c.get(ctx, "workout", startDate, endDate, &resp); err != nil {
		return nil, err
	}

	workouts := make([]Workout, 0, len(resp.Data))
	for _, row := range resp.Data {
		workouts = append(workouts, Workout{
			Day:           row.Day,
			Activity:      row.Activity,
			Calories:      row.Calories,
			Distance:      row.Distance,
			StartDatetime: row.StartDatetime,
			EndDatetime:   row.EndDatetime,
			Intensity:     row.Intensity,
			Label:         row.Label,
			Source:        row.Source,
		})
	}
	return workouts, nil
}

// workoutRow is the wire shape; the snapshot renames day to date.
type workoutRow struct {
	Day           string   `json:"day"`
	Activity      string   `json:"activity"`
	Calories      *float64 `json:"calories"`
	Distance      *float64 `json:"distance"`
	StartDatetime string   `json:"start_datetime"`
	EndDatetime   string   `json:"end_datetime"`
	Intensity     string   `json:"intensity"`
	Label         string   `json:"label"`
	Source        string   `json:"source"`
}

func (c *Client) DailySpO2(ctx context.Context, startDate, endDate string) ([]DailySpO2, error) {
	var resp struct {
		Data []DailySpO2 `json:"data"`
	}
	if err := c.get(ctx, "daily_spo2", startDate, endDate, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
