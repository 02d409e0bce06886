package health

import (
	"context"
	"log/slog"
	"time"

	"github.com/deanos-app/deanos-jobs/app/snapshot"
)

// SyncJob pulls the trailing N-day window from every Oura endpoint, merges
// the per-day partial records and writes oura-data.json. Endpoint failures
// are isolated: a failing endpoint contributes zero rows and the rest of
// the merge proceeds.
type SyncJob struct {
	client     *Client
	token      string
	days       int
	outputPath string
}

func NewSyncJob(client *Client, token string, days int, outputPath string) *SyncJob {
	return &SyncJob{
		client:     client,
		token:      token,
		days:       days,
		outputPath: outputPath,
	}
}

func (j *SyncJob) Name() string {
	return "oura-sync"
}

func (j *SyncJob) Run(ctx context.Context) error {
	updated := time.Now().UTC().Format(time.RFC3339)

	if j.token == "" {
		slog.Warn("OURA_PAT not configured, writing empty report")
		return snapshot.Write(j.outputPath, map[string]any{
			"updated": updated,
			"error":   "No OURA_PAT configured",
			"data":    nil,
		})
	}

	now := time.Now()
	endDate := now.Format("2006-01-02")
	startDate := now.AddDate(0, 0, -j.days).Format("2006-01-02")

	slog.Info("Fetching Oura data", "start", startDate, "end", endDate, "days", j.days)

	// Source order is significant: batches fold in MergeOrder, so a later
	// group would win a shared field group for the same date.
	batches := []GroupBatch{
		SleepScoreBatch(j.fetchDailySleep(ctx, startDate, endDate)),
		SleepPeriodBatch(j.fetchSleepPeriods(ctx, startDate, endDate)),
		ReadinessBatch(j.fetchReadiness(ctx, startDate, endDate)),
		ActivityBatch(j.fetchActivity(ctx, startDate, endDate)),
		HeartRateBatch(j.fetchHeartRate(ctx, startDate, endDate)),
		SpO2Batch(j.fetchSpO2(ctx, startDate, endDate)),
	}

	days := SortDays(Merge(SortBatches(batches)))
	workouts := j.fetchWorkouts(ctx, startDate, endDate)

	doc := Document{
		Updated:       updated,
		StartDate:     startDate,
		EndDate:       endDate,
		DaysRequested: j.days,
		DaysReturned:  len(days),
		Workouts:      workouts,
		Days:          days,
	}

	if err := snapshot.Write(j.outputPath, doc); err != nil {
		return err
	}

	slog.Info("Oura data synced", "days", len(days), "workouts", len(workouts))
	return nil
}

func (j *SyncJob) fetchDailySleep(ctx context.Context, startDate, endDate string) []DailySleep {
	rows, err := j.client.DailySleep(ctx, startDate, endDate)
	if err != nil {
		slog.Warn("Failed to fetch sleep scores", "error", err)
		return nil
	}
	return rows
}

func (j *SyncJob) fetchSleepPeriods(ctx context.Context, startDate, endDate string) []SleepPeriod {
	rows, err := j.client.SleepPeriods(ctx, startDate, endDate)
	if err != nil {
		slog.Warn("Failed to fetch sleep details", "error", err)
		return nil
	}
	return rows
}

func (j *SyncJob) fetchReadiness(ctx context.Context, startDate, endDate string) []DailyReadiness {
	rows, err := j.client.DailyReadiness(ctx, startDate, endDate)
	if err != nil {
		slog.Warn("Failed to fetch readiness scores", "error", err)
		return nil
	}
	return rows
}

func (j *SyncJob) fetchActivity(ctx context.Context, startDate, endDate string) []DailyActivity {
	rows, err := j.client.DailyActivity(ctx, startDate, endDate)
	if err != nil {
		slog.Warn("Failed to fetch activity data", "error", err)
		return nil
	}
	return rows
}

func (j *SyncJob) fetchHeartRate(ctx context.Context, startDate, endDate string) []HeartRateSample {
	rows, err := j.client.HeartRate(ctx, startDate, endDate)
	if err != nil {
		slog.Warn("Failed to fetch heart rate data", "error", err)
		return nil
	}
	return rows
}

func (j *SyncJob) fetchWorkouts(ctx context.Context, startDate, endDate string) []Workout {
	rows, err := j.client.Workouts(ctx, startDate, endDate)
	if err != nil {
		slog.Warn("Failed to fetch workouts", "error", err)
		return []Workout{}
	}
	return rows
}

func (j *SyncJob) fetchSpO2(ctx context.Context, startDate, endDate string) []DailySpO2 {
	rows, err := j.client.DailySpO2(ctx, startDate, endDate)
	if err != nil {
		slog.Warn("Failed to fetch SpO2 data", "error", err)
		return nil
	}
	return rows
}
