package health

import (
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestSleepPeriodBatchKeepsLongestPeriod(t *testing.T) {
	nap := SleepPeriod{
		Day:                "2024-05-01",
		BedtimeStart:       "2024-05-01T14:00:00+00:00",
		TotalSleepDuration: intPtr(3600),
	}
	mainSleep := SleepPeriod{
		Day:                "2024-05-01",
		BedtimeStart:       "2024-04-30T23:00:00+00:00",
		TotalSleepDuration: intPtr(7200),
	}

	batch := SleepPeriodBatch([]SleepPeriod{nap, mainSleep})

	fields := batch.Days["2024-05-01"]
	if fields == nil {
		t.Fatal("Expected fields for 2024-05-01")
	}
	if *fields["total_sleep_seconds"].(*int) != 7200 {
		t.Errorf("Expected longest period (7200s) to win, got %v", fields["total_sleep_seconds"])
	}
	if fields["bedtime_start"] != "2024-04-30T23:00:00+00:00" {
		t.Errorf("Expected longest period's detail fields, got %v", fields["bedtime_start"])
	}
}

func TestSleepPeriodBatchNilDurationLosesToAny(t *testing.T) {
	unknown := SleepPeriod{Day: "2024-05-01", BedtimeStart: "a"}
	short := SleepPeriod{Day: "2024-05-01", BedtimeStart: "b", TotalSleepDuration: intPtr(60)}

	batch := SleepPeriodBatch([]SleepPeriod{unknown, short})

	if batch.Days["2024-05-01"]["bedtime_start"] != "b" {
		t.Error("Expected period with a duration to beat one without")
	}
}

func TestHeartRateBatchAggregation(t *testing.T) {
	samples := []HeartRateSample{
		{Timestamp: "2024-05-01T01:00:00+00:00", BPM: 50, Source: "sleep"},
		{Timestamp: "2024-05-01T02:00:00+00:00", BPM: 54, Source: "rest"},
		{Timestamp: "2024-05-01T10:00:00+00:00", BPM: 90, Source: "awake"},
		{Timestamp: "2024-05-01T11:00:00+00:00", BPM: 110, Source: "awake"},
		{Timestamp: "2024-05-02T01:00:00+00:00", BPM: 48, Source: "sleep"},
	}

	batch := HeartRateBatch(samples)

	day := batch.Days["2024-05-01"]
	if day == nil {
		t.Fatal("Expected fields for 2024-05-01")
	}
	if *day["average_hr"].(*int) != 76 {
		t.Errorf("Expected average_hr 76, got %v", *day["average_hr"].(*int))
	}
	if *day["min_hr"].(*int) != 50 {
		t.Errorf("Expected min_hr 50, got %v", *day["min_hr"].(*int))
	}
	if *day["max_hr"].(*int) != 110 {
		t.Errorf("Expected max_hr 110, got %v", *day["max_hr"].(*int))
	}
	if *day["resting_hr"].(*int) != 52 {
		t.Errorf("Expected resting_hr 52, got %v", *day["resting_hr"].(*int))
	}
	if *day["awake_hr"].(*int) != 100 {
		t.Errorf("Expected awake_hr 100, got %v", *day["awake_hr"].(*int))
	}

	if len(batch.Days) != 2 {
		t.Errorf("Expected 2 days, got %d", len(batch.Days))
	}
}

func TestHeartRateBatchSkipsInvalidSamples(t *testing.T) {
	samples := []HeartRateSample{
		{Timestamp: "", BPM: 60, Source: "rest"},
		{Timestamp: "2024-05-01T01:00:00+00:00", BPM: 0, Source: "rest"},
	}

	batch := HeartRateBatch(samples)
	if len(batch.Days) != 0 {
		t.Errorf("Expected no days from invalid samples, got %d", len(batch.Days))
	}
}

func TestHeartRateBatchNilPoolsYieldNull(t *testing.T) {
	samples := []HeartRateSample{
		{Timestamp: "2024-05-01T01:00:00+00:00", BPM: 50, Source: "sleep"},
	}

	day := HeartRateBatch(samples).Days["2024-05-01"]
	if day["awake_hr"].(*int) != nil {
		t.Error("Expected nil awake_hr when no awake samples exist")
	}
}

func TestSpO2BatchFlattensNestedAverage(t *testing.T) {
	rows := []DailySpO2{
		{Day: "2024-05-01", SpO2Percentage: &SpO2Percentage{Average: floatPtr(97.5)}},
		{Day: "2024-05-02"},
	}

	batch := SpO2Batch(rows)

	if *batch.Days["2024-05-01"]["spo2_average"].(*float64) != 97.5 {
		t.Errorf("Expected 97.5, got %v", batch.Days["2024-05-01"]["spo2_average"])
	}
	if batch.Days["2024-05-02"]["spo2_average"].(*float64) != nil {
		t.Error("Expected nil average when spo2_percentage is absent")
	}
}

func TestSleepScoreBatchSkipsEmptyDay(t *testing.T) {
	batch := SleepScoreBatch([]DailySleep{
		{Day: "", Score: intPtr(80)},
		{Day: "2024-05-01", Score: intPtr(82)},
	})
	if len(batch.Days) != 1 {
		t.Errorf("Expected 1 day, got %d", len(batch.Days))
	}
}
