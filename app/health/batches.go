package health

import (
	"math"
)

// Batch builders turn endpoint rows into named metric-group batches. Each
// endpoint writes a disjoint field set, so merged days carry the union.

func SleepScoreBatch(rows []DailySleep) GroupBatch {
	days := make(map[string]Fields, len(rows))
	for _, row := range rows {
		if row.Day == "" {
			continue
		}
		days[row.Day] = Fields{
			"sleep_score":        row.Score,
			"sleep_contributors": row.Contributors,
		}
	}
	return GroupBatch{Group: GroupSleepScore, Days: days}
}

// SleepPeriodBatch keeps the longest sleep period per day (the main sleep,
// not naps) and flattens its detail fields.
func SleepPeriodBatch(rows []SleepPeriod) GroupBatch {
	longest := make(map[string]SleepPeriod, len(rows))
	for _, row := range rows {
		if row.Day == "" {
			continue
		}
		current, ok := longest[row.Day]
		if !ok || duration(row) > duration(current) {
			longest[row.Day] = row
		}
	}

	days := make(map[string]Fields, len(longest))
	for date, row := range longest {
		days[date] = Fields{
			"bedtime_start":       row.BedtimeStart,
			"bedtime_end":         row.BedtimeEnd,
			"total_sleep_seconds": row.TotalSleepDuration,
			"deep_sleep_seconds":  row.DeepSleepDuration,
			"rem_sleep_seconds":   row.RemSleepDuration,
			"light_sleep_seconds": row.LightSleepDuration,
			"awake_seconds":       row.AwakeTime,
			"sleep_efficiency":    row.Efficiency,
			"average_hrv":         row.AverageHRV,
			"lowest_hr":           row.LowestHeartRate,
			"average_hr_sleep":    row.AverageHeartRate,
			"average_breath":      row.AverageBreath,
			"restless_periods":    row.RestlessPeriods,
		}
	}
	return GroupBatch{Group: GroupSleepPeriod, Days: days}
}

func duration(p SleepPeriod) int {
	if p.TotalSleepDuration == nil {
		return 0
	}
	return *p.TotalSleepDuration
}

func ReadinessBatch(rows []DailyReadiness) GroupBatch {
	days := make(map[string]Fields, len(rows))
	for _, row := range rows {
		if row.Day == "" {
			continue
		}
		days[row.Day] = Fields{
			"readiness_score":             row.Score,
			"temperature_deviation":       row.TemperatureDeviation,
			"temperature_trend_deviation": row.TemperatureTrendDeviation,
			"readiness_contributors":      row.Contributors,
		}
	}
	return GroupBatch{Group: GroupReadiness, Days: days}
}

func ActivityBatch(rows []DailyActivity) GroupBatch {
	days := make(map[string]Fields, len(rows))
	for _, row := range rows {
		if row.Day == "" {
			continue
		}
		days[row.Day] = Fields{
			"activity_score":          row.Score,
			"steps":                   row.Steps,
			"active_calories":         row.ActiveCalories,
			"total_calories":          row.TotalCalories,
			"distance_meters":         row.EquivalentWalkingDistance,
			"high_activity_seconds":   row.HighActivityTime,
			"medium_activity_seconds": row.MediumActivityTime,
			"low_activity_seconds":    row.LowActivityTime,
			"sedentary_seconds":       row.SedentaryTime,
			"inactivity_alerts":       row.InactivityAlerts,
			"activity_contributors":   row.Contributors,
		}
	}
	return GroupBatch{Group: GroupActivity, Days: days}
}

// HeartRateBatch aggregates raw heart-rate samples into daily statistics.
// Resting covers the rest and sleep sample sources; awake is its own pool.
func HeartRateBatch(samples []HeartRateSample) GroupBatch {
	type pools struct {
		readings []int
		resting  []int
		awake    []int
	}

	daily := make(map[string]*pools)
	for _, sample := range samples {
		if len(sample.Timestamp) < 10 || sample.BPM == 0 {
			continue
		}
		date := sample.Timestamp[:10]
		p, ok := daily[date]
		if !ok {
			p = &pools{}
			daily[date] = p
		}
		p.readings = append(p.readings, sample.BPM)
		if sample.Source == "rest" || sample.Source == "sleep" {
			p.resting = append(p.resting, sample.BPM)
		}
		if sample.Source == "awake" {
			p.awake = append(p.awake, sample.BPM)
		}
	}

	days := make(map[string]Fields, len(daily))
	for date, p := range daily {
		days[date] = Fields{
			"average_hr": roundedMean(p.readings),
			"min_hr":     minOf(p.readings),
			"max_hr":     maxOf(p.readings),
			"resting_hr": roundedMean(p.resting),
			"awake_hr":   roundedMean(p.awake),
		}
	}
	return GroupBatch{Group: GroupHeartRate, Days: days}
}

func roundedMean(values []int) *int {
	if len(values) == 0 {
		return nil
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	mean := int(math.Round(float64(sum) / float64(len(values))))
	return &mean
}

func minOf(values []int) *int {
	if len(values) == 0 {
		return nil
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return &m
}

func maxOf(values []int) *int {
	if len(values) == 0 {
		return nil
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return &m
}

func SpO2Batch(rows []DailySpO2) GroupBatch {
	days := make(map[string]Fields, len(rows))
	for _, row := range rows {
		if row.Day == "" {
			continue
		}
		var average *float64
		if row.SpO2Percentage != nil {
			average = row.SpO2Percentage.Average
		}
		days[row.Day] = Fields{
			"spo2_average": average,
		}
	}
	return GroupBatch{Group: GroupSpO2, Days: days}
}
