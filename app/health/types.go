package health

// Oura API v2 response types. Each usercollection endpoint returns a
// tabular JSON envelope: {"data": [ ...rows... ]}.

type DailySleep struct {
	Day          string         `json:"day"`
	Score        *int           `json:"score"`
	Contributors map[string]any `json:"contributors"`
}

type SleepPeriod struct {
	Day                string   `json:"day"`
	BedtimeStart       string   `json:"bedtime_start"`
	BedtimeEnd         string   `json:"bedtime_end"`
	TotalSleepDuration *int     `json:"total_sleep_duration"`
	DeepSleepDuration  *int     `json:"deep_sleep_duration"`
	RemSleepDuration   *int     `json:"rem_sleep_duration"`
	LightSleepDuration *int     `json:"light_sleep_duration"`
	AwakeTime          *int     `json:"awake_time"`
	Efficiency         *int     `json:"efficiency"`
	AverageHeartRate   *float64 `json:"average_heart_rate"`
	LowestHeartRate    *int     `json:"lowest_heart_rate"`
	AverageHRV         *int     `json:"average_hrv"`
	AverageBreath      *float64 `json:"average_breath"`
	RestlessPeriods    *int     `json:"restless_periods"`
}

type DailyReadiness struct {
	Day                       string         `json:"day"`
	Score                     *int           `json:"score"`
	TemperatureDeviation      *float64       `json:"temperature_deviation"`
	TemperatureTrendDeviation *float64       `json:"temperature_trend_deviation"`
	Contributors              map[string]any `json:"contributors"`
}

type DailyActivity struct {
	Day                       string         `json:"day"`
	Score                     *int           `json:"score"`
	ActiveCalories            *int           `json:"active_calories"`
	TotalCalories             *int           `json:"total_calories"`
	Steps                     *int           `json:"steps"`
	EquivalentWalkingDistance *int           `json:"equivalent_walking_distance"`
	HighActivityTime          *int           `json:"high_activity_time"`
	MediumActivityTime        *int           `json:"medium_activity_time"`
	LowActivityTime           *int           `json:"low_activity_time"`
	SedentaryTime             *int           `json:"sedentary_time"`
	RestingTime               *int           `json:"resting_time"`
	InactivityAlerts          *int           `json:"inactivity_alerts"`
	MET                       *ActivityMET   `json:"met"`
	Contributors              map[string]any `json:"contributors"`
}

type ActivityMET struct {
	Minutes *float64 `json:"minutes"`
}

type HeartRateSample struct {
	Timestamp string `json:"timestamp"`
	BPM       int    `json:"bpm"`
	Source    string `json:"source"` // awake, sleep, rest, ...
}

type Workout struct {
	Day           string   `json:"date"`
	Activity      string   `json:"activity"`
	Calories      *float64 `json:"calories"`
	Distance      *float64 `json:"distance"`
	StartDatetime string   `json:"start_datetime"`
	EndDatetime   string   `json:"end_datetime"`
	Intensity     string   `json:"intensity"`
	Label         string   `json:"label"`
	Source        string   `json:"source"`
}

type DailySpO2 struct {
	Day            string          `json:"day"`
	SpO2Percentage *SpO2Percentage `json:"spo2_percentage"`
}

type SpO2Percentage struct {
	Average *float64 `json:"average"`
}

// Document is the oura-data.json snapshot.
type Document struct {
	Updated       string       `json:"updated"`
	StartDate     string       `json:"start_date"`
	EndDate       string       `json:"end_date"`
	DaysRequested int          `json:"days_requested"`
	DaysReturned  int          `json:"days_returned"`
	Workouts      []Workout    `json:"workouts"`
	Days          []*DayRecord `json:"days"`
}
