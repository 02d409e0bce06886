package content

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"

	"github.com/deanos-app/deanos-jobs/app/feed"
)

const (
	workoutTypeStrength = "Strength"
	workoutTypeCardio   = "Cardio + Mobility"
)

type WorkoutQuery struct {
	Query string
	Type  string
}

var workoutQueries = []WorkoutQuery{
	{Query: "seated strength workouts", Type: workoutTypeStrength},
	{Query: "machine workouts at gym for longevity", Type: workoutTypeStrength},
	{Query: "POTS friendly seated workout", Type: workoutTypeCardio},
}

type Exercise struct {
	Name  string `json:"name"`
	Sets  string `json:"sets"`
	Video string `json:"video,omitempty"`
}

type WorkoutDay struct {
	Day       string     `json:"day"`
	Type      string     `json:"type"`
	Location  string     `json:"location"`
	Exercises []Exercise `json:"exercises"`
}

// Plan is the weekly workout plan outcome. Fallback records that the
// static template was substituted because no videos could be found, so the
// snapshot keeps that fact visible instead of silently defaulting.
type Plan struct {
	Workouts []WorkoutDay
	Fallback bool
}

// DefaultWeeklyPlan is the static template used when video search yields
// nothing (missing key, API failure, or empty results).
var DefaultWeeklyPlan = []WorkoutDay{
	{
		Day:      "Monday",
		Type:     "Upper Body Strength",
		Location: "LA Fitness",
		Exercises: []Exercise{
			{Name: "Seated Chest Press Machine", Sets: "3x10-12", Video: "https://www.youtube.com/watch?v=xUm0BiZCWlQ"},
			{Name: "Lat Pulldown", Sets: "3x10-12", Video: "https://www.youtube.com/watch?v=CAwf7n6Luuc"},
			{Name: "Seated Shoulder Press Machine", Sets: "3x10-12", Video: "https://www.youtube.com/watch?v=Wqq43dKW1TU"},
			{Name: "Seated Cable Row", Sets: "3x10-12", Video: "https://www.youtube.com/watch?v=GZbfZ033f74"},
			{Name: "Tricep Pushdown", Sets: "3x12-15", Video: "https://www.youtube.com/watch?v=2-LAMcpzODU"},
		},
	},
	{
		Day:      "Wednesday",
		Type:     "Lower Body Strength",
		Location: "LA Fitness",
		Exercises: []Exercise{
			{Name: "Leg Press", Sets: "4x10-12", Video: "https://www.youtube.com/watch?v=IZxyjW7MPJQ"},
			{Name: "Leg Curl Machine", Sets: "3x12-15", Video: "https://www.youtube.com/watch?v=1Tq3QdYUuHs"},
			{Name: "Leg Extension", Sets: "3x12-15", Video: "https://www.youtube.com/watch?v=YyvSfVjQeL0"},
			{Name: "Seated Calf Raise", Sets: "3x15-20", Video: "https://www.youtube.com/watch?v=-M4-G8p8fmc"},
			{Name: "Hip Adductor Machine", Sets: "3x12-15", Video: "https://www.youtube.com/watch?v=2cPwLG3MOLs"},
		},
	},
	{
		Day:      "Friday",
		Type:     "PT Session with Josh",
		Location: "Full Body",
		Exercises: []Exercise{
			{Name: "Personal Training Session", Sets: "Full body, guided by Josh"},
		},
	},
	{
		Day:      "Saturday",
		Type:     workoutTypeCardio,
		Location: "LA Fitness",
		Exercises: []Exercise{
			{Name: "Upright Bike", Sets: "30 min, 90+ RPM, Level 12", Video: "https://www.youtube.com/watch?v=oBFhn-2BrEw"},
			{Name: "Seated Stretch Flow", Sets: "10-12 min, easy pace"},
		},
	},
}

// BuildWeeklyPlan searches YouTube per query table, shuffles the result
// pools and composes a follow-along plan. An empty plan falls back to the
// static template with the fallback fact recorded.
func BuildWeeklyPlan(ctx context.Context, yt *YouTubeClient) Plan {
	pools := map[string][]feed.Item{
		workoutTypeStrength: nil,
		workoutTypeCardio:   nil,
	}

	for _, q := range workoutQueries {
		videos, err := yt.Search(ctx, q.Query, 8)
		if err != nil {
			if errors.Is(err, ErrNoAPIKey) {
				slog.Warn("Missing YOUTUBE_API_KEY, skipping YouTube fetch")
			} else {
				slog.Warn("YouTube search failed", "query", q.Query, "error", err)
			}
			continue
		}
		pools[q.Type] = append(pools[q.Type], videos...)
	}

	rand.Shuffle(len(pools[workoutTypeStrength]), func(i, j int) {
		pools[workoutTypeStrength][i], pools[workoutTypeStrength][j] = pools[workoutTypeStrength][j], pools[workoutTypeStrength][i]
	})
	rand.Shuffle(len(pools[workoutTypeCardio]), func(i, j int) {
		pools[workoutTypeCardio][i], pools[workoutTypeCardio][j] = pools[workoutTypeCardio][j], pools[workoutTypeCardio][i]
	})

	workouts := composePlan(pools[workoutTypeStrength], pools[workoutTypeCardio])
	if len(workouts) == 0 {
		return Plan{Workouts: DefaultWeeklyPlan, Fallback: true}
	}
	return Plan{Workouts: workouts}
}

// composePlan assigns videos from the pools to the week's slots in order:
// three strength days of two videos each, then one cardio day. Days whose
// pool ran dry are omitted.
func composePlan(strength, cardio []feed.Item) []WorkoutDay {
	slots := []struct {
		day   string
		kind  string
		count int
	}{
		{day: "Monday", kind: workoutTypeStrength, count: 2},
		{day: "Wednesday", kind: workoutTypeStrength, count: 2},
		{day: "Friday", kind: workoutTypeStrength, count: 2},
		{day: "Saturday", kind: workoutTypeCardio, count: 2},
	}

	var plan []WorkoutDay
	for _, slot := range slots {
		var pool *[]feed.Item
		if slot.kind == workoutTypeStrength {
			pool = &strength
		} else {
			pool = &cardio
		}

		count := slot.count
		if count > len(*pool) {
			count = len(*pool)
		}
		if count == 0 {
			continue
		}

		selected := (*pool)[:count]
		*pool = (*pool)[count:]

		exercises := make([]Exercise, 0, len(selected))
		for _, video := range selected {
			exercises = append(exercises, Exercise{
				Name:  video.Title,
				Sets:  "Follow along",
				Video: video.URL,
			})
		}

		plan = append(plan, WorkoutDay{
			Day:       slot.day,
			Type:      slot.kind,
			Location:  "YouTube",
			Exercises: exercises,
		})
	}

	return plan
}
