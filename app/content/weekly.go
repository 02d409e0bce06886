package content

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/deanos-app/deanos-jobs/app/config"
	"github.com/deanos-app/deanos-jobs/app/feed"
	"github.com/deanos-app/deanos-jobs/app/snapshot"
)

const longevitySourceCount = 5

var recipeKeywords = []string{"recipe", "recipes", "meal", "dinner", "lunch", "breakfast"}

// RecipesDocument is the weekly-recipes.json snapshot. Meals are logged by
// the dashboard user, never generated here, so the field stays empty.
type RecipesDocument struct {
	Updated time.Time   `json:"updated"`
	Meals   []any       `json:"meals"`
	Items   []feed.Item `json:"items"`
}

// WorkoutsDocument is the weekly-workouts.json snapshot.
type WorkoutsDocument struct {
	Updated  time.Time    `json:"updated"`
	Workouts []WorkoutDay `json:"workouts"`
	Sources  []feed.Item  `json:"sources"`
	Fallback bool         `json:"fallback,omitempty"`
}

// WeeklyJob builds the week's recipe suggestions and workout plan:
// keyword-filtered recipe feeds, longevity feeds as background sources, and
// a YouTube-derived plan with a static template fallback.
type WeeklyJob struct {
	collector    *Collector
	loader       *config.Loader
	youtube      *YouTubeClient
	recipesPath  string
	workoutsPath string
}

func NewWeeklyJob(collector *Collector, loader *config.Loader, youtube *YouTubeClient, recipesPath, workoutsPath string) *WeeklyJob {
	return &WeeklyJob{
		collector:    collector,
		loader:       loader,
		youtube:      youtube,
		recipesPath:  recipesPath,
		workoutsPath: workoutsPath,
	}
}

func (j *WeeklyJob) Name() string {
	return "weekly-content"
}

func (j *WeeklyJob) Run(ctx context.Context) error {
	updated := time.Now().UTC()

	recipeItems, err := j.collectRecipes(ctx)
	if err != nil {
		return err
	}

	var previous feed.Snapshot
	snapshot.Load(j.recipesPath, &previous)
	feed.MarkNew(recipeItems, previous.Keys())

	recipesDoc := RecipesDocument{
		Updated: updated,
		Meals:   []any{},
		Items:   recipeItems,
	}
	if recipesDoc.Items == nil {
		recipesDoc.Items = []feed.Item{}
	}
	if err := snapshot.Write(j.recipesPath, recipesDoc); err != nil {
		return err
	}

	longevityItems, err := j.collectLongevity(ctx)
	if err != nil {
		return err
	}
	if len(longevityItems) > longevitySourceCount {
		longevityItems = longevityItems[:longevitySourceCount]
	}

	plan := BuildWeeklyPlan(ctx, j.youtube)
	if plan.Fallback {
		slog.Info("Using workout template fallback")
	}

	workoutsDoc := WorkoutsDocument{
		Updated:  updated,
		Workouts: plan.Workouts,
		Sources:  longevityItems,
		Fallback: plan.Fallback,
	}
	if workoutsDoc.Sources == nil {
		workoutsDoc.Sources = []feed.Item{}
	}
	if err := snapshot.Write(j.workoutsPath, workoutsDoc); err != nil {
		return err
	}

	slog.Info("Weekly content updated",
		"recipes", len(recipesDoc.Items),
		"workout_days", len(workoutsDoc.Workouts),
		"fallback", plan.Fallback)
	return nil
}

func (j *WeeklyJob) collectRecipes(ctx context.Context) ([]feed.Item, error) {
	list, err := j.loader.Load("recipes")
	if err != nil {
		return nil, err
	}

	items := j.collector.Run(ctx, list.Feeds)
	filtered := make([]feed.Item, 0, len(items))
	for _, item := range items {
		if IsRecipeItem(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (j *WeeklyJob) collectLongevity(ctx context.Context) ([]feed.Item, error) {
	list, err := j.loader.Load("longevity")
	if err != nil {
		return nil, err
	}
	return j.collector.Run(ctx, list.Feeds), nil
}

// IsRecipeItem reports whether an item looks like a recipe: a keyword in
// the title, or a keyword path segment in the URL.
func IsRecipeItem(item feed.Item) bool {
	title := strings.ToLower(item.Title)
	url := strings.ToLower(item.URL)
	for _, keyword := range recipeKeywords {
		if strings.Contains(title, keyword) || strings.Contains(url, "/"+keyword) {
			return true
		}
	}
	return false
}
