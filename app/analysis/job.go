package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/deanos-app/deanos-jobs/app/snapshot"
)

// Analysis is the structured output the model is asked to produce.
type Analysis struct {
	Strengths   []string `json:"strengths"`
	Gaps        []string `json:"gaps"`
	Suggestions []string `json:"suggestions"`
}

// Report is the nutrition-report.json snapshot.
type Report struct {
	Updated       time.Time `json:"updated"`
	WeekOf        string    `json:"weekOf"`
	Analysis      *Analysis `json:"analysis"`
	MealsAnalyzed int       `json:"mealsAnalyzed,omitempty"`
	Fallback      bool      `json:"fallback,omitempty"`
	Error         string    `json:"error,omitempty"`
}

// NutritionJob fetches the week's meal logs from a gist, asks the model
// for a structured review and writes the nutrition report snapshot.
type NutritionJob struct {
	gist       *GistClient
	llm        *AnthropicClient
	gistID     string
	outputPath string
}

func NewNutritionJob(gist *GistClient, llm *AnthropicClient, gistID string, outputPath string) *NutritionJob {
	return &NutritionJob{
		gist:       gist,
		llm:        llm,
		gistID:     gistID,
		outputPath: outputPath,
	}
}

func (j *NutritionJob) Name() string {
	return "nutrition"
}

func (j *NutritionJob) Run(ctx context.Context) error {
	updated := time.Now().UTC()

	if j.gistID == "" {
		slog.Warn("Nutrition job skipped", "reason", "no gist ID configured")
		return snapshot.Write(j.outputPath, Report{
			Updated: updated,
			Error:   "No GIST_ID configured",
		})
	}

	week, err := j.gist.MealLogs(ctx, j.gistID)
	if err != nil {
		slog.Warn("Failed to fetch meal logs", "gist_id", j.gistID, "error", err)
		return snapshot.Write(j.outputPath, Report{
			Updated: updated,
			Error:   "Meal logs unavailable",
		})
	}

	logged := loggedMeals(week)
	if logged == 0 {
		slog.Info("No meals logged this week", "week_of", week.WeekOf)
		return snapshot.Write(j.outputPath, Report{
			Updated:  updated,
			WeekOf:   week.WeekOf,
			Fallback: true,
			Error:    "No meals logged",
		})
	}

	report := Report{
		Updated:       updated,
		WeekOf:        week.WeekOf,
		MealsAnalyzed: logged,
	}

	text, err := j.llm.Complete(ctx, buildPrompt(week))
	if err != nil {
		slog.Warn("Nutrition analysis request failed", "error", err)
		report.Fallback = true
		report.Error = "Analysis unavailable"
		return snapshot.Write(j.outputPath, report)
	}

	analysis, err := ParseAnalysis(text)
	if err != nil {
		slog.Warn("Failed to parse nutrition analysis", "error", err)
		report.Fallback = true
		report.Error = "Analysis unavailable"
		return snapshot.Write(j.outputPath, report)
	}

	report.Analysis = analysis
	slog.Info("Nutrition report written", "week_of", week.WeekOf, "meals_analyzed", logged)
	return snapshot.Write(j.outputPath, report)
}

func loggedMeals(week *MealWeek) int {
	count := 0
	for _, day := range week.Meals {
		for _, entry := range []string{day.Meals.Breakfast, day.Meals.Lunch, day.Meals.Dinner, day.Meals.Snacks} {
			if strings.TrimSpace(entry) != "" {
				count++
			}
		}
	}
	return count
}

func buildPrompt(week *MealWeek) string {
	var b strings.Builder
	b.WriteString("You are a nutritionist reviewing one week of meal logs.\n\n")
	fmt.Fprintf(&b, "Week of %s:\n", week.WeekOf)
	for _, day := range week.Meals {
		fmt.Fprintf(&b, "\n%s (%s):\n", day.Day, day.Date)
		writeMeal(&b, "Breakfast", day.Meals.Breakfast)
		writeMeal(&b, "Lunch", day.Meals.Lunch)
		writeMeal(&b, "Dinner", day.Meals.Dinner)
		writeMeal(&b, "Snacks", day.Meals.Snacks)
	}
	b.WriteString("\nIdentify nutritional strengths, gaps and concrete suggestions for next week. ")
	b.WriteString("Keep every point to one short sentence.\n")
	b.WriteString("Respond with ONLY valid JSON in this exact format:\n")
	b.WriteString(`{"strengths": ["..."], "gaps": ["..."], "suggestions": ["..."]}`)
	return b.String()
}

func writeMeal(b *strings.Builder, label string, entry string) {
	if strings.TrimSpace(entry) == "" {
		return
	}
	fmt.Fprintf(b, "  %s: %s\n", label, entry)
}

// ParseAnalysis decodes the model's response, tolerating surrounding
// prose or markdown fences around the JSON object.
func ParseAnalysis(text string) (*Analysis, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(text[start:end+1]), &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}
	if len(analysis.Strengths) == 0 && len(analysis.Gaps) == 0 && len(analysis.Suggestions) == 0 {
		return nil, fmt.Errorf("analysis has no content")
	}
	return &analysis, nil
}
