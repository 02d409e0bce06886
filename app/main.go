package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/deanos-app/deanos-jobs/app/analysis"
	"github.com/deanos-app/deanos-jobs/app/cfg"
	"github.com/deanos-app/deanos-jobs/app/config"
	"github.com/deanos-app/deanos-jobs/app/content"
	"github.com/deanos-app/deanos-jobs/app/fetch"
	"github.com/deanos-app/deanos-jobs/app/health"
	"github.com/deanos-app/deanos-jobs/app/jobs"
)

func main() {
	// Credentials usually live in a local .env file. Missing file is fine,
	// the environment may already be populated.
	_ = godotenv.Load()

	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was requested
		return
	}

	setupLogger(appCfg.Debug)

	slog.Info("Starting DeanOS sync jobs", "version", appCfg.Version, "output_dir", appCfg.OutputDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := jobs.NewRunner(buildJobs(appCfg)...)

	if err := runner.Run(ctx, appCfg.Jobs...); err != nil {
		slog.Error("Sync run finished with failures", "error", err)
		os.Exit(1)
	}

	slog.Info("Sync run completed")
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func buildJobs(appCfg *cfg.Cfg) []jobs.Job {
	fetcher := fetch.NewClient(appCfg.UserAgent, time.Duration(appCfg.Timeout)*time.Second)
	loader := config.NewLoader(appCfg.FeedsDir)
	collector := content.NewCollector(fetcher)

	out := func(name string) string {
		return filepath.Join(appCfg.OutputDir, name)
	}

	return []jobs.Job{
		health.NewSyncJob(
			health.NewClient(fetcher, appCfg.OuraToken),
			appCfg.OuraToken,
			appCfg.OuraDays,
			out("oura-data.json"),
		),
		content.NewResearchJob(collector, loader, out("research-feed.json")),
		content.NewWeeklyJob(
			collector,
			loader,
			content.NewYouTubeClient(fetcher, appCfg.YoutubeAPIKey),
			out("weekly-recipes.json"),
			out("weekly-workouts.json"),
		),
		content.NewGoodreadsJob(fetcher, appCfg.GoodreadsUserID, appCfg.GoodreadsRSSKey, out("goodreads-feed.json")),
		analysis.NewNutritionJob(
			analysis.NewGistClient(fetcher, appCfg.GithubToken),
			analysis.NewAnthropicClient(fetcher, appCfg.AnthropicAPIKey),
			appCfg.GistID,
			out("nutrition-report.json"),
		),
	}
}
