package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Job is a single dashboard sync job. Run degrades gracefully on source
// failures and returns an error only when the output snapshot cannot be
// written.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

const jobTimeout = 5 * time.Minute

// Runner executes jobs sequentially. A failing job does not stop the
// jobs after it.
type Runner struct {
	jobs []Job
}

func NewRunner(jobs ...Job) *Runner {
	return &Runner{jobs: jobs}
}

// Run executes the registered jobs in order. When names is non-empty
// only the named jobs run; an unknown name is an error. The returned
// error joins the failures of all jobs that could not write their
// snapshot.
func (r *Runner) Run(ctx context.Context, names ...string) error {
	selected, err := r.selectJobs(names)
	if err != nil {
		return err
	}

	var failures []error
	for _, job := range selected {
		if err := r.runJob(ctx, job); err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", job.Name(), err))
		}
	}
	return errors.Join(failures...)
}

func (r *Runner) selectJobs(names []string) ([]Job, error) {
	if len(names) == 0 {
		return r.jobs, nil
	}

	byName := make(map[string]Job, len(r.jobs))
	for _, job := range r.jobs {
		byName[job.Name()] = job
	}

	selected := make([]Job, 0, len(names))
	for _, name := range names {
		job, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown job: %s", name)
		}
		selected = append(selected, job)
	}
	return selected, nil
}

func (r *Runner) runJob(ctx context.Context, job Job) error {
	jobCtx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	slog.Info("Job started", "job", job.Name())
	startedAt := time.Now()

	err := job.Run(jobCtx)
	duration := time.Since(startedAt)

	if err != nil {
		slog.Error("Job failed", "job", job.Name(), "duration", duration.Round(time.Millisecond).String(), "error", err)
		return err
	}

	slog.Info("Job completed", "job", job.Name(), "duration", duration.Round(time.Millisecond).String())
	return nil
}
