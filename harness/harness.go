package harness

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultIterations is the number of invocations per trial when none is
// configured.
const DefaultIterations int64 = 1_000_000_000

// Trial is one timed loop using a single dispatch mechanism.
type Trial struct {
	Name  string
	Title string
	Run   func(n int64)
}

// Sink receives progress from a Runner. TrialStarted is called before the
// clock starts and TrialFinished after it stops, so a sink never adds to
// the measured time.
type Sink interface {
	TrialStarted(index int, t Trial) error
	TrialFinished(index int, r Result) error
}

// RunConfig holds parameters for a benchmark run.
type RunConfig struct {
	Iterations int64
	Sink       Sink
}

// Runner executes trials one after another on the calling goroutine.
type Runner struct {
	Logger *slog.Logger
	now    func() time.Time
}

// NewRunner creates a Runner that logs through logger.
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{
		Logger: logger,
		now:    time.Now,
	}
}

// Run executes every trial in order and returns their results. The
// context is only consulted between trials; a trial that has started
// always runs to completion.
func (r *Runner) Run(
	ctx context.Context,
	trials []Trial,
	cfg RunConfig,
) ([]Result, error) {
	if cfg.Iterations < 0 {
		return nil, fmt.Errorf("iterations must be non-negative, got %d",
			cfg.Iterations)
	}

	results := make([]Result, 0, len(trials))

	for i, trial := range trials {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("before trial %s: %w", trial.Name, err)
		}

		result, err := r.runTrial(ctx, i, trial, cfg)
		if err != nil {
			return results, err
		}

		results = append(results, result)
	}

	return results, nil
}

func (r *Runner) runTrial(
	ctx context.Context,
	index int,
	trial Trial,
	cfg RunConfig,
) (Result, error) {
	logger := r.Logger.With(slog.String("trial", trial.Name))

	if cfg.Sink != nil {
		if err := cfg.Sink.TrialStarted(index, trial); err != nil {
			return Result{}, fmt.Errorf("report start of %s: %w", trial.Name, err)
		}
	}

	logger.DebugContext(ctx, "starting trial",
		slog.Int64("iterations", cfg.Iterations),
	)

	start := r.now()
	trial.Run(cfg.Iterations)
	elapsed := r.now().Sub(start)

	if elapsed < 0 {
		elapsed = 0
	}

	logger.DebugContext(ctx, "trial finished",
		slog.Duration("elapsed", elapsed),
	)

	result := Result{
		Name:       trial.Name,
		Title:      trial.Title,
		Iterations: cfg.Iterations,
		Elapsed:    elapsed,
	}

	if cfg.Sink != nil {
		if err := cfg.Sink.TrialFinished(index, result); err != nil {
			return Result{}, fmt.Errorf("report result of %s: %w", trial.Name, err)
		}
	}

	return result, nil
}
