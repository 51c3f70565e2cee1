// Package main provides the CLI entry point for callbench, a
// micro-benchmark of Go call dispatch mechanisms.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/weiihann/callbench/harness"
	"github.com/weiihann/callbench/report"
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	root := newRootCmd(logger, level)
	if err := root.Execute(); err != nil {
		logger.Error("benchmark failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	var cfg runConfig

	root := &cobra.Command{
		Use:   "callbench",
		Short: "Micro-benchmark of Go call dispatch mechanisms",
		Long: `Callbench times one billion calls to an empty function through
each of three call mechanisms: an interface method, a func value and a
generic driver over a closure. Each call body is an opaque assembly stub
so the compiler cannot remove the loop.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if cfg.verbose {
				level.Set(slog.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmark(cmd.Context(), logger, cmd.OutOrStdout(), cfg)
		},
	}

	flags := root.Flags()
	flags.Int64VarP(&cfg.iterations, "iterations", "n", harness.DefaultIterations,
		"Calls per trial")
	flags.StringVar(&cfg.format, "format", formatText,
		"Output format: text, markdown, json")
	flags.BoolVar(&cfg.typeErasure, "type-erasure", false,
		"Append the type-erasure trial")
	flags.StringVar(&cfg.profile, "profile", "",
		"Profile the run: cpu, mem, trace")
	flags.StringVar(&cfg.profileDir, "profile-dir", ".",
		"Directory for profile output")

	root.PersistentFlags().BoolVarP(&cfg.verbose, "verbose", "v", false,
		"Enable debug logging")

	root.AddCommand(newListCmd(&cfg))

	return root
}

func newListCmd(cfg *runConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the trials that would run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, trial := range selectTrials(*cfg) {
				if _, err := fmt.Fprintf(w, "%-18s %s\n", trial.Name, trial.Title); err != nil {
					return fmt.Errorf("write trial list: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&cfg.typeErasure, "type-erasure", false,
		"Include the type-erasure trial")

	return cmd
}

const (
	formatText     = "text"
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

type runConfig struct {
	iterations  int64
	format      string
	typeErasure bool
	profile     string
	profileDir  string
	verbose     bool
}

func selectTrials(cfg runConfig) []harness.Trial {
	if cfg.typeErasure {
		return harness.AllTrials()
	}

	return harness.DefaultTrials()
}

func runBenchmark(
	ctx context.Context,
	logger *slog.Logger,
	out io.Writer,
	cfg runConfig,
) error {
	if cfg.iterations < 0 {
		return fmt.Errorf("--iterations must be non-negative, got %d",
			cfg.iterations)
	}

	var sink harness.Sink

	switch cfg.format {
	case formatText:
		sink = report.NewText(out)
	case formatMarkdown, formatJSON:
	default:
		return fmt.Errorf("unknown format %q", cfg.format)
	}

	stop, err := startProfile(logger, cfg.profile, cfg.profileDir)
	if err != nil {
		return err
	}

	trials := selectTrials(cfg)

	logger.InfoContext(ctx, "starting benchmark",
		slog.Int64("iterations", cfg.iterations),
		slog.Int("trials", len(trials)),
		slog.String("format", cfg.format),
	)

	runner := harness.NewRunner(logger)
	results, err := runner.Run(ctx, trials, harness.RunConfig{
		Iterations: cfg.iterations,
		Sink:       sink,
	})

	stop()

	if err != nil {
		return fmt.Errorf("run trials: %w", err)
	}

	switch cfg.format {
	case formatMarkdown:
		if err := report.Generate(out, results); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
	case formatJSON:
		if err := report.GenerateJSON(out, results); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}
	}

	logger.InfoContext(ctx, "benchmark complete")

	return nil
}
