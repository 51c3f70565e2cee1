// Package report formats dispatch benchmark results.
package report

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/bytedance/sonic"
	"github.com/weiihann/callbench/harness"
)

// Text streams a human-readable report as trials run: a header line when
// a trial starts and its total time when it finishes.
type Text struct {
	w io.Writer
}

// NewText returns a Text that writes to w.
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

// TrialStarted implements harness.Sink.
func (t *Text) TrialStarted(index int, trial harness.Trial) error {
	if index > 0 {
		if _, err := fmt.Fprintln(t.w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(t.w, "%d. %s...\n", index+1, trial.Title)

	return err
}

// TrialFinished implements harness.Sink.
func (t *Text) TrialFinished(_ int, r harness.Result) error {
	_, err := fmt.Fprintf(t.w, "   Total time: %.9f seconds\n", r.Seconds())

	return err
}

// Generate writes a markdown comparison table for the given results.
func Generate(w io.Writer, results []harness.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	fastest := findFastest(results)
	ew := &errWriter{w: w}

	fmt.Fprintln(ew, "## Dispatch Benchmark Results")
	fmt.Fprintln(ew)
	fmt.Fprintf(ew, "Iterations per trial: %d\n", results[0].Iterations)
	fmt.Fprintln(ew)

	fmt.Fprintln(ew, "| Trial | Elapsed | ns/call | Relative |")
	fmt.Fprintln(ew, "|-------|---------|---------|----------|")

	for _, r := range results {
		relative := 1.0
		if fastest > 0 && r.Elapsed > 0 {
			relative = float64(r.Elapsed) / float64(fastest)
		}

		fmt.Fprintf(ew, "| %s | %s | %.3f | %.2fx |\n",
			r.Name,
			formatDuration(r.Elapsed),
			r.NsPerCall(),
			relative,
		)
	}

	fmt.Fprintln(ew)

	return ew.err
}

// errWriter keeps the first write error and drops every later write.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	n, err := e.w.Write(p)
	e.err = err

	return n, err
}

// GenerateJSON writes results as JSON to w.
func GenerateJSON(w io.Writer, results []harness.Result) error {
	out, err := sonic.ConfigStd.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	out = append(out, '\n')
	_, err = w.Write(out)

	return err
}

func findFastest(results []harness.Result) time.Duration {
	fastest := time.Duration(math.MaxInt64)
	for _, r := range results {
		if r.Elapsed > 0 && r.Elapsed < fastest {
			fastest = r.Elapsed
		}
	}

	if fastest == math.MaxInt64 {
		return 0
	}

	return fastest
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d)/float64(time.Millisecond))
	}

	return fmt.Sprintf("%.6fs", d.Seconds())
}
