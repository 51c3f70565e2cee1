// Package harness times dispatch trials and collects their results.
package harness

import "time"

// Result holds the measurement of a single trial.
type Result struct {
	Name       string        `json:"name"`
	Title      string        `json:"title"`
	Iterations int64         `json:"iterations"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

// Seconds returns the elapsed time in seconds.
func (r Result) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// NsPerCall returns the mean cost of one invocation in nanoseconds,
// or zero when the trial made no calls.
func (r Result) NsPerCall() float64 {
	if r.Iterations <= 0 {
		return 0
	}

	return float64(r.Elapsed.Nanoseconds()) / float64(r.Iterations)
}
