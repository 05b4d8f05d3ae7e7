package nn

import (
	"fmt"
	"time"
)

// Report holds the diagnostics of one Train call.
type Report struct {
	Converged  bool
	Iterations int
	Cost       float64
	Elapsed    time.Duration
}

// ElapsedSeconds returns Elapsed in fractional seconds.
func (r Report) ElapsedSeconds() float64 {
	return r.Elapsed.Seconds()
}

// String renders the report on one line.
func (r Report) String() string {
	state := "exhausted"
	if r.Converged {
		state = "converged"
	}
	return fmt.Sprintf("%s after %d iterations, cost %.6g, %.3fs",
		state, r.Iterations, r.Cost, r.ElapsedSeconds())
}
