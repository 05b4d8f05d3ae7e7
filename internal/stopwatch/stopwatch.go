// Package stopwatch implements tic/toc timing for training runs.
package stopwatch

import "time"

// Stopwatch measures the time elapsed since the last Tic.
type Stopwatch struct {
	now   func() time.Time
	start time.Time
}

// New creates a Stopwatch on the wall clock, started now.
func New() *Stopwatch {
	return NewWithClock(time.Now)
}

// NewWithClock creates a Stopwatch reading time from now.
func NewWithClock(now func() time.Time) *Stopwatch {
	return &Stopwatch{now: now, start: now()}
}

// Tic restarts the stopwatch.
func (s *Stopwatch) Tic() {
	s.start = s.now()
}

// Toc returns the time elapsed since the last Tic.
func (s *Stopwatch) Toc() time.Duration {
	return s.now().Sub(s.start)
}

// Seconds is Toc in fractional seconds.
func (s *Stopwatch) Seconds() float64 {
	return s.Toc().Seconds()
}
