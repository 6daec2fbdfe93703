// Package stats aggregates per-step run statistics for the standalone
// driver's end-of-run summary (spec §6's output-file trailer, generalized
// per SPEC_FULL.md §5).
package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Summary accumulates the timestep series of a run and reports the mean dt
// and ill-event count the driver's output trailer requires.
type Summary struct {
	timesteps []float64
	illEvents int
}

// NewSummary returns an empty Summary.
func NewSummary() *Summary {
	return &Summary{}
}

// Observe records one completed time step's dt.
func (s *Summary) Observe(dt float64) {
	s.timesteps = append(s.timesteps, dt)
}

// SetIllEvents records the engine's cumulative ill-event count at the end
// of the run.
func (s *Summary) SetIllEvents(n int) {
	s.illEvents = n
}

// MeanDt returns the mean of all observed timesteps, using gonum/stat
// rather than a hand-rolled accumulator, matching the pack's convention of
// reaching for gonum for simple descriptive statistics.
func (s *Summary) MeanDt() float64 {
	if len(s.timesteps) == 0 {
		return 0
	}
	return stat.Mean(s.timesteps, nil)
}

// VarianceDt returns the sample variance of observed timesteps.
func (s *Summary) VarianceDt() float64 {
	if len(s.timesteps) < 2 {
		return 0
	}
	return stat.Variance(s.timesteps, nil)
}

// IllEvents returns the recorded ill-event count.
func (s *Summary) IllEvents() int {
	return s.illEvents
}

// TrailerLine formats the standalone driver's output-file trailer in the
// exact form spec §6 requires: " ill events: N mean dt: X".
func (s *Summary) TrailerLine() string {
	return fmt.Sprintf(" ill events: %d mean dt: %g", s.illEvents, s.MeanDt())
}
