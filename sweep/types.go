// Package sweep plan types and sentinel errors.
package sweep

import (
	"errors"

	"github.com/lumenvale/seedseq/sequencer"
)

// Sentinel errors for sweep operations.
var (
	// ErrEmptyPlan indicates a plan without at least one sample and one iteration.
	ErrEmptyPlan = errors.New("sweep: plan must include at least one sample and one iteration")
	// ErrOutOfRange indicates a coordinate outside the table's bounds.
	ErrOutOfRange = errors.New("sweep: coordinate outside the table")
	// ErrNilRunFunc indicates Execute was called without a run function.
	ErrNilRunFunc = errors.New("sweep: run function must not be nil")
	// ErrMetricMissing indicates the requested metric appears in no result.
	ErrMetricMissing = errors.New("sweep: metric not present in any result")
)

// Plan describes one sweep: how many parameter samples, how many
// iterations per sample, and the seed-derivation policy.
type Plan struct {
	// Samples is the number of parameter combinations. Must be ≥ 1.
	Samples int
	// Iterations is the number of repetitions per sample. Must be ≥ 1.
	Iterations int
	// Sequencer is the seed-derivation policy for the whole sweep.
	Sequencer sequencer.Options
}

// Validate reports ErrEmptyPlan for non-positive counts and surfaces
// sequencer option errors (e.g. a negative base seed) immediately, at
// sweep-build time, before any simulation work starts.
func (p Plan) Validate() error {
	if p.Samples < 1 || p.Iterations < 1 {
		return ErrEmptyPlan
	}
	return p.Sequencer.Validate()
}

// Runs returns the total number of runs the plan covers.
func (p Plan) Runs() int {
	return p.Samples * p.Iterations
}
