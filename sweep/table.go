// Package sweep - seed table construction.
//
// Build is the single-threaded pre-computation phase: it owns the
// sequencer's root generator exclusively, derives every seed in the
// documented stable order, and returns a Table that is immutable from
// then on. Workers read the frozen table without synchronization.
package sweep

import "github.com/lumenvale/seedseq/sequencer"

// Table holds one DerivedSeed per run, frozen after Build. All methods
// are read-only and safe for concurrent use.
type Table struct {
	samples      int
	iterations   int
	reproducible bool
	randomized   bool
	seeds        []sequencer.DerivedSeed // row-major: sample*iterations + iteration
}

// Build validates p, derives all seeds sequentially, and freezes them.
//
// Enumeration order is row-major ascending (sample, iteration). The
// order is part of the reproducibility contract: replaying the same
// Plan reproduces the same Table bit-for-bit (given a base seed).
//
// Complexity: O(Runs) time and memory.
func Build(p Plan) (*Table, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	seq, err := sequencer.New(p.Sequencer)
	if err != nil {
		return nil, err
	}

	seeds := make([]sequencer.DerivedSeed, 0, p.Runs())
	for sample := 0; sample < p.Samples; sample++ {
		for iter := 0; iter < p.Iterations; iter++ {
			seed, derr := seq.DeriveSeed(sequencer.RunCoordinate{Sample: sample, Iteration: iter})
			if derr != nil {
				return nil, derr
			}
			seeds = append(seeds, seed)
		}
	}

	return &Table{
		samples:      p.Samples,
		iterations:   p.Iterations,
		reproducible: seq.Reproducible(),
		randomized:   seq.Randomized(),
		seeds:        seeds,
	}, nil
}

// Samples returns the number of parameter samples in the table.
func (t *Table) Samples() int { return t.samples }

// Iterations returns the number of iterations per sample.
func (t *Table) Iterations() int { return t.iterations }

// Len returns the total number of runs.
func (t *Table) Len() int { return len(t.seeds) }

// Reproducible reports whether a base seed backs the table.
func (t *Table) Reproducible() bool { return t.reproducible }

// Randomized reports whether iterations received distinct seeds.
func (t *Table) Randomized() bool { return t.randomized }

// index maps a coordinate to its row-major slot, or ErrOutOfRange.
func (t *Table) index(c sequencer.RunCoordinate) (int, error) {
	if c.Sample < 0 || c.Sample >= t.samples || c.Iteration < 0 || c.Iteration >= t.iterations {
		return 0, ErrOutOfRange
	}
	return c.Sample*t.iterations + c.Iteration, nil
}

// Seed returns the frozen DerivedSeed for coordinate c.
func (t *Table) Seed(c sequencer.RunCoordinate) (sequencer.DerivedSeed, error) {
	idx, err := t.index(c)
	if err != nil {
		return sequencer.DerivedSeed{}, err
	}
	return t.seeds[idx], nil
}

// Streams materializes a fresh stream pair for coordinate c. Every call
// returns generators at the start of the run's sequences; streams are
// per-run and must not outlive the run.
func (t *Table) Streams(c sequencer.RunCoordinate) (sequencer.Streams, error) {
	seed, err := t.Seed(c)
	if err != nil {
		return sequencer.Streams{}, err
	}
	return sequencer.Materialize(seed), nil
}

// Coordinates enumerates every run coordinate in the table's row-major
// order — the same order Build derived the seeds and Execute reports
// results.
func (t *Table) Coordinates() []sequencer.RunCoordinate {
	coords := make([]sequencer.RunCoordinate, 0, len(t.seeds))
	for sample := 0; sample < t.samples; sample++ {
		for iter := 0; iter < t.iterations; iter++ {
			coords = append(coords, sequencer.RunCoordinate{Sample: sample, Iteration: iter})
		}
	}
	return coords
}
