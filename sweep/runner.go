// Package sweep - parallel run dispatch over a frozen table.
//
// The table is read-only by the time Execute starts, so workers share
// nothing mutable: each run gets its own Streams pair and writes its
// Result into a slot no other worker touches.
package sweep

import (
	"context"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lumenvale/seedseq/sequencer"
)

// Run is what a worker receives for one simulation execution: the run's
// identity, its frozen seed, and its freshly materialized streams.
type Run struct {
	// ID identifies this dispatch for result correlation and logging by
	// the caller. It is minted per Execute call, not derived from the
	// seed: re-running a sweep reproduces seeds, not IDs.
	ID uuid.UUID
	// Coordinate locates the run within the sweep.
	Coordinate sequencer.RunCoordinate
	// Seed is the run's DerivedSeed from the frozen table.
	Seed sequencer.DerivedSeed
	// Streams holds the run's two generators. Owned by this run only.
	Streams sequencer.Streams
}

// Result records one completed run and its named metrics.
type Result struct {
	RunID      uuid.UUID
	Coordinate sequencer.RunCoordinate
	Seed       sequencer.DerivedSeed
	Metrics    map[string]float64
}

// RunFunc executes a single simulation run: consume the run's streams,
// return named metrics. Implementations must draw randomness only from
// run.Streams for the sweep to stay reproducible.
type RunFunc func(ctx context.Context, run Run) (map[string]float64, error)

// Execute dispatches every run in the table across at most workers
// goroutines (workers ≤ 0 means GOMAXPROCS) and returns one Result per
// run in the table's row-major order.
//
// Seed derivation happened entirely in Build, so no locking guards the
// table here; results land in pre-assigned slots. The first run error
// cancels the remaining runs and is returned. The result order, and —
// for run functions that draw only from their Streams — the results
// themselves, do not depend on the worker count.
func (t *Table) Execute(ctx context.Context, workers int, fn RunFunc) ([]Result, error) {
	if fn == nil {
		return nil, ErrNilRunFunc
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, t.Len())
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for idx, c := range t.Coordinates() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			run := Run{
				ID:         uuid.New(),
				Coordinate: c,
				Seed:       t.seeds[idx],
				Streams:    sequencer.Materialize(t.seeds[idx]),
			}
			metrics, err := fn(ctx, run)
			if err != nil {
				return fmt.Errorf("sweep: run %s at %v: %w", run.ID, c, err)
			}
			results[idx] = Result{
				RunID:      run.ID,
				Coordinate: c,
				Seed:       run.Seed,
				Metrics:    metrics,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
