// Package sequencer derives reproducible, decorrelated seeds for
// simulation runs within a parameter sweep.
//
// What:
//
//   - Sequencer owns a single root generator seeded once from a base seed
//     (or from OS entropy when no base seed is supplied).
//   - DeriveSeed maps a RunCoordinate (sample index × iteration index) to
//     a 128-bit DerivedSeed, either one-per-sample (iterations collapse
//     into exact repeats) or one-per-run (randomized, still replayable).
//   - Materialize turns one DerivedSeed into two independent streams: a
//     general-purpose *rand.Rand and a numeric rand.Source suitable for
//     gonum/stat/distuv samplers.
//
// Why:
//
//   - Sweep reproducibility: re-running a sweep with the same base seed
//     must reproduce every run bit-for-bit, including under parallel
//     dispatch.
//   - Stream hygiene: one run's integer draws and its vectorized numeric
//     draws come from distinct generators that never correlate, yet both
//     are fully determined by the run's single DerivedSeed.
//
// Determinism:
//
//   - Same Options and same derivation order ⇒ identical DerivedSeed
//     sequence across processes and platforms. No time-based sources,
//     no ambient globals.
//   - Without a base seed the root is drawn from crypto/rand and no
//     reproducibility guarantee holds; this is documented behavior, not
//     an error.
//
// Concurrency:
//
//   - Sequencer is NOT goroutine-safe: randomized derivation consumes
//     ordered draws from the shared root. Derive all seeds sequentially
//     up front, then hand the immutable results to workers (the sweep
//     package captures exactly this discipline).
//   - Streams values are per-run and must not be shared across runs.
//
// Errors:
//
//   - ErrInvalidCoordinate: a coordinate index is negative.
//   - ErrInvalidBaseSeed: a negative base seed was supplied.
//
// Complexity: DeriveSeed and Materialize are O(1); a full sweep of R
// runs derives in O(R).
package sequencer
