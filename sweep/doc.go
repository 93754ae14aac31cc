// Package sweep turns a seed-derivation plan into a frozen seed table
// and dispatches simulation runs against it in parallel.
//
// What:
//
//   - Plan describes a sweep: samples × iterations plus the sequencer
//     policy (base seed, randomize).
//   - Build derives every run's DerivedSeed up front, sequentially, in
//     row-major ascending (sample, iteration) order, and freezes the
//     result into an immutable Table.
//   - Table.Execute dispatches one run per coordinate across a bounded
//     worker pool; each worker gets its own freshly materialized stream
//     pair and writes its Result into a pre-assigned slot.
//   - Summarize aggregates a named metric across the results.
//
// Why:
//
//   - Randomized derivation consumes ordered draws from a shared root
//     generator, so interleaving derivation with concurrent execution
//     would need locks and would still be order-fragile. Deriving
//     everything first and freezing the table removes both problems:
//     the only shared structure is write-once, then read-only.
//
// Determinism:
//
//   - The enumeration order is row-major ascending (sample, iteration),
//     documented and stable; replays of the same Plan produce the same
//     Table bit-for-bit and Execute's results do not depend on worker
//     count or scheduling.
//
// Errors:
//
//   - ErrEmptyPlan: the plan has no samples or no iterations.
//   - ErrOutOfRange: a coordinate falls outside the table.
//   - ErrNilRunFunc: Execute was given a nil run function.
//   - ErrMetricMissing: Summarize found the metric in no result.
//
// Complexity: Build is O(R) for R runs; Seed/Streams are O(1);
// Execute is O(R) dispatches over min(workers, R) goroutines.
package sweep
