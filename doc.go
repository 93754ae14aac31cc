// Package seedseq gives simulation sweeps reproducible, decorrelated
// pseudo-random streams from a single base seed.
//
// 🎲 What is seedseq?
//
//	A small, deterministic seed-derivation library for agent-based
//	modeling and other stochastic sweeps:
//		• One base seed + run coordinates ⇒ one 128-bit seed per run
//		• Two independent streams per run: general-purpose & numeric
//		• Iterations repeat or diverge — your choice, always replayable
//		• Build-then-freeze seed tables safe for parallel workers
//
// ✨ Why choose seedseq?
//
//   - Replayable – same base seed, same sweep, bit-identical seeds, every time
//   - Honest – no hidden time-based sources, no ambient global generators
//   - Parallel-friendly – seeds precomputed sequentially, read lock-free
//   - Plugs into gonum – the numeric stream is a rand.Source for distuv samplers
//
// Everything is organized under two subpackages:
//
//	sequencer/ — seed derivation core: Sequencer, DerivedSeed, Streams
//	sweep/     — frozen seed tables, parallel dispatch, result summaries
//
// Quick sketch:
//
//	base seed 42 ──► Sequencer ──► S₀ S₀ S₁ ...   (iterations collapse)
//	                       └─────► T₀ T₁ T₂ ...   (randomized, still replayable)
//
// Dive into examples/ for a full wealth-exchange sweep walkthrough.
//
//	go get github.com/lumenvale/seedseq
package seedseq
