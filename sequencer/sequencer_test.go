// Package sequencer_test validates the determinism contract of seed
// derivation: bit-identical replays under a base seed, iteration
// collapse vs. divergence, and fail-fast coordinate validation.
package sequencer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumenvale/seedseq/sequencer"
)

// seedDet is the fixed base seed used by determinism tests.
const seedDet int64 = 42

// deriveAll builds a fresh Sequencer from opts and derives one seed per
// coordinate, in the given order. Fails the test on any error.
func deriveAll(t *testing.T, opts sequencer.Options, coords []sequencer.RunCoordinate) []sequencer.DerivedSeed {
	t.Helper()
	seq, err := sequencer.New(opts)
	require.NoError(t, err)

	out := make([]sequencer.DerivedSeed, 0, len(coords))
	for _, c := range coords {
		s, derr := seq.DeriveSeed(c)
		require.NoError(t, derr, "DeriveSeed%v", c)
		out = append(out, s)
	}
	return out
}

// grid enumerates samples×iterations coordinates in row-major order,
// the stable order the reproducibility contract assumes.
func grid(samples, iterations int) []sequencer.RunCoordinate {
	coords := make([]sequencer.RunCoordinate, 0, samples*iterations)
	for s := 0; s < samples; s++ {
		for i := 0; i < iterations; i++ {
			coords = append(coords, sequencer.RunCoordinate{Sample: s, Iteration: i})
		}
	}
	return coords
}

// TestNew_NegativeBaseSeed verifies the InvalidSeed taxonomy: a negative
// base seed is rejected immediately at construction time.
func TestNew_NegativeBaseSeed(t *testing.T) {
	_, err := sequencer.New(sequencer.WithBaseSeed(-1, false))
	if !errors.Is(err, sequencer.ErrInvalidBaseSeed) {
		t.Errorf("New(base=-1) error = %v; want ErrInvalidBaseSeed", err)
	}
}

// TestDeriveSeed_InvalidCoordinate verifies that negative indices fail
// fast with the sentinel error, before any derivation happens.
func TestDeriveSeed_InvalidCoordinate(t *testing.T) {
	cases := []struct {
		name  string
		coord sequencer.RunCoordinate
	}{
		{"NegativeSample", sequencer.RunCoordinate{Sample: -1, Iteration: 0}},
		{"NegativeIteration", sequencer.RunCoordinate{Sample: 0, Iteration: -1}},
		{"BothNegative", sequencer.RunCoordinate{Sample: -3, Iteration: -7}},
	}

	seq, err := sequencer.New(sequencer.WithBaseSeed(seedDet, true))
	require.NoError(t, err)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, derr := seq.DeriveSeed(tc.coord)
			if !errors.Is(derr, sequencer.ErrInvalidCoordinate) {
				t.Errorf("DeriveSeed(%v) error = %v; want ErrInvalidCoordinate", tc.coord, derr)
			}
		})
	}
}

// TestDeriveSeed_IterationCollapse checks that with Randomize=false all
// iterations of one sample receive the identical seed.
func TestDeriveSeed_IterationCollapse(t *testing.T) {
	seq, err := sequencer.New(sequencer.WithBaseSeed(seedDet, false))
	require.NoError(t, err)

	first, err := seq.DeriveSeed(sequencer.RunCoordinate{Sample: 3, Iteration: 0})
	require.NoError(t, err)

	for iter := 1; iter < 50; iter++ {
		s, derr := seq.DeriveSeed(sequencer.RunCoordinate{Sample: 3, Iteration: iter})
		require.NoError(t, derr)
		require.Equal(t, first, s, "iteration %d must repeat the sample seed", iter)
	}
}

// TestDeriveSeed_SampleSeparation checks that distinct samples receive
// distinct seeds when iterations collapse.
func TestDeriveSeed_SampleSeparation(t *testing.T) {
	seq, err := sequencer.New(sequencer.WithBaseSeed(seedDet, false))
	require.NoError(t, err)

	seen := make(map[sequencer.DerivedSeed]int)
	for sample := 0; sample < 100; sample++ {
		s, derr := seq.DeriveSeed(sequencer.RunCoordinate{Sample: sample, Iteration: 0})
		require.NoError(t, derr)
		if prev, dup := seen[s]; dup {
			t.Fatalf("samples %d and %d share seed %s", prev, sample, s)
		}
		seen[s] = sample
	}
}

// TestDeriveSeed_FixedScenario locks the concrete contract:
// base seed 42, coordinates {(0,0),(0,1),(1,0)}.
// Randomize=false ⇒ S0, S0, S1 with S0 ≠ S1; replay reproduces exactly.
// Randomize=true  ⇒ three pairwise-distinct seeds; replay reproduces exactly.
func TestDeriveSeed_FixedScenario(t *testing.T) {
	coords := []sequencer.RunCoordinate{
		{Sample: 0, Iteration: 0},
		{Sample: 0, Iteration: 1},
		{Sample: 1, Iteration: 0},
	}

	t.Run("Collapsed", func(t *testing.T) {
		opts := sequencer.WithBaseSeed(seedDet, false)
		got := deriveAll(t, opts, coords)
		require.Equal(t, got[0], got[1], "iterations of sample 0 must share a seed")
		require.NotEqual(t, got[0], got[2], "samples 0 and 1 must not share a seed")

		replay := deriveAll(t, opts, coords)
		require.Equal(t, got, replay, "replay with the same base seed must be bit-identical")
	})

	t.Run("Randomized", func(t *testing.T) {
		opts := sequencer.WithBaseSeed(seedDet, true)
		got := deriveAll(t, opts, coords)
		require.NotEqual(t, got[0], got[1])
		require.NotEqual(t, got[0], got[2])
		require.NotEqual(t, got[1], got[2])

		replay := deriveAll(t, opts, coords)
		require.Equal(t, got, replay, "replay with the same base seed must be bit-identical")
	})
}

// TestDeriveSeed_Determinism re-derives a full randomized grid several
// times and requires every replay to match the baseline bit-for-bit.
func TestDeriveSeed_Determinism(t *testing.T) {
	coords := grid(8, 16)
	opts := sequencer.WithBaseSeed(seedDet, true)

	base := deriveAll(t, opts, coords)
	for rep := 0; rep < 3; rep++ {
		require.Equal(t, base, deriveAll(t, opts, coords), "replay %d diverged", rep)
	}
}

// TestDeriveSeed_RandomizedDivergence checks pairwise-distinct seeds
// over a 10⁴-run sweep, the scale the collision bound targets.
func TestDeriveSeed_RandomizedDivergence(t *testing.T) {
	seq, err := sequencer.New(sequencer.WithBaseSeed(seedDet, true))
	require.NoError(t, err)

	seen := make(map[sequencer.DerivedSeed]sequencer.RunCoordinate, 10000)
	for _, c := range grid(100, 100) {
		s, derr := seq.DeriveSeed(c)
		require.NoError(t, derr)
		if prev, dup := seen[s]; dup {
			t.Fatalf("coordinates %v and %v share seed %s", prev, c, s)
		}
		seen[s] = c
	}
}

// TestDeriveSeed_CachedFirstEncounter checks that a sample seen again
// later returns its original cached seed even after other samples have
// consumed root state in between.
func TestDeriveSeed_CachedFirstEncounter(t *testing.T) {
	seq, err := sequencer.New(sequencer.WithBaseSeed(seedDet, false))
	require.NoError(t, err)

	first, err := seq.DeriveSeed(sequencer.RunCoordinate{Sample: 5, Iteration: 0})
	require.NoError(t, err)

	// Burn root state on other samples.
	for sample := 0; sample < 5; sample++ {
		_, derr := seq.DeriveSeed(sequencer.RunCoordinate{Sample: sample, Iteration: 0})
		require.NoError(t, derr)
	}

	again, err := seq.DeriveSeed(sequencer.RunCoordinate{Sample: 5, Iteration: 9})
	require.NoError(t, err)
	require.Equal(t, first, again, "cached sample seed must survive later draws")
}

// TestNew_NoBaseSeed_NotReproducible checks that entropy-rooted
// sequencers report themselves non-reproducible and (with overwhelming
// probability) disagree with each other.
func TestNew_NoBaseSeed_NotReproducible(t *testing.T) {
	a, err := sequencer.New(sequencer.DefaultOptions())
	require.NoError(t, err)
	b, err := sequencer.New(sequencer.DefaultOptions())
	require.NoError(t, err)

	require.False(t, a.Reproducible())
	require.False(t, b.Reproducible())

	origin := sequencer.RunCoordinate{Sample: 0, Iteration: 0}
	sa, err := a.DeriveSeed(origin)
	require.NoError(t, err)
	sb, err := b.DeriveSeed(origin)
	require.NoError(t, err)
	// 128-bit collision between two entropy roots: ~2⁻¹²⁸.
	require.NotEqual(t, sa, sb, "independent entropy roots must not agree")
}

// TestOptions_Accessors pins the Reproducible/Randomized reporting.
func TestOptions_Accessors(t *testing.T) {
	seq, err := sequencer.New(sequencer.WithBaseSeed(7, true))
	require.NoError(t, err)
	require.True(t, seq.Reproducible())
	require.True(t, seq.Randomized())

	def, err := sequencer.New(sequencer.DefaultOptions())
	require.NoError(t, err)
	require.False(t, def.Reproducible())
	require.False(t, def.Randomized())
}

// TestRunCoordinate_Compare pins the row-major ordering contract.
func TestRunCoordinate_Compare(t *testing.T) {
	cases := []struct {
		name string
		a, b sequencer.RunCoordinate
		want int
	}{
		{"Equal", sequencer.RunCoordinate{Sample: 1, Iteration: 2}, sequencer.RunCoordinate{Sample: 1, Iteration: 2}, 0},
		{"SampleWins", sequencer.RunCoordinate{Sample: 0, Iteration: 9}, sequencer.RunCoordinate{Sample: 1, Iteration: 0}, -1},
		{"IterationBreaksTie", sequencer.RunCoordinate{Sample: 2, Iteration: 3}, sequencer.RunCoordinate{Sample: 2, Iteration: 1}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Compare(tc.b); got != tc.want {
				t.Errorf("%v.Compare(%v) = %d; want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
