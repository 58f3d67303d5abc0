package ga

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRngFromSeed_ZeroPolicy pins the seed-zero substitution: zero and
// the documented default must yield identical streams.
func TestRngFromSeed_ZeroPolicy(t *testing.T) {
	a := rngFromSeed(0)
	b := rngFromSeed(defaultRNGSeed)

	var i int
	for i = 0; i < 16; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}

// TestRngFromSeed_Deterministic verifies identical seeds replay and
// distinct seeds diverge.
func TestRngFromSeed_Deterministic(t *testing.T) {
	a := rngFromSeed(42)
	b := rngFromSeed(42)
	c := rngFromSeed(43)

	var i int
	var sawDiff bool
	for i = 0; i < 16; i++ {
		va := a.Int63()
		require.Equal(t, va, b.Int63())
		if va != c.Int63() {
			sawDiff = true
		}
	}
	require.True(t, sawDiff, "distinct seeds produced identical streams")
}

// TestDeriveSeed_StreamSeparation checks sibling streams decorrelate:
// same parent, different stream id, different derived seed.
func TestDeriveSeed_StreamSeparation(t *testing.T) {
	require.NotEqual(t, deriveSeed(42, streamInit), deriveSeed(42, streamEvolve))
	require.NotEqual(t, deriveSeed(42, streamEvolve), deriveSeed(42, streamRestart))
	require.Equal(t, deriveSeed(42, streamInit), deriveSeed(42, streamInit))
	require.NotEqual(t, deriveSeed(42, streamInit), deriveSeed(43, streamInit))
}

// TestDeriveRNG_ConsumesBase verifies two derivations with the same
// stream id from one base still diverge, and a nil base is tolerated.
func TestDeriveRNG_ConsumesBase(t *testing.T) {
	base := rngFromSeed(7)
	a := deriveRNG(base, streamInit)
	b := deriveRNG(base, streamInit)
	require.NotEqual(t, a.Int63(), b.Int63())

	require.NotNil(t, deriveRNG(nil, streamInit))
}

// TestRandPerm_Closure verifies every output is a permutation.
func TestRandPerm_Closure(t *testing.T) {
	rng := testRNG()

	var trial, n int
	for trial = 0; trial < 100; trial++ {
		n = 1 + rng.Intn(50)
		requirePermutation(t, randPerm(n, rng), n)
	}
}

// TestShuffleIntsInPlace_TinySlices covers the n<=1 fast path.
func TestShuffleIntsInPlace_TinySlices(t *testing.T) {
	rng := testRNG()

	one := []int{9}
	shuffleIntsInPlace(one, rng)
	require.Equal(t, []int{9}, one)

	var empty []int
	shuffleIntsInPlace(empty, rng)
	require.Empty(t, empty)
}

// TestRandCutPoints_Bounds checks 0 <= lo < hi < n holds for every n>=2,
// including the degenerate-draw widening.
func TestRandCutPoints_Bounds(t *testing.T) {
	rng := testRNG()

	var trial, n, lo, hi int
	for trial = 0; trial < 500; trial++ {
		n = 2 + rng.Intn(30)
		lo, hi = randCutPoints(n, rng)

		require.GreaterOrEqual(t, lo, 0)
		require.Less(t, lo, hi, "cut points must span at least one position (n=%d)", n)
		require.Less(t, hi, n)
	}
}

// TestRandCutPoints_MinimalN pins n==2: the only legal answer is (0,1).
func TestRandCutPoints_MinimalN(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var trial, lo, hi int
	for trial = 0; trial < 50; trial++ {
		lo, hi = randCutPoints(2, rng)
		require.Equal(t, 0, lo)
		require.Equal(t, 1, hi)
	}
}
