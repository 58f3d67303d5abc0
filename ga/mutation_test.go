package ga

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMutation_Closure verifies every operator stays inside the
// permutation space across many random tours.
func TestMutation_Closure(t *testing.T) {
	rng := testRNG()

	var trial, n int
	for trial = 0; trial < 200; trial++ {
		n = 2 + rng.Intn(40)

		tour := randPerm(n, rng)
		mutateSwap(tour, rng)
		requirePermutation(t, tour, n)

		tour = randPerm(n, rng)
		mutateInversion(tour, rng)
		requirePermutation(t, tour, n)

		tour = randPerm(n, rng)
		mutateScramble(tour, rng)
		requirePermutation(t, tour, n)
	}
}

// TestMutateSwap_ExactlyTwoPositions pins the operator's footprint: a
// single swap changes exactly two positions.
func TestMutateSwap_ExactlyTwoPositions(t *testing.T) {
	rng := testRNG()

	var trial int
	for trial = 0; trial < 50; trial++ {
		const n = 20
		tour := randPerm(n, rng)
		before := append([]int(nil), tour...)

		mutateSwap(tour, rng)

		var i, changed int
		for i = 0; i < n; i++ {
			if tour[i] != before[i] {
				changed++
			}
		}
		require.Equal(t, 2, changed, "swap must touch exactly two positions")
	}
}

// TestMutateInversion_ReversesSegment reconstructs the cut points from
// an identically seeded generator and checks the segment is reversed
// while the outside stays put.
func TestMutateInversion_ReversesSegment(t *testing.T) {
	var trial int
	for trial = 0; trial < 50; trial++ {
		const n = 15
		tour := randPerm(n, testRNG())
		before := append([]int(nil), tour...)

		probe := rand.New(rand.NewSource(int64(trial)))
		op := rand.New(rand.NewSource(int64(trial)))
		lo, hi := randCutPoints(n, probe)

		mutateInversion(tour, op)

		var i int
		for i = 0; i < n; i++ {
			switch {
			case i >= lo && i <= hi:
				require.Equal(t, before[hi-(i-lo)], tour[i], "segment not reversed at %d", i)
			default:
				require.Equal(t, before[i], tour[i], "outside position %d moved", i)
			}
		}
	}
}

// TestMutation_TinyTours covers the n<2 guard: no panic, no change.
func TestMutation_TinyTours(t *testing.T) {
	rng := testRNG()

	single := []int{0}
	mutateSwap(single, rng)
	mutateInversion(single, rng)
	mutateScramble(single, rng)
	require.Equal(t, []int{0}, single)

	var empty []int
	mutateSwap(empty, rng)
	mutateInversion(empty, rng)
	mutateScramble(empty, rng)
	require.Empty(t, empty)
}

// TestApplyMutation_InvalidatesCache checks the cost cache is dropped
// after any strategy mutates the tour.
func TestApplyMutation_InvalidatesCache(t *testing.T) {
	p := squareProblem(t)

	var strat MutationStrategy
	for _, strat = range []MutationStrategy{MutationSwap, MutationInversion, MutationScramble} {
		ind := newRandomIndividual(p.Len(), testRNG())
		_, err := ind.Evaluate(p)
		require.NoError(t, err)
		require.True(t, ind.Evaluated())

		applyMutation(ind, strat, testRNG())
		require.False(t, ind.Evaluated(), "%s left a stale cost cache", strat)
		requirePermutation(t, ind.Tour, p.Len())
	}
}

// TestAdaptiveMutate_Escalation exercises the three stagnation regimes.
// The operator mix is probabilistic, so the test pins only the hard
// guarantees: closure, cache invalidation, determinism.
func TestAdaptiveMutate_Escalation(t *testing.T) {
	p := ringProblem(t, 12)

	var stagnation int
	for _, stagnation = range []int{0, adaptiveModerate, adaptiveModerate + 5, adaptiveHeavy, adaptiveHeavy + 40} {
		ind := newRandomIndividual(p.Len(), testRNG())
		_, err := ind.Evaluate(p)
		require.NoError(t, err)

		adaptiveMutate(ind, stagnation, MutationInversion, testRNG())
		requirePermutation(t, ind.Tour, p.Len())
		require.False(t, ind.Evaluated())
	}
}

// TestAdaptiveMutate_Deterministic replays the escalated path under an
// identical RNG state.
func TestAdaptiveMutate_Deterministic(t *testing.T) {
	base := randPerm(25, testRNG())

	a := &Individual{Tour: append([]int(nil), base...)}
	b := &Individual{Tour: append([]int(nil), base...)}

	adaptiveMutate(a, adaptiveModerate+7, MutationSwap, rand.New(rand.NewSource(3)))
	adaptiveMutate(b, adaptiveModerate+7, MutationSwap, rand.New(rand.NewSource(3)))

	require.Equal(t, a.Tour, b.Tour)
}
