// Package ga - mutation operators.
//
// All operators mutate the tour slice in place and are closed over the
// permutation space: they reorder cities, never add or remove them.
// Callers mutate clones and must Invalidate the individual afterwards;
// applyMutation handles both.
package ga

import "math/rand"

// Adaptive escalation thresholds (generations without improvement).
const (
	// adaptiveModerate switches to multi-op mutation.
	adaptiveModerate = 10

	// adaptiveHeavy switches to scramble, the most disruptive operator.
	adaptiveHeavy = 25

	// adaptiveMaxOps caps the op count of the multi-op stage.
	adaptiveMaxOps = 3
)

// mutateSwap exchanges the cities at two distinct random positions.
//
// Complexity: O(1).
func mutateSwap(tour []int, rng *rand.Rand) {
	var n = len(tour)
	if n < 2 {
		return
	}

	var (
		i = rng.Intn(n)
		j = rng.Intn(n)
	)
	for j == i {
		j = rng.Intn(n)
	}
	tour[i], tour[j] = tour[j], tour[i]
}

// mutateInversion reverses the segment between two random cut points,
// inclusive. The 2-opt-style move preserves adjacency inside the
// segment, which makes it the strongest default for TSP.
//
// Complexity: O(n) worst case.
func mutateInversion(tour []int, rng *rand.Rand) {
	if len(tour) < 2 {
		return
	}
	lo, hi := randCutPoints(len(tour), rng)
	reverseSegment(tour, lo, hi)
}

// mutateScramble shuffles the cities inside a random segment.
//
// Complexity: O(n) worst case.
func mutateScramble(tour []int, rng *rand.Rand) {
	if len(tour) < 2 {
		return
	}
	lo, hi := randCutPoints(len(tour), rng)

	shuffleIntsInPlace(tour[lo:hi+1], rng)
}

// applyMutation mutates ind in place using the configured strategy and
// drops the stale cost cache. It always mutates; callers roll the rate
// beforehand.
func applyMutation(ind *Individual, strat MutationStrategy, rng *rand.Rand) {
	switch strat {
	case MutationSwap:
		mutateSwap(ind.Tour, rng)
	case MutationScramble:
		mutateScramble(ind.Tour, rng)
	default: // MutationInversion
		mutateInversion(ind.Tour, rng)
	}
	ind.Invalidate()
}

// adaptiveMutate escalates disruption with stagnation: a single base
// operation while progress is recent, several stacked operations as
// stagnation grows, and a segment scramble once the search has been
// stuck long enough that locality stopped paying off.
//
// Complexity: O(ops·n) worst case.
func adaptiveMutate(ind *Individual, stagnation int, base MutationStrategy, rng *rand.Rand) {
	switch {
	case stagnation < adaptiveModerate:
		applyMutation(ind, base, rng)

	case stagnation < adaptiveHeavy:
		var ops = stagnation / 5
		if ops > adaptiveMaxOps {
			ops = adaptiveMaxOps
		}
		if ops < 1 {
			ops = 1
		}
		var i int
		for i = 0; i < ops; i++ {
			applyMutation(ind, base, rng)
		}

	default:
		applyMutation(ind, MutationScramble, rng)
	}
}
