// Package ga - permutation-preserving recombination operators.
//
// Both operators take two parent tours of equal length n ≥ 2 and return
// two children that are valid permutations by construction: no city is
// ever duplicated or dropped. Cut points are drawn uniformly per call;
// given the same RNG state and parents, the output is deterministic.
package ga

import "math/rand"

// orderCrossover (OX) copies the slice [cut1..cut2] from each parent
// into the child at the same positions, then fills the remaining
// positions with the other parent's cities in their relative order,
// starting after cut2 and wrapping around.
//
// Complexity: O(n) time, O(n) space per child.
func orderCrossover(p1, p2 []int, rng *rand.Rand) ([]int, []int) {
	var n = len(p1)
	cut1, cut2 := randCutPoints(n, rng)

	c1 := oxChild(p1, p2, cut1, cut2)
	c2 := oxChild(p2, p1, cut1, cut2)

	return c1, c2
}

// oxChild builds one OX child: segment from donor, remainder in
// filler's relative order.
func oxChild(donor, filler []int, cut1, cut2 int) []int {
	var n = len(donor)
	child := make([]int, n)
	used := make([]bool, n)

	var i int
	for i = cut1; i <= cut2; i++ {
		child[i] = donor[i]
		used[donor[i]] = true
	}

	// Walk filler once, dropping its cities into the open positions
	// after cut2 (wrapping), skipping cities already placed.
	var (
		pos = (cut2 + 1) % n
		v   int
	)
	for i = 0; i < n; i++ {
		v = filler[(cut2+1+i)%n] // preserve relative order from cut2+1
		if used[v] {
			continue
		}
		child[pos] = v
		used[v] = true
		pos = (pos + 1) % n
	}

	return child
}

// partiallyMappedCrossover (PMX) copies the slice [cut1..cut2] from
// each parent, then fills every outside position from the other parent,
// following the segment's value mapping whenever the direct city is
// already taken. Mapping chains are finite (they trace permutation
// cycles out of the segment), so the repair always terminates.
//
// Complexity: O(n) amortized time, O(n) space per child.
func partiallyMappedCrossover(p1, p2 []int, rng *rand.Rand) ([]int, []int) {
	var n = len(p1)
	cut1, cut2 := randCutPoints(n, rng)

	c1 := pmxChild(p1, p2, cut1, cut2)
	c2 := pmxChild(p2, p1, cut1, cut2)

	return c1, c2
}

// pmxChild builds one PMX child with the segment taken from donor and
// the outside positions from filler, repaired through donor→filler
// value mapping.
func pmxChild(donor, filler []int, cut1, cut2 int) []int {
	var n = len(donor)
	child := make([]int, n)

	// inSeg marks cities already fixed by the donor segment; mapTo
	// translates a blocked city to the filler city displaced from the
	// same segment position.
	inSeg := make([]bool, n)
	mapTo := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		mapTo[i] = -1
	}
	for i = cut1; i <= cut2; i++ {
		child[i] = donor[i]
		inSeg[donor[i]] = true
		mapTo[donor[i]] = filler[i]
	}

	var v int
	for i = 0; i < n; i++ {
		if i >= cut1 && i <= cut2 {
			continue
		}
		v = filler[i]
		// Follow the mapping chain until it exits the fixed segment.
		// Each hop moves along a permutation cycle, so it cannot loop
		// back to a visited in-segment city without first leaving.
		for inSeg[v] {
			v = mapTo[v]
		}
		child[i] = v
	}

	return child
}
