// Package ga - candidate-tour representation with cached fitness.
package ga

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/gatsp/problem"
)

// Individual is one candidate solution: an open tour (permutation of
// {0..n-1}) plus a lazily cached cost. The tour slice is owned by the
// individual; mutators must call Invalidate after touching it.
type Individual struct {
	// Tour is the permutation of city indices. The cycle closes
	// implicitly from the last city back to the first.
	Tour []int

	cost      float64
	evaluated bool
}

// newRandomIndividual returns an individual with a uniformly random
// tour, unevaluated.
//
// Complexity: O(n).
func newRandomIndividual(n int, rng *rand.Rand) *Individual {
	return &Individual{Tour: randPerm(n, rng)}
}

// newGreedyIndividual builds a nearest-neighbour tour from the given
// start city, with the smallest-index tie-breaker for determinism.
// The result is unevaluated; cost caching happens on first Evaluate.
//
// Contract: 0 ≤ start < p.Len().
//
// Complexity: O(n²) time, O(n) space.
func newGreedyIndividual(p *problem.Problem, start int) (*Individual, error) {
	var n = p.Len()
	if start < 0 || start >= n {
		return nil, problem.ErrIndexOutOfRange
	}

	var (
		tour    = make([]int, 0, n)
		visited = make([]bool, n)
		current = start
		i       int
		c       int
		d       float64
		nearest int
		best    float64
	)
	tour = append(tour, start)
	visited[start] = true

	for i = 1; i < n; i++ {
		nearest = -1
		best = math.Inf(1)
		// Scan all unvisited cities; ties resolve to the smallest index
		// because strict < never replaces an equal-distance candidate.
		for c = 0; c < n; c++ {
			if visited[c] {
				continue
			}
			d, _ = p.Distance(current, c) // indices verified by construction
			if d < best {
				best = d
				nearest = c
			}
		}
		tour = append(tour, nearest)
		visited[nearest] = true
		current = nearest
	}

	return &Individual{Tour: tour}, nil
}

// Evaluate computes and caches the tour cost. Idempotent: repeated
// calls after a prior evaluation are O(1) until Invalidate.
//
// Complexity: O(n) on a cache miss.
func (ind *Individual) Evaluate(p *problem.Problem) (float64, error) {
	if ind.evaluated {
		return ind.cost, nil
	}

	cost, err := p.TourLength(ind.Tour)
	if err != nil {
		return 0, err
	}
	ind.cost = cost
	ind.evaluated = true

	return cost, nil
}

// Cost returns the cached cost, or +Inf when the individual has not
// been evaluated since its last mutation. +Inf ranks unevaluated
// individuals strictly worst, which keeps orderings total.
func (ind *Individual) Cost() float64 {
	if !ind.evaluated {
		return math.Inf(1)
	}

	return ind.cost
}

// Evaluated reports whether the cached cost is current.
func (ind *Individual) Evaluated() bool { return ind.evaluated }

// Invalidate drops the cached cost. Every tour mutator must call it.
func (ind *Individual) Invalidate() { ind.evaluated = false }

// Clone returns an independent deep copy (tour and cache).
//
// Complexity: O(n).
func (ind *Individual) Clone() *Individual {
	cp := &Individual{
		Tour:      make([]int, len(ind.Tour)),
		cost:      ind.cost,
		evaluated: ind.evaluated,
	}
	copy(cp.Tour, ind.Tour)

	return cp
}

// less ranks individuals by cost ascending, ties broken by
// lexicographic tour order. The tie-breaker makes sorting (and thus the
// whole run) deterministic under a fixed seed.
func (ind *Individual) less(other *Individual) bool {
	var a, b = ind.Cost(), other.Cost()
	if a != b {
		return a < b
	}

	var i int
	for i = 0; i < len(ind.Tour) && i < len(other.Tour); i++ {
		if ind.Tour[i] != other.Tour[i] {
			return ind.Tour[i] < other.Tour[i]
		}
	}

	return len(ind.Tour) < len(other.Tour)
}
