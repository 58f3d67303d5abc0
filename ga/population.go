// Package ga - fixed-size ordered collection of individuals.
package ga

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/gatsp/problem"
)

// Population holds the current generation. It is owned and mutated
// exclusively by the engine; operators only read it.
type Population struct {
	Individuals []*Individual
}

// newPopulation seeds PopulationSize individuals: a GreedySeedFraction
// share of nearest-neighbour tours from distinct start cities, the rest
// uniformly random. All individuals are left unevaluated.
//
// Complexity: O(g·n² + N·n) where g is the greedy count.
func newPopulation(p *problem.Problem, cfg Config, rng *rand.Rand) (*Population, error) {
	var (
		n         = p.Len()
		total     = cfg.PopulationSize
		numGreedy = int(float64(total) * cfg.GreedySeedFraction)
	)
	// Never more greedy tours than distinct start cities.
	if numGreedy > n {
		numGreedy = n
	}

	inds := make([]*Individual, 0, total)

	var (
		i   int
		ind *Individual
		err error
	)
	for i = 0; i < total-numGreedy; i++ {
		inds = append(inds, newRandomIndividual(n, rng))
	}
	for i = 0; i < numGreedy; i++ {
		ind, err = newGreedyIndividual(p, i%n)
		if err != nil {
			return nil, err
		}
		inds = append(inds, ind)
	}

	return &Population{Individuals: inds}, nil
}

// Len returns the population size.
func (pop *Population) Len() int { return len(pop.Individuals) }

// EvaluateAll ensures every individual carries a current cached cost.
// Already-evaluated individuals are skipped (cache idempotence).
//
// Complexity: O(s·n) where s is the number of stale individuals.
func (pop *Population) EvaluateAll(p *problem.Problem) error {
	var (
		ind *Individual
		err error
	)
	for _, ind = range pop.Individuals {
		if _, err = ind.Evaluate(p); err != nil {
			return err
		}
	}

	return nil
}

// SortByCost orders individuals best-first (cost ascending, ties by
// lexicographic tour, so the order is unique).
//
// Complexity: O(N log N · n) worst case (tie comparison is O(n)).
func (pop *Population) SortByCost() {
	sort.Slice(pop.Individuals, func(i, j int) bool {
		return pop.Individuals[i].less(pop.Individuals[j])
	})
}

// Best returns the lowest-cost individual without reordering the
// population. Returns nil for an empty population.
//
// Complexity: O(N).
func (pop *Population) Best() *Individual {
	var best *Individual
	for _, ind := range pop.Individuals {
		if best == nil || ind.less(best) {
			best = ind
		}
	}

	return best
}

// Worst returns the highest-cost individual (nil when empty).
//
// Complexity: O(N).
func (pop *Population) Worst() *Individual {
	var worst *Individual
	for _, ind := range pop.Individuals {
		if worst == nil || worst.less(ind) {
			worst = ind
		}
	}

	return worst
}

// AverageCost returns the mean cost over evaluated individuals, or +Inf
// when none are evaluated.
//
// Complexity: O(N).
func (pop *Population) AverageCost() float64 {
	var (
		sum   float64
		count int
	)
	for _, ind := range pop.Individuals {
		if ind.Evaluated() {
			sum += ind.Cost()
			count++
		}
	}
	if count == 0 {
		return math.Inf(1)
	}

	return sum / float64(count)
}

// UniqueRatio returns the share of distinct tours, in [0,1]. Tours are
// compared exactly (position-wise), not modulo rotation: positional
// duplicates are precisely what replacement tends to produce, and the
// metric is a signal, not a correctness gate.
//
// Complexity: O(N·n) time, O(N·n) space.
func (pop *Population) UniqueRatio() float64 {
	if len(pop.Individuals) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(pop.Individuals))

	var (
		ind *Individual
	)
	for _, ind = range pop.Individuals {
		seen[tourKey(ind.Tour)] = struct{}{}
	}

	return float64(len(seen)) / float64(len(pop.Individuals))
}

// Clone returns a deep copy of the population.
//
// Complexity: O(N·n).
func (pop *Population) Clone() *Population {
	cp := &Population{Individuals: make([]*Individual, len(pop.Individuals))}

	var i int
	for i = range pop.Individuals {
		cp.Individuals[i] = pop.Individuals[i].Clone()
	}

	return cp
}

// snapshotMembers deep-copies the population into observer-facing
// members (tour + cost only).
//
// Complexity: O(N·n).
func (pop *Population) snapshotMembers() []Member {
	out := make([]Member, len(pop.Individuals))

	var (
		i   int
		ind *Individual
	)
	for i, ind = range pop.Individuals {
		out[i] = Member{
			Tour: append([]int(nil), ind.Tour...),
			Cost: ind.Cost(),
		}
	}

	return out
}

// tourKey encodes a tour as a compact byte string for set membership.
// Each index is emitted as 4 bytes big-endian; city counts beyond 2³¹
// are far outside this engine's operating range.
func tourKey(tour []int) string {
	buf := make([]byte, 0, len(tour)*4)

	var v int
	for _, v = range tour {
		buf = append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}

	return string(buf)
}
