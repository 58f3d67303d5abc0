// Package ga - parent-selection operators.
//
// Selection is stateless given (population, RNG): it never mutates the
// population and returns clones, so later mutation of a parent cannot
// corrupt the current generation.
package ga

import (
	"math"
	"math/rand"
	"sort"
)

// selectionParams carries the per-generation selection knobs as
// published by the diversity controller.
type selectionParams struct {
	strategy       SelectionStrategy
	tournamentSize int

	// pressure ∈ (0,1] scales selective bias. 1 is the configured
	// baseline; lower values flatten the operator toward uniform
	// sampling to re-inject exploration under stagnation.
	pressure float64
}

// selectParents returns count parents drawn with replacement, biased
// toward lower cost. The population must be fully evaluated.
//
// Complexity: O(count·k) for tournament, O(N log N + count·N) for
// roulette/rank (one weight build + linear sampling per draw).
func selectParents(pop *Population, count int, par selectionParams, rng *rand.Rand) []*Individual {
	out := make([]*Individual, 0, count)
	if pop.Len() == 0 || count <= 0 {
		return out
	}

	switch par.strategy {
	case SelectionRoulette:
		weights := rouletteWeights(pop, par.pressure)
		var i int
		for i = 0; i < count; i++ {
			out = append(out, pop.Individuals[sampleIndex(weights, rng)].Clone())
		}

	case SelectionRank:
		order, weights := rankWeights(pop, par.pressure)
		var i int
		for i = 0; i < count; i++ {
			out = append(out, pop.Individuals[order[sampleIndex(weights, rng)]].Clone())
		}

	default: // SelectionTournament
		k := effectiveTournamentSize(par.tournamentSize, par.pressure, pop.Len())
		var i int
		for i = 0; i < count; i++ {
			out = append(out, selectTournament(pop, k, rng).Clone())
		}
	}

	return out
}

// selectTournament samples k individuals uniformly (with replacement)
// and returns the best of the sample.
//
// Complexity: O(k).
func selectTournament(pop *Population, k int, rng *rand.Rand) *Individual {
	var (
		winner *Individual
		i      int
		cand   *Individual
	)
	for i = 0; i < k; i++ {
		cand = pop.Individuals[rng.Intn(pop.Len())]
		if winner == nil || cand.less(winner) {
			winner = cand
		}
	}

	return winner
}

// effectiveTournamentSize applies the controller's pressure to the
// configured k: lower pressure shrinks the sample (toward 2), which
// weakens the bias toward the current front-runners.
func effectiveTournamentSize(k int, pressure float64, popSize int) int {
	eff := int(math.Round(float64(k) * pressure))
	if eff < 2 {
		eff = 2
	}
	if eff > popSize {
		eff = popSize
	}

	return eff
}

// rouletteWeights builds cost-proportional weights w_i=(1/(1+cost_i))^pressure.
// Degenerate inputs (unevaluated individuals, all-zero weights) fall
// back to uniform weights rather than failing: selection quality is a
// heuristic concern, not a correctness gate.
//
// Complexity: O(N).
func rouletteWeights(pop *Population, pressure float64) []float64 {
	weights := make([]float64, pop.Len())

	var (
		i     int
		ind   *Individual
		w     float64
		total float64
	)
	for i, ind = range pop.Individuals {
		if !ind.Evaluated() {
			w = 0
		} else {
			w = math.Pow(1/(1+ind.Cost()), pressure)
			if math.IsNaN(w) || math.IsInf(w, 0) {
				w = 0
			}
		}
		weights[i] = w
		total += w
	}

	// Uniform fallback keeps the operator total.
	if total <= 0 {
		for i = range weights {
			weights[i] = 1
		}
	}

	return weights
}

// rankWeights sorts indices best-first and assigns linear rank weights
// (N, N-1, …, 1) raised to pressure. Returns the sorted index order and
// the weight per rank position. The population itself is not reordered.
//
// Complexity: O(N log N).
func rankWeights(pop *Population, pressure float64) ([]int, []float64) {
	var n = pop.Len()
	order := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return pop.Individuals[order[a]].less(pop.Individuals[order[b]])
	})

	weights := make([]float64, n)
	for i = 0; i < n; i++ {
		weights[i] = math.Pow(float64(n-i), pressure)
	}

	return order, weights
}

// sampleIndex draws one index proportionally to weights. The caller
// guarantees at least one strictly positive weight.
//
// Complexity: O(N).
func sampleIndex(weights []float64, rng *rand.Rand) int {
	var total float64
	for _, w := range weights {
		total += w
	}

	var (
		target = rng.Float64() * total
		acc    float64
		i      int
	)
	for i = 0; i < len(weights); i++ {
		acc += weights[i]
		if target < acc {
			return i
		}
	}

	// FP accumulation can leave target==total; the last entry wins.
	return len(weights) - 1
}
