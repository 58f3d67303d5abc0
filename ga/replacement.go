// Package ga - generational replacement with elitism.
//
// Slot accounting is exact by construction: the elite band is reserved
// first, the three configured fractions are floored against the full
// population size, any leftover goes to crossover offspring (the "best
// available offspring" pool), and any overflow is trimmed in the fixed
// order survivors → mutation → crossover. The next generation therefore
// always has exactly PopulationSize individuals — rounding can never
// drift the population size.
package ga

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/gatsp/problem"
)

// errPopulationDrift guards the size invariant; reaching it means a
// defect in slot planning, never an expected runtime condition.
var errPopulationDrift = errors.New("ga: population size drifted")

// slotPlan fixes how many next-generation slots each source fills.
type slotPlan struct {
	elite     int
	survivors int
	crossover int
	mutation  int
}

// planSlots resolves the configured fractions into exact slot counts.
//
// Complexity: O(1).
func planSlots(cfg Config) slotPlan {
	var (
		n    = cfg.PopulationSize
		plan = slotPlan{
			elite:     cfg.ElitismCount,
			survivors: int(float64(n) * cfg.SurvivorFraction),
			crossover: int(float64(n) * cfg.CrossoverFraction),
			mutation:  int(float64(n) * cfg.MutationFraction),
		}
	)

	var total = plan.elite + plan.survivors + plan.crossover + plan.mutation

	// Overflow: trim survivors, then mutation, then crossover. The
	// elite band is never trimmed — elitism is unconditional.
	for total > n && plan.survivors > 0 {
		plan.survivors--
		total--
	}
	for total > n && plan.mutation > 0 {
		plan.mutation--
		total--
	}
	for total > n && plan.crossover > 0 {
		plan.crossover--
		total--
	}

	// Shortfall: hand the leftover slots to crossover offspring.
	if total < n {
		plan.crossover += n - total
	}

	return plan
}

// nextGeneration assembles the successor population:
//
//	(a) the best elite individuals are copied unconditionally,
//	(b) the next-best survivors carry over,
//	(c) crossover offspring come from selected parent pairs,
//	(d) mutation offspring are selected clones mutated with the
//	    controller's current rate.
//
// Every offspring (but never an elite or survivor clone) then passes
// through refineTour, so variation proposes tours and the descent
// settles them into their local basin before evaluation.
//
// The input population is sorted in place (the engine owns it; this is
// the last read of the outgoing generation). All new individuals are
// evaluated before the population is returned.
//
// Complexity: O(N log N·n) sort + O(N·n²) offspring construction,
// dominated by refinement.
func nextGeneration(pop *Population, p *problem.Problem, cfg Config, par generationParams, rng *rand.Rand) (*Population, error) {
	plan := planSlots(cfg)
	pop.SortByCost()

	next := make([]*Individual, 0, cfg.PopulationSize)

	// (a) Elitism: unconditional carry-over of the best individuals.
	var i int
	for i = 0; i < plan.elite; i++ {
		next = append(next, pop.Individuals[i].Clone())
	}

	// (b) Survivors: the next-best block after the elite band.
	for i = 0; i < plan.survivors; i++ {
		next = append(next, pop.Individuals[plan.elite+i].Clone())
	}

	// (c) Crossover offspring: selection picks pairs, the configured
	// operator recombines them. Pairs yield two children; the final
	// slice is truncated to the exact slot count.
	offspring := make([]*Individual, 0, plan.crossover+1)
	for len(offspring) < plan.crossover {
		parents := selectParents(pop, 2, par.selection, rng)

		var t1, t2 []int
		switch cfg.Crossover {
		case CrossoverPMX:
			t1, t2 = partiallyMappedCrossover(parents[0].Tour, parents[1].Tour, rng)
		default:
			t1, t2 = orderCrossover(parents[0].Tour, parents[1].Tour, rng)
		}
		offspring = append(offspring, &Individual{Tour: t1}, &Individual{Tour: t2})
	}
	for i = 0; i < plan.crossover; i++ {
		refineTour(p, offspring[i].Tour)
	}
	next = append(next, offspring[:plan.crossover]...)

	// (d) Mutation offspring: a selected clone, mutated with the
	// controller's current probability, then refined like any other
	// offspring.
	for i = 0; i < plan.mutation; i++ {
		child := selectParents(pop, 1, par.selection, rng)[0]
		if rng.Float64() < par.mutationRate {
			applyMutation(child, cfg.Mutation, rng)
		}
		if refineTour(p, child.Tour) {
			child.Invalidate()
		}
		next = append(next, child)
	}

	np := &Population{Individuals: next}
	if np.Len() != cfg.PopulationSize {
		return nil, errPopulationDrift
	}
	if err := np.EvaluateAll(p); err != nil {
		return nil, err
	}

	return np, nil
}
