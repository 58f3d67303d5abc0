// Package ga - the generational engine.
//
// Run drives the state machine Initialized → Running → {Converged,
// Exhausted}. The engine owns the population exclusively; every other
// component sees it read-only (operators) or as deep copies
// (observers). No goroutines, no global state, no time-based
// randomness: the only wall-clock read feeds Result.Elapsed.
package ga

import (
	"fmt"
	"time"

	"github.com/katalvlaran/gatsp/problem"
)

// Run executes the genetic algorithm on p under cfg and returns the
// immutable Result. Observers are invoked synchronously once per
// generation, in registration order, with deep-copied snapshots; an
// observer error aborts the run immediately (wrapped in
// ErrCallbackFailure) and no Result is produced.
//
// Contract:
//   - p non-nil (ErrNilProblem), cfg valid (ErrInvalidConfig).
//   - Deterministic: identical (p, cfg, cfg.Seed) ⇒ identical Result
//     and identical generation-by-generation history.
//
// Complexity: O(G·N·n²) worst case, dominated by offspring refinement
// and the per-generation pairwise diversity metric.
func Run(p *problem.Problem, cfg Config, observers ...Observer) (Result, error) {
	// Initialized: validate inputs, derive RNG streams, seed population.
	if p == nil {
		return Result{}, ErrNilProblem
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	var (
		start      = time.Now()
		base       = rngFromSeed(cfg.Seed)
		initRNG    = deriveRNG(base, streamInit)
		evoRNG     = deriveRNG(base, streamEvolve)
		restartRNG = deriveRNG(base, streamRestart)
	)

	pop, err := newPopulation(p, cfg, initRNG)
	if err != nil {
		return Result{}, err
	}
	if err = pop.EvaluateAll(p); err != nil {
		return Result{}, err
	}

	var (
		dc        = newDiversityController(cfg)
		best      = pop.Best().Clone() // best-ever: monotonically non-worsening
		history   = make([]HistoryEntry, 0, cfg.MaxGenerations)
		converged bool
	)

	// Running.
	var gen int
	for gen = 0; gen < cfg.MaxGenerations; gen++ {
		// (a) Evaluate any individuals with stale fitness.
		if err = pop.EvaluateAll(p); err != nil {
			return Result{}, err
		}

		// (f, hoisted) best-ever update: strict cost improvement only,
		// so an equal-cost tour never displaces the incumbent.
		if cur := pop.Best(); cur.Cost() < best.Cost() {
			best = cur.Clone()
		}

		// (b) Consult the diversity controller.
		met := dc.metrics(pop)
		dc.observe(best.Cost(), met.UniqueRatio)

		avg := pop.AverageCost()
		history = append(history, HistoryEntry{
			Generation:  gen,
			BestCost:    best.Cost(),
			AverageCost: avg,
			Diversity:   met.UniqueRatio,
		})

		// (g) Observer notification: synchronous, registration order,
		// deep copies only. A failure aborts the run — no silent
		// swallowing, no partial Result.
		if len(observers) > 0 {
			snap := Snapshot{
				Generation:  gen,
				BestTour:    append([]int(nil), best.Tour...),
				BestCost:    best.Cost(),
				AverageCost: avg,
				Diversity:   met,
				Stagnation:  dc.sinceImprovement,
				Population:  pop.snapshotMembers(),
			}
			for _, obs := range observers {
				if err = obs(snap); err != nil {
					return Result{}, fmt.Errorf("%w: generation %d: %w", ErrCallbackFailure, gen, err)
				}
			}
		}

		// Converged: prolonged stagnation with collapsed diversity.
		if dc.sinceImprovement >= 2*cfg.StagnationThreshold &&
			met.UniqueRatio < cfg.ConvergenceDiversity {
			converged = true
			break
		}

		// Diversity upkeep, stagnation response, then (c)+(d)+(e):
		// selection, variation and elitist replacement.
		if err = dc.maintain(pop, p, evoRNG); err != nil {
			return Result{}, err
		}
		if err = dc.adapt(pop, p, evoRNG, restartRNG); err != nil {
			return Result{}, err
		}
		if pop, err = nextGeneration(pop, p, cfg, dc.params(), evoRNG); err != nil {
			return Result{}, err
		}
	}

	// The final replacement may have produced a new best that the loop
	// never observed; fold it in before snapshotting the Result.
	if err = pop.EvaluateAll(p); err != nil {
		return Result{}, err
	}
	if cur := pop.Best(); cur.Cost() < best.Cost() {
		best = cur.Clone()
	}

	return Result{
		BestTour:    append([]int(nil), best.Tour...),
		BestCost:    best.Cost(),
		Generations: len(history),
		Converged:   converged,
		History:     history,
		Elapsed:     time.Since(start),
	}, nil
}
