// Package ga - diversity monitoring and adaptive parameter control.
//
// The controller is a small state machine over generations:
//
//	Stable ──(no improvement for StagnationThreshold gens)──▶ Stagnating
//	Stagnating ──(improvement or diversity recovers)──▶ Recovered
//	Recovered ──(parameters decayed back to baseline)──▶ Stable
//
// While stagnating, the mutation rate climbs and selection pressure
// relaxes so the search can escape the current basin; once progress
// resumes, both decay back toward the configured baseline. The
// diversity metric is a control signal only — it never gates
// correctness.
package ga

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/gatsp/problem"
)

// Adaptation tuning. Values mirror the escalation profile that proved
// stable across the supported instance sizes.
const (
	// mutationEscalationStep is added to the mutation rate per
	// stagnating generation beyond the threshold.
	mutationEscalationStep = 0.01

	// pressureDecayFactor shrinks selection pressure per stagnating
	// generation.
	pressureDecayFactor = 0.97

	// minSelectionPressure floors the pressure relaxation.
	minSelectionPressure = 0.5

	// recoveryHalfStep moves a parameter halfway back to baseline per
	// recovered generation.
	recoveryHalfStep = 0.5

	// baselineSnapTol treats parameters this close to baseline as
	// arrived (switches Recovered → Stable).
	baselineSnapTol = 1e-3

	// aggressiveRestartAt is the stagnation level that triggers a
	// partial population restart instead of targeted mutation.
	aggressiveRestartAt = 50

	// moderateMutateShare is the share of the population (worst tail)
	// hit by targeted adaptive mutation.
	moderateMutateShare = 0.3

	// restartKeepShare is the share of the population (best head)
	// preserved through an aggressive restart.
	restartKeepShare = 0.2

	// heavyMutateMinOps/heavyMutateMaxOps bound the stacked operations
	// applied to a pruned duplicate.
	heavyMutateMinOps = 2
	heavyMutateMaxOps = 5
)

// controllerState names the adaptation regime.
type controllerState int

const (
	stateStable controllerState = iota
	stateStagnating
	stateRecovered
)

func (s controllerState) String() string {
	switch s {
	case stateStagnating:
		return "stagnating"
	case stateRecovered:
		return "recovered"
	default:
		return "stable"
	}
}

// generationParams is the controller's per-generation output consumed
// by replacement.
type generationParams struct {
	mutationRate float64
	selection    selectionParams
}

// diversityController tracks best-ever progress and population spread,
// and owns the two adaptive knobs (mutation rate, selection pressure).
type diversityController struct {
	cfg Config

	state            controllerState
	sinceImprovement int
	lastBest         float64

	mutationRate float64
	pressure     float64
}

// newDiversityController starts in the stable state at baseline
// parameters.
func newDiversityController(cfg Config) *diversityController {
	return &diversityController{
		cfg:          cfg,
		state:        stateStable,
		lastBest:     math.Inf(1),
		mutationRate: cfg.BaseMutationRate,
		pressure:     1.0,
	}
}

// params publishes the current operator parameters.
func (dc *diversityController) params() generationParams {
	return generationParams{
		mutationRate: dc.mutationRate,
		selection: selectionParams{
			strategy:       dc.cfg.Selection,
			tournamentSize: dc.cfg.TournamentSize,
			pressure:       dc.pressure,
		},
	}
}

// observe ingests the generation's best-ever cost and unique-tour
// ratio, updates the stagnation counter, and advances the state
// machine. Called exactly once per generation.
//
// Complexity: O(1).
func (dc *diversityController) observe(bestCost, uniqueRatio float64) {
	var improved = bestCost < dc.lastBest
	if improved {
		dc.lastBest = bestCost
		dc.sinceImprovement = 0
	} else {
		dc.sinceImprovement++
	}

	switch dc.state {
	case stateStagnating:
		if improved || uniqueRatio >= dc.cfg.MinDiversity {
			dc.state = stateRecovered
			dc.decayTowardBaseline()
			return
		}
		dc.escalate()

	default: // stateStable, stateRecovered
		if dc.sinceImprovement >= dc.cfg.StagnationThreshold {
			dc.state = stateStagnating
			dc.escalate()
			return
		}
		if dc.state == stateRecovered {
			dc.decayTowardBaseline()
		}
	}
}

// escalate raises the mutation rate and relaxes selection pressure.
func (dc *diversityController) escalate() {
	dc.mutationRate += mutationEscalationStep
	if dc.mutationRate > 1 {
		dc.mutationRate = 1
	}
	dc.pressure *= pressureDecayFactor
	if dc.pressure < minSelectionPressure {
		dc.pressure = minSelectionPressure
	}
}

// decayTowardBaseline moves both knobs halfway back to baseline and
// snaps to Stable once they arrive.
func (dc *diversityController) decayTowardBaseline() {
	dc.mutationRate = dc.cfg.BaseMutationRate + (dc.mutationRate-dc.cfg.BaseMutationRate)*recoveryHalfStep
	dc.pressure = 1 + (dc.pressure-1)*recoveryHalfStep

	if math.Abs(dc.mutationRate-dc.cfg.BaseMutationRate) < baselineSnapTol &&
		math.Abs(dc.pressure-1) < baselineSnapTol {
		dc.mutationRate = dc.cfg.BaseMutationRate
		dc.pressure = 1
		dc.state = stateStable
	}
}

// metrics computes the per-generation diversity summary.
//
// Complexity: O(N²·n) dominated by the pairwise Hamming scan.
func (dc *diversityController) metrics(pop *Population) Diversity {
	return Diversity{
		UniqueRatio:  pop.UniqueRatio(),
		Hamming:      meanHammingDistance(pop.Individuals),
		CostVariance: costVariance(pop.Individuals),
	}
}

// meanHammingDistance is the average positional difference between all
// tour pairs, normalized by tour length. 0 ⇒ identical population,
// values near 1 ⇒ fully scattered.
//
// Complexity: O(N²·n).
func meanHammingDistance(inds []*Individual) float64 {
	if len(inds) < 2 {
		return 0
	}

	var (
		total float64
		pairs int
		i, j  int
		k     int
		diff  int
		n     = len(inds[0].Tour)
	)
	for i = 0; i < len(inds); i++ {
		for j = i + 1; j < len(inds); j++ {
			diff = 0
			for k = 0; k < n; k++ {
				if inds[i].Tour[k] != inds[j].Tour[k] {
					diff++
				}
			}
			total += float64(diff) / float64(n)
			pairs++
		}
	}

	return total / float64(pairs)
}

// costVariance is the population variance of evaluated costs.
//
// Complexity: O(N).
func costVariance(inds []*Individual) float64 {
	var (
		sum   float64
		count int
	)
	for _, ind := range inds {
		if ind.Evaluated() {
			sum += ind.Cost()
			count++
		}
	}
	if count < 2 {
		return 0
	}

	var (
		mean = sum / float64(count)
		v    float64
		d    float64
	)
	for _, ind := range inds {
		if ind.Evaluated() {
			d = ind.Cost() - mean
			v += d * d
		}
	}

	return v / float64(count)
}

// maintain prunes positional duplicates once the unique-tour ratio
// falls below MinDiversity: the first occurrence of each tour survives,
// later copies are replaced with heavily mutated clones. Elite slots
// (after sorting, the best ElitismCount individuals) are never touched,
// preserving the elitism guarantee.
//
// Complexity: O(N log N · n) sort + O(N·n) scan.
func (dc *diversityController) maintain(pop *Population, p *problem.Problem, rng *rand.Rand) error {
	if pop.UniqueRatio() >= dc.cfg.MinDiversity {
		return nil
	}

	pop.SortByCost()
	seen := make(map[string]struct{}, pop.Len())

	var (
		i   int
		ind *Individual
		key string
		ok  bool
		err error
	)
	for i, ind = range pop.Individuals {
		key = tourKey(ind.Tour)
		if _, ok = seen[key]; !ok || i < dc.cfg.ElitismCount {
			seen[key] = struct{}{}
			continue
		}

		// Duplicate beyond the elite band: replace with a heavy mutant.
		mutant := ind.Clone()
		heavyMutate(mutant, rng)
		if _, err = mutant.Evaluate(p); err != nil {
			return err
		}
		pop.Individuals[i] = mutant
		seen[tourKey(mutant.Tour)] = struct{}{}
	}

	return nil
}

// heavyMutate stacks 2–5 random swap/inversion operations; disruptive
// enough to separate a duplicate from its source basin.
func heavyMutate(ind *Individual, rng *rand.Rand) {
	var ops = heavyMutateMinOps + rng.Intn(heavyMutateMaxOps-heavyMutateMinOps+1)

	var i int
	for i = 0; i < ops; i++ {
		if rng.Float64() < 0.5 {
			mutateSwap(ind.Tour, rng)
		} else {
			mutateInversion(ind.Tour, rng)
		}
	}
	ind.Invalidate()
}

// adapt applies the stagnation response. Moderate stagnation mutates
// the worst tail of the population in place (adaptive escalation);
// heavy stagnation performs a partial restart, regenerating everything
// below the preserved head from restartRNG and resetting the counter.
// Both paths respect the elite band.
//
// Complexity: moderate O(N log N·n + tail·n); restart O(N·n).
func (dc *diversityController) adapt(pop *Population, p *problem.Problem, rng, restartRNG *rand.Rand) error {
	if dc.state != stateStagnating {
		return nil
	}

	pop.SortByCost()

	var err error
	if dc.sinceImprovement < aggressiveRestartAt {
		// Moderate: hit the worst tail with escalating mutation.
		var from = int(float64(pop.Len()) * (1 - moderateMutateShare))
		if from < dc.cfg.ElitismCount {
			from = dc.cfg.ElitismCount
		}

		var i int
		for i = from; i < pop.Len(); i++ {
			adaptiveMutate(pop.Individuals[i], dc.sinceImprovement, dc.cfg.Mutation, rng)
			if _, err = pop.Individuals[i].Evaluate(p); err != nil {
				return err
			}
		}

		return nil
	}

	// Aggressive: keep the head, regenerate the rest.
	var keep = int(float64(pop.Len()) * restartKeepShare)
	if keep < dc.cfg.ElitismCount {
		keep = dc.cfg.ElitismCount
	}
	if keep < 1 {
		keep = 1
	}

	var (
		n = p.Len()
		i int
	)
	for i = keep; i < pop.Len(); i++ {
		fresh := newRandomIndividual(n, restartRNG)
		if _, err = fresh.Evaluate(p); err != nil {
			return err
		}
		pop.Individuals[i] = fresh
	}

	dc.sinceImprovement = 0
	dc.state = stateRecovered
	dc.decayTowardBaseline()

	return nil
}
