// Package ga - configuration for the genetic engine.
//
// Config is a value type: construct via DefaultConfig, adjust fields,
// pass to Run. Run calls Validate, so a hand-built Config cannot smuggle
// an inconsistent parameter set past the entry point.
package ga

import "math"

// fracTol absorbs FP noise when checking that the generation fractions
// do not exceed 1.
const fracTol = 1e-9

// Default knobs. Values follow the mid-size profile that behaves well
// on instances up to ~100 cities.
const (
	// DefaultPopulationSize is the default number of individuals.
	DefaultPopulationSize = 100

	// DefaultMaxGenerations is the default iteration budget.
	DefaultMaxGenerations = 500

	// DefaultTournamentSize is the default tournament sample size k.
	DefaultTournamentSize = 3

	// DefaultStagnationThreshold is how many non-improving generations
	// switch the diversity controller into the stagnating state.
	DefaultStagnationThreshold = 20

	// DefaultBaseMutationRate is the probability that a mutation-slot
	// offspring actually mutates (rather than cloning its parent).
	DefaultBaseMutationRate = 0.8

	// DefaultMinDiversity is the unique-tour ratio below which duplicate
	// pruning kicks in.
	DefaultMinDiversity = 0.3

	// DefaultConvergenceDiversity is the unique-tour ratio below which a
	// stagnated run is declared converged.
	DefaultConvergenceDiversity = 0.05

	// DefaultGreedySeedFraction is the share of the initial population
	// seeded with nearest-neighbour tours (distinct start cities).
	DefaultGreedySeedFraction = 0.1
)

// Config holds every recognized option of the engine. Immutable for the
// duration of a run.
type Config struct {
	// PopulationSize is the fixed population size N (> 0).
	PopulationSize int

	// MaxGenerations is the iteration budget (> 0).
	MaxGenerations int

	// SurvivorFraction, CrossoverFraction and MutationFraction split the
	// non-elite slots of each new generation. Each lies in [0,1] and
	// their sum must not exceed 1; any remainder is assigned
	// deterministically (see replacement.go).
	SurvivorFraction  float64
	CrossoverFraction float64
	MutationFraction  float64

	// Selection, Crossover and Mutation pick the operator variants.
	Selection SelectionStrategy
	Crossover CrossoverStrategy
	Mutation  MutationStrategy

	// ElitismCount individuals are copied unconditionally into every new
	// generation (0 ≤ ElitismCount ≤ PopulationSize).
	ElitismCount int

	// TournamentSize is the sample size k for tournament selection (≥ 1).
	TournamentSize int

	// Seed feeds the single RNG threaded through the whole run.
	// Seed==0 selects a fixed default stream; runs stay reproducible.
	Seed int64

	// StagnationThreshold is the number of consecutive non-improving
	// generations after which adaptation engages (> 0).
	StagnationThreshold int

	// MinDiversity is the unique-ratio floor guarded by duplicate
	// pruning, in [0,1].
	MinDiversity float64

	// ConvergenceDiversity is the unique-ratio ceiling of the converged
	// terminal state, in [0,1].
	ConvergenceDiversity float64

	// GreedySeedFraction is the share of nearest-neighbour individuals
	// in the initial population, in [0,1].
	GreedySeedFraction float64

	// BaseMutationRate is the baseline mutation probability, in (0,1].
	// The diversity controller raises it under stagnation and decays it
	// back once improvement resumes.
	BaseMutationRate float64
}

// DefaultConfig returns the production-safe defaults:
// N=100, 500 generations, 0.3/0.5/0.2 survivor/crossover/mutation split,
// tournament selection (k=3), OX crossover, inversion mutation,
// elitism 2.
func DefaultConfig() Config {
	return Config{
		PopulationSize:       DefaultPopulationSize,
		MaxGenerations:       DefaultMaxGenerations,
		SurvivorFraction:     0.3,
		CrossoverFraction:    0.5,
		MutationFraction:     0.2,
		Selection:            SelectionTournament,
		Crossover:            CrossoverOX,
		Mutation:             MutationInversion,
		ElitismCount:         2,
		TournamentSize:       DefaultTournamentSize,
		Seed:                 0,
		StagnationThreshold:  DefaultStagnationThreshold,
		MinDiversity:         DefaultMinDiversity,
		ConvergenceDiversity: DefaultConvergenceDiversity,
		GreedySeedFraction:   DefaultGreedySeedFraction,
		BaseMutationRate:     DefaultBaseMutationRate,
	}
}

// Validate checks internal consistency. All violations map to
// ErrInvalidConfig; the sentinel is the contract, the message is not.
//
// Complexity: O(1).
func (c Config) Validate() error {
	if c.PopulationSize <= 0 || c.MaxGenerations <= 0 {
		return ErrInvalidConfig
	}
	if c.ElitismCount < 0 || c.ElitismCount > c.PopulationSize {
		return ErrInvalidConfig
	}
	if c.TournamentSize < 1 {
		return ErrInvalidConfig
	}
	if c.StagnationThreshold <= 0 {
		return ErrInvalidConfig
	}

	// Each fraction must be a valid probability…
	for _, f := range []float64{
		c.SurvivorFraction, c.CrossoverFraction, c.MutationFraction,
		c.MinDiversity, c.ConvergenceDiversity, c.GreedySeedFraction,
	} {
		if math.IsNaN(f) || f < 0 || f > 1 {
			return ErrInvalidConfig
		}
	}
	// …and the generation split must not exceed the whole population.
	if c.SurvivorFraction+c.CrossoverFraction+c.MutationFraction > 1+fracTol {
		return ErrInvalidConfig
	}

	if math.IsNaN(c.BaseMutationRate) || c.BaseMutationRate <= 0 || c.BaseMutationRate > 1 {
		return ErrInvalidConfig
	}

	// Strategy enums form closed sets; anything else is rejected here,
	// once, rather than dispatched dynamically per call.
	switch c.Selection {
	case SelectionTournament, SelectionRoulette, SelectionRank:
	default:
		return ErrInvalidConfig
	}
	switch c.Crossover {
	case CrossoverOX, CrossoverPMX:
	default:
		return ErrInvalidConfig
	}
	switch c.Mutation {
	case MutationSwap, MutationInversion, MutationScramble:
	default:
		return ErrInvalidConfig
	}

	return nil
}
