package ga

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDefaultConfig_Valid ensures the published defaults pass their own
// validation.
func TestDefaultConfig_Valid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

// TestConfigValidate_Rejections sweeps every rejection branch; each bad
// mutation of a valid base must map to ErrInvalidConfig.
func TestConfigValidate_Rejections(t *testing.T) {
	cases := map[string]func(*Config){
		"zero population":        func(c *Config) { c.PopulationSize = 0 },
		"negative population":    func(c *Config) { c.PopulationSize = -5 },
		"zero generations":       func(c *Config) { c.MaxGenerations = 0 },
		"negative elitism":       func(c *Config) { c.ElitismCount = -1 },
		"elitism above N":        func(c *Config) { c.ElitismCount = c.PopulationSize + 1 },
		"tournament below 1":     func(c *Config) { c.TournamentSize = 0 },
		"zero stagnation":        func(c *Config) { c.StagnationThreshold = 0 },
		"negative fraction":      func(c *Config) { c.SurvivorFraction = -0.1 },
		"fraction above 1":       func(c *Config) { c.CrossoverFraction = 1.5 },
		"fractions sum above 1":  func(c *Config) { c.SurvivorFraction, c.CrossoverFraction, c.MutationFraction = 0.5, 0.5, 0.5 },
		"min diversity above 1":  func(c *Config) { c.MinDiversity = 1.2 },
		"negative convergence":   func(c *Config) { c.ConvergenceDiversity = -0.01 },
		"greedy seed above 1":    func(c *Config) { c.GreedySeedFraction = 2 },
		"zero mutation rate":     func(c *Config) { c.BaseMutationRate = 0 },
		"mutation rate above 1":  func(c *Config) { c.BaseMutationRate = 1.01 },
		"unknown selection":      func(c *Config) { c.Selection = SelectionStrategy(42) },
		"unknown crossover":      func(c *Config) { c.Crossover = CrossoverStrategy(42) },
		"unknown mutation":       func(c *Config) { c.Mutation = MutationStrategy(42) },
	}

	for name, corrupt := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			corrupt(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

// TestConfigValidate_Boundaries accepts the legal extremes.
func TestConfigValidate_Boundaries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PopulationSize = 1
	cfg.ElitismCount = 1 // full elitism
	cfg.TournamentSize = 1
	cfg.SurvivorFraction = 0
	cfg.CrossoverFraction = 1
	cfg.MutationFraction = 0
	cfg.BaseMutationRate = 1
	cfg.MinDiversity = 0
	cfg.ConvergenceDiversity = 1
	cfg.GreedySeedFraction = 0

	require.NoError(t, cfg.Validate())
}

// TestStrategyStrings covers the Stringer mappings including the
// unknown fallback.
func TestStrategyStrings(t *testing.T) {
	require.Equal(t, "tournament", SelectionTournament.String())
	require.Equal(t, "roulette", SelectionRoulette.String())
	require.Equal(t, "rank", SelectionRank.String())
	require.Equal(t, "unknown", SelectionStrategy(99).String())

	require.Equal(t, "OX", CrossoverOX.String())
	require.Equal(t, "PMX", CrossoverPMX.String())
	require.Equal(t, "unknown", CrossoverStrategy(99).String())

	require.Equal(t, "swap", MutationSwap.String())
	require.Equal(t, "inversion", MutationInversion.String())
	require.Equal(t, "scramble", MutationScramble.String())
	require.Equal(t, "unknown", MutationStrategy(99).String())
}
