// Package ga - shared helpers for the white-box operator tests.
// Helpers stay minimal and deterministic: a fixed seed per test, no
// time-based randomness anywhere.
package ga

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/problem"
)

// seedDet is the deterministic seed used across white-box tests.
const seedDet int64 = 7

// testRNG returns a fresh deterministic generator.
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(seedDet))
}

// squareProblem returns the canonical 4-city unit square (optimum 4.0).
func squareProblem(t *testing.T) *problem.Problem {
	t.Helper()
	p, err := problem.NewFromCoordinates([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)

	return p
}

// ringProblem returns an n-city cycle metric: dist(i,j) = min(|i-j|, n-|i-j|).
// The optimal Hamiltonian cycle costs exactly n.
func ringProblem(t *testing.T, n int) *problem.Problem {
	t.Helper()
	dist := make([][]float64, n)

	var i, j int
	var d float64
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			d = float64(i - j)
			if d < 0 {
				d = -d
			}
			if float64(n)-d < d {
				d = float64(n) - d
			}
			dist[i][j] = d
		}
	}

	p, err := problem.NewFromMatrix(dist)
	require.NoError(t, err)

	return p
}

// asymmetricRingProblem returns a directed n-cycle: following the ring
// forward costs 1 per hop, every other hop costs n.
func asymmetricRingProblem(t *testing.T, n int) *problem.Problem {
	t.Helper()
	dist := make([][]float64, n)

	var i, j int
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			switch {
			case i == j:
			case j == (i+1)%n:
				dist[i][j] = 1
			default:
				dist[i][j] = float64(n)
			}
		}
	}

	p, err := problem.NewFromMatrix(dist)
	require.NoError(t, err)

	return p
}

// requirePermutation fails the test unless tour is a permutation of
// {0..n-1} — the closure invariant every operator must uphold.
func requirePermutation(t *testing.T, tour []int, n int) {
	t.Helper()
	require.NoError(t, problem.ValidatePermutation(tour, n),
		"operator broke the permutation invariant: %v", tour)
}

// evaluatedPopulation builds a random evaluated population of the given
// size over p.
func evaluatedPopulation(t *testing.T, p *problem.Problem, size int, rng *rand.Rand) *Population {
	t.Helper()
	inds := make([]*Individual, size)

	var i int
	for i = 0; i < size; i++ {
		inds[i] = newRandomIndividual(p.Len(), rng)
	}
	pop := &Population{Individuals: inds}
	require.NoError(t, pop.EvaluateAll(p))

	return pop
}
