package ga

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/problem"
)

// TestNewRandomIndividual starts unevaluated with a valid tour.
func TestNewRandomIndividual(t *testing.T) {
	ind := newRandomIndividual(10, testRNG())

	requirePermutation(t, ind.Tour, 10)
	require.False(t, ind.Evaluated())
	require.True(t, math.IsInf(ind.Cost(), 1), "unevaluated cost must rank worst")
}

// TestNewGreedyIndividual_RingTieBreak pins the smallest-index
// tie-breaker: on the 5-city ring, cities 1 and 4 are equidistant from
// 0, so the tour must proceed through 1.
func TestNewGreedyIndividual_RingTieBreak(t *testing.T) {
	p := ringProblem(t, 5)

	ind, err := newGreedyIndividual(p, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, ind.Tour)
	require.False(t, ind.Evaluated())
}

// TestNewGreedyIndividual_SquareIsOptimal checks nearest-neighbour from
// any corner of the unit square walks the perimeter (cost 4).
func TestNewGreedyIndividual_SquareIsOptimal(t *testing.T) {
	p := squareProblem(t)

	var start int
	for start = 0; start < p.Len(); start++ {
		ind, err := newGreedyIndividual(p, start)
		require.NoError(t, err)

		cost, err := ind.Evaluate(p)
		require.NoError(t, err)
		require.Equal(t, 4.0, cost, "greedy from corner %d missed the perimeter", start)
	}
}

// TestNewGreedyIndividual_BadStart rejects out-of-range start cities.
func TestNewGreedyIndividual_BadStart(t *testing.T) {
	p := squareProblem(t)

	_, err := newGreedyIndividual(p, -1)
	require.ErrorIs(t, err, problem.ErrIndexOutOfRange)

	_, err = newGreedyIndividual(p, p.Len())
	require.ErrorIs(t, err, problem.ErrIndexOutOfRange)
}

// TestIndividual_EvaluateCaching verifies the cache lifecycle:
// miss → hit → Invalidate → miss.
func TestIndividual_EvaluateCaching(t *testing.T) {
	p := squareProblem(t)
	ind := &Individual{Tour: []int{0, 1, 2, 3}}

	cost, err := ind.Evaluate(p)
	require.NoError(t, err)
	require.Equal(t, 4.0, cost)
	require.True(t, ind.Evaluated())
	require.Equal(t, 4.0, ind.Cost())

	// Cached: a second call returns the same value.
	cost, err = ind.Evaluate(p)
	require.NoError(t, err)
	require.Equal(t, 4.0, cost)

	ind.Invalidate()
	require.False(t, ind.Evaluated())
	require.True(t, math.IsInf(ind.Cost(), 1))
}

// TestIndividual_EvaluateInvalidTour surfaces the underlying validation
// error without caching anything.
func TestIndividual_EvaluateInvalidTour(t *testing.T) {
	p := squareProblem(t)
	ind := &Individual{Tour: []int{0, 1, 2, 2}}

	_, err := ind.Evaluate(p)
	require.ErrorIs(t, err, problem.ErrInvalidTour)
	require.False(t, ind.Evaluated())
}

// TestIndividual_CloneIsDeep checks clones share nothing with the
// original.
func TestIndividual_CloneIsDeep(t *testing.T) {
	p := squareProblem(t)
	orig := &Individual{Tour: []int{0, 1, 2, 3}}
	_, err := orig.Evaluate(p)
	require.NoError(t, err)

	cp := orig.Clone()
	require.Equal(t, orig.Tour, cp.Tour)
	require.Equal(t, orig.Cost(), cp.Cost())

	cp.Tour[0], cp.Tour[1] = cp.Tour[1], cp.Tour[0]
	cp.Invalidate()

	require.Equal(t, []int{0, 1, 2, 3}, orig.Tour, "clone mutation reached the original")
	require.True(t, orig.Evaluated())
}

// TestIndividual_LessOrdering covers cost ordering, the lexicographic
// tie-break and the unevaluated (+Inf) ranking.
func TestIndividual_LessOrdering(t *testing.T) {
	cheap := &Individual{Tour: []int{0, 1}, cost: 1, evaluated: true}
	dear := &Individual{Tour: []int{1, 0}, cost: 2, evaluated: true}
	require.True(t, cheap.less(dear))
	require.False(t, dear.less(cheap))

	// Equal cost: lexicographic tour order decides, strictly.
	tieA := &Individual{Tour: []int{0, 2, 1}, cost: 5, evaluated: true}
	tieB := &Individual{Tour: []int{1, 0, 2}, cost: 5, evaluated: true}
	require.True(t, tieA.less(tieB))
	require.False(t, tieB.less(tieA))
	require.False(t, tieA.less(tieA), "less must be irreflexive")

	// Unevaluated ranks strictly worse than any evaluated cost.
	stale := &Individual{Tour: []int{2, 1, 0}}
	require.True(t, tieA.less(stale))
	require.False(t, stale.less(tieA))
}
