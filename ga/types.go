package ga

import "errors"

// ErrInvalidConfig is returned by Config.Validate (and Run) when the
// configuration is internally inconsistent: non-positive counts,
// fractions outside [0,1] or summing above 1, or an unknown strategy.
var ErrInvalidConfig = errors.New("ga: invalid configuration")

// ErrNilProblem is returned by Run when no problem instance is given.
var ErrNilProblem = errors.New("ga: nil problem")

// ErrCallbackFailure wraps an error returned by an observer callback.
// The run aborts immediately; no partial Result is produced.
var ErrCallbackFailure = errors.New("ga: observer callback failed")

// SelectionStrategy enumerates the parent-selection operators.
type SelectionStrategy int

const (
	// SelectionTournament samples k individuals uniformly and keeps the
	// best. Larger k ⇒ higher selection pressure.
	SelectionTournament SelectionStrategy = iota

	// SelectionRoulette samples proportionally to inverted cost
	// (1/(1+cost)), falling back to uniform when weights degenerate.
	SelectionRoulette

	// SelectionRank samples proportionally to rank position, which
	// avoids domination by outliers on the raw cost scale.
	SelectionRank
)

// String implements fmt.Stringer for diagnostics and flag parsing.
func (s SelectionStrategy) String() string {
	switch s {
	case SelectionTournament:
		return "tournament"
	case SelectionRoulette:
		return "roulette"
	case SelectionRank:
		return "rank"
	default:
		return "unknown"
	}
}

// CrossoverStrategy enumerates the recombination operators.
type CrossoverStrategy int

const (
	// CrossoverOX is Order Crossover: a contiguous slice from one
	// parent, the remainder in the other parent's relative order.
	CrossoverOX CrossoverStrategy = iota

	// CrossoverPMX is Partially Mapped Crossover: a contiguous slice
	// plus mapping-chain repair outside it.
	CrossoverPMX
)

func (c CrossoverStrategy) String() string {
	switch c {
	case CrossoverOX:
		return "OX"
	case CrossoverPMX:
		return "PMX"
	default:
		return "unknown"
	}
}

// MutationStrategy enumerates the mutation operators.
type MutationStrategy int

const (
	// MutationSwap exchanges two random positions.
	MutationSwap MutationStrategy = iota

	// MutationInversion reverses a random segment — preserves adjacency
	// locally and is generally the most effective move for TSP.
	MutationInversion

	// MutationScramble shuffles a random segment; the most disruptive
	// of the three, used by the adaptive escalation path.
	MutationScramble
)

func (m MutationStrategy) String() string {
	switch m {
	case MutationSwap:
		return "swap"
	case MutationInversion:
		return "inversion"
	case MutationScramble:
		return "scramble"
	default:
		return "unknown"
	}
}

// Diversity summarizes how spread out the population is. UniqueRatio is
// the primary control signal; the other two are reported for observers.
type Diversity struct {
	// UniqueRatio is the share of distinct tours in the population, in [0,1].
	UniqueRatio float64

	// Hamming is the mean pairwise positional distance between tours,
	// normalized by tour length, in [0,1].
	Hamming float64

	// CostVariance is the population variance of tour costs.
	CostVariance float64
}

// Member is one population entry inside a Snapshot: a copied tour plus
// its evaluated cost.
type Member struct {
	Tour []int
	Cost float64
}

// Snapshot is the read-only per-generation state handed to observers.
// All slices are deep copies; observers may retain them freely.
type Snapshot struct {
	Generation  int
	BestTour    []int // best-ever tour (monotonically non-worsening cost)
	BestCost    float64
	AverageCost float64
	Diversity   Diversity
	Stagnation  int // generations since the best-ever cost improved
	Population  []Member
}

// Observer receives one Snapshot per generation, synchronously and in
// registration order. Returning a non-nil error aborts the run.
type Observer func(Snapshot) error
