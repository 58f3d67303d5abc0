// Package ga - immutable run outcome.
package ga

import "time"

// HistoryEntry records one generation of the run for post-hoc analysis.
type HistoryEntry struct {
	Generation  int
	BestCost    float64 // best-ever cost as of this generation
	AverageCost float64 // population mean cost
	Diversity   float64 // unique-tour ratio
}

// Result is the immutable snapshot produced at loop termination. The
// caller owns it; the engine keeps no references into it.
type Result struct {
	// BestTour is the lowest-cost tour seen across the whole run.
	BestTour []int

	// BestCost is BestTour's cost.
	BestCost float64

	// Generations is the number of generations actually executed.
	Generations int

	// Converged reports whether the run ended in the converged terminal
	// state (stagnation + collapsed diversity) rather than by
	// exhausting MaxGenerations.
	Converged bool

	// History holds one entry per executed generation, in order.
	History []HistoryEntry

	// Elapsed is the wall-clock duration of the run. Informational
	// only; it does not participate in determinism guarantees.
	Elapsed time.Duration
}
