// Package ga - local tour refinement.
//
// refineTour is the engine's exploitation step: a deterministic
// first-improvement descent over the segment-reversal neighbourhood
// (the same 2-opt move mutateInversion samples at random). Crossover
// and mutation explore between basins; the descent drives each
// offspring toward the bottom of the basin it landed in.
package ga

import "github.com/katalvlaran/gatsp/problem"

// refineMaxSweeps caps the number of full neighbourhood passes per
// call. Offspring of refined parents start near a local optimum, so
// descent across generations still converges under a small cap.
const refineMaxSweeps = 3

// refineEps is the minimum cost gain a reversal must yield; it keeps
// FP noise from cycling the descent.
const refineEps = 1e-9

// refineTour improves tour in place by repeatedly reversing segments
// whose endpoints reconnect cheaper, until a full pass finds no gain or
// the sweep cap is hit. It reports whether any reversal was applied;
// callers holding a cached cost must Invalidate when it returns true.
//
// Contract:
//   - tour is a valid permutation of {0..p.Len()-1}.
//   - Asymmetric instances are left untouched: reversing a segment
//     flips its directed edges, which the O(1) endpoint delta below
//     does not model.
//
// Complexity: O(sweeps·n²) delta checks, O(n) per applied reversal.
func refineTour(p *problem.Problem, tour []int) bool {
	var n = len(tour)
	if n < 4 || !p.Symmetric() {
		return false
	}

	var (
		applied    bool
		improved   bool
		sweep      int
		i, j       int
		a, b, c, d int
		delta      float64
	)
	for sweep = 0; sweep < refineMaxSweeps; sweep++ {
		improved = false
		// Position 0 stays pinned so each undirected cycle is scanned
		// exactly once per pass.
		for i = 1; i < n-1; i++ {
			for j = i + 1; j < n; j++ {
				a, b = tour[i-1], tour[i]
				c, d = tour[j], tour[(j+1)%n]
				if a == d {
					// i==1, j==n-1: reversing the whole open segment
					// only flips orientation.
					continue
				}
				delta = edgeDelta(p, a, b, c, d)
				if delta < -refineEps {
					reverseSegment(tour, i, j)
					applied = true
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}

	return applied
}

// edgeDelta is the cost change of replacing edges (a,b) and (c,d) with
// (a,c) and (b,d). Indices originate from a validated permutation, so
// the range errors are structurally impossible.
func edgeDelta(p *problem.Problem, a, b, c, d int) float64 {
	ac, _ := p.Distance(a, c)
	bd, _ := p.Distance(b, d)
	ab, _ := p.Distance(a, b)
	cd, _ := p.Distance(c, d)

	return ac + bd - ab - cd
}

// reverseSegment reverses tour[lo..hi] inclusive.
func reverseSegment(tour []int, lo, hi int) {
	for lo < hi {
		tour[lo], tour[hi] = tour[hi], tour[lo]
		lo++
		hi--
	}
}
