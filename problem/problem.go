// Package problem - immutable TSP instance representation.
//
// Design principles:
//   - Constructed once, read-only afterwards; safe to share across the
//     whole run without copying.
//   - Strict sentinels from types.go; no logging, no panics on user input.
//   - Eager O(n²) matrix build so the hot path (TourLength) stays O(n)
//     with no hidden allocations.
package problem

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// symTol is the structural tolerance for symmetry detection. Entries
// within symTol of each other are considered equal.
const symTol = 1e-12

// roundScale controls cost stabilization precision (1e-9). It removes
// tiny FP drift across platforms without affecting tour ranking.
const roundScale = 1e9

// Problem is an immutable TSP instance: a fixed set of cities and a
// dense pairwise distance matrix. Zero value is not usable; construct
// via NewFromCoordinates or NewFromMatrix.
type Problem struct {
	n         int
	dist      *mat64.Dense
	coords    [][2]float64 // nil when built from an explicit matrix
	symmetric bool
}

// NewFromCoordinates builds a symmetric Euclidean instance from 2D city
// coordinates. The full distance matrix is computed eagerly.
//
// Contract:
//   - len(coords) ≥ 2; ErrInvalidInput otherwise.
//   - All coordinates must be finite.
//
// Complexity: O(n²) time, O(n²) space.
func NewFromCoordinates(coords [][2]float64) (*Problem, error) {
	var n = len(coords)
	if n < 2 {
		return nil, ErrInvalidInput
	}

	var (
		i, j   int
		dx, dy float64
		d      float64
	)
	// Reject non-finite coordinates before any allocation-heavy work.
	for i = 0; i < n; i++ {
		if !isFinite(coords[i][0]) || !isFinite(coords[i][1]) {
			return nil, ErrInvalidInput
		}
	}

	// Fill the upper triangle and mirror; diagonal stays exactly zero.
	dist := mat64.NewDense(n, n, nil)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = coords[i][0] - coords[j][0]
			dy = coords[i][1] - coords[j][1]
			d = math.Hypot(dx, dy) // stable sqrt(dx²+dy²)
			dist.Set(i, j, d)
			dist.Set(j, i, d)
		}
	}

	// Retain a private copy of the coordinates for renderers.
	cp := make([][2]float64, n)
	copy(cp, coords)

	return &Problem{n: n, dist: dist, coords: cp, symmetric: true}, nil
}

// NewFromMatrix builds an instance from an explicit n×n distance matrix.
// Asymmetric matrices are accepted and flagged (Symmetric()==false).
//
// Contract:
//   - dist must be square with n ≥ 2.
//   - Diagonal entries must be 0 (within symTol); all entries finite
//     and non-negative. ErrInvalidInput otherwise.
//
// Complexity: O(n²) time, O(n²) space (defensive copy).
func NewFromMatrix(dist [][]float64) (*Problem, error) {
	var n = len(dist)
	if n < 2 {
		return nil, ErrInvalidInput
	}

	var (
		i, j int
		v    float64
	)
	// Stage 1: shape check.
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return nil, ErrInvalidInput
		}
	}

	// Stage 2: value checks + defensive copy into dense storage.
	m := mat64.NewDense(n, n, nil)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = dist[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrInvalidInput
			}
			if v < 0 {
				return nil, ErrInvalidInput
			}
			if i == j && math.Abs(v) > symTol {
				return nil, ErrInvalidInput
			}
			m.Set(i, j, v)
		}
	}

	// Stage 3: symmetry detection (upper triangle only).
	var symmetric = true
	for i = 0; i < n && symmetric; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > symTol {
				symmetric = false
				break
			}
		}
	}

	return &Problem{n: n, dist: m, symmetric: symmetric}, nil
}

// Len returns the number of cities n.
func (p *Problem) Len() int { return p.n }

// Symmetric reports whether D(i,j)==D(j,i) holds for all pairs.
func (p *Problem) Symmetric() bool { return p.symmetric }

// Coordinates returns a copy of the city coordinates, or nil when the
// instance was built from an explicit matrix.
func (p *Problem) Coordinates() [][2]float64 {
	if p.coords == nil {
		return nil
	}
	cp := make([][2]float64, len(p.coords))
	copy(cp, p.coords)

	return cp
}

// Distance returns D(i,j).
//
// Complexity: O(1).
func (p *Problem) Distance(i, j int) (float64, error) {
	if i < 0 || i >= p.n || j < 0 || j >= p.n {
		return 0, ErrIndexOutOfRange
	}

	return p.dist.At(i, j), nil
}

// TourLength computes the total cost of the closed cycle described by
// tour: the sum of consecutive edges plus the implicit return edge
// tour[n-1]→tour[0].
//
// Contract:
//   - tour must be a permutation of {0..n-1}; ErrInvalidTour otherwise.
//
// Complexity: O(n) time, O(n) space (permutation check).
func (p *Problem) TourLength(tour []int) (float64, error) {
	if err := ValidatePermutation(tour, p.n); err != nil {
		return 0, err
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < p.n-1; i++ {
		sum += p.dist.At(tour[i], tour[i+1])
	}
	sum += p.dist.At(tour[p.n-1], tour[0]) // close the cycle

	return round1e9(sum), nil
}

// ValidatePermutation checks that tour is a permutation of {0..n-1} of
// length n. A single O(n) boolean marker slice is the only allocation.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(tour []int, n int) error {
	if n <= 0 || len(tour) != n {
		return ErrInvalidTour
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		// Out-of-range entry violates the permutation contract.
		if v < 0 || v >= n {
			return ErrInvalidTour
		}
		// So does a duplicate.
		if seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
