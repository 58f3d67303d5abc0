// Package problem defines the immutable TSP instance model consumed by
// the gatsp engine.
//
// A Problem is constructed once — from 2D city coordinates or from an
// explicit distance matrix — and is read-only thereafter. Construction
// from coordinates eagerly materializes the full n×n Euclidean distance
// matrix (O(n²) once) so that every subsequent tour evaluation is a
// plain O(n) matrix walk.
//
// Distance model:
//   - Symmetric by default; an explicit matrix with D(i,j) ≠ D(j,i) is
//     accepted and flagged via Symmetric()==false (ATSP instances).
//   - D(i,i) must be 0, all entries finite and non-negative.
//
// Tours are open permutations of {0..n-1}; the closing edge back to the
// first city is implicit and always included by TourLength.
//
// Errors (sentinel):
//
//	– ErrInvalidInput     malformed construction data.
//	– ErrIndexOutOfRange  city index outside [0..n-1].
//	– ErrInvalidTour      tour is not a permutation of all cities.
//
// All returned costs are rounded to 1e-9 to prevent cross-platform
// floating-point drift.
package problem
