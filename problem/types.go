package problem

import "errors"

// ErrInvalidInput is returned when construction data is malformed:
// no cities, non-square matrix, negative/NaN/Inf entries, or a
// non-zero diagonal.
var ErrInvalidInput = errors.New("problem: invalid instance data")

// ErrIndexOutOfRange is returned when a city index falls outside
// [0..n-1].
var ErrIndexOutOfRange = errors.New("problem: city index out of range")

// ErrInvalidTour is returned when a tour is not a permutation of all
// city indices (wrong length, duplicate, or out-of-range entry). In
// normal operation this signals a defect in the caller, never an
// expected condition.
var ErrInvalidTour = errors.New("problem: tour is not a permutation of all cities")
