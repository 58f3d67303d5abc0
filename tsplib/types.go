package tsplib

import "errors"

// ErrUnsupportedType is returned when the TYPE header is missing or
// names anything other than TSP (e.g. ATSP, HCP, TOUR).
var ErrUnsupportedType = errors.New("tsplib: unsupported or missing TYPE")

// ErrUnsupportedEdgeWeight is returned when EDGE_WEIGHT_TYPE is missing
// or not EUC_2D.
var ErrUnsupportedEdgeWeight = errors.New("tsplib: unsupported or missing EDGE_WEIGHT_TYPE")

// ErrDimensionMismatch is returned when the number of parsed
// coordinates disagrees with the DIMENSION header.
var ErrDimensionMismatch = errors.New("tsplib: DIMENSION does not match coordinate count")

// ErrMalformedInstance is returned for structural damage: an
// unparsable header value, a coordinate line with missing or
// non-numeric fields, or a missing DIMENSION.
var ErrMalformedInstance = errors.New("tsplib: malformed instance")

// Instance is a parsed TSPLIB file. Field names mirror the header keys.
type Instance struct {
	// Name is the NAME header value, or "unknown" when absent.
	Name string

	// Type is the TYPE header value (always "TSP" after a successful
	// parse).
	Type string

	// Dimension is the declared city count.
	Dimension int

	// EdgeWeightType is the declared metric (always "EUC_2D").
	EdgeWeightType string

	// Coords holds one (x, y) pair per city, in file order.
	Coords [][2]float64
}
