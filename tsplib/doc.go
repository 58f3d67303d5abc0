// Package tsplib reads TSPLIB-formatted travelling-salesman instances
// and converts them into problem.Problem values.
//
// Scope: TYPE: TSP instances with EDGE_WEIGHT_TYPE: EUC_2D and a
// NODE_COORD_SECTION. Distances follow the TSPLIB convention for
// EUC_2D, nearest-integer Euclidean, so costs line up with published
// optima (KnownOptimum).
//
// Design principles:
//   - Strict sentinels from types.go; no logging, no panics on input.
//   - Parse works on any io.Reader; LoadFile is the thin file wrapper.
//   - Unknown header keys are ignored, matching how instances in the
//     wild mix optional fields (COMMENT, DISPLAY_DATA_TYPE, ...).
package tsplib
