// Package tsplib - parser and Problem conversion.
package tsplib

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gatsp/problem"
)

// supported header values.
const (
	typeTSP       = "TSP"
	weightEUC2D   = "EUC_2D"
	sectionCoords = "NODE_COORD_SECTION"
	sectionEOF    = "EOF"
)

// Parse reads one TSPLIB instance from r.
//
// Contract:
//   - TYPE must be TSP (ErrUnsupportedType), EDGE_WEIGHT_TYPE must be
//     EUC_2D (ErrUnsupportedEdgeWeight).
//   - DIMENSION must be declared and match the coordinate count
//     (ErrMalformedInstance / ErrDimensionMismatch).
//   - Coordinate lines are "index x y"; the TSPLIB index (1..n) is
//     ignored, file order decides city numbering.
//
// Complexity: O(L) over the input lines.
func Parse(r io.Reader) (*Instance, error) {
	var (
		inst     = Instance{Name: "unknown"}
		inCoords bool
		line     string
		upper    string
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		upper = strings.ToUpper(line)

		switch {
		case upper == sectionEOF:
			inCoords = false

		case strings.HasPrefix(upper, sectionCoords):
			inCoords = true

		case inCoords:
			x, y, err := parseCoordLine(line)
			if err != nil {
				return nil, err
			}
			inst.Coords = append(inst.Coords, [2]float64{x, y})
			// Stop consuming once the declared count is reached; some
			// files append display sections without an EOF marker first.
			if inst.Dimension > 0 && len(inst.Coords) >= inst.Dimension {
				inCoords = false
			}

		default:
			if err := parseHeader(&inst, line); err != nil {
				return nil, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if inst.Type != typeTSP {
		return nil, ErrUnsupportedType
	}
	if inst.EdgeWeightType != weightEUC2D {
		return nil, ErrUnsupportedEdgeWeight
	}
	if inst.Dimension <= 0 {
		return nil, ErrMalformedInstance
	}
	if len(inst.Coords) != inst.Dimension {
		return nil, ErrDimensionMismatch
	}

	return &inst, nil
}

// LoadFile parses the TSPLIB instance stored at path.
func LoadFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// parseHeader ingests one "KEY : value" line. Unknown keys are ignored.
func parseHeader(inst *Instance, line string) error {
	key, value, found := strings.Cut(line, ":")
	if !found {
		// Bare keyword outside any section (e.g. a display section
		// marker). Harmless.
		return nil
	}
	key = strings.ToUpper(strings.TrimSpace(key))
	value = strings.TrimSpace(value)

	switch key {
	case "NAME":
		if value != "" {
			inst.Name = value
		}
	case "TYPE":
		inst.Type = strings.ToUpper(value)
	case "DIMENSION":
		dim, err := strconv.Atoi(value)
		if err != nil || dim <= 0 {
			return ErrMalformedInstance
		}
		inst.Dimension = dim
	case "EDGE_WEIGHT_TYPE":
		inst.EdgeWeightType = strings.ToUpper(value)
	}

	return nil
}

// parseCoordLine splits "index x y" and returns the coordinate pair.
func parseCoordLine(line string) (float64, float64, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, 0, ErrMalformedInstance
	}

	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, ErrMalformedInstance
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, 0, ErrMalformedInstance
	}

	return x, y, nil
}

// Problem converts the instance into a problem.Problem using the
// TSPLIB EUC_2D convention: every pairwise distance is the Euclidean
// distance rounded to the nearest integer. Published optima (see
// KnownOptimum) assume exactly this metric.
//
// Complexity: O(n²) time and space.
func (inst *Instance) Problem() (*problem.Problem, error) {
	var n = len(inst.Coords)
	dist := make([][]float64, n)

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			d = math.Hypot(
				inst.Coords[i][0]-inst.Coords[j][0],
				inst.Coords[i][1]-inst.Coords[j][1],
			)
			dist[i][j] = math.Round(d)
		}
	}

	return problem.NewFromMatrix(dist)
}

// KnownOptimum returns the proven optimal tour cost for well-known
// instances, keyed by instance name (case-insensitive).
func KnownOptimum(name string) (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "berlin52", "berlin_52", "berlin-52":
		return 7542, true
	default:
		return 0, false
	}
}
