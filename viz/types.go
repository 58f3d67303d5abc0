package viz

import "errors"

// ErrInterrupted is returned by the observer after the user pressed
// Esc or Ctrl-C. The engine treats it like any observer failure and
// aborts the run.
var ErrInterrupted = errors.New("viz: interrupted by user")

// ErrNoCoordinates is returned when the instance carries no city
// coordinates; matrix-only problems cannot be drawn.
var ErrNoCoordinates = errors.New("viz: problem has no coordinates to draw")
