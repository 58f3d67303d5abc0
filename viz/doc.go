// Package viz renders the evolving best tour in the terminal.
//
// Monitor adapts a tcell screen into a ga.Observer: each generation it
// scales the city coordinates to the current terminal size, draws the
// best tour's edges and cities, and prints a one-line progress summary.
// Pressing Esc or Ctrl-C flags an interrupt; the observer then returns
// ErrInterrupted, which aborts the run through the engine's
// callback-failure policy.
//
// Design principles:
//   - The observer never blocks: key events are drained by a dedicated
//     goroutine, the draw path only reads an atomic flag.
//   - Screen construction is injectable (NewMonitorWithScreen), so the
//     render path is testable against tcell's simulation screen.
//   - Strict sentinels from types.go; no logging, no panics.
package viz
