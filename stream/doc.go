// Package stream publishes engine progress over websockets.
//
// Broadcaster serves GET /ws, upgrades each connection, and fans out
// one JSON Update per generation to every connected client. The
// observer side never blocks the generational loop: each client owns a
// buffered send queue, and a client that cannot keep up is dropped
// instead of slowing the run down.
//
// Design principles:
//   - The engine thread only marshals and enqueues; all network I/O
//     happens on per-client writer goroutines.
//   - Client registry behind a mutex; no goroutine owns the map.
//   - The observer never returns an error: a streaming consumer must
//     not be able to abort an optimization run.
package stream
