// Package stream - websocket fan-out of generation snapshots.
package stream

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/gatsp/ga"
)

const (
	// sendQueueSize is the per-client backlog; a client further behind
	// than this is dropped.
	sendQueueSize = 32

	// writeTimeout bounds a single frame write so one dead peer cannot
	// wedge its writer goroutine forever.
	writeTimeout = 5 * time.Second
)

// Update is the wire format sent to clients, one frame per generation.
// A compact view of ga.Snapshot: the per-member population listing is
// intentionally omitted to keep frames small.
type Update struct {
	Generation  int     `json:"generation"`
	BestCost    float64 `json:"bestCost"`
	AverageCost float64 `json:"averageCost"`
	BestTour    []int   `json:"bestTour"`
	UniqueRatio float64 `json:"uniqueRatio"`
	Hamming     float64 `json:"hamming"`
	Stagnation  int     `json:"stagnation"`
}

// client is one websocket subscriber with its private send queue.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Broadcaster fans generation updates out to websocket subscribers.
type Broadcaster struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

// NewBroadcaster returns an empty broadcaster. Mount Handler under
// your mux and pass Observer to ga.Run.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		upgrader: websocket.Upgrader{
			// The stream is read-only telemetry; any origin may watch.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// Handler returns the http.Handler that upgrades GET /ws requests.
func (b *Broadcaster) Handler() http.Handler {
	return http.HandlerFunc(b.serveWS)
}

// Observer returns a ga.Observer that broadcasts each snapshot. It
// always returns nil: streaming must never abort the run.
func (b *Broadcaster) Observer() ga.Observer {
	return func(s ga.Snapshot) error {
		b.broadcast(Update{
			Generation:  s.Generation,
			BestCost:    s.BestCost,
			AverageCost: s.AverageCost,
			BestTour:    s.BestTour,
			UniqueRatio: s.Diversity.UniqueRatio,
			Hamming:     s.Diversity.Hamming,
			Stagnation:  s.Stagnation,
		})

		return nil
	}
}

// ClientCount reports the number of connected subscribers.
func (b *Broadcaster) ClientCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.clients)
}

// Close disconnects all subscribers and rejects future ones.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	for c := range b.clients {
		close(c.send)
		delete(b.clients, c)
	}
}

// serveWS upgrades one request and starts the client's pump goroutines.
func (b *Broadcaster) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendQueueSize)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		conn.Close()
		return
	}
	b.clients[c] = struct{}{}
	b.mu.Unlock()

	go c.writePump()
	go b.readPump(c)
}

// broadcast marshals once and enqueues for every client. A client with
// a full queue is dropped on the spot; the engine thread never waits.
func (b *Broadcaster) broadcast(u Update) {
	data, err := json.Marshal(u)
	if err != nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for c := range b.clients {
		select {
		case c.send <- data:
		default:
			close(c.send)
			delete(b.clients, c)
		}
	}
}

// drop unregisters a client after its connection died.
func (b *Broadcaster) drop(c *client) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.clients[c]; ok {
		close(c.send)
		delete(b.clients, c)
	}
}

// writePump drains the send queue into the connection. It exits when
// the queue closes (drop/Close) or a write fails.
func (c *client) writePump() {
	defer c.conn.Close()

	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}

	// Queue closed: say goodbye before the deferred hard close.
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// readPump consumes (and discards) client frames purely to learn when
// the peer goes away.
func (b *Broadcaster) readPump(c *client) {
	defer b.drop(c)

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
