package stream

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/ga"
)

func testSnapshot(gen int) ga.Snapshot {
	return ga.Snapshot{
		Generation:  gen,
		BestTour:    []int{0, 2, 1, 3},
		BestCost:    12.5,
		AverageCost: 20,
		Diversity:   ga.Diversity{UniqueRatio: 0.7, Hamming: 0.4},
		Stagnation:  2,
	}
}

// dialTest connects a websocket client to the broadcaster's handler.
func dialTest(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

// TestBroadcaster_DeliversUpdates runs the full path: HTTP upgrade,
// observer broadcast, JSON frame on the client side.
func TestBroadcaster_DeliversUpdates(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()
	srv := httptest.NewServer(b.Handler())
	defer srv.Close()

	conn := dialTest(t, srv)
	require.Eventually(t, func() bool { return b.ClientCount() == 1 },
		time.Second, 5*time.Millisecond)

	obs := b.Observer()
	require.NoError(t, obs(testSnapshot(7)))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var u Update
	require.NoError(t, json.Unmarshal(data, &u))
	require.Equal(t, 7, u.Generation)
	require.Equal(t, 12.5, u.BestCost)
	require.Equal(t, []int{0, 2, 1, 3}, u.BestTour)
	require.InDelta(t, 0.7, u.UniqueRatio, 1e-12)
	require.Equal(t, 2, u.Stagnation)
}

// TestBroadcaster_MultipleClients fans one frame out to every
// subscriber.
func TestBroadcaster_MultipleClients(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()
	srv := httptest.NewServer(b.Handler())
	defer srv.Close()

	c1 := dialTest(t, srv)
	c2 := dialTest(t, srv)
	require.Eventually(t, func() bool { return b.ClientCount() == 2 },
		time.Second, 5*time.Millisecond)

	require.NoError(t, b.Observer()(testSnapshot(1)))

	for _, conn := range []*websocket.Conn{c1, c2} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var u Update
		require.NoError(t, json.Unmarshal(data, &u))
		require.Equal(t, 1, u.Generation)
	}
}

// TestBroadcaster_NoClients: broadcasting into the void is a cheap
// no-op, not an error.
func TestBroadcaster_NoClients(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	obs := b.Observer()
	var gen int
	for gen = 0; gen < 100; gen++ {
		require.NoError(t, obs(testSnapshot(gen)))
	}
	require.Zero(t, b.ClientCount())
}

// TestBroadcaster_DropsSlowClient: a subscriber whose queue is full is
// unregistered instead of stalling the broadcast.
func TestBroadcaster_DropsSlowClient(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	// A queue of one with no writer goroutine draining it models a
	// fully stalled peer.
	slow := &client{send: make(chan []byte, 1)}
	b.clients[slow] = struct{}{}

	b.broadcast(Update{Generation: 1}) // fills the queue
	require.Equal(t, 1, b.ClientCount())

	b.broadcast(Update{Generation: 2}) // overflow: client dropped
	require.Zero(t, b.ClientCount())

	// The queued frame stays readable, the closed channel marks the end.
	<-slow.send
	_, open := <-slow.send
	require.False(t, open)
}

// TestBroadcaster_ClientDisconnect unregisters a departed peer.
func TestBroadcaster_ClientDisconnect(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()
	srv := httptest.NewServer(b.Handler())
	defer srv.Close()

	conn := dialTest(t, srv)
	require.Eventually(t, func() bool { return b.ClientCount() == 1 },
		time.Second, 5*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return b.ClientCount() == 0 },
		2*time.Second, 5*time.Millisecond)
}

// TestBroadcaster_CloseRejectsNewClients: connections after Close are
// turned away.
func TestBroadcaster_CloseRejectsNewClients(t *testing.T) {
	b := NewBroadcaster()
	srv := httptest.NewServer(b.Handler())
	defer srv.Close()

	b.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		// The upgrade may still succeed before the server side closes;
		// the connection must then die immediately.
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, _, err = conn.ReadMessage()
		conn.Close()
	}
	require.Error(t, err)
	require.Zero(t, b.ClientCount())
}
