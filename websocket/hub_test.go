// file: websocket/hub_test.go
package websocket

import (
	"encoding/json"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"academy-admin/models"
)

// fakeConn satisfies WSConn without a network peer.
type fakeConn struct{}

func (fakeConn) WriteMessage(messageType int, data []byte) error { return nil }
func (fakeConn) SetWriteDeadline(t time.Time) error              { return nil }
func (fakeConn) ReadMessage() (int, []byte, error)               { return 0, nil, nil }
func (fakeConn) Close() error                                    { return nil }
func (fakeConn) RemoteAddr() net.Addr                            { return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0} }
func (fakeConn) SetReadLimit(limit int64)                        {}
func (fakeConn) SetReadDeadline(t time.Time) error               { return nil }
func (fakeConn) SetPongHandler(h func(string) error)             {}

var startPumpOnce sync.Once

func startPump() {
	startPumpOnce.Do(func() { go HandleMessages() })
}

func newFakeConnection() *Connection {
	return &Connection{conn: fakeConn{}, send: make(chan []byte, 8)}
}

func TestRegisterAndUnregister(t *testing.T) {
	InitTest()

	c := newFakeConnection()
	registerConnection(c)
	assert.Equal(t, 1, ConnectionCount())

	unregisterConnection(c)
	assert.Equal(t, 0, ConnectionCount())

	// unregistering twice must not panic or double-close
	unregisterConnection(c)
	assert.Equal(t, 0, ConnectionCount())
}

func TestBroadcastActivity_FanOut(t *testing.T) {
	InitTest()
	startPump()

	c1 := newFakeConnection()
	c2 := newFakeConnection()
	registerConnection(c1)
	registerConnection(c2)
	defer unregisterConnection(c1)
	defer unregisterConnection(c2)

	BroadcastActivity(models.Activity{
		ID:          "a1",
		Type:        "player",
		Title:       "New Player Registered",
		Description: "Brian Otieno joined U10 team",
		Time:        "10:15",
		User:        "John Kamau",
	})

	for _, c := range []*Connection{c1, c2} {
		select {
		case raw := <-c.send:
			var msg struct {
				Action   string          `json:"action"`
				Activity models.Activity `json:"activity"`
			}
			assert.NoError(t, json.Unmarshal(raw, &msg))
			assert.Equal(t, "activity", msg.Action)
			assert.Equal(t, "a1", msg.Activity.ID)
			assert.Equal(t, "New Player Registered", msg.Activity.Title)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for broadcast message")
		}
	}
}

func TestBroadcastActivity_NoConnections(t *testing.T) {
	InitTest()
	startPump()

	// Nothing listening; the event is consumed and dropped without blocking.
	BroadcastActivity(models.Activity{ID: "a2", Type: "training"})
	assert.Equal(t, 0, ConnectionCount())
}
