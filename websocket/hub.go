// Package websocket pushes live activity events to connected dashboard clients.
// file: websocket/hub.go
package websocket

import (
	"encoding/json"
	"sync"

	"academy-admin/logger"
	"academy-admin/models"
)

var (
	connections   = make(map[*Connection]bool)
	connectionsMu sync.Mutex
	broadcast     = make(chan []byte, 64)
)

// InitTest resets the hub state between tests.
func InitTest() {
	connectionsMu.Lock()
	defer connectionsMu.Unlock()
	for c := range connections {
		delete(connections, c)
	}
	for {
		select {
		case <-broadcast:
		default:
			return
		}
	}
}

// HandleMessages listens on the broadcast channel and fans messages out to
// every connected dashboard client. Run it once from main.
func HandleMessages() {
	for msg := range broadcast {
		connectionsMu.Lock()
		for c := range connections {
			select {
			case c.send <- msg:
			default:
				logger.Warn.Printf("Dropping activity message for connection %v", c.conn.RemoteAddr())
			}
		}
		PublishActivityBacklog(len(broadcast))
		connectionsMu.Unlock()
	}
}

// BroadcastActivity pushes one activity event to all dashboard clients.
func BroadcastActivity(a models.Activity) {
	msg, err := json.Marshal(map[string]interface{}{
		"action":   "activity",
		"activity": a,
	})
	if err != nil {
		logger.Error.Printf("Error marshalling activity message: %v", err)
		return
	}

	select {
	case broadcast <- msg:
	default:
		logger.Warn.Println("BroadcastActivity: broadcast channel full, dropping event")
	}
}

func registerConnection(c *Connection) {
	connectionsMu.Lock()
	connections[c] = true
	count := len(connections)
	connectionsMu.Unlock()

	logger.Info.Printf("Dashboard client connected (%d active)", count)
	PublishDashboardConnections(count)
}

func unregisterConnection(c *Connection) {
	connectionsMu.Lock()
	if _, ok := connections[c]; ok {
		delete(connections, c)
		close(c.send)
	}
	count := len(connections)
	connectionsMu.Unlock()

	logger.Info.Printf("Dashboard client disconnected (%d active)", count)
	PublishDashboardConnections(count)
}

// ConnectionCount returns the number of active dashboard clients.
func ConnectionCount() int {
	connectionsMu.Lock()
	defer connectionsMu.Unlock()
	return len(connections)
}
