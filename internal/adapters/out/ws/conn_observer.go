package ws

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

// ConnObserver adapts a WebSocket connection to the Observer interface.
// gorilla/websocket allows only one concurrent writer per connection, so
// Send serializes writes with a mutex.
type ConnObserver struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// NewConnObserver wraps an upgraded WebSocket connection.
func NewConnObserver(conn *websocket.Conn) *ConnObserver {
	return &ConnObserver{conn: conn}
}

// Send writes the envelope as a JSON message with a bounded write deadline.
func (o *ConnObserver) Send(envelope Envelope) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return o.conn.WriteJSON(envelope)
}

// Close closes the underlying connection.
func (o *ConnObserver) Close() error {
	return o.conn.Close()
}
