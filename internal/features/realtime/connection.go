package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

// Connection is a live bidirectional channel to one client. The transport
// layer owns the socket lifecycle; the registry only writes and closes.
type Connection interface {
	WriteJSON(v any) error
	Ping() error
	Close() error
}

// wsConnection wraps a gorilla connection with a write mutex: gorilla
// permits at most one concurrent writer per socket.
type wsConnection struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func NewWebsocketConnection(conn *websocket.Conn) Connection {
	return &wsConnection{conn: conn}
}

func (c *wsConnection) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}

	return c.conn.WriteJSON(v)
}

func (c *wsConnection) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}

	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

func (c *wsConnection) Close() error {
	return c.conn.Close()
}
