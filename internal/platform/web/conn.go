package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/snake-extreme/internal/core"
)

// Conn is one browser session. Writes and the pending input are guarded by mu;
// the read loop and the game loop run on separate goroutines.
type Conn struct {
	ID string

	ws       *websocket.Conn
	mu       sync.Mutex
	pending  core.InputFrame
	viewW    int
	viewH    int
	resized  bool
	closed   bool
	closeErr error
}

// NewConn wraps an upgraded WebSocket.
func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{
		ID:      uuid.NewString(),
		ws:      ws,
		pending: core.NewInputFrame(),
	}
}

// Send serializes msg to JSON and writes it to the socket.
func (c *Conn) Send(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("web: encode message: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errClosed
	}
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

var errClosed = errors.New("web: connection closed")

// TakeInput returns the presses received since the last call and resets them.
func (c *Conn) TakeInput() core.InputFrame {
	c.mu.Lock()
	defer c.mu.Unlock()
	in := c.pending.Clone()
	c.pending.Clear()
	return in
}

// TakeViewport returns the last reported viewport and whether it changed
// since the last call.
func (c *Conn) TakeViewport() (w, h int, changed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	changed = c.resized
	c.resized = false
	return c.viewW, c.viewH, changed
}

// apply records one client message.
func (c *Conn) apply(msg ClientMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch msg.Type {
	case MsgKey:
		a := core.ParseAction(msg.Key)
		if a == core.ActionNone {
			return fmt.Errorf("web: unknown key %q", msg.Key)
		}
		c.pending.Set(a)
	case MsgPointer:
		c.pending.Point(msg.X, msg.Y)
	case MsgViewport:
		c.viewW, c.viewH = msg.W, msg.H
		c.resized = true
	default:
		return fmt.Errorf("web: unknown message type %q", msg.Type)
	}
	return nil
}

// Close marks the connection closed and closes the socket once.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return c.closeErr
	}
	c.closed = true
	c.closeErr = c.ws.Close()
	return c.closeErr
}

// ReadLoop decodes client messages until the socket fails. Malformed
// messages are logged and skipped.
func (c *Conn) ReadLoop(logger *log.Logger) {
	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("read failed", "conn", c.ID, "err", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			logger.Debug("bad message", "conn", c.ID, "err", err)
			continue
		}
		if err := c.apply(msg); err != nil {
			logger.Debug("ignored message", "conn", c.ID, "err", err)
		}
	}
}

// ConnManager tracks live connections.
type ConnManager struct {
	mu    sync.RWMutex
	conns map[string]*Conn
}

// NewConnManager creates an empty connection manager.
func NewConnManager() *ConnManager {
	return &ConnManager{conns: make(map[string]*Conn)}
}

// TryAdd registers a connection unless limit connections are already live.
// A limit of zero or less means no cap.
func (m *ConnManager) TryAdd(c *Conn, limit int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit > 0 && len(m.conns) >= limit {
		return false
	}
	m.conns[c.ID] = c
	return true
}

// Remove unregisters a connection.
func (m *ConnManager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conns, id)
}

// Count returns the number of live connections.
func (m *ConnManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conns)
}

// Snapshot returns a copy of all current connections.
func (m *ConnManager) Snapshot() []*Conn {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := make([]*Conn, 0, len(m.conns))
	for _, c := range m.conns {
		list = append(list, c)
	}
	return list
}
