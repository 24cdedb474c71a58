package web

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/andareed/winman/logging"
)

const (
	// writeWait bounds a single frame write to a client.
	writeWait = 10 * time.Second
	// sendBuffer is how many snapshots may queue for a client before it is
	// dropped as too slow.
	sendBuffer = 64
	// maxMessageSize limits gesture frames read from a client.
	maxMessageSize = 4096
)

// client is one websocket connection. Only its writer goroutine writes to
// conn; everyone else queues on send.
type client struct {
	id        string
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// enqueue queues data without blocking. It reports false when the queue
// is full.
func (c *client) enqueue(data []byte) bool {
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func (c *client) writeLoop(h *hub) {
	for {
		select {
		case data := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logging.Warnf("web: write to client %s failed: %v", c.id, err)
				h.unregister(c)
				return
			}
		case <-c.done:
			return
		}
	}
}

// hub tracks connected clients and fans snapshots out to them.
type hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	metrics *metrics
}

func newHub(m *metrics) *hub {
	return &hub{
		clients: make(map[*client]struct{}),
		metrics: m,
	}
}

func (h *hub) register(conn *websocket.Conn) *client {
	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	go c.writeLoop(h)

	h.metrics.clients.Set(float64(n))
	logging.Infof("web: client %s connected from %s (%d connected)", c.id, conn.RemoteAddr(), n)
	return c
}

func (h *hub) unregister(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	n := len(h.clients)
	h.mu.Unlock()

	c.closeOnce.Do(func() {
		close(c.done)
		c.conn.Close()
	})
	if !ok {
		return
	}
	h.metrics.clients.Set(float64(n))
	logging.Infof("web: client %s disconnected (%d connected)", c.id, n)
}

// broadcast queues data for every client and never blocks. Clients whose
// queue is full are dropped. Callers serialize broadcasts to keep
// snapshots in order.
func (h *hub) broadcast(data []byte) {
	var slow []*client

	h.mu.RLock()
	for c := range h.clients {
		if !c.enqueue(data) {
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	h.metrics.broadcasts.Inc()
	for _, c := range slow {
		logging.Warnf("web: client %s is not keeping up, dropping it", c.id)
		h.unregister(c)
	}
}

func (h *hub) count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *hub) close() {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		h.unregister(c)
	}
}
