package server

import (
	"net/http"
	"sync"
	"time"

	"trade-journal/src/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4096

	// Number of history entries replayed to a fresh connection.
	initialHistorySize = 50
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// -----------------------------------------------------------------------------
// Client
// -----------------------------------------------------------------------------

// Client is a single WebSocket subscriber with its own delivery filter.
type Client struct {
	server *APIServer
	conn   *websocket.Conn
	send   chan *models.MPushEvent

	filterMutex sync.RWMutex
	minSeverity models.MessageKind
	sources     map[string]struct{} // nil means all sources
}

// -----------------------------------------------------------------------------

func (c *Client) subscribe(minSeverity models.MessageKind, sources []string) {
	c.filterMutex.Lock()
	defer c.filterMutex.Unlock()

	c.minSeverity = minSeverity
	if len(sources) == 0 {
		c.sources = nil
		return
	}
	c.sources = make(map[string]struct{}, len(sources))
	for _, source := range sources {
		c.sources[source] = struct{}{}
	}
}

// -----------------------------------------------------------------------------

func (c *Client) wants(event *models.MPushEvent) bool {
	c.filterMutex.RLock()
	defer c.filterMutex.RUnlock()

	if kind, ok := models.KindFromName(event.Kind); ok && kind < c.minSeverity {
		return false
	}
	if c.sources != nil {
		if _, ok := c.sources[event.Source]; !ok {
			return false
		}
	}
	return true
}

// -----------------------------------------------------------------------------
// WebSocket Upgrade
// -----------------------------------------------------------------------------

func (s *APIServer) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Logger.Error("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		server:      s,
		conn:        conn,
		send:        make(chan *models.MPushEvent, 64),
		minSeverity: models.KindInfo,
	}
	select {
	case s.register <- client:
	case <-s.done:
		conn.Close()
		return
	}

	// Replay recent history to the fresh connection before live events.
	if s.History != nil {
		for _, msg := range s.History.Latest("", initialHistorySize) {
			select {
			case client.send <- parsePushPayload(msg.ToPushForm()):
			default:
			}
		}
	}

	go client.writePump()
	go client.readPump()
}

// -----------------------------------------------------------------------------
// Pumps
// -----------------------------------------------------------------------------

func (c *Client) readPump() {
	defer func() {
		c.server.dropClient(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.server.Logger.Warning("WebSocket read error: %v", err)
			}
			return
		}
		c.server.handleClientMessage(c, raw)
	}
}

// -----------------------------------------------------------------------------

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
