package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"hrms/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// MessageTypeTaxSummary tags a recomputed comparison pushed after a declaration save.
const MessageTypeTaxSummary = "tax.summary"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins; CORS is enforced on the REST routes only.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is the envelope written to subscribers.
type Message struct {
	Type          string      `json:"type"`
	EmployeeID    string      `json:"employee_id"`
	FinancialYear string      `json:"financial_year"`
	Data          interface{} `json:"data"`
}

// Client is one connected console. An empty employeeID receives every employee's updates.
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	employeeID string
}

type envelope struct {
	employeeID string
	payload    []byte
}

// Hub maintains the set of active clients and fans summaries out to the ones subscribed.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan envelope
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
	log        *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		broadcast:  make(chan envelope, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
		log:        log.With(zap.String("component", "ws")),
	}
}

// Run dispatches hub events until ctx is cancelled, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.log.Info("client connected", zap.String("employee_id", client.employeeID))
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.log.Info("client disconnected", zap.String("employee_id", client.employeeID))
			}
			h.mu.Unlock()
		case msg := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				if client.employeeID != "" && client.employeeID != msg.employeeID {
					continue
				}
				select {
				case client.send <- msg.payload:
				default:
					// slow consumer
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// PublishTaxSummary queues a summary for the employee's subscribers. It never blocks;
// when the queue is full the update is dropped.
func (h *Hub) PublishTaxSummary(employeeID string, summary service.TaxSummaryResponse) {
	payload, err := json.Marshal(Message{
		Type:          MessageTypeTaxSummary,
		EmployeeID:    employeeID,
		FinancialYear: summary.FinancialYear,
		Data:          summary,
	})
	if err != nil {
		h.log.Error("failed to encode tax summary", zap.Error(err))
		return
	}

	select {
	case h.broadcast <- envelope{employeeID: employeeID, payload: payload}:
	default:
		h.log.Warn("broadcast queue full, dropping tax summary", zap.String("employee_id", employeeID))
	}
}

func (c *Client) writePump() {
	defer func() {
		_ = c.conn.Close()
	}()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump drains client frames so close and ping control messages are processed.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		_ = c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Warn("read failed", zap.Error(err))
			}
			return
		}
	}
}

// ServeWs upgrades the request. The optional employee_id query parameter narrows the subscription.
func ServeWs(hub *Hub, c *gin.Context) {
	employeeID := c.Query("employee_id")
	if employeeID != "" {
		if _, err := uuid.Parse(employeeID); err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		hub.log.Warn("upgrade failed", zap.Error(err))
		return
	}
	client := &Client{hub: hub, conn: conn, send: make(chan []byte, 256), employeeID: employeeID}
	select {
	case hub.register <- client:
	case <-hub.done:
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
