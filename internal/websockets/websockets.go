package websockets

import (
	"encoding/json"
	"sync"

	"directory/internal/events"
	"directory/internal/logger"

	"github.com/gofiber/websocket/v2"
)

// Manager pushes employee change events to connected clients so open list
// views can re-render without polling.
type Manager struct {
	log logger.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func New(eventBus *events.EventBus) *Manager {
	manager := &Manager{
		log:     logger.New("websockets"),
		clients: make(map[*websocket.Conn]struct{}),
	}

	eventBus.Subscribe(events.ChannelEmployees, manager.broadcast)

	return manager
}

func (m *Manager) HandleWebSocket(c *websocket.Conn) {
	log := m.log.Function("HandleWebSocket")

	m.mu.Lock()
	m.clients[c] = struct{}{}
	clientCount := len(m.clients)
	m.mu.Unlock()

	log.Info("client connected", "clients", clientCount)

	// Clients only listen; the read loop exists to detect disconnects.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}

	m.mu.Lock()
	delete(m.clients, c)
	m.mu.Unlock()

	_ = c.Close()
	log.Info("client disconnected")
}

func (m *Manager) broadcast(event events.Event) {
	log := m.log.Function("broadcast")

	payload, err := json.Marshal(event)
	if err != nil {
		log.Er("failed to marshal event for broadcast", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for c := range m.clients {
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Er("failed to write to client, dropping connection", err)
			delete(m.clients, c)
			_ = c.Close()
		}
	}
}

// ClientCount is used by the health endpoint.
func (m *Manager) ClientCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.clients)
}
