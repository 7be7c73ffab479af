package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	// Время, разрешенное для записи сообщения клиенту.
	writeWait = 10 * time.Second
	// Время, разрешенное для чтения следующего pong сообщения от клиента.
	pongWait = 60 * time.Second
	// Отправлять пинги клиенту с этим периодом. Должно быть меньше pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Максимальный размер сообщения, разрешенный от клиента.
	maxMessageSize = 512
	// Буфер исходящих сообщений на клиента.
	sendBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS контролируется на уровне HTTP-middleware
	CheckOrigin: func(*http.Request) bool { return true },
}

// wsClient — одно WebSocket-соединение, подписанное на сессию. В conn пишет
// только writePump: gorilla/websocket допускает одного пишущего на соединение.
type wsClient struct {
	conn *websocket.Conn
	send chan any // канал для отправки сообщений этому клиенту
}

// Hub пушит обновления состояния сессии подписанным клиентам. Один клиент —
// одно соединение, подписанное на конкретную сессию.
type Hub struct {
	log *zap.Logger

	mu      sync.RWMutex
	clients map[string]map[*wsClient]struct{}
}

// NewHub создает пустой хаб.
func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		log:     log.Named("WSHub"),
		clients: make(map[string]map[*wsClient]struct{}),
	}
}

func (h *Hub) add(sessionID string, c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[sessionID] == nil {
		h.clients[sessionID] = make(map[*wsClient]struct{})
	}
	h.clients[sessionID][c] = struct{}{}
}

// remove снимает клиента с учета и закрывает его канал отправки. Повторный
// вызов безопасен: канал закрывается, только пока клиент числится в карте.
func (h *Hub) remove(sessionID string, c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[sessionID][c]; !ok {
		return
	}
	delete(h.clients[sessionID], c)
	if len(h.clients[sessionID]) == 0 {
		delete(h.clients, sessionID)
	}
	close(c.send)
}

// Broadcast ставит сообщение в очередь каждому подписчику сессии. Клиент с
// переполненной очередью это сообщение пропускает.
func (h *Hub) Broadcast(sessionID string, message any) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[sessionID] {
		select {
		case c.send <- message:
		default:
			h.log.Debug("Очередь клиента переполнена, сообщение пропущено",
				zap.String("sessionID", sessionID))
		}
	}
}

// writePump откачивает очередь клиента в соединение и держит keepalive-пинги.
func (h *Hub) writePump(sessionID string, c *wsClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		h.remove(sessionID, c)
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				h.log.Debug("Отключаю сломанное соединение",
					zap.Error(err),
					zap.String("sessionID", sessionID))
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump читает соединение только ради pong и обнаружения закрытия;
// входящие сообщения не используются.
func (h *Hub) readPump(sessionID string, c *wsClient) {
	defer func() {
		h.remove(sessionID, c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// serveWS апгрейдит соединение и запускает пару pump-горутин клиента.
func (h *GameHandler) serveWS(c *gin.Context) {
	sessionID := c.Param("id")
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("Не удалось апгрейдить соединение", zap.Error(err))
		return
	}
	client := &wsClient{
		conn: conn,
		send: make(chan any, sendBufferSize),
	}
	h.hub.add(sessionID, client)
	h.logger.Debug("WS-клиент подключен", zap.String("sessionID", sessionID))

	go h.hub.writePump(sessionID, client)
	go h.hub.readPump(sessionID, client)
}
