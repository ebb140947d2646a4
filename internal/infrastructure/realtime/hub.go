// Package realtime mantiene el registro de conexiones WebSocket y reparte
// los eventos en vivo (chat, notificaciones) por canal de email.
package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/economit/backoffice/pkg/logger"
)

const writeWait = 10 * time.Second

// Conn es lo mínimo que el hub necesita de una conexión WebSocket.
// *websocket.Conn de gofiber/contrib lo satisface.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// textMessage = websocket.TextMessage; se fija aquí para no arrastrar la
// dependencia del paquete websocket a los tests del hub.
const textMessage = 1

// Envelope es el marco que viaja por el socket hacia el cliente.
type Envelope struct {
	Channel string      `json:"channel"`
	Payload interface{} `json:"payload"`
}

// Hub registra conexiones por email y hace fan-out de eventos. Un mismo email
// puede tener varias conexiones (varias pestañas); todas reciben el evento.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]map[Conn]bool
	log   *logger.Logger
}

// NewHub crea un hub vacío.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		conns: make(map[string]map[Conn]bool),
		log:   log,
	}
}

// Register asocia la conexión al email. Idempotente por conexión.
func (h *Hub) Register(email string, c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[email] == nil {
		h.conns[email] = make(map[Conn]bool)
	}
	h.conns[email][c] = true
}

// Unregister retira la conexión; limpia la entrada del email si queda vacía.
// No cierra la conexión: eso es del ciclo de vida del handler.
func (h *Hub) Unregister(email string, c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.conns[email]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.conns, email)
		}
	}
}

// Publish envía el payload a todas las conexiones del canal (email). Si el
// canal no tiene conexiones no pasa nada: la persistencia ya ocurrió antes.
// Las conexiones cuya escritura falla se expulsan y se cierran.
func (h *Hub) Publish(channel string, payload interface{}) {
	data, err := json.Marshal(Envelope{Channel: channel, Payload: payload})
	if err != nil {
		h.log.Error().Err(err).Str("channel", channel).Msg("Error serializando evento realtime")
		return
	}

	h.mu.RLock()
	targets := make([]Conn, 0, len(h.conns[channel]))
	for c := range h.conns[channel] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	var failed []Conn
	for _, c := range targets {
		_ = c.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.WriteMessage(textMessage, data); err != nil {
			h.log.Warn().Err(err).Str("channel", channel).Msg("Conexión WebSocket caída, expulsando")
			failed = append(failed, c)
		}
	}

	for _, c := range failed {
		h.Unregister(channel, c)
		_ = c.Close()
	}
}

// Count devuelve cuántas conexiones hay registradas para el email.
func (h *Hub) Count(email string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[email])
}
