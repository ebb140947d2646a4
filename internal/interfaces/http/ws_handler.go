package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/economit/backoffice/internal/application/dto"
	"github.com/economit/backoffice/internal/application/usecase"
	"github.com/economit/backoffice/internal/infrastructure/realtime"
	"github.com/economit/backoffice/pkg/jwt"
	"github.com/economit/backoffice/pkg/logger"
)

// WSHandler maneja el canal WebSocket de tiempo real: registra la conexión en
// el hub (notificaciones y chat entrante) y lee mensajes de chat salientes.
type WSHandler struct {
	hub       *realtime.Hub
	chat      *usecase.ChatUseCase
	jwtSecret string
	log       *logger.Logger
}

// NewWSHandler construye el handler.
func NewWSHandler(hub *realtime.Hub, chat *usecase.ChatUseCase, jwtSecret string, log *logger.Logger) *WSHandler {
	return &WSHandler{hub: hub, chat: chat, jwtSecret: jwtSecret, log: log}
}

// Upgrade autentica y deja pasar solo peticiones de upgrade WebSocket.
// Los navegadores no pueden fijar headers en el handshake, así que el token
// también se acepta por query (?token=...).
func (h *WSHandler) Upgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		token := c.Query("token")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token requerido (?token=...)"})
		}
		claims, err := jwt.Parse(h.jwtSecret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalCompanyID, claims.CompanyID)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// Serve atiende la conexión: la registra en el hub por email y procesa los
// mensajes de chat entrantes hasta que el cliente cierre. El fan-out hacia
// ambos participantes lo hace el caso de uso a través del hub.
func (h *WSHandler) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		email, _ := conn.Locals(LocalEmail).(string)
		if email == "" {
			_ = conn.Close()
			return
		}

		h.hub.Register(email, conn)
		h.log.Debug().Str("email", email).Msg("Conexión WebSocket registrada")
		defer func() {
			h.hub.Unregister(email, conn)
			_ = conn.Close()
			h.log.Debug().Str("email", email).Msg("Conexión WebSocket retirada")
		}()

		for {
			var in dto.SendChatMessageRequest
			if err := conn.ReadJSON(&in); err != nil {
				// Cierre del cliente o frame ilegible: se termina la sesión.
				return
			}
			if _, err := h.chat.Send(email, in); err != nil {
				h.log.Warn().Err(err).Str("sender", email).Msg("Mensaje de chat rechazado")
			}
		}
	})
}
