package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/economit/backoffice/internal/application/dto"
	"github.com/economit/backoffice/internal/application/usecase"
)

// ChatHandler expone el histórico de conversaciones; el envío en vivo va por
// el endpoint WebSocket.
type ChatHandler struct {
	uc *usecase.ChatUseCase
}

// NewChatHandler construye el handler.
func NewChatHandler(uc *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// History godoc
// @Summary      Histórico de la conversación con otro usuario (ascendente)
// @Tags         chat
// @Security     Bearer
// @Produce      json
// @Param        email  path  string  true  "Email del interlocutor"
// @Success      200  {array}  dto.ChatMessageResponse
// @Router       /api/chat/{email} [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	me := GetEmail(c)
	if me == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "email requerido"})
	}
	other := c.Params("email")
	if dec, err := url.PathUnescape(other); err == nil {
		other = dec
	}
	if other == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_EMAIL", Message: "email del interlocutor requerido"})
	}
	out, err := h.uc.History(me, other)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
