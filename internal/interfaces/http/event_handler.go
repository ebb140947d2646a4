package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/economit/backoffice/internal/application/directory"
	"github.com/economit/backoffice/internal/application/dto"
	"github.com/economit/backoffice/internal/application/usecase"
)

// EventHandler maneja el calendario de la empresa (protegido).
type EventHandler struct {
	uc  *usecase.EventUseCase
	dir *directory.Directory
}

// NewEventHandler construye el handler.
func NewEventHandler(uc *usecase.EventUseCase, dir *directory.Directory) *EventHandler {
	return &EventHandler{uc: uc, dir: dir}
}

// List godoc
// @Summary      Listar eventos de la empresa (por inicio ascendente)
// @Tags         events
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EventResponse
// @Router       /api/events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.dir)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear evento de calendario (solo admins)
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEventRequest  true  "Datos del evento"
// @Success      201   {object}  dto.EventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/events [post]
func (h *EventHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.dir)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(actor, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar evento (solo admins)
// @Tags         events
// @Security     Bearer
// @Param        id  path  string  true  "ID del evento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/events/{id} [delete]
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.dir)
	if err != nil {
		return respondError(c, err)
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(actor, id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
