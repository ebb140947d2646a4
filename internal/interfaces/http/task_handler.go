package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/economit/backoffice/internal/application/directory"
	"github.com/economit/backoffice/internal/application/dto"
	"github.com/economit/backoffice/internal/application/usecase"
)

// TaskHandler maneja tareas y sus adjuntos (protegido).
type TaskHandler struct {
	uc  *usecase.TaskUseCase
	dir *directory.Directory
}

// NewTaskHandler construye el handler.
func NewTaskHandler(uc *usecase.TaskUseCase, dir *directory.Directory) *TaskHandler {
	return &TaskHandler{uc: uc, dir: dir}
}

// List godoc
// @Summary      Listar tareas visibles para el usuario
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TaskResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
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
// @Summary      Crear tarea con adjuntos (multipart, solo admins)
// @Tags         tasks
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  dto.TaskResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.dir)
	if err != nil {
		return respondError(c, err)
	}

	dueDate, err := parseDate(c.FormValue("due_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "due_date inválido (RFC3339 o YYYY-MM-DD)"})
	}
	in := dto.CreateTaskRequest{
		Title:        c.FormValue("title"),
		Description:  c.FormValue("description"),
		DueDate:      dueDate,
		AssignedToID: c.FormValue("assigned_to_id"),
	}

	var files []dto.FileInput
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["files"] {
			data, contentType, err := readFormFile(fh)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer un adjunto"})
			}
			files = append(files, dto.FileInput{
				FileName: fh.Filename,
				FileType: contentType,
				Data:     data,
			})
		}
	}

	out, err := h.uc.Create(c.Context(), actor, in, files)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar estado y/o rating de una tarea
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarea"
// @Param        body  body  dto.UpdateTaskRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [patch]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.dir)
	if err != nil {
		return respondError(c, err)
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(actor, id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tarea (sus adjuntos caen en cascada)
// @Tags         tasks
// @Security     Bearer
// @Param        id  path  string  true  "ID de la tarea"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
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

// DownloadAttachment godoc
// @Summary      Descargar un adjunto de tarea
// @Tags         tasks
// @Security     Bearer
// @Param        id  path  string  true  "ID del adjunto"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/attachments/{id} [get]
func (h *TaskHandler) DownloadAttachment(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.dir)
	if err != nil {
		return respondError(c, err)
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	att, err := h.uc.GetAttachment(actor, id)
	if err != nil {
		return respondError(c, err)
	}
	if att.FileType != "" {
		c.Set(fiber.HeaderContentType, att.FileType)
	}
	if att.FileName != "" {
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+att.FileName+`"`)
	}
	return c.Send(att.Data)
}

// parseDate acepta RFC3339 o fecha simple YYYY-MM-DD.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
