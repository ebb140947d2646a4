package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/economit/backoffice/internal/application/directory"
	"github.com/economit/backoffice/internal/application/dto"
	"github.com/economit/backoffice/internal/application/usecase"
)

// EmployeeHandler maneja empleados y el perfil propio (protegido).
type EmployeeHandler struct {
	uc  *usecase.EmployeeUseCase
	dir *directory.Directory
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, dir *directory.Directory) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, dir: dir}
}

// List godoc
// @Summary      Listar empleados de la empresa
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.dir)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListEmployees(actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Listar todos los usuarios de la empresa (admins incluidos)
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/users [get]
func (h *EmployeeHandler) ListAll(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.dir)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListAllCompanyUsers(actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Alta de empleado (solo admins)
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.dir)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateEmployee(actor, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetMe godoc
// @Summary      Perfil del usuario autenticado
// @Tags         me
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EmployeeResponse
// @Router       /api/me [get]
func (h *EmployeeHandler) GetMe(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.dir)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetMe(actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateMe godoc
// @Summary      Actualizar perfil propio (multipart, avatar opcional)
// @Tags         me
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/me [put]
func (h *EmployeeHandler) UpdateMe(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.dir)
	if err != nil {
		return respondError(c, err)
	}

	var in dto.UpdateMeInput
	in.PhoneNumber = formValuePtr(c, "phone_number")
	in.PersonalTaxID = formValuePtr(c, "personal_tax_id")
	in.IDNumber = formValuePtr(c, "id_number")
	in.Address = formValuePtr(c, "address")
	in.NewPassword = formValuePtr(c, "new_password")

	if fh, err := c.FormFile("avatar"); err == nil && fh != nil {
		data, contentType, err := readFormFile(fh)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el avatar"})
		}
		in.AvatarData = data
		in.AvatarContentType = contentType
	}

	out, err := h.uc.UpdateMe(actor, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// formValuePtr distingue campo ausente (nil) de campo enviado, aunque venga vacío.
func formValuePtr(c *fiber.Ctx, key string) *string {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	vals, ok := form.Value[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	v := vals[0]
	return &v
}
