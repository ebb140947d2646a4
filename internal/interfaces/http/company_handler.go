package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/economit/backoffice/internal/application/directory"
	"github.com/economit/backoffice/internal/application/dto"
	"github.com/economit/backoffice/internal/application/usecase"
)

// CompanyHandler maneja el perfil de la empresa (protegido).
type CompanyHandler struct {
	uc  *usecase.CompanyUseCase
	dir *directory.Directory
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase, dir *directory.Directory) *CompanyHandler {
	return &CompanyHandler{uc: uc, dir: dir}
}

// GetProfile godoc
// @Summary      Perfil de la empresa del usuario autenticado
// @Tags         company
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CompanyProfileResponse
// @Router       /api/company [get]
func (h *CompanyHandler) GetProfile(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.dir)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetProfile(actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Actualizar perfil de empresa (multipart, logo opcional)
// @Tags         company
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  dto.CompanyProfileResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/company [put]
func (h *CompanyHandler) UpdateProfile(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.dir)
	if err != nil {
		return respondError(c, err)
	}

	in := dto.UpdateCompanyProfileInput{
		Name:    c.FormValue("name"),
		TaxID:   c.FormValue("tax_id"),
		Phone:   c.FormValue("phone"),
		Website: c.FormValue("website"),
		Street:  c.FormValue("street"),
		City:    c.FormValue("city"),
		ZipCode: c.FormValue("zip_code"),
		Country: c.FormValue("country"),
	}

	if fh, err := c.FormFile("logo"); err == nil && fh != nil {
		data, contentType, err := readFormFile(fh)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el logo"})
		}
		in.LogoData = data
		in.LogoContentType = contentType
	}

	out, err := h.uc.UpdateProfile(actor, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
