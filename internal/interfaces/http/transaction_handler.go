package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/economit/backoffice/internal/application/directory"
	"github.com/economit/backoffice/internal/application/dto"
	"github.com/economit/backoffice/internal/application/usecase"
)

// TransactionHandler maneja el libro de transacciones (protegido).
type TransactionHandler struct {
	uc      *usecase.TransactionUseCase
	payroll *usecase.PayrollUseCase
	dir     *directory.Directory
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *usecase.TransactionUseCase, payroll *usecase.PayrollUseCase, dir *directory.Directory) *TransactionHandler {
	return &TransactionHandler{uc: uc, payroll: payroll, dir: dir}
}

// Search godoc
// @Summary      Buscar transacciones de la empresa (filtros opcionales)
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        type        query  string  false  "INCOME | EXPENSE"
// @Param        category    query  string  false  "Categoría"
// @Param        start_date  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) Search(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.dir)
	if err != nil {
		return respondError(c, err)
	}

	var in dto.SearchTransactionsRequest
	in.Type = queryPtr(c, "type")
	in.Category = queryPtr(c, "category")
	in.StartDate, err = queryDatePtr(c, "start_date")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date inválido (RFC3339 o YYYY-MM-DD)"})
	}
	in.EndDate, err = queryDatePtr(c, "end_date")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end_date inválido (RFC3339 o YYYY-MM-DD)"})
	}

	out, err := h.uc.Search(actor, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear transacción (status vacío = COMPLETED)
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Datos de la transacción"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.dir)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(actor, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateBatch godoc
// @Summary      Crear lote de transacciones (todo o nada)
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.CreateTransactionRequest  true  "Transacciones del lote"
// @Success      201   {array}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions/batch [post]
func (h *TransactionHandler) CreateBatch(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.dir)
	if err != nil {
		return respondError(c, err)
	}
	var in []dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateBatch(c.Context(), actor, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MarkCompleted godoc
// @Summary      Marcar transacción como COMPLETED (idempotente)
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id}/complete [patch]
func (h *TransactionHandler) MarkCompleted(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.dir)
	if err != nil {
		return respondError(c, err)
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.MarkCompleted(actor, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar transacción
// @Tags         transactions
// @Security     Bearer
// @Param        id  path  string  true  "ID de la transacción"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
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

// RunPayroll godoc
// @Summary      Disparar la corrida de nómina manualmente (solo admins)
// @Tags         payroll
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  usecase.PayrollResult
// @Router       /api/payroll/run [post]
func (h *TransactionHandler) RunPayroll(c *fiber.Ctx) error {
	res, err := h.payroll.Generate(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// queryPtr devuelve nil si el parámetro no vino o vino vacío.
func queryPtr(c *fiber.Ctx, key string) *string {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	return &v
}

// queryDatePtr parsea un parámetro de fecha opcional.
func queryDatePtr(c *fiber.Ctx, key string) (*time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	t, err := parseDate(v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
