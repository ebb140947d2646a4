package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/economit/backoffice/internal/domain"
	"github.com/economit/backoffice/internal/domain/entity"
	"github.com/economit/backoffice/internal/domain/repository"
	"github.com/economit/backoffice/pkg/logger"
)

// PayrollUseCase generador de nómina: una transacción EXPENSE/SALARIES
// PENDING por empleado asalariado, en su propia empresa. Cada inserción es una
// unidad atómica independiente; el fallo de un empleado no aborta el resto.
type PayrollUseCase struct {
	userRepo repository.UserRepository
	txnRepo  repository.TransactionRepository
	notifier Notifier
	log      *logger.Logger
}

// NewPayrollUseCase construye el generador.
func NewPayrollUseCase(userRepo repository.UserRepository, txnRepo repository.TransactionRepository, notifier Notifier, log *logger.Logger) *PayrollUseCase {
	return &PayrollUseCase{userRepo: userRepo, txnRepo: txnRepo, notifier: notifier, log: log}
}

// PayrollResult resumen de una corrida de nómina.
type PayrollResult struct {
	Generated int `json:"generated"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// Generate recorre todos los usuarios EMPLOYEE de todos los tenants y crea una
// transacción de salario por cada uno con salario definido y > 0. Un índice
// único por (empresa, fecha, descripción) en categoría SALARIES hace la
// corrida idempotente a nivel de día: repetirla no duplica filas, las
// colisiones se registran y se saltan.
func (uc *PayrollUseCase) Generate(ctx context.Context) (*PayrollResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	employees, err := uc.userRepo.ListByRole(entity.RoleEmployee)
	if err != nil {
		return nil, err
	}

	today := time.Now().Truncate(24 * time.Hour)
	res := &PayrollResult{}

	for _, emp := range employees {
		if emp.Salary == nil || emp.Salary.IsZero() {
			res.Skipped++
			continue
		}

		now := time.Now()
		txn := &entity.Transaction{
			ID:          uuid.New().String(),
			CompanyID:   emp.CompanyID,
			Type:        entity.TransactionTypeExpense,
			Amount:      *emp.Salary,
			Date:        today,
			Category:    entity.CategorySalaries,
			Description: "Salary: " + emp.FullName(),
			Status:      entity.TransactionStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if err := uc.txnRepo.Create(txn); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				// Ya generada hoy para este empleado: corrida repetida.
				uc.log.Info().Str("employee_id", emp.ID).Msg("nómina ya generada hoy, se omite")
				res.Skipped++
				continue
			}
			uc.log.Error().Err(err).Str("employee_id", emp.ID).Msg("fallo al generar nómina del empleado")
			res.Failed++
			continue
		}
		res.Generated++

		if err := uc.notifier.Send(emp.Email, "Your salary has been processed", entity.NotificationTypePayroll); err != nil {
			uc.log.Warn().Err(err).Str("employee_id", emp.ID).Msg("notificación de nómina no enviada")
		}
	}

	uc.log.Info().
		Int("generated", res.Generated).
		Int("skipped", res.Skipped).
		Int("failed", res.Failed).
		Msg("corrida de nómina finalizada")
	return res, nil
}
