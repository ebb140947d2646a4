package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/economit/backoffice/internal/application/directory"
	"github.com/economit/backoffice/internal/application/dto"
	"github.com/economit/backoffice/internal/domain"
	"github.com/economit/backoffice/internal/domain/entity"
	"github.com/economit/backoffice/internal/domain/repository"
)

// TransactionUseCase libro mayor de la empresa: búsqueda con filtros
// opcionales, alta manual y en lote, transición PENDING -> COMPLETED y borrado.
type TransactionUseCase struct {
	repo     repository.TransactionRepository
	txRunner LedgerTxRunner
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository, txRunner LedgerTxRunner) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, txRunner: txRunner}
}

// Search busca transacciones de la empresa del actor. Cada filtro es opcional
// e independiente; sin filtros devuelve todo, siempre por fecha descendente.
func (uc *TransactionUseCase) Search(actor *entity.User, in dto.SearchTransactionsRequest) ([]dto.TransactionResponse, error) {
	if in.Type != nil && !entity.ValidTransactionType(*in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Category != nil && !entity.ValidTransactionCategory(*in.Category) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.Search(actor.CompanyID, repository.TransactionFilter{
		Type:      in.Type,
		Category:  in.Category,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTransactionResponse(t))
	}
	return out, nil
}

// Create da de alta una transacción manual en la empresa del actor.
// Status vacío se normaliza a COMPLETED.
func (uc *TransactionUseCase) Create(actor *entity.User, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	txn, err := buildTransaction(actor.CompanyID, in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(txn); err != nil {
		return nil, err
	}
	resp := toTransactionResponse(txn)
	return &resp, nil
}

// CreateBatch da de alta un lote de transacciones de forma atómica: si algún
// elemento es inválido o falla su inserción, no se persiste ninguno.
func (uc *TransactionUseCase) CreateBatch(ctx context.Context, actor *entity.User, in []dto.CreateTransactionRequest) ([]dto.TransactionResponse, error) {
	if len(in) == 0 {
		return nil, domain.ErrInvalidInput
	}
	txns := make([]*entity.Transaction, 0, len(in))
	for _, req := range in {
		txn, err := buildTransaction(actor.CompanyID, req)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}

	err := uc.txRunner.RunLedger(ctx, func(txnRepo repository.TransactionRepository) error {
		for _, txn := range txns {
			if err := txnRepo.Create(txn); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		out = append(out, toTransactionResponse(txn))
	}
	return out, nil
}

// MarkCompleted transiciona PENDING -> COMPLETED. Unidireccional: si ya está
// COMPLETED es un no-op idempotente, sin error.
func (uc *TransactionUseCase) MarkCompleted(actor *entity.User, id string) (*dto.TransactionResponse, error) {
	txn, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, domain.ErrNotFound
	}
	if err := directory.AuthorizeCompanyScope(actor, txn.CompanyID); err != nil {
		return nil, err
	}
	if txn.Status != entity.TransactionStatusCompleted {
		if err := uc.repo.UpdateStatus(id, entity.TransactionStatusCompleted); err != nil {
			return nil, err
		}
		txn.Status = entity.TransactionStatusCompleted
	}
	resp := toTransactionResponse(txn)
	return &resp, nil
}

// Delete elimina una transacción, verificando antes el alcance de tenant.
func (uc *TransactionUseCase) Delete(actor *entity.User, id string) error {
	txn, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if txn == nil {
		return domain.ErrNotFound
	}
	if err := directory.AuthorizeCompanyScope(actor, txn.CompanyID); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func buildTransaction(companyID string, in dto.CreateTransactionRequest) (*entity.Transaction, error) {
	status := in.Status
	if status == "" {
		status = entity.TransactionStatusCompleted
	}
	if !entity.ValidTransactionType(in.Type) ||
		!entity.ValidTransactionCategory(in.Category) ||
		!entity.ValidTransactionStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() || in.Date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	return &entity.Transaction{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Type:        in.Type,
		Amount:      in.Amount,
		Date:        in.Date,
		Category:    in.Category,
		Description: in.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func toTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          t.ID,
		Type:        t.Type,
		Amount:      t.Amount,
		Date:        t.Date,
		Category:    t.Category,
		Description: t.Description,
		Status:      t.Status,
	}
}
