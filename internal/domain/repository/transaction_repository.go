package repository

import (
	"time"

	"github.com/economit/backoffice/internal/domain/entity"
)

// TransactionFilter filtros opcionales e independientes para Search.
// Un campo nil no restringe; el companyID siempre restringe.
type TransactionFilter struct {
	Type      *string
	Category  *string
	StartDate *time.Time
	EndDate   *time.Time
}

// TransactionRepository define el puerto de persistencia para Transaction.
type TransactionRepository interface {
	// Create devuelve domain.ErrConflict si viola el índice único de nómina
	// (company_id, date con category=SALARIES, misma descripción).
	Create(txn *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	// Search siempre acotado a companyID, ordenado por date descendente.
	Search(companyID string, f TransactionFilter) ([]*entity.Transaction, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
}
