package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest entrada para crear una transacción manual.
// Status vacío se normaliza a COMPLETED en el caso de uso.
type CreateTransactionRequest struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
}

// SearchTransactionsRequest filtros opcionales e independientes del buscador.
type SearchTransactionsRequest struct {
	Type      *string    `query:"type"`
	Category  *string    `query:"category"`
	StartDate *time.Time `query:"start_date"`
	EndDate   *time.Time `query:"end_date"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
}
