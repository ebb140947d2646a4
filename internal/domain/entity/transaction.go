package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción financiera.
const (
	TransactionTypeIncome  = "INCOME"
	TransactionTypeExpense = "EXPENSE"
)

// Estados de transacción. La transición válida es PENDING -> COMPLETED,
// unidireccional e idempotente.
const (
	TransactionStatusPending   = "PENDING"
	TransactionStatusCompleted = "COMPLETED"
)

// Categorías de transacción (enum cerrado).
const (
	CategorySales       = "SALES"
	CategoryServices    = "SERVICES"
	CategoryInvestments = "INVESTMENTS"
	CategoryRefunds     = "REFUNDS"
	CategoryRent        = "RENT"
	CategoryUtilities   = "UTILITIES"
	CategorySalaries    = "SALARIES"
	CategoryEquipment   = "EQUIPMENT"
	CategoryMarketing   = "MARKETING"
	CategorySoftware    = "SOFTWARE"
	CategoryTaxes       = "TAXES"
	CategoryOther       = "OTHER"
)

// ValidTransactionType indica si t es un tipo conocido.
func ValidTransactionType(t string) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// ValidTransactionStatus indica si s es un estado conocido.
func ValidTransactionStatus(s string) bool {
	return s == TransactionStatusPending || s == TransactionStatusCompleted
}

// ValidTransactionCategory indica si c pertenece al enum de categorías.
func ValidTransactionCategory(c string) bool {
	switch c {
	case CategorySales, CategoryServices, CategoryInvestments, CategoryRefunds,
		CategoryRent, CategoryUtilities, CategorySalaries, CategoryEquipment,
		CategoryMarketing, CategorySoftware, CategoryTaxes, CategoryOther:
		return true
	}
	return false
}

// Transaction representa un registro financiero de la Company.
type Transaction struct {
	ID          string
	CompanyID   string
	Type        string // INCOME, EXPENSE
	Amount      decimal.Decimal
	Date        time.Time // fecha contable (solo día)
	Category    string
	Description string
	Status      string // PENDING, COMPLETED
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
