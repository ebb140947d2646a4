package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/economit/backoffice/internal/application/dto"
	"github.com/economit/backoffice/internal/application/usecase"
	"github.com/economit/backoffice/internal/domain"
	"github.com/economit/backoffice/internal/domain/entity"
)

func newTransactionFixture() (*usecase.TransactionUseCase, *fakeTransactionRepo, *fakeLedgerTxRunner) {
	repo := &fakeTransactionRepo{}
	runner := &fakeLedgerTxRunner{txnRepo: repo}
	return usecase.NewTransactionUseCase(repo, runner), repo, runner
}

func txnRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Type:        entity.TransactionTypeIncome,
		Amount:      decimal.NewFromInt(100),
		Date:        time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC),
		Category:    entity.CategorySales,
		Description: "Venta mayo",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestTransactionCreate_StatusVacioEsCompleted(t *testing.T) {
	uc, repo, _ := newTransactionFixture()

	out, err := uc.Create(adminActor(), txnRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.TransactionStatusCompleted, out.Status)
	require.Len(t, repo.txns, 1)
	assert.Equal(t, "company-a", repo.txns[0].CompanyID)
}

func TestTransactionCreate_ValoresInvalidos(t *testing.T) {
	uc, repo, _ := newTransactionFixture()

	in := txnRequest()
	in.Type = "TRANSFER"
	_, err := uc.Create(adminActor(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = txnRequest()
	in.Category = "CRYPTO"
	_, err = uc.Create(adminActor(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = txnRequest()
	in.Status = "CANCELLED"
	_, err = uc.Create(adminActor(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = txnRequest()
	in.Amount = decimal.NewFromInt(-5)
	_, err = uc.Create(adminActor(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = txnRequest()
	in.Date = time.Time{}
	_, err = uc.Create(adminActor(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, repo.txns)
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateBatch (todo o nada)
// ──────────────────────────────────────────────────────────────────────────────

func TestTransactionCreateBatch_TodoONada(t *testing.T) {
	uc, repo, _ := newTransactionFixture()

	out, err := uc.CreateBatch(context.Background(), adminActor(), []dto.CreateTransactionRequest{
		txnRequest(), txnRequest(),
	})
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Len(t, repo.txns, 2)
}

func TestTransactionCreateBatch_UnElementoInvalidoAbortaElLote(t *testing.T) {
	uc, repo, _ := newTransactionFixture()

	malo := txnRequest()
	malo.Type = "TRANSFER"
	_, err := uc.CreateBatch(context.Background(), adminActor(), []dto.CreateTransactionRequest{
		txnRequest(), malo,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.txns, "la validación previa evita cualquier escritura")
}

func TestTransactionCreateBatch_FalloDeInsercionNoDejaNada(t *testing.T) {
	uc, repo, runner := newTransactionFixture()
	runner.failFor = "Venta mayo"

	_, err := uc.CreateBatch(context.Background(), adminActor(), []dto.CreateTransactionRequest{
		txnRequest(), txnRequest(),
	})
	require.Error(t, err)
	assert.Empty(t, repo.txns, "el rollback descarta los elementos ya insertados")
}

func TestTransactionCreateBatch_LoteVacio(t *testing.T) {
	uc, _, _ := newTransactionFixture()

	_, err := uc.CreateBatch(context.Background(), adminActor(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Search
// ──────────────────────────────────────────────────────────────────────────────

func TestTransactionSearch_FiltrosOpcionalesYTenant(t *testing.T) {
	uc, repo, _ := newTransactionFixture()
	mayo := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
	junio := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	repo.txns = []*entity.Transaction{
		{ID: "t1", CompanyID: "company-a", Type: entity.TransactionTypeIncome, Category: entity.CategorySales, Date: mayo},
		{ID: "t2", CompanyID: "company-a", Type: entity.TransactionTypeExpense, Category: entity.CategoryRent, Date: junio},
		{ID: "t3", CompanyID: "company-b", Type: entity.TransactionTypeIncome, Category: entity.CategorySales, Date: mayo},
	}

	// Sin filtros: todo lo de la empresa del actor.
	out, err := uc.Search(adminActor(), dto.SearchTransactionsRequest{})
	require.NoError(t, err)
	assert.Len(t, out, 2, "company-b jamás aparece")

	// Por tipo.
	income := entity.TransactionTypeIncome
	out, err = uc.Search(adminActor(), dto.SearchTransactionsRequest{Type: &income})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "t1", out[0].ID)

	// Por rango de fechas.
	desde := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	out, err = uc.Search(adminActor(), dto.SearchTransactionsRequest{StartDate: &desde})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "t2", out[0].ID)
}

func TestTransactionSearch_FiltrosInvalidos(t *testing.T) {
	uc, _, _ := newTransactionFixture()

	malo := "TRANSFER"
	_, err := uc.Search(adminActor(), dto.SearchTransactionsRequest{Type: &malo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	categoria := "CRYPTO"
	_, err = uc.Search(adminActor(), dto.SearchTransactionsRequest{Category: &categoria})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// MarkCompleted y Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestTransactionMarkCompleted_UnidireccionalEIdempotente(t *testing.T) {
	uc, repo, _ := newTransactionFixture()
	repo.txns = []*entity.Transaction{
		{ID: "t1", CompanyID: "company-a", Status: entity.TransactionStatusPending},
	}

	out, err := uc.MarkCompleted(adminActor(), "t1")
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusCompleted, out.Status)

	// Repetir no falla ni cambia nada.
	out, err = uc.MarkCompleted(adminActor(), "t1")
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusCompleted, out.Status)
}

func TestTransactionMarkCompleted_TenantYNoExiste(t *testing.T) {
	uc, repo, _ := newTransactionFixture()
	repo.txns = []*entity.Transaction{
		{ID: "t1", CompanyID: "company-b", Status: entity.TransactionStatusPending},
	}

	_, err := uc.MarkCompleted(adminActor(), "t1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.MarkCompleted(adminActor(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransactionDelete_VerificaTenant(t *testing.T) {
	uc, repo, _ := newTransactionFixture()
	repo.txns = []*entity.Transaction{
		{ID: "t1", CompanyID: "company-a"},
		{ID: "t2", CompanyID: "company-b"},
	}

	require.NoError(t, uc.Delete(adminActor(), "t1"))
	assert.Len(t, repo.txns, 1)

	err := uc.Delete(adminActor(), "t2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Len(t, repo.txns, 1)
}
