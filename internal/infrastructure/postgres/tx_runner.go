package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/economit/backoffice/internal/application/usecase"
	"github.com/economit/backoffice/internal/domain/repository"
)

// Ensure TxRunner implements usecase.TaskTxRunner and usecase.LedgerTxRunner.
var _ usecase.TaskTxRunner = (*TxRunner)(nil)
var _ usecase.LedgerTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunTask inicia una transacción con repos de tarea y adjuntos atados a la tx
// y hace Commit o Rollback. Cubre exactamente la creación tarea + adjuntos.
func (r *TxRunner) RunTask(ctx context.Context, fn func(
	taskRepo repository.TaskRepository,
	attRepo repository.TaskAttachmentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	taskRepo := NewTaskRepository(tx)
	attRepo := NewTaskAttachmentRepository(tx)

	if err := fn(taskRepo, attRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunLedger inicia una transacción con el repo de transacciones financieras
// (para el alta en lote todo-o-nada).
func (r *TxRunner) RunLedger(ctx context.Context, fn func(
	txnRepo repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	txnRepo := NewTransactionRepository(tx)

	if err := fn(txnRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
