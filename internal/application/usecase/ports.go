package usecase

import (
	"context"

	"github.com/economit/backoffice/internal/domain/repository"
)

// TaskTxRunner ejecuta la creación de tarea + adjuntos dentro de una única
// transacción (o se persiste todo o nada). Lo implementa postgres.TxRunner.
type TaskTxRunner interface {
	RunTask(ctx context.Context, fn func(
		taskRepo repository.TaskRepository,
		attRepo repository.TaskAttachmentRepository,
	) error) error
}

// LedgerTxRunner ejecuta la creación en lote de transacciones financieras de
// forma atómica (el primer elemento inválido aborta el lote completo).
type LedgerTxRunner interface {
	RunLedger(ctx context.Context, fn func(
		txnRepo repository.TransactionRepository,
	) error) error
}

// Publisher publica un payload en el canal de tiempo real del destinatario.
// Es fire-and-forget: publicar sin suscriptores no es un error y un fallo de
// entrega nunca se propaga al llamador (la durabilidad vive en la fila
// persistida, no en el transporte).
type Publisher interface {
	Publish(channel string, payload interface{})
}

// Notifier es el contrato mínimo del servicio de fan-out de notificaciones que
// consumen tareas y nómina. Lo implementa *NotificationUseCase; la interfaz
// permite fakes en tests.
type Notifier interface {
	Send(recipientEmail, message, ntype string) error
}
