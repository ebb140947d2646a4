package repository

import "github.com/economit/backoffice/internal/domain/entity"

// TaskRepository define el puerto de persistencia para Task.
// Create solo persiste la fila de la tarea; los adjuntos van por
// TaskAttachmentRepository dentro de la misma transacción (ver TaskTxRunner).
type TaskRepository interface {
	Create(task *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	// ListByCompany devuelve las tareas de la empresa con sus adjuntos
	// (sin bytes), ordenadas por due_date ascendente.
	ListByCompany(companyID string) ([]*entity.Task, error)
	Update(task *entity.Task) error
	// Delete elimina la tarea; los adjuntos caen por ON DELETE CASCADE.
	Delete(id string) error
}

// TaskAttachmentRepository define el puerto de persistencia para adjuntos.
type TaskAttachmentRepository interface {
	Create(att *entity.TaskAttachment) error
	// GetByID devuelve el adjunto con sus bytes.
	GetByID(id string) (*entity.TaskAttachment, error)
}
