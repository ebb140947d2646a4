package entity

import "time"

// Estados de Task. La transición es permisiva (cualquier estado puede
// sobrescribir a cualquier otro); ver decisión en DESIGN.md.
const (
	TaskStatusTODO       = "TODO"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusDone       = "DONE"
)

// Rango válido del rating de una tarea (solo significativo con status DONE).
const (
	TaskRatingMin = 0
	TaskRatingMax = 5
)

// ValidTaskStatus indica si s es un estado conocido de Task.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusTODO, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// Task representa una tarea asignada a un empleado de la Company.
// Los attachments se fijan al crear la tarea; no hay alta/baja posterior.
type Task struct {
	ID           string
	CompanyID    string
	Title        string
	Description  string
	DueDate      time.Time
	Status       string // TODO, IN_PROGRESS, DONE
	Rating       int    // 0-5
	AssignedToID string
	Attachments  []TaskAttachment
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TaskAttachment archivo binario adjunto a una Task (hijo exclusivo: se elimina
// con la tarea).
type TaskAttachment struct {
	ID        string
	TaskID    string
	FileName  string
	FileType  string // MIME type declarado al subir
	Data      []byte // acotado por UPLOAD_MAX_BYTES
	CreatedAt time.Time
}
