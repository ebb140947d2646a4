package dto

import "time"

// CreateTaskRequest campos del formulario multipart de creación de tarea.
// Los archivos llegan aparte como FileInput.
type CreateTaskRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DueDate      time.Time `json:"due_date"`
	AssignedToID string    `json:"assigned_to_id"`
}

// FileInput archivo subido (nombre, MIME y bytes crudos).
type FileInput struct {
	FileName string
	FileType string
	Data     []byte
}

// UpdateTaskRequest actualización parcial: nil = no tocar ese campo.
type UpdateTaskRequest struct {
	Status *string `json:"status"`
	Rating *int    `json:"rating"`
}

// AttachmentResponse metadatos de un adjunto (sin bytes; se descargan por id).
type AttachmentResponse struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
}

// TaskResponse salida de una tarea con sus adjuntos.
type TaskResponse struct {
	ID             string               `json:"id"`
	Title          string               `json:"title"`
	Description    string               `json:"description,omitempty"`
	DueDate        time.Time            `json:"due_date"`
	Status         string               `json:"status"`
	Rating         int                  `json:"rating"`
	AssignedToID   string               `json:"assigned_to_id"`
	AssignedToName string               `json:"assigned_to_name,omitempty"`
	Attachments    []AttachmentResponse `json:"attachments"`
}
