package repository

import "github.com/economit/backoffice/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para Notification.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	// ListByRecipient ordenado por timestamp descendente (más recientes primero).
	ListByRecipient(email string) ([]*entity.Notification, error)
	MarkRead(id string) error
}
