package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/economit/backoffice/internal/application/dto"
	"github.com/economit/backoffice/internal/domain"
	"github.com/economit/backoffice/internal/domain/entity"
	"github.com/economit/backoffice/internal/domain/repository"
	"github.com/economit/backoffice/pkg/logger"
)

// NotificationUseCase servicio de fan-out: persiste la notificación y la
// publica en el canal del destinatario. La publicación es posterior y ajena a
// la escritura durable; su fallo jamás la revierte.
type NotificationUseCase struct {
	repo      repository.NotificationRepository
	publisher Publisher
	log       *logger.Logger
}

var _ Notifier = (*NotificationUseCase)(nil)

// NewNotificationUseCase construye el servicio de notificaciones.
func NewNotificationUseCase(repo repository.NotificationRepository, publisher Publisher, log *logger.Logger) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, publisher: publisher, log: log}
}

// Send persiste la notificación (is_read=false, timestamp=ahora) y la publica
// en el canal del destinatario. Solo el fallo de persistencia devuelve error.
func (uc *NotificationUseCase) Send(recipientEmail, message, ntype string) error {
	n := &entity.Notification{
		ID:             uuid.New().String(),
		RecipientEmail: recipientEmail,
		Message:        message,
		Type:           ntype,
		IsRead:         false,
		Timestamp:      time.Now(),
	}
	if err := uc.repo.Create(n); err != nil {
		return err
	}

	// Entrega en vivo best-effort: sin suscriptor activo no hay reintento ni
	// cola; el cliente se reconcilia con ListMine al reconectar.
	uc.publisher.Publish(recipientEmail, toNotificationResponse(n))
	return nil
}

// ListMine devuelve las notificaciones del destinatario, más recientes primero.
func (uc *NotificationUseCase) ListMine(email string) ([]dto.NotificationResponse, error) {
	list, err := uc.repo.ListByRecipient(email)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNotificationResponse(n))
	}
	return out, nil
}

// MarkRead marca la notificación como leída (false -> true, idempotente).
// Solo el destinatario puede marcarla; otro actor recibe ErrForbidden.
func (uc *NotificationUseCase) MarkRead(actorEmail, id string) error {
	n, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	if n.RecipientEmail != actorEmail {
		return domain.ErrForbidden
	}
	if n.IsRead {
		return nil
	}
	return uc.repo.MarkRead(id)
}

func toNotificationResponse(n *entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:             n.ID,
		RecipientEmail: n.RecipientEmail,
		Message:        n.Message,
		Type:           n.Type,
		IsRead:         n.IsRead,
		Timestamp:      n.Timestamp,
	}
}
