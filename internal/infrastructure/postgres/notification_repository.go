package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/economit/backoffice/internal/domain/entity"
	"github.com/economit/backoffice/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación de NotificationRepository.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste la notificación.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, recipient_email, message, type, is_read, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.RecipientEmail, n.Message, n.Type, n.IsRead, n.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// GetByID obtiene una notificación por id. Devuelve nil, nil si no existe.
func (r *NotificationRepo) GetByID(id string) (*entity.Notification, error) {
	query := `
		SELECT id, recipient_email, message, type, is_read, timestamp
		FROM notifications WHERE id = $1`
	var n entity.Notification
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.RecipientEmail, &n.Message, &n.Type, &n.IsRead, &n.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification by id: %w", err)
	}
	return &n, nil
}

// ListByRecipient lista las notificaciones del destinatario, más recientes primero.
func (r *NotificationRepo) ListByRecipient(email string) ([]*entity.Notification, error) {
	query := `
		SELECT id, recipient_email, message, type, is_read, timestamp
		FROM notifications WHERE recipient_email = $1 ORDER BY timestamp DESC`
	rows, err := r.q.Query(context.Background(), query, email)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.RecipientEmail, &n.Message, &n.Type, &n.IsRead, &n.Timestamp); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead marca la notificación como leída (idempotente).
func (r *NotificationRepo) MarkRead(id string) error {
	_, err := r.q.Exec(context.Background(), `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}
