package dto

import "time"

// NotificationResponse salida de una notificación; también es el payload que
// viaja por el canal de tiempo real.
type NotificationResponse struct {
	ID             string    `json:"id"`
	RecipientEmail string    `json:"recipient_email"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`
	IsRead         bool      `json:"is_read"`
	Timestamp      time.Time `json:"timestamp"`
}
