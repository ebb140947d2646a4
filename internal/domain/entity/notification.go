package entity

import "time"

// Etiquetas de origen de una notificación.
const (
	NotificationTypeTask    = "TASK"
	NotificationTypePayroll = "PAYROLL"
	NotificationTypeChat    = "CHAT"
)

// Notification registro durable de una notificación. Solo lo crea el servicio
// de fan-out; la única mutación posterior es IsRead false -> true.
type Notification struct {
	ID             string
	RecipientEmail string
	Message        string
	Type           string // TASK, PAYROLL, CHAT
	IsRead         bool
	Timestamp      time.Time
}
