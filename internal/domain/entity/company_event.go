package entity

import "time"

// Tipos de evento de calendario.
const (
	EventTypeMeeting  = "MEETING"
	EventTypeDeadline = "DEADLINE"
	EventTypeHoliday  = "HOLIDAY"
	EventTypeOther    = "OTHER"
)

// CompanyEvent evento del calendario de la empresa (solo lo crean admins).
type CompanyEvent struct {
	ID          string
	CompanyID   string
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	Type        string // MEETING, DEADLINE, HOLIDAY, OTHER
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
