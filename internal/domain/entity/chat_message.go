package entity

import "time"

// ChatMessage mensaje directo entre dos usuarios, identificados por email.
// El timestamp lo asigna el servidor al guardar; el mensaje es inmutable después.
type ChatMessage struct {
	ID          string
	SenderID    string // email del emisor
	RecipientID string // email del receptor
	Content     string
	Timestamp   time.Time
}
