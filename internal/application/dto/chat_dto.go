package dto

import "time"

// SendChatMessageRequest mensaje entrante por el canal WebSocket. El sender se
// toma de la conexión autenticada, nunca del cuerpo; cualquier timestamp del
// cliente se ignora (frontera de confianza).
type SendChatMessageRequest struct {
	RecipientID string `json:"recipient_id"`
	Content     string `json:"content"`
}

// ChatMessageResponse salida de un mensaje; también es el payload de tiempo real.
type ChatMessageResponse struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
}
