package postgres

import (
	"context"
	"fmt"

	"github.com/economit/backoffice/internal/domain/entity"
	"github.com/economit/backoffice/internal/domain/repository"
)

var _ repository.ChatRepository = (*ChatRepo)(nil)

// ChatRepo implementación de ChatRepository.
type ChatRepo struct {
	q Querier
}

// NewChatRepository construye el adaptador.
func NewChatRepository(q Querier) *ChatRepo {
	return &ChatRepo{q: q}
}

// Create persiste el mensaje.
func (r *ChatRepo) Create(msg *entity.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (id, sender_id, recipient_id, content, timestamp)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		msg.ID, msg.SenderID, msg.RecipientID, msg.Content, msg.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

// FindConversation trae los mensajes entre a y b en ambas direcciones,
// en orden cronológico ascendente.
func (r *ChatRepo) FindConversation(a, b string) ([]*entity.ChatMessage, error) {
	query := `
		SELECT id, sender_id, recipient_id, content, timestamp
		FROM chat_messages
		WHERE (sender_id = $1 AND recipient_id = $2)
		   OR (sender_id = $2 AND recipient_id = $1)
		ORDER BY timestamp ASC`
	rows, err := r.q.Query(context.Background(), query, a, b)
	if err != nil {
		return nil, fmt.Errorf("find conversation: %w", err)
	}
	defer rows.Close()

	var msgs []*entity.ChatMessage
	for rows.Next() {
		var m entity.ChatMessage
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Content, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		msgs = append(msgs, &m)
	}
	return msgs, rows.Err()
}
