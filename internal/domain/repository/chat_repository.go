package repository

import "github.com/economit/backoffice/internal/domain/entity"

// ChatRepository define el puerto de persistencia para ChatMessage.
type ChatRepository interface {
	Create(msg *entity.ChatMessage) error
	// FindConversation devuelve los mensajes entre a y b en ambas direcciones,
	// orden cronológico ascendente (consulta bidireccional indexada, no filtro
	// en memoria).
	FindConversation(a, b string) ([]*entity.ChatMessage, error)
}
