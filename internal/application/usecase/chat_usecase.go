package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/economit/backoffice/internal/application/dto"
	"github.com/economit/backoffice/internal/domain"
	"github.com/economit/backoffice/internal/domain/entity"
	"github.com/economit/backoffice/internal/domain/repository"
)

// ChatUseCase relé de mensajes directos: persiste y hace fan-out a los canales
// de ambos participantes (el emisor también lo recibe, para consistencia
// multi-dispositivo).
type ChatUseCase struct {
	repo      repository.ChatRepository
	publisher Publisher
}

// NewChatUseCase construye el relé de chat.
func NewChatUseCase(repo repository.ChatRepository, publisher Publisher) *ChatUseCase {
	return &ChatUseCase{repo: repo, publisher: publisher}
}

// Send guarda el mensaje con timestamp del servidor (el del cliente se ignora)
// y lo publica en los canales del emisor y del receptor.
func (uc *ChatUseCase) Send(senderEmail string, in dto.SendChatMessageRequest) (*dto.ChatMessageResponse, error) {
	if senderEmail == "" || in.RecipientID == "" || in.Content == "" {
		return nil, domain.ErrInvalidInput
	}
	msg := &entity.ChatMessage{
		ID:          uuid.New().String(),
		SenderID:    senderEmail,
		RecipientID: in.RecipientID,
		Content:     in.Content,
		Timestamp:   time.Now(),
	}
	if err := uc.repo.Create(msg); err != nil {
		return nil, err
	}

	resp := toChatMessageResponse(msg)
	uc.publisher.Publish(msg.RecipientID, resp)
	uc.publisher.Publish(msg.SenderID, resp)
	return &resp, nil
}

// History devuelve la conversación entre a y b en ambas direcciones, orden
// cronológico ascendente.
func (uc *ChatUseCase) History(a, b string) ([]dto.ChatMessageResponse, error) {
	list, err := uc.repo.FindConversation(a, b)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChatMessageResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toChatMessageResponse(m))
	}
	return out, nil
}

func toChatMessageResponse(m *entity.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Content:     m.Content,
		Timestamp:   m.Timestamp,
	}
}
