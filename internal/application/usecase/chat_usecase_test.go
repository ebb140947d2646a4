package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/economit/backoffice/internal/application/dto"
	"github.com/economit/backoffice/internal/application/usecase"
	"github.com/economit/backoffice/internal/domain"
	"github.com/economit/backoffice/internal/domain/entity"
)

func newChatFixture() (*usecase.ChatUseCase, *fakeChatRepo, *fakePublisher) {
	repo := &fakeChatRepo{}
	pub := &fakePublisher{}
	return usecase.NewChatUseCase(repo, pub), repo, pub
}

func TestChatSend_PersisteYPublicaAAmbosParticipantes(t *testing.T) {
	uc, repo, pub := newChatFixture()

	antes := time.Now()
	out, err := uc.Send("ana@acme.com", dto.SendChatMessageRequest{
		RecipientID: "luis@acme.com",
		Content:     "hola",
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@acme.com", out.SenderID, "el emisor sale de la sesión, no del cuerpo")
	assert.False(t, out.Timestamp.Before(antes), "el timestamp lo asigna el servidor")

	require.Len(t, repo.messages, 1)
	assert.ElementsMatch(t, []string{"luis@acme.com", "ana@acme.com"}, pub.channels(),
		"el fan-out llega al receptor y también al emisor (multi-dispositivo)")
}

func TestChatSend_CamposRequeridos(t *testing.T) {
	uc, repo, pub := newChatFixture()

	_, err := uc.Send("ana@acme.com", dto.SendChatMessageRequest{RecipientID: "", Content: "hola"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Send("ana@acme.com", dto.SendChatMessageRequest{RecipientID: "luis@acme.com", Content: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, repo.messages)
	assert.Empty(t, pub.events)
}

func TestChatSend_FalloDePersistenciaNoPublica(t *testing.T) {
	uc, _, pub := newChatFixture()
	repoRoto := &fakeChatRepo{failCreate: true}
	uc = usecase.NewChatUseCase(repoRoto, pub)

	_, err := uc.Send("ana@acme.com", dto.SendChatMessageRequest{RecipientID: "luis@acme.com", Content: "hola"})
	require.Error(t, err)
	assert.Empty(t, pub.events, "sin escritura durable no hay fan-out")
}

func TestChatHistory_BidireccionalYSimetrico(t *testing.T) {
	uc, repo, _ := newChatFixture()
	repo.messages = []*entity.ChatMessage{
		{ID: "m1", SenderID: "ana@acme.com", RecipientID: "luis@acme.com", Content: "hola"},
		{ID: "m2", SenderID: "luis@acme.com", RecipientID: "ana@acme.com", Content: "qué tal"},
		{ID: "m3", SenderID: "ana@acme.com", RecipientID: "eva@acme.com", Content: "otra conversación"},
	}

	desdeAna, err := uc.History("ana@acme.com", "luis@acme.com")
	require.NoError(t, err)
	assert.Len(t, desdeAna, 2, "incluye ambas direcciones")

	desdeLuis, err := uc.History("luis@acme.com", "ana@acme.com")
	require.NoError(t, err)
	assert.Equal(t, desdeAna, desdeLuis, "la conversación es la misma desde cualquier extremo")
}
