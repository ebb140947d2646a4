package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/economit/backoffice/internal/application/directory"
	"github.com/economit/backoffice/internal/application/dto"
	"github.com/economit/backoffice/internal/domain"
	"github.com/economit/backoffice/internal/domain/entity"
	"github.com/economit/backoffice/internal/domain/repository"
)

// EventUseCase calendario de la empresa: listado por empresa, alta y borrado
// solo para admins.
type EventUseCase struct {
	repo repository.CompanyEventRepository
}

// NewEventUseCase construye el caso de uso.
func NewEventUseCase(repo repository.CompanyEventRepository) *EventUseCase {
	return &EventUseCase{repo: repo}
}

// List devuelve los eventos de la empresa del actor, por inicio ascendente.
func (uc *EventUseCase) List(actor *entity.User) ([]dto.EventResponse, error) {
	events, err := uc.repo.ListByCompany(actor.CompanyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return out, nil
}

// Create da de alta un evento (solo COMPANY_ADMIN).
func (uc *EventUseCase) Create(actor *entity.User, in dto.CreateEventRequest) (*dto.EventResponse, error) {
	if err := directory.RequireRole(actor, entity.RoleCompanyAdmin); err != nil {
		return nil, err
	}
	if in.Title == "" || in.StartTime.IsZero() || in.EndTime.IsZero() || in.EndTime.Before(in.StartTime) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	event := &entity.CompanyEvent{
		ID:          uuid.New().String(),
		CompanyID:   actor.CompanyID,
		Title:       in.Title,
		Description: in.Description,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Location:    in.Location,
		Type:        in.Type,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(event); err != nil {
		return nil, err
	}
	resp := toEventResponse(event)
	return &resp, nil
}

// Delete elimina un evento (solo COMPANY_ADMIN de la empresa dueña).
func (uc *EventUseCase) Delete(actor *entity.User, id string) error {
	if err := directory.RequireRole(actor, entity.RoleCompanyAdmin); err != nil {
		return err
	}
	event, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if event == nil {
		return domain.ErrNotFound
	}
	if err := directory.AuthorizeCompanyScope(actor, event.CompanyID); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func toEventResponse(e *entity.CompanyEvent) dto.EventResponse {
	return dto.EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Location:    e.Location,
		Type:        e.Type,
	}
}
