package repository

import "github.com/economit/backoffice/internal/domain/entity"

// CompanyEventRepository define el puerto de persistencia para CompanyEvent.
type CompanyEventRepository interface {
	Create(event *entity.CompanyEvent) error
	GetByID(id string) (*entity.CompanyEvent, error)
	// ListByCompany ordenado por start_time ascendente.
	ListByCompany(companyID string) ([]*entity.CompanyEvent, error)
	Delete(id string) error
}
