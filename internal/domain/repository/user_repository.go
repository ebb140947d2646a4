package repository

import "github.com/economit/backoffice/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	ListByCompany(companyID string) ([]*entity.User, error)
	ListByCompanyAndRole(companyID, role string) ([]*entity.User, error)
	// ListByRole cruza tenants: lo usa el generador de nómina.
	ListByRole(role string) ([]*entity.User, error)
}
