// Package directory resuelve el actor autenticado a su (User, Company) y
// concentra los predicados de autorización multi-tenant que usan el resto de
// los casos de uso. El actor siempre se pasa explícito como parámetro; no hay
// contexto de seguridad ambiental.
package directory

import (
	"github.com/economit/backoffice/internal/domain"
	"github.com/economit/backoffice/internal/domain/entity"
	"github.com/economit/backoffice/internal/domain/repository"
)

// Directory resuelve identidades y verifica el alcance de tenant.
type Directory struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
}

// New construye el directorio con sus puertos de persistencia.
func New(userRepo repository.UserRepository, companyRepo repository.CompanyRepository) *Directory {
	return &Directory{userRepo: userRepo, companyRepo: companyRepo}
}

// ResolveActor resuelve el email autenticado a su usuario y empresa.
// Devuelve ErrUserNotFound si la identidad no tiene usuario asociado.
func (d *Directory) ResolveActor(email string) (*entity.User, *entity.Company, error) {
	user, err := d.userRepo.GetByEmail(email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.ErrUserNotFound
	}
	company, err := d.companyRepo.GetByID(user.CompanyID)
	if err != nil {
		return nil, nil, err
	}
	if company == nil {
		return nil, nil, domain.ErrNotFound
	}
	return user, company, nil
}

// AuthorizeCompanyScope verifica el invariante de aislamiento de tenant:
// el actor solo puede operar sobre entidades de su propia empresa.
// Falla cerrado con ErrForbidden; nunca recorta el alcance en silencio.
func AuthorizeCompanyScope(actor *entity.User, entityCompanyID string) error {
	if actor == nil || actor.CompanyID == "" || actor.CompanyID != entityCompanyID {
		return domain.ErrForbidden
	}
	return nil
}

// RequireRole exige que el actor tenga el rol dado (operaciones solo-admin).
func RequireRole(actor *entity.User, role string) error {
	if actor == nil || actor.Role != role {
		return domain.ErrForbidden
	}
	return nil
}
