package usecase

import (
	"encoding/base64"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/economit/backoffice/internal/application/directory"
	"github.com/economit/backoffice/internal/application/dto"
	"github.com/economit/backoffice/internal/domain"
	"github.com/economit/backoffice/internal/domain/entity"
	"github.com/economit/backoffice/internal/domain/repository"
)

// Contraseña inicial de los empleados creados por un admin; deben cambiarla
// desde su perfil.
const defaultEmployeePassword = "password123"

// EmployeeUseCase gestión de empleados de la empresa y del perfil propio.
type EmployeeUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	maxBytes    int64
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, maxUploadBytes int64) *EmployeeUseCase {
	return &EmployeeUseCase{userRepo: userRepo, companyRepo: companyRepo, maxBytes: maxUploadBytes}
}

// ListEmployees devuelve los usuarios EMPLOYEE de la empresa del actor.
func (uc *EmployeeUseCase) ListEmployees(actor *entity.User) ([]dto.EmployeeResponse, error) {
	users, err := uc.userRepo.ListByCompanyAndRole(actor.CompanyID, entity.RoleEmployee)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toEmployeeResponse(u, ""))
	}
	return out, nil
}

// ListAllCompanyUsers devuelve todos los usuarios de la empresa, sin filtro de
// rol (lo usa el roster del chat).
func (uc *EmployeeUseCase) ListAllCompanyUsers(actor *entity.User) ([]dto.EmployeeResponse, error) {
	users, err := uc.userRepo.ListByCompany(actor.CompanyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toEmployeeResponse(u, ""))
	}
	return out, nil
}

// CreateEmployee alta de empleado por un admin, en la empresa del admin, con
// contraseña por defecto. ErrEmailAlreadyExists si el email ya está en uso.
func (uc *EmployeeUseCase) CreateEmployee(actor *entity.User, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := directory.RequireRole(actor, entity.RoleCompanyAdmin); err != nil {
		return nil, err
	}
	if in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultEmployeePassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	employee := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    actor.CompanyID,
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         entity.RoleEmployee,
		JobTitle:     in.JobTitle,
		Salary:       in.Salary,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(employee); err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(employee, "")
	return &resp, nil
}

// GetMe devuelve el perfil del actor, con el nombre de su empresa.
func (uc *EmployeeUseCase) GetMe(actor *entity.User) (*dto.EmployeeResponse, error) {
	companyName := ""
	if company, err := uc.companyRepo.GetByID(actor.CompanyID); err == nil && company != nil {
		companyName = company.Name
	}
	resp := toEmployeeResponse(actor, companyName)
	return &resp, nil
}

// UpdateMe actualización parcial del perfil propio: datos de contacto,
// contraseña nueva y avatar. Los campos nil no se tocan.
func (uc *EmployeeUseCase) UpdateMe(actor *entity.User, in dto.UpdateMeInput) (*dto.EmployeeResponse, error) {
	if in.PhoneNumber != nil {
		actor.PhoneNumber = *in.PhoneNumber
	}
	if in.PersonalTaxID != nil {
		actor.PersonalTaxID = *in.PersonalTaxID
	}
	if in.IDNumber != nil {
		actor.IDNumber = *in.IDNumber
	}
	if in.Address != nil {
		actor.Address = *in.Address
	}
	if in.NewPassword != nil && *in.NewPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		actor.PasswordHash = string(hash)
	}
	if in.AvatarData != nil {
		if int64(len(in.AvatarData)) > uc.maxBytes {
			return nil, domain.ErrInvalidInput
		}
		actor.Avatar = in.AvatarData
		actor.AvatarContentType = in.AvatarContentType
	}
	actor.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(actor); err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(actor, "")
	return &resp, nil
}

func toEmployeeResponse(u *entity.User, companyName string) dto.EmployeeResponse {
	avatarBase64 := ""
	if len(u.Avatar) > 0 {
		avatarBase64 = base64.StdEncoding.EncodeToString(u.Avatar)
	}
	return dto.EmployeeResponse{
		ID:                u.ID,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Email:             u.Email,
		Role:              u.Role,
		JobTitle:          u.JobTitle,
		Salary:            u.Salary,
		CompanyName:       companyName,
		PhoneNumber:       u.PhoneNumber,
		PersonalTaxID:     u.PersonalTaxID,
		IDNumber:          u.IDNumber,
		Address:           u.Address,
		AvatarBase64:      avatarBase64,
		AvatarContentType: u.AvatarContentType,
	}
}
