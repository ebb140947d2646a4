package usecase

import (
	"encoding/base64"
	"time"

	"github.com/economit/backoffice/internal/application/dto"
	"github.com/economit/backoffice/internal/domain"
	"github.com/economit/backoffice/internal/domain/entity"
	"github.com/economit/backoffice/internal/domain/repository"
)

// CompanyUseCase perfil de la empresa del actor: lectura y actualización,
// incluido el logo (bytes en DB, base64 hacia el cliente).
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
	maxBytes    int64
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companyRepo repository.CompanyRepository, maxUploadBytes int64) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo, maxBytes: maxUploadBytes}
}

// GetProfile devuelve el perfil de la empresa del actor.
func (uc *CompanyUseCase) GetProfile(actor *entity.User) (*dto.CompanyProfileResponse, error) {
	company, err := uc.companyRepo.GetByID(actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	resp := toCompanyProfileResponse(company)
	return &resp, nil
}

// UpdateProfile actualiza el perfil. El nombre solo cambia si viene no vacío;
// el resto de campos de texto se sobrescriben tal cual llegan; el logo solo si
// se envía un archivo nuevo.
func (uc *CompanyUseCase) UpdateProfile(actor *entity.User, in dto.UpdateCompanyProfileInput) (*dto.CompanyProfileResponse, error) {
	company, err := uc.companyRepo.GetByID(actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != "" {
		company.Name = in.Name
	}
	company.TaxID = in.TaxID
	company.Phone = in.Phone
	company.Website = in.Website
	company.Street = in.Street
	company.City = in.City
	company.ZipCode = in.ZipCode
	company.Country = in.Country

	if in.LogoData != nil {
		if int64(len(in.LogoData)) > uc.maxBytes {
			return nil, domain.ErrInvalidInput
		}
		company.LogoData = in.LogoData
		company.LogoContentType = in.LogoContentType
	}
	company.UpdatedAt = time.Now()

	if err := uc.companyRepo.Update(company); err != nil {
		return nil, err
	}
	resp := toCompanyProfileResponse(company)
	return &resp, nil
}

func toCompanyProfileResponse(c *entity.Company) dto.CompanyProfileResponse {
	logoBase64 := ""
	if len(c.LogoData) > 0 {
		logoBase64 = base64.StdEncoding.EncodeToString(c.LogoData)
	}
	return dto.CompanyProfileResponse{
		Name:            c.Name,
		Email:           c.Email,
		TaxID:           c.TaxID,
		Phone:           c.Phone,
		Website:         c.Website,
		Street:          c.Street,
		City:            c.City,
		ZipCode:         c.ZipCode,
		Country:         c.Country,
		LogoBase64:      logoBase64,
		LogoContentType: c.LogoContentType,
	}
}
