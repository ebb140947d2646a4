package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/economit/backoffice/internal/domain"
	"github.com/economit/backoffice/internal/domain/entity"
	"github.com/economit/backoffice/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, email, tax_id, phone, website, street, city, zip_code, country, logo_data, logo_content_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Email,
		nullIfEmpty(company.TaxID), nullIfEmpty(company.Phone), nullIfEmpty(company.Website),
		nullIfEmpty(company.Street), nullIfEmpty(company.City), nullIfEmpty(company.ZipCode), nullIfEmpty(company.Country),
		company.LogoData, nullIfEmpty(company.LogoContentType),
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `
		SELECT id, name, email, COALESCE(tax_id, ''), COALESCE(phone, ''), COALESCE(website, ''),
		       COALESCE(street, ''), COALESCE(city, ''), COALESCE(zip_code, ''), COALESCE(country, ''),
		       logo_data, COALESCE(logo_content_type, ''), created_at, updated_at
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.TaxID, &c.Phone, &c.Website,
		&c.Street, &c.City, &c.ZipCode, &c.Country,
		&c.LogoData, &c.LogoContentType, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by id: %w", err)
	}
	return &c, nil
}

// Update actualiza el perfil de la empresa (incluido el logo).
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies
		SET name = $2, tax_id = $3, phone = $4, website = $5, street = $6, city = $7,
		    zip_code = $8, country = $9, logo_data = $10, logo_content_type = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name,
		nullIfEmpty(company.TaxID), nullIfEmpty(company.Phone), nullIfEmpty(company.Website),
		nullIfEmpty(company.Street), nullIfEmpty(company.City), nullIfEmpty(company.ZipCode), nullIfEmpty(company.Country),
		company.LogoData, nullIfEmpty(company.LogoContentType), company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}
