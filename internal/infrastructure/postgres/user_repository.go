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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, company_id, email, password_hash,
	COALESCE(first_name, ''), COALESCE(last_name, ''), role, COALESCE(job_title, ''),
	salary, COALESCE(phone_number, ''), COALESCE(personal_tax_id, ''), COALESCE(id_number, ''),
	COALESCE(address, ''), avatar, COALESCE(avatar_content_type, ''), created_at, updated_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, company_id, email, password_hash, first_name, last_name, role, job_title,
		                   salary, phone_number, personal_tax_id, id_number, address, avatar, avatar_content_type,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.CompanyID, user.Email, user.PasswordHash,
		nullIfEmpty(user.FirstName), nullIfEmpty(user.LastName), user.Role, nullIfEmpty(user.JobTitle),
		user.Salary, nullIfEmpty(user.PhoneNumber), nullIfEmpty(user.PersonalTaxID), nullIfEmpty(user.IDNumber),
		nullIfEmpty(user.Address), user.Avatar, nullIfEmpty(user.AvatarContentType),
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get user by id")
}

// GetByEmail obtiene un usuario por email (único a nivel global).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "get user by email")
}

// Update actualiza un usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users
		SET email = $2, password_hash = $3, first_name = $4, last_name = $5, role = $6, job_title = $7,
		    salary = $8, phone_number = $9, personal_tax_id = $10, id_number = $11, address = $12,
		    avatar = $13, avatar_content_type = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash,
		nullIfEmpty(user.FirstName), nullIfEmpty(user.LastName), user.Role, nullIfEmpty(user.JobTitle),
		user.Salary, nullIfEmpty(user.PhoneNumber), nullIfEmpty(user.PersonalTaxID), nullIfEmpty(user.IDNumber),
		nullIfEmpty(user.Address), user.Avatar, nullIfEmpty(user.AvatarContentType), user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// ListByCompany lista todos los usuarios de una empresa.
func (r *UserRepo) ListByCompany(companyID string) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE company_id = $1 ORDER BY created_at ASC`
	return r.list(query, companyID)
}

// ListByCompanyAndRole lista usuarios de una empresa filtrados por rol.
func (r *UserRepo) ListByCompanyAndRole(companyID, role string) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE company_id = $1 AND role = $2 ORDER BY created_at ASC`
	return r.list(query, companyID, role)
}

// ListByRole lista usuarios por rol cruzando todos los tenants (nómina).
func (r *UserRepo) ListByRole(role string) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY company_id, created_at ASC`
	return r.list(query, role)
}

func (r *UserRepo) list(query string, args ...any) ([]*entity.User, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var out []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.CompanyID, &u.Email, &u.PasswordHash,
			&u.FirstName, &u.LastName, &u.Role, &u.JobTitle,
			&u.Salary, &u.PhoneNumber, &u.PersonalTaxID, &u.IDNumber,
			&u.Address, &u.Avatar, &u.AvatarContentType, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.CompanyID, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.Role, &u.JobTitle,
		&u.Salary, &u.PhoneNumber, &u.PersonalTaxID, &u.IDNumber,
		&u.Address, &u.Avatar, &u.AvatarContentType, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
