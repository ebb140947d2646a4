package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/economit/backoffice/internal/domain/entity"
	"github.com/economit/backoffice/internal/domain/repository"
)

var _ repository.CompanyEventRepository = (*CompanyEventRepo)(nil)

// CompanyEventRepo implementación de CompanyEventRepository.
type CompanyEventRepo struct {
	q Querier
}

// NewCompanyEventRepository construye el adaptador.
func NewCompanyEventRepository(q Querier) *CompanyEventRepo {
	return &CompanyEventRepo{q: q}
}

// Create persiste el evento de calendario.
func (r *CompanyEventRepo) Create(event *entity.CompanyEvent) error {
	query := `
		INSERT INTO company_events (id, company_id, title, description, start_time, end_time, location, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.CompanyID, event.Title, nullIfEmpty(event.Description),
		event.StartTime, event.EndTime, nullIfEmpty(event.Location), event.Type,
		event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company event: %w", err)
	}
	return nil
}

// GetByID obtiene un evento por id. Devuelve nil, nil si no existe.
func (r *CompanyEventRepo) GetByID(id string) (*entity.CompanyEvent, error) {
	query := `
		SELECT id, company_id, title, COALESCE(description, ''), start_time, end_time, COALESCE(location, ''), type, created_at, updated_at
		FROM company_events WHERE id = $1`
	var e entity.CompanyEvent
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.CompanyID, &e.Title, &e.Description, &e.StartTime,
		&e.EndTime, &e.Location, &e.Type, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company event by id: %w", err)
	}
	return &e, nil
}

// ListByCompany lista los eventos de la empresa por start_time ascendente.
func (r *CompanyEventRepo) ListByCompany(companyID string) ([]*entity.CompanyEvent, error) {
	query := `
		SELECT id, company_id, title, COALESCE(description, ''), start_time, end_time, COALESCE(location, ''), type, created_at, updated_at
		FROM company_events WHERE company_id = $1 ORDER BY start_time ASC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list company events: %w", err)
	}
	defer rows.Close()

	var events []*entity.CompanyEvent
	for rows.Next() {
		var e entity.CompanyEvent
		if err := rows.Scan(
			&e.ID, &e.CompanyID, &e.Title, &e.Description, &e.StartTime,
			&e.EndTime, &e.Location, &e.Type, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company event: %w", err)
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}

// Delete elimina el evento.
func (r *CompanyEventRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM company_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company event: %w", err)
	}
	return nil
}
