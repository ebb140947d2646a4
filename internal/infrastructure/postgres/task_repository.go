package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/economit/backoffice/internal/domain/entity"
	"github.com/economit/backoffice/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación de TaskRepository (usable con pool o tx).
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

// Create persiste la fila de la tarea (los adjuntos van aparte, misma tx).
func (r *TaskRepo) Create(task *entity.Task) error {
	query := `
		INSERT INTO tasks (id, company_id, title, description, due_date, status, rating, assigned_to_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, task.CompanyID, task.Title, nullIfEmpty(task.Description),
		task.DueDate, task.Status, task.Rating, task.AssignedToID,
		task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene la tarea con los metadatos de sus adjuntos (sin bytes).
func (r *TaskRepo) GetByID(id string) (*entity.Task, error) {
	query := `
		SELECT id, company_id, title, COALESCE(description, ''), due_date, status, rating, assigned_to_id, created_at, updated_at
		FROM tasks WHERE id = $1`
	var t entity.Task
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.CompanyID, &t.Title, &t.Description, &t.DueDate,
		&t.Status, &t.Rating, &t.AssignedToID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task by id: %w", err)
	}
	atts, err := r.listAttachmentMeta([]string{t.ID})
	if err != nil {
		return nil, err
	}
	t.Attachments = atts[t.ID]
	return &t, nil
}

// ListByCompany lista las tareas de la empresa por due_date ascendente, con
// los metadatos de sus adjuntos.
func (r *TaskRepo) ListByCompany(companyID string) ([]*entity.Task, error) {
	query := `
		SELECT id, company_id, title, COALESCE(description, ''), due_date, status, rating, assigned_to_id, created_at, updated_at
		FROM tasks WHERE company_id = $1 ORDER BY due_date ASC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*entity.Task
	var ids []string
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(
			&t.ID, &t.CompanyID, &t.Title, &t.Description, &t.DueDate,
			&t.Status, &t.Rating, &t.AssignedToID, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, &t)
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return tasks, nil
	}

	atts, err := r.listAttachmentMeta(ids)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		t.Attachments = atts[t.ID]
	}
	return tasks, nil
}

// Update actualiza status, rating y updated_at de la tarea.
func (r *TaskRepo) Update(task *entity.Task) error {
	query := `UPDATE tasks SET status = $2, rating = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, task.ID, task.Status, task.Rating, task.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete elimina la tarea; task_attachments cae por ON DELETE CASCADE.
func (r *TaskRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// listAttachmentMeta trae los metadatos de adjuntos (sin la columna data) de
// un conjunto de tareas, agrupados por task_id.
func (r *TaskRepo) listAttachmentMeta(taskIDs []string) (map[string][]entity.TaskAttachment, error) {
	query := `
		SELECT id, task_id, COALESCE(file_name, ''), COALESCE(file_type, ''), created_at
		FROM task_attachments WHERE task_id = ANY($1) ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, taskIDs)
	if err != nil {
		return nil, fmt.Errorf("list task attachments: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.TaskAttachment)
	for rows.Next() {
		var a entity.TaskAttachment
		if err := rows.Scan(&a.ID, &a.TaskID, &a.FileName, &a.FileType, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task attachment: %w", err)
		}
		out[a.TaskID] = append(out[a.TaskID], a)
	}
	return out, rows.Err()
}

var _ repository.TaskAttachmentRepository = (*TaskAttachmentRepo)(nil)

// TaskAttachmentRepo implementación de TaskAttachmentRepository (pool o tx).
type TaskAttachmentRepo struct {
	q Querier
}

// NewTaskAttachmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTaskAttachmentRepository(q Querier) *TaskAttachmentRepo {
	return &TaskAttachmentRepo{q: q}
}

// Create persiste un adjunto con sus bytes.
func (r *TaskAttachmentRepo) Create(att *entity.TaskAttachment) error {
	query := `
		INSERT INTO task_attachments (id, task_id, file_name, file_type, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		att.ID, att.TaskID, nullIfEmpty(att.FileName), nullIfEmpty(att.FileType), att.Data, att.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task attachment: %w", err)
	}
	return nil
}

// GetByID devuelve el adjunto completo, bytes incluidos.
func (r *TaskAttachmentRepo) GetByID(id string) (*entity.TaskAttachment, error) {
	query := `
		SELECT id, task_id, COALESCE(file_name, ''), COALESCE(file_type, ''), data, created_at
		FROM task_attachments WHERE id = $1`
	var a entity.TaskAttachment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.TaskID, &a.FileName, &a.FileType, &a.Data, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task attachment by id: %w", err)
	}
	return &a, nil
}
