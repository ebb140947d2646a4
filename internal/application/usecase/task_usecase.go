package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/economit/backoffice/internal/application/directory"
	"github.com/economit/backoffice/internal/application/dto"
	"github.com/economit/backoffice/internal/domain"
	"github.com/economit/backoffice/internal/domain/entity"
	"github.com/economit/backoffice/internal/domain/repository"
	"github.com/economit/backoffice/internal/domain/workforce"
	"github.com/economit/backoffice/pkg/logger"
)

// TaskUseCase motor de flujo de tareas: creación con adjuntos atómicos,
// actualización de estado/rating, borrado y descarga de adjuntos, todo bajo el
// invariante de aislamiento de tenant.
type TaskUseCase struct {
	txRunner TaskTxRunner
	taskRepo repository.TaskRepository
	attRepo  repository.TaskAttachmentRepository
	userRepo repository.UserRepository
	notifier Notifier
	log      *logger.Logger
	maxBytes int64
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(
	txRunner TaskTxRunner,
	taskRepo repository.TaskRepository,
	attRepo repository.TaskAttachmentRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
	log *logger.Logger,
	maxUploadBytes int64,
) *TaskUseCase {
	return &TaskUseCase{
		txRunner: txRunner,
		taskRepo: taskRepo,
		attRepo:  attRepo,
		userRepo: userRepo,
		notifier: notifier,
		log:      log,
		maxBytes: maxUploadBytes,
	}
}

// List devuelve las tareas visibles para el actor, ordenadas por due_date
// ascendente. La política admin-ve-todo / empleado-ve-las-suyas es fija y no
// parametrizable por el llamador.
func (uc *TaskUseCase) List(actor *entity.User) ([]dto.TaskResponse, error) {
	tasks, err := uc.taskRepo.ListByCompany(actor.CompanyID)
	if err != nil {
		return nil, err
	}
	visible := workforce.VisibleTasks(actor, tasks)
	out := make([]dto.TaskResponse, 0, len(visible))
	for _, t := range visible {
		out = append(out, uc.toTaskResponse(t))
	}
	return out, nil
}

// Create crea la tarea con sus adjuntos en una sola transacción: o se
// persisten la tarea y todos los adjuntos, o nada. La notificación al asignado
// va después del commit y es best-effort.
func (uc *TaskUseCase) Create(ctx context.Context, actor *entity.User, in dto.CreateTaskRequest, files []dto.FileInput) (*dto.TaskResponse, error) {
	if err := directory.RequireRole(actor, entity.RoleCompanyAdmin); err != nil {
		return nil, err
	}
	if in.Title == "" || in.AssignedToID == "" {
		return nil, domain.ErrInvalidInput
	}

	assignee, err := uc.userRepo.GetByID(in.AssignedToID)
	if err != nil {
		return nil, err
	}
	if assignee == nil {
		return nil, domain.ErrNotFound
	}
	if err := directory.AuthorizeCompanyScope(actor, assignee.CompanyID); err != nil {
		return nil, err
	}

	for _, f := range files {
		if int64(len(f.Data)) > uc.maxBytes {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	task := &entity.Task{
		ID:           uuid.New().String(),
		CompanyID:    actor.CompanyID,
		Title:        in.Title,
		Description:  in.Description,
		DueDate:      in.DueDate,
		Status:       entity.TaskStatusTODO,
		Rating:       0,
		AssignedToID: assignee.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, f := range files {
		task.Attachments = append(task.Attachments, entity.TaskAttachment{
			ID:        uuid.New().String(),
			TaskID:    task.ID,
			FileName:  f.FileName,
			FileType:  f.FileType,
			Data:      f.Data,
			CreatedAt: now,
		})
	}

	err = uc.txRunner.RunTask(ctx, func(taskRepo repository.TaskRepository, attRepo repository.TaskAttachmentRepository) error {
		if err := taskRepo.Create(task); err != nil {
			return err
		}
		for i := range task.Attachments {
			if err := attRepo.Create(&task.Attachments[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Fuera de la transacción: un fallo aquí no deshace la tarea creada.
	if err := uc.notifier.Send(assignee.Email, "New Task: "+task.Title, entity.NotificationTypeTask); err != nil {
		uc.log.Warn().Err(err).Str("task_id", task.ID).Msg("notificación de tarea no enviada")
	}

	resp := uc.toTaskResponse(task)
	resp.AssignedToName = assignee.FullName()
	return &resp, nil
}

// Update aplica una actualización parcial de estado y/o rating. Los campos
// ausentes no se tocan. El estado admite sobrescritura libre entre valores
// conocidos; el rating se valida en 0-5.
func (uc *TaskUseCase) Update(actor *entity.User, taskID string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.taskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if err := directory.AuthorizeCompanyScope(actor, task.CompanyID); err != nil {
		return nil, err
	}

	if in.Status != nil {
		if !entity.ValidTaskStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		task.Status = *in.Status
	}
	if in.Rating != nil {
		if *in.Rating < entity.TaskRatingMin || *in.Rating > entity.TaskRatingMax {
			return nil, domain.ErrInvalidInput
		}
		task.Rating = *in.Rating
	}
	task.UpdatedAt = time.Now()

	if err := uc.taskRepo.Update(task); err != nil {
		return nil, err
	}
	resp := uc.toTaskResponse(task)
	return &resp, nil
}

// Delete elimina la tarea por id, verificando antes que pertenece a la empresa
// del actor; los adjuntos caen en cascada.
func (uc *TaskUseCase) Delete(actor *entity.User, taskID string) error {
	task, err := uc.taskRepo.GetByID(taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return domain.ErrNotFound
	}
	if err := directory.AuthorizeCompanyScope(actor, task.CompanyID); err != nil {
		return err
	}
	return uc.taskRepo.Delete(taskID)
}

// GetAttachment devuelve un adjunto con sus bytes. El alcance de tenant se
// verifica a través de la tarea dueña.
func (uc *TaskUseCase) GetAttachment(actor *entity.User, attachmentID string) (*entity.TaskAttachment, error) {
	att, err := uc.attRepo.GetByID(attachmentID)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, domain.ErrNotFound
	}
	task, err := uc.taskRepo.GetByID(att.TaskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if err := directory.AuthorizeCompanyScope(actor, task.CompanyID); err != nil {
		return nil, err
	}
	return att, nil
}

func (uc *TaskUseCase) toTaskResponse(t *entity.Task) dto.TaskResponse {
	atts := make([]dto.AttachmentResponse, 0, len(t.Attachments))
	for _, a := range t.Attachments {
		atts = append(atts, dto.AttachmentResponse{
			ID:       a.ID,
			FileName: a.FileName,
			FileType: a.FileType,
		})
	}
	return dto.TaskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		DueDate:      t.DueDate,
		Status:       t.Status,
		Rating:       t.Rating,
		AssignedToID: t.AssignedToID,
		Attachments:  atts,
	}
}
