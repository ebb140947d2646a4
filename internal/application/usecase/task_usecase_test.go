package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/economit/backoffice/internal/application/dto"
	"github.com/economit/backoffice/internal/application/usecase"
	"github.com/economit/backoffice/internal/domain"
	"github.com/economit/backoffice/internal/domain/entity"
	"github.com/economit/backoffice/pkg/logger"
)

const testMaxUpload = 1024

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func adminActor() *entity.User {
	return &entity.User{
		ID:        "admin-1",
		CompanyID: "company-a",
		Email:     "admin@acme.com",
		FirstName: "Ana",
		LastName:  "Gómez",
		Role:      entity.RoleCompanyAdmin,
	}
}

func employeeActor() *entity.User {
	return &entity.User{
		ID:        "emp-1",
		CompanyID: "company-a",
		Email:     "luis@acme.com",
		FirstName: "Luis",
		LastName:  "Mora",
		Role:      entity.RoleEmployee,
	}
}

type taskFixture struct {
	uc       *usecase.TaskUseCase
	taskRepo *fakeTaskRepo
	attRepo  *fakeAttachmentRepo
	userRepo *fakeUserRepo
	notifier *fakeNotifier
	runner   *fakeTaskTxRunner
}

func newTaskFixture() *taskFixture {
	taskRepo := &fakeTaskRepo{}
	attRepo := &fakeAttachmentRepo{}
	userRepo := &fakeUserRepo{users: []*entity.User{adminActor(), employeeActor()}}
	notifier := &fakeNotifier{}
	runner := &fakeTaskTxRunner{taskRepo: taskRepo, attRepo: attRepo}
	return &taskFixture{
		uc:       usecase.NewTaskUseCase(runner, taskRepo, attRepo, userRepo, notifier, logger.Nop(), testMaxUpload),
		taskRepo: taskRepo,
		attRepo:  attRepo,
		userRepo: userRepo,
		notifier: notifier,
		runner:   runner,
	}
}

func createRequest() dto.CreateTaskRequest {
	return dto.CreateTaskRequest{
		Title:        "Cierre contable",
		Description:  "Cerrar el mes",
		DueDate:      time.Now().Add(72 * time.Hour),
		AssignedToID: "emp-1",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestTaskCreate_PersisteTareaYAdjuntosYNotifica(t *testing.T) {
	f := newTaskFixture()
	files := []dto.FileInput{
		{FileName: "contrato.pdf", FileType: "application/pdf", Data: []byte("pdf")},
		{FileName: "anexo.txt", FileType: "text/plain", Data: []byte("txt")},
	}

	out, err := f.uc.Create(context.Background(), adminActor(), createRequest(), files)
	require.NoError(t, err)

	assert.Equal(t, entity.TaskStatusTODO, out.Status, "toda tarea nace en TODO")
	assert.Equal(t, 0, out.Rating)
	assert.Len(t, out.Attachments, 2)
	assert.Equal(t, "Luis Mora", out.AssignedToName)

	require.Len(t, f.taskRepo.tasks, 1)
	assert.Equal(t, "company-a", f.taskRepo.tasks[0].CompanyID, "la tarea hereda la empresa del actor")
	assert.Len(t, f.attRepo.attachments, 2)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "luis@acme.com", f.notifier.sent[0].Recipient)
	assert.Equal(t, "New Task: Cierre contable", f.notifier.sent[0].Message)
	assert.Equal(t, entity.NotificationTypeTask, f.notifier.sent[0].Type)
}

func TestTaskCreate_FalloDeUnAdjuntoNoDejaNada(t *testing.T) {
	f := newTaskFixture()
	f.runner.failAttCreate = true
	files := []dto.FileInput{{FileName: "a.bin", Data: []byte("x")}}

	_, err := f.uc.Create(context.Background(), adminActor(), createRequest(), files)
	require.Error(t, err)

	assert.Empty(t, f.taskRepo.tasks, "la tarea no debe quedar persistida si un adjunto falla")
	assert.Empty(t, f.attRepo.attachments)
	assert.Empty(t, f.notifier.sent, "sin commit no hay notificación")
}

func TestTaskCreate_SoloAdmin(t *testing.T) {
	f := newTaskFixture()

	_, err := f.uc.Create(context.Background(), employeeActor(), createRequest(), nil)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTaskCreate_AsignadoDeOtraEmpresaEsForbidden(t *testing.T) {
	f := newTaskFixture()
	f.userRepo.users = append(f.userRepo.users, &entity.User{
		ID:        "emp-b",
		CompanyID: "company-b",
		Email:     "eva@otra.com",
		Role:      entity.RoleEmployee,
	})
	in := createRequest()
	in.AssignedToID = "emp-b"

	_, err := f.uc.Create(context.Background(), adminActor(), in, nil)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, f.taskRepo.tasks)
}

func TestTaskCreate_AsignadoInexistente(t *testing.T) {
	f := newTaskFixture()
	in := createRequest()
	in.AssignedToID = "no-existe"

	_, err := f.uc.Create(context.Background(), adminActor(), in, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTaskCreate_AdjuntoSobreElLimite(t *testing.T) {
	f := newTaskFixture()
	files := []dto.FileInput{{FileName: "grande.bin", Data: make([]byte, testMaxUpload+1)}}

	_, err := f.uc.Create(context.Background(), adminActor(), createRequest(), files)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.taskRepo.tasks)
}

func TestTaskCreate_FalloDeNotificacionNoDeshaceLaTarea(t *testing.T) {
	f := newTaskFixture()
	f.notifier.fail = true

	out, err := f.uc.Create(context.Background(), adminActor(), createRequest(), nil)
	require.NoError(t, err, "el fallo del notificador no es un fallo de la creación")
	assert.NotEmpty(t, out.ID)
	assert.Len(t, f.taskRepo.tasks, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// List (visibilidad por rol)
// ──────────────────────────────────────────────────────────────────────────────

func TestTaskList_AdminVeTodasEmpleadoSoloLasSuyas(t *testing.T) {
	f := newTaskFixture()
	f.taskRepo.tasks = []*entity.Task{
		{ID: "t1", CompanyID: "company-a", Title: "Propia", AssignedToID: "emp-1", Status: entity.TaskStatusTODO},
		{ID: "t2", CompanyID: "company-a", Title: "Ajena", AssignedToID: "emp-2", Status: entity.TaskStatusTODO},
	}

	adminView, err := f.uc.List(adminActor())
	require.NoError(t, err)
	assert.Len(t, adminView, 2)

	empView, err := f.uc.List(employeeActor())
	require.NoError(t, err)
	require.Len(t, empView, 1)
	assert.Equal(t, "t1", empView[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestTaskUpdate_ParcialStatusYRating(t *testing.T) {
	f := newTaskFixture()
	f.taskRepo.tasks = []*entity.Task{
		{ID: "t1", CompanyID: "company-a", Status: entity.TaskStatusTODO, Rating: 0, AssignedToID: "emp-1"},
	}

	done := entity.TaskStatusDone
	out, err := f.uc.Update(employeeActor(), "t1", dto.UpdateTaskRequest{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusDone, out.Status)
	assert.Equal(t, 0, out.Rating, "rating ausente no se toca")

	rating := 4
	out, err = f.uc.Update(adminActor(), "t1", dto.UpdateTaskRequest{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 4, out.Rating)
	assert.Equal(t, entity.TaskStatusDone, out.Status, "status ausente no se toca")
}

func TestTaskUpdate_ValoresInvalidos(t *testing.T) {
	f := newTaskFixture()
	f.taskRepo.tasks = []*entity.Task{
		{ID: "t1", CompanyID: "company-a", Status: entity.TaskStatusTODO},
	}

	malo := "ARCHIVED"
	_, err := f.uc.Update(adminActor(), "t1", dto.UpdateTaskRequest{Status: &malo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	seis := 6
	_, err = f.uc.Update(adminActor(), "t1", dto.UpdateTaskRequest{Rating: &seis})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	negativo := -1
	_, err = f.uc.Update(adminActor(), "t1", dto.UpdateTaskRequest{Rating: &negativo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskUpdate_OtraEmpresaEsForbidden(t *testing.T) {
	f := newTaskFixture()
	f.taskRepo.tasks = []*entity.Task{
		{ID: "t1", CompanyID: "company-b", Status: entity.TaskStatusTODO},
	}

	done := entity.TaskStatusDone
	_, err := f.uc.Update(adminActor(), "t1", dto.UpdateTaskRequest{Status: &done})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete y adjuntos
// ──────────────────────────────────────────────────────────────────────────────

func TestTaskDelete_VerificaTenant(t *testing.T) {
	f := newTaskFixture()
	f.taskRepo.tasks = []*entity.Task{
		{ID: "t1", CompanyID: "company-a"},
		{ID: "t2", CompanyID: "company-b"},
	}

	require.NoError(t, f.uc.Delete(adminActor(), "t1"))
	assert.Len(t, f.taskRepo.tasks, 1)

	err := f.uc.Delete(adminActor(), "t2")
	assert.ErrorIs(t, err, domain.ErrForbidden, "tarea de otra empresa no se borra")

	err = f.uc.Delete(adminActor(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetAttachment_AlcancePorTareaDueña(t *testing.T) {
	f := newTaskFixture()
	f.taskRepo.tasks = []*entity.Task{
		{ID: "t1", CompanyID: "company-a"},
		{ID: "t2", CompanyID: "company-b"},
	}
	f.attRepo.attachments = []*entity.TaskAttachment{
		{ID: "a1", TaskID: "t1", FileName: "ok.pdf", Data: []byte("pdf")},
		{ID: "a2", TaskID: "t2", FileName: "ajeno.pdf", Data: []byte("pdf")},
	}

	att, err := f.uc.GetAttachment(adminActor(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "ok.pdf", att.FileName)
	assert.Equal(t, []byte("pdf"), att.Data)

	_, err = f.uc.GetAttachment(adminActor(), "a2")
	assert.ErrorIs(t, err, domain.ErrForbidden, "adjunto de tarea de otra empresa")

	_, err = f.uc.GetAttachment(adminActor(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
