package usecase_test

import (
	"context"
	"errors"
	"strings"

	"github.com/economit/backoffice/internal/application/usecase"
	"github.com/economit/backoffice/internal/domain"
	"github.com/economit/backoffice/internal/domain/entity"
	"github.com/economit/backoffice/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.users = append(f.users, u)
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	for i, old := range f.users {
		if old.ID == u.ID {
			f.users[i] = u
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (f *fakeUserRepo) ListByCompany(companyID string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) ListByCompanyAndRole(companyID, role string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.CompanyID == companyID && u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) ListByRole(role string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeCompanyRepo struct {
	companies []*entity.Company
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error {
	f.companies = append(f.companies, c)
	return nil
}

func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	for _, c := range f.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) Update(c *entity.Company) error {
	for i, old := range f.companies {
		if old.ID == c.ID {
			f.companies[i] = c
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeTaskRepo struct {
	tasks      []*entity.Task
	failCreate bool
}

func (f *fakeTaskRepo) Create(t *entity.Task) error {
	if f.failCreate {
		return errors.New("insert task: fallo simulado")
	}
	cp := *t
	f.tasks = append(f.tasks, &cp)
	return nil
}

func (f *fakeTaskRepo) GetByID(id string) (*entity.Task, error) {
	for _, t := range f.tasks {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeTaskRepo) ListByCompany(companyID string) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range f.tasks {
		if t.CompanyID == companyID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Update(t *entity.Task) error {
	for i, old := range f.tasks {
		if old.ID == t.ID {
			cp := *t
			f.tasks[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeTaskRepo) Delete(id string) error {
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeAttachmentRepo struct {
	attachments []*entity.TaskAttachment
	failCreate  bool
}

func (f *fakeAttachmentRepo) Create(a *entity.TaskAttachment) error {
	if f.failCreate {
		return errors.New("insert attachment: fallo simulado")
	}
	cp := *a
	f.attachments = append(f.attachments, &cp)
	return nil
}

func (f *fakeAttachmentRepo) GetByID(id string) (*entity.TaskAttachment, error) {
	for _, a := range f.attachments {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeTransactionRepo struct {
	txns []*entity.Transaction
	// conflictDescriptions simula el índice único de nómina: Create de una
	// fila SALARIES cuya descripción esté aquí devuelve ErrConflict.
	conflictDescriptions map[string]bool
	failCreateFor        string // email o descripción que fuerza un error genérico
}

func (f *fakeTransactionRepo) Create(t *entity.Transaction) error {
	if f.failCreateFor != "" && strings.Contains(t.Description, f.failCreateFor) {
		return errors.New("insert transaction: fallo simulado")
	}
	if t.Category == entity.CategorySalaries && f.conflictDescriptions[t.Description] {
		return domain.ErrConflict
	}
	cp := *t
	f.txns = append(f.txns, &cp)
	return nil
}

func (f *fakeTransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	for _, t := range f.txns {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionRepo) Search(companyID string, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range f.txns {
		if t.CompanyID != companyID {
			continue
		}
		if filter.Type != nil && t.Type != *filter.Type {
			continue
		}
		if filter.Category != nil && t.Category != *filter.Category {
			continue
		}
		if filter.StartDate != nil && t.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && t.Date.After(*filter.EndDate) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTransactionRepo) UpdateStatus(id, status string) error {
	for _, t := range f.txns {
		if t.ID == id {
			t.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeTransactionRepo) Delete(id string) error {
	for i, t := range f.txns {
		if t.ID == id {
			f.txns = append(f.txns[:i], f.txns[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeNotificationRepo struct {
	notifications []*entity.Notification
	failCreate    bool
}

func (f *fakeNotificationRepo) Create(n *entity.Notification) error {
	if f.failCreate {
		return errors.New("insert notification: fallo simulado")
	}
	cp := *n
	f.notifications = append(f.notifications, &cp)
	return nil
}

func (f *fakeNotificationRepo) GetByID(id string) (*entity.Notification, error) {
	for _, n := range f.notifications {
		if n.ID == id {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeNotificationRepo) ListByRecipient(email string) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range f.notifications {
		if n.RecipientEmail == email {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(id string) error {
	for _, n := range f.notifications {
		if n.ID == id {
			n.IsRead = true
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeChatRepo struct {
	messages   []*entity.ChatMessage
	failCreate bool
}

func (f *fakeChatRepo) Create(m *entity.ChatMessage) error {
	if f.failCreate {
		return errors.New("insert chat message: fallo simulado")
	}
	cp := *m
	f.messages = append(f.messages, &cp)
	return nil
}

func (f *fakeChatRepo) FindConversation(a, b string) ([]*entity.ChatMessage, error) {
	var out []*entity.ChatMessage
	for _, m := range f.messages {
		if (m.SenderID == a && m.RecipientID == b) || (m.SenderID == b && m.RecipientID == a) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeEventRepo struct {
	events []*entity.CompanyEvent
}

func (f *fakeEventRepo) Create(e *entity.CompanyEvent) error {
	cp := *e
	f.events = append(f.events, &cp)
	return nil
}

func (f *fakeEventRepo) GetByID(id string) (*entity.CompanyEvent, error) {
	for _, e := range f.events {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeEventRepo) ListByCompany(companyID string) ([]*entity.CompanyEvent, error) {
	var out []*entity.CompanyEvent
	for _, e := range f.events {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Delete(id string) error {
	for i, e := range f.events {
		if e.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de publicación, notificación y transacciones de DB
// ──────────────────────────────────────────────────────────────────────────────

type published struct {
	Channel string
	Payload interface{}
}

type fakePublisher struct {
	events []published
}

func (f *fakePublisher) Publish(channel string, payload interface{}) {
	f.events = append(f.events, published{Channel: channel, Payload: payload})
}

func (f *fakePublisher) channels() []string {
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Channel)
	}
	return out
}

type sentNotification struct {
	Recipient string
	Message   string
	Type      string
}

type fakeNotifier struct {
	sent []sentNotification
	fail bool
}

func (f *fakeNotifier) Send(recipientEmail, message, ntype string) error {
	if f.fail {
		return errors.New("notifier caído")
	}
	f.sent = append(f.sent, sentNotification{Recipient: recipientEmail, Message: message, Type: ntype})
	return nil
}

// fakeTaskTxRunner simula la atomicidad real: la función corre contra repos de
// staging y solo en caso de éxito el contenido se vuelca a los repos de respaldo.
type fakeTaskTxRunner struct {
	taskRepo *fakeTaskRepo
	attRepo  *fakeAttachmentRepo
	// flags que se copian a los repos de staging para simular fallos dentro de la tx
	failTaskCreate bool
	failAttCreate  bool
}

func (f *fakeTaskTxRunner) RunTask(_ context.Context, fn func(repository.TaskRepository, repository.TaskAttachmentRepository) error) error {
	staging := &fakeTaskRepo{failCreate: f.failTaskCreate}
	stagingAtt := &fakeAttachmentRepo{failCreate: f.failAttCreate}
	if err := fn(staging, stagingAtt); err != nil {
		return err // rollback: nada llega a los repos de respaldo
	}
	f.taskRepo.tasks = append(f.taskRepo.tasks, staging.tasks...)
	f.attRepo.attachments = append(f.attRepo.attachments, stagingAtt.attachments...)
	return nil
}

var _ usecase.TaskTxRunner = (*fakeTaskTxRunner)(nil)

type fakeLedgerTxRunner struct {
	txnRepo *fakeTransactionRepo
	// failFor fuerza el fallo del Create de staging para la descripción dada
	failFor string
}

func (f *fakeLedgerTxRunner) RunLedger(_ context.Context, fn func(repository.TransactionRepository) error) error {
	staging := &fakeTransactionRepo{failCreateFor: f.failFor}
	if err := fn(staging); err != nil {
		return err
	}
	f.txnRepo.txns = append(f.txnRepo.txns, staging.txns...)
	return nil
}

var _ usecase.LedgerTxRunner = (*fakeLedgerTxRunner)(nil)
