package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"dental-assistant-be/internal/entity"
	"dental-assistant-be/internal/repository/contract"
	"dental-assistant-be/internal/repository/specification"
	"dental-assistant-be/internal/repository/unitofwork"
	"dental-assistant-be/pkg/assistant"
	"dental-assistant-be/pkg/events"
)

// In-memory repository fakes. They interpret the handful of specifications
// the services actually use.

type fakePatientRepository struct {
	mu       sync.Mutex
	patients map[uint]*entity.Patient
	nextId   uint
	now      time.Time
}

func newFakePatientRepository() *fakePatientRepository {
	return &fakePatientRepository{
		patients: make(map[uint]*entity.Patient),
		nextId:   1,
		now:      time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *fakePatientRepository) tick() time.Time {
	r.now = r.now.Add(time.Second)
	return r.now
}

func (r *fakePatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	patient.Id = r.nextId
	r.nextId++
	patient.CreatedAt = r.tick()
	patient.UpdatedAt = patient.CreatedAt
	copied := *patient
	r.patients[patient.Id] = &copied
	return nil
}

func (r *fakePatientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	patient.UpdatedAt = r.tick()
	copied := *patient
	r.patients[patient.Id] = &copied
	return nil
}

func (r *fakePatientRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.patients, id)
	return nil
}

func (r *fakePatientRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Patient, error) {
	rows, err := r.FindAll(ctx, specs...)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (r *fakePatientRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([]*entity.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		copied := *p
		rows = append(rows, &copied)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Id < rows[j].Id })

	limit, offset := -1, 0
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			rows = filterPatients(rows, func(p *entity.Patient) bool { return p.Id == s.ID })
		case specification.PatientSearchQuery:
			q := strings.ToLower(s.Query)
			rows = filterPatients(rows, func(p *entity.Patient) bool {
				if strings.Contains(strings.ToLower(p.Name), q) {
					return true
				}
				if p.Email != nil && strings.Contains(strings.ToLower(*p.Email), q) {
					return true
				}
				return p.Phone != nil && strings.Contains(strings.ToLower(*p.Phone), q)
			})
		case specification.OrderBy:
			desc := s.Desc
			sort.Slice(rows, func(i, j int) bool {
				if desc {
					return rows[i].CreatedAt.After(rows[j].CreatedAt)
				}
				return rows[i].CreatedAt.Before(rows[j].CreatedAt)
			})
		case specification.Pagination:
			limit, offset = s.Limit, s.Offset
		case specification.Limit:
			limit = s.Limit
		}
	}

	if offset > 0 {
		if offset >= len(rows) {
			return nil, nil
		}
		rows = rows[offset:]
	}
	if limit >= 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *fakePatientRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	rows, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}

func filterPatients(rows []*entity.Patient, keep func(*entity.Patient) bool) []*entity.Patient {
	out := rows[:0]
	for _, p := range rows {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

type fakeChatMessageRepository struct {
	mu       sync.Mutex
	messages []*entity.ChatMessage
	nextId   uint
	now      time.Time
}

func newFakeChatMessageRepository() *fakeChatMessageRepository {
	return &fakeChatMessageRepository{
		nextId: 1,
		now:    time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *fakeChatMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	message.Id = r.nextId
	r.nextId++
	r.now = r.now.Add(time.Second)
	message.CreatedAt = r.now
	copied := *message
	r.messages = append(r.messages, &copied)
	return nil
}

func (r *fakeChatMessageRepository) DeleteByPatientId(ctx context.Context, patientId uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.messages[:0]
	for _, m := range r.messages {
		if m.PatientId != patientId {
			kept = append(kept, m)
		}
	}
	r.messages = kept
	return nil
}

func (r *fakeChatMessageRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([]*entity.ChatMessage, 0, len(r.messages))
	for _, m := range r.messages {
		copied := *m
		rows = append(rows, &copied)
	}

	limit := -1
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByPatientID:
			kept := rows[:0]
			for _, m := range rows {
				if m.PatientId == s.PatientID {
					kept = append(kept, m)
				}
			}
			rows = kept
		case specification.OrderBy:
			desc := s.Desc
			sort.Slice(rows, func(i, j int) bool {
				if desc {
					return rows[i].CreatedAt.After(rows[j].CreatedAt)
				}
				return rows[i].CreatedAt.Before(rows[j].CreatedAt)
			})
		case specification.Limit:
			limit = s.Limit
		}
	}

	if limit >= 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *fakeChatMessageRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	rows, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}

type fakeUserRepository struct{}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error { return nil }
func (r *fakeUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return nil, nil
}

// fakeUnitOfWork hands out the same fake repositories on every request.

type fakeUnitOfWork struct {
	patients *fakePatientRepository
	messages *fakeChatMessageRepository
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository { return &fakeUserRepository{} }
func (u *fakeUnitOfWork) PatientRepository() contract.PatientRepository {
	return u.patients
}
func (u *fakeUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return u.messages
}

type fakeRepositoryFactory struct {
	uow *fakeUnitOfWork
}

func newFakeRepositoryFactory() *fakeRepositoryFactory {
	return &fakeRepositoryFactory{
		uow: &fakeUnitOfWork{
			patients: newFakePatientRepository(),
			messages: newFakeChatMessageRepository(),
		},
	}
}

func (f *fakeRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// fakePublisher records every published event.

type fakePublisher struct {
	mu     sync.Mutex
	events []events.BaseEvent
}

func (p *fakePublisher) Publish(ctx context.Context, event events.BaseEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *fakePublisher) eventTypes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.events))
	for i, e := range p.events {
		types[i] = e.Type
	}
	return types
}

// nopLogger discards everything.

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// stubAssistant returns a fixed reply and counts calls.

type stubAssistant struct {
	mu    sync.Mutex
	reply assistant.Reply
	calls int
}

func (s *stubAssistant) Generate(ctx context.Context, message string, patient assistant.PatientContext) assistant.Reply {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.reply
}
