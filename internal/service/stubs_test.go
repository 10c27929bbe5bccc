package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/model"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/repository"

	"gorm.io/gorm"
)

// ── In-memory EmployeeRepository stub ────────────────────────────────────────

type stubEmployeeRepo struct {
	mu        sync.Mutex
	employees map[uint]*model.Employee
	nextID    uint
}

func newStubRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[uint]*model.Employee), nextID: 1}
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *model.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.employees {
		if strings.EqualFold(existing.Username, e.Username) {
			return gorm.ErrDuplicatedKey
		}
	}
	e.ID = r.nextID
	r.nextID++
	e.CreatedAt = time.Now()
	clone := *e
	r.employees[e.ID] = &clone
	return nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id uint) (*model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEmployeeRepo) FindByUsername(_ context.Context, username string) (*model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.employees {
		if strings.EqualFold(e.Username, username) {
			clone := *e
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubEmployeeRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.employees {
		if strings.EqualFold(e.Username, username) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubEmployeeRepo) ListSummaries(_ context.Context) ([]model.EmployeeSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	summaries := make([]model.EmployeeSummary, 0, len(r.employees))
	for _, e := range r.employees {
		summaries = append(summaries, model.EmployeeSummary{
			ID: e.ID, Name: e.Name, Designation: e.Designation, Address: e.Address,
			Department: e.Department, JoiningDate: e.JoiningDate, Skillset: e.Skillset,
			Username: e.Username, Status: e.Status,
		})
	}
	return summaries, nil
}

func (r *stubEmployeeRepo) UpdateProfile(_ context.Context, id uint, fields repository.ProfileFields, modifiedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	e.Name = fields.Name
	e.Designation = fields.Designation
	e.Address = fields.Address
	e.Department = fields.Department
	e.JoiningDate = fields.JoiningDate
	e.Skillset = fields.Skillset
	e.ModifiedBy = &modifiedBy
	e.ModifiedAt = &now
	return nil
}

func (r *stubEmployeeRepo) UpdateStatus(_ context.Context, id uint, status, modifiedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	e.Status = status
	e.ModifiedBy = &modifiedBy
	e.ModifiedAt = &now
	return nil
}

func (r *stubEmployeeRepo) UpdateImage(_ context.Context, id uint, image []byte, modifiedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	e.ProfileImage = image
	e.ModifiedBy = &modifiedBy
	e.ModifiedAt = &now
	return nil
}

func (r *stubEmployeeRepo) GetImage(_ context.Context, id uint) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e.ProfileImage, nil
}

// ── Recording audit sink ─────────────────────────────────────────────────────

type recordingAuditSink struct {
	mu     sync.Mutex
	events []model.AuditEvent
}

func (s *recordingAuditSink) EnqueueAudit(_ context.Context, evt model.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
	return nil
}

func (s *recordingAuditSink) byAction(action string) []model.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.AuditEvent
	for _, evt := range s.events {
		if evt.Action == action {
			out = append(out, evt)
		}
	}
	return out
}
