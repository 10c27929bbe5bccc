package repository

import (
	"context"

	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/model"

	"gorm.io/gorm"
)

// AuditFilter narrows the audit trail query. Zero values mean "no filter".
type AuditFilter struct {
	EmployeeID uint
	Action     string
	Limit      int
}

type AuditRepository interface {
	Create(ctx context.Context, evt *model.AuditEvent) error
	List(ctx context.Context, filter AuditFilter) ([]model.AuditEvent, error)
}

type auditRepo struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) AuditRepository { return &auditRepo{db: db} }

func (r *auditRepo) Create(ctx context.Context, evt *model.AuditEvent) error {
	return r.db.WithContext(ctx).Create(evt).Error
}

func (r *auditRepo) List(ctx context.Context, filter AuditFilter) ([]model.AuditEvent, error) {
	q := r.db.WithContext(ctx).Model(&model.AuditEvent{})
	if filter.EmployeeID != 0 {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var events []model.AuditEvent
	err := q.Order("created_at DESC").Limit(limit).Find(&events).Error
	return events, err
}
