package repository

import (
	"context"
	"time"

	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/model"

	"gorm.io/gorm"
)

// ProfileFields is the fixed editable column set for profile updates.
// Role, username, status, and the password hash are deliberately absent —
// no update operation can reach them through this struct.
type ProfileFields struct {
	Name        string
	Designation *string
	Address     *string
	Department  *string
	JoiningDate *time.Time
	Skillset    *string
}

type EmployeeRepository interface {
	Create(ctx context.Context, e *model.Employee) error
	FindByID(ctx context.Context, id uint) (*model.Employee, error)
	FindByUsername(ctx context.Context, username string) (*model.Employee, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	ListSummaries(ctx context.Context) ([]model.EmployeeSummary, error)
	UpdateProfile(ctx context.Context, id uint, fields ProfileFields, modifiedBy string) error
	UpdateStatus(ctx context.Context, id uint, status, modifiedBy string) error
	UpdateImage(ctx context.Context, id uint, image []byte, modifiedBy string) error
	GetImage(ctx context.Context, id uint) ([]byte, error)
}

type employeeRepo struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository { return &employeeRepo{db: db} }

func (r *employeeRepo) Create(ctx context.Context, e *model.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *employeeRepo) FindByID(ctx context.Context, id uint) (*model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepo) FindByUsername(ctx context.Context, username string) (*model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?)", username).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("LOWER(username) = LOWER(?)", username).
		Count(&count).Error
	return count > 0, err
}

// ListSummaries selects only the grid columns — never the password hash or
// the image blob.
func (r *employeeRepo) ListSummaries(ctx context.Context) ([]model.EmployeeSummary, error) {
	var summaries []model.EmployeeSummary
	err := r.db.WithContext(ctx).Model(&model.Employee{}).
		Select("id", "name", "designation", "address", "department", "joining_date", "skillset", "username", "status").
		Order("id").
		Scan(&summaries).Error
	return summaries, err
}

func (r *employeeRepo) UpdateProfile(ctx context.Context, id uint, fields ProfileFields, modifiedBy string) error {
	// Map form so that nil optional fields clear their columns, matching the
	// full-replace semantics of the profile edit.
	updates := map[string]interface{}{
		"name":         fields.Name,
		"designation":  fields.Designation,
		"address":      fields.Address,
		"department":   fields.Department,
		"joining_date": fields.JoiningDate,
		"skillset":     fields.Skillset,
		"modified_by":  modifiedBy,
		"modified_at":  time.Now(),
	}
	return r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *employeeRepo) UpdateStatus(ctx context.Context, id uint, status, modifiedBy string) error {
	return r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"modified_by": modifiedBy,
			"modified_at": time.Now(),
		}).Error
}

func (r *employeeRepo) UpdateImage(ctx context.Context, id uint, image []byte, modifiedBy string) error {
	return r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"profile_image": image,
			"modified_by":   modifiedBy,
			"modified_at":   time.Now(),
		}).Error
}

func (r *employeeRepo) GetImage(ctx context.Context, id uint) ([]byte, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).
		Select("id", "profile_image").
		First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return e.ProfileImage, nil
}
