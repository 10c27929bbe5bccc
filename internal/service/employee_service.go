package service

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/dto"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/model"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/policy"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type EmployeeService interface {
	Get(ctx context.Context, actor policy.Actor, id uint) (*dto.EmployeeResponse, error)
	ListSummaries(ctx context.Context, actor policy.Actor) ([]dto.EmployeeSummaryResponse, error)
	UpdateProfile(ctx context.Context, actor policy.Actor, id uint, req dto.UpdateEmployeeRequest) error
	AdminUpdateProfile(ctx context.Context, actor policy.Actor, id uint, req dto.UpdateEmployeeRequest) error
	UpdateStatus(ctx context.Context, actor policy.Actor, id uint, status string) error
	UpdateImage(ctx context.Context, actor policy.Actor, id uint, req dto.UpdateImageRequest) error
	GetImage(ctx context.Context, actor policy.Actor, id uint) (*dto.ImageResponse, error)
}

type employeeService struct {
	repo  repository.EmployeeRepository
	audit AuditSink
	cache *SummaryCache
}

func NewEmployeeService(repo repository.EmployeeRepository, audit AuditSink, cache *SummaryCache) EmployeeService {
	return &employeeService{repo: repo, audit: audit, cache: cache}
}

// Get returns the detail view. The policy runs before the store is touched,
// so an unauthorized read is answered identically to a missing record.
func (s *employeeService) Get(ctx context.Context, actor policy.Actor, id uint) (*dto.EmployeeResponse, error) {
	if err := policy.CanRead(actor, id); err != nil {
		return nil, err
	}
	employee, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewEmployeeResponse(employee), nil
}

func (s *employeeService) ListSummaries(ctx context.Context, actor policy.Actor) ([]dto.EmployeeSummaryResponse, error) {
	if err := policy.CanList(actor); err != nil {
		return nil, err
	}

	if cached, ok := s.cache.Get(ctx); ok {
		return cached, nil
	}

	summaries, err := s.repo.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EmployeeSummaryResponse, len(summaries))
	for i, summary := range summaries {
		resp[i] = dto.NewEmployeeSummaryResponse(summary)
	}

	s.cache.Set(ctx, resp)
	return resp, nil
}

func (s *employeeService) UpdateProfile(ctx context.Context, actor policy.Actor, id uint, req dto.UpdateEmployeeRequest) error {
	if err := policy.RequireSelf(actor, id); err != nil {
		return err
	}
	target, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.CanUpdateProfile(actor, target, req.ModifiedBy); err != nil {
		return err
	}

	if err := s.repo.UpdateProfile(ctx, id, profileFields(req), req.ModifiedBy); err != nil {
		return err
	}

	s.cache.Invalidate(ctx)
	s.recordAudit(ctx, model.AuditEvent{
		EmployeeID:  id,
		Action:      model.AuditActionProfileUpdate,
		PerformedBy: req.ModifiedBy,
		Detail:      "self-service profile edit",
	})
	return nil
}

func (s *employeeService) AdminUpdateProfile(ctx context.Context, actor policy.Actor, id uint, req dto.UpdateEmployeeRequest) error {
	target, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.CanAdminUpdateProfile(actor, target); err != nil {
		return err
	}

	if err := s.repo.UpdateProfile(ctx, id, profileFields(req), req.ModifiedBy); err != nil {
		return err
	}

	s.cache.Invalidate(ctx)
	s.recordAudit(ctx, model.AuditEvent{
		EmployeeID:  id,
		Action:      model.AuditActionProfileUpdate,
		PerformedBy: actor.Username,
		Detail:      "admin profile edit",
	})
	return nil
}

// UpdateStatus flips an employee between Active and Inactive. The status
// value itself is validated at the DTO layer, before this is ever called.
// The audit stamp comes from the admin's verified token, not the request body.
func (s *employeeService) UpdateStatus(ctx context.Context, actor policy.Actor, id uint, status string) error {
	target, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.CanUpdateStatus(actor, target); err != nil {
		return err
	}

	if err := s.repo.UpdateStatus(ctx, id, status, actor.Username); err != nil {
		return err
	}

	s.cache.Invalidate(ctx)
	s.recordAudit(ctx, model.AuditEvent{
		EmployeeID:  id,
		Action:      model.AuditActionStatusUpdate,
		PerformedBy: actor.Username,
		Detail:      target.Status + " -> " + status,
	})
	return nil
}

func (s *employeeService) UpdateImage(ctx context.Context, actor policy.Actor, id uint, req dto.UpdateImageRequest) error {
	if err := policy.CanUpdateImage(actor, id); err != nil {
		return err
	}

	image, err := decodeImage(req.Base64Image)
	if err != nil {
		return err
	}

	if _, err := s.findByID(ctx, id); err != nil {
		return err
	}

	modifiedBy := req.ModifiedBy
	if modifiedBy == "" {
		modifiedBy = "System"
	}
	if err := s.repo.UpdateImage(ctx, id, image, modifiedBy); err != nil {
		return err
	}

	s.recordAudit(ctx, model.AuditEvent{
		EmployeeID:  id,
		Action:      model.AuditActionImageUpdate,
		PerformedBy: modifiedBy,
		Detail:      "profile image updated",
	})
	return nil
}

func (s *employeeService) GetImage(ctx context.Context, actor policy.Actor, id uint) (*dto.ImageResponse, error) {
	if err := policy.CanReadImage(actor, id); err != nil {
		return nil, err
	}
	image, err := s.repo.GetImage(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoImage
		}
		return nil, err
	}
	if len(image) == 0 {
		return nil, ErrNoImage
	}
	return &dto.ImageResponse{Image: base64.StdEncoding.EncodeToString(image)}, nil
}

func (s *employeeService) findByID(ctx context.Context, id uint) (*model.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, policy.ErrNotFound
		}
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) recordAudit(ctx context.Context, evt model.AuditEvent) {
	if s.audit == nil {
		return
	}
	if err := s.audit.EnqueueAudit(ctx, evt); err != nil {
		log.Warn().Err(err).Str("action", evt.Action).Msg("failed to enqueue audit event")
	}
}

func profileFields(req dto.UpdateEmployeeRequest) repository.ProfileFields {
	return repository.ProfileFields{
		Name:        req.Name,
		Designation: req.Designation,
		Address:     req.Address,
		Department:  req.Department,
		JoiningDate: req.JoiningDate,
		Skillset:    req.Skillset,
	}
}
