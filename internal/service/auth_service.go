package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/dto"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/model"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/repository"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/security"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AuditSink receives audit events for asynchronous persistence.
// *worker.Dispatcher implements it; tests substitute a recorder. A nil sink
// disables auditing.
type AuditSink interface {
	EnqueueAudit(ctx context.Context, evt model.AuditEvent) error
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)
}

type authService struct {
	repo   repository.EmployeeRepository
	issuer *security.TokenIssuer
	audit  AuditSink
	cache  *SummaryCache
}

func NewAuthService(repo repository.EmployeeRepository, issuer *security.TokenIssuer, audit AuditSink, cache *SummaryCache) AuthService {
	return &authService{repo: repo, issuer: issuer, audit: audit, cache: cache}
}

// Login authenticates by username (case-insensitive) and password.
// Unknown usernames and wrong passwords produce the same error so that the
// response does not reveal which half was wrong.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	employee, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !security.CheckPassword(employee.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	if employee.Status == model.StatusInactive {
		return nil, ErrAccountInactive
	}

	token, err := s.issuer.Issue(employee.ID, employee.Username, employee.Role)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:      token,
		EmployeeID: employee.ID,
		Name:       employee.Name,
		Username:   employee.Username,
		Role:       employee.Role,
		Status:     employee.Status,
	}, nil
}

// Register creates a new Employee-role account with Active status.
// Usernames are stored lowercase; uniqueness is checked up front and backed
// by the unique index on LOWER(username), which closes the check-then-insert
// race under concurrent duplicate registration.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	exists, err := s.repo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateUsername
	}

	image, err := decodeImage(req.Base64ProfileImage)
	if err != nil {
		return nil, err
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	createdBy := "Self"
	if req.CreatedBy != nil && *req.CreatedBy != "" {
		createdBy = *req.CreatedBy
	}

	employee := &model.Employee{
		Name:         req.Name,
		Designation:  req.Designation,
		Address:      req.Address,
		Department:   req.Department,
		JoiningDate:  req.JoiningDate,
		Skillset:     req.Skillset,
		ProfileImage: image,
		Username:     strings.ToLower(req.Username),
		PasswordHash: hash,
		Status:       model.StatusActive,
		Role:         model.RoleEmployee,
		CreatedBy:    &createdBy,
	}

	if err := s.repo.Create(ctx, employee); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	s.cache.Invalidate(ctx)
	s.recordAudit(ctx, model.AuditEvent{
		EmployeeID:  employee.ID,
		Action:      model.AuditActionRegister,
		PerformedBy: createdBy,
		Detail:      "account created",
	})

	return &dto.RegisterResponse{EmployeeID: employee.ID, Message: "Registration successful"}, nil
}

func (s *authService) recordAudit(ctx context.Context, evt model.AuditEvent) {
	if s.audit == nil {
		return
	}
	if err := s.audit.EnqueueAudit(ctx, evt); err != nil {
		log.Warn().Err(err).Str("action", evt.Action).Msg("failed to enqueue audit event")
	}
}

// decodeImage validates and decodes a base64 profile image. An empty string
// means "no image" (nil bytes).
func decodeImage(b64 string) ([]byte, error) {
	if strings.TrimSpace(b64) == "" {
		return nil, nil
	}
	image, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, ErrInvalidImage
	}
	if len(image) > model.MaxImageBytes {
		return nil, ErrImageTooLarge
	}
	return image, nil
}
