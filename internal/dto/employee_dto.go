package dto

import (
	"time"

	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type UpdateEmployeeRequest struct {
	Name        string     `json:"name"        validate:"required,max=100"`
	Designation *string    `json:"designation" validate:"omitempty,max=100"`
	Address     *string    `json:"address"     validate:"omitempty,max=255"`
	Department  *string    `json:"department"  validate:"omitempty,max=100"`
	JoiningDate *time.Time `json:"joiningDate"`
	Skillset    *string    `json:"skillset"    validate:"omitempty,max=500"`
	ModifiedBy  string     `json:"modifiedBy"  validate:"required,max=100"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Active Inactive"`
}

type UpdateImageRequest struct {
	// Empty Base64Image clears the stored image.
	Base64Image string `json:"base64Image"`
	ModifiedBy  string `json:"modifiedBy" validate:"omitempty,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// EmployeeResponse is the detail view — never carries the password hash; the
// image travels through its dedicated endpoint only.
type EmployeeResponse struct {
	EmployeeID  uint       `json:"employeeId"`
	Name        string     `json:"name"`
	Designation *string    `json:"designation"`
	Address     *string    `json:"address"`
	Department  *string    `json:"department"`
	JoiningDate *time.Time `json:"joiningDate"`
	Skillset    *string    `json:"skillset"`
	Username    string     `json:"username"`
	Status      string     `json:"status"`
	Role        string     `json:"role"`
	CreatedBy   *string    `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	ModifiedBy  *string    `json:"modifiedBy"`
	ModifiedAt  *time.Time `json:"modifiedAt"`
}

func NewEmployeeResponse(e *model.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		EmployeeID:  e.ID,
		Name:        e.Name,
		Designation: e.Designation,
		Address:     e.Address,
		Department:  e.Department,
		JoiningDate: e.JoiningDate,
		Skillset:    e.Skillset,
		Username:    e.Username,
		Status:      e.Status,
		Role:        e.Role,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		ModifiedBy:  e.ModifiedBy,
		ModifiedAt:  e.ModifiedAt,
	}
}

type EmployeeSummaryResponse struct {
	EmployeeID  uint       `json:"employeeId"`
	Name        string     `json:"name"`
	Designation *string    `json:"designation"`
	Address     *string    `json:"address"`
	Department  *string    `json:"department"`
	JoiningDate *time.Time `json:"joiningDate"`
	Skillset    *string    `json:"skillset"`
	Username    string     `json:"username"`
	Status      string     `json:"status"`
}

func NewEmployeeSummaryResponse(s model.EmployeeSummary) EmployeeSummaryResponse {
	return EmployeeSummaryResponse{
		EmployeeID:  s.ID,
		Name:        s.Name,
		Designation: s.Designation,
		Address:     s.Address,
		Department:  s.Department,
		JoiningDate: s.JoiningDate,
		Skillset:    s.Skillset,
		Username:    s.Username,
		Status:      s.Status,
	}
}

type ImageResponse struct {
	Image string `json:"image"` // base64
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AuditEventResponse struct {
	ID          string    `json:"id"`
	EmployeeID  uint      `json:"employeeId"`
	Action      string    `json:"action"`
	PerformedBy string    `json:"performedBy"`
	Detail      string    `json:"detail"`
	CreatedAt   time.Time `json:"createdAt"`
}
