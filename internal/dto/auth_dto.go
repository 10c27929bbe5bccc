package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterRequest struct {
	Name               string     `json:"name"        validate:"required,max=100"`
	Designation        *string    `json:"designation" validate:"omitempty,max=100"`
	Address            *string    `json:"address"     validate:"omitempty,max=255"`
	Department         *string    `json:"department"  validate:"omitempty,max=100"`
	JoiningDate        *time.Time `json:"joiningDate"`
	Skillset           *string    `json:"skillset"    validate:"omitempty,max=500"`
	Base64ProfileImage string     `json:"base64ProfileImage"`
	Username           string     `json:"username"    validate:"required,min=3,max=50"`
	Password           string     `json:"password"    validate:"required,min=8"`
	CreatedBy          *string    `json:"createdBy"   validate:"omitempty,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LoginResponse struct {
	Token      string `json:"token"`
	EmployeeID uint   `json:"employeeId"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	Status     string `json:"status"`
}

type RegisterResponse struct {
	EmployeeID uint   `json:"employeeId"`
	Message    string `json:"message"`
}
