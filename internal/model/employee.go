package model

import (
	"time"
)

// Role and status values stored on employee records.
// Admin accounts can only be created via seeding — registration always
// produces RoleEmployee.
const (
	RoleEmployee = "Employee"
	RoleAdmin    = "Admin"

	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// MaxImageBytes caps the decoded profile image size at 2 MiB.
const MaxImageBytes = 2 * 1024 * 1024

// Employee is the sole entity of the directory.
// Username is stored lowercase; uniqueness is additionally enforced by a
// unique index on LOWER(username) (see infra.applySchemaPatches).
type Employee struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"size:100;not null"`
	Designation  *string `gorm:"size:100"`
	Address      *string `gorm:"size:255"`
	Department   *string `gorm:"size:100"`
	JoiningDate  *time.Time
	Skillset     *string `gorm:"size:500"`
	ProfileImage []byte  `gorm:"type:bytea"`
	Username     string  `gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string  `gorm:"not null"`
	Status       string  `gorm:"size:20;not null;default:Active"`
	Role         string  `gorm:"size:20;not null;default:Employee"`
	CreatedBy    *string `gorm:"size:100"`
	ModifiedBy   *string `gorm:"size:100"`
	CreatedAt    time.Time
	ModifiedAt   *time.Time
}

// EmployeeSummary is the reduced projection used for the admin grid.
// It deliberately excludes the password hash and the image blob so that
// listing never drags binary payloads out of the store.
type EmployeeSummary struct {
	ID          uint
	Name        string
	Designation *string
	Address     *string
	Department  *string
	JoiningDate *time.Time
	Skillset    *string
	Username    string
	Status      string
}
