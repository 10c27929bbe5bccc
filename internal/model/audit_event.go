package model

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions recorded by the async audit worker.
const (
	AuditActionRegister      = "register"
	AuditActionProfileUpdate = "profile_update"
	AuditActionStatusUpdate  = "status_update"
	AuditActionImageUpdate   = "image_update"
)

// AuditEvent is one row of the append-only audit trail.
// Events are enqueued by the services and persisted asynchronously by the
// audit worker — a failed write never fails the originating request.
type AuditEvent struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID  uint      `gorm:"index;not null"`
	Action      string    `gorm:"size:50;not null"`
	PerformedBy string    `gorm:"size:100;not null"`
	Detail      string    `gorm:"size:255"`
	CreatedAt   time.Time
}
