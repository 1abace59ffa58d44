package models

import (
	"time"

	"github.com/google/uuid"
)

// GigApplication records one worker's application to one gig.
// The composite unique index on (gig_id, worker_id) is the storage-level
// guard against duplicate applications: concurrent submits race on the
// index, not on an application-level existence check.
type GigApplication struct {
	BaseModel
	GigID     uuid.UUID         `json:"gig_id" gorm:"type:uuid;not null;uniqueIndex:idx_gig_applications_gig_worker" validate:"required"`
	WorkerID  uuid.UUID         `json:"worker_id" gorm:"type:uuid;not null;uniqueIndex:idx_gig_applications_gig_worker;index" validate:"required"`
	Status    ApplicationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	Message   string            `json:"message" gorm:"size:1000" validate:"max=1000"`
	AppliedAt time.Time         `json:"applied_at" gorm:"not null;index"`

	// Relationships
	Gig    Gig    `json:"gig,omitempty" gorm:"foreignKey:GigID;constraint:OnDelete:CASCADE"`
	Worker Worker `json:"worker,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GigApplication
func (GigApplication) TableName() string {
	return "gig_applications"
}
