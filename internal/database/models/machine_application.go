package models

import (
	"time"

	"github.com/google/uuid"
)

// MachineApplication records one applicant's application to one machine.
// A machine accepts applications from workers and startups, so identity is
// the (machine_id, applicant_id, applicant_type) triple: the same UUID could
// in principle exist in both principal tables. The applicant relation is
// resolved by ApplicantType at query time, there is no single FK column.
type MachineApplication struct {
	BaseModel
	MachineID     uuid.UUID         `json:"machine_id" gorm:"type:uuid;not null;uniqueIndex:idx_machine_applications_machine_applicant" validate:"required"`
	ApplicantID   uuid.UUID         `json:"applicant_id" gorm:"type:uuid;not null;uniqueIndex:idx_machine_applications_machine_applicant;index" validate:"required"`
	ApplicantType ApplicantType     `json:"applicant_type" gorm:"type:varchar(20);not null;uniqueIndex:idx_machine_applications_machine_applicant" validate:"required"`
	Status        ApplicationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	Message       string            `json:"message" gorm:"size:1000" validate:"max=1000"`
	AppliedAt     time.Time         `json:"applied_at" gorm:"not null;index"`

	// Relationships
	Machine Machine `json:"machine,omitempty" gorm:"foreignKey:MachineID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MachineApplication
func (MachineApplication) TableName() string {
	return "machine_applications"
}
