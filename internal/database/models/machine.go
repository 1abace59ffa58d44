package models

import "github.com/google/uuid"

// Machine represents a machine shared by a manufacturer
type Machine struct {
	BaseModel
	ManufacturerID uuid.UUID `json:"manufacturer_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Description    string    `json:"description" gorm:"size:2000" validate:"max=2000"`
	Location       string    `json:"location" gorm:"size:200"`
	DailyRate      float64   `json:"daily_rate" gorm:"not null;default:0" validate:"gte=0"`
	Available      bool      `json:"available" gorm:"default:true"`

	// Relationships
	Manufacturer Manufacturer         `json:"manufacturer,omitempty" gorm:"foreignKey:ManufacturerID;constraint:OnDelete:CASCADE"`
	Applications []MachineApplication `json:"applications,omitempty" gorm:"foreignKey:MachineID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Machine
func (Machine) TableName() string {
	return "machines"
}
