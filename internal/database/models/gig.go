package models

import "github.com/google/uuid"

// Gig represents a unit of gig work published by a startup
type Gig struct {
	BaseModel
	StartupID    uuid.UUID `json:"startup_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title        string    `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description  string    `json:"description" gorm:"size:2000" validate:"max=2000"`
	Location     string    `json:"location" gorm:"size:200"`
	Compensation string    `json:"compensation" gorm:"size:100"`
	IsOpen       bool      `json:"is_open" gorm:"default:true"`

	// Relationships
	Startup      Startup          `json:"startup,omitempty" gorm:"foreignKey:StartupID;constraint:OnDelete:CASCADE"`
	Applications []GigApplication `json:"applications,omitempty" gorm:"foreignKey:GigID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Gig
func (Gig) TableName() string {
	return "gigs"
}
