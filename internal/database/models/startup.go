package models

// Startup represents a startup account that publishes gigs and rents machines
type Startup struct {
	BaseModel
	CompanyName  string `json:"company_name" gorm:"not null;size:200" validate:"required,max=200"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"not null;size:100"`
	Location     string `json:"location" gorm:"size:200"`
	Industry     string `json:"industry" gorm:"size:100"`

	// Relationships
	Gigs []Gig `json:"gigs,omitempty" gorm:"foreignKey:StartupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Startup
func (Startup) TableName() string {
	return "startups"
}
