package models

// Manufacturer represents a manufacturer account that shares machines
type Manufacturer struct {
	BaseModel
	CompanyName  string `json:"company_name" gorm:"not null;size:200" validate:"required,max=200"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"not null;size:100"`
	Location     string `json:"location" gorm:"size:200"`

	// Relationships
	Machines []Machine `json:"machines,omitempty" gorm:"foreignKey:ManufacturerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Manufacturer
func (Manufacturer) TableName() string {
	return "manufacturers"
}
