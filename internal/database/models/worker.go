package models

// Worker represents a blue-collar worker account
type Worker struct {
	BaseModel
	FullName     string `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"not null;size:100"`
	PhoneNumber  string `json:"phone_number" gorm:"size:20"`
	Location     string `json:"location" gorm:"size:200"`
	Skills       string `json:"skills" gorm:"size:500"`

	// Relationships
	GigApplications []GigApplication `json:"gig_applications,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Worker
func (Worker) TableName() string {
	return "workers"
}
