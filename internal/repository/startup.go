package repository

import (
	"worklink-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StartupRepository handles database operations for startups
type StartupRepository struct {
	db *gorm.DB
}

// NewStartupRepository creates a new startup repository
func NewStartupRepository(db *gorm.DB) *StartupRepository {
	return &StartupRepository{db: db}
}

// Create creates a new startup
func (r *StartupRepository) Create(startup *models.Startup) error {
	return r.db.Create(startup).Error
}

// GetByID retrieves a startup by ID
func (r *StartupRepository) GetByID(id uuid.UUID) (*models.Startup, error) {
	var startup models.Startup
	err := r.db.First(&startup, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &startup, nil
}

// GetByEmail retrieves a startup by email
func (r *StartupRepository) GetByEmail(email string) (*models.Startup, error) {
	var startup models.Startup
	err := r.db.First(&startup, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &startup, nil
}

// GetByIDs retrieves all startups matching the given IDs
func (r *StartupRepository) GetByIDs(ids []uuid.UUID) ([]models.Startup, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var startups []models.Startup
	err := r.db.Where("id IN ?", ids).Find(&startups).Error
	if err != nil {
		return nil, err
	}
	return startups, nil
}

// Update updates a startup
func (r *StartupRepository) Update(startup *models.Startup) error {
	return r.db.Save(startup).Error
}

// Delete deletes a startup
func (r *StartupRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Startup{}, "id = ?", id).Error
}
