package repository

import (
	"worklink-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ManufacturerRepository handles database operations for manufacturers
type ManufacturerRepository struct {
	db *gorm.DB
}

// NewManufacturerRepository creates a new manufacturer repository
func NewManufacturerRepository(db *gorm.DB) *ManufacturerRepository {
	return &ManufacturerRepository{db: db}
}

// Create creates a new manufacturer
func (r *ManufacturerRepository) Create(manufacturer *models.Manufacturer) error {
	return r.db.Create(manufacturer).Error
}

// GetByID retrieves a manufacturer by ID
func (r *ManufacturerRepository) GetByID(id uuid.UUID) (*models.Manufacturer, error) {
	var manufacturer models.Manufacturer
	err := r.db.First(&manufacturer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &manufacturer, nil
}

// GetByEmail retrieves a manufacturer by email
func (r *ManufacturerRepository) GetByEmail(email string) (*models.Manufacturer, error) {
	var manufacturer models.Manufacturer
	err := r.db.First(&manufacturer, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &manufacturer, nil
}

// Update updates a manufacturer
func (r *ManufacturerRepository) Update(manufacturer *models.Manufacturer) error {
	return r.db.Save(manufacturer).Error
}

// Delete deletes a manufacturer
func (r *ManufacturerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Manufacturer{}, "id = ?", id).Error
}
