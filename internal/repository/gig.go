package repository

import (
	"worklink-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GigRepository handles database operations for gigs
type GigRepository struct {
	db *gorm.DB
}

// NewGigRepository creates a new gig repository
func NewGigRepository(db *gorm.DB) *GigRepository {
	return &GigRepository{db: db}
}

// Create creates a new gig
func (r *GigRepository) Create(gig *models.Gig) error {
	return r.db.Create(gig).Error
}

// GetByID retrieves a gig by ID
func (r *GigRepository) GetByID(id uuid.UUID) (*models.Gig, error) {
	var gig models.Gig
	err := r.db.First(&gig, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &gig, nil
}

// GetOpen retrieves gigs open for applications with pagination
func (r *GigRepository) GetOpen(limit, offset int) ([]models.Gig, int64, error) {
	var gigs []models.Gig
	var total int64

	query := r.db.Model(&models.Gig{}).Where("is_open = ?", true)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&gigs).Error
	if err != nil {
		return nil, 0, err
	}

	return gigs, total, nil
}

// GetByStartupID retrieves all gigs for a startup with pagination
func (r *GigRepository) GetByStartupID(startupID uuid.UUID, limit, offset int) ([]models.Gig, int64, error) {
	var gigs []models.Gig
	var total int64

	query := r.db.Model(&models.Gig{}).Where("startup_id = ?", startupID)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&gigs).Error
	if err != nil {
		return nil, 0, err
	}

	return gigs, total, nil
}

// GetIDsByStartupID retrieves the IDs of all gigs owned by a startup
func (r *GigRepository) GetIDsByStartupID(startupID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Gig{}).Where("startup_id = ?", startupID).Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Update updates a gig
func (r *GigRepository) Update(gig *models.Gig) error {
	return r.db.Save(gig).Error
}

// DeleteWithApplications deletes a gig and every application referencing it
// in one transaction. Applications go first so a failed transaction can never
// leave an application pointing at a missing gig.
func (r *GigRepository) DeleteWithApplications(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.GigApplication{}, "gig_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Gig{}, "id = ?", id).Error
	})
}
