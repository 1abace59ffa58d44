package repository

import (
	"worklink-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GigApplicationRepository handles database operations for the gig application ledger
type GigApplicationRepository struct {
	db *gorm.DB
}

// NewGigApplicationRepository creates a new gig application repository
func NewGigApplicationRepository(db *gorm.DB) *GigApplicationRepository {
	return &GigApplicationRepository{db: db}
}

// Create inserts a new application. The composite unique index on
// (gig_id, worker_id) rejects duplicates; with TranslateError enabled the
// second concurrent writer sees gorm.ErrDuplicatedKey.
func (r *GigApplicationRepository) Create(app *models.GigApplication) error {
	return r.db.Create(app).Error
}

// GetByID retrieves an application by ID with its gig
func (r *GigApplicationRepository) GetByID(id uuid.UUID) (*models.GigApplication, error) {
	var app models.GigApplication
	err := r.db.Preload("Gig").First(&app, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetByWorkerID retrieves a worker's applications, most recent first, with
// the gig summary preloaded. A negative limit disables pagination.
func (r *GigApplicationRepository) GetByWorkerID(workerID uuid.UUID, limit, offset int) ([]models.GigApplication, int64, error) {
	var apps []models.GigApplication
	var total int64

	query := r.db.Model(&models.GigApplication{}).Where("worker_id = ?", workerID)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Preload("Gig").
		Where("worker_id = ?", workerID).
		Order("applied_at DESC").
		Limit(limit).Offset(offset).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

// GetByGigIDs retrieves applications against any of the given gigs, with the
// applicant and gig preloaded. orderBy must already be a safe clause, the
// service whitelists the caller-supplied sort field.
func (r *GigApplicationRepository) GetByGigIDs(gigIDs []uuid.UUID, status *models.ApplicationStatus, orderBy string, limit, offset int) ([]models.GigApplication, int64, error) {
	if len(gigIDs) == 0 {
		return nil, 0, nil
	}

	var apps []models.GigApplication
	var total int64

	countQuery := r.db.Model(&models.GigApplication{}).Where("gig_id IN ?", gigIDs)
	listQuery := r.db.Preload("Gig").Preload("Worker").Where("gig_id IN ?", gigIDs)
	if status != nil {
		countQuery = countQuery.Where("status = ?", *status)
		listQuery = listQuery.Where("status = ?", *status)
	}

	// Get total count
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	if orderBy == "" {
		orderBy = "applied_at DESC"
	}
	err := listQuery.Order(orderBy).Limit(limit).Offset(offset).Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

// UpdateStatusIfPending transitions an application out of pending as a
// conditional update. Two concurrent deciders both reach the database; the
// WHERE clause lets exactly one of them win and reports the loser through a
// zero rows-affected count.
func (r *GigApplicationRepository) UpdateStatusIfPending(id uuid.UUID, status models.ApplicationStatus) (int64, error) {
	result := r.db.Model(&models.GigApplication{}).
		Where("id = ? AND status = ?", id, models.ApplicationStatusPending).
		Update("status", status)
	return result.RowsAffected, result.Error
}
