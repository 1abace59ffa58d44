package repository

import (
	"worklink-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkerRepository handles database operations for workers
type WorkerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository creates a new worker repository
func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

// Create creates a new worker
func (r *WorkerRepository) Create(worker *models.Worker) error {
	return r.db.Create(worker).Error
}

// GetByID retrieves a worker by ID
func (r *WorkerRepository) GetByID(id uuid.UUID) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.First(&worker, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

// GetByEmail retrieves a worker by email
func (r *WorkerRepository) GetByEmail(email string) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.First(&worker, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

// GetByIDs retrieves all workers matching the given IDs
func (r *WorkerRepository) GetByIDs(ids []uuid.UUID) ([]models.Worker, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var workers []models.Worker
	err := r.db.Where("id IN ?", ids).Find(&workers).Error
	if err != nil {
		return nil, err
	}
	return workers, nil
}

// Update updates a worker
func (r *WorkerRepository) Update(worker *models.Worker) error {
	return r.db.Save(worker).Error
}

// Delete deletes a worker
func (r *WorkerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Worker{}, "id = ?", id).Error
}
