package repository

import (
	"worklink-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MachineApplicationRepository handles database operations for the machine application ledger
type MachineApplicationRepository struct {
	db *gorm.DB
}

// NewMachineApplicationRepository creates a new machine application repository
func NewMachineApplicationRepository(db *gorm.DB) *MachineApplicationRepository {
	return &MachineApplicationRepository{db: db}
}

// Create inserts a new application. The composite unique index on
// (machine_id, applicant_id, applicant_type) rejects duplicates at the
// storage layer.
func (r *MachineApplicationRepository) Create(app *models.MachineApplication) error {
	return r.db.Create(app).Error
}

// GetByID retrieves an application by ID with its machine
func (r *MachineApplicationRepository) GetByID(id uuid.UUID) (*models.MachineApplication, error) {
	var app models.MachineApplication
	err := r.db.Preload("Machine").First(&app, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetByApplicant retrieves one applicant's applications, most recent first,
// with the machine summary preloaded. A negative limit disables pagination.
func (r *MachineApplicationRepository) GetByApplicant(applicantID uuid.UUID, applicantType models.ApplicantType, limit, offset int) ([]models.MachineApplication, int64, error) {
	var apps []models.MachineApplication
	var total int64

	query := r.db.Model(&models.MachineApplication{}).
		Where("applicant_id = ? AND applicant_type = ?", applicantID, applicantType)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Preload("Machine").
		Where("applicant_id = ? AND applicant_type = ?", applicantID, applicantType).
		Order("applied_at DESC").
		Limit(limit).Offset(offset).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

// GetByMachineIDs retrieves applications against any of the given machines.
// The applicant record is polymorphic, callers resolve it through a secondary
// lookup keyed by applicant type. orderBy must already be a safe clause.
func (r *MachineApplicationRepository) GetByMachineIDs(machineIDs []uuid.UUID, status *models.ApplicationStatus, applicantType *models.ApplicantType, orderBy string, limit, offset int) ([]models.MachineApplication, int64, error) {
	if len(machineIDs) == 0 {
		return nil, 0, nil
	}

	var apps []models.MachineApplication
	var total int64

	countQuery := r.db.Model(&models.MachineApplication{}).Where("machine_id IN ?", machineIDs)
	listQuery := r.db.Preload("Machine").Where("machine_id IN ?", machineIDs)
	if status != nil {
		countQuery = countQuery.Where("status = ?", *status)
		listQuery = listQuery.Where("status = ?", *status)
	}
	if applicantType != nil {
		countQuery = countQuery.Where("applicant_type = ?", *applicantType)
		listQuery = listQuery.Where("applicant_type = ?", *applicantType)
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
// conditional update, reporting a lost race through zero rows affected.
func (r *MachineApplicationRepository) UpdateStatusIfPending(id uuid.UUID, status models.ApplicationStatus) (int64, error) {
	result := r.db.Model(&models.MachineApplication{}).
		Where("id = ? AND status = ?", id, models.ApplicationStatusPending).
		Update("status", status)
	return result.RowsAffected, result.Error
}
