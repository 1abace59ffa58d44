package repository

import (
	"worklink-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MachineRepository handles database operations for machines
type MachineRepository struct {
	db *gorm.DB
}

// NewMachineRepository creates a new machine repository
func NewMachineRepository(db *gorm.DB) *MachineRepository {
	return &MachineRepository{db: db}
}

// Create creates a new machine
func (r *MachineRepository) Create(machine *models.Machine) error {
	return r.db.Create(machine).Error
}

// GetByID retrieves a machine by ID
func (r *MachineRepository) GetByID(id uuid.UUID) (*models.Machine, error) {
	var machine models.Machine
	err := r.db.First(&machine, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &machine, nil
}

// GetAvailable retrieves machines available for applications with pagination
func (r *MachineRepository) GetAvailable(limit, offset int) ([]models.Machine, int64, error) {
	var machines []models.Machine
	var total int64

	query := r.db.Model(&models.Machine{}).Where("available = ?", true)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&machines).Error
	if err != nil {
		return nil, 0, err
	}

	return machines, total, nil
}

// GetByManufacturerID retrieves all machines for a manufacturer with pagination
func (r *MachineRepository) GetByManufacturerID(manufacturerID uuid.UUID, limit, offset int) ([]models.Machine, int64, error) {
	var machines []models.Machine
	var total int64

	query := r.db.Model(&models.Machine{}).Where("manufacturer_id = ?", manufacturerID)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&machines).Error
	if err != nil {
		return nil, 0, err
	}

	return machines, total, nil
}

// GetIDsByManufacturerID retrieves the IDs of all machines owned by a manufacturer
func (r *MachineRepository) GetIDsByManufacturerID(manufacturerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Machine{}).Where("manufacturer_id = ?", manufacturerID).Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Update updates a machine
func (r *MachineRepository) Update(machine *models.Machine) error {
	return r.db.Save(machine).Error
}

// DeleteWithApplications deletes a machine and every application referencing
// it in one transaction, applications first.
func (r *MachineRepository) DeleteWithApplications(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.MachineApplication{}, "machine_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Machine{}, "id = ?", id).Error
	})
}
