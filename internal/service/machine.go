package service

import (
	"errors"
	"fmt"
	"time"

	"worklink-backend/internal/database/models"
	apperrors "worklink-backend/internal/errors"
	"worklink-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MachineService handles business logic for machines
type MachineService struct {
	repo      repository.MachineRepositoryInterface
	validator *validator.Validate
}

// NewMachineService creates a new machine service
func NewMachineService(repo repository.MachineRepositoryInterface, validator *validator.Validate) *MachineService {
	return &MachineService{
		repo:      repo,
		validator: validator,
	}
}

// CreateMachineRequest represents the data needed to create a machine
type CreateMachineRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=2000"`
	Location    string  `json:"location" validate:"max=200"`
	DailyRate   float64 `json:"daily_rate" validate:"gte=0"`
	Available   *bool   `json:"available"` // Optional: defaults to true if not provided
}

// UpdateMachineRequest represents the data needed to update a machine
type UpdateMachineRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Location    *string  `json:"location" validate:"omitempty,max=200"`
	DailyRate   *float64 `json:"daily_rate" validate:"omitempty,gte=0"`
	Available   *bool    `json:"available"`
}

// MachineResponse represents the response data for a machine
type MachineResponse struct {
	ID             uuid.UUID `json:"id"`
	ManufacturerID uuid.UUID `json:"manufacturer_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	DailyRate      float64   `json:"daily_rate"`
	Available      bool      `json:"available"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// MachineListResponse is the paginated envelope for machine listings
type MachineListResponse struct {
	Machines   []MachineResponse `json:"machines"`
	Pagination Pagination        `json:"pagination"`
}

// CreateMachine creates a new machine owned by the manufacturer
func (s *MachineService) CreateMachine(manufacturerID uuid.UUID, req *CreateMachineRequest) (*MachineResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	machine := &models.Machine{
		ManufacturerID: manufacturerID,
		Name:           req.Name,
		Description:    req.Description,
		Location:       req.Location,
		DailyRate:      req.DailyRate,
		Available:      available,
	}

	if err := s.repo.Create(machine); err != nil {
		return nil, fmt.Errorf("failed to create machine: %w", err)
	}

	return s.convertToResponse(machine), nil
}

// GetMachineByID retrieves a machine by ID
func (s *MachineService) GetMachineByID(id uuid.UUID) (*MachineResponse, error) {
	machine, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMachineNotFound
		}
		return nil, fmt.Errorf("failed to get machine: %w", err)
	}

	return s.convertToResponse(machine), nil
}

// ListAvailableMachines retrieves machines available for applications
func (s *MachineService) ListAvailableMachines(page, limit int) (*MachineListResponse, error) {
	page, limit = normalizePageLimit(page, limit)

	machines, total, err := s.repo.GetAvailable(limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get machines: %w", err)
	}

	responses := make([]MachineResponse, len(machines))
	for i := range machines {
		responses[i] = *s.convertToResponse(&machines[i])
	}

	return &MachineListResponse{
		Machines:   responses,
		Pagination: newPagination(page, limit, total),
	}, nil
}

// ListMachinesByManufacturer retrieves all machines owned by a manufacturer
func (s *MachineService) ListMachinesByManufacturer(manufacturerID uuid.UUID, page, limit int) (*MachineListResponse, error) {
	page, limit = normalizePageLimit(page, limit)

	machines, total, err := s.repo.GetByManufacturerID(manufacturerID, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get machines: %w", err)
	}

	responses := make([]MachineResponse, len(machines))
	for i := range machines {
		responses[i] = *s.convertToResponse(&machines[i])
	}

	return &MachineListResponse{
		Machines:   responses,
		Pagination: newPagination(page, limit, total),
	}, nil
}

// UpdateMachine updates a machine; only the owning manufacturer may update it
func (s *MachineService) UpdateMachine(id, manufacturerID uuid.UUID, req *UpdateMachineRequest) (*MachineResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	machine, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMachineNotFound
		}
		return nil, fmt.Errorf("failed to get machine: %w", err)
	}

	if machine.ManufacturerID != manufacturerID {
		return nil, apperrors.ErrNotMachineOwner
	}

	if req.Name != nil {
		machine.Name = *req.Name
	}
	if req.Description != nil {
		machine.Description = *req.Description
	}
	if req.Location != nil {
		machine.Location = *req.Location
	}
	if req.DailyRate != nil {
		machine.DailyRate = *req.DailyRate
	}
	if req.Available != nil {
		machine.Available = *req.Available
	}

	if err := s.repo.Update(machine); err != nil {
		return nil, fmt.Errorf("failed to update machine: %w", err)
	}

	return s.convertToResponse(machine), nil
}

// DeleteMachine deletes a machine and cascades over its applications in one
// transaction; only the owning manufacturer may delete it
func (s *MachineService) DeleteMachine(id, manufacturerID uuid.UUID) error {
	machine, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMachineNotFound
		}
		return fmt.Errorf("failed to get machine: %w", err)
	}

	if machine.ManufacturerID != manufacturerID {
		return apperrors.ErrNotMachineOwner
	}

	if err := s.repo.DeleteWithApplications(id); err != nil {
		return fmt.Errorf("failed to delete machine: %w", err)
	}

	return nil
}

// convertToResponse converts a Machine model to a response
func (s *MachineService) convertToResponse(machine *models.Machine) *MachineResponse {
	return &MachineResponse{
		ID:             machine.ID,
		ManufacturerID: machine.ManufacturerID,
		Name:           machine.Name,
		Description:    machine.Description,
		Location:       machine.Location,
		DailyRate:      machine.DailyRate,
		Available:      machine.Available,
		CreatedAt:      machine.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      machine.UpdatedAt.Format(time.RFC3339),
	}
}
