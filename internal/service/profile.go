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

// ProfileService resolves and updates the profile behind a token, whichever
// of the three principal tables it lives in
type ProfileService struct {
	workers       repository.WorkerRepositoryInterface
	startups      repository.StartupRepositoryInterface
	manufacturers repository.ManufacturerRepositoryInterface
	validator     *validator.Validate
}

// NewProfileService creates a new profile service
func NewProfileService(
	workers repository.WorkerRepositoryInterface,
	startups repository.StartupRepositoryInterface,
	manufacturers repository.ManufacturerRepositoryInterface,
	validator *validator.Validate,
) *ProfileService {
	return &ProfileService{
		workers:       workers,
		startups:      startups,
		manufacturers: manufacturers,
		validator:     validator,
	}
}

// UpdateProfileRequest represents the fields a principal may change on its
// own profile. Role-specific fields are ignored for roles they do not
// apply to.
type UpdateProfileRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
	Location    *string `json:"location" validate:"omitempty,max=200"`
	Skills      *string `json:"skills" validate:"omitempty,max=500"`
	Industry    *string `json:"industry" validate:"omitempty,max=100"`
}

// ProfileResponse represents any principal's profile. Name holds the
// worker's full name or the company name for the other two roles.
type ProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	Role        string    `json:"role"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Location    string    `json:"location,omitempty"`
	Skills      string    `json:"skills,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	CreatedAt   string    `json:"created_at"`
}

// GetProfile retrieves the caller's profile by id and role
func (s *ProfileService) GetProfile(id uuid.UUID, role models.Role) (*ProfileResponse, error) {
	switch role {
	case models.RoleWorker:
		worker, err := s.workers.GetByID(id)
		if err != nil {
			return nil, workerLookupError(err)
		}
		return workerProfile(worker), nil
	case models.RoleStartup:
		startup, err := s.startups.GetByID(id)
		if err != nil {
			return nil, startupLookupError(err)
		}
		return startupProfile(startup), nil
	case models.RoleManufacturer:
		manufacturer, err := s.manufacturers.GetByID(id)
		if err != nil {
			return nil, manufacturerLookupError(err)
		}
		return manufacturerProfile(manufacturer), nil
	default:
		return nil, apperrors.NewAuthenticationError("unknown role")
	}
}

// UpdateProfile updates the caller's own profile by id and role
func (s *ProfileService) UpdateProfile(id uuid.UUID, role models.Role, req *UpdateProfileRequest) (*ProfileResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	switch role {
	case models.RoleWorker:
		worker, err := s.workers.GetByID(id)
		if err != nil {
			return nil, workerLookupError(err)
		}
		if req.Name != nil {
			worker.FullName = *req.Name
		}
		if req.PhoneNumber != nil {
			worker.PhoneNumber = *req.PhoneNumber
		}
		if req.Location != nil {
			worker.Location = *req.Location
		}
		if req.Skills != nil {
			worker.Skills = *req.Skills
		}
		if err := s.workers.Update(worker); err != nil {
			return nil, fmt.Errorf("failed to update worker: %w", err)
		}
		return workerProfile(worker), nil
	case models.RoleStartup:
		startup, err := s.startups.GetByID(id)
		if err != nil {
			return nil, startupLookupError(err)
		}
		if req.Name != nil {
			startup.CompanyName = *req.Name
		}
		if req.Location != nil {
			startup.Location = *req.Location
		}
		if req.Industry != nil {
			startup.Industry = *req.Industry
		}
		if err := s.startups.Update(startup); err != nil {
			return nil, fmt.Errorf("failed to update startup: %w", err)
		}
		return startupProfile(startup), nil
	case models.RoleManufacturer:
		manufacturer, err := s.manufacturers.GetByID(id)
		if err != nil {
			return nil, manufacturerLookupError(err)
		}
		if req.Name != nil {
			manufacturer.CompanyName = *req.Name
		}
		if req.Location != nil {
			manufacturer.Location = *req.Location
		}
		if err := s.manufacturers.Update(manufacturer); err != nil {
			return nil, fmt.Errorf("failed to update manufacturer: %w", err)
		}
		return manufacturerProfile(manufacturer), nil
	default:
		return nil, apperrors.NewAuthenticationError("unknown role")
	}
}

func workerLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrWorkerNotFound
	}
	return fmt.Errorf("failed to get worker: %w", err)
}

func startupLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrStartupNotFound
	}
	return fmt.Errorf("failed to get startup: %w", err)
}

func manufacturerLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrManufacturerNotFound
	}
	return fmt.Errorf("failed to get manufacturer: %w", err)
}

func workerProfile(worker *models.Worker) *ProfileResponse {
	return &ProfileResponse{
		ID:          worker.ID,
		Role:        string(models.RoleWorker),
		Name:        worker.FullName,
		Email:       worker.Email,
		PhoneNumber: worker.PhoneNumber,
		Location:    worker.Location,
		Skills:      worker.Skills,
		CreatedAt:   worker.CreatedAt.Format(time.RFC3339),
	}
}

func startupProfile(startup *models.Startup) *ProfileResponse {
	return &ProfileResponse{
		ID:        startup.ID,
		Role:      string(models.RoleStartup),
		Name:      startup.CompanyName,
		Email:     startup.Email,
		Location:  startup.Location,
		Industry:  startup.Industry,
		CreatedAt: startup.CreatedAt.Format(time.RFC3339),
	}
}

func manufacturerProfile(manufacturer *models.Manufacturer) *ProfileResponse {
	return &ProfileResponse{
		ID:        manufacturer.ID,
		Role:      string(models.RoleManufacturer),
		Name:      manufacturer.CompanyName,
		Email:     manufacturer.Email,
		Location:  manufacturer.Location,
		CreatedAt: manufacturer.CreatedAt.Format(time.RFC3339),
	}
}
