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

// GigService handles business logic for gigs
type GigService struct {
	repo      repository.GigRepositoryInterface
	validator *validator.Validate
}

// NewGigService creates a new gig service
func NewGigService(repo repository.GigRepositoryInterface, validator *validator.Validate) *GigService {
	return &GigService{
		repo:      repo,
		validator: validator,
	}
}

// CreateGigRequest represents the data needed to create a gig
type CreateGigRequest struct {
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description" validate:"max=2000"`
	Location     string `json:"location" validate:"max=200"`
	Compensation string `json:"compensation" validate:"max=100"`
	IsOpen       *bool  `json:"is_open"` // Optional: defaults to true if not provided
}

// UpdateGigRequest represents the data needed to update a gig
type UpdateGigRequest struct {
	Title        *string `json:"title" validate:"omitempty,max=200"`
	Description  *string `json:"description" validate:"omitempty,max=2000"`
	Location     *string `json:"location" validate:"omitempty,max=200"`
	Compensation *string `json:"compensation" validate:"omitempty,max=100"`
	IsOpen       *bool   `json:"is_open"`
}

// GigResponse represents the response data for a gig
type GigResponse struct {
	ID           uuid.UUID `json:"id"`
	StartupID    uuid.UUID `json:"startup_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Compensation string    `json:"compensation"`
	IsOpen       bool      `json:"is_open"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// GigListResponse is the paginated envelope for gig listings
type GigListResponse struct {
	Gigs       []GigResponse `json:"gigs"`
	Pagination Pagination    `json:"pagination"`
}

// CreateGig creates a new gig owned by the startup
func (s *GigService) CreateGig(startupID uuid.UUID, req *CreateGigRequest) (*GigResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	isOpen := true
	if req.IsOpen != nil {
		isOpen = *req.IsOpen
	}

	gig := &models.Gig{
		StartupID:    startupID,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Compensation: req.Compensation,
		IsOpen:       isOpen,
	}

	if err := s.repo.Create(gig); err != nil {
		return nil, fmt.Errorf("failed to create gig: %w", err)
	}

	return s.convertToResponse(gig), nil
}

// GetGigByID retrieves a gig by ID
func (s *GigService) GetGigByID(id uuid.UUID) (*GigResponse, error) {
	gig, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, fmt.Errorf("failed to get gig: %w", err)
	}

	return s.convertToResponse(gig), nil
}

// ListOpenGigs retrieves gigs open for applications
func (s *GigService) ListOpenGigs(page, limit int) (*GigListResponse, error) {
	page, limit = normalizePageLimit(page, limit)

	gigs, total, err := s.repo.GetOpen(limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get gigs: %w", err)
	}

	responses := make([]GigResponse, len(gigs))
	for i := range gigs {
		responses[i] = *s.convertToResponse(&gigs[i])
	}

	return &GigListResponse{
		Gigs:       responses,
		Pagination: newPagination(page, limit, total),
	}, nil
}

// ListGigsByStartup retrieves all gigs owned by a startup
func (s *GigService) ListGigsByStartup(startupID uuid.UUID, page, limit int) (*GigListResponse, error) {
	page, limit = normalizePageLimit(page, limit)

	gigs, total, err := s.repo.GetByStartupID(startupID, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get gigs: %w", err)
	}

	responses := make([]GigResponse, len(gigs))
	for i := range gigs {
		responses[i] = *s.convertToResponse(&gigs[i])
	}

	return &GigListResponse{
		Gigs:       responses,
		Pagination: newPagination(page, limit, total),
	}, nil
}

// UpdateGig updates a gig; only the owning startup may update it
func (s *GigService) UpdateGig(id, startupID uuid.UUID, req *UpdateGigRequest) (*GigResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	gig, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, fmt.Errorf("failed to get gig: %w", err)
	}

	if gig.StartupID != startupID {
		return nil, apperrors.ErrNotGigOwner
	}

	if req.Title != nil {
		gig.Title = *req.Title
	}
	if req.Description != nil {
		gig.Description = *req.Description
	}
	if req.Location != nil {
		gig.Location = *req.Location
	}
	if req.Compensation != nil {
		gig.Compensation = *req.Compensation
	}
	if req.IsOpen != nil {
		gig.IsOpen = *req.IsOpen
	}

	if err := s.repo.Update(gig); err != nil {
		return nil, fmt.Errorf("failed to update gig: %w", err)
	}

	return s.convertToResponse(gig), nil
}

// DeleteGig deletes a gig and cascades over its applications in one
// transaction; only the owning startup may delete it
func (s *GigService) DeleteGig(id, startupID uuid.UUID) error {
	gig, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGigNotFound
		}
		return fmt.Errorf("failed to get gig: %w", err)
	}

	if gig.StartupID != startupID {
		return apperrors.ErrNotGigOwner
	}

	if err := s.repo.DeleteWithApplications(id); err != nil {
		return fmt.Errorf("failed to delete gig: %w", err)
	}

	return nil
}

// convertToResponse converts a Gig model to a response
func (s *GigService) convertToResponse(gig *models.Gig) *GigResponse {
	return &GigResponse{
		ID:           gig.ID,
		StartupID:    gig.StartupID,
		Title:        gig.Title,
		Description:  gig.Description,
		Location:     gig.Location,
		Compensation: gig.Compensation,
		IsOpen:       gig.IsOpen,
		CreatedAt:    gig.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    gig.UpdatedAt.Format(time.RFC3339),
	}
}
