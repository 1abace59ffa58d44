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

// GigApplicationService is the lifecycle engine for the gig application
// ledger: it creates pending applications, lists them for both sides, and
// applies the one-way pending -> approved/rejected transition.
type GigApplicationService struct {
	repo      repository.GigApplicationRepositoryInterface
	gigs      repository.GigRepositoryInterface
	validator *validator.Validate
}

// NewGigApplicationService creates a new gig application service
func NewGigApplicationService(repo repository.GigApplicationRepositoryInterface, gigs repository.GigRepositoryInterface, validator *validator.Validate) *GigApplicationService {
	return &GigApplicationService{
		repo:      repo,
		gigs:      gigs,
		validator: validator,
	}
}

// ApplyRequest represents the data an applicant submits with an application
type ApplyRequest struct {
	Message string `json:"message" validate:"max=1000"`
}

// DecideRequest represents the owner's decision on a pending application
type DecideRequest struct {
	Status string `json:"status" validate:"required"`
}

// GigApplicationFilters represents the optional filters for the owner-side listing
type GigApplicationFilters struct {
	Status string
	Sort   string
	Page   int
	Limit  int
}

// GigSummary is the gig half of an enriched application
type GigSummary struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Location     string    `json:"location"`
	Compensation string    `json:"compensation"`
	IsOpen       bool      `json:"is_open"`
}

// WorkerSummary is the applicant half of an enriched application
type WorkerSummary struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Location string    `json:"location"`
	Skills   string    `json:"skills"`
}

// GigApplicationResponse represents the response data for a gig application
type GigApplicationResponse struct {
	ID        uuid.UUID      `json:"id"`
	GigID     uuid.UUID      `json:"gig_id"`
	WorkerID  uuid.UUID      `json:"worker_id"`
	Status    string         `json:"status"`
	Message   string         `json:"message,omitempty"`
	AppliedAt string         `json:"applied_at"`
	Gig       *GigSummary    `json:"gig,omitempty"`
	Worker    *WorkerSummary `json:"worker,omitempty"`
}

// GigApplicationListResponse is the paginated envelope for application listings
type GigApplicationListResponse struct {
	Applications []GigApplicationResponse `json:"applications"`
	Pagination   Pagination               `json:"pagination"`
}

// Apply submits a worker's application to a gig. Only workers are eligible.
// Duplicate submissions are rejected by the storage-level unique index, not
// by a read-then-insert check, so two concurrent calls cannot both succeed.
func (s *GigApplicationService) Apply(gigID, applicantID uuid.UUID, role models.Role, req *ApplyRequest) (*GigApplicationResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if role != models.RoleWorker {
		return nil, apperrors.ErrRoleNotEligible
	}

	gig, err := s.gigs.GetByID(gigID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, fmt.Errorf("failed to resolve gig: %w", err)
	}
	if !gig.IsOpen {
		return nil, apperrors.ErrGigClosed
	}

	app := &models.GigApplication{
		GigID:     gigID,
		WorkerID:  applicantID,
		Status:    models.ApplicationStatusPending,
		Message:   req.Message,
		AppliedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyAppliedToGig
		}
		return nil, fmt.Errorf("failed to create gig application: %w", err)
	}

	app.Gig = *gig
	return s.convertToResponse(app, true, false), nil
}

// ListForWorker retrieves a worker's own applications, most recent first,
// each carrying its gig summary
func (s *GigApplicationService) ListForWorker(workerID uuid.UUID, page, limit int) (*GigApplicationListResponse, error) {
	page, limit = normalizePageLimit(page, limit)

	apps, total, err := s.repo.GetByWorkerID(workerID, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get gig applications: %w", err)
	}

	responses := make([]GigApplicationResponse, len(apps))
	for i := range apps {
		responses[i] = *s.convertToResponse(&apps[i], true, false)
	}

	return &GigApplicationListResponse{
		Applications: responses,
		Pagination:   newPagination(page, limit, total),
	}, nil
}

// ListForStartup retrieves applications against any gig owned by the
// startup, filtered and sorted per the caller, each carrying the applicant
// summary
func (s *GigApplicationService) ListForStartup(startupID uuid.UUID, filters GigApplicationFilters) (*GigApplicationListResponse, error) {
	var status *models.ApplicationStatus
	if filters.Status != "" {
		candidate := models.ApplicationStatus(filters.Status)
		if !candidate.IsValid() {
			return nil, apperrors.NewValidationError("status", "must be pending, approved, or rejected")
		}
		status = &candidate
	}

	orderBy, err := resolveApplicationSort(filters.Sort)
	if err != nil {
		return nil, err
	}

	page, limit := normalizePageLimit(filters.Page, filters.Limit)

	gigIDs, err := s.gigs.GetIDsByStartupID(startupID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owned gigs: %w", err)
	}

	apps, total, err := s.repo.GetByGigIDs(gigIDs, status, orderBy, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get gig applications: %w", err)
	}

	responses := make([]GigApplicationResponse, len(apps))
	for i := range apps {
		responses[i] = *s.convertToResponse(&apps[i], true, true)
	}

	return &GigApplicationListResponse{
		Applications: responses,
		Pagination:   newPagination(page, limit, total),
	}, nil
}

// Decide transitions a pending application to approved or rejected. Only the
// startup owning the gig may decide, and the transition is a conditional
// update: once an application leaves pending no further decision is
// accepted, whichever value it holds.
func (s *GigApplicationService) Decide(applicationID, deciderID uuid.UUID, req *DecideRequest) (*GigApplicationResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	decision := models.ApplicationStatus(req.Status)
	if !decision.IsDecision() {
		return nil, apperrors.NewValidationError("status", "must be approved or rejected")
	}

	app, err := s.repo.GetByID(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGigApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get gig application: %w", err)
	}

	if app.Gig.StartupID != deciderID {
		return nil, apperrors.ErrNotGigOwner
	}

	rows, err := s.repo.UpdateStatusIfPending(applicationID, decision)
	if err != nil {
		return nil, fmt.Errorf("failed to update gig application: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.ErrGigApplicationDecided
	}

	app.Status = decision
	return s.convertToResponse(app, true, false), nil
}

// convertToResponse converts a GigApplication model to a response
func (s *GigApplicationService) convertToResponse(app *models.GigApplication, withGig, withWorker bool) *GigApplicationResponse {
	resp := &GigApplicationResponse{
		ID:        app.ID,
		GigID:     app.GigID,
		WorkerID:  app.WorkerID,
		Status:    string(app.Status),
		Message:   app.Message,
		AppliedAt: app.AppliedAt.Format(time.RFC3339),
	}
	if withGig && app.Gig.ID != uuid.Nil {
		resp.Gig = &GigSummary{
			ID:           app.Gig.ID,
			Title:        app.Gig.Title,
			Location:     app.Gig.Location,
			Compensation: app.Gig.Compensation,
			IsOpen:       app.Gig.IsOpen,
		}
	}
	if withWorker && app.Worker.ID != uuid.Nil {
		resp.Worker = &WorkerSummary{
			ID:       app.Worker.ID,
			FullName: app.Worker.FullName,
			Email:    app.Worker.Email,
			Location: app.Worker.Location,
			Skills:   app.Worker.Skills,
		}
	}
	return resp
}
