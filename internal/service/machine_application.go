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

// MachineApplicationService is the lifecycle engine for the machine
// application ledger. Machines accept applications from workers and
// startups, so every entry carries an applicant type tag and applicant
// summaries are resolved through a secondary per-type lookup.
type MachineApplicationService struct {
	repo      repository.MachineApplicationRepositoryInterface
	machines  repository.MachineRepositoryInterface
	workers   repository.WorkerRepositoryInterface
	startups  repository.StartupRepositoryInterface
	validator *validator.Validate
}

// NewMachineApplicationService creates a new machine application service
func NewMachineApplicationService(
	repo repository.MachineApplicationRepositoryInterface,
	machines repository.MachineRepositoryInterface,
	workers repository.WorkerRepositoryInterface,
	startups repository.StartupRepositoryInterface,
	validator *validator.Validate,
) *MachineApplicationService {
	return &MachineApplicationService{
		repo:      repo,
		machines:  machines,
		workers:   workers,
		startups:  startups,
		validator: validator,
	}
}

// MachineApplicationFilters represents the optional filters for the owner-side listing
type MachineApplicationFilters struct {
	Status        string
	ApplicantType string
	Sort          string
	Page          int
	Limit         int
}

// MachineSummary is the machine half of an enriched application
type MachineSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	DailyRate float64   `json:"daily_rate"`
	Available bool      `json:"available"`
}

// ApplicantSummary is the applicant half of an enriched machine application.
// Name holds the worker's full name or the startup's company name depending
// on Type.
type ApplicantSummary struct {
	ID       uuid.UUID `json:"id"`
	Type     string    `json:"type"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Location string    `json:"location"`
}

// MachineApplicationResponse represents the response data for a machine application
type MachineApplicationResponse struct {
	ID            uuid.UUID         `json:"id"`
	MachineID     uuid.UUID         `json:"machine_id"`
	ApplicantID   uuid.UUID         `json:"applicant_id"`
	ApplicantType string            `json:"applicant_type"`
	Status        string            `json:"status"`
	Message       string            `json:"message,omitempty"`
	AppliedAt     string            `json:"applied_at"`
	Machine       *MachineSummary   `json:"machine,omitempty"`
	Applicant     *ApplicantSummary `json:"applicant,omitempty"`
}

// MachineApplicationListResponse is the paginated envelope for application listings
type MachineApplicationListResponse struct {
	Applications []MachineApplicationResponse `json:"applications"`
	Pagination   Pagination                   `json:"pagination"`
}

// applicantTypeForRole maps the caller's role onto the ledger's applicant
// type tag. Manufacturers never apply, to their own machines or anyone
// else's.
func applicantTypeForRole(role models.Role) (models.ApplicantType, error) {
	switch role {
	case models.RoleWorker:
		return models.ApplicantTypeWorker, nil
	case models.RoleStartup:
		return models.ApplicantTypeStartup, nil
	case models.RoleManufacturer:
		return "", apperrors.ErrRoleNotEligible
	default:
		return "", apperrors.ErrRoleNotEligible
	}
}

// Apply submits a worker's or startup's application to a machine. Duplicates
// are rejected by the composite unique index on the ledger.
func (s *MachineApplicationService) Apply(machineID, applicantID uuid.UUID, role models.Role, req *ApplyRequest) (*MachineApplicationResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	applicantType, err := applicantTypeForRole(role)
	if err != nil {
		return nil, err
	}

	machine, err := s.machines.GetByID(machineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMachineNotFound
		}
		return nil, fmt.Errorf("failed to resolve machine: %w", err)
	}
	if !machine.Available {
		return nil, apperrors.ErrMachineUnavailable
	}

	app := &models.MachineApplication{
		MachineID:     machineID,
		ApplicantID:   applicantID,
		ApplicantType: applicantType,
		Status:        models.ApplicationStatusPending,
		Message:       req.Message,
		AppliedAt:     time.Now().UTC(),
	}

	if err := s.repo.Create(app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyAppliedToMachine
		}
		return nil, fmt.Errorf("failed to create machine application: %w", err)
	}

	app.Machine = *machine
	return s.convertToResponse(app, true, nil), nil
}

// ListForApplicant retrieves the caller's own machine applications, most
// recent first, each carrying its machine summary
func (s *MachineApplicationService) ListForApplicant(applicantID uuid.UUID, role models.Role, page, limit int) (*MachineApplicationListResponse, error) {
	applicantType, err := applicantTypeForRole(role)
	if err != nil {
		return nil, err
	}

	page, limit = normalizePageLimit(page, limit)

	apps, total, err := s.repo.GetByApplicant(applicantID, applicantType, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get machine applications: %w", err)
	}

	responses := make([]MachineApplicationResponse, len(apps))
	for i := range apps {
		responses[i] = *s.convertToResponse(&apps[i], true, nil)
	}

	return &MachineApplicationListResponse{
		Applications: responses,
		Pagination:   newPagination(page, limit, total),
	}, nil
}

// ListForManufacturer retrieves applications against any machine owned by
// the manufacturer, filtered and sorted per the caller, with applicant
// summaries resolved per type
func (s *MachineApplicationService) ListForManufacturer(manufacturerID uuid.UUID, filters MachineApplicationFilters) (*MachineApplicationListResponse, error) {
	var status *models.ApplicationStatus
	if filters.Status != "" {
		candidate := models.ApplicationStatus(filters.Status)
		if !candidate.IsValid() {
			return nil, apperrors.NewValidationError("status", "must be pending, approved, or rejected")
		}
		status = &candidate
	}

	var applicantType *models.ApplicantType
	if filters.ApplicantType != "" {
		candidate := models.ApplicantType(filters.ApplicantType)
		if !candidate.IsValid() {
			return nil, apperrors.NewValidationError("applicant_type", "must be worker or startup")
		}
		applicantType = &candidate
	}

	orderBy, err := resolveApplicationSort(filters.Sort)
	if err != nil {
		return nil, err
	}

	page, limit := normalizePageLimit(filters.Page, filters.Limit)

	machineIDs, err := s.machines.GetIDsByManufacturerID(manufacturerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owned machines: %w", err)
	}

	apps, total, err := s.repo.GetByMachineIDs(machineIDs, status, applicantType, orderBy, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get machine applications: %w", err)
	}

	applicants, err := s.resolveApplicants(apps)
	if err != nil {
		return nil, err
	}

	responses := make([]MachineApplicationResponse, len(apps))
	for i := range apps {
		responses[i] = *s.convertToResponse(&apps[i], true, applicants)
	}

	return &MachineApplicationListResponse{
		Applications: responses,
		Pagination:   newPagination(page, limit, total),
	}, nil
}

// Decide transitions a pending application to approved or rejected. Only the
// manufacturer owning the machine may decide; the transition is a
// conditional update so a lost race surfaces as a conflict, never a
// silent overwrite.
func (s *MachineApplicationService) Decide(applicationID, deciderID uuid.UUID, req *DecideRequest) (*MachineApplicationResponse, error) {
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
			return nil, apperrors.ErrMachineApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get machine application: %w", err)
	}

	if app.Machine.ManufacturerID != deciderID {
		return nil, apperrors.ErrNotMachineOwner
	}

	rows, err := s.repo.UpdateStatusIfPending(applicationID, decision)
	if err != nil {
		return nil, fmt.Errorf("failed to update machine application: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.ErrMachineApplicationDecided
	}

	app.Status = decision
	return s.convertToResponse(app, true, nil), nil
}

// applicantKey identifies an applicant across both principal tables
type applicantKey struct {
	id            uuid.UUID
	applicantType models.ApplicantType
}

// resolveApplicants batch-loads applicant summaries for a page of
// applications, one query per applicant type
func (s *MachineApplicationService) resolveApplicants(apps []models.MachineApplication) (map[applicantKey]*ApplicantSummary, error) {
	var workerIDs, startupIDs []uuid.UUID
	for i := range apps {
		switch apps[i].ApplicantType {
		case models.ApplicantTypeWorker:
			workerIDs = append(workerIDs, apps[i].ApplicantID)
		case models.ApplicantTypeStartup:
			startupIDs = append(startupIDs, apps[i].ApplicantID)
		}
	}

	summaries := make(map[applicantKey]*ApplicantSummary)

	workers, err := s.workers.GetByIDs(workerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve worker applicants: %w", err)
	}
	for i := range workers {
		summaries[applicantKey{workers[i].ID, models.ApplicantTypeWorker}] = &ApplicantSummary{
			ID:       workers[i].ID,
			Type:     string(models.ApplicantTypeWorker),
			Name:     workers[i].FullName,
			Email:    workers[i].Email,
			Location: workers[i].Location,
		}
	}

	startups, err := s.startups.GetByIDs(startupIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve startup applicants: %w", err)
	}
	for i := range startups {
		summaries[applicantKey{startups[i].ID, models.ApplicantTypeStartup}] = &ApplicantSummary{
			ID:       startups[i].ID,
			Type:     string(models.ApplicantTypeStartup),
			Name:     startups[i].CompanyName,
			Email:    startups[i].Email,
			Location: startups[i].Location,
		}
	}

	return summaries, nil
}

// convertToResponse converts a MachineApplication model to a response
func (s *MachineApplicationService) convertToResponse(app *models.MachineApplication, withMachine bool, applicants map[applicantKey]*ApplicantSummary) *MachineApplicationResponse {
	resp := &MachineApplicationResponse{
		ID:            app.ID,
		MachineID:     app.MachineID,
		ApplicantID:   app.ApplicantID,
		ApplicantType: string(app.ApplicantType),
		Status:        string(app.Status),
		Message:       app.Message,
		AppliedAt:     app.AppliedAt.Format(time.RFC3339),
	}
	if withMachine && app.Machine.ID != uuid.Nil {
		resp.Machine = &MachineSummary{
			ID:        app.Machine.ID,
			Name:      app.Machine.Name,
			Location:  app.Machine.Location,
			DailyRate: app.Machine.DailyRate,
			Available: app.Machine.Available,
		}
	}
	if applicants != nil {
		resp.Applicant = applicants[applicantKey{app.ApplicantID, app.ApplicantType}]
	}
	return resp
}
