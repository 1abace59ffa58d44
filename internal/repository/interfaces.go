package repository

import (
	"worklink-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// WorkerRepositoryInterface defines the interface for worker repository operations
type WorkerRepositoryInterface interface {
	Create(worker *models.Worker) error
	GetByID(id uuid.UUID) (*models.Worker, error)
	GetByEmail(email string) (*models.Worker, error)
	GetByIDs(ids []uuid.UUID) ([]models.Worker, error)
	Update(worker *models.Worker) error
	Delete(id uuid.UUID) error
}

// StartupRepositoryInterface defines the interface for startup repository operations
type StartupRepositoryInterface interface {
	Create(startup *models.Startup) error
	GetByID(id uuid.UUID) (*models.Startup, error)
	GetByEmail(email string) (*models.Startup, error)
	GetByIDs(ids []uuid.UUID) ([]models.Startup, error)
	Update(startup *models.Startup) error
	Delete(id uuid.UUID) error
}

// ManufacturerRepositoryInterface defines the interface for manufacturer repository operations
type ManufacturerRepositoryInterface interface {
	Create(manufacturer *models.Manufacturer) error
	GetByID(id uuid.UUID) (*models.Manufacturer, error)
	GetByEmail(email string) (*models.Manufacturer, error)
	Update(manufacturer *models.Manufacturer) error
	Delete(id uuid.UUID) error
}

// GigRepositoryInterface defines the interface for gig repository operations
type GigRepositoryInterface interface {
	Create(gig *models.Gig) error
	GetByID(id uuid.UUID) (*models.Gig, error)
	GetOpen(limit, offset int) ([]models.Gig, int64, error)
	GetByStartupID(startupID uuid.UUID, limit, offset int) ([]models.Gig, int64, error)
	GetIDsByStartupID(startupID uuid.UUID) ([]uuid.UUID, error)
	Update(gig *models.Gig) error
	DeleteWithApplications(id uuid.UUID) error
}

// MachineRepositoryInterface defines the interface for machine repository operations
type MachineRepositoryInterface interface {
	Create(machine *models.Machine) error
	GetByID(id uuid.UUID) (*models.Machine, error)
	GetAvailable(limit, offset int) ([]models.Machine, int64, error)
	GetByManufacturerID(manufacturerID uuid.UUID, limit, offset int) ([]models.Machine, int64, error)
	GetIDsByManufacturerID(manufacturerID uuid.UUID) ([]uuid.UUID, error)
	Update(machine *models.Machine) error
	DeleteWithApplications(id uuid.UUID) error
}

// GigApplicationRepositoryInterface defines the interface for the gig application ledger
type GigApplicationRepositoryInterface interface {
	Create(app *models.GigApplication) error
	GetByID(id uuid.UUID) (*models.GigApplication, error)
	GetByWorkerID(workerID uuid.UUID, limit, offset int) ([]models.GigApplication, int64, error)
	GetByGigIDs(gigIDs []uuid.UUID, status *models.ApplicationStatus, orderBy string, limit, offset int) ([]models.GigApplication, int64, error)
	UpdateStatusIfPending(id uuid.UUID, status models.ApplicationStatus) (int64, error)
}

// MachineApplicationRepositoryInterface defines the interface for the machine application ledger
type MachineApplicationRepositoryInterface interface {
	Create(app *models.MachineApplication) error
	GetByID(id uuid.UUID) (*models.MachineApplication, error)
	GetByApplicant(applicantID uuid.UUID, applicantType models.ApplicantType, limit, offset int) ([]models.MachineApplication, int64, error)
	GetByMachineIDs(machineIDs []uuid.UUID, status *models.ApplicationStatus, applicantType *models.ApplicantType, orderBy string, limit, offset int) ([]models.MachineApplication, int64, error)
	UpdateStatusIfPending(id uuid.UUID, status models.ApplicationStatus) (int64, error)
}
