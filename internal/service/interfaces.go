package service

import (
	"worklink-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// GigServiceInterface defines the interface for gig service
type GigServiceInterface interface {
	CreateGig(startupID uuid.UUID, req *CreateGigRequest) (*GigResponse, error)
	GetGigByID(id uuid.UUID) (*GigResponse, error)
	ListOpenGigs(page, limit int) (*GigListResponse, error)
	ListGigsByStartup(startupID uuid.UUID, page, limit int) (*GigListResponse, error)
	UpdateGig(id, startupID uuid.UUID, req *UpdateGigRequest) (*GigResponse, error)
	DeleteGig(id, startupID uuid.UUID) error
}

// MachineServiceInterface defines the interface for machine service
type MachineServiceInterface interface {
	CreateMachine(manufacturerID uuid.UUID, req *CreateMachineRequest) (*MachineResponse, error)
	GetMachineByID(id uuid.UUID) (*MachineResponse, error)
	ListAvailableMachines(page, limit int) (*MachineListResponse, error)
	ListMachinesByManufacturer(manufacturerID uuid.UUID, page, limit int) (*MachineListResponse, error)
	UpdateMachine(id, manufacturerID uuid.UUID, req *UpdateMachineRequest) (*MachineResponse, error)
	DeleteMachine(id, manufacturerID uuid.UUID) error
}

// GigApplicationServiceInterface defines the interface for the gig application lifecycle
type GigApplicationServiceInterface interface {
	Apply(gigID, applicantID uuid.UUID, role models.Role, req *ApplyRequest) (*GigApplicationResponse, error)
	ListForWorker(workerID uuid.UUID, page, limit int) (*GigApplicationListResponse, error)
	ListForStartup(startupID uuid.UUID, filters GigApplicationFilters) (*GigApplicationListResponse, error)
	Decide(applicationID, deciderID uuid.UUID, req *DecideRequest) (*GigApplicationResponse, error)
}

// MachineApplicationServiceInterface defines the interface for the machine application lifecycle
type MachineApplicationServiceInterface interface {
	Apply(machineID, applicantID uuid.UUID, role models.Role, req *ApplyRequest) (*MachineApplicationResponse, error)
	ListForApplicant(applicantID uuid.UUID, role models.Role, page, limit int) (*MachineApplicationListResponse, error)
	ListForManufacturer(manufacturerID uuid.UUID, filters MachineApplicationFilters) (*MachineApplicationListResponse, error)
	Decide(applicationID, deciderID uuid.UUID, req *DecideRequest) (*MachineApplicationResponse, error)
}

// ProfileServiceInterface defines the interface for profile service
type ProfileServiceInterface interface {
	GetProfile(id uuid.UUID, role models.Role) (*ProfileResponse, error)
	UpdateProfile(id uuid.UUID, role models.Role, req *UpdateProfileRequest) (*ProfileResponse, error)
}

// DashboardServiceInterface defines the interface for dashboard service
type DashboardServiceInterface interface {
	WorkerStats(workerID uuid.UUID) (*WorkerStatsResponse, error)
	StartupStats(startupID uuid.UUID) (*StartupStatsResponse, error)
	ManufacturerStats(manufacturerID uuid.UUID) (*ManufacturerStatsResponse, error)
}
