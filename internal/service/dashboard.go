package service

import (
	"fmt"

	"worklink-backend/internal/database/models"
	"worklink-backend/internal/repository"

	"github.com/google/uuid"
)

// DashboardService derives per-role dashboard statistics. Every stat is a
// pure computation over a snapshot fetched for the request; nothing is kept
// between calls.
type DashboardService struct {
	gigApps     repository.GigApplicationRepositoryInterface
	machineApps repository.MachineApplicationRepositoryInterface
	gigs        repository.GigRepositoryInterface
	machines    repository.MachineRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	gigApps repository.GigApplicationRepositoryInterface,
	machineApps repository.MachineApplicationRepositoryInterface,
	gigs repository.GigRepositoryInterface,
	machines repository.MachineRepositoryInterface,
) *DashboardService {
	return &DashboardService{
		gigApps:     gigApps,
		machineApps: machineApps,
		gigs:        gigs,
		machines:    machines,
	}
}

// StatusCounts breaks a set of applications down by lifecycle state
type StatusCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// WorkerStatsResponse represents a worker's dashboard numbers
type WorkerStatsResponse struct {
	GigApplications     StatusCounts `json:"gig_applications"`
	MachineApplications StatusCounts `json:"machine_applications"`
}

// StartupStatsResponse represents a startup's dashboard numbers
type StartupStatsResponse struct {
	GigsTotal            int          `json:"gigs_total"`
	GigsOpen             int          `json:"gigs_open"`
	ApplicationsReceived StatusCounts `json:"applications_received"`
	MachineApplications  StatusCounts `json:"machine_applications"`
}

// ManufacturerStatsResponse represents a manufacturer's dashboard numbers
type ManufacturerStatsResponse struct {
	MachinesTotal        int          `json:"machines_total"`
	MachinesAvailable    int          `json:"machines_available"`
	ApplicationsReceived StatusCounts `json:"applications_received"`
	FromWorkers          int          `json:"from_workers"`
	FromStartups         int          `json:"from_startups"`
}

// WorkerStats derives a worker's dashboard from their two application sets
func (s *DashboardService) WorkerStats(workerID uuid.UUID) (*WorkerStatsResponse, error) {
	gigApps, _, err := s.gigApps.GetByWorkerID(workerID, -1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get gig applications: %w", err)
	}

	machineApps, _, err := s.machineApps.GetByApplicant(workerID, models.ApplicantTypeWorker, -1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get machine applications: %w", err)
	}

	return &WorkerStatsResponse{
		GigApplications:     summarizeGigApplications(gigApps),
		MachineApplications: summarizeMachineApplications(machineApps),
	}, nil
}

// StartupStats derives a startup's dashboard from its gigs, the
// applications they received, and its own machine applications
func (s *DashboardService) StartupStats(startupID uuid.UUID) (*StartupStatsResponse, error) {
	gigs, _, err := s.gigs.GetByStartupID(startupID, -1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get gigs: %w", err)
	}

	gigIDs := make([]uuid.UUID, len(gigs))
	for i := range gigs {
		gigIDs[i] = gigs[i].ID
	}

	received, _, err := s.gigApps.GetByGigIDs(gigIDs, nil, "", -1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get received applications: %w", err)
	}

	submitted, _, err := s.machineApps.GetByApplicant(startupID, models.ApplicantTypeStartup, -1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get machine applications: %w", err)
	}

	return &StartupStatsResponse{
		GigsTotal:            len(gigs),
		GigsOpen:             countOpenGigs(gigs),
		ApplicationsReceived: summarizeGigApplications(received),
		MachineApplications:  summarizeMachineApplications(submitted),
	}, nil
}

// ManufacturerStats derives a manufacturer's dashboard from its machines
// and the applications they received
func (s *DashboardService) ManufacturerStats(manufacturerID uuid.UUID) (*ManufacturerStatsResponse, error) {
	machines, _, err := s.machines.GetByManufacturerID(manufacturerID, -1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get machines: %w", err)
	}

	machineIDs := make([]uuid.UUID, len(machines))
	for i := range machines {
		machineIDs[i] = machines[i].ID
	}

	received, _, err := s.machineApps.GetByMachineIDs(machineIDs, nil, nil, "", -1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get received applications: %w", err)
	}

	fromWorkers, fromStartups := countByApplicantType(received)

	return &ManufacturerStatsResponse{
		MachinesTotal:        len(machines),
		MachinesAvailable:    countAvailableMachines(machines),
		ApplicationsReceived: summarizeMachineApplications(received),
		FromWorkers:          fromWorkers,
		FromStartups:         fromStartups,
	}, nil
}

// summarizeGigApplications tallies a snapshot of gig applications by status
func summarizeGigApplications(apps []models.GigApplication) StatusCounts {
	counts := StatusCounts{Total: len(apps)}
	for i := range apps {
		switch apps[i].Status {
		case models.ApplicationStatusPending:
			counts.Pending++
		case models.ApplicationStatusApproved:
			counts.Approved++
		case models.ApplicationStatusRejected:
			counts.Rejected++
		}
	}
	return counts
}

// summarizeMachineApplications tallies a snapshot of machine applications by status
func summarizeMachineApplications(apps []models.MachineApplication) StatusCounts {
	counts := StatusCounts{Total: len(apps)}
	for i := range apps {
		switch apps[i].Status {
		case models.ApplicationStatusPending:
			counts.Pending++
		case models.ApplicationStatusApproved:
			counts.Approved++
		case models.ApplicationStatusRejected:
			counts.Rejected++
		}
	}
	return counts
}

func countOpenGigs(gigs []models.Gig) int {
	open := 0
	for i := range gigs {
		if gigs[i].IsOpen {
			open++
		}
	}
	return open
}

func countAvailableMachines(machines []models.Machine) int {
	available := 0
	for i := range machines {
		if machines[i].Available {
			available++
		}
	}
	return available
}

func countByApplicantType(apps []models.MachineApplication) (workers, startups int) {
	for i := range apps {
		switch apps[i].ApplicantType {
		case models.ApplicantTypeWorker:
			workers++
		case models.ApplicantTypeStartup:
			startups++
		}
	}
	return workers, startups
}
