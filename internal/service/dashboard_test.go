package service_test

import (
	"testing"

	"worklink-backend/internal/database/models"
	"worklink-backend/internal/mocks"
	"worklink-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dashboardMocks struct {
	gigApps     *mocks.MockGigApplicationRepositoryInterface
	machineApps *mocks.MockMachineApplicationRepositoryInterface
	gigs        *mocks.MockGigRepositoryInterface
	machines    *mocks.MockMachineRepositoryInterface
}

func newDashboardTestService(t *testing.T) (*service.DashboardService, dashboardMocks) {
	ctrl := gomock.NewController(t)
	m := dashboardMocks{
		gigApps:     mocks.NewMockGigApplicationRepositoryInterface(ctrl),
		machineApps: mocks.NewMockMachineApplicationRepositoryInterface(ctrl),
		gigs:        mocks.NewMockGigRepositoryInterface(ctrl),
		machines:    mocks.NewMockMachineRepositoryInterface(ctrl),
	}
	return service.NewDashboardService(m.gigApps, m.machineApps, m.gigs, m.machines), m
}

func gigAppWithStatus(status models.ApplicationStatus) models.GigApplication {
	return models.GigApplication{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Status:    status,
	}
}

func machineAppWith(status models.ApplicationStatus, applicantType models.ApplicantType) models.MachineApplication {
	return models.MachineApplication{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		ApplicantType: applicantType,
		Status:        status,
	}
}

func TestWorkerStats(t *testing.T) {
	svc, m := newDashboardTestService(t)
	workerID := uuid.New()

	gigApps := []models.GigApplication{
		gigAppWithStatus(models.ApplicationStatusPending),
		gigAppWithStatus(models.ApplicationStatusApproved),
		gigAppWithStatus(models.ApplicationStatusApproved),
		gigAppWithStatus(models.ApplicationStatusRejected),
	}
	machineApps := []models.MachineApplication{
		machineAppWith(models.ApplicationStatusPending, models.ApplicantTypeWorker),
	}

	m.gigApps.EXPECT().GetByWorkerID(workerID, -1, 0).Return(gigApps, int64(4), nil)
	m.machineApps.EXPECT().GetByApplicant(workerID, models.ApplicantTypeWorker, -1, 0).Return(machineApps, int64(1), nil)

	stats, err := svc.WorkerStats(workerID)
	require.NoError(t, err)
	assert.Equal(t, service.StatusCounts{Total: 4, Pending: 1, Approved: 2, Rejected: 1}, stats.GigApplications)
	assert.Equal(t, service.StatusCounts{Total: 1, Pending: 1}, stats.MachineApplications)
}

func TestStartupStats(t *testing.T) {
	svc, m := newDashboardTestService(t)
	startupID := uuid.New()

	open := models.Gig{BaseModel: models.BaseModel{ID: uuid.New()}, StartupID: startupID, IsOpen: true}
	closed := models.Gig{BaseModel: models.BaseModel{ID: uuid.New()}, StartupID: startupID, IsOpen: false}
	gigs := []models.Gig{open, closed}

	received := []models.GigApplication{
		gigAppWithStatus(models.ApplicationStatusPending),
		gigAppWithStatus(models.ApplicationStatusRejected),
	}
	submitted := []models.MachineApplication{
		machineAppWith(models.ApplicationStatusApproved, models.ApplicantTypeStartup),
	}

	m.gigs.EXPECT().GetByStartupID(startupID, -1, 0).Return(gigs, int64(2), nil)
	m.gigApps.EXPECT().GetByGigIDs([]uuid.UUID{open.ID, closed.ID}, nil, "", -1, 0).Return(received, int64(2), nil)
	m.machineApps.EXPECT().GetByApplicant(startupID, models.ApplicantTypeStartup, -1, 0).Return(submitted, int64(1), nil)

	stats, err := svc.StartupStats(startupID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GigsTotal)
	assert.Equal(t, 1, stats.GigsOpen)
	assert.Equal(t, service.StatusCounts{Total: 2, Pending: 1, Rejected: 1}, stats.ApplicationsReceived)
	assert.Equal(t, service.StatusCounts{Total: 1, Approved: 1}, stats.MachineApplications)
}

func TestManufacturerStats(t *testing.T) {
	svc, m := newDashboardTestService(t)
	manufacturerID := uuid.New()

	available := models.Machine{BaseModel: models.BaseModel{ID: uuid.New()}, ManufacturerID: manufacturerID, Available: true}
	retired := models.Machine{BaseModel: models.BaseModel{ID: uuid.New()}, ManufacturerID: manufacturerID, Available: false}
	machines := []models.Machine{available, retired}

	received := []models.MachineApplication{
		machineAppWith(models.ApplicationStatusPending, models.ApplicantTypeWorker),
		machineAppWith(models.ApplicationStatusPending, models.ApplicantTypeWorker),
		machineAppWith(models.ApplicationStatusApproved, models.ApplicantTypeStartup),
	}

	m.machines.EXPECT().GetByManufacturerID(manufacturerID, -1, 0).Return(machines, int64(2), nil)
	m.machineApps.EXPECT().GetByMachineIDs([]uuid.UUID{available.ID, retired.ID}, nil, nil, "", -1, 0).Return(received, int64(3), nil)

	stats, err := svc.ManufacturerStats(manufacturerID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.MachinesTotal)
	assert.Equal(t, 1, stats.MachinesAvailable)
	assert.Equal(t, service.StatusCounts{Total: 3, Pending: 2, Approved: 1}, stats.ApplicationsReceived)
	assert.Equal(t, 2, stats.FromWorkers)
	assert.Equal(t, 1, stats.FromStartups)
}
