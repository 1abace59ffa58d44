package service_test

import (
	"testing"
	"time"

	"worklink-backend/internal/database/models"
	apperrors "worklink-backend/internal/errors"
	"worklink-backend/internal/mocks"
	"worklink-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type machineApplicationMocks struct {
	apps     *mocks.MockMachineApplicationRepositoryInterface
	machines *mocks.MockMachineRepositoryInterface
	workers  *mocks.MockWorkerRepositoryInterface
	startups *mocks.MockStartupRepositoryInterface
}

func newMachineApplicationTestService(t *testing.T) (*service.MachineApplicationService, machineApplicationMocks) {
	ctrl := gomock.NewController(t)
	m := machineApplicationMocks{
		apps:     mocks.NewMockMachineApplicationRepositoryInterface(ctrl),
		machines: mocks.NewMockMachineRepositoryInterface(ctrl),
		workers:  mocks.NewMockWorkerRepositoryInterface(ctrl),
		startups: mocks.NewMockStartupRepositoryInterface(ctrl),
	}
	svc := service.NewMachineApplicationService(m.apps, m.machines, m.workers, m.startups, validator.New())
	return svc, m
}

func availableMachine(manufacturerID uuid.UUID) *models.Machine {
	return &models.Machine{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		ManufacturerID: manufacturerID,
		Name:           "CNC mill",
		Location:       "Leipzig",
		DailyRate:      120,
		Available:      true,
	}
}

func TestMachineApplicationApply(t *testing.T) {
	t.Run("worker applies", func(t *testing.T) {
		svc, m := newMachineApplicationTestService(t)
		machine := availableMachine(uuid.New())
		applicantID := uuid.New()

		m.machines.EXPECT().GetByID(machine.ID).Return(machine, nil)
		m.apps.EXPECT().Create(gomock.Any()).DoAndReturn(func(app *models.MachineApplication) error {
			assert.Equal(t, models.ApplicantTypeWorker, app.ApplicantType)
			assert.Equal(t, models.ApplicationStatusPending, app.Status)
			app.ID = uuid.New()
			return nil
		})

		resp, err := svc.Apply(machine.ID, applicantID, models.RoleWorker, &service.ApplyRequest{Message: "Need it for a week"})
		require.NoError(t, err)
		assert.Equal(t, "worker", resp.ApplicantType)
		assert.Equal(t, "pending", resp.Status)
		require.NotNil(t, resp.Machine)
		assert.Equal(t, machine.Name, resp.Machine.Name)
	})

	t.Run("startup applies", func(t *testing.T) {
		svc, m := newMachineApplicationTestService(t)
		machine := availableMachine(uuid.New())

		m.machines.EXPECT().GetByID(machine.ID).Return(machine, nil)
		m.apps.EXPECT().Create(gomock.Any()).DoAndReturn(func(app *models.MachineApplication) error {
			assert.Equal(t, models.ApplicantTypeStartup, app.ApplicantType)
			app.ID = uuid.New()
			return nil
		})

		resp, err := svc.Apply(machine.ID, uuid.New(), models.RoleStartup, &service.ApplyRequest{})
		require.NoError(t, err)
		assert.Equal(t, "startup", resp.ApplicantType)
	})

	t.Run("manufacturer cannot apply", func(t *testing.T) {
		svc, _ := newMachineApplicationTestService(t)

		_, err := svc.Apply(uuid.New(), uuid.New(), models.RoleManufacturer, &service.ApplyRequest{})
		assert.ErrorIs(t, err, apperrors.ErrRoleNotEligible)
		assert.True(t, apperrors.IsAuthentication(err))
	})

	t.Run("duplicate application surfaces as conflict", func(t *testing.T) {
		svc, m := newMachineApplicationTestService(t)
		machine := availableMachine(uuid.New())

		m.machines.EXPECT().GetByID(machine.ID).Return(machine, nil)
		m.apps.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

		_, err := svc.Apply(machine.ID, uuid.New(), models.RoleWorker, &service.ApplyRequest{})
		assert.ErrorIs(t, err, apperrors.ErrAlreadyAppliedToMachine)
	})

	t.Run("unknown machine", func(t *testing.T) {
		svc, m := newMachineApplicationTestService(t)
		machineID := uuid.New()

		m.machines.EXPECT().GetByID(machineID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Apply(machineID, uuid.New(), models.RoleWorker, &service.ApplyRequest{})
		assert.ErrorIs(t, err, apperrors.ErrMachineNotFound)
	})

	t.Run("unavailable machine rejects applications", func(t *testing.T) {
		svc, m := newMachineApplicationTestService(t)
		machine := availableMachine(uuid.New())
		machine.Available = false

		m.machines.EXPECT().GetByID(machine.ID).Return(machine, nil)

		_, err := svc.Apply(machine.ID, uuid.New(), models.RoleWorker, &service.ApplyRequest{})
		assert.ErrorIs(t, err, apperrors.ErrMachineUnavailable)
	})
}

func TestMachineApplicationListForApplicant(t *testing.T) {
	t.Run("lists worker applications with machine summaries", func(t *testing.T) {
		svc, m := newMachineApplicationTestService(t)
		applicantID := uuid.New()
		machine := availableMachine(uuid.New())

		apps := []models.MachineApplication{
			{
				BaseModel:     models.BaseModel{ID: uuid.New()},
				MachineID:     machine.ID,
				ApplicantID:   applicantID,
				ApplicantType: models.ApplicantTypeWorker,
				Status:        models.ApplicationStatusApproved,
				AppliedAt:     time.Now().UTC(),
				Machine:       *machine,
			},
		}
		m.apps.EXPECT().GetByApplicant(applicantID, models.ApplicantTypeWorker, 10, 0).Return(apps, int64(1), nil)

		resp, err := svc.ListForApplicant(applicantID, models.RoleWorker, 1, 10)
		require.NoError(t, err)
		require.Len(t, resp.Applications, 1)
		assert.Equal(t, "approved", resp.Applications[0].Status)
		require.NotNil(t, resp.Applications[0].Machine)
		assert.Equal(t, machine.DailyRate, resp.Applications[0].Machine.DailyRate)
	})

	t.Run("manufacturer has no applicant side", func(t *testing.T) {
		svc, _ := newMachineApplicationTestService(t)

		_, err := svc.ListForApplicant(uuid.New(), models.RoleManufacturer, 1, 10)
		assert.ErrorIs(t, err, apperrors.ErrRoleNotEligible)
	})
}

func TestMachineApplicationListForManufacturer(t *testing.T) {
	t.Run("resolves applicant summaries per type", func(t *testing.T) {
		svc, m := newMachineApplicationTestService(t)
		manufacturerID := uuid.New()
		machine := availableMachine(manufacturerID)

		worker := models.Worker{
			BaseModel: models.BaseModel{ID: uuid.New()},
			FullName:  "Jo Lindqvist",
			Email:     "jo@example.com",
		}
		startup := models.Startup{
			BaseModel:   models.BaseModel{ID: uuid.New()},
			CompanyName: "Acme Robotics",
			Email:       "ops@acme.example.com",
		}

		machineIDs := []uuid.UUID{machine.ID}
		apps := []models.MachineApplication{
			{
				BaseModel:     models.BaseModel{ID: uuid.New()},
				MachineID:     machine.ID,
				ApplicantID:   worker.ID,
				ApplicantType: models.ApplicantTypeWorker,
				Status:        models.ApplicationStatusPending,
				AppliedAt:     time.Now().UTC(),
				Machine:       *machine,
			},
			{
				BaseModel:     models.BaseModel{ID: uuid.New()},
				MachineID:     machine.ID,
				ApplicantID:   startup.ID,
				ApplicantType: models.ApplicantTypeStartup,
				Status:        models.ApplicationStatusPending,
				AppliedAt:     time.Now().UTC(),
				Machine:       *machine,
			},
		}

		m.machines.EXPECT().GetIDsByManufacturerID(manufacturerID).Return(machineIDs, nil)
		m.apps.EXPECT().GetByMachineIDs(machineIDs, nil, nil, "applied_at DESC", 10, 0).Return(apps, int64(2), nil)
		m.workers.EXPECT().GetByIDs([]uuid.UUID{worker.ID}).Return([]models.Worker{worker}, nil)
		m.startups.EXPECT().GetByIDs([]uuid.UUID{startup.ID}).Return([]models.Startup{startup}, nil)

		resp, err := svc.ListForManufacturer(manufacturerID, service.MachineApplicationFilters{})
		require.NoError(t, err)
		require.Len(t, resp.Applications, 2)

		require.NotNil(t, resp.Applications[0].Applicant)
		assert.Equal(t, "Jo Lindqvist", resp.Applications[0].Applicant.Name)
		assert.Equal(t, "worker", resp.Applications[0].Applicant.Type)

		require.NotNil(t, resp.Applications[1].Applicant)
		assert.Equal(t, "Acme Robotics", resp.Applications[1].Applicant.Name)
		assert.Equal(t, "startup", resp.Applications[1].Applicant.Type)
	})

	t.Run("filters by applicant type", func(t *testing.T) {
		svc, m := newMachineApplicationTestService(t)
		manufacturerID := uuid.New()

		applicantType := models.ApplicantTypeStartup
		m.machines.EXPECT().GetIDsByManufacturerID(manufacturerID).Return([]uuid.UUID{}, nil)
		m.apps.EXPECT().GetByMachineIDs([]uuid.UUID{}, nil, &applicantType, "applied_at DESC", 10, 0).Return(nil, int64(0), nil)
		m.workers.EXPECT().GetByIDs(gomock.Nil()).Return(nil, nil)
		m.startups.EXPECT().GetByIDs(gomock.Nil()).Return(nil, nil)

		resp, err := svc.ListForManufacturer(manufacturerID, service.MachineApplicationFilters{ApplicantType: "startup"})
		require.NoError(t, err)
		assert.Empty(t, resp.Applications)
	})

	t.Run("invalid applicant type filter", func(t *testing.T) {
		svc, _ := newMachineApplicationTestService(t)

		_, err := svc.ListForManufacturer(uuid.New(), service.MachineApplicationFilters{ApplicantType: "robot"})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("invalid status filter", func(t *testing.T) {
		svc, _ := newMachineApplicationTestService(t)

		_, err := svc.ListForManufacturer(uuid.New(), service.MachineApplicationFilters{Status: "open"})
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestMachineApplicationDecide(t *testing.T) {
	manufacturerID := uuid.New()
	machine := availableMachine(manufacturerID)

	pendingApp := func() *models.MachineApplication {
		return &models.MachineApplication{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			MachineID:     machine.ID,
			ApplicantID:   uuid.New(),
			ApplicantType: models.ApplicantTypeWorker,
			Status:        models.ApplicationStatusPending,
			AppliedAt:     time.Now().UTC(),
			Machine:       *machine,
		}
	}

	t.Run("reject succeeds", func(t *testing.T) {
		svc, m := newMachineApplicationTestService(t)
		app := pendingApp()

		m.apps.EXPECT().GetByID(app.ID).Return(app, nil)
		m.apps.EXPECT().UpdateStatusIfPending(app.ID, models.ApplicationStatusRejected).Return(int64(1), nil)

		resp, err := svc.Decide(app.ID, manufacturerID, &service.DecideRequest{Status: "rejected"})
		require.NoError(t, err)
		assert.Equal(t, "rejected", resp.Status)
	})

	t.Run("non-owner gets authorization error", func(t *testing.T) {
		svc, m := newMachineApplicationTestService(t)
		app := pendingApp()

		m.apps.EXPECT().GetByID(app.ID).Return(app, nil)

		_, err := svc.Decide(app.ID, uuid.New(), &service.DecideRequest{Status: "approved"})
		assert.ErrorIs(t, err, apperrors.ErrNotMachineOwner)
		assert.True(t, apperrors.IsAuthorization(err))
	})

	t.Run("already decided surfaces as conflict", func(t *testing.T) {
		svc, m := newMachineApplicationTestService(t)
		app := pendingApp()

		m.apps.EXPECT().GetByID(app.ID).Return(app, nil)
		m.apps.EXPECT().UpdateStatusIfPending(app.ID, models.ApplicationStatusApproved).Return(int64(0), nil)

		_, err := svc.Decide(app.ID, manufacturerID, &service.DecideRequest{Status: "approved"})
		assert.ErrorIs(t, err, apperrors.ErrMachineApplicationDecided)
	})

	t.Run("pending is not a decision", func(t *testing.T) {
		svc, _ := newMachineApplicationTestService(t)

		_, err := svc.Decide(uuid.New(), manufacturerID, &service.DecideRequest{Status: "pending"})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("unknown application", func(t *testing.T) {
		svc, m := newMachineApplicationTestService(t)
		appID := uuid.New()

		m.apps.EXPECT().GetByID(appID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Decide(appID, manufacturerID, &service.DecideRequest{Status: "approved"})
		assert.ErrorIs(t, err, apperrors.ErrMachineApplicationNotFound)
	})
}
