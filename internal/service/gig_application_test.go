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

func newGigApplicationTestService(t *testing.T) (*service.GigApplicationService, *mocks.MockGigApplicationRepositoryInterface, *mocks.MockGigRepositoryInterface) {
	ctrl := gomock.NewController(t)
	appRepo := mocks.NewMockGigApplicationRepositoryInterface(ctrl)
	gigRepo := mocks.NewMockGigRepositoryInterface(ctrl)
	return service.NewGigApplicationService(appRepo, gigRepo, validator.New()), appRepo, gigRepo
}

func openGig(startupID uuid.UUID) *models.Gig {
	return &models.Gig{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		StartupID:    startupID,
		Title:        "Welder needed",
		Location:     "Hamburg",
		Compensation: "30 EUR/h",
		IsOpen:       true,
	}
}

func TestGigApplicationApply(t *testing.T) {
	t.Run("success creates pending application", func(t *testing.T) {
		svc, appRepo, gigRepo := newGigApplicationTestService(t)
		workerID := uuid.New()
		gig := openGig(uuid.New())

		gigRepo.EXPECT().GetByID(gig.ID).Return(gig, nil)
		appRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(app *models.GigApplication) error {
			assert.Equal(t, gig.ID, app.GigID)
			assert.Equal(t, workerID, app.WorkerID)
			assert.Equal(t, models.ApplicationStatusPending, app.Status)
			assert.False(t, app.AppliedAt.IsZero())
			app.ID = uuid.New()
			return nil
		})

		resp, err := svc.Apply(gig.ID, workerID, models.RoleWorker, &service.ApplyRequest{Message: "I can start Monday"})
		require.NoError(t, err)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, "I can start Monday", resp.Message)
		require.NotNil(t, resp.Gig)
		assert.Equal(t, gig.Title, resp.Gig.Title)
	})

	t.Run("duplicate application surfaces as conflict", func(t *testing.T) {
		svc, appRepo, gigRepo := newGigApplicationTestService(t)
		gig := openGig(uuid.New())

		gigRepo.EXPECT().GetByID(gig.ID).Return(gig, nil)
		appRepo.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

		_, err := svc.Apply(gig.ID, uuid.New(), models.RoleWorker, &service.ApplyRequest{})
		assert.ErrorIs(t, err, apperrors.ErrAlreadyAppliedToGig)
		assert.True(t, apperrors.IsConflict(err))
	})

	t.Run("startup cannot apply to gigs", func(t *testing.T) {
		svc, _, _ := newGigApplicationTestService(t)

		_, err := svc.Apply(uuid.New(), uuid.New(), models.RoleStartup, &service.ApplyRequest{})
		assert.ErrorIs(t, err, apperrors.ErrRoleNotEligible)
		assert.True(t, apperrors.IsAuthentication(err))
	})

	t.Run("manufacturer cannot apply to gigs", func(t *testing.T) {
		svc, _, _ := newGigApplicationTestService(t)

		_, err := svc.Apply(uuid.New(), uuid.New(), models.RoleManufacturer, &service.ApplyRequest{})
		assert.ErrorIs(t, err, apperrors.ErrRoleNotEligible)
	})

	t.Run("unknown gig", func(t *testing.T) {
		svc, _, gigRepo := newGigApplicationTestService(t)
		gigID := uuid.New()

		gigRepo.EXPECT().GetByID(gigID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Apply(gigID, uuid.New(), models.RoleWorker, &service.ApplyRequest{})
		assert.ErrorIs(t, err, apperrors.ErrGigNotFound)
	})

	t.Run("closed gig rejects applications", func(t *testing.T) {
		svc, _, gigRepo := newGigApplicationTestService(t)
		gig := openGig(uuid.New())
		gig.IsOpen = false

		gigRepo.EXPECT().GetByID(gig.ID).Return(gig, nil)

		_, err := svc.Apply(gig.ID, uuid.New(), models.RoleWorker, &service.ApplyRequest{})
		assert.ErrorIs(t, err, apperrors.ErrGigClosed)
	})

	t.Run("message over limit fails validation", func(t *testing.T) {
		svc, _, _ := newGigApplicationTestService(t)

		long := make([]byte, 1001)
		for i := range long {
			long[i] = 'a'
		}
		_, err := svc.Apply(uuid.New(), uuid.New(), models.RoleWorker, &service.ApplyRequest{Message: string(long)})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

func TestGigApplicationListForWorker(t *testing.T) {
	svc, appRepo, _ := newGigApplicationTestService(t)
	workerID := uuid.New()
	gig := openGig(uuid.New())

	apps := []models.GigApplication{
		{
			BaseModel: models.BaseModel{ID: uuid.New()},
			GigID:     gig.ID,
			WorkerID:  workerID,
			Status:    models.ApplicationStatusPending,
			AppliedAt: time.Now().UTC(),
			Gig:       *gig,
		},
	}
	appRepo.EXPECT().GetByWorkerID(workerID, 10, 0).Return(apps, int64(1), nil)

	resp, err := svc.ListForWorker(workerID, 0, 0)
	require.NoError(t, err)
	require.Len(t, resp.Applications, 1)
	require.NotNil(t, resp.Applications[0].Gig)
	assert.Equal(t, gig.Title, resp.Applications[0].Gig.Title)
	assert.Nil(t, resp.Applications[0].Worker)
	assert.Equal(t, 1, resp.Pagination.Page)
	assert.Equal(t, int64(1), resp.Pagination.Total)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
}

func TestGigApplicationListForStartup(t *testing.T) {
	t.Run("filters by status and includes worker summaries", func(t *testing.T) {
		svc, appRepo, gigRepo := newGigApplicationTestService(t)
		startupID := uuid.New()
		gig := openGig(startupID)
		worker := models.Worker{
			BaseModel: models.BaseModel{ID: uuid.New()},
			FullName:  "Mara Voss",
			Email:     "mara@example.com",
		}

		gigIDs := []uuid.UUID{gig.ID}
		gigRepo.EXPECT().GetIDsByStartupID(startupID).Return(gigIDs, nil)

		pending := models.ApplicationStatusPending
		apps := []models.GigApplication{
			{
				BaseModel: models.BaseModel{ID: uuid.New()},
				GigID:     gig.ID,
				WorkerID:  worker.ID,
				Status:    pending,
				AppliedAt: time.Now().UTC(),
				Gig:       *gig,
				Worker:    worker,
			},
		}
		appRepo.EXPECT().GetByGigIDs(gigIDs, &pending, "applied_at DESC", 10, 0).Return(apps, int64(1), nil)

		resp, err := svc.ListForStartup(startupID, service.GigApplicationFilters{Status: "pending"})
		require.NoError(t, err)
		require.Len(t, resp.Applications, 1)
		require.NotNil(t, resp.Applications[0].Worker)
		assert.Equal(t, "Mara Voss", resp.Applications[0].Worker.FullName)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		svc, _, _ := newGigApplicationTestService(t)

		_, err := svc.ListForStartup(uuid.New(), service.GigApplicationFilters{Status: "archived"})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("invalid sort field", func(t *testing.T) {
		svc, _, _ := newGigApplicationTestService(t)

		_, err := svc.ListForStartup(uuid.New(), service.GigApplicationFilters{Sort: "worker_id"})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("descending sort maps onto order clause", func(t *testing.T) {
		svc, appRepo, gigRepo := newGigApplicationTestService(t)
		startupID := uuid.New()

		gigRepo.EXPECT().GetIDsByStartupID(startupID).Return([]uuid.UUID{}, nil)
		appRepo.EXPECT().GetByGigIDs([]uuid.UUID{}, nil, "status DESC", 10, 0).Return(nil, int64(0), nil)

		resp, err := svc.ListForStartup(startupID, service.GigApplicationFilters{Sort: "-status"})
		require.NoError(t, err)
		assert.Empty(t, resp.Applications)
	})
}

func TestGigApplicationDecide(t *testing.T) {
	startupID := uuid.New()
	gig := openGig(startupID)

	pendingApp := func() *models.GigApplication {
		return &models.GigApplication{
			BaseModel: models.BaseModel{ID: uuid.New()},
			GigID:     gig.ID,
			WorkerID:  uuid.New(),
			Status:    models.ApplicationStatusPending,
			AppliedAt: time.Now().UTC(),
			Gig:       *gig,
		}
	}

	t.Run("approve succeeds", func(t *testing.T) {
		svc, appRepo, _ := newGigApplicationTestService(t)
		app := pendingApp()

		appRepo.EXPECT().GetByID(app.ID).Return(app, nil)
		appRepo.EXPECT().UpdateStatusIfPending(app.ID, models.ApplicationStatusApproved).Return(int64(1), nil)

		resp, err := svc.Decide(app.ID, startupID, &service.DecideRequest{Status: "approved"})
		require.NoError(t, err)
		assert.Equal(t, "approved", resp.Status)
	})

	t.Run("non-owner gets authorization error", func(t *testing.T) {
		svc, appRepo, _ := newGigApplicationTestService(t)
		app := pendingApp()

		appRepo.EXPECT().GetByID(app.ID).Return(app, nil)

		_, err := svc.Decide(app.ID, uuid.New(), &service.DecideRequest{Status: "approved"})
		assert.ErrorIs(t, err, apperrors.ErrNotGigOwner)
		assert.True(t, apperrors.IsAuthorization(err))
	})

	t.Run("already decided surfaces as conflict", func(t *testing.T) {
		svc, appRepo, _ := newGigApplicationTestService(t)
		app := pendingApp()

		appRepo.EXPECT().GetByID(app.ID).Return(app, nil)
		appRepo.EXPECT().UpdateStatusIfPending(app.ID, models.ApplicationStatusRejected).Return(int64(0), nil)

		_, err := svc.Decide(app.ID, startupID, &service.DecideRequest{Status: "rejected"})
		assert.ErrorIs(t, err, apperrors.ErrGigApplicationDecided)
		assert.True(t, apperrors.IsConflict(err))
	})

	t.Run("pending is not a decision", func(t *testing.T) {
		svc, _, _ := newGigApplicationTestService(t)

		_, err := svc.Decide(uuid.New(), startupID, &service.DecideRequest{Status: "pending"})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("unknown status value", func(t *testing.T) {
		svc, _, _ := newGigApplicationTestService(t)

		_, err := svc.Decide(uuid.New(), startupID, &service.DecideRequest{Status: "maybe"})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("missing status fails validation", func(t *testing.T) {
		svc, _, _ := newGigApplicationTestService(t)

		_, err := svc.Decide(uuid.New(), startupID, &service.DecideRequest{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("unknown application", func(t *testing.T) {
		svc, appRepo, _ := newGigApplicationTestService(t)
		appID := uuid.New()

		appRepo.EXPECT().GetByID(appID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Decide(appID, startupID, &service.DecideRequest{Status: "approved"})
		assert.ErrorIs(t, err, apperrors.ErrGigApplicationNotFound)
	})
}
