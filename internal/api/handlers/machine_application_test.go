package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"worklink-backend/internal/database/models"
	apperrors "worklink-backend/internal/errors"
	"worklink-backend/internal/mocks"
	"worklink-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMachineApplicationTestRouter(t *testing.T, principalID uuid.UUID, role models.Role) (*gin.Engine, *mocks.MockMachineApplicationServiceInterface) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockMachineApplicationServiceInterface(ctrl)
	handler := NewMachineApplicationHandler(svc)

	router := gin.New()
	authed := router.Group("", authenticate(principalID, role))
	authed.POST("/machines/:id/apply", handler.Apply)
	authed.GET("/applications/machines/mine", handler.ListMine)
	authed.GET("/applications/machines", handler.ListReceived)
	authed.PUT("/applications/machines/:id/status", handler.Decide)
	return router, svc
}

func TestMachineApplicationApplyHandler(t *testing.T) {
	t.Run("startup applies successfully", func(t *testing.T) {
		startupID := uuid.New()
		router, svc := newMachineApplicationTestRouter(t, startupID, models.RoleStartup)
		machineID := uuid.New()

		svc.EXPECT().
			Apply(machineID, startupID, models.RoleStartup, &service.ApplyRequest{Message: "two weeks"}).
			Return(&service.MachineApplicationResponse{
				ID:            uuid.New(),
				MachineID:     machineID,
				ApplicantID:   startupID,
				ApplicantType: "startup",
				Status:        "pending",
			}, nil)

		body, _ := json.Marshal(gin.H{"message": "two weeks"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/machines/"+machineID.String()+"/apply", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp service.MachineApplicationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "startup", resp.ApplicantType)
	})

	t.Run("manufacturer applying returns 401", func(t *testing.T) {
		manufacturerID := uuid.New()
		router, svc := newMachineApplicationTestRouter(t, manufacturerID, models.RoleManufacturer)
		machineID := uuid.New()

		svc.EXPECT().
			Apply(machineID, manufacturerID, models.RoleManufacturer, gomock.Any()).
			Return(nil, apperrors.ErrRoleNotEligible)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/machines/"+machineID.String()+"/apply", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unavailable machine returns 409", func(t *testing.T) {
		workerID := uuid.New()
		router, svc := newMachineApplicationTestRouter(t, workerID, models.RoleWorker)
		machineID := uuid.New()

		svc.EXPECT().
			Apply(machineID, workerID, models.RoleWorker, gomock.Any()).
			Return(nil, apperrors.ErrMachineUnavailable)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/machines/"+machineID.String()+"/apply", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("malformed machine id returns 400", func(t *testing.T) {
		router, _ := newMachineApplicationTestRouter(t, uuid.New(), models.RoleWorker)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/machines/bad/apply", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMachineApplicationListMineHandler(t *testing.T) {
	startupID := uuid.New()
	router, svc := newMachineApplicationTestRouter(t, startupID, models.RoleStartup)

	svc.EXPECT().ListForApplicant(startupID, models.RoleStartup, 1, 10).Return(&service.MachineApplicationListResponse{
		Applications: []service.MachineApplicationResponse{{ID: uuid.New(), Status: "approved", ApplicantType: "startup"}},
		Pagination:   service.Pagination{Page: 1, Limit: 10, Total: 1, TotalPages: 1},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/applications/machines/mine", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp service.MachineApplicationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Applications, 1)
	assert.Equal(t, "approved", resp.Applications[0].Status)
}

func TestMachineApplicationListReceivedHandler(t *testing.T) {
	manufacturerID := uuid.New()
	router, svc := newMachineApplicationTestRouter(t, manufacturerID, models.RoleManufacturer)

	svc.EXPECT().
		ListForManufacturer(manufacturerID, service.MachineApplicationFilters{
			Status:        "pending",
			ApplicantType: "worker",
			Sort:          "status",
			Page:          1,
			Limit:         10,
		}).
		Return(&service.MachineApplicationListResponse{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/applications/machines?status=pending&applicant_type=worker&sort=status", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMachineApplicationDecideHandler(t *testing.T) {
	t.Run("reject returns decided application", func(t *testing.T) {
		manufacturerID := uuid.New()
		router, svc := newMachineApplicationTestRouter(t, manufacturerID, models.RoleManufacturer)
		applicationID := uuid.New()

		svc.EXPECT().
			Decide(applicationID, manufacturerID, &service.DecideRequest{Status: "rejected"}).
			Return(&service.MachineApplicationResponse{ID: applicationID, Status: "rejected"}, nil)

		body, _ := json.Marshal(gin.H{"status": "rejected"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/applications/machines/"+applicationID.String()+"/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp service.MachineApplicationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "rejected", resp.Status)
	})

	t.Run("non-owner returns 403", func(t *testing.T) {
		manufacturerID := uuid.New()
		router, svc := newMachineApplicationTestRouter(t, manufacturerID, models.RoleManufacturer)
		applicationID := uuid.New()

		svc.EXPECT().
			Decide(applicationID, manufacturerID, gomock.Any()).
			Return(nil, apperrors.ErrNotMachineOwner)

		body, _ := json.Marshal(gin.H{"status": "approved"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/applications/machines/"+applicationID.String()+"/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("already decided returns 409", func(t *testing.T) {
		manufacturerID := uuid.New()
		router, svc := newMachineApplicationTestRouter(t, manufacturerID, models.RoleManufacturer)
		applicationID := uuid.New()

		svc.EXPECT().
			Decide(applicationID, manufacturerID, gomock.Any()).
			Return(nil, apperrors.ErrMachineApplicationDecided)

		body, _ := json.Marshal(gin.H{"status": "approved"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/applications/machines/"+applicationID.String()+"/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
