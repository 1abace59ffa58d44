package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"worklink-backend/internal/database/models"
	apperrors "worklink-backend/internal/errors"
	"worklink-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testJWTSecret = "test-signing-key-for-jwt-operations"

func newTestService(t *testing.T) (*AuthService, *mocks.MockWorkerRepositoryInterface, *mocks.MockStartupRepositoryInterface, *mocks.MockManufacturerRepositoryInterface) {
	ctrl := gomock.NewController(t)
	workers := mocks.NewMockWorkerRepositoryInterface(ctrl)
	startups := mocks.NewMockStartupRepositoryInterface(ctrl)
	manufacturers := mocks.NewMockManufacturerRepositoryInterface(ctrl)
	service := NewAuthService(workers, startups, manufacturers, testJWTSecret)
	return service, workers, startups, manufacturers
}

func TestJWTOperations(t *testing.T) {
	service, _, _, _ := newTestService(t)

	principalID := uuid.New()

	token, err := service.GenerateJWT(principalID, models.RoleWorker)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, principalID, claims.PrincipalID)
	assert.Equal(t, models.RoleWorker, claims.Role)

	t.Run("invalid token", func(t *testing.T) {
		_, err := service.ValidateJWT("invalid-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewAuthService(nil, nil, nil, "another-secret")
		_, err := other.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestRegisterWorker(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service, workers, _, _ := newTestService(t)

		workers.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(worker *models.Worker) error {
				assert.Equal(t, "jane@example.com", worker.Email)
				assert.NotEqual(t, "s3cret-pass", worker.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(worker.PasswordHash), []byte("s3cret-pass")))
				worker.ID = uuid.New()
				return nil
			})

		resp, err := service.RegisterWorker(&RegisterWorkerRequest{
			Email:    "jane@example.com",
			Password: "s3cret-pass",
			FullName: "Jane Doe",
		})
		require.NoError(t, err)
		assert.Equal(t, models.RoleWorker, resp.Role)
		assert.Equal(t, "Jane Doe", resp.Name)
		assert.NotEmpty(t, resp.AccessToken)

		claims, err := service.ValidateJWT(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, resp.PrincipalID, claims.PrincipalID)
		assert.Equal(t, models.RoleWorker, claims.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		service, workers, _, _ := newTestService(t)

		workers.EXPECT().
			Create(gomock.Any()).
			Return(gorm.ErrDuplicatedKey)

		_, err := service.RegisterWorker(&RegisterWorkerRequest{
			Email:    "jane@example.com",
			Password: "s3cret-pass",
			FullName: "Jane Doe",
		})
		assert.ErrorIs(t, err, apperrors.ErrEmailExists)
	})

	t.Run("invalid email", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.RegisterWorker(&RegisterWorkerRequest{
			Email:    "not-an-email",
			Password: "s3cret-pass",
			FullName: "Jane Doe",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("short password", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.RegisterWorker(&RegisterWorkerRequest{
			Email:    "jane@example.com",
			Password: "short",
			FullName: "Jane Doe",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

func TestRegisterStartup(t *testing.T) {
	service, _, startups, _ := newTestService(t)

	startups.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(startup *models.Startup) error {
			startup.ID = uuid.New()
			return nil
		})

	resp, err := service.RegisterStartup(&RegisterStartupRequest{
		Email:       "founder@acme.io",
		Password:    "s3cret-pass",
		CompanyName: "Acme Robotics",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStartup, resp.Role)
	assert.Equal(t, "Acme Robotics", resp.Name)
}

func TestRegisterManufacturer(t *testing.T) {
	service, _, _, manufacturers := newTestService(t)

	manufacturers.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(manufacturer *models.Manufacturer) error {
			manufacturer.ID = uuid.New()
			return nil
		})

	resp, err := service.RegisterManufacturer(&RegisterManufacturerRequest{
		Email:       "ops@millworks.com",
		Password:    "s3cret-pass",
		CompanyName: "Millworks GmbH",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleManufacturer, resp.Role)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	worker := &models.Worker{
		FullName:     "Jane Doe",
		Email:        "jane@example.com",
		PasswordHash: string(hash),
	}
	worker.ID = uuid.New()

	t.Run("success", func(t *testing.T) {
		service, workers, _, _ := newTestService(t)

		workers.EXPECT().
			GetByEmail("jane@example.com").
			Return(worker, nil)

		resp, err := service.Login(models.RoleWorker, &LoginRequest{
			Email:    "jane@example.com",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)
		assert.Equal(t, worker.ID, resp.PrincipalID)
		assert.Equal(t, models.RoleWorker, resp.Role)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		service, workers, _, _ := newTestService(t)

		workers.EXPECT().
			GetByEmail("jane@example.com").
			Return(worker, nil)

		_, err := service.Login(models.RoleWorker, &LoginRequest{
			Email:    "jane@example.com",
			Password: "wrong-pass",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		service, workers, _, _ := newTestService(t)

		workers.EXPECT().
			GetByEmail("nobody@example.com").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Login(models.RoleWorker, &LoginRequest{
			Email:    "nobody@example.com",
			Password: "s3cret-pass",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("startup login", func(t *testing.T) {
		service, _, startups, _ := newTestService(t)

		startup := &models.Startup{
			CompanyName:  "Acme Robotics",
			Email:        "founder@acme.io",
			PasswordHash: string(hash),
		}
		startup.ID = uuid.New()

		startups.EXPECT().
			GetByEmail("founder@acme.io").
			Return(startup, nil)

		resp, err := service.Login(models.RoleStartup, &LoginRequest{
			Email:    "founder@acme.io",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)
		assert.Equal(t, models.RoleStartup, resp.Role)
	})

	t.Run("invalid role", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.Login("admin", &LoginRequest{
			Email:    "jane@example.com",
			Password: "s3cret-pass",
		})
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, _, _, _ := newTestService(t)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		principalID, ok := GetPrincipalID(c)
		require.True(t, ok)
		role, ok := GetRole(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"principal_id": principalID, "role": role})
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := service.GenerateJWT(uuid.New(), models.RoleStartup)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, _, _, _ := newTestService(t)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.POST("/gigs", middleware.RequireAuth(), middleware.RequireRole(models.RoleStartup), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	t.Run("allowed role", func(t *testing.T) {
		token, err := service.GenerateJWT(uuid.New(), models.RoleStartup)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/gigs", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("forbidden role", func(t *testing.T) {
		token, err := service.GenerateJWT(uuid.New(), models.RoleWorker)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/gigs", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/gigs", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
