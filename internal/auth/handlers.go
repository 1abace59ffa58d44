package auth

import (
	"errors"
	"net/http"

	"worklink-backend/internal/database/models"
	apperrors "worklink-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterWorker handles POST /api/auth/workers/register
// @Summary Register a worker
// @Description Create a new worker account and return an access token
// @Tags authentication
// @Accept json
// @Produce json
// @Param registration body RegisterWorkerRequest true "Worker registration data"
// @Success 201 {object} AuthResponse "Successfully registered"
// @Failure 400 {object} map[string]interface{} "Invalid registration data"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Router /api/auth/workers/register [post]
func (h *AuthHandler) RegisterWorker(c *gin.Context) {
	var req RegisterWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.RegisterWorker(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// RegisterStartup handles POST /api/auth/startups/register
// @Summary Register a startup
// @Description Create a new startup account and return an access token
// @Tags authentication
// @Accept json
// @Produce json
// @Param registration body RegisterStartupRequest true "Startup registration data"
// @Success 201 {object} AuthResponse "Successfully registered"
// @Failure 400 {object} map[string]interface{} "Invalid registration data"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Router /api/auth/startups/register [post]
func (h *AuthHandler) RegisterStartup(c *gin.Context) {
	var req RegisterStartupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.RegisterStartup(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// RegisterManufacturer handles POST /api/auth/manufacturers/register
// @Summary Register a manufacturer
// @Description Create a new manufacturer account and return an access token
// @Tags authentication
// @Accept json
// @Produce json
// @Param registration body RegisterManufacturerRequest true "Manufacturer registration data"
// @Success 201 {object} AuthResponse "Successfully registered"
// @Failure 400 {object} map[string]interface{} "Invalid registration data"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Router /api/auth/manufacturers/register [post]
func (h *AuthHandler) RegisterManufacturer(c *gin.Context) {
	var req RegisterManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.RegisterManufacturer(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// LoginWorker handles POST /api/auth/workers/login
// @Summary Log in as a worker
// @Description Authenticate a worker by email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse "Successfully authenticated"
// @Failure 400 {object} map[string]interface{} "Invalid login data"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /api/auth/workers/login [post]
func (h *AuthHandler) LoginWorker(c *gin.Context) {
	h.login(c, models.RoleWorker)
}

// LoginStartup handles POST /api/auth/startups/login
// @Summary Log in as a startup
// @Description Authenticate a startup by email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse "Successfully authenticated"
// @Failure 400 {object} map[string]interface{} "Invalid login data"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /api/auth/startups/login [post]
func (h *AuthHandler) LoginStartup(c *gin.Context) {
	h.login(c, models.RoleStartup)
}

// LoginManufacturer handles POST /api/auth/manufacturers/login
// @Summary Log in as a manufacturer
// @Description Authenticate a manufacturer by email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse "Successfully authenticated"
// @Failure 400 {object} map[string]interface{} "Invalid login data"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /api/auth/manufacturers/login [post]
func (h *AuthHandler) LoginManufacturer(c *gin.Context) {
	h.login(c, models.RoleManufacturer)
}

func (h *AuthHandler) login(c *gin.Context, role models.Role) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Login(role, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrEmailExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
