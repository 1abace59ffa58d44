package handlers

import (
	"net/http"

	"worklink-backend/internal/auth"
	"worklink-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MachineApplicationHandler handles HTTP requests for the machine application lifecycle
type MachineApplicationHandler struct {
	applicationService service.MachineApplicationServiceInterface
}

// NewMachineApplicationHandler creates a new machine application handler
func NewMachineApplicationHandler(applicationService service.MachineApplicationServiceInterface) *MachineApplicationHandler {
	return &MachineApplicationHandler{
		applicationService: applicationService,
	}
}

// Apply handles POST /machines/:id/apply
// @Summary Apply to a machine
// @Description Submit a pending application to an available machine. Workers and startups may apply; each may apply to a machine once.
// @Tags machine-applications
// @Accept json
// @Produce json
// @Param id path string true "Machine ID (UUID)"
// @Param application body service.ApplyRequest true "Application data"
// @Success 201 {object} service.MachineApplicationResponse "Successfully submitted application"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Caller's role may not apply to machines"
// @Failure 404 {object} ErrorResponse "Machine not found"
// @Failure 409 {object} ErrorResponse "Already applied to this machine"
// @Security BearerAuth
// @Router /machines/{id}/apply [post]
func (h *MachineApplicationHandler) Apply(c *gin.Context) {
	principalID, ok := auth.GetPrincipalID(c)
	role, roleOK := auth.GetRole(c)
	if !ok || !roleOK {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	machineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid machine ID"})
		return
	}

	var req service.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.applicationService.Apply(machineID, principalID, role, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

// ListMine handles GET /applications/machines/mine
// @Summary List my machine applications
// @Description List the authenticated caller's machine applications, most recent first
// @Tags machine-applications
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Number of items per page" default(10)
// @Success 200 {object} service.MachineApplicationListResponse "Successfully retrieved applications"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /applications/machines/mine [get]
func (h *MachineApplicationHandler) ListMine(c *gin.Context) {
	principalID, ok := auth.GetPrincipalID(c)
	role, roleOK := auth.GetRole(c)
	if !ok || !roleOK {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, limit := parsePageLimit(c)

	resp, err := h.applicationService.ListForApplicant(principalID, role, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListReceived handles GET /applications/machines
// @Summary List applications to my machines
// @Description List applications submitted against any machine owned by the authenticated manufacturer
// @Tags machine-applications
// @Accept json
// @Produce json
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Param applicant_type query string false "Filter by applicant type (worker, startup)"
// @Param sort query string false "Sort order (applied_at, -applied_at, status, -status)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Number of items per page" default(10)
// @Success 200 {object} service.MachineApplicationListResponse "Successfully retrieved applications"
// @Failure 400 {object} ErrorResponse "Invalid filter or sort parameter"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /applications/machines [get]
func (h *MachineApplicationHandler) ListReceived(c *gin.Context) {
	principalID, ok := auth.GetPrincipalID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, limit := parsePageLimit(c)
	filters := service.MachineApplicationFilters{
		Status:        c.Query("status"),
		ApplicantType: c.Query("applicant_type"),
		Sort:          c.Query("sort"),
		Page:          page,
		Limit:         limit,
	}

	resp, err := h.applicationService.ListForManufacturer(principalID, filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Decide handles PUT /applications/machines/:id/status
// @Summary Decide a machine application
// @Description Approve or reject a pending application to a machine owned by the authenticated manufacturer. Decisions are final.
// @Tags machine-applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID (UUID)"
// @Param decision body service.DecideRequest true "Decision data"
// @Success 200 {object} service.MachineApplicationResponse "Successfully decided application"
// @Failure 400 {object} ErrorResponse "Invalid decision"
// @Failure 403 {object} ErrorResponse "Caller does not own the machine"
// @Failure 404 {object} ErrorResponse "Application not found"
// @Failure 409 {object} ErrorResponse "Application already decided"
// @Security BearerAuth
// @Router /applications/machines/{id}/status [put]
func (h *MachineApplicationHandler) Decide(c *gin.Context) {
	principalID, ok := auth.GetPrincipalID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}

	var req service.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.applicationService.Decide(applicationID, principalID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}
