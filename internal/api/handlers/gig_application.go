package handlers

import (
	"net/http"

	"worklink-backend/internal/auth"
	"worklink-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GigApplicationHandler handles HTTP requests for the gig application lifecycle
type GigApplicationHandler struct {
	applicationService service.GigApplicationServiceInterface
}

// NewGigApplicationHandler creates a new gig application handler
func NewGigApplicationHandler(applicationService service.GigApplicationServiceInterface) *GigApplicationHandler {
	return &GigApplicationHandler{
		applicationService: applicationService,
	}
}

// Apply handles POST /gigs/:id/apply
// @Summary Apply to a gig
// @Description Submit a pending application to an open gig. Only workers may apply, and each worker may apply to a gig once.
// @Tags gig-applications
// @Accept json
// @Produce json
// @Param id path string true "Gig ID (UUID)"
// @Param application body service.ApplyRequest true "Application data"
// @Success 201 {object} service.GigApplicationResponse "Successfully submitted application"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Caller's role may not apply to gigs"
// @Failure 404 {object} ErrorResponse "Gig not found"
// @Failure 409 {object} ErrorResponse "Already applied to this gig"
// @Security BearerAuth
// @Router /gigs/{id}/apply [post]
func (h *GigApplicationHandler) Apply(c *gin.Context) {
	principalID, ok := auth.GetPrincipalID(c)
	role, roleOK := auth.GetRole(c)
	if !ok || !roleOK {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	gigID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gig ID"})
		return
	}

	var req service.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.applicationService.Apply(gigID, principalID, role, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

// ListMine handles GET /applications/gigs/mine
// @Summary List my gig applications
// @Description List the authenticated worker's gig applications, most recent first
// @Tags gig-applications
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Number of items per page" default(10)
// @Success 200 {object} service.GigApplicationListResponse "Successfully retrieved applications"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /applications/gigs/mine [get]
func (h *GigApplicationHandler) ListMine(c *gin.Context) {
	principalID, ok := auth.GetPrincipalID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, limit := parsePageLimit(c)

	resp, err := h.applicationService.ListForWorker(principalID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListReceived handles GET /applications/gigs
// @Summary List applications to my gigs
// @Description List applications submitted against any gig owned by the authenticated startup
// @Tags gig-applications
// @Accept json
// @Produce json
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Param sort query string false "Sort order (applied_at, -applied_at, status, -status)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Number of items per page" default(10)
// @Success 200 {object} service.GigApplicationListResponse "Successfully retrieved applications"
// @Failure 400 {object} ErrorResponse "Invalid filter or sort parameter"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /applications/gigs [get]
func (h *GigApplicationHandler) ListReceived(c *gin.Context) {
	principalID, ok := auth.GetPrincipalID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, limit := parsePageLimit(c)
	filters := service.GigApplicationFilters{
		Status: c.Query("status"),
		Sort:   c.Query("sort"),
		Page:   page,
		Limit:  limit,
	}

	resp, err := h.applicationService.ListForStartup(principalID, filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Decide handles PUT /applications/gigs/:id/status
// @Summary Decide a gig application
// @Description Approve or reject a pending application to a gig owned by the authenticated startup. Decisions are final.
// @Tags gig-applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID (UUID)"
// @Param decision body service.DecideRequest true "Decision data"
// @Success 200 {object} service.GigApplicationResponse "Successfully decided application"
// @Failure 400 {object} ErrorResponse "Invalid decision"
// @Failure 403 {object} ErrorResponse "Caller does not own the gig"
// @Failure 404 {object} ErrorResponse "Application not found"
// @Failure 409 {object} ErrorResponse "Application already decided"
// @Security BearerAuth
// @Router /applications/gigs/{id}/status [put]
func (h *GigApplicationHandler) Decide(c *gin.Context) {
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
