package handlers

import (
	"net/http"

	"worklink-backend/internal/auth"
	"worklink-backend/internal/database/models"
	"worklink-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GigHandler handles HTTP requests for gigs
type GigHandler struct {
	gigService service.GigServiceInterface
}

// NewGigHandler creates a new gig handler
func NewGigHandler(gigService service.GigServiceInterface) *GigHandler {
	return &GigHandler{
		gigService: gigService,
	}
}

// ListGigs handles GET /gigs
// @Summary List gigs
// @Description List open gigs, or the caller's own gigs when mine=true and the caller is a startup
// @Tags gigs
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Number of items per page" default(10)
// @Param mine query bool false "List only the caller's own gigs"
// @Success 200 {object} service.GigListResponse "Successfully retrieved gigs"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /gigs [get]
func (h *GigHandler) ListGigs(c *gin.Context) {
	page, limit := parsePageLimit(c)

	if c.Query("mine") == "true" {
		principalID, ok := auth.GetPrincipalID(c)
		role, roleOK := auth.GetRole(c)
		if !ok || !roleOK || role != models.RoleStartup {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only startups own gigs"})
			return
		}

		resp, err := h.gigService.ListGigsByStartup(principalID, page, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.gigService.ListOpenGigs(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateGig handles POST /gigs
// @Summary Create a gig
// @Description Create a new gig owned by the authenticated startup
// @Tags gigs
// @Accept json
// @Produce json
// @Param gig body service.CreateGigRequest true "Gig data"
// @Success 201 {object} service.GigResponse "Successfully created gig"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller is not a startup"
// @Security BearerAuth
// @Router /gigs [post]
func (h *GigHandler) CreateGig(c *gin.Context) {
	principalID, ok := auth.GetPrincipalID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gig, err := h.gigService.CreateGig(principalID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gig)
}

// GetGig handles GET /gigs/:id
// @Summary Get gig by ID
// @Description Get a specific gig by its UUID
// @Tags gigs
// @Accept json
// @Produce json
// @Param id path string true "Gig ID (UUID)"
// @Success 200 {object} service.GigResponse "Successfully retrieved gig"
// @Failure 400 {object} ErrorResponse "Invalid gig ID"
// @Failure 404 {object} ErrorResponse "Gig not found"
// @Security BearerAuth
// @Router /gigs/{id} [get]
func (h *GigHandler) GetGig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gig ID"})
		return
	}

	gig, err := h.gigService.GetGigByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gig)
}

// UpdateGig handles PUT /gigs/:id
// @Summary Update a gig
// @Description Update a gig owned by the authenticated startup
// @Tags gigs
// @Accept json
// @Produce json
// @Param id path string true "Gig ID (UUID)"
// @Param gig body service.UpdateGigRequest true "Gig data"
// @Success 200 {object} service.GigResponse "Successfully updated gig"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller does not own the gig"
// @Failure 404 {object} ErrorResponse "Gig not found"
// @Security BearerAuth
// @Router /gigs/{id} [put]
func (h *GigHandler) UpdateGig(c *gin.Context) {
	principalID, ok := auth.GetPrincipalID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gig ID"})
		return
	}

	var req service.UpdateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gig, err := h.gigService.UpdateGig(id, principalID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gig)
}

// DeleteGig handles DELETE /gigs/:id
// @Summary Delete a gig
// @Description Delete a gig owned by the authenticated startup along with its applications
// @Tags gigs
// @Accept json
// @Produce json
// @Param id path string true "Gig ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted gig"
// @Failure 400 {object} ErrorResponse "Invalid gig ID"
// @Failure 403 {object} ErrorResponse "Caller does not own the gig"
// @Failure 404 {object} ErrorResponse "Gig not found"
// @Security BearerAuth
// @Router /gigs/{id} [delete]
func (h *GigHandler) DeleteGig(c *gin.Context) {
	principalID, ok := auth.GetPrincipalID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gig ID"})
		return
	}

	if err := h.gigService.DeleteGig(id, principalID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gig deleted successfully"})
}
