package handlers

import (
	"net/http"

	"worklink-backend/internal/auth"
	"worklink-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles HTTP requests for per-role dashboard statistics
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// WorkerStats handles GET /dashboard/worker
// @Summary Worker dashboard statistics
// @Description Get application counts by status for the authenticated worker
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} service.WorkerStatsResponse "Successfully retrieved statistics"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /dashboard/worker [get]
func (h *DashboardHandler) WorkerStats(c *gin.Context) {
	principalID, ok := auth.GetPrincipalID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	stats, err := h.dashboardService.WorkerStats(principalID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// StartupStats handles GET /dashboard/startup
// @Summary Startup dashboard statistics
// @Description Get gig and application counts for the authenticated startup
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} service.StartupStatsResponse "Successfully retrieved statistics"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /dashboard/startup [get]
func (h *DashboardHandler) StartupStats(c *gin.Context) {
	principalID, ok := auth.GetPrincipalID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	stats, err := h.dashboardService.StartupStats(principalID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ManufacturerStats handles GET /dashboard/manufacturer
// @Summary Manufacturer dashboard statistics
// @Description Get machine and application counts for the authenticated manufacturer
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} service.ManufacturerStatsResponse "Successfully retrieved statistics"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /dashboard/manufacturer [get]
func (h *DashboardHandler) ManufacturerStats(c *gin.Context) {
	principalID, ok := auth.GetPrincipalID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	stats, err := h.dashboardService.ManufacturerStats(principalID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
