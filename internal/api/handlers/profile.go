package handlers

import (
	"net/http"

	"worklink-backend/internal/auth"
	"worklink-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles HTTP requests for principal profiles
type ProfileHandler struct {
	profileService service.ProfileServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService service.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetMe handles GET /profile/me
// @Summary Get my profile
// @Description Get the authenticated principal's profile
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} service.ProfileResponse "Successfully retrieved profile"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /profile/me [get]
func (h *ProfileHandler) GetMe(c *gin.Context) {
	principalID, ok := auth.GetPrincipalID(c)
	role, roleOK := auth.GetRole(c)
	if !ok || !roleOK {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	profile, err := h.profileService.GetProfile(principalID, role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateMe handles PUT /profile/me
// @Summary Update my profile
// @Description Update the authenticated principal's profile fields
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body service.UpdateProfileRequest true "Profile data"
// @Success 200 {object} service.ProfileResponse "Successfully updated profile"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /profile/me [put]
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	principalID, ok := auth.GetPrincipalID(c)
	role, roleOK := auth.GetRole(c)
	if !ok || !roleOK {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.UpdateProfile(principalID, role, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
