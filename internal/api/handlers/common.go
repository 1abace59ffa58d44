package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "worklink-backend/internal/errors"
	"worklink-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError translates service errors into HTTP responses. Typed domain
// errors map onto their status codes; anything unrecognized is logged and
// returned as an opaque 500.
func respondError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors

	switch {
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err), errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.WithFields(logrus.Fields{
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		}).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// parsePageLimit reads the common pagination query parameters
func parsePageLimit(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}
