package auth

import (
	"net/http"
	"strings"

	"worklink-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets the principal context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("principal_id", claims.PrincipalID)
		c.Set("role", claims.Role)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// RequireRole validates that the authenticated principal has one of the allowed roles
func (m *AuthMiddleware) RequireRole(allowedRoles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Role not allowed for this resource"})
		c.Abort()
	}
}

// GetPrincipalID is a helper function to extract the principal ID from context
func GetPrincipalID(c *gin.Context) (uuid.UUID, bool) {
	principalID, exists := c.Get("principal_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := principalID.(uuid.UUID)
	return id, ok
}

// GetRole is a helper function to extract the principal role from context
func GetRole(c *gin.Context) (models.Role, bool) {
	role, exists := c.Get("role")
	if !exists {
		return "", false
	}

	r, ok := role.(models.Role)
	return r, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
