package middlewares

import (
	"MediDesk/models"
	"MediDesk/utils"
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// contextKey defines a custom context key type to store the principal in the context.
type contextKey string

const principalKey contextKey = "principal"

// bearerToken extracts the access token from the Authorization header, falling
// back to the accessToken cookie set at login.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	token, err := c.Cookie("accessToken")
	if err != nil {
		return ""
	}
	return token
}

// TokenAuthMiddleware validates the token and adds the principal to the request context.
func TokenAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing access token", "category": "danger"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(token, models.RoleAdmin, models.RoleDoctor, models.RolePatient)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token", "category": "danger"})
			c.Abort()
			return
		}

		principal := models.Principal{UserID: claims.UserID, Role: claims.Role}
		ctx := context.WithValue(c.Request.Context(), principalKey, principal)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleAuthMiddleware restricts access to principals with the specified role.
func RoleAuthMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := ExtractPrincipalFromContext(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required", "category": "danger"})
			c.Abort()
			return
		}

		if principal.Role != requiredRole {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied", "category": "danger"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// ExtractPrincipalFromContext retrieves the authenticated principal from the context.
func ExtractPrincipalFromContext(ctx context.Context) (models.Principal, error) {
	principal, ok := ctx.Value(principalKey).(models.Principal)
	if !ok {
		return models.Principal{}, errors.New("principal not found in context")
	}
	return principal, nil
}
