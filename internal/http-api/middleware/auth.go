package middleware

import (
	"net/http"
	"strings"

	"bookhive/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware is a Gin middleware for JWT authentication of API requests.
// It checks for the presence and validity of a JWT token in the Authorization
// header and puts the caller identity into the request context.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// Format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("isStaff", claims.IsStaff)

		c.Next()
	}
}

// CallerFromContext rebuilds the caller identity stored by AuthMiddleware.
// The second return value is false when the request was not authenticated.
func CallerFromContext(c *gin.Context) (service.Identity, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return service.Identity{}, false
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		return service.Identity{}, false
	}
	isStaff, _ := c.Get("isStaff")
	staff, _ := isStaff.(bool)
	return service.Identity{ID: id, IsStaff: staff}, true
}
