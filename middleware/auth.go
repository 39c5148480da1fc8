package middleware

import (
	"net/http"
	"strings"

	"clinicore/models"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
)

// Context keys populated by the auth middleware and consumed by handlers.
const (
	ContextRequesterID   = "requesterID"
	ContextRequesterRole = "requesterRole"
)

// JWTAuthMiddleware validates the bearer token, rejects revoked tokens, and
// attaches the caller's (id, role) pair to the request context. The
// scheduling engine itself never sees the token; it receives the identity as
// explicit parameters.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		id, role, err := utils.ExtractIdentity(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		revoked, err := utils.IsTokenRevoked(utils.GetAuthCacheClient(), utils.HashToken(tokenString))
		if err != nil || revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or verification failed"})
			return
		}

		switch role {
		case models.RoleAdmin, models.RoleDoctor, models.RolePatient:
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unknown role"})
			return
		}

		c.Set(ContextRequesterID, id)
		c.Set(ContextRequesterRole, role)
		c.Next()
	}
}

// RequireRoles restricts a route to the given roles. It must run after
// JWTAuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRequesterRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
	}
}
