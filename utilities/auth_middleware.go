package utilities

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// AuthMiddleware ensures each request carries a valid bearer credential.
// Requests under /api/auth are let through untouched.
func AuthMiddleware(ts *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/auth") {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := ts.Verify(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		// Store identity in context for the route guards.
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RequireTeacher rejects non-teacher callers before any ownership or
// existence check runs. Students always get the fixed 403 body, even when
// the path id happens to reference themselves.
func RequireTeacher() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if d := CanAccessDashboards(role); !d.Allowed {
			Warn("denied %s %s: %s", c.Request.Method, c.Request.URL.Path, d.Reason)
			c.JSON(http.StatusForbidden, gin.H{"message": ForbiddenMessage})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CallerID returns the authenticated user's id from the Gin context.
func CallerID(c *gin.Context) uint {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}

// CallerRole returns the authenticated user's role from the Gin context.
func CallerRole(c *gin.Context) string {
	return c.GetString(ContextRole)
}
