package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"critico-backend/utilities"
)

// paramUint parses a numeric path parameter. A malformed id aborts with
// 400 and returns false.
func paramUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(v), true
}

// forbid sends the fixed permission-denied body the frontend asserts on.
func forbid(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{"message": utilities.ForbiddenMessage})
	c.Abort()
}

// requireOwnership applies the shared course-management predicate and
// replies with the fixed 403 body on denial.
func requireOwnership(c *gin.Context, ownerID uint) bool {
	d := utilities.CanManageCourse(utilities.CallerRole(c), utilities.CallerID(c), ownerID)
	if !d.Allowed {
		utilities.Warn("denied %s %s: %s", c.Request.Method, c.Request.URL.Path, d.Reason)
		forbid(c)
		return false
	}
	return true
}
