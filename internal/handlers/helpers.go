package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// idParam parses a numeric path parameter, replying 400 itself on failure.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// userIDQuery parses the mandatory userId query parameter, replying 400
// itself on failure. There is no authentication; the caller-supplied id is
// trusted as-is.
func userIDQuery(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID is required"})
		return 0, false
	}
	return id, true
}

// parseDate coerces an incoming date string: RFC3339 first, then plain
// yyyy-mm-dd.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}
