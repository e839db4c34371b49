package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/doubt-tracker-api/internal/models"
)

// queryID parses a numeric query parameter, returning 0 when absent or
// malformed so services can report the missing field.
func queryID(c *gin.Context, name string) int64 {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// queryStatus reads the status filter, defaulting to All.
func queryStatus(c *gin.Context) string {
	status := c.Query("status")
	if status == "" {
		return models.StatusFilterAll
	}
	return status
}
