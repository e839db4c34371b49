package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/doubt-tracker-api/pkg/errors"
)

// JSON writes the payload as-is. List endpoints emit bare arrays and
// mutations emit flat success records, matching the documented wire contract.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK is shorthand for a 200 response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// Success responds with {"success":true,"message":...}.
func Success(c *gin.Context, message string) {
	JSON(c, http.StatusOK, gin.H{"success": true, "message": message})
}

// Error converts any error into the single-key error record the API exposes.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}
