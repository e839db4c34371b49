package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/doubt-tracker-api/internal/models"
	appErrors "github.com/noah-isme/doubt-tracker-api/pkg/errors"
	"github.com/noah-isme/doubt-tracker-api/pkg/response"
)

type doubtService interface {
	Submit(ctx context.Context, req models.SubmitDoubtRequest) error
	Details(ctx context.Context, doubtID int64) (*models.DoubtDetails, error)
	Respond(ctx context.Context, req models.RespondRequest) error
}

// DoubtHandler serves doubt submission, details and teacher responses.
type DoubtHandler struct {
	service doubtService
}

// NewDoubtHandler creates a new handler.
func NewDoubtHandler(svc doubtService) *DoubtHandler {
	return &DoubtHandler{service: svc}
}

// Details godoc
// @Summary A doubt with its responses, newest first
// @Tags Doubt
// @Produce json
// @Param doubt_id query int true "Doubt ID"
// @Success 200 {object} models.DoubtDetails
// @Failure 404 {object} map[string]string
// @Router /api/doubt/details [get]
func (h *DoubtHandler) Details(c *gin.Context) {
	details, err := h.service.Details(c.Request.Context(), queryID(c, "doubt_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, details)
}

// Add godoc
// @Summary Submit a new doubt
// @Tags Doubt
// @Accept json
// @Produce json
// @Param payload body models.SubmitDoubtRequest true "Doubt payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/doubt/add [post]
func (h *DoubtHandler) Add(c *gin.Context) {
	var req models.SubmitDoubtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Invalid JSON"))
		return
	}

	if err := h.service.Submit(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Doubt submitted successfully!")
}

// Respond godoc
// @Summary Record a teacher response and move the doubt's status
// @Tags Doubt
// @Accept json
// @Produce json
// @Param payload body models.RespondRequest true "Response payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/doubt/respond [post]
func (h *DoubtHandler) Respond(c *gin.Context) {
	var req models.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Invalid JSON"))
		return
	}

	if err := h.service.Respond(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Response submitted!")
}
