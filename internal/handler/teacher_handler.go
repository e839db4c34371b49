package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/doubt-tracker-api/internal/models"
	"github.com/noah-isme/doubt-tracker-api/pkg/response"
)

type teacherDoubtService interface {
	ListAll(ctx context.Context, status string) ([]models.DoubtWithStudent, error)
}

type teacherStatsService interface {
	Teacher(ctx context.Context, teacherID int64) (*models.TeacherStats, error)
}

// TeacherHandler serves the teacher-facing dashboard endpoints.
type TeacherHandler struct {
	doubts teacherDoubtService
	stats  teacherStatsService
}

// NewTeacherHandler creates a new handler.
func NewTeacherHandler(doubts teacherDoubtService, stats teacherStatsService) *TeacherHandler {
	return &TeacherHandler{doubts: doubts, stats: stats}
}

// Doubts godoc
// @Summary List doubts across all students
// @Tags Teacher
// @Produce json
// @Param status query string false "Status filter"
// @Success 200 {array} models.DoubtWithStudent
// @Router /api/teacher/doubts [get]
func (h *TeacherHandler) Doubts(c *gin.Context) {
	doubts, err := h.doubts.ListAll(c.Request.Context(), queryStatus(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, doubts)
}

// Stats godoc
// @Summary Global status counters plus the teacher's response tally
// @Tags Teacher
// @Produce json
// @Param teacher_id query int false "Teacher ID"
// @Success 200 {object} models.TeacherStats
// @Router /api/teacher/stats [get]
func (h *TeacherHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Teacher(c.Request.Context(), queryID(c, "teacher_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}
