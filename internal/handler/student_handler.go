package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/doubt-tracker-api/internal/models"
	"github.com/noah-isme/doubt-tracker-api/pkg/response"
)

type studentDoubtService interface {
	ListForStudent(ctx context.Context, studentID int64, status string) ([]models.DoubtWithStudent, error)
}

type studentStatsService interface {
	Student(ctx context.Context, studentID int64) (*models.StudentStats, error)
}

// StudentHandler serves the student-facing dashboard endpoints.
type StudentHandler struct {
	doubts studentDoubtService
	stats  studentStatsService
}

// NewStudentHandler creates a new handler.
func NewStudentHandler(doubts studentDoubtService, stats studentStatsService) *StudentHandler {
	return &StudentHandler{doubts: doubts, stats: stats}
}

// Doubts godoc
// @Summary List a student's doubts
// @Tags Student
// @Produce json
// @Param student_id query int true "Student ID"
// @Param status query string false "Status filter"
// @Success 200 {array} models.DoubtWithStudent
// @Failure 400 {object} map[string]string
// @Router /api/student/doubts [get]
func (h *StudentHandler) Doubts(c *gin.Context) {
	doubts, err := h.doubts.ListForStudent(c.Request.Context(), queryID(c, "student_id"), queryStatus(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, doubts)
}

// Stats godoc
// @Summary Per-student doubt counters
// @Tags Student
// @Produce json
// @Param student_id query int true "Student ID"
// @Success 200 {object} models.StudentStats
// @Failure 400 {object} map[string]string
// @Router /api/student/stats [get]
func (h *StudentHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Student(c.Request.Context(), queryID(c, "student_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}
