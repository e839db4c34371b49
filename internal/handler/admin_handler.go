package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/doubt-tracker-api/internal/models"
	"github.com/noah-isme/doubt-tracker-api/internal/service"
	appErrors "github.com/noah-isme/doubt-tracker-api/pkg/errors"
	"github.com/noah-isme/doubt-tracker-api/pkg/response"
)

type adminService interface {
	ListTeachers(ctx context.Context) ([]models.TeacherRecord, error)
	ListStudents(ctx context.Context) ([]models.StudentWithDoubtCount, error)
	AddTeacher(ctx context.Context, req models.AddTeacherRequest) error
	DeleteTeacher(ctx context.Context, req models.DeleteTeacherRequest) error
}

type adminStatsService interface {
	Admin(ctx context.Context) (*models.AdminStats, error)
}

type exportService interface {
	DoubtsReport(ctx context.Context, status, format string) (*service.ExportFile, error)
}

// AdminHandler serves the admin dashboard endpoints.
type AdminHandler struct {
	admin   adminService
	stats   adminStatsService
	exports exportService
}

// NewAdminHandler creates a new handler. exports may be nil when report
// downloads are disabled in config.
func NewAdminHandler(admin adminService, stats adminStatsService, exports exportService) *AdminHandler {
	return &AdminHandler{admin: admin, stats: stats, exports: exports}
}

// Stats godoc
// @Summary Platform-wide counts and resolution percentage
// @Tags Admin
// @Produce json
// @Success 200 {object} models.AdminStats
// @Router /api/admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Admin(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

// Teachers godoc
// @Summary All teacher accounts, passwords omitted
// @Tags Admin
// @Produce json
// @Success 200 {array} models.TeacherRecord
// @Router /api/admin/teachers [get]
func (h *AdminHandler) Teachers(c *gin.Context) {
	teachers, err := h.admin.ListTeachers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, teachers)
}

// Students godoc
// @Summary All students with their doubt counts
// @Tags Admin
// @Produce json
// @Success 200 {array} models.StudentWithDoubtCount
// @Router /api/admin/students [get]
func (h *AdminHandler) Students(c *gin.Context) {
	students, err := h.admin.ListStudents(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, students)
}

// AddTeacher godoc
// @Summary Create a teacher account
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body models.AddTeacherRequest true "Teacher payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/admin/teacher/add [post]
func (h *AdminHandler) AddTeacher(c *gin.Context) {
	var req models.AddTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Invalid JSON"))
		return
	}

	if err := h.admin.AddTeacher(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Teacher added!")
}

// DeleteTeacher godoc
// @Summary Delete a non-admin teacher account
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body models.DeleteTeacherRequest true "Teacher ID payload"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Router /api/admin/teacher/delete [post]
func (h *AdminHandler) DeleteTeacher(c *gin.Context) {
	var req models.DeleteTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Invalid JSON"))
		return
	}

	if err := h.admin.DeleteTeacher(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Teacher deleted!")
}

// ExportDoubts godoc
// @Summary Download the doubt list as CSV or PDF
// @Tags Admin
// @Produce octet-stream
// @Param status query string false "Status filter" default(All)
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Router /api/admin/export/doubts [get]
func (h *AdminHandler) ExportDoubts(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "Exports are disabled"))
		return
	}

	file, err := h.exports.DoubtsReport(c.Request.Context(), queryStatus(c), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
