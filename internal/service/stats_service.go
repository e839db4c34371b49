package service

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/noah-isme/doubt-tracker-api/internal/models"
	appErrors "github.com/noah-isme/doubt-tracker-api/pkg/errors"
)

type statsDoubtRepository interface {
	StudentStats(ctx context.Context, studentID int64) (*models.StudentStats, error)
	StatusCounts(ctx context.Context) (*models.StatusCounts, error)
	CountAll(ctx context.Context) (int, error)
}

type statsResponseRepository interface {
	CountByTeacher(ctx context.Context, teacherID int64) (int, error)
}

type statsStudentRepository interface {
	CountAll(ctx context.Context) (int, error)
}

type statsTeacherRepository interface {
	CountAll(ctx context.Context) (int, error)
}

// StatsService computes the per-role dashboard aggregates.
type StatsService struct {
	doubts    statsDoubtRepository
	responses statsResponseRepository
	students  statsStudentRepository
	teachers  statsTeacherRepository
	logger    *zap.Logger
}

// NewStatsService constructs a StatsService instance.
func NewStatsService(doubts statsDoubtRepository, responses statsResponseRepository, students statsStudentRepository, teachers statsTeacherRepository, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{doubts: doubts, responses: responses, students: students, teachers: teachers, logger: logger}
}

// Student returns total/pending/resolved counts for one student.
func (s *StatsService) Student(ctx context.Context, studentID int64) (*models.StudentStats, error) {
	if studentID == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student_id required")
	}
	stats, err := s.doubts.StudentStats(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute student stats")
	}
	return stats, nil
}

// Teacher returns the global status counts plus the teacher's own response
// tally. A zero teacher ID leaves my_responses at 0, matching the dashboard
// when the teacher ID is not supplied.
func (s *StatsService) Teacher(ctx context.Context, teacherID int64) (*models.TeacherStats, error) {
	counts, err := s.doubts.StatusCounts(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute status counts")
	}

	stats := &models.TeacherStats{
		Pending:    counts.Pending,
		InProgress: counts.InProgress,
		Resolved:   counts.Resolved,
	}

	if teacherID != 0 {
		myResponses, err := s.responses.CountByTeacher(ctx, teacherID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count responses")
		}
		stats.MyResponses = myResponses
	}

	return stats, nil
}

// Admin returns the global aggregate payload including the resolution
// percentage, 0 when no doubts exist.
func (s *StatsService) Admin(ctx context.Context) (*models.AdminStats, error) {
	studentCount, err := s.students.CountAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count students")
	}

	teacherCount, err := s.teachers.CountAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count teachers")
	}

	totalDoubts, err := s.doubts.CountAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count doubts")
	}

	counts, err := s.doubts.StatusCounts(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute status counts")
	}

	pct := 0
	if totalDoubts > 0 {
		pct = int(math.Round(float64(counts.Resolved) / float64(totalDoubts) * 100))
	}

	return &models.AdminStats{
		Students:      studentCount,
		Teachers:      teacherCount,
		TotalDoubts:   totalDoubts,
		Resolved:      counts.Resolved,
		Pending:       counts.Pending,
		ResolutionPct: pct,
	}, nil
}
