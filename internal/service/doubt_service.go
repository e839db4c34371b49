package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/doubt-tracker-api/internal/models"
	appErrors "github.com/noah-isme/doubt-tracker-api/pkg/errors"
)

type doubtRepository interface {
	Create(ctx context.Context, doubt *models.Doubt) error
	ListByStudent(ctx context.Context, studentID int64, status string) ([]models.DoubtWithStudent, error)
	ListAll(ctx context.Context, status string) ([]models.DoubtWithStudent, error)
	FindWithStudent(ctx context.Context, doubtID int64) (*models.DoubtWithStudent, error)
}

type doubtResponseRepository interface {
	CreateWithStatus(ctx context.Context, response *models.Response, status models.DoubtStatus) error
	ListByDoubt(ctx context.Context, doubtID int64) ([]models.ResponseWithTeacher, error)
}

// DoubtService covers the doubt lifecycle: submission, listing, details and
// teacher responses.
type DoubtService struct {
	doubts    doubtRepository
	responses doubtResponseRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDoubtService constructs a DoubtService instance.
func NewDoubtService(doubts doubtRepository, responses doubtResponseRepository, validate *validator.Validate, logger *zap.Logger) *DoubtService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DoubtService{doubts: doubts, responses: responses, validator: validate, logger: logger}
}

// Submit records a new doubt with the Pending status.
func (s *DoubtService) Submit(ctx context.Context, req models.SubmitDoubtRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "All fields are required")
	}

	doubt := &models.Doubt{StudentID: req.StudentID, Subject: req.Subject, DoubtText: req.DoubtText}
	if err := s.doubts.Create(ctx, doubt); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to submit doubt")
	}

	s.logger.Info("doubt submitted", zap.Int64("doubt_id", doubt.ID), zap.Int64("student_id", doubt.StudentID))
	return nil
}

// ListForStudent returns a student's doubts, optionally filtered by status.
func (s *DoubtService) ListForStudent(ctx context.Context, studentID int64, status string) ([]models.DoubtWithStudent, error) {
	if studentID == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student_id required")
	}
	doubts, err := s.doubts.ListByStudent(ctx, studentID, status)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list doubts")
	}
	return doubts, nil
}

// ListAll returns every doubt across students, optionally filtered by status.
func (s *DoubtService) ListAll(ctx context.Context, status string) ([]models.DoubtWithStudent, error) {
	doubts, err := s.doubts.ListAll(ctx, status)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list doubts")
	}
	return doubts, nil
}

// Details returns one doubt with its responses, newest first.
func (s *DoubtService) Details(ctx context.Context, doubtID int64) (*models.DoubtDetails, error) {
	if doubtID == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "doubt_id required")
	}

	doubt, err := s.doubts.FindWithStudent(ctx, doubtID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Doubt not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch doubt")
	}

	responses, err := s.responses.ListByDoubt(ctx, doubtID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch responses")
	}

	return &models.DoubtDetails{Doubt: *doubt, Responses: responses}, nil
}

// Respond records a teacher response and moves the doubt's status in one
// logical unit. Status defaults to Resolved.
func (s *DoubtService) Respond(ctx context.Context, req models.RespondRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "All fields are required")
	}

	status := req.Status
	if status == "" {
		status = models.StatusResolved
	}
	if !status.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, "invalid status")
	}

	if _, err := s.doubts.FindWithStudent(ctx, req.DoubtID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Doubt not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch doubt")
	}

	response := &models.Response{DoubtID: req.DoubtID, TeacherID: req.TeacherID, ResponseText: req.ResponseText}
	if err := s.responses.CreateWithStatus(ctx, response, status); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record response")
	}

	s.logger.Info("doubt responded",
		zap.Int64("doubt_id", req.DoubtID),
		zap.Int64("teacher_id", req.TeacherID),
		zap.String("status", string(status)))
	return nil
}
