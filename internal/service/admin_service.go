package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/doubt-tracker-api/internal/models"
	"github.com/noah-isme/doubt-tracker-api/internal/repository"
	appErrors "github.com/noah-isme/doubt-tracker-api/pkg/errors"
)

type adminTeacherRepository interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	FindByID(ctx context.Context, id int64) (*models.Teacher, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]models.TeacherRecord, error)
	DeleteNonAdmin(ctx context.Context, id int64) (int64, error)
}

type adminStudentRepository interface {
	ListWithDoubtCount(ctx context.Context) ([]models.StudentWithDoubtCount, error)
}

// AdminService manages the teacher roster and admin listings.
type AdminService struct {
	teachers  adminTeacherRepository
	students  adminStudentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAdminService constructs an AdminService instance.
func NewAdminService(teachers adminTeacherRepository, students adminStudentRepository, validate *validator.Validate, logger *zap.Logger) *AdminService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminService{teachers: teachers, students: students, validator: validate, logger: logger}
}

// ListTeachers returns every teacher without password material.
func (s *AdminService) ListTeachers(ctx context.Context) ([]models.TeacherRecord, error) {
	teachers, err := s.teachers.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	return teachers, nil
}

// ListStudents returns every student with a computed doubt count.
func (s *AdminService) ListStudents(ctx context.Context) ([]models.StudentWithDoubtCount, error) {
	students, err := s.students.ListWithDoubtCount(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// AddTeacher creates a non-admin teacher account.
func (s *AdminService) AddTeacher(ctx context.Context, req models.AddTeacherRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "All fields are required")
	}

	exists, err := s.teachers.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check existing teacher")
	}
	if exists {
		return appErrors.Clone(appErrors.ErrConflict, "Email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	teacher := &models.Teacher{Name: req.Name, Subject: req.Subject, Email: req.Email, Password: string(hash)}
	if err := s.teachers.Create(ctx, teacher); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return appErrors.Clone(appErrors.ErrConflict, "Email already exists")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create teacher")
	}

	s.logger.Info("teacher added", zap.Int64("teacher_id", teacher.ID), zap.String("subject", teacher.Subject))
	return nil
}

// DeleteTeacher removes a non-admin teacher. The delete statement itself
// excludes admin rows again, keeping the double guard from the service check.
func (s *AdminService) DeleteTeacher(ctx context.Context, req models.DeleteTeacherRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "teacher_id required")
	}

	teacher, err := s.teachers.FindByID(ctx, req.TeacherID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch teacher")
	}
	if teacher != nil && teacher.IsAdmin {
		return appErrors.Clone(appErrors.ErrForbidden, "Cannot delete admin account")
	}

	if _, err := s.teachers.DeleteNonAdmin(ctx, req.TeacherID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete teacher")
	}

	s.logger.Info("teacher deleted", zap.Int64("teacher_id", req.TeacherID))
	return nil
}
