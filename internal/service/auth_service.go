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

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

type authStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	FindByEmail(ctx context.Context, email string) (*models.Student, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type authTeacherRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Teacher, error)
}

// AuthService provides registration and login use cases.
type AuthService struct {
	students  authStudentRepository
	teachers  authTeacherRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(students authStudentRepository, teachers authTeacherRepository, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{students: students, teachers: teachers, validator: validate, logger: logger}
}

// Register creates a student account from the public sign-up form.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "All fields are required")
	}

	exists, err := s.students.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check existing account")
	}
	if exists {
		return appErrors.Clone(appErrors.ErrConflict, "An account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	student := &models.Student{Name: req.Name, Email: req.Email, Password: string(hash)}
	if err := s.students.Create(ctx, student); err != nil {
		// A concurrent registration can slip past the existence check;
		// the unique index settles it.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return appErrors.Clone(appErrors.ErrConflict, "An account with this email already exists")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create account")
	}

	s.logger.Info("student registered", zap.Int64("student_id", student.ID))
	return nil
}

// Login authenticates against the students table when role is "student" and
// against the teachers table otherwise, resolving admin from the is_admin flag.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Email and password required")
	}

	if req.Role == "" || req.Role == RoleStudent {
		return s.loginStudent(ctx, req)
	}
	return s.loginTeacher(ctx, req)
}

func (s *AuthService) loginStudent(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	student, err := s.students.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch student")
	}

	if bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(req.Password)) != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	return &models.LoginResult{Success: true, ID: student.ID, Name: student.Name, Role: RoleStudent}, nil
}

func (s *AuthService) loginTeacher(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	teacher, err := s.teachers.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch teacher")
	}

	if bcrypt.CompareHashAndPassword([]byte(teacher.Password), []byte(req.Password)) != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	role := RoleTeacher
	if teacher.IsAdmin {
		role = RoleAdmin
	}
	return &models.LoginResult{Success: true, ID: teacher.ID, Name: teacher.Name, Role: role}, nil
}
