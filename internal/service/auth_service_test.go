package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/doubt-tracker-api/internal/models"
	"github.com/noah-isme/doubt-tracker-api/internal/repository"
	appErrors "github.com/noah-isme/doubt-tracker-api/pkg/errors"
)

type mockStudentRepo struct {
	studentByEmail *models.Student
	findErr        error
	exists         bool
	existsErr      error
	created        *models.Student
	createErr      error
}

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	if m.createErr != nil {
		return m.createErr
	}
	student.ID = 1
	m.created = student
	return nil
}

func (m *mockStudentRepo) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.studentByEmail, nil
}

func (m *mockStudentRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.exists, m.existsErr
}

type mockTeacherIdentityRepo struct {
	teacherByEmail *models.Teacher
	findErr        error
}

func (m *mockTeacherIdentityRepo) FindByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.teacherByEmail, nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthServiceRegisterSuccess(t *testing.T) {
	students := &mockStudentRepo{}
	svc := NewAuthService(students, &mockTeacherIdentityRepo{}, validator.New(), zap.NewNop())

	err := svc.Register(context.Background(), models.RegisterRequest{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	require.NotNil(t, students.created)
	assert.Equal(t, "a@x.com", students.created.Email)
	// stored password must be a hash, never the raw input
	assert.NotEqual(t, "p", students.created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(students.created.Password), []byte("p")))
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	students := &mockStudentRepo{exists: true}
	svc := NewAuthService(students, &mockTeacherIdentityRepo{}, validator.New(), zap.NewNop())

	err := svc.Register(context.Background(), models.RegisterRequest{Name: "A", Email: "a@x.com", Password: "p"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Equal(t, "An account with this email already exists", appErr.Message)
}

func TestAuthServiceRegisterDuplicateEmailRace(t *testing.T) {
	students := &mockStudentRepo{createErr: repository.ErrDuplicateEmail}
	svc := NewAuthService(students, &mockTeacherIdentityRepo{}, validator.New(), zap.NewNop())

	err := svc.Register(context.Background(), models.RegisterRequest{Name: "Riya", Email: "riya@example.com", Password: "pw"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Equal(t, "An account with this email already exists", appErr.Message)
}

func TestAuthServiceRegisterMissingFields(t *testing.T) {
	svc := NewAuthService(&mockStudentRepo{}, &mockTeacherIdentityRepo{}, validator.New(), zap.NewNop())

	err := svc.Register(context.Background(), models.RegisterRequest{Name: "A"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginStudent(t *testing.T) {
	students := &mockStudentRepo{studentByEmail: &models.Student{ID: 1, Name: "A", Email: "a@x.com", Password: hashOf(t, "p")}}
	svc := NewAuthService(students, &mockTeacherIdentityRepo{}, validator.New(), zap.NewNop())

	res, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@x.com", Password: "p", Role: "student"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, RoleStudent, res.Role)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	students := &mockStudentRepo{studentByEmail: &models.Student{ID: 1, Password: hashOf(t, "p")}}
	svc := NewAuthService(students, &mockTeacherIdentityRepo{}, validator.New(), zap.NewNop())

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@x.com", Password: "wrong", Role: "student"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
	assert.Equal(t, "Invalid email or password", appErr.Message)
}

func TestAuthServiceLoginUnknownStudent(t *testing.T) {
	students := &mockStudentRepo{findErr: sql.ErrNoRows}
	svc := NewAuthService(students, &mockTeacherIdentityRepo{}, validator.New(), zap.NewNop())

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "nobody@x.com", Password: "p", Role: "student"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginTeacherResolvesRole(t *testing.T) {
	teachers := &mockTeacherIdentityRepo{teacherByEmail: &models.Teacher{ID: 2, Name: "Dr. Sharma", Password: hashOf(t, "teacher123"), IsAdmin: false}}
	svc := NewAuthService(&mockStudentRepo{}, teachers, validator.New(), zap.NewNop())

	res, err := svc.Login(context.Background(), models.LoginRequest{Email: "sharma@doubttracker.com", Password: "teacher123", Role: "teacher"})
	require.NoError(t, err)
	assert.Equal(t, RoleTeacher, res.Role)

	teachers.teacherByEmail = &models.Teacher{ID: 1, Name: "Admin", Password: hashOf(t, "admin123"), IsAdmin: true}
	res, err = svc.Login(context.Background(), models.LoginRequest{Email: "admin@doubttracker.com", Password: "admin123", Role: "teacher"})
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, res.Role)
}
