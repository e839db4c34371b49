package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/doubt-tracker-api/internal/models"
	appErrors "github.com/noah-isme/doubt-tracker-api/pkg/errors"
)

type mockDoubtRepo struct {
	created    *models.Doubt
	createErr  error
	byStudent  []models.DoubtWithStudent
	all        []models.DoubtWithStudent
	found      *models.DoubtWithStudent
	findErr    error
	lastStatus string
}

func (m *mockDoubtRepo) Create(ctx context.Context, doubt *models.Doubt) error {
	if m.createErr != nil {
		return m.createErr
	}
	doubt.ID = 1
	doubt.Status = models.StatusPending
	m.created = doubt
	return nil
}

func (m *mockDoubtRepo) ListByStudent(ctx context.Context, studentID int64, status string) ([]models.DoubtWithStudent, error) {
	m.lastStatus = status
	return m.byStudent, nil
}

func (m *mockDoubtRepo) ListAll(ctx context.Context, status string) ([]models.DoubtWithStudent, error) {
	m.lastStatus = status
	return m.all, nil
}

func (m *mockDoubtRepo) FindWithStudent(ctx context.Context, doubtID int64) (*models.DoubtWithStudent, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.found, nil
}

type mockResponseRepo struct {
	created       *models.Response
	createdStatus models.DoubtStatus
	createErr     error
	byDoubt       []models.ResponseWithTeacher
	listErr       error
}

func (m *mockResponseRepo) CreateWithStatus(ctx context.Context, response *models.Response, status models.DoubtStatus) error {
	if m.createErr != nil {
		return m.createErr
	}
	response.ID = 1
	m.created = response
	m.createdStatus = status
	return nil
}

func (m *mockResponseRepo) ListByDoubt(ctx context.Context, doubtID int64) ([]models.ResponseWithTeacher, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.byDoubt, nil
}

func TestDoubtServiceSubmit(t *testing.T) {
	doubts := &mockDoubtRepo{}
	svc := NewDoubtService(doubts, &mockResponseRepo{}, validator.New(), zap.NewNop())

	err := svc.Submit(context.Background(), models.SubmitDoubtRequest{StudentID: 1, Subject: "Math", DoubtText: "What is a limit?"})
	require.NoError(t, err)
	require.NotNil(t, doubts.created)
	assert.Equal(t, models.StatusPending, doubts.created.Status)
}

func TestDoubtServiceSubmitMissingFields(t *testing.T) {
	svc := NewDoubtService(&mockDoubtRepo{}, &mockResponseRepo{}, validator.New(), zap.NewNop())

	err := svc.Submit(context.Background(), models.SubmitDoubtRequest{StudentID: 1})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestDoubtServiceListForStudentRequiresID(t *testing.T) {
	svc := NewDoubtService(&mockDoubtRepo{}, &mockResponseRepo{}, validator.New(), zap.NewNop())

	_, err := svc.ListForStudent(context.Background(), 0, "All")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "student_id required", appErr.Message)
}

func TestDoubtServiceDetailsNotFound(t *testing.T) {
	doubts := &mockDoubtRepo{findErr: sql.ErrNoRows}
	svc := NewDoubtService(doubts, &mockResponseRepo{}, validator.New(), zap.NewNop())

	_, err := svc.Details(context.Background(), 42)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "Doubt not found", appErr.Message)
}

func TestDoubtServiceDetails(t *testing.T) {
	doubts := &mockDoubtRepo{found: &models.DoubtWithStudent{Doubt: models.Doubt{ID: 4, Status: models.StatusResolved}, StudentName: "A"}}
	responses := &mockResponseRepo{byDoubt: []models.ResponseWithTeacher{
		{Response: models.Response{ID: 2, DoubtID: 4}, TeacherName: "Dr. Sharma"},
		{Response: models.Response{ID: 1, DoubtID: 4}, TeacherName: "Dr. Sharma"},
	}}
	svc := NewDoubtService(doubts, responses, validator.New(), zap.NewNop())

	details, err := svc.Details(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "A", details.Doubt.StudentName)
	require.Len(t, details.Responses, 2)
	assert.Equal(t, int64(2), details.Responses[0].ID)
}

func TestDoubtServiceRespondDefaultsToResolved(t *testing.T) {
	doubts := &mockDoubtRepo{found: &models.DoubtWithStudent{Doubt: models.Doubt{ID: 4, Status: models.StatusPending}}}
	responses := &mockResponseRepo{}
	svc := NewDoubtService(doubts, responses, validator.New(), zap.NewNop())

	err := svc.Respond(context.Background(), models.RespondRequest{DoubtID: 4, TeacherID: 2, ResponseText: "Use the definition"})
	require.NoError(t, err)
	require.NotNil(t, responses.created)
	assert.Equal(t, int64(4), responses.created.DoubtID)
	assert.Equal(t, models.StatusResolved, responses.createdStatus)
}

func TestDoubtServiceRespondExplicitStatus(t *testing.T) {
	doubts := &mockDoubtRepo{found: &models.DoubtWithStudent{Doubt: models.Doubt{ID: 4}}}
	responses := &mockResponseRepo{}
	svc := NewDoubtService(doubts, responses, validator.New(), zap.NewNop())

	err := svc.Respond(context.Background(), models.RespondRequest{DoubtID: 4, TeacherID: 2, ResponseText: "Working on it", Status: models.StatusInProgress})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, responses.createdStatus)
}

func TestDoubtServiceRespondInvalidStatus(t *testing.T) {
	svc := NewDoubtService(&mockDoubtRepo{}, &mockResponseRepo{}, validator.New(), zap.NewNop())

	err := svc.Respond(context.Background(), models.RespondRequest{DoubtID: 4, TeacherID: 2, ResponseText: "x", Status: "Closed"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestDoubtServiceRespondPersistFailure(t *testing.T) {
	doubts := &mockDoubtRepo{found: &models.DoubtWithStudent{Doubt: models.Doubt{ID: 4}}}
	responses := &mockResponseRepo{createErr: errors.New("disk I/O error")}
	svc := NewDoubtService(doubts, responses, validator.New(), zap.NewNop())

	err := svc.Respond(context.Background(), models.RespondRequest{DoubtID: 4, TeacherID: 2, ResponseText: "x"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
	assert.Nil(t, responses.created)
}

func TestDoubtServiceRespondUnknownDoubt(t *testing.T) {
	doubts := &mockDoubtRepo{findErr: sql.ErrNoRows}
	svc := NewDoubtService(doubts, &mockResponseRepo{}, validator.New(), zap.NewNop())

	err := svc.Respond(context.Background(), models.RespondRequest{DoubtID: 99, TeacherID: 2, ResponseText: "x"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
