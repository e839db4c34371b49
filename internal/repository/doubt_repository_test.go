package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/doubt-tracker-api/internal/models"
)

func newDoubtRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func doubtRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"doubt_id", "student_id", "subject", "doubt_text", "status", "created_at", "student_name"})
}

func TestDoubtRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newDoubtRepoMock(t)
	defer cleanup()
	repo := NewDoubtRepository(db)

	mock.ExpectExec("INSERT INTO doubts").
		WithArgs(int64(1), "Math", "What is a limit?").
		WillReturnResult(sqlmock.NewResult(11, 1))

	doubt := &models.Doubt{StudentID: 1, Subject: "Math", DoubtText: "What is a limit?"}
	require.NoError(t, repo.Create(context.Background(), doubt))
	assert.Equal(t, int64(11), doubt.ID)
	assert.Equal(t, models.StatusPending, doubt.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoubtRepositoryListByStudentFiltered(t *testing.T) {
	db, mock, cleanup := newDoubtRepoMock(t)
	defer cleanup()
	repo := NewDoubtRepository(db)

	rows := doubtRows().AddRow(2, 1, "Math", "Chain rule?", "Pending", time.Now(), "A")
	mock.ExpectQuery(`SELECT d\.doubt_id, .+ WHERE d\.student_id = \? AND d\.status = \? ORDER BY d\.created_at DESC`).
		WithArgs(int64(1), "Pending").
		WillReturnRows(rows)

	doubts, err := repo.ListByStudent(context.Background(), 1, "Pending")
	require.NoError(t, err)
	require.Len(t, doubts, 1)
	assert.Equal(t, "A", doubts[0].StudentName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoubtRepositoryListByStudentAll(t *testing.T) {
	db, mock, cleanup := newDoubtRepoMock(t)
	defer cleanup()
	repo := NewDoubtRepository(db)

	rows := doubtRows().
		AddRow(2, 1, "Math", "Chain rule?", "Pending", time.Now(), "A").
		AddRow(1, 1, "Math", "What is a limit?", "Resolved", time.Now(), "A")
	mock.ExpectQuery(`SELECT d\.doubt_id, .+ WHERE d\.student_id = \? ORDER BY d\.created_at DESC`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	doubts, err := repo.ListByStudent(context.Background(), 1, models.StatusFilterAll)
	require.NoError(t, err)
	assert.Len(t, doubts, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoubtRepositoryListAll(t *testing.T) {
	db, mock, cleanup := newDoubtRepoMock(t)
	defer cleanup()
	repo := NewDoubtRepository(db)

	rows := doubtRows().AddRow(3, 2, "Physics", "Why is the sky blue?", "In Progress", time.Now(), "B")
	mock.ExpectQuery(`SELECT d\.doubt_id, .+ JOIN students s ON d\.student_id = s\.student_id WHERE d\.status = \? ORDER BY d\.created_at DESC`).
		WithArgs("In Progress").
		WillReturnRows(rows)

	doubts, err := repo.ListAll(context.Background(), "In Progress")
	require.NoError(t, err)
	require.Len(t, doubts, 1)
	assert.Equal(t, models.StatusInProgress, doubts[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoubtRepositoryStudentStats(t *testing.T) {
	db, mock, cleanup := newDoubtRepoMock(t)
	defer cleanup()
	repo := NewDoubtRepository(db)

	rows := sqlmock.NewRows([]string{"total", "pending", "resolved"}).AddRow(4, 2, 1)
	mock.ExpectQuery(`SELECT COUNT\(\*\) AS total`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	stats, err := repo.StudentStats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.Resolved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoubtRepositoryStatusCounts(t *testing.T) {
	db, mock, cleanup := newDoubtRepoMock(t)
	defer cleanup()
	repo := NewDoubtRepository(db)

	rows := sqlmock.NewRows([]string{"pending", "in_progress", "resolved"}).AddRow(3, 1, 2)
	mock.ExpectQuery(`SELECT\s+COALESCE`).WillReturnRows(rows)

	counts, err := repo.StatusCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, counts.Pending)
	assert.Equal(t, 1, counts.InProgress)
	assert.Equal(t, 2, counts.Resolved)
	assert.NoError(t, mock.ExpectationsWereMet())
}
