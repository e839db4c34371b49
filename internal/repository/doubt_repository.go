package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/doubt-tracker-api/internal/models"
)

const doubtWithStudentColumns = `d.doubt_id, d.student_id, d.subject, d.doubt_text, d.status, d.created_at, s.name AS student_name`

// DoubtRepository manages persistence for doubts.
type DoubtRepository struct {
	db *sqlx.DB
}

// NewDoubtRepository constructs a DoubtRepository.
func NewDoubtRepository(db *sqlx.DB) *DoubtRepository {
	return &DoubtRepository{db: db}
}

// Create inserts a new doubt with the default Pending status.
func (r *DoubtRepository) Create(ctx context.Context, doubt *models.Doubt) error {
	const query = `INSERT INTO doubts (student_id, subject, doubt_text) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, doubt.StudentID, doubt.Subject, doubt.DoubtText)
	if err != nil {
		return fmt.Errorf("create doubt: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("doubt insert id: %w", err)
	}
	doubt.ID = id
	doubt.Status = models.StatusPending
	return nil
}

// ListByStudent returns a student's doubts, optionally filtered by status,
// newest first.
func (r *DoubtRepository) ListByStudent(ctx context.Context, studentID int64, status string) ([]models.DoubtWithStudent, error) {
	query := `SELECT ` + doubtWithStudentColumns + ` FROM doubts d JOIN students s ON d.student_id = s.student_id WHERE d.student_id = ?`
	args := []interface{}{studentID}
	if status != "" && status != models.StatusFilterAll {
		query += ` AND d.status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY d.created_at DESC`

	doubts := []models.DoubtWithStudent{}
	if err := r.db.SelectContext(ctx, &doubts, query, args...); err != nil {
		return nil, fmt.Errorf("list student doubts: %w", err)
	}
	return doubts, nil
}

// ListAll returns doubts across all students, optionally filtered by status,
// newest first.
func (r *DoubtRepository) ListAll(ctx context.Context, status string) ([]models.DoubtWithStudent, error) {
	query := `SELECT ` + doubtWithStudentColumns + ` FROM doubts d JOIN students s ON d.student_id = s.student_id`
	args := []interface{}{}
	if status != "" && status != models.StatusFilterAll {
		query += ` WHERE d.status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY d.created_at DESC`

	doubts := []models.DoubtWithStudent{}
	if err := r.db.SelectContext(ctx, &doubts, query, args...); err != nil {
		return nil, fmt.Errorf("list doubts: %w", err)
	}
	return doubts, nil
}

// FindWithStudent fetches a single doubt joined with the student name.
func (r *DoubtRepository) FindWithStudent(ctx context.Context, doubtID int64) (*models.DoubtWithStudent, error) {
	query := `SELECT ` + doubtWithStudentColumns + ` FROM doubts d JOIN students s ON d.student_id = s.student_id WHERE d.doubt_id = ?`
	var doubt models.DoubtWithStudent
	if err := r.db.GetContext(ctx, &doubt, query, doubtID); err != nil {
		return nil, err
	}
	return &doubt, nil
}

// StudentStats aggregates total, pending and resolved counts for one student.
func (r *DoubtRepository) StudentStats(ctx context.Context, studentID int64) (*models.StudentStats, error) {
	const query = `SELECT COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN status = 'Pending' THEN 1 ELSE 0 END), 0) AS pending,
		COALESCE(SUM(CASE WHEN status = 'Resolved' THEN 1 ELSE 0 END), 0) AS resolved
		FROM doubts WHERE student_id = ?`
	var stats models.StudentStats
	if err := r.db.GetContext(ctx, &stats, query, studentID); err != nil {
		return nil, fmt.Errorf("student stats: %w", err)
	}
	return &stats, nil
}

// StatusCounts aggregates global doubt counts per lifecycle stage.
func (r *DoubtRepository) StatusCounts(ctx context.Context) (*models.StatusCounts, error) {
	const query = `SELECT
		COALESCE(SUM(CASE WHEN status = 'Pending' THEN 1 ELSE 0 END), 0) AS pending,
		COALESCE(SUM(CASE WHEN status = 'In Progress' THEN 1 ELSE 0 END), 0) AS in_progress,
		COALESCE(SUM(CASE WHEN status = 'Resolved' THEN 1 ELSE 0 END), 0) AS resolved
		FROM doubts`
	var counts models.StatusCounts
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("doubt status counts: %w", err)
	}
	return &counts, nil
}

// CountAll returns the total number of doubts.
func (r *DoubtRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM doubts`); err != nil {
		return 0, fmt.Errorf("count doubts: %w", err)
	}
	return count, nil
}
