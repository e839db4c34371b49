package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/doubt-tracker-api/internal/models"
)

// ResponseRepository manages persistence for teacher responses.
type ResponseRepository struct {
	db *sqlx.DB
}

// NewResponseRepository constructs a ResponseRepository.
func NewResponseRepository(db *sqlx.DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

// CreateWithStatus inserts a new response and moves the doubt to the given
// lifecycle stage in a single transaction, so a failed status update never
// leaves an orphaned response behind. Fills in the generated response ID.
func (r *ResponseRepository) CreateWithStatus(ctx context.Context, response *models.Response, status models.DoubtStatus) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin respond tx: %w", err)
	}

	const insert = `INSERT INTO responses (doubt_id, teacher_id, response_text) VALUES (?, ?, ?)`
	res, err := tx.ExecContext(ctx, insert, response.DoubtID, response.TeacherID, response.ResponseText)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("create response: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("response insert id: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE doubts SET status = ? WHERE doubt_id = ?`, status, response.DoubtID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("update doubt status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit respond tx: %w", err)
	}
	response.ID = id
	return nil
}

// ListByDoubt returns a doubt's responses with teacher names, newest first.
func (r *ResponseRepository) ListByDoubt(ctx context.Context, doubtID int64) ([]models.ResponseWithTeacher, error) {
	const query = `SELECT r.response_id, r.doubt_id, r.teacher_id, r.response_text, r.response_date, t.name AS teacher_name
		FROM responses r JOIN teachers t ON r.teacher_id = t.teacher_id
		WHERE r.doubt_id = ? ORDER BY r.response_date DESC`
	responses := []models.ResponseWithTeacher{}
	if err := r.db.SelectContext(ctx, &responses, query, doubtID); err != nil {
		return nil, fmt.Errorf("list doubt responses: %w", err)
	}
	return responses, nil
}

// CountByTeacher returns the number of responses a teacher has written.
func (r *ResponseRepository) CountByTeacher(ctx context.Context, teacherID int64) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM responses WHERE teacher_id = ?`, teacherID); err != nil {
		return 0, fmt.Errorf("count teacher responses: %w", err)
	}
	return count, nil
}
