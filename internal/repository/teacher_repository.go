package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/doubt-tracker-api/internal/models"
)

// TeacherRepository manages persistence for teachers.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// Create inserts a new non-admin teacher and fills in the generated ID.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	const query = `INSERT INTO teachers (name, subject, email, password) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, teacher.Name, teacher.Subject, teacher.Email, teacher.Password)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create teacher: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("teacher insert id: %w", err)
	}
	teacher.ID = id
	return nil
}

// FindByEmail fetches a teacher by email.
func (r *TeacherRepository) FindByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	const query = `SELECT teacher_id, name, subject, email, password, is_admin, created_at FROM teachers WHERE email = ?`
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, email); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// FindByID fetches a teacher by ID.
func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	const query = `SELECT teacher_id, name, subject, email, password, is_admin, created_at FROM teachers WHERE teacher_id = ?`
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, id); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// ExistsByEmail checks whether a teacher already uses the given email.
func (r *TeacherRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT 1 FROM teachers WHERE email = ? LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check teacher email: %w", err)
	}
	return true, nil
}

// List returns every teacher without password material, ordered by id.
func (r *TeacherRepository) List(ctx context.Context) ([]models.TeacherRecord, error) {
	const query = `SELECT teacher_id, name, subject, email, is_admin FROM teachers ORDER BY teacher_id`
	teachers := []models.TeacherRecord{}
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// DeleteNonAdmin removes the teacher only when its is_admin flag is unset.
// The predicate repeats the admin guard the service already performs.
func (r *TeacherRepository) DeleteNonAdmin(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM teachers WHERE teacher_id = ? AND is_admin = 0`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("delete teacher: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete teacher rows: %w", err)
	}
	return affected, nil
}

// CountAll returns the total number of teachers.
func (r *TeacherRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM teachers`); err != nil {
		return 0, fmt.Errorf("count teachers: %w", err)
	}
	return count, nil
}
