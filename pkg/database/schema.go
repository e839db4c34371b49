package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const schema = `
CREATE TABLE IF NOT EXISTS students (
	student_id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS teachers (
	teacher_id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	subject TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	is_admin INTEGER DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS doubts (
	doubt_id INTEGER PRIMARY KEY AUTOINCREMENT,
	student_id INTEGER NOT NULL,
	subject TEXT NOT NULL,
	doubt_text TEXT NOT NULL,
	status TEXT DEFAULT 'Pending' CHECK(status IN ('Pending','In Progress','Resolved')),
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (student_id) REFERENCES students(student_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS responses (
	response_id INTEGER PRIMARY KEY AUTOINCREMENT,
	doubt_id INTEGER NOT NULL,
	teacher_id INTEGER NOT NULL,
	response_text TEXT NOT NULL,
	response_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (doubt_id) REFERENCES doubts(doubt_id) ON DELETE CASCADE,
	FOREIGN KEY (teacher_id) REFERENCES teachers(teacher_id) ON DELETE CASCADE
);
`

// seedTeacher describes a default account created on first run.
type seedTeacher struct {
	Name     string
	Subject  string
	Email    string
	Password string
	IsAdmin  bool
}

var seedTeachers = []seedTeacher{
	{Name: "Admin", Subject: "All Subjects", Email: "admin@doubttracker.com", Password: "admin123", IsAdmin: true},
	{Name: "Dr. Sharma", Subject: "Mathematics", Email: "sharma@doubttracker.com", Password: "teacher123", IsAdmin: false},
}

// Migrate creates the schema. Safe to run on every process start.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Seed inserts the default admin and subject teacher accounts when their
// emails are absent, so the system is usable immediately after first start.
func Seed(ctx context.Context, db *sqlx.DB, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, t := range seedTeachers {
		var count int
		if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM teachers WHERE email = ?", t.Email); err != nil {
			return fmt.Errorf("check seed teacher %s: %w", t.Email, err)
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(t.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}

		isAdmin := 0
		if t.IsAdmin {
			isAdmin = 1
		}
		if _, err := db.ExecContext(ctx,
			"INSERT INTO teachers (name, subject, email, password, is_admin) VALUES (?, ?, ?, ?, ?)",
			t.Name, t.Subject, t.Email, string(hash), isAdmin,
		); err != nil {
			return fmt.Errorf("insert seed teacher %s: %w", t.Email, err)
		}
		logger.Info("seeded teacher account", zap.String("email", t.Email), zap.Bool("is_admin", t.IsAdmin))
	}

	return nil
}
