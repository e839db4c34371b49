package models

import "time"

// Teacher represents an instructor account. The seeded admin account carries
// the is_admin flag and can never be deleted.
type Teacher struct {
	ID        int64     `db:"teacher_id" json:"teacher_id"`
	Name      string    `db:"name" json:"name"`
	Subject   string    `db:"subject" json:"subject"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	IsAdmin   bool      `db:"is_admin" json:"is_admin"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// TeacherRecord is the password-free projection returned by admin listings.
type TeacherRecord struct {
	ID      int64  `db:"teacher_id" json:"teacher_id"`
	Name    string `db:"name" json:"name"`
	Subject string `db:"subject" json:"subject"`
	Email   string `db:"email" json:"email"`
	IsAdmin bool   `db:"is_admin" json:"is_admin"`
}
