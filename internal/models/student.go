package models

import "time"

// Student represents a learner registered through the public sign-up form.
type Student struct {
	ID        int64     `db:"student_id" json:"student_id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// StudentWithDoubtCount is a student row joined with its number of doubts,
// used by the admin roster listing.
type StudentWithDoubtCount struct {
	ID         int64     `db:"student_id" json:"student_id"`
	Name       string    `db:"name" json:"name"`
	Email      string    `db:"email" json:"email"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	DoubtCount int       `db:"doubt_count" json:"doubt_count"`
}
