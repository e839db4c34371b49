package repository

import (
	"errors"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// ErrDuplicateEmail reports that an insert hit the unique index on an email
// column. The existence pre-checks in the services race with concurrent
// inserts, so creates surface the constraint violation as a typed error.
var ErrDuplicateEmail = errors.New("email already exists")

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
