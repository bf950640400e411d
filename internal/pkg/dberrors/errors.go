package dberrors

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// IsUniqueViolation checks if the error is a SQLite unique constraint
// violation on the given column ("table.column"). SQLite reports the failing
// column in the error message, e.g. "UNIQUE constraint failed: students.email".
func IsUniqueViolation(err error, column string) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	if sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique {
		return false
	}
	return column == "" || strings.Contains(sqliteErr.Error(), column)
}
