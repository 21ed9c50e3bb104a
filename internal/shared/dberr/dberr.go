package dberr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsUniqueViolation reports whether err comes from a unique constraint on either supported driver.
// When constraint is non-empty the violated constraint must match it as well. sqlite reports
// columns instead of constraint names, so columns (if any) are matched against its message.
func IsUniqueViolation(err error, constraint string, columns ...string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation &&
			(constraint == "" || pgErr.ConstraintName == constraint)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique &&
			matchesColumns(strings.ToLower(liteErr.Error()), columns)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "duplicate key value"):
		return constraint == "" || strings.Contains(msg, strings.ToLower(constraint))
	case strings.Contains(msg, "unique constraint failed"):
		return matchesColumns(msg, columns)
	}
	return false
}

// matchesColumns checks sqlite's "UNIQUE constraint failed: table.col" message.
func matchesColumns(msg string, columns []string) bool {
	if len(columns) == 0 {
		return true
	}
	for _, col := range columns {
		if strings.Contains(msg, "."+strings.ToLower(col)) {
			return true
		}
	}
	return false
}

// IsForeignKeyViolation reports a write that referenced a missing parent row.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "violates foreign key constraint") ||
		strings.Contains(msg, "foreign key constraint failed")
}
