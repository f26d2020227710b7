package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation reports whether err is a unique-constraint violation.
// A constraint name narrows the check to that index, which the onboarding
// path uses to tell username collisions from email collisions; without one
// any duplicate-key failure from Postgres or sqlite matches.
func IsUniqueViolation(err error, constraintName ...string) bool {
	if err == nil {
		return false
	}
	name := ""
	if len(constraintName) > 0 {
		name = constraintName[0]
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return name == "" || pgErr.ConstraintName == name
	}

	// sqlite (tests) and wrapped driver errors only expose message text.
	msg := err.Error()
	if name != "" {
		return strings.Contains(msg, name)
	}
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
