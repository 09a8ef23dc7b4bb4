package postgres

import (
	"strings"
)

// isNotNullConstraintViolation checks the error text for PostgreSQL not_null_violation patterns.
func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
