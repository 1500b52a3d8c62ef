package service

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Validation messages surfaced to callers verbatim.
const (
	MsgNameRequired        = "name required"
	MsgDescriptionRequired = "description required"
	MsgPricePositive       = "price must be positive"
	MsgInvalidCategory     = "invalid category"
	MsgInvalidAvailability = "invalid availability"
)

// ValidationError rejects a payload before any storage access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// PersistenceError wraps a storage failure. The operation must be treated as
// not applied.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("menu item %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// SQLState returns the Postgres error code behind the failure, or "" when the
// cause is not a server error (timeouts, connection loss).
func (e *PersistenceError) SQLState() string {
	var pgErr *pgconn.PgError
	if errors.As(e.Err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func persistence(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
