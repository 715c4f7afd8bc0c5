package repo

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by update and get when no record has the
// requested id. Deletes deliberately do not return it; deleting a missing
// id is a no-op.
var ErrNotFound = errors.New("record not found")

// ValidationError rejects a create or import payload before any mutation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError. Exported so services can reject
// inputs with the same taxonomy the store uses.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError anywhere in its
// chain.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PersistenceError wraps a failed snapshot write. When it is returned the
// in-memory dataset has not been touched.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string { return "persist snapshot: " + e.Err.Error() }
func (e *PersistenceError) Unwrap() error { return e.Err }
