package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the domain layer. Services wrap these with context via
// %w; controllers map them to HTTP statuses with errors.Is. Anything that does
// not match a sentinel is treated as a database/driver failure.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrValidation = errors.New("validation failed")
	ErrStorage    = errors.New("storage failure")
	ErrSchema     = errors.New("schema bootstrap failed")
)

// NotFound reports that the named entity does not exist.
func NotFound(entity string) error {
	return fmt.Errorf("%s: %w", entity, ErrNotFound)
}

// Conflict reports a uniqueness violation on the named field or entity.
func Conflict(detail string) error {
	return fmt.Errorf("%s: %w", detail, ErrConflict)
}

// Validation reports rejected input.
func Validation(detail string) error {
	return fmt.Errorf("%s: %w", detail, ErrValidation)
}

// Storage reports a managed-file operation failure.
func Storage(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
