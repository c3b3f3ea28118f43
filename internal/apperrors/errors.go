// Package apperrors defines the error taxonomy the service layer reports
// and the handlers translate to HTTP status codes.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("invalid request")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("access denied")
	ErrConflict   = errors.New("conflict")
)

func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFound(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

func Conflict(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}
