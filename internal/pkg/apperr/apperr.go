package apperr

import (
	"errors"
	"fmt"
)

// Sentinel failures resolved locally by services. The error handler
// middleware maps them to response statuses; anything else is treated
// as an internal failure.
var (
	ErrUnauthenticated = errors.New("caller identity could not be resolved")
	ErrNotFound        = errors.New("resource not found")
	ErrForbidden       = errors.New("access to the target resource is forbidden")
)

// FieldError is a field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

// AsFieldError unwraps err into a *FieldError if it is one.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
