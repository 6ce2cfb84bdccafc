package application

import "errors"

var (
	// ErrUnauthorized is returned when the caller lacks permission for an operation.
	ErrUnauthorized = errors.New("application: unauthorized")
	// ErrNotFound is returned when the referenced customer or room does not exist.
	ErrNotFound = errors.New("application: not found")
	// ErrAlreadyExists is returned when a room number or customer email is already registered.
	ErrAlreadyExists = errors.New("application: already exists")
	// ErrConflict is returned when the requested stay overlaps an existing reservation.
	ErrConflict = errors.New("application: room already booked for these dates")
)

// ValidationError captures field level validation issues that callers can surface to users.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil {
		return ""
	}
	return "validation failed"
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// add records a field level validation error.
func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}
