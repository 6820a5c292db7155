// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Identity-related errors
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIdentityInactive   = errors.New("identity is deactivated")

	// Company-related errors
	ErrCompanyNotFound  = errors.New("company not found")
	ErrDuplicateCompany = errors.New("company name or license number already registered")
	ErrCompanyInactive  = errors.New("company is deactivated")

	// Grievance-related errors
	ErrGrievanceNotFound  = errors.New("grievance not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrDuplicateReference = errors.New("grievance reference already exists")

	// Sequence allocation errors. ErrSequenceExhausted is the only
	// caller-facing error whose outcome depends on retry history; it is
	// safe for the caller to retry the whole operation.
	ErrSequenceExhausted = errors.New("grievance reference allocation retries exhausted")
)

// ValidationError aggregates every field violation found in one input, so a
// caller sees the full list at once instead of failing field-by-field.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// Is makes errors.Is(err, ErrInvalidInput) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError builds a ValidationError from formatted violations.
func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// Violationf appends a formatted violation and returns the receiver, so
// callers can chain checks before deciding whether any violation occurred.
func (e *ValidationError) Violationf(format string, args ...any) *ValidationError {
	e.Violations = append(e.Violations, fmt.Sprintf(format, args...))
	return e
}

// OrNil returns nil when no violations were collected.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Violations) == 0 {
		return nil
	}
	return e
}
