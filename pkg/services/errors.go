package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrDuplicatePush is returned when a result is pushed for a job
	// that already reached a terminal state
	ErrDuplicatePush = errors.New("job result already pushed")

	// ErrLeaseExpired is returned when a push arrives for a lease that
	// expired, was reaped, or is held by another worker
	ErrLeaseExpired = errors.New("job lease expired or not held")

	// ErrContractViolation is returned when a pushed result does not
	// satisfy the role's output contract
	ErrContractViolation = errors.New("result violates output contract")

	// ErrNoJobsAvailable is returned by pull when no pending job matches
	ErrNoJobsAvailable = errors.New("no pending jobs available")

	// ErrAtCapacity is returned by pull when the global concurrent job
	// limit is reached
	ErrAtCapacity = errors.New("concurrent job capacity reached")

	// ErrNotCancellable is returned when cancelling an already terminal
	// pipeline
	ErrNotCancellable = errors.New("pipeline is already terminal")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
