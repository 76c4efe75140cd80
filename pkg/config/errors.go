package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration loading and validation.
var (
	ErrConfigNotFound   = errors.New("configuration file not found")
	ErrInvalidYAML      = errors.New("invalid YAML syntax")
	ErrValidationFailed = errors.New("configuration validation failed")
)

// ValidationError carries the section and field that failed validation.
type ValidationError struct {
	Section string
	Field   string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config section %s, field %s: %v", e.Section, e.Field, e.Err)
	}
	return fmt.Sprintf("config section %s: %v", e.Section, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
