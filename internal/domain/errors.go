package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the sentinel every ValidationError unwraps to.
	ErrValidation = errors.New("validation failed")
	// ErrConfiguration is the sentinel every ConfigurationError unwraps to.
	ErrConfiguration = errors.New("configuration incomplete")

	// Voucher errors
	ErrVoucherNotFound = errors.New("voucher not found")
	ErrNoVouchers      = errors.New("no vouchers found")

	// Settings errors
	ErrSettingsNotFound = errors.New("settings not found")
)

// ValidationError reports malformed input, such as a bad date or a non-positive amount.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ConfigurationError reports missing or invalid required configuration.
type ConfigurationError struct {
	Field   string
	Message string
}

// NewConfigurationError creates a ConfigurationError.
func NewConfigurationError(field, message string) *ConfigurationError {
	return &ConfigurationError{Field: field, Message: message}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration incomplete: %s: %s", e.Field, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}
