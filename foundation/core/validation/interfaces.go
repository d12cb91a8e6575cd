// File: interfaces.go
// Title: Core Validation Interfaces and Types
// Description: Defines the validation result types shared by the concrete
//              validators in utils/validationx and the console reader. A
//              validation failure is a value, never a panic or a returned
//              Go error, until a caller explicitly converts it with ToError.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation interfaces implementation
// - 2026-10-19 v0.2.0: Dropped context-aware validation, codes for console input

// Package validation provides the result types and composition helpers for
// validating raw console input. It contains no concrete validators; those
// live in utils/validationx.
package validation

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/termio/foundation/core/error"
)

// Standard validation error codes
const (
	CodeRequired = "VALIDATION_REQUIRED" // Field is required but missing
	CodeFormat   = "VALIDATION_FORMAT"   // Input does not match the required format
	CodeRange    = "VALIDATION_RANGE"    // Value outside of an inclusive range
	CodeType     = "VALIDATION_TYPE"     // Value has the wrong Go type
	CodePattern  = "VALIDATION_PATTERN"  // Regex pattern validation
	CodeOption   = "VALIDATION_OPTION"   // Value is not one of the allowed options
	CodeCustom   = "VALIDATION_CUSTOM"   // Custom validation rules
	CodeNumeric  = "VALIDATION_NUMERIC"  // Text is not a number of the target width
	CodeDate     = "VALIDATION_DATE"     // Text is not a calendar date
)

// Validator defines the interface for all validation functions
type Validator interface {
	Validate(value interface{}) ValidationResult
}

// ValidatorFunc is a function type that implements the Validator interface
type ValidatorFunc func(value interface{}) ValidationResult

// Validate implements the Validator interface for ValidatorFunc
func (f ValidatorFunc) Validate(value interface{}) ValidationResult {
	return f(value)
}

// ValidationResult represents the result of a validation operation
type ValidationResult struct {
	Valid   bool                   `json:"valid"`
	Errors  []ValidationError      `json:"errors,omitempty"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Code     string      `json:"code"`
	Field    string      `json:"field,omitempty"`
	Message  string      `json:"message"`
	Value    interface{} `json:"value,omitempty"`
	Expected interface{} `json:"expected,omitempty"`
}

// NewValidationResult creates a successful validation result
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// NewValidationError creates a failed validation result with a single error
func NewValidationError(code, message string) ValidationResult {
	return ValidationResult{
		Valid: false,
		Errors: []ValidationError{
			{
				Code:    code,
				Message: message,
			},
		},
	}
}

// NewValidationErrorWithField creates a validation error for a specific field
func NewValidationErrorWithField(code, field, message string, value interface{}) ValidationResult {
	return ValidationResult{
		Valid: false,
		Errors: []ValidationError{
			{
				Code:    code,
				Field:   field,
				Message: message,
				Value:   value,
			},
		},
	}
}

// AddError adds an error to an existing validation result
func (r *ValidationResult) AddError(code, message string) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{
		Code:    code,
		Message: message,
	})
	return r
}

// WithContext adds context information to the validation result
func (r *ValidationResult) WithContext(key string, value interface{}) *ValidationResult {
	if r.Context == nil {
		r.Context = make(map[string]interface{})
	}
	r.Context[key] = value
	return r
}

// FirstError returns the first validation error, or nil if validation passed
func (r ValidationResult) FirstError() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// Message returns the message of the first error, or "" for a valid result
func (r ValidationResult) Message() string {
	if first := r.FirstError(); first != nil {
		return first.Message
	}
	if !r.Valid {
		return "validation failed"
	}
	return ""
}

// ErrorMessages returns all error messages as a slice of strings
func (r ValidationResult) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Message
	}
	return messages
}

// HasError checks if the result contains a specific error code
func (r ValidationResult) HasError(code string) bool {
	for _, err := range r.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// ToError converts the validation result to a standard error.
// Returns nil if validation passed.
func (r ValidationResult) ToError() error {
	if r.Valid {
		return nil
	}

	if len(r.Errors) == 0 {
		return mdwerror.New("validation failed").
			WithCode(mdwerror.CodeValidationFailed)
	}

	first := r.Errors[0]
	err := mdwerror.New(first.Message).
		WithCode(mdwerror.CodeValidationFailed).
		WithDetail("validation_code", first.Code)

	if first.Field != "" {
		err = err.WithDetail("field", first.Field)
	}
	if first.Value != nil {
		err = err.WithDetail("value", first.Value)
	}
	if first.Expected != nil {
		err = err.WithDetail("expected", first.Expected)
	}
	if len(r.Errors) > 1 {
		err = err.WithDetail("totalErrors", len(r.Errors))
		err = err.WithDetail("allMessages", r.ErrorMessages())
	}

	return err
}

// String returns a human-readable representation of the validation result
func (r ValidationResult) String() string {
	if r.Valid {
		return "ValidationResult{valid: true}"
	}

	parts := []string{"ValidationResult{valid: false"}
	if len(r.Errors) > 0 {
		parts = append(parts, fmt.Sprintf("errors: %d", len(r.Errors)))
		parts = append(parts, fmt.Sprintf("first: %s", r.Errors[0].Message))
		if r.Errors[0].Field != "" {
			parts = append(parts, fmt.Sprintf("field: %s", r.Errors[0].Field))
		}
	}

	return strings.Join(parts, ", ") + "}"
}

// Combine merges multiple validation results into a single result
func Combine(results ...ValidationResult) ValidationResult {
	combined := NewValidationResult()

	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}
		for key, value := range result.Context {
			combined.WithContext(key, value)
		}
	}

	return combined
}
