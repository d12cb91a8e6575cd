// ============================================================================
// termio - Validated terminal input
// ============================================================================
//
// Package:     console
// Description: Outcome of parsing one input line
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package console

import (
	"github.com/msto63/termio/foundation/core/validation"
)

// Result is the outcome of applying a parse function to one line: either an
// accepted value or a validation failure with a human-readable reason.
type Result[T any] struct {
	value      T
	validation validation.ValidationResult
}

// Accept returns a successful result carrying v
func Accept[T any](v T) Result[T] {
	return Result[T]{value: v, validation: validation.NewValidationResult()}
}

// Reject returns a failed result with the given validation code and reason
func Reject[T any](code, reason string) Result[T] {
	return Result[T]{validation: validation.NewValidationError(code, reason)}
}

// FromError adapts a (value, error) pair. The error text becomes the reason
// verbatim.
func FromError[T any](v T, err error) Result[T] {
	if err != nil {
		return Reject[T](validation.CodeFormat, err.Error())
	}
	return Accept(v)
}

// FromValidation adapts a validator outcome for value v
func FromValidation[T any](v T, vr validation.ValidationResult) Result[T] {
	if !vr.Valid {
		return Result[T]{validation: vr}
	}
	return Accept(v)
}

// Ok reports whether the line was accepted
func (r Result[T]) Ok() bool {
	return r.validation.Valid
}

// Value returns the accepted value, or the zero value of T
func (r Result[T]) Value() T {
	return r.value
}

// Reason returns the failure message, empty for accepted results
func (r Result[T]) Reason() string {
	return r.validation.Message()
}

// Code returns the validation code of the first failure
func (r Result[T]) Code() string {
	if first := r.validation.FirstError(); first != nil {
		return first.Code
	}
	return ""
}

// Validation returns the underlying validation result
func (r Result[T]) Validation() validation.ValidationResult {
	return r.validation
}
