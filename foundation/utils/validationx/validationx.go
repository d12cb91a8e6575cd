// File: validationx.go
// Title: Console Input Validators
// Description: Concrete validators for raw console input: inclusive numeric
//              and date ranges, regex patterns, caller predicates and fixed
//              option sets. All string validators compare the raw text
//              without trimming or case folding.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive validation utilities
// - 2026-10-19 v0.2.0: Range rejects NaN, In is string based, added DateBetween and Match

// Package validationx contains the concrete validators used by the console
// readers. Every validator returns a validation.ValidationResult; range
// validators record the bounds in ValidationError.Expected so callers can
// render their own message.
package validationx

import (
	"fmt"
	"math"
	"regexp"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/msto63/termio/foundation/core/validation"
	"github.com/msto63/termio/foundation/utils/timex"
)

// Regex cache for compiled patterns to avoid recompilation
var (
	regexCache = make(map[string]*regexp.Regexp)
	regexMu    sync.RWMutex
)

// getCompiledRegex returns a cached compiled regex or compiles and caches it
func getCompiledRegex(pattern string) (*regexp.Regexp, error) {
	regexMu.RLock()
	if regex, exists := regexCache[pattern]; exists {
		regexMu.RUnlock()
		return regex, nil
	}
	regexMu.RUnlock()

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	regexMu.Lock()
	regexCache[pattern] = regex
	regexMu.Unlock()

	return regex, nil
}

// NumberRange is stored in ValidationError.Expected by Range
type NumberRange struct {
	Min float64
	Max float64
}

// DateRange is stored in ValidationError.Expected by DateBetween
type DateRange struct {
	From time.Time
	To   time.Time
}

// ===============================
// String Validation Functions
// ===============================

// MaxLength validates maximum string length in runes
func MaxLength(max int) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		str, ok := value.(string)
		if !ok {
			return validation.NewValidationError(validation.CodeType, "value must be a string")
		}
		if utf8.RuneCountInString(str) > max {
			return validation.NewValidationError(validation.CodeFormat, fmt.Sprintf("must be at most %d characters long", max))
		}
		return validation.NewValidationResult()
	}
}

// Pattern validates that string matches a regular expression
func Pattern(pattern string) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		str, ok := value.(string)
		if !ok {
			return validation.NewValidationError(validation.CodeType, "value must be a string")
		}

		regex, err := getCompiledRegex(pattern)
		if err != nil {
			return validation.NewValidationError(validation.CodePattern, fmt.Sprintf("invalid pattern: %v", err))
		}

		if !regex.MatchString(str) {
			return validation.NewValidationError(validation.CodePattern, "does not match required pattern")
		}

		return validation.NewValidationResult()
	}
}

// Match validates a string with a caller supplied predicate. A panic in
// the predicate is not recovered.
func Match(predicate func(string) bool) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		str, ok := value.(string)
		if !ok {
			return validation.NewValidationError(validation.CodeType, "value must be a string")
		}
		if !predicate(str) {
			return validation.NewValidationError(validation.CodeFormat, "does not satisfy the predicate")
		}
		return validation.NewValidationResult()
	}
}

// In validates that a string is exactly one of the allowed values
func In(allowed ...string) validation.ValidatorFunc {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}

	return func(value interface{}) validation.ValidationResult {
		str, ok := value.(string)
		if !ok {
			return validation.NewValidationError(validation.CodeType, "value must be a string")
		}
		if _, found := set[str]; !found {
			result := validation.NewValidationError(validation.CodeOption, fmt.Sprintf("must be one of: %v", allowed))
			result.Errors[0].Expected = allowed
			return result
		}
		return validation.NewValidationResult()
	}
}

// ===============================
// Numeric Validation Functions
// ===============================

// Range validates that a numeric value lies in [min, max]. NaN never does.
func Range(min, max float64) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		num, err := validation.ConvertToFloat64(value)
		if err != nil {
			return validation.NewValidationError(validation.CodeType, "must be a valid number")
		}

		if math.IsNaN(num) || num < min || num > max {
			result := validation.NewValidationError(validation.CodeRange, fmt.Sprintf("must be between %g and %g", min, max))
			result.Errors[0].Value = num
			result.Errors[0].Expected = NumberRange{Min: min, Max: max}
			return result
		}

		return validation.NewValidationResult()
	}
}

// ===============================
// Date Validation Functions
// ===============================

// DateBetween validates that a date lies in [from, to] at day precision.
// Accepts time.Time or a YYYY-MM-DD string.
func DateBetween(from, to time.Time) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		var t time.Time

		switch v := value.(type) {
		case time.Time:
			t = v
		case string:
			parsed, err := timex.ParseISODate(v)
			if err != nil {
				return validation.NewValidationError(validation.CodeDate, err.Error())
			}
			t = parsed
		default:
			return validation.NewValidationError(validation.CodeType, "must be a date")
		}

		if !timex.BetweenDays(t, from, to) {
			result := validation.NewValidationError(validation.CodeRange, fmt.Sprintf("must be between %s and %s",
				timex.FormatISODate(from), timex.FormatISODate(to)))
			result.Errors[0].Value = timex.FormatISODate(t)
			result.Errors[0].Expected = DateRange{From: timex.DateOf(from), To: timex.DateOf(to)}
			return result
		}

		return validation.NewValidationResult()
	}
}
