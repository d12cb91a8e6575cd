// ============================================================================
// termio - Validated terminal input
// ============================================================================
//
// Package:     console
// Description: Specialized readers for numbers, dates and constrained text
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package console

import (
	"strconv"
	"time"

	"github.com/msto63/termio/foundation/core/validation"
	"github.com/msto63/termio/foundation/utils/timex"
	"github.com/msto63/termio/foundation/utils/validationx"
)

// ParseInt accepts a base-10 integer in the 32-bit range
func ParseInt(line string) Result[int] {
	v, err := strconv.ParseInt(line, 10, 32)
	if err != nil {
		return Reject[int](validation.CodeNumeric, err.Error())
	}
	return Accept(int(v))
}

// ParseLong accepts a base-10 64-bit integer
func ParseLong(line string) Result[int64] {
	v, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return Reject[int64](validation.CodeNumeric, err.Error())
	}
	return Accept(v)
}

// ParseDouble accepts a decimal floating point number
func ParseDouble(line string) Result[float64] {
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return Reject[float64](validation.CodeNumeric, err.Error())
	}
	return Accept(v)
}

// ParseISODate accepts a YYYY-MM-DD date
func ParseISODate(line string) Result[time.Time] {
	d, err := timex.ParseISODate(line)
	if err != nil {
		return Reject[time.Time](validation.CodeDate, err.Error())
	}
	return Accept(d)
}

// NumberInRange accepts a decimal number in [min, max]
func (m *Messages) NumberInRange(min, max float64) ParseFunc[float64] {
	check := validationx.Range(min, max)
	return func(line string) Result[float64] {
		parsed := ParseDouble(line)
		if !parsed.Ok() {
			return parsed
		}
		if !check(parsed.Value()).Valid {
			return Reject[float64](validation.CodeRange, m.NumberRange(min, max))
		}
		return parsed
	}
}

// Conforming accepts the raw line when v reports it valid. Any failure is
// rendered as the format message.
func (m *Messages) Conforming(v validation.Validator) ParseFunc[string] {
	return func(line string) Result[string] {
		if !v.Validate(line).Valid {
			return Reject[string](validation.CodeFormat, m.Format())
		}
		return Accept(line)
	}
}

// Satisfying accepts the raw line when predicate holds
func (m *Messages) Satisfying(predicate func(string) bool) ParseFunc[string] {
	return m.Conforming(validationx.Match(predicate))
}

// Matching accepts the raw line when it matches the regular expression
// pattern. An invalid pattern rejects every line.
func (m *Messages) Matching(pattern string) ParseFunc[string] {
	return m.Conforming(validationx.Pattern(pattern))
}

// OneOf accepts the raw line when it equals one of options exactly
func (m *Messages) OneOf(options []string) ParseFunc[string] {
	return m.Conforming(validationx.In(options...))
}

// DateInRange accepts a YYYY-MM-DD date in [from, to], compared by day
func (m *Messages) DateInRange(from, to time.Time) ParseFunc[time.Time] {
	check := validationx.DateBetween(from, to)
	return func(line string) Result[time.Time] {
		parsed := ParseISODate(line)
		if !parsed.Ok() {
			return parsed
		}
		if !check(parsed.Value()).Valid {
			return Reject[time.Time](validation.CodeRange, m.DateRange(from, to))
		}
		return parsed
	}
}

// ReadInt reads a 32-bit integer
func (r *Reader) ReadInt(prompt, errorPrompt string) (int, error) {
	return ReadValidated(r, prompt, errorPrompt, ParseInt)
}

// ReadLong reads a 64-bit integer
func (r *Reader) ReadLong(prompt, errorPrompt string) (int64, error) {
	return ReadValidated(r, prompt, errorPrompt, ParseLong)
}

// ReadDouble reads a floating point number
func (r *Reader) ReadDouble(prompt, errorPrompt string) (float64, error) {
	return ReadValidated(r, prompt, errorPrompt, ParseDouble)
}

// ReadNumberRange reads a number in the inclusive range [min, max]
func (r *Reader) ReadNumberRange(prompt, errorPrompt string, min, max float64) (float64, error) {
	return ReadValidated(r, prompt, errorPrompt, r.messages.NumberInRange(min, max))
}

// ReadStringPredicate reads a line accepted by predicate
func (r *Reader) ReadStringPredicate(prompt, errorPrompt string, predicate func(string) bool) (string, error) {
	return ReadValidated(r, prompt, errorPrompt, r.messages.Satisfying(predicate))
}

// ReadStringOptions reads a line equal to one of options. Comparison is
// case sensitive and without trimming.
func (r *Reader) ReadStringOptions(prompt, errorPrompt string, options []string) (string, error) {
	return ReadValidated(r, prompt, errorPrompt, r.messages.OneOf(options))
}

// ReadISODate reads a YYYY-MM-DD date
func (r *Reader) ReadISODate(prompt, errorPrompt string) (time.Time, error) {
	return ReadValidated(r, prompt, errorPrompt, ParseISODate)
}

// ReadISODateRange reads a date in the inclusive range [from, to]
func (r *Reader) ReadISODateRange(prompt, errorPrompt string, from, to time.Time) (time.Time, error) {
	return ReadValidated(r, prompt, errorPrompt, r.messages.DateInRange(from, to))
}
