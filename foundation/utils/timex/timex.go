// File: timex.go
// Title: Calendar Date Utilities
// Description: Strict ISO calendar date parsing and day-precision helpers
//              for reading dates from the console. Dates are represented as
//              time.Time at midnight UTC so that comparisons ignore clocks
//              and zones.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2025-07-26 v0.1.1: Added FormatDurationCompact, European date parsing
// - 2026-10-19 v0.2.0: Reduced to strict ISO dates and date arithmetic

// Package timex provides calendar date helpers for console input.
package timex

import (
	"time"
)

// ISO8601Date is the only date layout accepted from the console
const ISO8601Date = "2006-01-02"

// ParseISODate parses value as YYYY-MM-DD. The year must have four digits,
// month and day two digits each, and the day must exist in that month.
// The error is the one returned by time.Parse.
func ParseISODate(value string) (time.Time, error) {
	t, err := time.Parse(ISO8601Date, value)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// FormatISODate formats the date part of t as YYYY-MM-DD
func FormatISODate(t time.Time) string {
	return t.Format(ISO8601Date)
}

// DateOf returns the calendar date of t as midnight UTC, dropping the clock
// and the zone offset
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date builds a midnight UTC date
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date
func Today() time.Time {
	return DateOf(time.Now())
}

// YearsBefore returns the calendar date that lies the given number of years
// before t. February 29 maps to March 1 in non-leap target years, following
// time.AddDate normalization.
func YearsBefore(t time.Time, years int) time.Time {
	return DateOf(t).AddDate(-years, 0, 0)
}

// BetweenDays reports whether the date of t lies in [from, to], both ends
// inclusive, comparing calendar dates only
func BetweenDays(t, from, to time.Time) bool {
	d := DateOf(t)
	return !d.Before(DateOf(from)) && !d.After(DateOf(to))
}

// Age calculates the age in years from the given birth date to the reference date
func Age(birthDate, referenceDate time.Time) int {
	age := referenceDate.Year() - birthDate.Year()

	// Adjust if birthday hasn't occurred this year
	if referenceDate.Month() < birthDate.Month() ||
		(referenceDate.Month() == birthDate.Month() && referenceDate.Day() < birthDate.Day()) {
		age--
	}

	return age
}
