// ============================================================================
// termio - Validated terminal input
// ============================================================================
//
// Package:     employee
// Description: Field constraints of the field-by-field reader
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package employee

import (
	"time"

	"github.com/msto63/termio/foundation/core/validation"
	"github.com/msto63/termio/foundation/utils/timex"
	"github.com/msto63/termio/foundation/utils/validationx"
	"github.com/msto63/termio/pkg/core/config"
)

// NamePattern accepts a capital letter followed by at least two lower case
// letters
const NamePattern = `^[A-Z][a-z]{2,}$`

// Policy bounds the fields read by ReadFields
type Policy struct {
	MinID       int64
	MaxID       int64
	MinSalary   int
	MaxSalary   int
	MinAge      int
	MaxAge      int
	Departments []string

	// MaxNameLength caps the name in runes
	MaxNameLength int
}

// DefaultPolicy returns the built-in constraints
func DefaultPolicy() Policy {
	return Policy{
		MinID:       100000,
		MaxID:       999999,
		MinSalary:   5000,
		MaxSalary:   30000,
		MinAge:      18,
		MaxAge:      70,
		Departments: []string{"QA", "Audit", "Development", "Management"},

		MaxNameLength: 64,
	}
}

// PolicyFromConfig builds a policy from the [employee] section
func PolicyFromConfig(cfg config.EmployeeConfig) Policy {
	return Policy{
		MinID:       cfg.MinID,
		MaxID:       cfg.MaxID,
		MinSalary:   cfg.MinSalary,
		MaxSalary:   cfg.MaxSalary,
		MinAge:      cfg.MinAge,
		MaxAge:      cfg.MaxAge,
		Departments: append([]string(nil), cfg.Departments...),

		MaxNameLength: cfg.MaxNameLength,
	}
}

// BirthDateRange returns the oldest and the youngest accepted birth date on
// the day now
func (p Policy) BirthDateRange(now time.Time) (from, to time.Time) {
	return timex.YearsBefore(now, p.MaxAge), timex.YearsBefore(now, p.MinAge)
}

// NameRule checks the length limit first, then NamePattern
func (p Policy) NameRule() *validation.ValidatorChain {
	return validation.NewValidatorChain("employee.name").
		StopOnFirstError(true).
		AddFunc(validationx.MaxLength(p.MaxNameLength)).
		AddFunc(validationx.Pattern(NamePattern))
}

// ValidName reports whether name passes NameRule
func (p Policy) ValidName(name string) bool {
	return p.NameRule().Validate(name).Valid
}
