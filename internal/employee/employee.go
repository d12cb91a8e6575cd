// ============================================================================
// termio - Validated terminal input
// ============================================================================
//
// Package:     employee
// Description: Employee record of the demo program
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package employee is the demo caller of the validated reader: it reads an
// employee either as one '#'-delimited line or field by field.
package employee

import (
	"fmt"
	"time"

	"github.com/msto63/termio/foundation/utils/timex"
)

// Employee is one demo record
type Employee struct {
	ID         int64
	Name       string
	Department string
	Salary     int
	BirthDate  time.Time
}

// String renders the record for the terminal
func (e Employee) String() string {
	return fmt.Sprintf("Employee[id=%d, name=%s, department=%s, salary=%d, birthDate=%s]",
		e.ID, e.Name, e.Department, e.Salary, timex.FormatISODate(e.BirthDate))
}
