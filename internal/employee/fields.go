// ============================================================================
// termio - Validated terminal input
// ============================================================================
//
// Package:     employee
// Description: Field-by-field mode
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package employee

import (
	"time"

	"github.com/msto63/termio/internal/console"
)

// Field mode prompts
const (
	PromptID         = "Enter ID:"
	PromptName       = "Enter name:"
	PromptDepartment = "Enter department:"
	PromptSalary     = "Enter salary:"
	PromptBirthDate  = "Enter birth date:"

	ErrorPromptID         = "Wrong format for ID"
	ErrorPromptName       = "Wrong format for name"
	ErrorPromptDepartment = "Wrong format for department"
	ErrorPromptSalary     = "Wrong format for salary"
	ErrorPromptBirthDate  = "Wrong format for birth date"

	FieldsHeader = "Entered employee data"
)

// ReadFields reads an employee one field at a time under policy p. Ages are
// computed relative to now. ID and salary are read as numbers and truncated
// toward zero; IDs are exact up to config.MaxExactID, which config.Validate
// enforces.
func ReadFields(r *console.Reader, p Policy, now time.Time) (Employee, error) {
	id, err := r.ReadNumberRange(PromptID, ErrorPromptID, float64(p.MinID), float64(p.MaxID))
	if err != nil {
		return Employee{}, err
	}

	name, err := r.ReadStringPredicate(PromptName, ErrorPromptName, p.ValidName)
	if err != nil {
		return Employee{}, err
	}

	department, err := r.ReadStringOptions(PromptDepartment, ErrorPromptDepartment, p.Departments)
	if err != nil {
		return Employee{}, err
	}

	salary, err := r.ReadNumberRange(PromptSalary, ErrorPromptSalary, float64(p.MinSalary), float64(p.MaxSalary))
	if err != nil {
		return Employee{}, err
	}

	from, to := p.BirthDateRange(now)
	birthDate, err := r.ReadISODateRange(PromptBirthDate, ErrorPromptBirthDate, from, to)
	if err != nil {
		return Employee{}, err
	}

	e := Employee{
		ID:         int64(id),
		Name:       name,
		Department: department,
		Salary:     int(salary),
		BirthDate:  birthDate,
	}

	if err := r.WriteLine(FieldsHeader); err != nil {
		return Employee{}, err
	}
	if err := r.WriteLine(e.String()); err != nil {
		return Employee{}, err
	}
	return e, nil
}
