// ============================================================================
// termio - Validated terminal input
// ============================================================================
//
// Package:     employee
// Description: One-line record mode
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package employee

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/msto63/termio/foundation/core/validation"
	"github.com/msto63/termio/foundation/utils/timex"
	"github.com/msto63/termio/internal/console"
)

// Record mode texts
const (
	RecordPrompt      = "Enter employee data in the format: <id>#<name>#<department>#<salary>#<yyyy-MM-DD> "
	RecordErrorPrompt = "Wrong format for Employee data"
	RecordHeader      = "You are entered the following Employee data"
)

// Separator splits the fields of a record line
const Separator = "#"

const recordFields = 5

// ParseRecord parses id#name#department#salary#birthDate. There is no
// escaping, so names containing '#' cannot be entered. Empty trailing fields
// count, so a line ending in '#' has six fields and is rejected.
func ParseRecord(line string) (Employee, error) {
	tokens := strings.Split(line, Separator)
	if len(tokens) != recordFields {
		return Employee{}, validation.NewValidationErrorWithField(validation.CodeFormat, "record",
			fmt.Sprintf("expected %d fields separated by '%s', got %d", recordFields, Separator, len(tokens)),
			line).ToError()
	}

	id, err := strconv.ParseInt(tokens[0], 10, 64)
	if err != nil {
		return Employee{}, fieldError(validation.CodeNumeric, "id", err, tokens[0])
	}

	salary, err := strconv.ParseInt(tokens[3], 10, 32)
	if err != nil {
		return Employee{}, fieldError(validation.CodeNumeric, "salary", err, tokens[3])
	}

	birthDate, err := timex.ParseISODate(tokens[4])
	if err != nil {
		return Employee{}, fieldError(validation.CodeDate, "birthDate", err, tokens[4])
	}

	return Employee{
		ID:         id,
		Name:       tokens[1],
		Department: tokens[2],
		Salary:     int(salary),
		BirthDate:  birthDate,
	}, nil
}

func fieldError(code, field string, err error, value string) error {
	return validation.NewValidationErrorWithField(code, field, field+": "+err.Error(), value).ToError()
}

// parseRecordLine adapts ParseRecord to the reader
func parseRecordLine(line string) console.Result[Employee] {
	e, err := ParseRecord(line)
	return console.FromError(e, err)
}

// ReadRecord reads one employee as a single line and echoes it
func ReadRecord(r *console.Reader) (Employee, error) {
	e, err := console.ReadValidated(r, RecordPrompt, RecordErrorPrompt, parseRecordLine)
	if err != nil {
		return Employee{}, err
	}
	if err := r.WriteLine(RecordHeader); err != nil {
		return Employee{}, err
	}
	if err := r.WriteLine(e.String()); err != nil {
		return Employee{}, err
	}
	return e, nil
}
