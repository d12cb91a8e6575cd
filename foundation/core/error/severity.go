// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to pick the log level of an error and to
//              decide whether a failure ends the program.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity mapping for console reader codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a recoverable problem such as rejected user input
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific code
	SeverityMedium

	// SeverityHigh indicates a failure that ends the current operation,
	// e.g. the terminal input was closed
	SeverityHigh

	// SeverityCritical indicates the program cannot continue at all
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeEnvironmentError, CodeInternal:
		return SeverityCritical

	case CodeDeviceError, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh

	case CodeAborted, CodeCanceled:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound, CodeValidationFailed,
		CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
