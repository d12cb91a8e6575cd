// Package error provides structured errors for failures that leave the
// console validation loop.
//
// Package: error
// Title: termio Error Handling
// Description: Errors carry a code, a severity derived from the code, the
//              failing operation and free-form details. Validation failures
//              never become *Error values while the reader loop runs; only
//              device, configuration and caller errors do.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Usage:
//
//	err := mdwerror.Wrap(io.EOF, "terminal input closed").
//		WithCode(mdwerror.CodeDeviceError).
//		WithOperation("console.ReadValidated").
//		WithDetail("prompt", "Enter ID:")
//
//	if mdwerror.HasCode(err, mdwerror.CodeDeviceError) {
//		// errors.Is(err, io.EOF) also holds
//	}
package error
