// ============================================================================
// termio - Validated terminal input
// ============================================================================
//
// Package:     consoletest
// Description: Scripted line source for tests
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package consoletest provides a scripted console.LineSource that records
// everything written to the terminal.
package consoletest

import (
	"io"
	"strings"
)

// Source replays Inputs one line per ReadLine and records prompts and
// output. When the script is exhausted ReadLine returns EndErr, io.EOF by
// default.
type Source struct {
	Inputs []string

	// Prompts holds every prompt in the order it was shown
	Prompts []string

	// Lines holds every line written with WriteLine
	Lines []string

	// EndErr is returned once Inputs are used up
	EndErr error

	// WriteErr, when set, is returned by WriteLine
	WriteErr error

	transcript strings.Builder
	next       int
}

// New returns a source replaying inputs
func New(inputs ...string) *Source {
	return &Source{Inputs: inputs}
}

// ReadLine implements console.LineSource
func (s *Source) ReadLine(prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	s.transcript.WriteString(prompt)

	if s.next >= len(s.Inputs) {
		if s.EndErr != nil {
			return "", s.EndErr
		}
		return "", io.EOF
	}

	line := s.Inputs[s.next]
	s.next++
	s.transcript.WriteString(line + "\n")
	return line, nil
}

// WriteLine implements console.LineSource
func (s *Source) WriteLine(text string) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.Lines = append(s.Lines, text)
	s.transcript.WriteString(text + "\n")
	return nil
}

// Consumed returns how many scripted lines were read
func (s *Source) Consumed() int {
	return s.next
}

// Transcript returns what an echoing terminal would show: prompts, the
// typed lines and the output lines, in order
func (s *Source) Transcript() string {
	return s.transcript.String()
}
