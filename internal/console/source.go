// ============================================================================
// termio - Validated terminal input
// ============================================================================
//
// Package:     console
// Description: Line source abstraction over the text terminal
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package console

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// ErrAborted is returned by interactive sources when the user cancels a prompt
var ErrAborted = errors.New("input aborted")

// LineSource is the terminal as seen by the reader: a prompt followed by one
// line of input, and plain output lines.
type LineSource interface {
	// ReadLine writes prompt without a terminator and blocks until one line
	// is available. The line is returned without its terminator and
	// otherwise unchanged.
	ReadLine(prompt string) (string, error)

	// WriteLine writes text followed by a newline
	WriteLine(text string) error
}

// ErrorWriter is implemented by sources that render rejection messages
// differently from ordinary output
type ErrorWriter interface {
	WriteError(text string) error
}

// StdSource reads lines from an io.Reader and writes to an io.Writer
type StdSource struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdSource creates a line source over in and out
func NewStdSource(in io.Reader, out io.Writer) *StdSource {
	return &StdSource{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Stdio returns a line source over os.Stdin and os.Stdout
func Stdio() *StdSource {
	return NewStdSource(os.Stdin, os.Stdout)
}

// ReadLine implements LineSource. A last line without terminator is
// returned; io.EOF is reported only when no characters remain.
func (s *StdSource) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(s.out, prompt); err != nil {
		return "", err
	}

	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// WriteLine implements LineSource
func (s *StdSource) WriteLine(text string) error {
	_, err := io.WriteString(s.out, text+"\n")
	return err
}
