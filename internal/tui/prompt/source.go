// ============================================================================
// termio - Validated terminal input
// ============================================================================
//
// Package:     prompt
// Description: console.LineSource backed by a bubbletea program per line
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package prompt implements an interactive line source with line editing
// and styled rejection messages.
package prompt

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/msto63/termio/internal/console"
)

// ErrAborted is returned by ReadLine when the user presses Ctrl+C or Esc
var ErrAborted = console.ErrAborted

// Option configures a Source
type Option func(*Source)

// WithInput reads key presses from in instead of os.Stdin
func WithInput(in io.Reader) Option {
	return func(s *Source) { s.in = in }
}

// WithHelp shows the key help below the input field
func WithHelp(show bool) Option {
	return func(s *Source) { s.showHelp = show }
}

// Source runs one inline bubbletea program for every ReadLine
type Source struct {
	in       io.Reader
	out      io.Writer
	showHelp bool

	// run is replaced in tests
	run func(Model) (Model, error)
}

// NewSource creates an interactive source writing to out
func NewSource(out io.Writer, opts ...Option) *Source {
	s := &Source{
		in:  os.Stdin,
		out: out,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.run = s.runProgram
	return s
}

func (s *Source) runProgram(m Model) (Model, error) {
	p := tea.NewProgram(m, tea.WithInput(s.in), tea.WithOutput(s.out))
	final, err := p.Run()
	if err != nil {
		return m, err
	}
	result, ok := final.(Model)
	if !ok {
		return m, fmt.Errorf("unexpected model type %T", final)
	}
	return result, nil
}

// ReadLine implements console.LineSource
func (s *Source) ReadLine(prompt string) (string, error) {
	m, err := s.run(NewModel(prompt, s.showHelp))
	if err != nil {
		return "", err
	}
	if !m.Submitted() {
		return "", ErrAborted
	}
	return m.Value(), nil
}

// WriteLine implements console.LineSource
func (s *Source) WriteLine(text string) error {
	_, err := fmt.Fprintln(s.out, TextStyle.Render(text))
	return err
}

// WriteError implements console.ErrorWriter
func (s *Source) WriteError(text string) error {
	_, err := fmt.Fprintln(s.out, ErrorStyle.Render(text))
	return err
}

// IsInteractive reports whether stdin and stdout are both terminals
func IsInteractive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
