// ============================================================================
// termio - Validated terminal input
// ============================================================================
//
// Package:     prompt
// Description: Single line input model
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package prompt

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const helpText = "enter submit • esc cancel"

// Model asks for exactly one line
type Model struct {
	input     textinput.Model
	prompt    string
	submitted bool
	aborted   bool
	value     string
	showHelp  bool
}

// NewModel creates a focused input model showing prompt
func NewModel(prompt string, showHelp bool) Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = PromptStyle
	ti.TextStyle = InputStyle
	ti.Focus()

	return Model{
		input:    ti,
		prompt:   prompt,
		showHelp: showHelp,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Done() {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.value = m.input.Value()
			m.submitted = true
			m.input.Blur()
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			m.input.Blur()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt. After submission only the prompt and the value
// remain on screen.
func (m Model) View() string {
	switch {
	case m.submitted:
		return PromptStyle.Render(m.prompt) + m.value + "\n"
	case m.aborted:
		return PromptStyle.Render(m.prompt) + "\n"
	}

	view := m.input.View()
	if m.showHelp {
		view += "\n" + HelpStyle.Render(helpText)
	}
	return view
}

// Done reports whether the user submitted or aborted
func (m Model) Done() bool {
	return m.submitted || m.aborted
}

// Submitted reports whether Enter was pressed
func (m Model) Submitted() bool {
	return m.submitted
}

// Aborted reports whether the prompt was cancelled
func (m Model) Aborted() bool {
	return m.aborted
}

// Value returns the submitted line
func (m Model) Value() string {
	return m.value
}
