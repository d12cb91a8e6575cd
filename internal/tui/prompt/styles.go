// ============================================================================
// termio - Validated terminal input
// ============================================================================
//
// Package:     prompt
// Description: Styles for the interactive prompt
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package prompt

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorFg      = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	InputStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	TextStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)
