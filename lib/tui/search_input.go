// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// SearchInput is the single-line keyword editor of a combobox. The
// caller routes keystrokes to Update and reads the text with Value.
type SearchInput struct {
	// Placeholder is drawn faint while the input is empty.
	Placeholder string

	text    []rune
	cursorX int
}

// Value returns the current text.
func (input *SearchInput) Value() string { return string(input.text) }

// Cursor returns the cursor position in runes.
func (input *SearchInput) Cursor() int { return input.cursorX }

// SetValue replaces the text and moves the cursor to its end.
func (input *SearchInput) SetValue(value string) {
	input.text = []rune(value)
	input.cursorX = len(input.text)
}

// Clear empties the input.
func (input *SearchInput) Clear() {
	input.text = nil
	input.cursorX = 0
}

// Update applies an editing key. It reports whether the key was an
// editing key, and whether the text changed. Keys that are not editing
// keys (enter, arrows up and down, escape, tab) are left to the caller.
func (input *SearchInput) Update(message tea.KeyMsg) (handled, changed bool) {
	switch message.Type {
	case tea.KeyRunes, tea.KeySpace:
		if message.Alt {
			return false, false
		}
		for _, character := range message.Runes {
			input.insertRune(character)
		}
		return true, len(message.Runes) > 0

	case tea.KeyBackspace:
		if input.cursorX == 0 {
			return true, false
		}
		input.text = append(input.text[:input.cursorX-1], input.text[input.cursorX:]...)
		input.cursorX--
		return true, true

	case tea.KeyDelete:
		if input.cursorX >= len(input.text) {
			return true, false
		}
		input.text = append(input.text[:input.cursorX], input.text[input.cursorX+1:]...)
		return true, true

	case tea.KeyCtrlU:
		if len(input.text) == 0 {
			return true, false
		}
		input.Clear()
		return true, true

	case tea.KeyLeft:
		input.cursorX = max(input.cursorX-1, 0)
		return true, false

	case tea.KeyRight:
		input.cursorX = min(input.cursorX+1, len(input.text))
		return true, false

	case tea.KeyCtrlA:
		input.cursorX = 0
		return true, false

	case tea.KeyCtrlE:
		input.cursorX = len(input.text)
		return true, false
	}
	return false, false
}

func (input *SearchInput) insertRune(character rune) {
	line := make([]rune, len(input.text)+1)
	copy(line, input.text[:input.cursorX])
	line[input.cursorX] = character
	copy(line[input.cursorX+1:], input.text[input.cursorX:])
	input.text = line
	input.cursorX++
}

// View renders " / text" with a reverse-video cursor, width cells
// wide. The cursor is only drawn when focused.
func (input *SearchInput) View(theme Theme, width int, focused bool) string {
	background := lipgloss.NewStyle().Background(theme.SurfaceBackground)
	prompt := background.Foreground(theme.Accent).Render(" / ")
	text := background.Foreground(theme.NormalText)
	cursor := lipgloss.NewStyle().Reverse(true)

	var body string
	switch {
	case len(input.text) == 0 && !focused:
		body = background.Foreground(theme.FaintText).Render(input.Placeholder)
	case len(input.text) == 0:
		body = cursor.Render(" ") + background.Foreground(theme.FaintText).Render(input.Placeholder)
	case !focused:
		body = text.Render(string(input.text))
	case input.cursorX >= len(input.text):
		body = text.Render(string(input.text)) + cursor.Render(" ")
	default:
		body = text.Render(string(input.text[:input.cursorX])) +
			cursor.Render(string(input.text[input.cursorX])) +
			text.Render(string(input.text[input.cursorX+1:]))
	}

	line := prompt + body
	lineWidth := ansi.StringWidth(line)
	if lineWidth > width {
		return ansi.Truncate(line, width, "")
	}
	return line + background.Render(strings.Repeat(" ", width-lineWidth))
}
