// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestSearchInputEditing(t *testing.T) {
	tests := []struct {
		name        string
		keys        []tea.KeyMsg
		wantValue   string
		wantCursor  int
		wantChanged bool
	}{
		{
			name:        "type",
			keys:        []tea.KeyMsg{typeRunes("ab"), typeRunes("c")},
			wantValue:   "abc",
			wantCursor:  3,
			wantChanged: true,
		},
		{
			name:        "insert in the middle",
			keys:        []tea.KeyMsg{typeRunes("ac"), {Type: tea.KeyLeft}, typeRunes("b")},
			wantValue:   "abc",
			wantCursor:  2,
			wantChanged: true,
		},
		{
			name:        "backspace",
			keys:        []tea.KeyMsg{typeRunes("abc"), {Type: tea.KeyBackspace}},
			wantValue:   "ab",
			wantCursor:  2,
			wantChanged: true,
		},
		{
			name:        "backspace at start",
			keys:        []tea.KeyMsg{typeRunes("ab"), {Type: tea.KeyCtrlA}, {Type: tea.KeyBackspace}},
			wantValue:   "ab",
			wantCursor:  0,
			wantChanged: false,
		},
		{
			name:        "delete",
			keys:        []tea.KeyMsg{typeRunes("abc"), {Type: tea.KeyCtrlA}, {Type: tea.KeyDelete}},
			wantValue:   "bc",
			wantCursor:  0,
			wantChanged: true,
		},
		{
			name:        "clear line",
			keys:        []tea.KeyMsg{typeRunes("abc"), {Type: tea.KeyCtrlU}},
			wantValue:   "",
			wantCursor:  0,
			wantChanged: true,
		},
		{
			name:        "end",
			keys:        []tea.KeyMsg{typeRunes("abc"), {Type: tea.KeyCtrlA}, {Type: tea.KeyCtrlE}},
			wantValue:   "abc",
			wantCursor:  3,
			wantChanged: false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var input SearchInput
			var changed bool
			for _, key := range test.keys {
				_, changed = input.Update(key)
			}
			if input.Value() != test.wantValue || input.Cursor() != test.wantCursor {
				t.Errorf("value %q cursor %d, want %q cursor %d", input.Value(), input.Cursor(), test.wantValue, test.wantCursor)
			}
			if changed != test.wantChanged {
				t.Errorf("last key changed = %v, want %v", changed, test.wantChanged)
			}
		})
	}
}

func TestSearchInputLeavesNavigationKeys(t *testing.T) {
	var input SearchInput
	for _, key := range []tea.KeyMsg{{Type: tea.KeyEnter}, {Type: tea.KeyUp}, {Type: tea.KeyEsc}, {Type: tea.KeyTab}} {
		if handled, _ := input.Update(key); handled {
			t.Errorf("%s was handled as an edit", key)
		}
	}
}

func TestSearchInputView(t *testing.T) {
	input := SearchInput{Placeholder: "Filter"}
	view := input.View(DarkTheme, 12, false)
	if got := ansi.Strip(view); got != " / Filter   " {
		t.Errorf("placeholder view = %q", got)
	}

	input.SetValue("a very long keyword")
	view = input.View(DarkTheme, 12, true)
	if width := ansi.StringWidth(view); width != 12 {
		t.Errorf("view width = %d, want 12", width)
	}
	if !strings.HasPrefix(ansi.Strip(view), " / a very") {
		t.Errorf("view = %q", ansi.Strip(view))
	}
}
