// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/overlay"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name    string
		message tea.KeyMsg
		want    overlay.KeyEvent
		ok      bool
	}{
		{"down", tea.KeyMsg{Type: tea.KeyDown}, overlay.KeyEvent{Key: overlay.KeyDown}, true},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, overlay.KeyEvent{Key: overlay.KeyUp}, true},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, overlay.KeyEvent{Key: overlay.KeyHome}, true},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, overlay.KeyEvent{Key: overlay.KeyEnd}, true},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, overlay.KeyEvent{Key: overlay.KeyLeft}, true},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, overlay.KeyEvent{Key: overlay.KeyRight}, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, overlay.KeyEvent{Key: overlay.KeyEnter}, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, overlay.KeyEvent{Key: overlay.KeySpace}, true},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, overlay.KeyEvent{Key: overlay.KeyEscape}, true},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, overlay.KeyEvent{Key: overlay.KeyTab}, true},
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}}, overlay.KeyEvent{Key: overlay.KeyRune, Rune: 'g'}, true},
		{"alt letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}, Alt: true}, overlay.KeyEvent{}, false},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, overlay.KeyEvent{}, false},
		{"control key", tea.KeyMsg{Type: tea.KeyCtrlX}, overlay.KeyEvent{}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := TranslateKey(test.message, DefaultKeyMap)
			if ok != test.ok || got != test.want {
				t.Errorf("TranslateKey = (%+v, %v), want (%+v, %v)", got, ok, test.want, test.ok)
			}
		})
	}
}

func TestTranslateMouse(t *testing.T) {
	at := geometry.Point{X: 3, Y: 4}
	tests := []struct {
		name    string
		message tea.MouseMsg
		want    overlay.PointerAction
		ok      bool
	}{
		{"left press", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, overlay.PointerPress, true},
		{"right press", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, 0, false},
		{"release", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, overlay.PointerRelease, true},
		{"motion", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion}, overlay.PointerMove, true},
		{"wheel", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, overlay.PointerWheel, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := TranslateMouse(test.message)
			if ok != test.ok {
				t.Fatalf("TranslateMouse ok = %v, want %v", ok, test.ok)
			}
			if !ok {
				return
			}
			if got.Action != test.want || got.Position != at {
				t.Errorf("TranslateMouse = %+v, want action %v at %v", got, test.want, at)
			}
		})
	}
}

func TestWheelDelta(t *testing.T) {
	if delta := WheelDelta(tea.MouseMsg{Button: tea.MouseButtonWheelUp}); delta != -1 {
		t.Errorf("wheel up = %d, want -1", delta)
	}
	if delta := WheelDelta(tea.MouseMsg{Button: tea.MouseButtonWheelDown}); delta != 1 {
		t.Errorf("wheel down = %d, want 1", delta)
	}
	if delta := WheelDelta(tea.MouseMsg{Button: tea.MouseButtonLeft}); delta != 0 {
		t.Errorf("left button = %d, want 0", delta)
	}
}
