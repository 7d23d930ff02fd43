// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/overlay"
)

// KeyMap defines the key bindings routed into the overlay tree.
// Printable characters outside these bindings become typeahead or
// search input.
type KeyMap struct {
	// List navigation.
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	// Submenu navigation. Right opens and Left closes in left-to-right
	// layouts; the overlay mirrors them under RTL.
	Left  key.Binding
	Right key.Binding

	// Activation and dismissal.
	Select key.Binding
	Toggle key.Binding
	Close  key.Binding
	Tab    key.Binding

	// Search input editing.
	Backspace key.Binding

	Quit key.Binding
}

// DefaultKeyMap uses arrow keys only, so letters stay free for
// typeahead.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "first"),
	),
	End: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "last"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "back"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "submenu"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "choose"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "leave"),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("⌫", "erase"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// ShortHelp lists the bindings shown in the help line.
func (keys KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Right, keys.Select, keys.Close, keys.Quit}
}

// TranslateKey converts a terminal key press into an overlay key
// event. Keys with no overlay meaning report false.
func TranslateKey(message tea.KeyMsg, keys KeyMap) (overlay.KeyEvent, bool) {
	switch {
	case key.Matches(message, keys.Up):
		return overlay.KeyEvent{Key: overlay.KeyUp}, true
	case key.Matches(message, keys.Down):
		return overlay.KeyEvent{Key: overlay.KeyDown}, true
	case key.Matches(message, keys.Home):
		return overlay.KeyEvent{Key: overlay.KeyHome}, true
	case key.Matches(message, keys.End):
		return overlay.KeyEvent{Key: overlay.KeyEnd}, true
	case key.Matches(message, keys.Left):
		return overlay.KeyEvent{Key: overlay.KeyLeft}, true
	case key.Matches(message, keys.Right):
		return overlay.KeyEvent{Key: overlay.KeyRight}, true
	case key.Matches(message, keys.Select):
		return overlay.KeyEvent{Key: overlay.KeyEnter}, true
	case key.Matches(message, keys.Toggle):
		return overlay.KeyEvent{Key: overlay.KeySpace}, true
	case key.Matches(message, keys.Close):
		return overlay.KeyEvent{Key: overlay.KeyEscape}, true
	case key.Matches(message, keys.Tab):
		return overlay.KeyEvent{Key: overlay.KeyTab}, true
	}
	if message.Type == tea.KeyRunes && len(message.Runes) == 1 && !message.Alt {
		return overlay.KeyEvent{Key: overlay.KeyRune, Rune: message.Runes[0]}, true
	}
	return overlay.KeyEvent{}, false
}

// TranslateMouse converts a terminal mouse event into an overlay
// pointer event. Buttons other than the left button and the wheel
// report false.
func TranslateMouse(message tea.MouseMsg) (overlay.PointerEvent, bool) {
	position := geometry.Point{X: message.X, Y: message.Y}
	if tea.MouseEvent(message).IsWheel() {
		return overlay.PointerEvent{Action: overlay.PointerWheel, Position: position}, true
	}
	switch message.Action {
	case tea.MouseActionMotion:
		return overlay.PointerEvent{Action: overlay.PointerMove, Position: position}, true
	case tea.MouseActionPress:
		if message.Button != tea.MouseButtonLeft {
			return overlay.PointerEvent{}, false
		}
		return overlay.PointerEvent{Action: overlay.PointerPress, Position: position}, true
	case tea.MouseActionRelease:
		return overlay.PointerEvent{Action: overlay.PointerRelease, Position: position}, true
	}
	return overlay.PointerEvent{}, false
}

// WheelDelta returns -1 for wheel up, 1 for wheel down, and 0 for
// anything else.
func WheelDelta(message tea.MouseMsg) int {
	switch message.Button {
	case tea.MouseButtonWheelUp:
		return -1
	case tea.MouseButtonWheelDown:
		return 1
	}
	return 0
}
