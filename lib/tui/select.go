// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/overlay"
	"github.com/bureau-foundation/overlay/lib/selection"
)

// SelectOptions configures a Select.
type SelectOptions struct {
	// Width is the surface width in cells, frame included.
	Width int

	// Rows is the number of entry rows drawn. Longer lists scroll.
	Rows int

	// Node configures the overlay node. Start from
	// selection.NodeOptions for the surface mode.
	Node overlay.Options

	// Surface configures the selection surface. WindowSize and
	// Element are set by the Select.
	Surface selection.SurfaceOptions

	// Placeholder is shown in the trigger label with nothing selected
	// and in an empty combobox search line.
	Placeholder string
}

// Select is a select, combobox, or multiselect surface. Comboboxes
// draw a search line above the entries and edit it from the keyboard.
type Select struct {
	node        *overlay.Node
	surface     *selection.Surface
	search      *SearchInput
	box         *overlay.Box
	rows        int
	placeholder string
}

// NewSelect mounts a root node under reference and attaches a
// selection surface to it.
func NewSelect(tree *overlay.Tree, reference overlay.Element, options SelectOptions, theme Theme) *Select {
	control := &Select{
		box:         overlay.NewBox(geometry.Rect{}),
		rows:        max(options.Rows, 1),
		placeholder: options.Placeholder,
	}
	control.node = tree.Mount(overlay.NodeOptions{
		Reference: reference,
		Floating:  control.box,
		Options:   options.Node,
	})

	searchRows := 0
	if options.Surface.Mode == selection.ModeCombobox {
		control.search = &SearchInput{Placeholder: options.Placeholder}
		searchRows = 1
	}
	node := control.node
	surfaceOptions := options.Surface
	surfaceOptions.WindowSize = control.rows
	surfaceOptions.Element = func(row int) overlay.Element {
		return RowElement(node, row+searchRows, theme)
	}
	control.surface = selection.NewSurface(node, surfaceOptions)

	inset := frameInset(theme)
	control.box.Resize(options.Width, control.rows+searchRows+2*inset)

	if control.search != nil {
		// The tree drops this subscription when the node unmounts.
		tree.Subscribe(node.ID(), func(event overlay.Event) {
			if event.Kind == overlay.EventNodeClosed && event.NodeID == node.ID() {
				control.search.Clear()
				control.surface.SetKeyword("")
			}
		})
	}
	return control
}

// Node implements Layer.
func (control *Select) Node() *overlay.Node { return control.node }

// Surface returns the selection surface.
func (control *Select) Surface() *selection.Surface { return control.surface }

// Search returns the combobox search input, or nil.
func (control *Select) Search() *SearchInput { return control.search }

// Scroll implements Scroller.
func (control *Select) Scroll(delta int) { control.surface.Scroll(delta) }

// InterceptKey implements KeyInterceptor: while a combobox is open,
// editing keys go to the search line and refilter the list.
func (control *Select) InterceptKey(message tea.KeyMsg, keys KeyMap) bool {
	if control.search == nil || !control.node.IsOpen() {
		return false
	}
	if key.Matches(message, keys.Up, keys.Down, keys.Home, keys.End, keys.Select, keys.Close, keys.Tab, keys.Quit) {
		return false
	}
	handled, changed := control.search.Update(message)
	if changed {
		control.surface.SetKeyword(control.search.Value())
	}
	return handled
}

// Label summarizes the current value for the trigger.
func (control *Select) Label() string {
	selected := control.surface.Selected()
	switch {
	case len(selected) == 0:
		return control.placeholder
	case len(selected) == 1:
		return selected[0].Label
	case len(selected) <= 2:
		labels := make([]string, len(selected))
		for index, entry := range selected {
			labels[index] = entry.Label
		}
		return strings.Join(labels, ", ")
	default:
		return fmt.Sprintf("%d selected", len(selected))
	}
}

// Render implements Layer.
func (control *Select) Render(theme Theme, rect geometry.Rect) []string {
	inset := frameInset(theme)
	innerWidth := rect.Width - 2*inset
	available := rect.Height - 2*inset
	if innerWidth <= 2 || available <= 0 {
		return nil
	}

	var lines []string
	if control.search != nil {
		lines = append(lines, control.search.View(theme, innerWidth, control.node.IsOpen()))
		available--
	}
	rows := min(control.rows, available)

	start, rendered := control.surface.Rendered()
	total := len(control.surface.Visible())
	textWidth := innerWidth
	var scrollbar []string
	if total > control.rows && rows > 0 {
		textWidth--
		scrollbar = RenderScrollbar(theme, rows, ScrollWindow{Total: total, Visible: control.rows, Offset: start}, control.node.IsOpen())
	}

	background := lipgloss.NewStyle().Background(theme.SurfaceBackground).Foreground(theme.NormalText)
	for row := range rows {
		var line string
		switch {
		case row < len(rendered):
			line = control.renderEntry(theme, rendered[row], row, textWidth)
		case row == 0 && total == 0:
			line = PadOverlayLine(background.Foreground(theme.FaintText).Render("No matches"), textWidth-2, background)
		default:
			line = background.Render(strings.Repeat(" ", textWidth))
		}
		if scrollbar != nil {
			line += scrollbar[row]
		}
		lines = append(lines, line)
	}
	return FrameLines(theme, lines)
}

func (control *Select) renderEntry(theme Theme, entry selection.Entry, row, width int) string {
	background := lipgloss.NewStyle().Background(theme.SurfaceBackground).Foreground(theme.NormalText)
	indent := strings.Repeat("  ", entry.Depth)

	if entry.Header {
		style := background.Foreground(theme.HeaderForeground).Bold(true)
		return PadOverlayLine(style.Render(indent+entry.Label), width-2, background)
	}

	selected := control.surface.IsSelected(entry.Value)
	var mark string
	switch {
	case control.surface.Mode() == selection.ModeMulti && entry.Radios:
		mark = "( ) "
		if selected {
			mark = "(•) "
		}
	case control.surface.Mode() == selection.ModeMulti:
		mark = "[ ] "
		if selected {
			mark = "[x] "
		}
	default:
		mark = "  "
		if selected {
			mark = "✓ "
		}
	}

	style := background
	switch {
	case control.node.Registry().IsActive(row):
		style = lipgloss.NewStyle().Background(theme.ActiveBackground).Foreground(theme.ActiveForeground)
	case !entry.Selectable() || control.node.AllItemsDisabled():
		style = background.Foreground(theme.DisabledText)
	case selected:
		style = background.Foreground(theme.Accent)
	}
	content := ansi.Truncate(indent+mark+entry.Label, width-2, "…")
	return PadOverlayLine(style.Render(content), width-2, style)
}
