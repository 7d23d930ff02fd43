// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/overlay"
)

// MenuItem is a single row of a menu.
type MenuItem struct {
	Label    string
	Value    string
	Shortcut string // Hint drawn right-aligned, e.g. "ctrl+s".
	Disabled bool
	OnSelect func()
}

// Menu is a dropdown menu surface backed by an overlay node. Items
// are registered with the node in row order; submenus are nested
// nodes anchored to their parent's row.
type Menu struct {
	tree     *overlay.Tree
	node     *overlay.Node
	theme    Theme
	items    []MenuItem
	submenus map[int]*Menu
	surface  *overlay.Box
}

// NewMenu mounts a menu under parent (empty for a root) with the given
// trigger element.
func NewMenu(tree *overlay.Tree, parent overlay.NodeID, reference overlay.Element, items []MenuItem, options overlay.Options, theme Theme) *Menu {
	menu := &Menu{
		tree:     tree,
		theme:    theme,
		items:    items,
		submenus: make(map[int]*Menu),
		surface:  overlay.NewBox(geometry.Rect{}),
	}
	menu.node = tree.Mount(overlay.NodeOptions{
		Parent:    parent,
		Reference: reference,
		Floating:  menu.surface,
		Options:   options,
	})
	for row, item := range items {
		menu.node.Registry().Register(overlay.Item{
			Element:  RowElement(menu.node, row, theme),
			Label:    item.Label,
			Value:    item.Value,
			Disabled: item.Disabled,
			OnSelect: item.OnSelect,
		})
	}
	menu.layout()
	return menu
}

// Node implements Layer.
func (menu *Menu) Node() *overlay.Node { return menu.node }

// Items returns the menu rows.
func (menu *Menu) Items() []MenuItem { return menu.items }

// Submenu returns the submenu attached to row, or nil.
func (menu *Menu) Submenu(row int) *Menu { return menu.submenus[row] }

// AddSubmenu mounts a nested menu anchored to row and links the row's
// item to it. The returned menu must be added to the host as a layer.
func (menu *Menu) AddSubmenu(row int, items []MenuItem, options overlay.Options) *Menu {
	child := NewMenu(menu.tree, menu.node.ID(), RowElement(menu.node, row, menu.theme), items, options, menu.theme)
	registry := menu.node.Registry()
	if item, ok := registry.Item(row); ok {
		item.Submenu = child.node.ID()
		registry.RegisterAt(row, item)
	}
	menu.submenus[row] = child
	menu.layout()
	return child
}

// layout sizes the surface to fit the widest row.
func (menu *Menu) layout() {
	innerWidth := 0
	for row, item := range menu.items {
		width := ansi.StringWidth(item.Label)
		if item.Shortcut != "" {
			width += 2 + ansi.StringWidth(item.Shortcut)
		}
		if menu.submenus[row] != nil {
			width += 2
		}
		innerWidth = max(innerWidth, width)
	}
	inset := frameInset(menu.theme)
	// One cell of padding on each side of the row content.
	menu.surface.Resize(innerWidth+2+2*inset, len(menu.items)+2*inset)
}

// Render implements Layer.
func (menu *Menu) Render(theme Theme, rect geometry.Rect) []string {
	inset := frameInset(theme)
	innerWidth := rect.Width - 2*inset - 2
	rows := rect.Height - 2*inset
	if innerWidth <= 0 || rows <= 0 {
		return nil
	}

	background := lipgloss.NewStyle().Background(theme.SurfaceBackground).Foreground(theme.NormalText)
	active := lipgloss.NewStyle().Background(theme.ActiveBackground).Foreground(theme.ActiveForeground)
	disabled := background.Foreground(theme.DisabledText)
	expanded := background.Foreground(theme.Accent)

	arrow := "›"
	if menu.node.Options().RTL {
		arrow = "‹"
	}

	lines := make([]string, 0, rows)
	for row, item := range menu.items {
		if row >= rows {
			break
		}
		style := background
		child := menu.submenus[row]
		switch {
		case menu.node.Registry().IsActive(row):
			style = active
		case item.Disabled || menu.node.AllItemsDisabled():
			style = disabled
		case child != nil && child.node.IsOpen():
			style = expanded
		}

		right := item.Shortcut
		if child != nil {
			right = arrow
		}
		gap := max(innerWidth-ansi.StringWidth(item.Label)-ansi.StringWidth(right), 1)
		content := item.Label + strings.Repeat(" ", gap) + right
		lines = append(lines, PadOverlayLine(style.Render(ansi.Truncate(content, innerWidth, "…")), innerWidth, style))
	}
	return FrameLines(theme, lines)
}
