// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/overlay/lib/config"
	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/overlay"
	"github.com/bureau-foundation/overlay/lib/selection"
	"github.com/bureau-foundation/overlay/lib/tui"
)

const (
	// fieldColumn is where field triggers start.
	fieldColumn = 12

	// fieldWidth is the width of a field trigger and its surface.
	fieldWidth = 26

	// actionRow is the content row reporting the last menu action.
	actionRow = 11

	// bodyRows is the number of filler rows below the fields, enough
	// to scroll on any terminal.
	bodyRows = 60
)

// workbench is the demo screen: a menubar fixed to the top row and a
// column of fields on a page that scrolls under the wheel.
type workbench struct {
	settings config.OverlayConfig
	theme    tui.Theme
	logger   *slog.Logger
	tree     *overlay.Tree

	menubar []*menubarEntry
	fields  []*field
	layers  []tui.Layer

	width      int
	height     int
	scroll     int
	lastAction string
}

// menubarEntry is one top-level menu and its trigger.
type menubarEntry struct {
	title string
	box   *overlay.Box
	menu  *tui.Menu
}

// field is a labelled select trigger at a fixed content row.
type field struct {
	label   string
	row     int
	box     *overlay.Box
	control *tui.Select
}

// newWorkbench mounts the menubar and fields. hook, when non-nil,
// receives every open-change before it applies.
func newWorkbench(tree *overlay.Tree, settings config.OverlayConfig, theme tui.Theme, logger *slog.Logger, hook func(overlay.OpenChange), width int) *workbench {
	bench := &workbench{
		settings: settings,
		theme:    theme,
		logger:   logger,
		tree:     tree,
		width:    width,
	}

	base := settings.Options(width)
	base.Transition = true
	base.OnOpenChange = hook

	bench.buildMenubar(base)
	bench.buildFields(base)
	return bench
}

func (bench *workbench) buildMenubar(base overlay.Options) {
	x := 1
	addMenu := func(title string, items []tui.MenuItem) *tui.Menu {
		box := overlay.NewBox(geometry.Rect{X: x, Y: 0, Width: ansi.StringWidth(title) + 2, Height: 1})
		x += ansi.StringWidth(title) + 3
		menu := tui.NewMenu(bench.tree, "", box, items, base, bench.theme)
		bench.menubar = append(bench.menubar, &menubarEntry{title: title, box: box, menu: menu})
		bench.layers = append(bench.layers, menu)
		return menu
	}
	addSubmenu := func(parent *tui.Menu, row int, items []tui.MenuItem) *tui.Menu {
		child := parent.AddSubmenu(row, items, base)
		bench.layers = append(bench.layers, child)
		return child
	}

	file := addMenu("File", []tui.MenuItem{
		bench.action("File", "New", "ctrl+n"),
		bench.action("File", "Open…", "ctrl+o"),
		{Label: "Open Recent", Value: "recent"},
		bench.action("File", "Save", "ctrl+s"),
		{Label: "Revert", Value: "revert", Disabled: true},
	})
	addSubmenu(file, 2, []tui.MenuItem{
		bench.action("Open Recent", "report.md", ""),
		bench.action("Open Recent", "notes.txt", ""),
		bench.action("Open Recent", "overlay.yaml", ""),
	})

	edit := addMenu("Edit", []tui.MenuItem{
		bench.action("Edit", "Undo", "ctrl+z"),
		bench.action("Edit", "Redo", "ctrl+y"),
		{Label: "Find", Value: "find"},
	})
	find := addSubmenu(edit, 2, []tui.MenuItem{
		bench.action("Find", "Find…", "ctrl+f"),
		bench.action("Find", "Replace…", "ctrl+h"),
		{Label: "Find in Files", Value: "find-files"},
	})
	addSubmenu(find, 2, []tui.MenuItem{
		bench.action("Find in Files", "Current Folder", ""),
		bench.action("Find in Files", "Workspace", ""),
	})

	addMenu("View", []tui.MenuItem{
		bench.action("View", "Zoom In", "ctrl++"),
		bench.action("View", "Zoom Out", "ctrl+-"),
		bench.action("View", "Reset Zoom", "ctrl+0"),
	})
}

// action is a menu item that reports itself as the last action.
func (bench *workbench) action(menu, label, shortcut string) tui.MenuItem {
	return tui.MenuItem{
		Label:    label,
		Value:    strings.ToLower(label),
		Shortcut: shortcut,
		OnSelect: func() {
			bench.lastAction = menu + " › " + label
			bench.logger.Info("menu action", "menu", menu, "item", label)
		},
	}
}

func (bench *workbench) buildFields(base overlay.Options) {
	addField := func(label string, row, rows int, mode selection.Mode, options []selection.Option, matcher selection.Matcher, disabled bool) *tui.Select {
		box := overlay.NewBox(geometry.Rect{X: fieldColumn, Y: row, Width: fieldWidth, Height: 1})
		nodeOptions := base
		nodeOptions.AutoClose = selection.NodeOptions(mode).AutoClose
		nodeOptions.Disabled = nodeOptions.Disabled || disabled
		control := tui.NewSelect(bench.tree, box, tui.SelectOptions{
			Width: fieldWidth,
			Rows:  rows,
			Node:  nodeOptions,
			Surface: selection.SurfaceOptions{
				Mode:    mode,
				Matcher: matcher,
				OnChange: func(value string) {
					bench.logger.Info("value changed", "field", label, "value", value)
				},
				OnChangeMulti: func(values []string) {
					bench.logger.Info("values changed", "field", label, "values", values)
				},
			},
			Placeholder: "Choose…",
		}, bench.theme)
		control.Surface().SetOptions(options)
		bench.fields = append(bench.fields, &field{label: label, row: row, box: box, control: control})
		bench.layers = append(bench.layers, control)
		return control
	}

	font := addField("Font", 2, 6, selection.ModeSelect, fontOptions(), nil, false)
	font.Surface().SetValue("default")
	addField("Language", 4, 6, selection.ModeCombobox, languageOptions(), selection.NewFuzzyMatcher(), false)
	addField("Tags", 6, 8, selection.ModeMulti, tagOptions(), nil, false)
	addField("Locked", 8, 4, selection.ModeSelect, fontOptions(), nil, true)
}

// Layers returns every surface in mount order.
func (bench *workbench) Layers() []tui.Layer { return bench.layers }

// Scroll moves the page by delta rows.
func (bench *workbench) Scroll(delta int) {
	bench.scroll += delta
	bench.layout(bench.width, bench.height)
}

// InterceptKey moves focus between triggers with Tab while every
// surface is closed.
func (bench *workbench) InterceptKey(message tea.KeyMsg) bool {
	if len(bench.tree.OpenPath()) > 0 {
		return false
	}
	switch {
	case key.Matches(message, tui.DefaultKeyMap.Tab):
		bench.cycleFocus(1)
		return true
	case message.Type == tea.KeyShiftTab:
		bench.cycleFocus(-1)
		return true
	}
	return false
}

// triggers lists the root nodes in focus order.
func (bench *workbench) triggers() []*overlay.Node {
	nodes := make([]*overlay.Node, 0, len(bench.menubar)+len(bench.fields))
	for _, entry := range bench.menubar {
		nodes = append(nodes, entry.menu.Node())
	}
	for _, field := range bench.fields {
		nodes = append(nodes, field.control.Node())
	}
	return nodes
}

func (bench *workbench) cycleFocus(direction int) {
	nodes := bench.triggers()
	current := -1
	focused := bench.tree.Focused()
	for index, node := range nodes {
		if node.ID() == focused.Node {
			current = index
			break
		}
	}
	next := 0
	if current >= 0 {
		next = (current + direction + len(nodes)) % len(nodes)
	} else if direction < 0 {
		next = len(nodes) - 1
	}
	bench.tree.Focus(overlay.FocusTarget{Node: nodes[next].ID(), Region: overlay.FocusReference})
}

// layout places the field triggers for the current scroll position and
// re-resolves breakpoint alignment when the width changed.
func (bench *workbench) layout(width, height int) {
	if width != bench.width {
		alignEnd := bench.settings.Align.End(width)
		for _, node := range bench.triggers() {
			node.UpdateOptions(func(options *overlay.Options) { options.AlignEnd = alignEnd })
		}
	}
	bench.width, bench.height = width, height

	bench.scroll = max(min(bench.scroll, bench.contentRows()-height), 0)
	for _, field := range bench.fields {
		y := field.row - bench.scroll
		if y < 1 || y >= height {
			field.box.Detach()
			continue
		}
		field.box.Place(geometry.Rect{X: fieldColumn, Y: y, Width: fieldWidth, Height: 1})
	}
}

func (bench *workbench) contentRows() int {
	return actionRow + 2 + bodyRows
}

// Render draws the page beneath the surfaces.
func (bench *workbench) Render(width, height int) string {
	bench.layout(width, height)
	if height <= 0 {
		return ""
	}

	lines := make([]string, height)
	lines[0] = bench.renderMenubar(width)
	fieldsByRow := make(map[int]*field, len(bench.fields))
	for _, field := range bench.fields {
		fieldsByRow[field.row] = field
	}
	faint := lipgloss.NewStyle().Foreground(bench.theme.FaintText)
	for y := 1; y < height; y++ {
		row := y + bench.scroll
		switch {
		case fieldsByRow[row] != nil:
			lines[y] = bench.renderField(fieldsByRow[row])
		case row == actionRow:
			action := bench.lastAction
			if action == "" {
				action = "none yet"
			}
			lines[y] = " Last action: " + action
		case row > actionRow+1:
			lines[y] = faint.Render(fmt.Sprintf(" %3d │ scroll with the wheel; open surfaces follow their triggers", row-actionRow-1))
		}
		lines[y] = ansi.Truncate(lines[y], width, "")
	}
	return strings.Join(lines, "\n")
}

func (bench *workbench) renderMenubar(width int) string {
	normal := lipgloss.NewStyle().Foreground(bench.theme.NormalText)
	open := lipgloss.NewStyle().Foreground(bench.theme.ActiveForeground).Background(bench.theme.ActiveBackground)
	focused := normal.Underline(true)

	var line strings.Builder
	line.WriteString(" ")
	for _, entry := range bench.menubar {
		style := normal
		switch {
		case entry.menu.Node().IsOpen():
			style = open
		case bench.isFocused(entry.menu.Node()):
			style = focused
		}
		line.WriteString(style.Render(" " + entry.title + " "))
		line.WriteString(" ")
	}
	return ansi.Truncate(line.String(), width, "")
}

func (bench *workbench) renderField(field *field) string {
	node := field.control.Node()
	label := lipgloss.NewStyle().Foreground(bench.theme.NormalText).Render(fmt.Sprintf(" %-*s", fieldColumn-1, field.label))

	style := lipgloss.NewStyle().Foreground(bench.theme.NormalText).Background(bench.theme.SurfaceBackground)
	switch {
	case node.Options().Disabled:
		style = style.Foreground(bench.theme.DisabledText)
	case node.IsOpen():
		style = style.Foreground(bench.theme.Accent)
	case bench.isFocused(node):
		style = style.Underline(true)
	}
	text := ansi.Truncate(field.control.Label(), fieldWidth-4, "…")
	padding := max(fieldWidth-4-ansi.StringWidth(text), 0)
	return label + style.Render(" "+text+strings.Repeat(" ", padding)+" ▾ ")
}

func (bench *workbench) isFocused(node *overlay.Node) bool {
	focused := bench.tree.Focused()
	return focused.Node == node.ID() && focused.Region == overlay.FocusReference
}

func fontOptions() []selection.Option {
	return []selection.Option{
		{Label: "Default", Value: "default"},
		{Label: "Serif", Children: []selection.Option{
			{Label: "Garamond", Value: "garamond"},
			{Label: "Bodoni", Value: "bodoni", Disabled: true},
			{Label: "Didot", Value: "didot"},
		}},
		{Label: "Sans", Children: []selection.Option{
			{Label: "Helvetica", Value: "helvetica"},
			{Label: "Futura", Value: "futura"},
			{Label: "Gill Sans", Value: "gill-sans"},
		}},
		{Label: "Monospace", Children: []selection.Option{
			{Label: "Iosevka", Value: "iosevka"},
			{Label: "Menlo", Value: "menlo"},
		}},
	}
}

var languages = []string{
	"Afrikaans", "Albanian", "Amharic", "Arabic", "Armenian", "Basque",
	"Bengali", "Bulgarian", "Catalan", "Chinese", "Croatian", "Czech",
	"Danish", "Dutch", "English", "Esperanto", "Estonian", "Finnish",
	"French", "Galician", "Georgian", "German", "Greek", "Gujarati",
	"Hebrew", "Hindi", "Hungarian", "Icelandic", "Indonesian", "Irish",
	"Italian", "Japanese", "Kannada", "Korean", "Latvian", "Lithuanian",
	"Malay", "Norwegian", "Persian", "Polish", "Português", "Romanian",
	"Russian", "Serbian", "Slovak", "Slovenian", "Spanish", "Swahili",
	"Swedish", "Tamil", "Thai", "Turkish", "Ukrainian", "Urdu",
	"Vietnamese", "Welsh", "Yoruba", "Zulu",
}

func languageOptions() []selection.Option {
	options := make([]selection.Option, len(languages))
	for index, language := range languages {
		options[index] = selection.Option{Label: language, Value: strings.ToLower(language)}
	}
	return options
}

func tagOptions() []selection.Option {
	return []selection.Option{
		{Label: "Status", Radios: true, Children: []selection.Option{
			{Label: "Draft", Value: "draft"},
			{Label: "Review", Value: "review"},
			{Label: "Final", Value: "final"},
		}},
		{Label: "Topics", Children: []selection.Option{
			{Label: "Design", Value: "design"},
			{Label: "Code", Value: "code"},
			{Label: "Docs", Value: "docs"},
		}},
	}
}
