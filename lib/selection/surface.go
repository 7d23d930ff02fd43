// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package selection

import (
	"slices"
	"strings"

	"github.com/bureau-foundation/overlay/lib/overlay"
)

// Mode selects how a Surface treats activation.
type Mode int

const (
	// ModeSelect picks one value from a fixed list.
	ModeSelect Mode = iota
	// ModeCombobox picks one value from a keyword-filtered list.
	ModeCombobox
	// ModeMulti toggles values and stays open while doing so.
	ModeMulti
)

func (mode Mode) String() string {
	switch mode {
	case ModeSelect:
		return "select"
	case ModeCombobox:
		return "combobox"
	case ModeMulti:
		return "multiselect"
	default:
		return "unknown"
	}
}

// NodeOptions returns overlay options suited to mode: single-value
// surfaces close when a value is chosen, multiselects only on outside
// presses.
func NodeOptions(mode Mode) overlay.Options {
	options := overlay.DefaultOptions()
	options.FocusFirstItem = overlay.FocusFirstKeyboard
	options.AutoClose = overlay.AutoCloseAlways
	if mode == ModeMulti {
		options.AutoClose = overlay.AutoCloseOutside
	}
	return options
}

// SurfaceOptions configures a Surface.
type SurfaceOptions struct {
	Mode Mode

	// Matcher filters by keyword. Nil selects MatchSubstring.
	Matcher Matcher

	// WindowSize limits how many entries are rendered and registered.
	// Zero renders all of them.
	WindowSize int

	SelectFirstIfNotFound bool
	AllowEmpty            bool

	// OnChange receives single-select changes, including corrections.
	OnChange func(value string)

	// OnChangeMulti receives the multiselection after every change.
	OnChangeMulti func(values []string)

	// Element returns the on-screen element of rendered row. Nil uses
	// overlay.Row on the node.
	Element func(row int) overlay.Element
}

// Surface is a select, combobox or multiselect built on a node. It
// implements overlay.Navigator and overlay.Seeker for the node.
type Surface struct {
	node    *overlay.Node
	options SurfaceOptions

	entries []Entry
	visible []Entry
	keyword string

	value      string
	multi      *Multi
	reconciler Reconciler
	window     Window
}

// NewSurface attaches a surface to node.
func NewSurface(node *overlay.Node, options SurfaceOptions) *Surface {
	if options.Matcher == nil {
		options.Matcher = MatchSubstring
	}
	if options.Element == nil {
		options.Element = func(row int) overlay.Element { return overlay.Row(node, row) }
	}
	surface := &Surface{
		node:    node,
		options: options,
		multi:   NewMulti(nil),
		reconciler: Reconciler{
			SelectFirstIfNotFound: options.SelectFirstIfNotFound,
			AllowEmpty:            options.AllowEmpty,
		},
		window: Window{Size: options.WindowSize},
	}
	if options.WindowSize > 0 {
		node.Registry().TrackByValue(true)
	}
	node.SetNavigator(surface)
	return surface
}

// Node returns the underlying overlay node.
func (surface *Surface) Node() *overlay.Node { return surface.node }

// Mode returns the surface mode.
func (surface *Surface) Mode() Mode { return surface.options.Mode }

// SetOptions replaces the option list. Single-select values that no
// longer name an option are corrected once; multiselect values that
// disappeared are dropped.
func (surface *Surface) SetOptions(options []Option) {
	surface.entries = Flatten(options)
	if surface.multi.SetEntries(surface.entries) && surface.options.OnChangeMulti != nil {
		surface.options.OnChangeMulti(surface.multi.Values())
	}
	surface.refilter()
	if surface.options.Mode == ModeMulti {
		return
	}
	if corrected, ok := surface.reconciler.Reconcile(surface.entries, surface.value); ok {
		surface.value = corrected
		if surface.options.OnChange != nil {
			surface.options.OnChange(corrected)
		}
	}
}

// SetValue sets the current single value from the consumer. No change
// notification is sent.
func (surface *Surface) SetValue(value string) {
	surface.value = value
}

// Value returns the current single value.
func (surface *Surface) Value() string {
	return surface.value
}

// SetValues sets the multiselection from the consumer.
func (surface *Surface) SetValues(values []string) {
	surface.multi.Set(values)
}

// Values returns the multiselection in option order.
func (surface *Surface) Values() []string {
	return surface.multi.Values()
}

// IsSelected reports whether value is the current value (single) or
// part of the selection (multi).
func (surface *Surface) IsSelected(value string) bool {
	if surface.options.Mode == ModeMulti {
		return surface.multi.IsSelected(value)
	}
	return surface.value == value
}

// Entries returns the full flattened list.
func (surface *Surface) Entries() []Entry { return surface.entries }

// Visible returns the keyword-filtered list.
func (surface *Surface) Visible() []Entry { return surface.visible }

// Rendered returns the index of the first rendered entry and the
// rendered entries.
func (surface *Surface) Rendered() (int, []Entry) {
	start, end := surface.window.Range(len(surface.visible))
	return start, surface.visible[start:end]
}

// Window returns the current window.
func (surface *Surface) Window() Window { return surface.window }

// Keyword returns the current filter keyword.
func (surface *Surface) Keyword() string { return surface.keyword }

// SetKeyword filters the list. While open, the first match becomes
// active.
func (surface *Surface) SetKeyword(keyword string) {
	if keyword == surface.keyword {
		return
	}
	surface.keyword = keyword
	surface.window.Offset = 0
	surface.refilter()
	if surface.node.IsOpen() {
		surface.First()
	}
}

// Scroll moves the rendered window by delta entries.
func (surface *Surface) Scroll(delta int) {
	if surface.window.Scroll(delta, len(surface.visible)) {
		surface.sync()
	}
}

// ActiveValue returns the value of the keyboard-highlighted entry.
func (surface *Surface) ActiveValue() (string, bool) {
	return surface.node.Registry().ActiveValue()
}

func (surface *Surface) refilter() {
	surface.visible = Filter(surface.entries, surface.keyword, surface.options.Matcher)
	surface.window.Clamp(len(surface.visible))
	surface.sync()
}

// sync registers the rendered window as the node's items.
func (surface *Surface) sync() {
	registry := surface.node.Registry()
	active := surface.activeVisible()
	registry.Reset()
	start, end := surface.window.Range(len(surface.visible))
	for index := start; index < end; index++ {
		entry := surface.visible[index]
		row := index - start
		item := overlay.Item{
			Element:  surface.options.Element(row),
			Label:    entry.Label,
			Value:    entry.Value,
			Disabled: !entry.Selectable(),
		}
		if entry.Selectable() {
			value := entry.Value
			item.OnSelect = func() { surface.choose(value) }
		}
		registry.RegisterAt(row, item)
	}
	if active >= start && active < end {
		registry.SetActive(active - start)
	}
}

func (surface *Surface) choose(value string) {
	if surface.options.Mode == ModeMulti {
		if surface.multi.Toggle(value) && surface.options.OnChangeMulti != nil {
			surface.options.OnChangeMulti(surface.multi.Values())
		}
		return
	}
	if value != surface.value {
		surface.value = value
		if surface.options.OnChange != nil {
			surface.options.OnChange(value)
		}
	}
}

// activeVisible returns the index in Visible of the active entry, or
// -1.
func (surface *Surface) activeVisible() int {
	value, ok := surface.node.Registry().ActiveValue()
	if !ok {
		return -1
	}
	return indexOf(surface.visible, value)
}

func (surface *Surface) enabled(index int) bool {
	return surface.visible[index].Selectable() && !surface.node.AllItemsDisabled()
}

func (surface *Surface) activate(index int) bool {
	if surface.window.ScrollTo(index, len(surface.visible)) {
		surface.sync()
	}
	start, _ := surface.window.Range(len(surface.visible))
	return surface.node.Registry().SetActive(index - start)
}

// First implements overlay.Navigator.
func (surface *Surface) First() bool {
	for index := range surface.visible {
		if surface.enabled(index) {
			return surface.activate(index)
		}
	}
	return false
}

// Last implements overlay.Navigator.
func (surface *Surface) Last() bool {
	for index := len(surface.visible) - 1; index >= 0; index-- {
		if surface.enabled(index) {
			return surface.activate(index)
		}
	}
	return false
}

// Next implements overlay.Navigator.
func (surface *Surface) Next() bool { return surface.step(1) }

// Prev implements overlay.Navigator.
func (surface *Surface) Prev() bool { return surface.step(-1) }

func (surface *Surface) step(direction int) bool {
	count := len(surface.visible)
	if count == 0 {
		return false
	}
	current := surface.activeVisible()
	if current < 0 {
		if direction > 0 {
			return surface.First()
		}
		return surface.Last()
	}
	for offset := 1; offset <= count; offset++ {
		index := ((current+direction*offset)%count + count) % count
		if surface.enabled(index) {
			return surface.activate(index)
		}
	}
	return false
}

// Seek implements overlay.Seeker over the whole filtered list,
// rendered or not.
func (surface *Surface) Seek(prefix string) bool {
	count := len(surface.visible)
	if count == 0 || prefix == "" {
		return false
	}
	prefix = Fold(prefix)
	start := 0
	if current := surface.activeVisible(); current >= 0 {
		start = current
		if len([]rune(prefix)) == 1 {
			start = current + 1
		}
	}
	for offset := range count {
		index := (start + offset) % count
		if !surface.enabled(index) {
			continue
		}
		if strings.HasPrefix(Fold(surface.visible[index].Label), prefix) {
			return surface.activate(index)
		}
	}
	return false
}

// Selected returns the selected entries in option order.
func (surface *Surface) Selected() []Entry {
	var selected []Entry
	for _, entry := range surface.entries {
		if entry.Header {
			continue
		}
		if surface.IsSelected(entry.Value) {
			selected = append(selected, entry)
		}
	}
	return slices.Clip(selected)
}
