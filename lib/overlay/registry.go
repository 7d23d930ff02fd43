// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package overlay

import (
	"strings"

	"github.com/bureau-foundation/overlay/lib/geometry"
)

// Item is one registered list entry of a node's surface.
type Item struct {
	// Element is the item's on-screen handle, used for pointer hit
	// testing. Items without one are keyboard-only.
	Element Element

	// Label is matched by typeahead.
	Label string

	// Value identifies the item across re-registrations.
	Value string

	Disabled bool

	// Submenu is the node this item opens instead of activating.
	Submenu NodeID

	// OnSelect runs when the item is activated.
	OnSelect func()
}

// Registry holds the ordered items of one node and its active
// (keyboard-highlighted) index. It is owned by exactly one node; other
// nodes never touch it.
//
// Indices are mount-order slots. Unregister leaves a hole so indices
// held elsewhere never shift. In value-tracking mode the active item
// is remembered by Value and resolved to whichever slot currently
// renders it, which is what virtualized lists need.
type Registry struct {
	items []*Item

	active int

	trackByValue bool
	activeValue  string
	hasValue     bool

	disableAll bool
}

// NewRegistry returns an empty registry with no active item.
func NewRegistry() *Registry {
	return &Registry{active: -1}
}

// TrackByValue switches how the active item is remembered.
func (registry *Registry) TrackByValue(enabled bool) {
	if enabled == registry.trackByValue {
		return
	}
	index, ok := registry.ActiveIndex()
	registry.trackByValue = enabled
	registry.ClearActive()
	if ok {
		registry.SetActive(index)
	}
}

// Register appends item and returns its index.
func (registry *Registry) Register(item Item) int {
	registry.items = append(registry.items, &item)
	return len(registry.items) - 1
}

// RegisterAt places item at index, growing the slot list with holes
// as needed. Used by virtualized lists that render a window of a
// larger list.
func (registry *Registry) RegisterAt(index int, item Item) {
	if index < 0 {
		return
	}
	for len(registry.items) <= index {
		registry.items = append(registry.items, nil)
	}
	registry.items[index] = &item
}

// Unregister empties slot index. Later indices keep their values.
func (registry *Registry) Unregister(index int) {
	if index < 0 || index >= len(registry.items) {
		return
	}
	registry.items[index] = nil
}

// Reset removes every item. The active value survives in
// value-tracking mode, so a re-render can restore it.
func (registry *Registry) Reset() {
	registry.items = nil
	if !registry.trackByValue {
		registry.active = -1
	}
}

// Len returns the number of slots, holes included.
func (registry *Registry) Len() int {
	return len(registry.items)
}

// Item returns the item in slot index.
func (registry *Registry) Item(index int) (Item, bool) {
	if index < 0 || index >= len(registry.items) || registry.items[index] == nil {
		return Item{}, false
	}
	return *registry.items[index], true
}

// Enabled reports whether slot index holds an item that can be
// navigated to and activated.
func (registry *Registry) Enabled(index int) bool {
	item, ok := registry.Item(index)
	return ok && !item.Disabled && !registry.disableAll
}

// ActiveIndex returns the slot of the active item.
func (registry *Registry) ActiveIndex() (int, bool) {
	if registry.trackByValue {
		if !registry.hasValue {
			return -1, false
		}
		for index, item := range registry.items {
			if item != nil && item.Value == registry.activeValue {
				return index, true
			}
		}
		return -1, false
	}
	if registry.active < 0 || registry.active >= len(registry.items) || registry.items[registry.active] == nil {
		return -1, false
	}
	return registry.active, true
}

// ActiveValue returns the value of the active item. In value-tracking
// mode it is reported even when no rendered slot holds the value.
func (registry *Registry) ActiveValue() (string, bool) {
	if registry.trackByValue {
		return registry.activeValue, registry.hasValue
	}
	index, ok := registry.ActiveIndex()
	if !ok {
		return "", false
	}
	return registry.items[index].Value, true
}

// IsActive reports whether slot index is the active item. It has no
// side effects.
func (registry *Registry) IsActive(index int) bool {
	active, ok := registry.ActiveIndex()
	return ok && active == index
}

// SetActive makes slot index active. Disabled items and holes are
// rejected.
func (registry *Registry) SetActive(index int) bool {
	if !registry.Enabled(index) {
		return false
	}
	registry.active = index
	registry.activeValue = registry.items[index].Value
	registry.hasValue = true
	return true
}

// SetActiveValue makes the item with value active, whether or not a
// slot currently renders it.
func (registry *Registry) SetActiveValue(value string) {
	registry.activeValue = value
	registry.hasValue = true
	registry.active = -1
	for index, item := range registry.items {
		if item != nil && item.Value == value {
			registry.active = index
			return
		}
	}
}

// ClearActive leaves no item active.
func (registry *Registry) ClearActive() {
	registry.active = -1
	registry.activeValue = ""
	registry.hasValue = false
}

// First activates the first enabled item.
func (registry *Registry) First() bool {
	for index := range registry.items {
		if registry.SetActive(index) {
			return true
		}
	}
	return false
}

// Last activates the last enabled item.
func (registry *Registry) Last() bool {
	for index := len(registry.items) - 1; index >= 0; index-- {
		if registry.SetActive(index) {
			return true
		}
	}
	return false
}

// Next activates the next enabled item, wrapping to the first.
func (registry *Registry) Next() bool {
	return registry.step(1)
}

// Prev activates the previous enabled item, wrapping to the last.
func (registry *Registry) Prev() bool {
	return registry.step(-1)
}

func (registry *Registry) step(direction int) bool {
	count := len(registry.items)
	if count == 0 {
		return false
	}
	current, ok := registry.ActiveIndex()
	if !ok {
		if direction > 0 {
			return registry.First()
		}
		return registry.Last()
	}
	for offset := 1; offset <= count; offset++ {
		index := ((current+direction*offset)%count + count) % count
		if registry.SetActive(index) {
			return true
		}
	}
	return false
}

// IndexAt returns the slot whose element contains point, or -1.
func (registry *Registry) IndexAt(point geometry.Point) int {
	for index, item := range registry.items {
		if item == nil {
			continue
		}
		if rect, ok := elementBounds(item.Element); ok && rect.Contains(point) {
			return index
		}
	}
	return -1
}

// MatchPrefix returns the first enabled slot at or after start
// (wrapping) whose label starts with prefix, case-insensitively.
func (registry *Registry) MatchPrefix(prefix string, start int) int {
	count := len(registry.items)
	if count == 0 || prefix == "" {
		return -1
	}
	prefix = strings.ToLower(prefix)
	if start < 0 {
		start = 0
	}
	for offset := 0; offset < count; offset++ {
		index := (start + offset) % count
		if !registry.Enabled(index) {
			continue
		}
		if strings.HasPrefix(strings.ToLower(registry.items[index].Label), prefix) {
			return index
		}
	}
	return -1
}
