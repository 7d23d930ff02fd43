// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package selection

// Multi is a multiselection over a flattened option list. Options
// toggle independently, except inside a radios group where choosing an
// option deselects the other options of that group only.
type Multi struct {
	entries  []Entry
	selected map[string]bool
}

// NewMulti creates an empty selection over entries.
func NewMulti(entries []Entry) *Multi {
	return &Multi{entries: entries, selected: make(map[string]bool)}
}

// SetEntries replaces the option list and drops selected values it no
// longer contains. Returns true if the selection changed.
func (multi *Multi) SetEntries(entries []Entry) bool {
	multi.entries = entries
	changed := false
	for value := range multi.selected {
		if indexOf(entries, value) < 0 {
			delete(multi.selected, value)
			changed = true
		}
	}
	return changed
}

// Set replaces the selection. Unknown values are ignored; within a
// radios group the last listed value wins.
func (multi *Multi) Set(values []string) {
	multi.selected = make(map[string]bool)
	for _, value := range values {
		index := indexOf(multi.entries, value)
		if index < 0 {
			continue
		}
		multi.selectIndex(index)
	}
}

// Toggle flips value. Choosing an already selected radio is a no-op.
// Returns true if the selection changed.
func (multi *Multi) Toggle(value string) bool {
	index := indexOf(multi.entries, value)
	if index < 0 || !multi.entries[index].Selectable() {
		return false
	}
	entry := multi.entries[index]
	if multi.selected[value] {
		if entry.Radios {
			return false
		}
		delete(multi.selected, value)
		return true
	}
	multi.selectIndex(index)
	return true
}

func (multi *Multi) selectIndex(index int) {
	entry := multi.entries[index]
	if entry.Radios {
		for _, sibling := range multi.entries {
			if !sibling.Header && sibling.Radios && sibling.Group == entry.Group {
				delete(multi.selected, sibling.Value)
			}
		}
	}
	multi.selected[entry.Value] = true
}

// IsSelected reports whether value is selected.
func (multi *Multi) IsSelected(value string) bool {
	return multi.selected[value]
}

// Values returns the selected values in option order.
func (multi *Multi) Values() []string {
	var values []string
	for _, entry := range multi.entries {
		if !entry.Header && multi.selected[entry.Value] {
			values = append(values, entry.Value)
		}
	}
	return values
}

// Len returns the number of selected values.
func (multi *Multi) Len() int {
	return len(multi.selected)
}
