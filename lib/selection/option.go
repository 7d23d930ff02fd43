// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package selection

// Option is one declared choice, or a group of choices when it has
// children or Group is set.
type Option struct {
	Label    string
	Value    string
	Disabled bool

	// Group marks the option as a group header even without children.
	Group bool

	// Radios makes the group's options mutually exclusive in a
	// multiselection.
	Radios bool

	Children []Option
}

// IsGroup reports whether the option is a group header.
func (option Option) IsGroup() bool {
	return option.Group || len(option.Children) > 0
}

// Entry is one row of a flattened option list.
type Entry struct {
	Label    string
	Value    string
	Disabled bool

	// Header marks a group header. Headers cannot be selected.
	Header bool

	// Group is the index of the enclosing header within the same
	// slice, or -1 at the top level.
	Group int

	// Depth is the nesting level, 0 at the top level.
	Depth int

	// Radios is set on options of a radios group, and on the group's
	// header.
	Radios bool
}

// Selectable reports whether the entry can be chosen.
func (entry Entry) Selectable() bool {
	return !entry.Header && !entry.Disabled
}

// Flatten turns an option tree into entries, depth-first, preserving
// declaration order. Options of a disabled group are disabled.
func Flatten(options []Option) []Entry {
	var entries []Entry
	var walk func(options []Option, group, depth int, radios, disabled bool)
	walk = func(options []Option, group, depth int, radios, disabled bool) {
		for _, option := range options {
			if option.IsGroup() {
				header := len(entries)
				entries = append(entries, Entry{
					Label:    option.Label,
					Value:    option.Value,
					Disabled: disabled || option.Disabled,
					Header:   true,
					Group:    group,
					Depth:    depth,
					Radios:   option.Radios,
				})
				walk(option.Children, header, depth+1, option.Radios, disabled || option.Disabled)
				continue
			}
			entries = append(entries, Entry{
				Label:    option.Label,
				Value:    option.Value,
				Disabled: disabled || option.Disabled,
				Group:    group,
				Depth:    depth,
				Radios:   radios,
			})
		}
	}
	walk(options, -1, 0, false, false)
	return entries
}

// indexOf returns the index of the option entry with value, or -1.
func indexOf(entries []Entry, value string) int {
	for index, entry := range entries {
		if !entry.Header && entry.Value == value {
			return index
		}
	}
	return -1
}
