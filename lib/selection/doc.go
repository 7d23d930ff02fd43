// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package selection specializes an overlay node into a select,
// combobox, or multiselect.
//
// Options are declared as a tree of [Option] values (groups contain
// options) and flattened depth-first into [Entry] values: group headers
// become non-selectable entries and every option records the index of
// its enclosing header. A keyword filters entries through a [Matcher]
// (diacritic-folded substring or fzf fuzzy matching), keeping a header
// only while one of its options survives. A [Reconciler] corrects a
// current value that no longer names an option, at most once per
// option-list change. [Multi] holds a multiselection in which "radios"
// groups are mutually exclusive. [Window] limits how many entries are
// rendered at once.
//
// [Surface] ties these to an [overlay.Node]: it registers the rendered
// entries as the node's items and installs itself as the node's
// navigator, so keyboard navigation and typeahead cover the whole
// filtered list even when only a window of it is rendered. Virtualized
// surfaces track the active item by value.
package selection
