// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package selection

// Window is the rendered slice of a long list. A zero Size renders
// everything.
type Window struct {
	Offset int
	Size   int
}

// Range returns the half-open range of rendered indices.
func (window Window) Range(total int) (start, end int) {
	if window.Size <= 0 {
		return 0, total
	}
	start = min(max(window.Offset, 0), max(total-window.Size, 0))
	end = min(start+window.Size, total)
	return start, end
}

// ScrollTo moves the window the least distance that makes index
// visible. Returns true if the offset changed.
func (window *Window) ScrollTo(index, total int) bool {
	if window.Size <= 0 || index < 0 || index >= total {
		return false
	}
	start, end := window.Range(total)
	offset := start
	switch {
	case index < start:
		offset = index
	case index >= end:
		offset = index - window.Size + 1
	}
	changed := offset != window.Offset
	window.Offset = offset
	return changed
}

// Scroll moves the window by delta, clamped to the list.
func (window *Window) Scroll(delta, total int) bool {
	if window.Size <= 0 {
		return false
	}
	before, _ := window.Range(total)
	window.Offset = before + delta
	window.Clamp(total)
	return window.Offset != before
}

// Clamp pins the offset into the valid range for total entries.
func (window *Window) Clamp(total int) {
	if window.Size <= 0 {
		window.Offset = 0
		return
	}
	window.Offset, _ = window.Range(total)
}
