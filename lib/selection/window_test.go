// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package selection

import "testing"

func TestWindowRange(t *testing.T) {
	tests := []struct {
		window     Window
		total      int
		start, end int
	}{
		{Window{Offset: 0, Size: 0}, 50, 0, 50},
		{Window{Offset: 0, Size: 5}, 50, 0, 5},
		{Window{Offset: 10, Size: 5}, 50, 10, 15},
		{Window{Offset: 48, Size: 5}, 50, 45, 50},
		{Window{Offset: 3, Size: 5}, 2, 0, 2},
		{Window{Offset: -4, Size: 5}, 50, 0, 5},
	}
	for _, test := range tests {
		start, end := test.window.Range(test.total)
		if start != test.start || end != test.end {
			t.Errorf("%+v.Range(%d) = [%d,%d), want [%d,%d)",
				test.window, test.total, start, end, test.start, test.end)
		}
	}
}

func TestWindowScrollTo(t *testing.T) {
	window := Window{Size: 5}
	steps := []struct {
		index      int
		wantOffset int
		wantMoved  bool
	}{
		{3, 0, false},
		{5, 1, true},
		{20, 16, true},
		{16, 16, false},
		{2, 2, true},
		{99, 2, false},
	}
	for _, step := range steps {
		moved := window.ScrollTo(step.index, 50)
		if moved != step.wantMoved || window.Offset != step.wantOffset {
			t.Errorf("ScrollTo(%d) = %v offset %d, want %v offset %d",
				step.index, moved, window.Offset, step.wantMoved, step.wantOffset)
		}
	}
}

func TestWindowScroll(t *testing.T) {
	window := Window{Size: 5}
	window.Scroll(3, 10)
	if window.Offset != 3 {
		t.Errorf("offset = %d, want 3", window.Offset)
	}
	window.Scroll(10, 10)
	if window.Offset != 5 {
		t.Errorf("offset = %d, want 5 (clamped)", window.Offset)
	}
	if window.Scroll(1, 10) {
		t.Error("scrolling past the end reported movement")
	}
}
