// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package geometry

import "testing"

func TestRectContains(t *testing.T) {
	rect := Rect{X: 2, Y: 3, Width: 4, Height: 2}
	tests := []struct {
		point Point
		want  bool
	}{
		{Point{2, 3}, true},
		{Point{5, 4}, true},
		{Point{6, 4}, false}, // Right edge is exclusive.
		{Point{5, 5}, false}, // Bottom edge is exclusive.
		{Point{1, 3}, false},
	}
	for _, test := range tests {
		if got := rect.Contains(test.point); got != test.want {
			t.Errorf("Contains(%v) = %v, want %v", test.point, got, test.want)
		}
	}
	if (Rect{X: 0, Y: 0, Width: 0, Height: 5}).Contains(Point{0, 0}) {
		t.Error("empty rectangle should contain nothing")
	}
}

func TestRectIntersectsAndUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 4, Height: 4}
	b := Rect{X: 3, Y: 3, Width: 4, Height: 4}
	c := Rect{X: 4, Y: 0, Width: 2, Height: 2}

	if !a.Intersects(b) {
		t.Error("overlapping rectangles should intersect")
	}
	if a.Intersects(c) {
		t.Error("adjacent rectangles should not intersect")
	}

	union := a.Union(b)
	want := Rect{X: 0, Y: 0, Width: 7, Height: 7}
	if union != want {
		t.Errorf("Union = %v, want %v", union, want)
	}
	if got := (Rect{}).Union(c); got != c {
		t.Errorf("empty union operand should be ignored, got %v", got)
	}
}

func TestRectInset(t *testing.T) {
	got := Rect{X: 0, Y: 0, Width: 3, Height: 10}.Inset(2)
	want := Rect{X: 2, Y: 2, Width: 0, Height: 6}
	if got != want {
		t.Errorf("Inset = %v, want %v", got, want)
	}
}

func TestInsideTravelPath(t *testing.T) {
	// A menu item on row 0 and its submenu to the right spanning five
	// rows: the classic diagonal-travel layout.
	trigger := Rect{X: 0, Y: 0, Width: 10, Height: 1}
	submenu := Rect{X: 12, Y: 0, Width: 10, Height: 5}

	tests := []struct {
		name    string
		pointer Point
		want    bool
	}{
		{"inside trigger", Point{3, 0}, true},
		{"inside submenu", Point{15, 3}, true},
		{"gap between them", Point{11, 0}, true},
		{"diagonal toward submenu", Point{11, 2}, true},
		{"below the corridor", Point{5, 3}, false},
		{"far away", Point{40, 40}, false},
		{"left of trigger", Point{-1, 0}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := InsideTravelPath(test.pointer, trigger, submenu); got != test.want {
				t.Errorf("InsideTravelPath(%v) = %v, want %v", test.pointer, got, test.want)
			}
		})
	}
}

func TestInsideTravelPathEmptyRects(t *testing.T) {
	submenu := Rect{X: 12, Y: 0, Width: 10, Height: 5}
	if !InsideTravelPath(Point{13, 1}, Rect{}, submenu) {
		t.Error("pointer inside the non-empty rectangle should be on the path")
	}
	if InsideTravelPath(Point{11, 0}, Rect{}, submenu) {
		t.Error("corridor needs both rectangles")
	}
}

func TestInsideTravelPathSingleRow(t *testing.T) {
	// Both rectangles on one row: the hull collapses to a segment.
	trigger := Rect{X: 0, Y: 0, Width: 3, Height: 1}
	surface := Rect{X: 8, Y: 0, Width: 3, Height: 1}
	if !InsideTravelPath(Point{5, 0}, trigger, surface) {
		t.Error("point between two single-row rectangles should be on the path")
	}
	if InsideTravelPath(Point{5, 1}, trigger, surface) {
		t.Error("point off the row should not be on the path")
	}
}
