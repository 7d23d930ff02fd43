// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package geometry

import "fmt"

// Point is a cell position.
type Point struct {
	X int
	Y int
}

// Add returns the point translated by other.
func (point Point) Add(other Point) Point {
	return Point{X: point.X + other.X, Y: point.Y + other.Y}
}

func (point Point) String() string {
	return fmt.Sprintf("(%d,%d)", point.X, point.Y)
}

// Rect is an axis-aligned block of cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Right returns the exclusive right edge.
func (rect Rect) Right() int { return rect.X + rect.Width }

// Bottom returns the exclusive bottom edge.
func (rect Rect) Bottom() int { return rect.Y + rect.Height }

// Empty reports whether the rectangle covers no cells.
func (rect Rect) Empty() bool { return rect.Width <= 0 || rect.Height <= 0 }

// Origin returns the top-left cell.
func (rect Rect) Origin() Point { return Point{X: rect.X, Y: rect.Y} }

// Contains reports whether the cell at point lies inside the rectangle.
func (rect Rect) Contains(point Point) bool {
	if rect.Empty() {
		return false
	}
	return point.X >= rect.X && point.X < rect.Right() &&
		point.Y >= rect.Y && point.Y < rect.Bottom()
}

// Intersects reports whether the two rectangles share at least one cell.
func (rect Rect) Intersects(other Rect) bool {
	if rect.Empty() || other.Empty() {
		return false
	}
	return rect.X < other.Right() && other.X < rect.Right() &&
		rect.Y < other.Bottom() && other.Y < rect.Bottom()
}

// Union returns the smallest rectangle covering both. An empty operand
// is ignored.
func (rect Rect) Union(other Rect) Rect {
	if rect.Empty() {
		return other
	}
	if other.Empty() {
		return rect
	}
	left := min(rect.X, other.X)
	top := min(rect.Y, other.Y)
	right := max(rect.Right(), other.Right())
	bottom := max(rect.Bottom(), other.Bottom())
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Translate returns the rectangle moved by offset.
func (rect Rect) Translate(offset Point) Rect {
	rect.X += offset.X
	rect.Y += offset.Y
	return rect
}

// Inset shrinks the rectangle by amount cells on every side. The
// result never has negative dimensions.
func (rect Rect) Inset(amount int) Rect {
	rect.X += amount
	rect.Y += amount
	rect.Width = max(0, rect.Width-2*amount)
	rect.Height = max(0, rect.Height-2*amount)
	return rect
}

// Corners returns the four corner cells in clockwise order starting at
// the top-left. An empty rectangle has no corners.
func (rect Rect) Corners() []Point {
	if rect.Empty() {
		return nil
	}
	right := rect.Right() - 1
	bottom := rect.Bottom() - 1
	return []Point{
		{X: rect.X, Y: rect.Y},
		{X: right, Y: rect.Y},
		{X: right, Y: bottom},
		{X: rect.X, Y: bottom},
	}
}

func (rect Rect) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", rect.Width, rect.Height, rect.X, rect.Y)
}
