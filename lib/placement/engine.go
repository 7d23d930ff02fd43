// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package placement

import "github.com/bureau-foundation/overlay/lib/geometry"

// Middleware configures the adjustments an Engine applies on top of
// the requested placement.
type Middleware struct {
	// Offset is the gap in cells between the reference and the surface
	// along the main axis.
	Offset int

	// Flip moves the surface to the opposite side when the requested
	// side cannot fit it and the opposite side has more room.
	Flip bool

	// Shift slides the surface along the cross axis to keep it inside
	// the viewport.
	Shift bool

	// ShiftPadding is the minimum distance from the viewport edge
	// maintained by Shift.
	ShiftPadding int

	// AutoSize reports the space available on the resolved side in
	// Result.MaxWidth and Result.MaxHeight so the surface can scroll
	// instead of overflowing.
	AutoSize bool
}

// DefaultMiddleware is flip and shift enabled with no offset, the
// configuration dropdown menus use unless told otherwise.
func DefaultMiddleware() Middleware {
	return Middleware{Flip: true, Shift: true, AutoSize: true}
}

// Request is one placement computation. Only the size of Floating is
// used; its position is what the engine computes.
type Request struct {
	Reference  geometry.Rect
	Floating   geometry.Rect
	Viewport   geometry.Rect
	Placement  Placement
	Middleware Middleware
}

// Result is a computed position for the floating surface.
type Result struct {
	// Placement is the placement actually used, which differs from the
	// request when Flip moved the surface.
	Placement Placement

	// X and Y are the top-left cell of the surface.
	X int
	Y int

	// MaxWidth and MaxHeight bound the surface when AutoSize is
	// enabled. Zero means unconstrained.
	MaxWidth  int
	MaxHeight int
}

// Rect returns the surface rectangle for the given size, clipped to
// MaxWidth/MaxHeight when set.
func (result Result) Rect(width, height int) geometry.Rect {
	if result.MaxWidth > 0 && width > result.MaxWidth {
		width = result.MaxWidth
	}
	if result.MaxHeight > 0 && height > result.MaxHeight {
		height = result.MaxHeight
	}
	return geometry.Rect{X: result.X, Y: result.Y, Width: width, Height: height}
}

// Engine computes surface positions. Implementations must be pure:
// the same Request always yields the same Result.
type Engine interface {
	Compute(request Request) Result
}

// CellEngine is the default Engine for terminal screens.
type CellEngine struct{}

// Compute implements Engine.
func (CellEngine) Compute(request Request) Result {
	placement := request.Placement
	if placement == "" {
		placement = BottomStart
	}
	middleware := request.Middleware
	viewport := request.Viewport
	haveViewport := !viewport.Empty()

	if middleware.Flip && haveViewport {
		need := request.Floating.Height
		if !placement.Vertical() {
			need = request.Floating.Width
		}
		available := space(placement.Side(), request.Reference, viewport, middleware.Offset)
		if available < need {
			opposite := placement.Opposite()
			if space(opposite.Side(), request.Reference, viewport, middleware.Offset) > available {
				placement = opposite
			}
		}
	}

	x, y := anchor(placement, request.Reference, request.Floating, middleware.Offset)

	if middleware.Shift && haveViewport {
		padding := middleware.ShiftPadding
		if placement.Vertical() {
			x = clamp(x, viewport.X+padding, viewport.Right()-padding-request.Floating.Width)
		} else {
			y = clamp(y, viewport.Y+padding, viewport.Bottom()-padding-request.Floating.Height)
		}
	}

	result := Result{Placement: placement, X: x, Y: y}
	if middleware.AutoSize && haveViewport {
		available := max(0, space(placement.Side(), request.Reference, viewport, middleware.Offset))
		if placement.Vertical() {
			result.MaxHeight = available
			result.MaxWidth = viewport.Width
		} else {
			result.MaxWidth = available
			result.MaxHeight = viewport.Height
		}
		// A surface flipped upward grows toward the reference from its
		// clipped top edge.
		if placement.Side() == SideTop && request.Floating.Height > available {
			result.Y = request.Reference.Y - middleware.Offset - available
		}
		if placement.Side() == SideLeft && request.Floating.Width > available {
			result.X = request.Reference.X - middleware.Offset - available
		}
	}
	return result
}

// anchor returns the unadjusted top-left of the surface.
func anchor(placement Placement, reference, floating geometry.Rect, offset int) (int, int) {
	var x, y int
	switch placement.Side() {
	case SideTop:
		y = reference.Y - floating.Height - offset
	case SideBottom:
		y = reference.Bottom() + offset
	case SideLeft:
		x = reference.X - floating.Width - offset
	case SideRight:
		x = reference.Right() + offset
	}

	alignment := placement.Alignment()
	if placement.Vertical() {
		switch alignment {
		case AlignStart:
			x = reference.X
		case AlignEnd:
			x = reference.Right() - floating.Width
		default:
			x = reference.X + (reference.Width-floating.Width)/2
		}
	} else {
		switch alignment {
		case AlignStart:
			y = reference.Y
		case AlignEnd:
			y = reference.Bottom() - floating.Height
		default:
			y = reference.Y + (reference.Height-floating.Height)/2
		}
	}
	return x, y
}

// space returns the number of cells available between the reference
// and the viewport edge on the given side, minus the offset.
func space(side Side, reference, viewport geometry.Rect, offset int) int {
	switch side {
	case SideTop:
		return reference.Y - viewport.Y - offset
	case SideBottom:
		return viewport.Bottom() - reference.Bottom() - offset
	case SideLeft:
		return reference.X - viewport.X - offset
	default:
		return viewport.Right() - reference.Right() - offset
	}
}

// clamp pins value into [low, high]; when the range is inverted the
// low bound wins so the surface's start edge stays visible.
func clamp(value, low, high int) int {
	if value > high {
		value = high
	}
	if value < low {
		value = low
	}
	return value
}
