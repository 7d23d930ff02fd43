// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package overlay

import (
	"time"

	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/placement"
)

// AutoClose selects which interactions close a node.
type AutoClose string

const (
	// AutoCloseDefault behaves as AutoCloseAlways.
	AutoCloseDefault AutoClose = ""
	// AutoCloseAlways closes on item activation and outside presses.
	AutoCloseAlways AutoClose = "true"
	// AutoCloseInside closes on item activation only.
	AutoCloseInside AutoClose = "inside"
	// AutoCloseOutside closes on outside presses only.
	AutoCloseOutside AutoClose = "outside"
	// AutoCloseNever closes only on toggle, Escape, or a parent closing.
	AutoCloseNever AutoClose = "false"
)

func (autoClose AutoClose) closesInside() bool {
	return autoClose == AutoCloseDefault || autoClose == AutoCloseAlways || autoClose == AutoCloseInside
}

func (autoClose AutoClose) closesOutside() bool {
	return autoClose == AutoCloseDefault || autoClose == AutoCloseAlways || autoClose == AutoCloseOutside
}

// Valid reports whether the value is one of the known settings.
func (autoClose AutoClose) Valid() bool {
	switch autoClose {
	case AutoCloseDefault, AutoCloseAlways, AutoCloseInside, AutoCloseOutside, AutoCloseNever:
		return true
	}
	return false
}

// FocusFirst selects when opening highlights the first item.
type FocusFirst string

const (
	// FocusFirstDefault behaves as FocusFirstKeyboard.
	FocusFirstDefault FocusFirst = ""
	// FocusFirstAlways highlights the first item on every open.
	FocusFirstAlways FocusFirst = "true"
	// FocusFirstNever leaves the active item unset on open.
	FocusFirstNever FocusFirst = "false"
	// FocusFirstKeyboard highlights the first item only when the open
	// was keyboard-triggered.
	FocusFirstKeyboard FocusFirst = "keyboard"
)

// Valid reports whether the value is one of the known settings.
func (focusFirst FocusFirst) Valid() bool {
	switch focusFirst {
	case FocusFirstDefault, FocusFirstAlways, FocusFirstNever, FocusFirstKeyboard:
		return true
	}
	return false
}

// OutsidePress selects what counts as an outside press.
type OutsidePress string

const (
	// OutsidePressAny treats presses outside the reference and every
	// surface of the node's subtree as outside.
	OutsidePressAny OutsidePress = ""
	// OutsidePressFloating treats any press outside the subtree's
	// surfaces as outside, including presses on the reference.
	OutsidePressFloating OutsidePress = "floating"
	// OutsidePressNone disables outside-press dismissal.
	OutsidePressNone OutsidePress = "none"
)

// Valid reports whether the value is one of the known settings.
func (outside OutsidePress) Valid() bool {
	switch outside {
	case OutsidePressAny, OutsidePressFloating, OutsidePressNone:
		return true
	}
	return false
}

// Default timings. A zero duration in Options selects these.
const (
	DefaultHoverDelay         = 50 * time.Millisecond
	DefaultSafePolygonTimeout = 100 * time.Millisecond
	DefaultTypeaheadReset     = 750 * time.Millisecond
)

// Options configures a Node.
type Options struct {
	// Open, when non-nil, makes the node controlled: its open state is
	// owned by the consumer, who feeds changes through
	// Node.SetControlledOpen. The pointed-to value is the initial state.
	Open *bool

	// OnOpenChange receives every open-change request, in both
	// controlled and uncontrolled mode.
	OnOpenChange func(OpenChange)

	// AlignEnd aligns the surface to the end edge of its reference.
	AlignEnd bool

	// Drop is the direction the surface opens in.
	Drop placement.Drop

	// RTL mirrors placement and the horizontal navigation keys.
	RTL bool

	// Placement overrides the placement computed from AlignEnd, Drop,
	// RTL and nesting.
	Placement placement.Placement

	// Middleware configures offset, flip, shift and auto-size.
	Middleware placement.Middleware

	AutoClose            AutoClose
	OutsidePress         OutsidePress
	FocusFirstItem       FocusFirst
	CloseOnScrollOutside bool

	// Disabled nodes refuse every open request.
	Disabled bool

	// RenderOnMount mounts the surface eagerly so it can be measured
	// before the first open.
	RenderOnMount bool

	// Transition keeps a closing surface mounted until the host calls
	// Node.TransitionEnd. Without it, closing unmounts immediately.
	Transition bool

	// ResetActiveToFirst resets the active item to the first item on
	// close instead of clearing it.
	ResetActiveToFirst bool

	HoverDelay         time.Duration
	SafePolygonTimeout time.Duration
	TypeaheadReset     time.Duration

	// FocusDelay defers moving focus into a freshly opened root
	// surface. Zero moves focus immediately.
	FocusDelay time.Duration

	// TravelPath decides whether the pointer is still travelling from a
	// nested trigger to its surface. Nil selects
	// geometry.InsideTravelPath.
	TravelPath geometry.TravelPathFunc
}

// DefaultOptions returns the options a plain dropdown menu uses.
func DefaultOptions() Options {
	return Options{Middleware: placement.DefaultMiddleware()}
}

// Controlled returns a pointer to open, for use as Options.Open.
func Controlled(open bool) *bool {
	return &open
}

func (options Options) hoverDelay() time.Duration {
	if options.HoverDelay <= 0 {
		return DefaultHoverDelay
	}
	return options.HoverDelay
}

func (options Options) safePolygonTimeout() time.Duration {
	if options.SafePolygonTimeout <= 0 {
		return DefaultSafePolygonTimeout
	}
	return options.SafePolygonTimeout
}

func (options Options) typeaheadReset() time.Duration {
	if options.TypeaheadReset <= 0 {
		return DefaultTypeaheadReset
	}
	return options.TypeaheadReset
}

func (options Options) travelPath() geometry.TravelPathFunc {
	if options.TravelPath == nil {
		return geometry.InsideTravelPath
	}
	return options.TravelPath
}

func (options Options) focusFirstOnOpen(reason Reason) bool {
	switch options.FocusFirstItem {
	case FocusFirstAlways:
		return true
	case FocusFirstNever:
		return false
	default:
		return reason == ReasonKeyDown
	}
}
