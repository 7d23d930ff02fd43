// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package overlay

import "github.com/bureau-foundation/overlay/lib/geometry"

// NodeID identifies a mounted node. IDs are unique per tree and never
// reused.
type NodeID string

// Reason explains why an open-change was requested.
type Reason string

const (
	// ReasonClick is a press on a root node's reference.
	ReasonClick Reason = "click"

	// ReasonMouseDown is a press that opened a nested node directly
	// (touch, or a terminal without motion reporting).
	ReasonMouseDown Reason = "mousedown"

	// ReasonKeyDown is a keyboard open, a keyboard submenu open, or a
	// submenu closed with the back key.
	ReasonKeyDown Reason = "keydown"

	// ReasonOutside is a press or scroll outside the node's surfaces.
	ReasonOutside Reason = "outside"

	// ReasonEscapeKey is the Escape key.
	ReasonEscapeKey Reason = "escape-key"

	// ReasonNavigation is sibling exclusion: another child of the same
	// parent opened.
	ReasonNavigation Reason = "navigation"

	// ReasonSelect is the item-activated cascade.
	ReasonSelect Reason = "select"

	// ReasonRootClose is a node closing because its parent closed.
	ReasonRootClose Reason = "rootClose"

	// ReasonHover is hover intent opening a nested node, or the pointer
	// leaving its travel corridor.
	ReasonHover Reason = "hover"

	// ReasonFocusOut is focus leaving the tree (Tab, or the terminal
	// losing focus).
	ReasonFocusOut Reason = "focusOut"
)

// OpenChange is delivered to Options.OnOpenChange for every requested
// open-state change.
type OpenChange struct {
	Node   NodeID
	Open   bool
	Reason Reason

	// Event is the originating input: a KeyEvent, a PointerEvent, a
	// bus Event, or nil.
	Event any
}

// EventKind distinguishes bus messages.
type EventKind int

const (
	// EventItemActivated is published when an item is chosen.
	EventItemActivated EventKind = iota

	// EventSubmenuOpened is published when a node begins opening.
	EventSubmenuOpened

	// EventNodeClosed is published when a node finishes its close
	// transition request. Closing never publishes EventSubmenuOpened,
	// so cascades terminate.
	EventNodeClosed
)

func (kind EventKind) String() string {
	switch kind {
	case EventItemActivated:
		return "item-activated"
	case EventSubmenuOpened:
		return "submenu-opened"
	case EventNodeClosed:
		return "node-closed"
	default:
		return "unknown"
	}
}

// Event is a bus message. NodeID is the publishing node.
type Event struct {
	Kind     EventKind
	NodeID   NodeID
	ParentID NodeID

	// Value is the activated item's value for EventItemActivated.
	Value string
}

// Key is a terminal-neutral key.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyEnter
	KeySpace
	KeyEscape
	KeyTab
	KeyRune
)

// KeyEvent is one key press. Rune is set for KeyRune.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// PointerAction is the kind of pointer input.
type PointerAction int

const (
	PointerPress PointerAction = iota
	PointerRelease
	PointerMove
	PointerWheel
)

// PointerEvent is one pointer input at a cell position.
type PointerEvent struct {
	Action   PointerAction
	Position geometry.Point
}
