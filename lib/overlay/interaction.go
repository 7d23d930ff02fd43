// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package overlay

import (
	"strings"
	"time"
	"unicode"

	"github.com/bureau-foundation/overlay/lib/clock"
	"github.com/bureau-foundation/overlay/lib/geometry"
)

type hoverIntent int

const (
	hoverNone hoverIntent = iota
	// hoverOpening: the pointer rests on a closed nested reference.
	hoverOpening
	// hoverCorridor: the pointer is inside the travel corridor; each
	// move restarts the close deadline.
	hoverCorridor
	// hoverLeaving: the pointer left the corridor but is still on the
	// parent's surface; the deadline is fixed so a sibling's hover
	// open can win.
	hoverLeaving
)

// interactionState is the per-node pointer and keyboard bookkeeping.
// Every timer callback captures a generation and does nothing if the
// generation moved on before it fired.
type interactionState struct {
	hover           hoverIntent
	hoverGeneration uint64
	hoverTimer      *clock.Timer
	// hoverEngaged is set once the pointer has been on the reference
	// or the surfaces since the node opened. A submenu opened from the
	// keyboard is not closed by unrelated pointer motion.
	hoverEngaged bool

	typeahead           string
	typeaheadGeneration uint64
	typeaheadTimer      *clock.Timer

	focusGeneration uint64
	focusTimer      *clock.Timer
}

// pointerHit is where a pointer position falls relative to a node,
// computed for every node before any of them reacts.
type pointerHit struct {
	reference bool
	floating  bool
	// descendants: on the surface of an open (or closing) descendant.
	descendants bool
	// parent: on the parent's surface.
	parent bool
}

func (hit pointerHit) insideSurfaces() bool {
	return hit.floating || hit.descendants
}

func (node *Node) visibleFloatingContains(point geometry.Point) bool {
	if !node.content.Visible() {
		return false
	}
	rect, ok := node.FloatingRect()
	return ok && rect.Contains(point)
}

func (node *Node) descendantContains(point geometry.Point) bool {
	for _, child := range node.tree.Children(node.id) {
		if child.visibleFloatingContains(point) || child.descendantContains(point) {
			return true
		}
	}
	return false
}

func (node *Node) hitTest(point geometry.Point) pointerHit {
	var hit pointerHit
	if rect, ok := node.ReferenceRect(); ok && rect.Contains(point) {
		hit.reference = true
	}
	hit.floating = node.visibleFloatingContains(point)
	hit.descendants = node.descendantContains(point)
	if parent := node.tree.Node(node.parentID); parent != nil {
		hit.parent = parent.visibleFloatingContains(point)
	}
	return hit
}

// handlePointer reacts to one pointer event. consumed is true when a
// deeper node already handled it.
func (node *Node) handlePointer(event PointerEvent, hit pointerHit, consumed bool) bool {
	switch event.Action {
	case PointerPress:
		if consumed && (hit.reference || hit.insideSurfaces()) {
			return false
		}
		return node.handlePress(event, hit)
	case PointerMove:
		return node.handleMove(event, hit, consumed)
	case PointerWheel:
		if node.IsOpen() && node.options.CloseOnScrollOutside && !hit.insideSurfaces() {
			node.RequestOpenChange(false, event, ReasonOutside)
			return false
		}
		return hit.floating
	}
	return false
}

func (node *Node) handlePress(event PointerEvent, hit pointerHit) bool {
	open := node.IsOpen()
	if hit.reference {
		if node.IsNested() {
			if !open {
				node.RequestOpenChange(true, event, ReasonMouseDown)
			}
			return true
		}
		if open && node.options.OutsidePress == OutsidePressFloating && node.options.AutoClose.closesOutside() {
			node.RequestOpenChange(false, event, ReasonOutside)
			return true
		}
		node.RequestOpenChange(!open, event, ReasonClick)
		return true
	}
	if !open {
		return false
	}
	if hit.floating && !hit.descendants {
		if index := node.registry.IndexAt(event.Position); index >= 0 {
			node.ActivateItem(index, event)
		}
		return true
	}
	if hit.insideSurfaces() {
		return false
	}
	if node.options.OutsidePress == OutsidePressNone || !node.options.AutoClose.closesOutside() {
		return false
	}
	node.RequestOpenChange(false, event, ReasonOutside)
	return false
}

func (node *Node) handleMove(event PointerEvent, hit pointerHit, consumed bool) bool {
	handled := false
	if !consumed && node.IsOpen() && hit.floating && !hit.descendants {
		if index := node.registry.IndexAt(event.Position); index >= 0 {
			node.registry.SetActive(index)
		}
		handled = true
	}
	if node.IsNested() {
		node.trackHover(event, hit)
	}
	return handled
}

// trackHover is hover intent for nested nodes: open after resting on
// the reference, stay open while the pointer travels toward the
// surface, close once it has clearly gone elsewhere.
func (node *Node) trackHover(event PointerEvent, hit pointerHit) {
	state := &node.interaction
	if hit.reference {
		if node.IsOpen() {
			state.hoverEngaged = true
			node.cancelHover()
			return
		}
		if state.hover != hoverOpening {
			node.scheduleHover(hoverOpening, node.options.hoverDelay(), event)
		}
		return
	}

	if !node.IsOpen() {
		if state.hover == hoverOpening {
			node.cancelHover()
		}
		return
	}
	if hit.insideSurfaces() {
		state.hoverEngaged = true
		node.cancelHover()
		return
	}
	if !state.hoverEngaged {
		return
	}

	reference, referenceOK := node.ReferenceRect()
	floating, floatingOK := node.FloatingRect()
	if referenceOK && floatingOK && node.options.travelPath()(event.Position, reference, floating) {
		node.scheduleHover(hoverCorridor, node.options.safePolygonTimeout(), event)
		return
	}
	if hit.parent {
		if state.hover != hoverLeaving {
			node.scheduleHover(hoverLeaving, node.options.safePolygonTimeout(), event)
		}
		return
	}
	node.cancelHover()
	node.RequestOpenChange(false, event, ReasonHover)
}

func (node *Node) scheduleHover(intent hoverIntent, delay time.Duration, event PointerEvent) {
	node.cancelHover()
	state := &node.interaction
	generation := state.hoverGeneration
	state.hover = intent
	state.hoverTimer = node.tree.clock.AfterFunc(delay, func() {
		if !node.mounted || state.hoverGeneration != generation {
			return
		}
		state.hover = hoverNone
		state.hoverTimer = nil
		node.RequestOpenChange(intent == hoverOpening, event, ReasonHover)
	})
}

func (node *Node) cancelHover() {
	state := &node.interaction
	state.hoverGeneration++
	state.hoverTimer.Stop()
	state.hoverTimer = nil
	state.hover = hoverNone
}

func (node *Node) resetInteraction() {
	state := &node.interaction
	state.typeahead = ""
	state.typeaheadGeneration++
	state.typeaheadTimer.Stop()
	state.typeaheadTimer = nil
}

// handleKey reacts to a key routed to this node.
func (node *Node) handleKey(event KeyEvent) bool {
	if !node.mounted {
		return false
	}
	if !node.IsOpen() {
		switch event.Key {
		case KeyDown, KeyUp:
			// Arrows open only when opening lands on the first item.
			if node.options.FocusFirstItem == FocusFirstNever {
				return false
			}
			fallthrough
		case KeyEnter, KeySpace:
			if node.options.Disabled {
				return false
			}
			node.RequestOpenChange(true, event, ReasonKeyDown)
			return true
		}
		return false
	}

	forward, back := KeyRight, KeyLeft
	if node.options.RTL {
		forward, back = KeyLeft, KeyRight
	}

	switch event.Key {
	case KeyDown:
		node.navigator.Next()
		return true
	case KeyUp:
		node.navigator.Prev()
		return true
	case KeyHome:
		node.navigator.First()
		return true
	case KeyEnd:
		node.navigator.Last()
		return true
	case KeyEnter, KeySpace:
		if index, ok := node.registry.ActiveIndex(); ok {
			node.ActivateItem(index, event)
		}
		return true
	case forward:
		index, ok := node.registry.ActiveIndex()
		if !ok {
			return false
		}
		item, _ := node.registry.Item(index)
		if item.Submenu == "" {
			return false
		}
		node.ActivateItem(index, event)
		return true
	case back:
		if !node.IsNested() {
			return false
		}
		node.RequestOpenChange(false, event, ReasonKeyDown)
		return true
	case KeyEscape:
		node.RequestOpenChange(false, event, ReasonEscapeKey)
		return true
	case KeyTab:
		root := node
		for parent := node.tree.Node(root.parentID); parent != nil; parent = node.tree.Node(root.parentID) {
			root = parent
		}
		root.RequestOpenChange(false, event, ReasonFocusOut)
		return false
	case KeyRune:
		return node.typeahead(event.Rune)
	}
	return false
}

// typeahead appends r to the buffer and activates the first matching
// item. The buffer clears after Options.TypeaheadReset without input.
func (node *Node) typeahead(r rune) bool {
	if !unicode.IsPrint(r) {
		return false
	}
	state := &node.interaction
	state.typeahead += strings.ToLower(string(r))
	state.typeaheadGeneration++
	generation := state.typeaheadGeneration
	state.typeaheadTimer.Stop()
	state.typeaheadTimer = node.tree.clock.AfterFunc(node.options.typeaheadReset(), func() {
		if state.typeaheadGeneration != generation {
			return
		}
		state.typeahead = ""
		state.typeaheadTimer = nil
	})

	if seeker, ok := node.navigator.(Seeker); ok {
		return seeker.Seek(state.typeahead)
	}
	start := 0
	if active, ok := node.registry.ActiveIndex(); ok {
		start = active
		// A fresh buffer moves on from the current item so repeated
		// presses of one letter cycle through its matches.
		if len([]rune(state.typeahead)) == 1 {
			start = active + 1
		}
	}
	index := node.registry.MatchPrefix(state.typeahead, start)
	if index < 0 {
		return false
	}
	return node.registry.SetActive(index)
}

// Typeahead returns the current typeahead buffer.
func (node *Node) Typeahead() string {
	return node.interaction.typeahead
}
