// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package overlay

import (
	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/placement"
)

// Navigator moves the active item. The node's Registry is the default;
// virtualized lists install their own so navigation can reach items
// that are not currently rendered.
type Navigator interface {
	First() bool
	Last() bool
	Next() bool
	Prev() bool
}

// Seeker is implemented by navigators that resolve typeahead
// themselves. The argument is the accumulated, lower-cased buffer.
type Seeker interface {
	Seek(prefix string) bool
}

// Node is one dropdown instance: a reference element, a floating
// surface, and the open state that ties them together.
type Node struct {
	tree     *Tree
	id       NodeID
	parentID NodeID
	options  Options

	reference Element
	floating  Element

	open           bool
	controlled     bool
	controlledOpen bool
	// pending is the change being reported to OnOpenChange in
	// controlled mode, so SetControlledOpen can recover its reason.
	pending *OpenChange

	registry  *Registry
	navigator Navigator
	content   *Content

	position         placement.Result
	positioned       bool
	cancelAutoUpdate func()

	unsubscribe func()
	mounted     bool

	interaction interactionState
}

func newNode(tree *Tree, id, parentID NodeID, nodeOptions NodeOptions) *Node {
	node := &Node{
		tree:      tree,
		id:        id,
		parentID:  parentID,
		options:   nodeOptions.Options,
		reference: nodeOptions.Reference,
		floating:  nodeOptions.Floating,
		registry:  NewRegistry(),
		mounted:   true,
	}
	node.navigator = node.registry
	if node.options.Open != nil {
		node.controlled = true
		node.controlledOpen = *node.options.Open
	}
	node.content = newContent(node.options.RenderOnMount, node.options.Transition, contentHooks{
		mount:   node.attachAutoUpdate,
		visible: node.surfaceVisible,
		hidden:  node.surfaceHidden,
		unmount: node.detachAutoUpdate,
	})
	return node
}

// start runs the effects that need the node registered in the tree.
func (node *Node) start() {
	node.content.start()
	if node.IsOpen() {
		node.transition(OpenChange{Node: node.id, Open: true})
	}
}

// ID returns the node's identity.
func (node *Node) ID() NodeID { return node.id }

// ParentID returns the parent's identity, empty for roots.
func (node *Node) ParentID() NodeID { return node.parentID }

// IsNested reports whether the node is a submenu.
func (node *Node) IsNested() bool { return node.parentID != "" }

// Tree returns the tree the node is mounted in.
func (node *Node) Tree() *Tree { return node.tree }

// Mounted reports whether the node is still part of its tree.
func (node *Node) Mounted() bool { return node.mounted }

// Options returns the node's options.
func (node *Node) Options() Options { return node.options }

// UpdateOptions changes options in place and repositions. The Open
// field is ignored; use SetControlledOpen.
func (node *Node) UpdateOptions(update func(*Options)) {
	open := node.options.Open
	update(&node.options)
	node.options.Open = open
	node.content.transition = node.options.Transition
	node.Reposition()
}

// Registry returns the node's item registry.
func (node *Node) Registry() *Registry { return node.registry }

// Content returns the node's surface lifecycle.
func (node *Node) Content() *Content { return node.content }

// SetNavigator replaces the navigator. Nil restores the registry.
func (node *Node) SetNavigator(navigator Navigator) {
	if navigator == nil {
		navigator = node.registry
	}
	node.navigator = navigator
}

// SetReference replaces the trigger element.
func (node *Node) SetReference(element Element) {
	node.reference = element
	node.Reposition()
}

// SetFloating replaces the surface element.
func (node *Node) SetFloating(element Element) {
	node.floating = element
	node.Reposition()
}

// SetDisableAllItems forces every item into the disabled state.
func (node *Node) SetDisableAllItems(disabled bool) {
	node.registry.disableAll = disabled
}

// AllItemsDisabled reports the SetDisableAllItems state.
func (node *Node) AllItemsDisabled() bool {
	return node.registry.disableAll
}

// ActiveIndex returns the registry slot of the keyboard-highlighted
// item.
func (node *Node) ActiveIndex() (int, bool) {
	return node.registry.ActiveIndex()
}

// IsOpen returns the open state, the controlled value when the node is
// controlled.
func (node *Node) IsOpen() bool {
	if node.controlled {
		return node.controlledOpen
	}
	return node.open
}

// Controlled reports whether the consumer owns the open state.
func (node *Node) Controlled() bool {
	return node.controlled
}

// RequestOpenChange is the only way the open state changes. It reports
// the change to OnOpenChange and, for uncontrolled nodes, applies it.
// Requests that would not change anything, requests to open a disabled
// node or a nested node whose parent is closed, and requests on an
// unmounted node are dropped.
func (node *Node) RequestOpenChange(next bool, event any, reason Reason) {
	if !node.mounted {
		return
	}
	if next && node.options.Disabled {
		node.tree.logger.Debug("overlay open refused, node disabled", "node", node.id, "reason", string(reason))
		return
	}
	if next == node.IsOpen() {
		return
	}
	if next && node.IsNested() {
		if parent := node.tree.Node(node.parentID); parent == nil || !parent.IsOpen() {
			node.tree.logger.Debug("overlay open refused, parent closed", "node", node.id, "parent", node.parentID, "reason", string(reason))
			return
		}
	}
	change := OpenChange{Node: node.id, Open: next, Reason: reason, Event: event}
	node.tree.logger.Debug("overlay open change",
		"node", node.id,
		"parent", node.parentID,
		"open", next,
		"reason", string(reason),
		"controlled", node.controlled,
	)

	if node.controlled {
		node.pending = &change
		if node.options.OnOpenChange != nil {
			node.options.OnOpenChange(change)
		}
		node.pending = nil
		return
	}

	if node.options.OnOpenChange != nil {
		node.options.OnOpenChange(change)
		if !node.mounted || node.open == next {
			return
		}
	}
	node.open = next
	node.transition(change)
}

// SetControlledOpen feeds a new open value from the consumer and runs
// the transition effects. Calling it on an uncontrolled node makes it
// controlled from then on.
func (node *Node) SetControlledOpen(open bool) {
	if !node.mounted {
		return
	}
	if !node.controlled {
		node.controlled = true
		node.controlledOpen = node.open
	}
	if node.controlledOpen == open {
		return
	}
	node.controlledOpen = open
	change := OpenChange{Node: node.id, Open: open}
	if node.pending != nil && node.pending.Open == open {
		change = *node.pending
	}
	node.transition(change)
}

func (node *Node) transition(change OpenChange) {
	node.cancelHover()
	if change.Open {
		node.interaction.hoverEngaged = change.Reason == ReasonHover || change.Reason == ReasonMouseDown
		node.tree.Publish(Event{Kind: EventSubmenuOpened, NodeID: node.id, ParentID: node.parentID})
		// A subscriber may have closed or unmounted this node.
		if !node.mounted || !node.IsOpen() {
			return
		}
		node.content.open()
		if node.options.focusFirstOnOpen(change.Reason) {
			node.navigator.First()
		}
		return
	}

	node.resetInteraction()
	node.registry.ClearActive()
	if node.options.ResetActiveToFirst {
		node.navigator.First()
	}
	node.content.close()
	node.tree.Publish(Event{Kind: EventNodeClosed, NodeID: node.id, ParentID: node.parentID})
}

func (node *Node) handleEvent(event Event) {
	if !node.mounted || event.NodeID == node.id && event.Kind != EventItemActivated {
		return
	}
	switch event.Kind {
	case EventSubmenuOpened:
		if event.ParentID != "" && event.ParentID == node.parentID && node.IsOpen() {
			node.RequestOpenChange(false, event, ReasonNavigation)
		}
	case EventItemActivated:
		if node.IsOpen() && node.options.AutoClose.closesInside() && node.tree.IsAncestorOrSelf(node.id, event.NodeID) {
			node.RequestOpenChange(false, event, ReasonSelect)
		}
	case EventNodeClosed:
		if event.NodeID != node.parentID {
			return
		}
		node.cancelHover()
		if node.IsOpen() {
			node.RequestOpenChange(false, event, ReasonRootClose)
		}
	}
}

// ActivateItem chooses the item in slot index. Items with a submenu
// open it; other items run OnSelect and publish item-activated.
// Disabled items, holes, and DisableAllItems make it a no-op.
func (node *Node) ActivateItem(index int, event any) bool {
	if !node.mounted || !node.registry.Enabled(index) {
		return false
	}
	item, _ := node.registry.Item(index)
	node.registry.SetActive(index)

	if item.Submenu != "" {
		child := node.tree.Node(item.Submenu)
		if child == nil {
			node.tree.logger.Debug("overlay submenu not mounted", "node", node.id, "submenu", item.Submenu)
			return false
		}
		reason := ReasonMouseDown
		if _, ok := event.(KeyEvent); ok {
			reason = ReasonKeyDown
		}
		child.RequestOpenChange(true, event, reason)
		return true
	}

	if item.OnSelect != nil {
		item.OnSelect()
	}
	node.tree.Publish(Event{Kind: EventItemActivated, NodeID: node.id, ParentID: node.parentID, Value: item.Value})
	return true
}

// TransitionEnd completes a close animation. Only the first call per
// close has an effect.
func (node *Node) TransitionEnd() {
	node.content.transitionEnd()
}

// Position returns the last computed position.
func (node *Node) Position() (placement.Result, bool) {
	return node.position, node.positioned
}

// ReferenceRect returns the trigger's bounds.
func (node *Node) ReferenceRect() (geometry.Rect, bool) {
	return elementBounds(node.reference)
}

// FloatingRect returns the surface rectangle at its computed position.
func (node *Node) FloatingRect() (geometry.Rect, bool) {
	if !node.positioned {
		return geometry.Rect{}, false
	}
	floating, ok := elementBounds(node.floating)
	if !ok {
		return geometry.Rect{}, false
	}
	return node.position.Rect(floating.Width, floating.Height), true
}

// RequestedPlacement is the placement asked of the engine before flip.
func (node *Node) RequestedPlacement() placement.Placement {
	if node.options.Placement != "" {
		return node.options.Placement
	}
	return placement.Resolve(node.options.AlignEnd, node.options.Drop, node.options.RTL, node.IsNested())
}

// Reposition recomputes the surface position. Missing geometry skips
// the computation; the next auto-update retries.
func (node *Node) Reposition() bool {
	if !node.mounted || !node.content.Mounted() {
		return false
	}
	reference, ok := elementBounds(node.reference)
	if !ok {
		node.tree.logger.Debug("overlay reference not laid out, skipping position", "node", node.id)
		node.positioned = false
		return false
	}
	floating, ok := elementBounds(node.floating)
	if !ok {
		node.tree.logger.Debug("overlay surface not laid out, skipping position", "node", node.id)
		node.positioned = false
		return false
	}
	node.position = node.tree.engine.Compute(placement.Request{
		Reference:  reference,
		Floating:   floating,
		Viewport:   node.tree.viewport.Bounds(),
		Placement:  node.RequestedPlacement(),
		Middleware: node.options.Middleware,
	})
	node.positioned = true
	return true
}

func (node *Node) attachAutoUpdate() {
	if node.cancelAutoUpdate != nil {
		return
	}
	node.cancelAutoUpdate = node.tree.viewport.AutoUpdate(func() { node.Reposition() })
}

func (node *Node) detachAutoUpdate() {
	if node.cancelAutoUpdate != nil {
		node.cancelAutoUpdate()
		node.cancelAutoUpdate = nil
	}
	node.positioned = false
}

// surfaceVisible positions the surface and, for roots, moves focus
// into it.
func (node *Node) surfaceVisible() {
	node.Reposition()
	if node.IsNested() {
		return
	}
	node.interaction.focusGeneration++
	generation := node.interaction.focusGeneration
	move := func() {
		if !node.mounted || node.interaction.focusGeneration != generation {
			return
		}
		if node.content.State() != ContentMountedOpen {
			return
		}
		node.tree.Focus(FocusTarget{Node: node.id, Region: FocusSurface})
	}
	if node.options.FocusDelay <= 0 {
		move()
		return
	}
	node.interaction.focusTimer = node.tree.clock.AfterFunc(node.options.FocusDelay, move)
}

// surfaceHidden returns focus to the reference of a root whose surface
// held it.
func (node *Node) surfaceHidden() {
	node.interaction.focusGeneration++
	node.interaction.focusTimer.Stop()
	node.interaction.focusTimer = nil
	if node.IsNested() {
		return
	}
	focused := node.tree.focus.Node
	if focused == "" || node.tree.IsAncestorOrSelf(node.id, focused) {
		node.tree.Focus(FocusTarget{Node: node.id, Region: FocusReference})
	}
}

// Unmount removes the node and its descendants from the tree, the bus,
// and the viewport. Pending timers become stale. Repeated calls do
// nothing.
func (node *Node) Unmount() {
	if !node.mounted {
		return
	}
	for _, child := range node.tree.Children(node.id) {
		child.Unmount()
	}
	node.mounted = false
	node.cancelHover()
	node.resetInteraction()
	node.interaction.focusGeneration++
	node.interaction.focusTimer.Stop()
	node.content.destroy()
	if node.unsubscribe != nil {
		node.unsubscribe()
		node.unsubscribe = nil
	}
	node.tree.remove(node.id)
	node.tree.logger.Debug("overlay node unmounted", "node", node.id)
}
