// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package overlay

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"

	"github.com/bureau-foundation/overlay/lib/clock"
	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/placement"
)

// FocusRegion is the part of a node that holds keyboard focus.
type FocusRegion int

const (
	FocusNone FocusRegion = iota
	FocusReference
	FocusSurface
)

func (region FocusRegion) String() string {
	switch region {
	case FocusReference:
		return "reference"
	case FocusSurface:
		return "surface"
	default:
		return "none"
	}
}

// FocusTarget names the focused element: a node's reference or its
// surface. The zero value means nothing in the tree has focus.
type FocusTarget struct {
	Node   NodeID
	Region FocusRegion
}

// TreeOption configures a Tree.
type TreeOption func(*Tree)

// WithClock sets the clock used for every node's timers. The default
// is clock.Real(), which is only correct when the host serializes the
// callbacks onto its UI goroutine.
func WithClock(c clock.Clock) TreeOption {
	return func(tree *Tree) { tree.clock = c }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) TreeOption {
	return func(tree *Tree) { tree.logger = logger }
}

// WithEngine sets the placement engine. The default is
// placement.CellEngine.
func WithEngine(engine placement.Engine) TreeOption {
	return func(tree *Tree) { tree.engine = engine }
}

// WithViewport sets the viewport nodes position against and subscribe
// to for auto-update.
func WithViewport(viewport *placement.Viewport) TreeOption {
	return func(tree *Tree) { tree.viewport = viewport }
}

// Tree is one overlay namespace: identity, parent/child links, the
// event bus, and keyboard focus. A Tree and all of its nodes must be
// used from a single goroutine.
type Tree struct {
	clock    clock.Clock
	logger   *slog.Logger
	engine   placement.Engine
	viewport *placement.Viewport

	nextID uint64
	nodes  map[NodeID]*Node
	order  []NodeID

	subscriptions    []subscription
	nextSubscription uint64

	focus FocusTarget
}

type subscription struct {
	id      uint64
	node    NodeID
	handler func(Event)
}

// NewTree creates an empty tree.
func NewTree(options ...TreeOption) *Tree {
	tree := &Tree{
		nodes: make(map[NodeID]*Node),
	}
	for _, option := range options {
		option(tree)
	}
	if tree.clock == nil {
		tree.clock = clock.Real()
	}
	if tree.logger == nil {
		tree.logger = slog.New(slog.DiscardHandler)
	}
	if tree.engine == nil {
		tree.engine = placement.CellEngine{}
	}
	if tree.viewport == nil {
		tree.viewport = placement.NewViewport(geometry.Rect{})
	}
	return tree
}

// Clock returns the tree's clock.
func (tree *Tree) Clock() clock.Clock { return tree.clock }

// Viewport returns the viewport nodes position against.
func (tree *Tree) Viewport() *placement.Viewport { return tree.viewport }

// Logger returns the tree's logger.
func (tree *Tree) Logger() *slog.Logger { return tree.logger }

// NodeOptions describes a node to mount.
type NodeOptions struct {
	// Parent is the enclosing node for submenus. Empty, or an ID that
	// is not mounted, produces a root node.
	Parent NodeID

	// Reference is the trigger element the surface anchors to.
	Reference Element

	// Floating is the surface element. Only its size is read.
	Floating Element

	Options Options
}

// Mount creates a node and registers it on the bus.
func (tree *Tree) Mount(nodeOptions NodeOptions) *Node {
	tree.nextID++
	id := NodeID(fmt.Sprintf("overlay-%d", tree.nextID))

	parentID := nodeOptions.Parent
	if parentID != "" {
		if _, ok := tree.nodes[parentID]; !ok {
			tree.logger.Debug("overlay parent not mounted, mounting as root",
				"node", id, "parent", parentID)
			parentID = ""
		}
	}

	node := newNode(tree, id, parentID, nodeOptions)
	tree.nodes[id] = node
	tree.order = append(tree.order, id)
	node.unsubscribe = tree.Subscribe(id, node.handleEvent)
	node.start()
	return node
}

func (tree *Tree) remove(id NodeID) {
	delete(tree.nodes, id)
	for index, existing := range tree.order {
		if existing == id {
			tree.order = append(tree.order[:index], tree.order[index+1:]...)
			break
		}
	}
	if tree.focus.Node == id {
		tree.focus = FocusTarget{}
	}
	tree.subscriptions = slices.DeleteFunc(tree.subscriptions, func(existing subscription) bool {
		return existing.node == id
	})
}

// Subscribe registers handler for every published event on behalf of
// node. The subscription ends when node unmounts.
func (tree *Tree) Subscribe(node NodeID, handler func(Event)) (unsubscribe func()) {
	tree.nextSubscription++
	id := tree.nextSubscription
	tree.subscriptions = append(tree.subscriptions, subscription{id: id, node: node, handler: handler})
	return func() {
		for index, existing := range tree.subscriptions {
			if existing.id == id {
				tree.subscriptions = append(tree.subscriptions[:index], tree.subscriptions[index+1:]...)
				return
			}
		}
	}
}

// Publish delivers event synchronously to every subscriber, in
// subscription order. Handlers may publish further events; those are
// delivered before Publish returns.
func (tree *Tree) Publish(event Event) {
	tree.logger.Debug("overlay event", "kind", event.Kind.String(), "node", event.NodeID, "parent", event.ParentID)
	subscriptions := make([]subscription, len(tree.subscriptions))
	copy(subscriptions, tree.subscriptions)
	for _, subscriber := range subscriptions {
		if _, mounted := tree.nodes[subscriber.node]; !mounted {
			continue
		}
		subscriber.handler(event)
	}
}

// Node returns a mounted node, or nil.
func (tree *Tree) Node(id NodeID) *Node {
	return tree.nodes[id]
}

// Nodes returns every mounted node in mount order.
func (tree *Tree) Nodes() []*Node {
	nodes := make([]*Node, 0, len(tree.order))
	for _, id := range tree.order {
		nodes = append(nodes, tree.nodes[id])
	}
	return nodes
}

// Children returns the mounted children of id in mount order.
func (tree *Tree) Children(id NodeID) []*Node {
	var children []*Node
	for _, childID := range tree.order {
		child := tree.nodes[childID]
		if child.parentID == id {
			children = append(children, child)
		}
	}
	return children
}

// IsAncestorOrSelf reports whether ancestor is id or one of its
// ancestors.
func (tree *Tree) IsAncestorOrSelf(ancestor, id NodeID) bool {
	for current := id; current != ""; {
		if current == ancestor {
			return true
		}
		node := tree.nodes[current]
		if node == nil {
			return false
		}
		current = node.parentID
	}
	return false
}

func (tree *Tree) depth(id NodeID) int {
	depth := 0
	for node := tree.nodes[id]; node != nil && node.parentID != ""; node = tree.nodes[node.parentID] {
		depth++
	}
	return depth
}

// openChild returns the open child of node, or nil. Sibling exclusion
// keeps it unique.
func (tree *Tree) openChild(node *Node) *Node {
	for _, child := range tree.Children(node.id) {
		if child.IsOpen() {
			return child
		}
	}
	return nil
}

// deepestOpen follows open children down from node.
func (tree *Tree) deepestOpen(node *Node) *Node {
	for child := tree.openChild(node); child != nil; child = tree.openChild(node) {
		node = child
	}
	return node
}

// OpenPath returns the chain from an open root to its deepest open
// descendant. The focused root wins when several roots are open.
func (tree *Tree) OpenPath() []*Node {
	root := tree.focusedRoot()
	if root == nil || !root.IsOpen() {
		root = nil
		for _, id := range tree.order {
			node := tree.nodes[id]
			if node.parentID == "" && node.IsOpen() {
				root = node
				break
			}
		}
	}
	if root == nil {
		return nil
	}
	path := []*Node{root}
	for node := tree.openChild(root); node != nil; node = tree.openChild(node) {
		path = append(path, node)
	}
	return path
}

func (tree *Tree) focusedRoot() *Node {
	node := tree.nodes[tree.focus.Node]
	for node != nil && node.parentID != "" {
		node = tree.nodes[node.parentID]
	}
	return node
}

// Focus moves keyboard focus.
func (tree *Tree) Focus(target FocusTarget) {
	if target.Node != "" {
		if _, ok := tree.nodes[target.Node]; !ok {
			return
		}
	}
	if tree.focus == target {
		return
	}
	tree.logger.Debug("overlay focus", "node", target.Node, "region", target.Region.String())
	tree.focus = target
}

// Focused returns the current focus target.
func (tree *Tree) Focused() FocusTarget {
	return tree.focus
}

// keyTarget is the node that receives keyboard input: the deepest open
// node below the focused node, or the focused node itself.
func (tree *Tree) keyTarget() *Node {
	node := tree.nodes[tree.focus.Node]
	if node == nil {
		path := tree.OpenPath()
		if len(path) == 0 {
			return nil
		}
		return path[len(path)-1]
	}
	if !node.IsOpen() {
		return node
	}
	return tree.deepestOpen(node)
}

// HandleKey routes a key press. Returns true when a node consumed it.
func (tree *Tree) HandleKey(event KeyEvent) bool {
	target := tree.keyTarget()
	if target == nil {
		return false
	}
	return target.handleKey(event)
}

// HandlePointer offers a pointer event to every node, deepest first.
// Whether the pointer is inside each node's subtree is decided before
// any node reacts, so a close triggered by one node does not turn the
// same press into an outside press for its ancestors. Returns true
// when a node consumed the event.
func (tree *Tree) HandlePointer(event PointerEvent) bool {
	nodes := tree.Nodes()
	sort.SliceStable(nodes, func(i, j int) bool {
		return tree.depth(nodes[i].id) > tree.depth(nodes[j].id)
	})
	hits := make([]pointerHit, len(nodes))
	for index, node := range nodes {
		hits[index] = node.hitTest(event.Position)
	}
	handled := false
	for index, node := range nodes {
		if !node.mounted {
			continue
		}
		if node.handlePointer(event, hits[index], handled) {
			handled = true
		}
	}
	return handled
}

// HandleScroll reports that the content under the viewport scrolled:
// open nodes with CloseOnScrollOutside close, the rest reposition.
func (tree *Tree) HandleScroll() {
	for _, node := range tree.Nodes() {
		if node.mounted && node.IsOpen() && node.options.CloseOnScrollOutside {
			node.RequestOpenChange(false, nil, ReasonOutside)
		}
	}
	tree.viewport.Scroll()
}

// Blur reports that the terminal lost focus. Open roots close with
// ReasonFocusOut; their descendants follow through the bus.
func (tree *Tree) Blur() {
	for _, node := range tree.Nodes() {
		if node.mounted && node.parentID == "" && node.IsOpen() {
			node.RequestOpenChange(false, nil, ReasonFocusOut)
		}
	}
}

// ContainsPoint reports whether point is on any visible surface or
// open reference of the tree. Hosts use it to decide whether a pointer
// event belongs to the overlay layer.
func (tree *Tree) ContainsPoint(point geometry.Point) bool {
	for _, node := range tree.Nodes() {
		if rect, ok := node.FloatingRect(); ok && node.content.Visible() && rect.Contains(point) {
			return true
		}
	}
	return false
}
