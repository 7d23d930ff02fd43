// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package overlay

import (
	"reflect"
	"testing"
)

func TestMountAssignsSequentialIDs(t *testing.T) {
	tree := NewTree()
	first := tree.Mount(NodeOptions{})
	second := tree.Mount(NodeOptions{Parent: first.ID()})

	if first.ID() != "overlay-1" || second.ID() != "overlay-2" {
		t.Errorf("IDs = %s, %s; want overlay-1, overlay-2", first.ID(), second.ID())
	}
	if first.IsNested() {
		t.Error("root reports nested")
	}
	if !second.IsNested() || second.ParentID() != first.ID() {
		t.Errorf("child parent = %q nested=%v", second.ParentID(), second.IsNested())
	}

	second.Unmount()
	third := tree.Mount(NodeOptions{})
	if third.ID() != "overlay-3" {
		t.Errorf("ID after unmount = %s, want overlay-3 (never reused)", third.ID())
	}
}

func TestMountUnknownParentDegradesToRoot(t *testing.T) {
	tree := NewTree()
	node := tree.Mount(NodeOptions{Parent: "overlay-99"})
	if node.IsNested() || node.ParentID() != "" {
		t.Errorf("node with unknown parent: nested=%v parent=%q", node.IsNested(), node.ParentID())
	}
}

func TestTreeQueries(t *testing.T) {
	tree := NewTree()
	root := tree.Mount(NodeOptions{})
	fileMenu := tree.Mount(NodeOptions{Parent: root.ID()})
	editMenu := tree.Mount(NodeOptions{Parent: root.ID()})
	recent := tree.Mount(NodeOptions{Parent: fileMenu.ID()})

	children := tree.Children(root.ID())
	if len(children) != 2 || children[0] != fileMenu || children[1] != editMenu {
		t.Errorf("Children(root) = %v", children)
	}

	tests := []struct {
		ancestor, id NodeID
		want         bool
	}{
		{root.ID(), recent.ID(), true},
		{fileMenu.ID(), recent.ID(), true},
		{recent.ID(), recent.ID(), true},
		{editMenu.ID(), recent.ID(), false},
		{recent.ID(), root.ID(), false},
	}
	for _, test := range tests {
		if got := tree.IsAncestorOrSelf(test.ancestor, test.id); got != test.want {
			t.Errorf("IsAncestorOrSelf(%s, %s) = %v, want %v", test.ancestor, test.id, got, test.want)
		}
	}
	if tree.depth(recent.ID()) != 2 {
		t.Errorf("depth(recent) = %d, want 2", tree.depth(recent.ID()))
	}
}

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	tree := NewTree()
	first := tree.Mount(NodeOptions{})
	second := tree.Mount(NodeOptions{})

	var order []string
	tree.Subscribe(second.ID(), func(Event) { order = append(order, "second") })
	tree.Subscribe(first.ID(), func(Event) { order = append(order, "first") })

	tree.Publish(Event{Kind: EventItemActivated, NodeID: "overlay-42"})
	if want := []string{"second", "first"}; !reflect.DeepEqual(order, want) {
		t.Errorf("delivery order = %v, want %v", order, want)
	}
}

func TestPublishSkipsUnmountedSubscribers(t *testing.T) {
	tree := NewTree()
	first := tree.Mount(NodeOptions{})
	second := tree.Mount(NodeOptions{})

	delivered := 0
	tree.Subscribe(first.ID(), func(Event) { second.Unmount() })
	tree.Subscribe(second.ID(), func(Event) { delivered++ })

	// The snapshot still contains second's handler, but second is gone
	// by the time it would run.
	tree.Publish(Event{Kind: EventItemActivated})
	if delivered != 0 {
		t.Errorf("handler of an unmounted node ran %d times", delivered)
	}
}

func TestUnsubscribe(t *testing.T) {
	tree := NewTree()
	node := tree.Mount(NodeOptions{})
	calls := 0
	unsubscribe := tree.Subscribe(node.ID(), func(Event) { calls++ })
	unsubscribe()
	unsubscribe()
	tree.Publish(Event{Kind: EventNodeClosed})
	if calls != 0 {
		t.Errorf("unsubscribed handler ran %d times", calls)
	}
}

func TestUnmountRemovesSubtree(t *testing.T) {
	f := newFixture(t)
	root := f.menu("", rootReference(), []string{"File", "Edit"}, DefaultOptions())
	fileMenu := f.submenu(root, 0, []string{"New", "Open"}, DefaultOptions())
	subscriptions := len(f.tree.subscriptions)

	root.RequestOpenChange(true, nil, ReasonClick)
	fileMenu.RequestOpenChange(true, nil, ReasonKeyDown)
	if got := f.tree.Viewport().Observers(); got != 2 {
		t.Fatalf("observers while open = %d, want 2", got)
	}

	root.Unmount()
	root.Unmount()

	if fileMenu.Mounted() || f.tree.Node(fileMenu.ID()) != nil {
		t.Error("child survived its parent's unmount")
	}
	if len(f.tree.Nodes()) != 0 {
		t.Errorf("tree still holds %d nodes", len(f.tree.Nodes()))
	}
	if got := len(f.tree.subscriptions); got != subscriptions-2 {
		t.Errorf("subscriptions = %d, want %d", got, subscriptions-2)
	}
	if got := f.tree.Viewport().Observers(); got != 0 {
		t.Errorf("observers after unmount = %d, want 0", got)
	}

	// Requests on an unmounted node are ignored.
	before := len(f.changes)
	root.RequestOpenChange(true, nil, ReasonClick)
	if len(f.changes) != before {
		t.Error("unmounted node reported an open change")
	}
}

func TestOpenPathAndKeyRouting(t *testing.T) {
	f := newFixture(t)
	root := f.menu("", rootReference(), []string{"File", "Edit"}, DefaultOptions())
	fileMenu := f.submenu(root, 0, []string{"New", "Recent"}, DefaultOptions())
	recent := f.submenu(fileMenu, 1, []string{"a.txt", "b.txt"}, DefaultOptions())

	if path := f.tree.OpenPath(); len(path) != 0 {
		t.Fatalf("OpenPath with nothing open = %v", path)
	}

	root.RequestOpenChange(true, nil, ReasonClick)
	fileMenu.RequestOpenChange(true, nil, ReasonKeyDown)
	recent.RequestOpenChange(true, nil, ReasonKeyDown)

	path := f.tree.OpenPath()
	if len(path) != 3 || path[0] != root || path[1] != fileMenu || path[2] != recent {
		t.Fatalf("OpenPath = %v", path)
	}
	if target := f.tree.keyTarget(); target != recent {
		t.Errorf("key target = %v, want the deepest open node", target.ID())
	}
	if focus := f.tree.Focused(); focus.Node != root.ID() || focus.Region != FocusSurface {
		t.Errorf("focus = %+v, want root surface", focus)
	}
}

func TestBlurClosesOpenRoots(t *testing.T) {
	f := newFixture(t)
	root := f.menu("", rootReference(), []string{"File"}, DefaultOptions())
	fileMenu := f.submenu(root, 0, []string{"New"}, DefaultOptions())
	root.RequestOpenChange(true, nil, ReasonClick)
	fileMenu.RequestOpenChange(true, nil, ReasonKeyDown)

	f.tree.Blur()
	if root.IsOpen() || fileMenu.IsOpen() {
		t.Fatalf("open after blur: root=%v child=%v", root.IsOpen(), fileMenu.IsOpen())
	}
	f.expectReason(root, false, ReasonFocusOut)
	f.expectReason(fileMenu, false, ReasonRootClose)
}

func TestUnmountDropsSubscriptions(t *testing.T) {
	tree := NewTree()
	root := tree.Mount(NodeOptions{})
	child := tree.Mount(NodeOptions{Parent: root.ID()})
	other := tree.Mount(NodeOptions{})
	tree.Subscribe(child.ID(), func(Event) {})
	tree.Subscribe(child.ID(), func(Event) {})
	tree.Subscribe(other.ID(), func(Event) {})
	before := len(tree.subscriptions)

	root.Unmount()
	// root and child each had their own handler plus child's two extra.
	if got, want := len(tree.subscriptions), before-4; got != want {
		t.Errorf("subscriptions after unmount = %d, want %d", got, want)
	}
	for _, existing := range tree.subscriptions {
		if existing.node == root.ID() || existing.node == child.ID() {
			t.Errorf("subscription %d for unmounted node %s kept", existing.id, existing.node)
		}
	}
}
