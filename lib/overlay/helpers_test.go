// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package overlay

import (
	"strings"
	"testing"
	"time"

	"github.com/bureau-foundation/overlay/lib/clock"
	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/placement"
)

// fixture is a tree on a fake clock in an 80x24 viewport that records
// every open-change of the nodes it mounts.
type fixture struct {
	t       *testing.T
	clock   *clock.FakeClock
	tree    *Tree
	changes []OpenChange
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fake := clock.Fake(time.Unix(1_700_000_000, 0))
	return &fixture{
		t:     t,
		clock: fake,
		tree: NewTree(
			WithClock(fake),
			WithViewport(placement.NewViewport(geometry.Rect{Width: 80, Height: 24})),
		),
	}
}

func (f *fixture) record(options Options) Options {
	previous := options.OnOpenChange
	options.OnOpenChange = func(change OpenChange) {
		f.changes = append(f.changes, change)
		if previous != nil {
			previous(change)
		}
	}
	return options
}

// menu mounts a node whose surface is 12 cells wide with one row per
// label, each row registered as an item.
func (f *fixture) menu(parent NodeID, reference Element, labels []string, options Options) *Node {
	f.t.Helper()
	node := f.tree.Mount(NodeOptions{
		Parent:    parent,
		Reference: reference,
		Floating:  NewBox(geometry.Rect{Width: 12, Height: len(labels)}),
		Options:   f.record(options),
	})
	for row, label := range labels {
		node.Registry().Register(Item{
			Element: Row(node, row),
			Label:   label,
			Value:   strings.ToLower(label),
		})
	}
	return node
}

// submenu mounts a nested menu anchored to row of parent and links the
// parent's item to it.
func (f *fixture) submenu(parent *Node, row int, labels []string, options Options) *Node {
	f.t.Helper()
	child := f.menu(parent.ID(), Row(parent, row), labels, options)
	item, ok := parent.Registry().Item(row)
	if !ok {
		f.t.Fatalf("parent %s has no item %d", parent.ID(), row)
	}
	item.Submenu = child.ID()
	parent.Registry().RegisterAt(row, item)
	return child
}

// lastChange returns the most recent change recorded for node.
func (f *fixture) lastChange(node *Node) (OpenChange, bool) {
	for index := len(f.changes) - 1; index >= 0; index-- {
		if f.changes[index].Node == node.ID() {
			return f.changes[index], true
		}
	}
	return OpenChange{}, false
}

func (f *fixture) expectReason(node *Node, open bool, reason Reason) {
	f.t.Helper()
	change, ok := f.lastChange(node)
	if !ok {
		f.t.Fatalf("no open change recorded for %s", node.ID())
	}
	if change.Open != open || change.Reason != reason {
		f.t.Errorf("%s last change = (open=%v, %s), want (open=%v, %s)",
			node.ID(), change.Open, change.Reason, open, reason)
	}
}

func (f *fixture) press(x, y int) bool {
	return f.tree.HandlePointer(PointerEvent{Action: PointerPress, Position: geometry.Point{X: x, Y: y}})
}

func (f *fixture) move(x, y int) bool {
	return f.tree.HandlePointer(PointerEvent{Action: PointerMove, Position: geometry.Point{X: x, Y: y}})
}

func (f *fixture) key(key Key) bool {
	return f.tree.HandleKey(KeyEvent{Key: key})
}

// rootReference is the trigger used by most tests: six cells at the
// top-left corner, so a bottom-start surface lands at (0,1).
func rootReference() *Box {
	return NewBox(geometry.Rect{X: 0, Y: 0, Width: 6, Height: 1})
}

func activeIndex(node *Node) int {
	index, ok := node.ActiveIndex()
	if !ok {
		return -1
	}
	return index
}
