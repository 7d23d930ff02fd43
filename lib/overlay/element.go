// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package overlay

import "github.com/bureau-foundation/overlay/lib/geometry"

// Element is a weakly held handle to something on screen. Bounds
// reports false when the element is not currently laid out (not yet
// rendered, scrolled away, or gone); callers treat that as "no
// geometry" and skip the work that needed it.
type Element interface {
	Bounds() (geometry.Rect, bool)
}

// Box is a settable Element. Hosts place it after every layout pass.
// For a floating surface only the size matters: the node computes the
// position itself.
type Box struct {
	rect     geometry.Rect
	attached bool
}

// NewBox returns a Box attached at rect.
func NewBox(rect geometry.Rect) *Box {
	return &Box{rect: rect, attached: true}
}

// Place attaches the box at rect.
func (box *Box) Place(rect geometry.Rect) {
	box.rect = rect
	box.attached = true
}

// Resize keeps the position and changes the size.
func (box *Box) Resize(width, height int) {
	box.rect.Width = width
	box.rect.Height = height
	box.attached = true
}

// Detach marks the box as not laid out.
func (box *Box) Detach() {
	box.attached = false
}

// Bounds implements Element.
func (box *Box) Bounds() (geometry.Rect, bool) {
	if box == nil || !box.attached {
		return geometry.Rect{}, false
	}
	return box.rect, true
}

func elementBounds(element Element) (geometry.Rect, bool) {
	if element == nil {
		return geometry.Rect{}, false
	}
	return element.Bounds()
}

// Row returns an Element for line row of node's surface: full surface
// width, one cell high, present only while the surface is visible and
// positioned. Menus use it for their items and for the references of
// their submenus.
func Row(node *Node, row int) Element {
	return rowElement{node: node, row: row}
}

type rowElement struct {
	node *Node
	row  int
}

func (element rowElement) Bounds() (geometry.Rect, bool) {
	if !element.node.content.Visible() {
		return geometry.Rect{}, false
	}
	surface, ok := element.node.FloatingRect()
	if !ok || element.row < 0 || element.row >= surface.Height {
		return geometry.Rect{}, false
	}
	return geometry.Rect{X: surface.X, Y: surface.Y + element.row, Width: surface.Width, Height: 1}, true
}
