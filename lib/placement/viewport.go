// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package placement

import "github.com/bureau-foundation/overlay/lib/geometry"

// Viewport tracks the visible screen area and notifies auto-update
// observers when it resizes or scrolls. It is not safe for concurrent
// use; like the rest of the overlay code it lives on the UI goroutine.
type Viewport struct {
	bounds    geometry.Rect
	nextID    uint64
	observers []viewportObserver
}

type viewportObserver struct {
	id     uint64
	update func()
}

// NewViewport creates a viewport with the given bounds.
func NewViewport(bounds geometry.Rect) *Viewport {
	return &Viewport{bounds: bounds}
}

// Bounds returns the current visible area.
func (viewport *Viewport) Bounds() geometry.Rect {
	return viewport.bounds
}

// Resize sets new bounds and notifies observers if they changed.
func (viewport *Viewport) Resize(bounds geometry.Rect) {
	if bounds == viewport.bounds {
		return
	}
	viewport.bounds = bounds
	viewport.notify()
}

// Scroll notifies observers that content under the viewport moved, so
// references may have changed position.
func (viewport *Viewport) Scroll() {
	viewport.notify()
}

// AutoUpdate registers update to run on every resize or scroll. The
// returned cancel function detaches it and is safe to call repeatedly.
func (viewport *Viewport) AutoUpdate(update func()) (cancel func()) {
	viewport.nextID++
	id := viewport.nextID
	viewport.observers = append(viewport.observers, viewportObserver{id: id, update: update})
	return func() {
		for index, observer := range viewport.observers {
			if observer.id == id {
				viewport.observers = append(viewport.observers[:index], viewport.observers[index+1:]...)
				return
			}
		}
	}
}

// Observers returns the number of attached auto-update observers.
func (viewport *Viewport) Observers() int {
	return len(viewport.observers)
}

func (viewport *Viewport) notify() {
	// Snapshot: an observer may cancel itself (or others) while running.
	observers := make([]viewportObserver, len(viewport.observers))
	copy(observers, viewport.observers)
	for _, observer := range observers {
		observer.update()
	}
}
