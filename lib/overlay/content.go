// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package overlay

// ContentState is the lifecycle of a node's surface.
type ContentState int

const (
	// ContentUnmounted: not visible. With RenderOnMount the surface is
	// still mounted (measurable) but hidden.
	ContentUnmounted ContentState = iota

	// ContentMounting is the instant between mounting and becoming
	// visible. Observers never see it outside the hooks.
	ContentMounting

	// ContentMountedOpen: visible and interactive.
	ContentMountedOpen

	// ContentClosing: still drawn while the close transition plays.
	ContentClosing
)

func (state ContentState) String() string {
	switch state {
	case ContentUnmounted:
		return "unmounted"
	case ContentMounting:
		return "mounting"
	case ContentMountedOpen:
		return "mounted-open"
	case ContentClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// contentHooks are the node-side effects of the lifecycle.
type contentHooks struct {
	// mount runs when the surface becomes mounted (attach auto-update).
	mount func()
	// visible runs on entering mounted-open (position, focus).
	visible func()
	// hidden runs when the close completes (return focus).
	hidden func()
	// unmount runs when the surface leaves the mounted set (detach
	// auto-update).
	unmount func()
}

// Content is the mount/visibility state machine of a node's surface:
//
//	unmounted -> mounting -> mounted-open -> closing -> unmounted
//
// closing -> mounted-open happens when the node reopens before the
// close transition finished. Without Transition, closing completes
// immediately.
type Content struct {
	state      ContentState
	eager      bool
	transition bool
	mounted    bool
	hooks      contentHooks
}

func newContent(eager, transition bool, hooks contentHooks) *Content {
	return &Content{eager: eager, transition: transition, hooks: hooks}
}

// State returns the lifecycle state.
func (content *Content) State() ContentState {
	return content.state
}

// Mounted reports whether the surface exists (visible or eagerly
// mounted and hidden).
func (content *Content) Mounted() bool {
	return content.mounted
}

// Visible reports whether the surface should be drawn.
func (content *Content) Visible() bool {
	return content.state == ContentMountedOpen || content.state == ContentClosing
}

// start performs the eager mount for RenderOnMount.
func (content *Content) start() {
	if content.eager {
		content.mount()
	}
}

func (content *Content) mount() {
	if content.mounted {
		return
	}
	content.mounted = true
	if content.hooks.mount != nil {
		content.hooks.mount()
	}
}

func (content *Content) open() {
	switch content.state {
	case ContentMountedOpen:
		return
	case ContentUnmounted:
		content.state = ContentMounting
		content.mount()
	}
	content.state = ContentMountedOpen
	if content.hooks.visible != nil {
		content.hooks.visible()
	}
}

func (content *Content) close() {
	if content.state != ContentMountedOpen {
		return
	}
	content.state = ContentClosing
	if !content.transition {
		content.transitionEnd()
	}
}

// transitionEnd completes a close. It fires once per close; repeated
// calls and calls in any other state do nothing.
func (content *Content) transitionEnd() bool {
	if content.state != ContentClosing {
		return false
	}
	content.state = ContentUnmounted
	if content.hooks.hidden != nil {
		content.hooks.hidden()
	}
	if !content.eager {
		content.unmountNow()
	}
	return true
}

// destroy tears the surface down regardless of state.
func (content *Content) destroy() {
	content.state = ContentUnmounted
	content.unmountNow()
}

func (content *Content) unmountNow() {
	if !content.mounted {
		return
	}
	content.mounted = false
	if content.hooks.unmount != nil {
		content.hooks.unmount()
	}
}
