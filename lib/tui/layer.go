// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/overlay"
)

// Layer is a floating surface the [Host] draws above its base view
// while the layer's node is visible.
type Layer interface {
	Node() *overlay.Node

	// Render draws the surface into rect, the node's computed floating
	// rectangle. It returns one line per row of rect, each rect.Width
	// cells wide.
	Render(theme Theme, rect geometry.Rect) []string
}

// KeyInterceptor is a layer that consumes some keys before they reach
// the overlay tree, such as a combobox editing its search text.
type KeyInterceptor interface {
	InterceptKey(message tea.KeyMsg, keys KeyMap) bool
}

// Scroller is a layer whose content scrolls under the wheel.
type Scroller interface {
	Scroll(delta int)
}
