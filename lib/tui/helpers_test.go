// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/overlay/lib/clock"
	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/overlay"
	"github.com/bureau-foundation/overlay/lib/placement"
)

// newTestTree returns a tree on a fake clock in a 40x12 viewport.
func newTestTree(t *testing.T) (*overlay.Tree, *clock.FakeClock) {
	t.Helper()
	fake := clock.Fake(time.Unix(0, 0))
	tree := overlay.NewTree(
		overlay.WithClock(fake),
		overlay.WithViewport(placement.NewViewport(geometry.Rect{Width: 40, Height: 12})),
	)
	return tree, fake
}

// triggerBox is a six-cell trigger in the top-left corner.
func triggerBox() *overlay.Box {
	return overlay.NewBox(geometry.Rect{Width: 6, Height: 1})
}

func stripLines(lines []string) []string {
	stripped := make([]string, len(lines))
	for index, line := range lines {
		stripped[index] = ansi.Strip(line)
	}
	return stripped
}

func press(tree *overlay.Tree, x, y int) bool {
	return tree.HandlePointer(overlay.PointerEvent{Action: overlay.PointerPress, Position: geometry.Point{X: x, Y: y}})
}

func mustFloatingRect(t *testing.T, node *overlay.Node) geometry.Rect {
	t.Helper()
	rect, ok := node.FloatingRect()
	if !ok {
		t.Fatalf("%s has no floating rect (state %s)", node.ID(), node.Content().State())
	}
	return rect
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
