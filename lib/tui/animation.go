// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"time"

	"github.com/bureau-foundation/overlay/lib/overlay"
)

// FadeDuration is how long a closing surface stays on screen when its
// node has Transition enabled. Opacity decays linearly from 1.0 to 0.0
// over this duration, then the node's transition ends.
const FadeDuration = 150 * time.Millisecond

// FadeTickInterval is the re-render interval while any surface is
// fading.
const FadeTickInterval = 30 * time.Millisecond

// FadeTracker maps closing nodes to the time their fade started.
type FadeTracker struct {
	started map[overlay.NodeID]time.Time
}

// NewFadeTracker creates an empty fade tracker.
func NewFadeTracker() *FadeTracker {
	return &FadeTracker{started: make(map[overlay.NodeID]time.Time)}
}

// Advance starts fades for nodes that entered the closing state,
// forgets nodes that left it, and ends the transition of every node
// whose fade has run its course. Returns true while any fade is still
// running, meaning the tick should keep going.
func (tracker *FadeTracker) Advance(nodes []*overlay.Node, now time.Time) bool {
	for _, node := range nodes {
		id := node.ID()
		if node.Content().State() != overlay.ContentClosing {
			delete(tracker.started, id)
			continue
		}
		start, tracked := tracker.started[id]
		if !tracked {
			tracker.started[id] = now
			continue
		}
		if now.Sub(start) >= FadeDuration {
			delete(tracker.started, id)
			node.TransitionEnd()
		}
	}
	return len(tracker.started) > 0
}

// Opacity returns 1.0 for nodes that are not fading and the decayed
// opacity for nodes that are.
func (tracker *FadeTracker) Opacity(id overlay.NodeID, now time.Time) float64 {
	start, tracked := tracker.started[id]
	if !tracked {
		return 1.0
	}
	elapsed := now.Sub(start)
	if elapsed >= FadeDuration {
		return 0.0
	}
	return 1.0 - float64(elapsed)/float64(FadeDuration)
}

// Fading reports whether any fade is running.
func (tracker *FadeTracker) Fading() bool {
	return len(tracker.started) > 0
}
