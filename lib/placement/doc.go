// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package placement decides where a floating surface sits relative to
// its trigger.
//
// Two layers live here. [Resolve] is the pure mapping from consumer
// configuration (alignment, drop direction, right-to-left, nesting) to
// a requested [Placement]. An [Engine] then turns that request into
// concrete cell coordinates for the current screen, applying the
// offset, flip, shift and auto-size middleware. The overlay packages
// treat the engine as a black box; [CellEngine] is the default
// implementation for terminal screens.
//
// [Viewport] is the auto-update source: overlay nodes subscribe while
// their surface is mounted and are notified on resize and scroll so
// they can recompute their position.
package placement
