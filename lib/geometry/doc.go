// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package geometry provides the terminal-cell coordinate types shared
// by the overlay packages: [Point], [Rect], and the travel-corridor
// predicate [InsideTravelPath] that keeps a submenu open while the
// pointer moves diagonally from its trigger toward the submenu.
//
// All coordinates are integer cell positions with the origin at the
// top-left of the screen. A Rect covers the half-open ranges
// [X, X+Width) and [Y, Y+Height).
//
// This package depends on no other packages in this module.
package geometry
