// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction for the
// overlay state machine.
//
// Every overlay delay (hover intent, safe-polygon rest timeout, focus
// shift after open, typeahead buffer reset) is scheduled through a
// [Clock]. In production the terminal host supplies a clock whose
// callbacks are delivered on its event loop. In tests, [Fake] provides
// a deterministic clock that fires callbacks only when Advance is
// called:
//
//	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	tree := overlay.NewTree(overlay.WithClock(fake))
//	// ... hover a submenu trigger ...
//	fake.Advance(50 * time.Millisecond) // hover intent fires
//
// Callbacks run synchronously inside Advance, on the caller's
// goroutine, which matches the single-threaded model of the overlay
// code.
//
// This package depends on no other packages in this module.
package clock
