// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts the timer operations the overlay state machine
// needs: hover intent, safe-polygon tracking, deferred focus and the
// typeahead reset. Production code injects Real() or a loop-bound
// clock from the host framework; tests inject Fake().
//
// Callbacks scheduled through AfterFunc are expected to run on the
// same goroutine as the rest of the overlay code. Real() does not
// guarantee that on its own; hosts with an event loop should wrap it
// so callbacks are delivered through the loop.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc waits for duration d, then calls f. The returned Timer
	// can cancel the pending call. If d <= 0 the call is due
	// immediately (asynchronously for real clocks, synchronously for
	// the fake).
	AfterFunc(d time.Duration, f func()) *Timer
}

// Timer is a pending AfterFunc call.
type Timer struct {
	stopFunc func() bool
}

// NewTimer wraps a stop function in a Timer. Clock implementations
// outside this package use it to return their own timers.
func NewTimer(stop func() bool) *Timer {
	return &Timer{stopFunc: stop}
}

// Stop prevents the Timer from firing. Returns true if the call stops
// the timer, false if it already fired or was stopped. A nil Timer is
// safe to stop.
func (t *Timer) Stop() bool {
	if t == nil || t.stopFunc == nil {
		return false
	}
	return t.stopFunc()
}
