// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake returns a FakeClock initialized to the given time. Time stands
// still until Advance is called.
func Fake(initial time.Time) *FakeClock {
	return &FakeClock{current: initial}
}

// FakeClock is a deterministic Clock for tests. AfterFunc callbacks
// fire synchronously during Advance in deadline order; callbacks with
// equal deadlines fire in scheduling order. A callback may schedule
// further timers, and those fire within the same Advance if they fall
// due before its target time.
type FakeClock struct {
	mu       sync.Mutex
	current  time.Time
	sequence uint64
	waiters  []*fakeWaiter
}

type fakeWaiter struct {
	deadline time.Time
	sequence uint64
	callback func()
	stopped  bool
	fired    bool
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// AfterFunc schedules f to run once the clock has advanced by d. If
// d <= 0, f runs before AfterFunc returns.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) *Timer {
	if d <= 0 {
		f()
		return NewTimer(func() bool { return false })
	}

	c.mu.Lock()
	c.sequence++
	waiter := &fakeWaiter{
		deadline: c.current.Add(d),
		sequence: c.sequence,
		callback: f,
	}
	c.waiters = append(c.waiters, waiter)
	c.mu.Unlock()

	return NewTimer(func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		if waiter.stopped || waiter.fired {
			return false
		}
		waiter.stopped = true
		return true
	})
}

// Advance moves the clock forward by d, firing every callback whose
// deadline falls within the new time. The clock's time is set to each
// callback's deadline before that callback runs, so Now() inside a
// callback reports the scheduled time.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.current.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.nextDue(target)
		if next == nil {
			c.current = target
			c.mu.Unlock()
			return
		}
		next.fired = true
		if next.deadline.After(c.current) {
			c.current = next.deadline
		}
		callback := next.callback
		c.mu.Unlock()

		callback()
	}
}

// nextDue removes finished waiters and returns the earliest live waiter
// due at or before target. Caller holds c.mu.
func (c *FakeClock) nextDue(target time.Time) *fakeWaiter {
	live := c.waiters[:0]
	for _, waiter := range c.waiters {
		if !waiter.stopped && !waiter.fired {
			live = append(live, waiter)
		}
	}
	c.waiters = live

	sort.SliceStable(c.waiters, func(i, j int) bool {
		if c.waiters[i].deadline.Equal(c.waiters[j].deadline) {
			return c.waiters[i].sequence < c.waiters[j].sequence
		}
		return c.waiters[i].deadline.Before(c.waiters[j].deadline)
	})
	if len(c.waiters) == 0 || c.waiters[0].deadline.After(target) {
		return nil
	}
	return c.waiters[0]
}

// Pending returns the number of scheduled callbacks that have neither
// fired nor been stopped.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, waiter := range c.waiters {
		if !waiter.stopped && !waiter.fired {
			count++
		}
	}
	return count
}
