// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/overlay/lib/clock"
)

// TimerMsg carries a fired LoopClock timer into the bubbletea update
// loop. Pass it to [LoopClock.Fire].
type TimerMsg struct {
	id uint64
}

// LoopClock is a clock.Clock whose callbacks run on the bubbletea
// update goroutine. Timers count down on the wall clock; when one
// fires its id is queued, [LoopClock.Listen] turns the queue into a
// TimerMsg, and the model calls [LoopClock.Fire] to run the callback.
// This keeps the overlay tree single-threaded.
type LoopClock struct {
	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]*loopTimer
	fired   chan uint64
}

type loopTimer struct {
	wall     *time.Timer
	callback func()
}

// NewLoopClock creates a loop clock with an empty queue.
func NewLoopClock() *LoopClock {
	return &LoopClock{
		pending: make(map[uint64]*loopTimer),
		fired:   make(chan uint64, 64),
	}
}

// Now implements clock.Clock.
func (loop *LoopClock) Now() time.Time { return time.Now() }

// AfterFunc implements clock.Clock. f runs inside Fire, never on the
// timer goroutine.
func (loop *LoopClock) AfterFunc(d time.Duration, f func()) *clock.Timer {
	loop.mu.Lock()
	loop.nextID++
	id := loop.nextID
	entry := &loopTimer{callback: f}
	loop.pending[id] = entry
	entry.wall = time.AfterFunc(d, func() { loop.fired <- id })
	loop.mu.Unlock()

	return clock.NewTimer(func() bool {
		loop.mu.Lock()
		defer loop.mu.Unlock()
		entry, ok := loop.pending[id]
		if !ok {
			return false
		}
		delete(loop.pending, id)
		entry.wall.Stop()
		return true
	})
}

// Listen returns a command that waits for the next fired timer.
// Re-issue it after every TimerMsg.
func (loop *LoopClock) Listen() tea.Cmd {
	return func() tea.Msg {
		return TimerMsg{id: <-loop.fired}
	}
}

// Fire runs the callback of a fired timer unless it was stopped in
// the meantime. Reports whether a callback ran.
func (loop *LoopClock) Fire(message TimerMsg) bool {
	loop.mu.Lock()
	entry, ok := loop.pending[message.id]
	delete(loop.pending, message.id)
	loop.mu.Unlock()
	if !ok {
		return false
	}
	entry.callback()
	return true
}

// Pending returns the number of timers neither fired nor stopped.
func (loop *LoopClock) Pending() int {
	loop.mu.Lock()
	defer loop.mu.Unlock()
	return len(loop.pending)
}
