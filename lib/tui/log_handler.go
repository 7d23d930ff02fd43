// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// LogRecordMsg delivers a slog record to the host for display in the
// status line. Only records at or above the handler's level are
// delivered.
type LogRecordMsg struct {
	// Summary is the one-line "message (key=value, ...)" form.
	Summary string

	// Level is the slog level, for styling.
	Level slog.Level
}

// statusFadeMsg clears the status line once a record has been shown
// for statusFadeDelay. Generation discards fades of replaced records.
type statusFadeMsg struct {
	generation uint64
}

// statusFadeDelay is how long a log record stays in the status line
// before it fades back to the key help.
const statusFadeDelay = 5 * time.Second

// Sender receives messages from outside the update loop. A
// *tea.Program is a Sender.
type Sender interface {
	Send(message tea.Msg)
}

// StatusHandler is a slog.Handler that routes log records into a
// bubbletea program as LogRecordMsg. Records below the configured level
// are dropped, as are records arriving before SetSender.
//
// Handlers derived via WithAttrs and WithGroup share the sender, so a
// single SetSender call reaches all of them.
type StatusHandler struct {
	level  slog.Level
	sender *atomic.Pointer[Sender]
	attrs  []slog.Attr
	groups []string
}

// NewStatusHandler creates a handler for records at or above level.
func NewStatusHandler(level slog.Level) *StatusHandler {
	return &StatusHandler{
		level:  level,
		sender: &atomic.Pointer[Sender]{},
	}
}

// SetSender enables delivery. Safe to call from any goroutine.
func (handler *StatusHandler) SetSender(sender Sender) {
	handler.sender.Store(&sender)
}

// Enabled reports whether the handler is interested in records at the
// given level.
func (handler *StatusHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level
}

// Handle formats the record and sends it.
func (handler *StatusHandler) Handle(_ context.Context, record slog.Record) error {
	sender := handler.sender.Load()
	if sender == nil {
		return nil
	}

	prefix := ""
	if len(handler.groups) > 0 {
		prefix = strings.Join(handler.groups, ".") + "."
	}
	var attrParts []string
	for _, attr := range handler.attrs {
		attrParts = append(attrParts, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
	}
	record.Attrs(func(attr slog.Attr) bool {
		attrParts = append(attrParts, fmt.Sprintf("%s%s=%s", prefix, attr.Key, attr.Value))
		return true
	})

	summary := record.Message
	if len(attrParts) > 0 {
		summary += " (" + strings.Join(attrParts, ", ") + ")"
	}

	(*sender).Send(LogRecordMsg{Summary: summary, Level: record.Level})
	return nil
}

// WithAttrs returns a handler with attrs appended, sharing the sender.
func (handler *StatusHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &StatusHandler{
		level:  handler.level,
		sender: handler.sender,
		attrs:  append(slices.Clone(handler.attrs), attrs...),
		groups: slices.Clone(handler.groups),
	}
}

// WithGroup returns a handler with name appended, sharing the sender.
func (handler *StatusHandler) WithGroup(name string) slog.Handler {
	return &StatusHandler{
		level:  handler.level,
		sender: handler.sender,
		attrs:  slices.Clone(handler.attrs),
		groups: append(slices.Clone(handler.groups), name),
	}
}
