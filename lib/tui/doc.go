// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui draws overlay trees in a terminal. A [Host] is a
// bubbletea model that owns an [overlay.Tree]: it turns key and mouse
// messages into overlay events, delivers overlay timers on the update
// loop through a [LoopClock], fades closing surfaces, and splices each
// visible [Layer] over a base view at the rectangle the placement
// engine computed.
//
// Two layers ship with the package. [Menu] draws a list of commands
// with nested submenus. [Select] draws a select, combobox, or
// multiselect surface from package selection, with a search line for
// comboboxes.
//
// [StatusHandler] is a slog.Handler that mirrors warnings into the
// host's status line, so a program can log once and have the message
// land both in its log file and in front of the user.
package tui
