// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ScrollWindow describes which slice of a list a surface shows.
type ScrollWindow struct {
	Total   int
	Visible int
	Offset  int
}

// Thumb returns the first track row and the length of the thumb on a
// track of the given height. A window that shows everything fills the
// track.
func (window ScrollWindow) Thumb(height int) (start, length int) {
	if window.Total <= 0 || window.Total <= window.Visible {
		return 0, height
	}
	length = max(height*window.Visible/window.Total, 1)
	hidden := window.Total - window.Visible
	if travel := height - length; travel > 0 {
		start = min(window.Offset*travel/hidden, travel)
	}
	return start, length
}

// RenderScrollbar returns one styled cell per track row. The thumb
// takes the accent color while active.
func RenderScrollbar(theme Theme, height int, window ScrollWindow, active bool) []string {
	if height <= 0 {
		return nil
	}
	thumbColor := theme.BorderColor
	if active {
		thumbColor = theme.Accent
	}
	base := lipgloss.NewStyle().Background(theme.SurfaceBackground)
	thumb := base.Foreground(thumbColor).Render("┃")
	track := base.Foreground(theme.BorderColor).Render("│")

	start, length := window.Thumb(height)
	lines := strings.Split(strings.Repeat(track+"\n", height-1)+track, "\n")
	for row := start; row < start+length && row < height; row++ {
		lines[row] = thumb
	}
	return lines
}
