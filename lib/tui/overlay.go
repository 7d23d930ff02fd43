// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/overlay/lib/geometry"
	"github.com/bureau-foundation/overlay/lib/overlay"
)

// SpliceOverlay replaces a rectangular region of a rendered view with
// overlay content. The overlay lines are placed starting at (anchorX,
// anchorY) in screen coordinates. Uses ANSI-aware truncation so escape
// sequences in the original view are preserved on both sides of the
// overlay. Lines shorter than anchorX are padded with spaces first.
func SpliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}

	viewLines := strings.Split(view, "\n")
	overlayWidth := ansi.StringWidth(overlayLines[0])

	for index, overlayLine := range overlayLines {
		viewLineIndex := anchorY + index
		if viewLineIndex < 0 || viewLineIndex >= len(viewLines) {
			continue
		}

		viewLine := viewLines[viewLineIndex]
		viewLineWidth := ansi.StringWidth(viewLine)

		var result strings.Builder
		if anchorX > 0 {
			result.WriteString(ansi.Truncate(viewLine, anchorX, ""))
			if viewLineWidth < anchorX {
				result.WriteString(strings.Repeat(" ", anchorX-viewLineWidth))
			}
		}
		result.WriteString("\x1b[0m")
		result.WriteString(overlayLine)
		result.WriteString("\x1b[0m")

		suffixStart := anchorX + overlayWidth
		if suffixStart < viewLineWidth {
			result.WriteString(ansi.TruncateLeft(viewLine, suffixStart, ""))
		}

		viewLines[viewLineIndex] = result.String()
	}

	return strings.Join(viewLines, "\n")
}

// PadOverlayLine takes styled content for the inner area and pads it
// to the full width with background-colored spaces. Returns
// " content  " with background applied to the padding.
func PadOverlayLine(styledContent string, innerWidth int, backgroundStyle lipgloss.Style) string {
	contentWidth := ansi.StringWidth(styledContent)
	if contentWidth > innerWidth {
		styledContent = ansi.Truncate(styledContent, innerWidth-1, "…")
		contentWidth = ansi.StringWidth(styledContent)
	}
	rightPad := max(innerWidth-contentWidth, 0)
	return backgroundStyle.Render(" ") +
		styledContent +
		backgroundStyle.Render(strings.Repeat(" ", rightPad+1))
}

// FrameLines draws the theme's border around lines of equal width.
// Without a border the lines are returned unchanged.
func FrameLines(theme Theme, lines []string) []string {
	if !theme.Framed() || len(lines) == 0 {
		return lines
	}
	framed := lipgloss.NewStyle().
		Border(theme.Border).
		BorderForeground(theme.BorderColor).
		BorderBackground(theme.SurfaceBackground).
		Render(strings.Join(lines, "\n"))
	return strings.Split(framed, "\n")
}

// FadeLines redraws lines for a closing surface: unchanged at full
// opacity, in the faint color past the midpoint, and in the disabled
// color near the end.
func FadeLines(theme Theme, lines []string, opacity float64) []string {
	if opacity >= 1.0 {
		return lines
	}
	color := theme.FaintText
	if opacity < 0.5 {
		color = theme.DisabledText
	}
	style := lipgloss.NewStyle().Foreground(color).Background(theme.SurfaceBackground)
	faded := make([]string, len(lines))
	for index, line := range lines {
		faded[index] = style.Render(ansi.Strip(line))
	}
	return faded
}

// frameInset is the number of cells the frame occupies on each side.
func frameInset(theme Theme) int {
	if theme.Framed() {
		return 1
	}
	return 0
}

// RowElement is row of a node's surface inside the theme's frame.
// Like overlay.Row it only has bounds while the surface is visible.
func RowElement(node *overlay.Node, row int, theme Theme) overlay.Element {
	inset := frameInset(theme)
	if inset == 0 {
		return overlay.Row(node, row)
	}
	return insetRow{node: node, row: row, inset: inset}
}

type insetRow struct {
	node  *overlay.Node
	row   int
	inset int
}

func (element insetRow) Bounds() (geometry.Rect, bool) {
	if !element.node.Content().Visible() {
		return geometry.Rect{}, false
	}
	surface, ok := element.node.FloatingRect()
	if !ok {
		return geometry.Rect{}, false
	}
	innerHeight := surface.Height - 2*element.inset
	if element.row < 0 || element.row >= innerHeight {
		return geometry.Rect{}, false
	}
	return geometry.Rect{
		X:      surface.X + element.inset,
		Y:      surface.Y + element.inset + element.row,
		Width:  surface.Width - 2*element.inset,
		Height: 1,
	}, true
}
