// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/overlay/lib/config"
)

// Theme defines the colors and frame of overlay surfaces. Colors are
// ANSI 256-color codes, or #rrggbb when configured, for broad terminal
// compatibility.
type Theme struct {
	// Text colors.
	NormalText   lipgloss.Color
	FaintText    lipgloss.Color
	DisabledText lipgloss.Color

	// Active (keyboard-highlighted) row.
	ActiveBackground lipgloss.Color
	ActiveForeground lipgloss.Color

	// Accent marks selected values, open triggers, and the focused
	// scrollbar thumb.
	Accent lipgloss.Color

	// Surface chrome.
	SurfaceBackground lipgloss.Color
	HeaderForeground  lipgloss.Color
	BorderColor       lipgloss.Color
	HelpText          lipgloss.Color

	// Status line levels.
	WarnText  lipgloss.Color
	ErrorText lipgloss.Color

	// Border frames every surface. A zero Border draws no frame.
	Border lipgloss.Border
}

// Framed reports whether surfaces get a one-cell frame.
func (theme Theme) Framed() bool {
	return theme.Border != lipgloss.Border{}
}

// DarkTheme is the built-in scheme for dark terminal backgrounds.
var DarkTheme = Theme{
	NormalText:   lipgloss.Color("252"),
	FaintText:    lipgloss.Color("245"),
	DisabledText: lipgloss.Color("240"),

	ActiveBackground: lipgloss.Color("24"),
	ActiveForeground: lipgloss.Color("255"),

	Accent: lipgloss.Color("75"),

	SurfaceBackground: lipgloss.Color("236"),
	HeaderForeground:  lipgloss.Color("255"),
	BorderColor:       lipgloss.Color("240"),
	HelpText:          lipgloss.Color("241"),

	WarnText:  lipgloss.Color("220"),
	ErrorText: lipgloss.Color("196"),

	Border: lipgloss.RoundedBorder(),
}

// LightTheme is the built-in scheme for light terminal backgrounds.
var LightTheme = Theme{
	NormalText:   lipgloss.Color("235"),
	FaintText:    lipgloss.Color("243"),
	DisabledText: lipgloss.Color("249"),

	ActiveBackground: lipgloss.Color("153"),
	ActiveForeground: lipgloss.Color("232"),

	Accent: lipgloss.Color("26"),

	SurfaceBackground: lipgloss.Color("255"),
	HeaderForeground:  lipgloss.Color("232"),
	BorderColor:       lipgloss.Color("250"),
	HelpText:          lipgloss.Color("245"),

	WarnText:  lipgloss.Color("130"),
	ErrorText: lipgloss.Color("160"),

	Border: lipgloss.RoundedBorder(),
}

// NewTheme resolves a configured theme. An auto theme asks output
// whether the terminal background is dark; a nil output counts as
// dark.
func NewTheme(settings config.ThemeConfig, output *termenv.Output) Theme {
	theme := DarkTheme
	switch settings.Name {
	case "light":
		theme = LightTheme
	case "auto", "":
		if output != nil && !output.HasDarkBackground() {
			theme = LightTheme
		}
	}
	if settings.Accent != "" {
		theme.Accent = lipgloss.Color(settings.Accent)
	}
	switch settings.Border {
	case "normal":
		theme.Border = lipgloss.NormalBorder()
	case "thick":
		theme.Border = lipgloss.ThickBorder()
	case "none":
		theme.Border = lipgloss.Border{}
	default:
		theme.Border = lipgloss.RoundedBorder()
	}
	return theme
}
