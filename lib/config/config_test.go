// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bureau-foundation/overlay/lib/overlay"
	"github.com/bureau-foundation/overlay/lib/placement"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}

	options := cfg.Overlay.Options(80)
	if options.AlignEnd {
		t.Error("default aligns to the end")
	}
	if options.AutoClose != overlay.AutoCloseAlways {
		t.Errorf("auto_close = %q, want true", options.AutoClose)
	}
	if options.HoverDelay != overlay.DefaultHoverDelay {
		t.Errorf("hover_delay = %v, want %v", options.HoverDelay, overlay.DefaultHoverDelay)
	}
	if !options.Middleware.Flip || !options.Middleware.Shift {
		t.Error("flip and shift are not on by default")
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := writeConfig(t, "overlay.yaml", `
overlay:
  align: end
  drop: up-centered
  auto_close: outside
  focus_first_item: false
  outside_press: floating
  close_on_scroll_outside: true
  offset: 1
  flip: false
  rtl: true
  hover_delay: 80ms
  focus_delay: 10ms
theme:
  name: light
  border: normal
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	options := cfg.Overlay.Options(80)
	if !options.AlignEnd {
		t.Error("align: end not applied")
	}
	if options.Drop != placement.DropUpCentered {
		t.Errorf("drop = %v, want up-centered", options.Drop)
	}
	if options.AutoClose != overlay.AutoCloseOutside {
		t.Errorf("auto_close = %q", options.AutoClose)
	}
	if options.FocusFirstItem != overlay.FocusFirstNever {
		t.Errorf("focus_first_item = %q", options.FocusFirstItem)
	}
	if options.OutsidePress != overlay.OutsidePressFloating {
		t.Errorf("outside_press = %q", options.OutsidePress)
	}
	if !options.CloseOnScrollOutside || !options.RTL {
		t.Error("boolean keys not applied")
	}
	if options.Middleware.Offset != 1 || options.Middleware.Flip || !options.Middleware.Shift {
		t.Errorf("middleware = %+v", options.Middleware)
	}
	if options.HoverDelay != 80*time.Millisecond || options.FocusDelay != 10*time.Millisecond {
		t.Errorf("durations = %v, %v", options.HoverDelay, options.FocusDelay)
	}
	if options.SafePolygonTimeout != overlay.DefaultSafePolygonTimeout {
		t.Errorf("unset safe_polygon_timeout = %v, want the default", options.SafePolygonTimeout)
	}
	if cfg.Theme.Name != "light" || cfg.Theme.Border != "normal" {
		t.Errorf("theme = %+v", cfg.Theme)
	}
}

func TestLoadFileJSONC(t *testing.T) {
	path := writeConfig(t, "overlay.jsonc", `{
	// Menus on wide terminals open toward the end.
	"overlay": {
		"align": {"sm": "start", "lg": "end"},
		"auto_close": false,
		"focus_first_item": true,
		"typeahead_reset": "1s", /* longer for slow typists */
	},
	"theme": {"accent": "#5f87ff"},
}`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Overlay.AutoClose != Flag(overlay.AutoCloseNever) {
		t.Errorf("auto_close = %q, want false", cfg.Overlay.AutoClose)
	}
	if cfg.Overlay.FocusFirstItem != Flag(overlay.FocusFirstAlways) {
		t.Errorf("focus_first_item = %q, want true", cfg.Overlay.FocusFirstItem)
	}
	if time.Duration(cfg.Overlay.TypeaheadReset) != time.Second {
		t.Errorf("typeahead_reset = %v", cfg.Overlay.TypeaheadReset)
	}
	if cfg.Theme.Accent != "#5f87ff" || cfg.Theme.Name != "auto" {
		t.Errorf("theme = %+v", cfg.Theme)
	}
}

func TestAlignBreakpoints(t *testing.T) {
	align := Align{Breakpoints: map[string]string{"sm": "start", "lg": "end"}}
	tests := []struct {
		width int
		end   bool
	}{
		{40, false},
		{60, false},
		{119, false},
		{120, true},
		{200, true},
	}
	for _, test := range tests {
		if got := align.End(test.width); got != test.end {
			t.Errorf("End(%d) = %v, want %v", test.width, got, test.end)
		}
	}

	if (Align{Breakpoints: map[string]string{"md": "end"}}).End(70) {
		t.Error("a width below every breakpoint should align to the start")
	}
	if !(Align{Fixed: "end"}).End(10) {
		t.Error("fixed end ignored")
	}
}

func TestExpandVariables(t *testing.T) {
	t.Setenv("OVERLAY_TEST_THEME", "dark")
	t.Setenv("OVERLAY_TEST_EMPTY", "")

	path := writeConfig(t, "overlay.yml", `
theme:
  name: ${OVERLAY_TEST_THEME}
  border: ${OVERLAY_TEST_EMPTY:-thick}
  accent: ${OVERLAY_TEST_UNSET_VARIABLE:-212}
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Theme.Name != "dark" || cfg.Theme.Border != "thick" || cfg.Theme.Accent != "212" {
		t.Errorf("theme after expansion = %+v", cfg.Theme)
	}
}

func TestValidateCollectsEveryError(t *testing.T) {
	_, err := Parse([]byte(`
overlay:
  align: {sm: start, huge: end}
  auto_close: sometimes
  focus_first_item: mouse
  outside_press: nowhere
  offset: -1
theme:
  name: neon
`), FormatYAML)
	if err == nil {
		t.Fatal("invalid config accepted")
	}
	for _, want := range []string{
		`unknown breakpoint "huge"`,
		"overlay.auto_close",
		"overlay.focus_first_item",
		"overlay.outside_press",
		"overlay.offset",
		"theme.name",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		want   string
	}{
		{"bad drop", "overlay:\n  drop: sideways\n", FormatYAML, "unknown drop direction"},
		{"bad duration", "overlay:\n  hover_delay: soon\n", FormatYAML, "invalid duration"},
		{"numeric duration", `{"overlay": {"hover_delay": 50}}`, FormatJSONC, "durations are strings"},
		{"malformed json", `{"overlay": `, FormatJSONC, "parsing JSONC"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.data), test.format)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("error %q does not mention %q", err, test.want)
			}
		})
	}
}

func TestLoadFileRejectsUnknownExtension(t *testing.T) {
	path := writeConfig(t, "overlay.toml", "")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected an error for .toml")
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading config") {
		t.Errorf("err = %v", err)
	}
}
