// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/overlay/lib/overlay"
	"github.com/bureau-foundation/overlay/lib/placement"
)

// Format is a configuration file syntax.
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatJSONC Format = "jsonc"
)

// FormatFor returns the format implied by path's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSONC, nil
	default:
		return "", fmt.Errorf("unsupported config extension %q (want .yaml, .yml, .json, or .jsonc)", filepath.Ext(path))
	}
}

// Config is the demo and widget configuration.
type Config struct {
	// Overlay configures every overlay node built from this file.
	Overlay OverlayConfig `yaml:"overlay" json:"overlay"`

	// Theme selects colors and borders.
	Theme ThemeConfig `yaml:"theme" json:"theme"`
}

// OverlayConfig holds the recognized overlay option keys.
type OverlayConfig struct {
	// Align is start or end, or a breakpoint map such as
	// {sm: start, lg: end} resolved against the terminal width.
	Align Align `yaml:"align" json:"align"`

	// Drop is the direction the surface opens in.
	Drop placement.Drop `yaml:"drop" json:"drop"`

	// AutoClose is true, inside, outside, or false.
	AutoClose Flag `yaml:"auto_close" json:"auto_close"`

	// FocusFirstItem is true, false, or keyboard.
	FocusFirstItem Flag `yaml:"focus_first_item" json:"focus_first_item"`

	// OutsidePress is any, floating, or none.
	OutsidePress string `yaml:"outside_press" json:"outside_press"`

	CloseOnScrollOutside bool `yaml:"close_on_scroll_outside" json:"close_on_scroll_outside"`

	// Offset is the gap in cells between trigger and surface.
	Offset int `yaml:"offset" json:"offset"`

	Flip         bool `yaml:"flip" json:"flip"`
	Shift        bool `yaml:"shift" json:"shift"`
	ShiftPadding int  `yaml:"shift_padding" json:"shift_padding"`

	RTL      bool `yaml:"rtl" json:"rtl"`
	Disabled bool `yaml:"disabled" json:"disabled"`

	// Transition enables the close fade.
	Transition bool `yaml:"transition" json:"transition"`

	HoverDelay         Duration `yaml:"hover_delay" json:"hover_delay"`
	SafePolygonTimeout Duration `yaml:"safe_polygon_timeout" json:"safe_polygon_timeout"`
	TypeaheadReset     Duration `yaml:"typeahead_reset" json:"typeahead_reset"`
	FocusDelay         Duration `yaml:"focus_delay" json:"focus_delay"`
}

// ThemeConfig selects the terminal theme.
type ThemeConfig struct {
	// Name is auto, dark, or light. Auto follows the terminal
	// background.
	Name string `yaml:"name" json:"name"`

	// Accent overrides the highlight color with an ANSI-256 index or a
	// #rrggbb value.
	Accent string `yaml:"accent" json:"accent"`

	// Border is rounded, normal, thick, or none.
	Border string `yaml:"border" json:"border"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Overlay: OverlayConfig{
			Drop:               placement.DropDown,
			AutoClose:          Flag(overlay.AutoCloseAlways),
			FocusFirstItem:     Flag(overlay.FocusFirstKeyboard),
			OutsidePress:       "any",
			Flip:               true,
			Shift:              true,
			HoverDelay:         Duration(overlay.DefaultHoverDelay),
			SafePolygonTimeout: Duration(overlay.DefaultSafePolygonTimeout),
			TypeaheadReset:     Duration(overlay.DefaultTypeaheadReset),
		},
		Theme: ThemeConfig{
			Name:   "auto",
			Border: "rounded",
		},
	}
}

// LoadFile reads, expands, parses and validates the file at path.
func LoadFile(path string) (*Config, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	config, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Parse decodes data on top of [Default] and validates the result.
func Parse(data []byte, format Format) (*Config, error) {
	config := Default()
	expanded := []byte(expandVars(string(data)))
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(expanded, config); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	case FormatJSONC:
		if err := json.Unmarshal(jsonc.ToJSON(expanded), config); err != nil {
			return nil, fmt.Errorf("parsing JSONC: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars replaces ${VAR} and ${VAR:-default}. Unset and empty
// variables take the default, or the empty string.
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return parts[2]
	})
}

var (
	outsidePressValues = []string{"any", "floating", "none"}
	themeNames         = []string{"auto", "dark", "light"}
	borderNames        = []string{"rounded", "normal", "thick", "none"}
)

// Validate reports every invalid value at once.
func (config *Config) Validate() error {
	var errs []error
	overlayConfig := config.Overlay

	if err := overlayConfig.Align.validate(); err != nil {
		errs = append(errs, err)
	}
	if !overlay.AutoClose(overlayConfig.AutoClose).Valid() {
		errs = append(errs, fmt.Errorf("overlay.auto_close must be one of: true, inside, outside, false (got %q)", overlayConfig.AutoClose))
	}
	if !overlay.FocusFirst(overlayConfig.FocusFirstItem).Valid() {
		errs = append(errs, fmt.Errorf("overlay.focus_first_item must be one of: true, false, keyboard (got %q)", overlayConfig.FocusFirstItem))
	}
	if !slices.Contains(outsidePressValues, overlayConfig.OutsidePress) {
		errs = append(errs, fmt.Errorf("overlay.outside_press must be one of: %v (got %q)", outsidePressValues, overlayConfig.OutsidePress))
	}
	if overlayConfig.Offset < 0 {
		errs = append(errs, fmt.Errorf("overlay.offset must not be negative (got %d)", overlayConfig.Offset))
	}
	if overlayConfig.ShiftPadding < 0 {
		errs = append(errs, fmt.Errorf("overlay.shift_padding must not be negative (got %d)", overlayConfig.ShiftPadding))
	}
	for _, duration := range []struct {
		key   string
		value Duration
	}{
		{"hover_delay", overlayConfig.HoverDelay},
		{"safe_polygon_timeout", overlayConfig.SafePolygonTimeout},
		{"typeahead_reset", overlayConfig.TypeaheadReset},
		{"focus_delay", overlayConfig.FocusDelay},
	} {
		if duration.value < 0 {
			errs = append(errs, fmt.Errorf("overlay.%s must not be negative (got %s)", duration.key, time.Duration(duration.value)))
		}
	}

	if !slices.Contains(themeNames, config.Theme.Name) {
		errs = append(errs, fmt.Errorf("theme.name must be one of: %v (got %q)", themeNames, config.Theme.Name))
	}
	if !slices.Contains(borderNames, config.Theme.Border) {
		errs = append(errs, fmt.Errorf("theme.border must be one of: %v (got %q)", borderNames, config.Theme.Border))
	}

	return errors.Join(errs...)
}

// Options converts the section to overlay options for a viewport of
// the given width in cells. Callbacks and transitions stay unset.
func (overlayConfig OverlayConfig) Options(width int) overlay.Options {
	options := overlay.DefaultOptions()
	options.AlignEnd = overlayConfig.Align.End(width)
	options.Drop = overlayConfig.Drop
	options.RTL = overlayConfig.RTL
	options.AutoClose = overlay.AutoClose(overlayConfig.AutoClose)
	options.FocusFirstItem = overlay.FocusFirst(overlayConfig.FocusFirstItem)
	switch overlayConfig.OutsidePress {
	case "floating":
		options.OutsidePress = overlay.OutsidePressFloating
	case "none":
		options.OutsidePress = overlay.OutsidePressNone
	default:
		options.OutsidePress = overlay.OutsidePressAny
	}
	options.CloseOnScrollOutside = overlayConfig.CloseOnScrollOutside
	options.Disabled = overlayConfig.Disabled
	options.Middleware.Offset = overlayConfig.Offset
	options.Middleware.Flip = overlayConfig.Flip
	options.Middleware.Shift = overlayConfig.Shift
	options.Middleware.ShiftPadding = overlayConfig.ShiftPadding
	options.HoverDelay = time.Duration(overlayConfig.HoverDelay)
	options.SafePolygonTimeout = time.Duration(overlayConfig.SafePolygonTimeout)
	options.TypeaheadReset = time.Duration(overlayConfig.TypeaheadReset)
	options.FocusDelay = time.Duration(overlayConfig.FocusDelay)
	return options
}

// Breakpoints are the minimum terminal widths, in columns, at which
// each named breakpoint of an Align map applies.
var Breakpoints = map[string]int{
	"xs": 0,
	"sm": 60,
	"md": 80,
	"lg": 120,
	"xl": 160,
}

// Align is a fixed alignment or a per-breakpoint map. The zero value
// aligns to the start.
type Align struct {
	Fixed       string
	Breakpoints map[string]string
}

// End reports whether the surface aligns to the trigger's end edge at
// the given width. A map applies the widest breakpoint not exceeding
// width; below every listed breakpoint the alignment is start.
func (align Align) End(width int) bool {
	if align.Breakpoints == nil {
		return align.Fixed == "end"
	}
	names := make([]string, 0, len(align.Breakpoints))
	for name := range align.Breakpoints {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return Breakpoints[names[i]] > Breakpoints[names[j]] })
	for _, name := range names {
		if width >= Breakpoints[name] {
			return align.Breakpoints[name] == "end"
		}
	}
	return false
}

func (align Align) validate() error {
	var errs []error
	if align.Fixed != "" && align.Fixed != "start" && align.Fixed != "end" {
		errs = append(errs, fmt.Errorf("overlay.align must be start or end (got %q)", align.Fixed))
	}
	for name, value := range align.Breakpoints {
		if _, ok := Breakpoints[name]; !ok {
			errs = append(errs, fmt.Errorf("overlay.align: unknown breakpoint %q (want xs, sm, md, lg, or xl)", name))
		}
		if value != "start" && value != "end" {
			errs = append(errs, fmt.Errorf("overlay.align.%s must be start or end (got %q)", name, value))
		}
	}
	return errors.Join(errs...)
}

// UnmarshalYAML accepts a scalar or a mapping.
func (align *Align) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*align = Align{Fixed: node.Value}
		return nil
	}
	var breakpoints map[string]string
	if err := node.Decode(&breakpoints); err != nil {
		return fmt.Errorf("overlay.align: %w", err)
	}
	*align = Align{Breakpoints: breakpoints}
	return nil
}

// UnmarshalJSON accepts a string or an object.
func (align *Align) UnmarshalJSON(data []byte) error {
	var fixed string
	if err := json.Unmarshal(data, &fixed); err == nil {
		*align = Align{Fixed: fixed}
		return nil
	}
	var breakpoints map[string]string
	if err := json.Unmarshal(data, &breakpoints); err != nil {
		return fmt.Errorf("overlay.align: want a string or an object of breakpoints: %w", err)
	}
	*align = Align{Breakpoints: breakpoints}
	return nil
}

// Flag is a setting written either as a boolean or as a keyword, like
// auto_close: outside or auto_close: false.
type Flag string

// UnmarshalYAML accepts any scalar.
func (flag *Flag) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: want a boolean or a keyword", node.Line)
	}
	*flag = Flag(node.Value)
	return nil
}

// UnmarshalJSON accepts a boolean or a string.
func (flag *Flag) UnmarshalJSON(data []byte) error {
	var boolean bool
	if err := json.Unmarshal(data, &boolean); err == nil {
		*flag = Flag(fmt.Sprint(boolean))
		return nil
	}
	var keyword string
	if err := json.Unmarshal(data, &keyword); err != nil {
		return fmt.Errorf("want a boolean or a keyword: %w", err)
	}
	*flag = Flag(keyword)
	return nil
}

// Duration is a time.Duration written as a Go duration string.
type Duration time.Duration

func parseDuration(text string) (Duration, error) {
	parsed, err := time.ParseDuration(text)
	if err != nil {
		return 0, err
	}
	return Duration(parsed), nil
}

// UnmarshalYAML parses strings like "50ms".
func (duration *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := parseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*duration = parsed
	return nil
}

// UnmarshalJSON parses strings like "50ms".
func (duration *Duration) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("durations are strings like \"50ms\": %w", err)
	}
	parsed, err := parseDuration(text)
	if err != nil {
		return err
	}
	*duration = parsed
	return nil
}

// String formats the duration like time.Duration.
func (duration Duration) String() string { return time.Duration(duration).String() }
