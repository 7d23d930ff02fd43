// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package placement

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		alignEnd bool
		drop     Drop
		rtl      bool
		want     Placement
	}{
		{false, DropDown, false, BottomStart},
		{true, DropDown, false, BottomEnd},
		{false, DropDown, true, BottomEnd},
		{true, DropDown, true, BottomStart},
		{false, DropUp, false, TopStart},
		{true, DropUp, false, TopEnd},
		{false, DropUp, true, TopEnd},
		{false, DropEnd, false, RightStart},
		{true, DropEnd, false, RightEnd},
		{false, DropEnd, true, LeftStart},
		{false, DropStart, false, LeftStart},
		{true, DropStart, false, LeftEnd},
		{true, DropStart, true, RightEnd},
		{false, DropDownCentered, false, Bottom},
		{true, DropDownCentered, true, Bottom},
		{true, DropUpCentered, false, Top},
		{false, DropUpCentered, true, Top},
	}
	for _, test := range tests {
		got := Resolve(test.alignEnd, test.drop, test.rtl, false)
		if got != test.want {
			t.Errorf("Resolve(alignEnd=%v, %v, rtl=%v) = %q, want %q",
				test.alignEnd, test.drop, test.rtl, got, test.want)
		}
	}
}

func TestResolveTotalAndNested(t *testing.T) {
	valid := map[Placement]bool{
		Top: true, TopStart: true, TopEnd: true,
		Bottom: true, BottomStart: true, BottomEnd: true,
		Left: true, LeftStart: true, LeftEnd: true,
		Right: true, RightStart: true, RightEnd: true,
	}
	for drop := range dropNames {
		for _, alignEnd := range []bool{false, true} {
			for _, rtl := range []bool{false, true} {
				if got := Resolve(alignEnd, drop, rtl, true); got != RightStart {
					t.Errorf("nested Resolve(%v, %v, %v) = %q, want right-start", alignEnd, drop, rtl, got)
				}
				if got := Resolve(alignEnd, drop, rtl, false); !valid[got] {
					t.Errorf("Resolve(%v, %v, %v) = %q, not a valid placement", alignEnd, drop, rtl, got)
				}
			}
		}
	}
}

func TestRTLMirrorsOnlyHorizontally(t *testing.T) {
	// Mirroring keeps the vertical side of every non-centered drop.
	for _, drop := range []Drop{DropDown, DropUp} {
		ltr := Resolve(false, drop, false, false)
		rtl := Resolve(false, drop, true, false)
		if ltr.Side() != rtl.Side() {
			t.Errorf("%v: RTL changed side from %s to %s", drop, ltr.Side(), rtl.Side())
		}
		if ltr.Alignment() == rtl.Alignment() {
			t.Errorf("%v: RTL should mirror alignment, both %q", drop, ltr.Alignment())
		}
	}
}

func TestPlacementParts(t *testing.T) {
	if BottomEnd.Side() != SideBottom || BottomEnd.Alignment() != AlignEnd {
		t.Errorf("BottomEnd parts = %s/%s", BottomEnd.Side(), BottomEnd.Alignment())
	}
	if Top.Alignment() != AlignCenter {
		t.Errorf("Top alignment = %q, want center", Top.Alignment())
	}
	if got := RightStart.Opposite(); got != LeftStart {
		t.Errorf("RightStart.Opposite() = %q", got)
	}
	if got := Bottom.Opposite(); got != Top {
		t.Errorf("Bottom.Opposite() = %q", got)
	}
}

func TestDropText(t *testing.T) {
	for drop, name := range dropNames {
		parsed, err := ParseDrop(name)
		if err != nil || parsed != drop {
			t.Errorf("ParseDrop(%q) = %v, %v", name, parsed, err)
		}
	}
	if _, err := ParseDrop("sideways"); err == nil {
		t.Error("ParseDrop should reject unknown directions")
	}

	var holder struct {
		Drop Drop `yaml:"drop"`
	}
	if err := yaml.Unmarshal([]byte("drop: up-centered\n"), &holder); err != nil {
		t.Fatalf("yaml unmarshal: %v", err)
	}
	if holder.Drop != DropUpCentered {
		t.Errorf("yaml drop = %v, want up-centered", holder.Drop)
	}
}
