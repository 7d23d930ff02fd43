// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package placement

import (
	"fmt"
	"strings"
)

// Placement is a compass-style anchor describing where the floating
// surface sits relative to its reference: a side, optionally followed
// by an alignment along that side.
type Placement string

const (
	Top         Placement = "top"
	TopStart    Placement = "top-start"
	TopEnd      Placement = "top-end"
	Bottom      Placement = "bottom"
	BottomStart Placement = "bottom-start"
	BottomEnd   Placement = "bottom-end"
	Left        Placement = "left"
	LeftStart   Placement = "left-start"
	LeftEnd     Placement = "left-end"
	Right       Placement = "right"
	RightStart  Placement = "right-start"
	RightEnd    Placement = "right-end"
)

// Side is the edge of the reference the surface is placed against.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
)

// Alignment positions the surface along the chosen side.
type Alignment string

const (
	AlignCenter Alignment = ""
	AlignStart  Alignment = "start"
	AlignEnd    Alignment = "end"
)

// Side returns the side component of the placement.
func (placement Placement) Side() Side {
	side, _, _ := strings.Cut(string(placement), "-")
	return Side(side)
}

// Alignment returns the alignment component, AlignCenter when absent.
func (placement Placement) Alignment() Alignment {
	_, alignment, _ := strings.Cut(string(placement), "-")
	return Alignment(alignment)
}

// Vertical reports whether the surface opens above or below the
// reference.
func (placement Placement) Vertical() bool {
	side := placement.Side()
	return side == SideTop || side == SideBottom
}

// Opposite returns the placement flipped to the other side, keeping
// the alignment.
func (placement Placement) Opposite() Placement {
	return compose(placement.Side().opposite(), placement.Alignment())
}

func (side Side) opposite() Side {
	switch side {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	default:
		return SideLeft
	}
}

func compose(side Side, alignment Alignment) Placement {
	if alignment == AlignCenter {
		return Placement(side)
	}
	return Placement(string(side) + "-" + string(alignment))
}

// Drop is the consumer-facing direction in which a surface opens.
type Drop int

const (
	DropDown Drop = iota
	DropDownCentered
	DropUp
	DropUpCentered
	DropStart
	DropEnd
)

var dropNames = map[Drop]string{
	DropDown:         "down",
	DropDownCentered: "down-centered",
	DropUp:           "up",
	DropUpCentered:   "up-centered",
	DropStart:        "start",
	DropEnd:          "end",
}

func (drop Drop) String() string {
	if name, ok := dropNames[drop]; ok {
		return name
	}
	return fmt.Sprintf("Drop(%d)", int(drop))
}

// ParseDrop converts a configuration string into a Drop.
func ParseDrop(value string) (Drop, error) {
	for drop, name := range dropNames {
		if name == value {
			return drop, nil
		}
	}
	return DropDown, fmt.Errorf("unknown drop direction %q (want down, down-centered, up, up-centered, start, or end)", value)
}

// MarshalText implements encoding.TextMarshaler.
func (drop Drop) MarshalText() ([]byte, error) {
	if _, ok := dropNames[drop]; !ok {
		return nil, fmt.Errorf("invalid drop direction %d", int(drop))
	}
	return []byte(drop.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (drop *Drop) UnmarshalText(text []byte) error {
	parsed, err := ParseDrop(string(text))
	if err != nil {
		return err
	}
	*drop = parsed
	return nil
}

// Resolve maps overlay configuration to the initial requested
// placement. Nested surfaces always cascade to the right-start of
// their trigger. Otherwise the drop direction picks the side, alignEnd
// picks the -end variant, and isRTL mirrors the horizontal sense: the
// start/end alignment of top and bottom placements, and the left/right
// side of start and end drops. Vertical alignment of side placements
// is unaffected by reading direction. Centered drops ignore alignEnd.
func Resolve(alignEnd bool, drop Drop, isRTL, isNested bool) Placement {
	if isNested {
		return RightStart
	}

	sideAlignment := AlignStart
	if alignEnd {
		sideAlignment = AlignEnd
	}
	readingAlignment := sideAlignment
	startSide, endSide := SideLeft, SideRight
	if isRTL {
		if readingAlignment == AlignStart {
			readingAlignment = AlignEnd
		} else {
			readingAlignment = AlignStart
		}
		startSide, endSide = endSide, startSide
	}

	switch drop {
	case DropUp:
		return compose(SideTop, readingAlignment)
	case DropUpCentered:
		return Top
	case DropDownCentered:
		return Bottom
	case DropStart:
		return compose(startSide, sideAlignment)
	case DropEnd:
		return compose(endSide, sideAlignment)
	default:
		return compose(SideBottom, readingAlignment)
	}
}
