// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package overlay

import (
	"testing"

	"github.com/bureau-foundation/overlay/lib/geometry"
)

func newTestRegistry(labels ...string) *Registry {
	registry := NewRegistry()
	for _, label := range labels {
		registry.Register(Item{Label: label, Value: label})
	}
	return registry
}

func TestRegistryRegisterOrder(t *testing.T) {
	registry := NewRegistry()
	for want, label := range []string{"cut", "copy", "paste"} {
		if got := registry.Register(Item{Label: label}); got != want {
			t.Errorf("Register(%q) = %d, want %d", label, got, want)
		}
	}
	if registry.Len() != 3 {
		t.Errorf("Len = %d, want 3", registry.Len())
	}
}

func TestRegistryUnregisterLeavesHole(t *testing.T) {
	registry := newTestRegistry("a", "b", "c")
	registry.Unregister(1)

	if _, ok := registry.Item(1); ok {
		t.Error("slot 1 still holds an item after Unregister")
	}
	item, ok := registry.Item(2)
	if !ok || item.Label != "c" {
		t.Errorf("Item(2) = %+v, %v; want c (indices must not shift)", item, ok)
	}
	if registry.SetActive(1) {
		t.Error("SetActive on a hole succeeded")
	}
}

func TestRegistryNavigation(t *testing.T) {
	registry := newTestRegistry("a", "b", "c", "d")
	registry.RegisterAt(1, Item{Label: "b", Disabled: true})
	registry.Unregister(2)

	steps := []struct {
		name string
		move func() bool
		want int
	}{
		{"next from none lands on first", registry.Next, 0},
		{"next skips disabled and hole", registry.Next, 3},
		{"next wraps", registry.Next, 0},
		{"prev wraps", registry.Prev, 3},
		{"first", registry.First, 0},
		{"last", registry.Last, 3},
	}
	for _, step := range steps {
		if !step.move() {
			t.Fatalf("%s: move reported no change", step.name)
		}
		if got := registryActive(registry); got != step.want {
			t.Fatalf("%s: active = %d, want %d", step.name, got, step.want)
		}
	}
}

func registryActive(registry *Registry) int {
	index, ok := registry.ActiveIndex()
	if !ok {
		return -1
	}
	return index
}

func TestRegistryPrevFromNoneLandsOnLast(t *testing.T) {
	registry := newTestRegistry("a", "b", "c")
	registry.Prev()
	if got := registryActive(registry); got != 2 {
		t.Errorf("active = %d, want 2", got)
	}
}

func TestRegistryNavigationAllDisabled(t *testing.T) {
	registry := newTestRegistry("a", "b")
	registry.disableAll = true
	if registry.Next() || registry.First() || registry.Last() {
		t.Error("navigation succeeded with every item disabled")
	}
	if _, ok := registry.ActiveIndex(); ok {
		t.Error("an item became active with every item disabled")
	}
}

func TestRegistryIsActiveIsPure(t *testing.T) {
	registry := newTestRegistry("a", "b")
	registry.SetActive(1)
	for range 3 {
		if registry.IsActive(0) {
			t.Error("IsActive(0) = true, want false")
		}
		if !registry.IsActive(1) {
			t.Error("IsActive(1) = false, want true")
		}
	}
	if got := registryActive(registry); got != 1 {
		t.Errorf("IsActive changed the active index to %d", got)
	}
}

func TestRegistryTrackByValue(t *testing.T) {
	registry := NewRegistry()
	registry.TrackByValue(true)
	// A virtualized window rendering options 10..12 in slots 0..2.
	for slot, value := range []string{"opt-10", "opt-11", "opt-12"} {
		registry.RegisterAt(slot, Item{Value: value})
	}
	registry.SetActive(1)

	// Scroll by one: the same slots now render 11..13.
	registry.Reset()
	for slot, value := range []string{"opt-11", "opt-12", "opt-13"} {
		registry.RegisterAt(slot, Item{Value: value})
	}
	if got := registryActive(registry); got != 0 {
		t.Errorf("active slot after scroll = %d, want 0 (opt-11 moved up)", got)
	}

	// Scroll the active value out of the window.
	registry.Reset()
	for slot, value := range []string{"opt-20", "opt-21"} {
		registry.RegisterAt(slot, Item{Value: value})
	}
	if _, ok := registry.ActiveIndex(); ok {
		t.Error("active slot reported for a value that is not rendered")
	}
	if value, ok := registry.ActiveValue(); !ok || value != "opt-11" {
		t.Errorf("ActiveValue = %q, %v; want opt-11", value, ok)
	}
}

func TestRegistryIndexAt(t *testing.T) {
	registry := NewRegistry()
	registry.Register(Item{Element: NewBox(geometry.Rect{X: 0, Y: 1, Width: 10, Height: 1})})
	registry.Register(Item{Element: NewBox(geometry.Rect{X: 0, Y: 2, Width: 10, Height: 1})})
	registry.Register(Item{})

	tests := []struct {
		point geometry.Point
		want  int
	}{
		{geometry.Point{X: 3, Y: 1}, 0},
		{geometry.Point{X: 9, Y: 2}, 1},
		{geometry.Point{X: 10, Y: 2}, -1},
		{geometry.Point{X: 0, Y: 0}, -1},
	}
	for _, test := range tests {
		if got := registry.IndexAt(test.point); got != test.want {
			t.Errorf("IndexAt(%v) = %d, want %d", test.point, got, test.want)
		}
	}
}

func TestRegistryMatchPrefix(t *testing.T) {
	registry := newTestRegistry("Apple", "Banana", "Apricot", "avocado")
	registry.RegisterAt(3, Item{Label: "avocado", Disabled: true})

	tests := []struct {
		prefix string
		start  int
		want   int
	}{
		{"a", 0, 0},
		{"a", 1, 2},
		{"a", 3, 0},
		{"ap", 1, 2},
		{"APR", 0, 2},
		{"b", 0, 1},
		{"c", 0, -1},
		{"", 0, -1},
	}
	for _, test := range tests {
		if got := registry.MatchPrefix(test.prefix, test.start); got != test.want {
			t.Errorf("MatchPrefix(%q, %d) = %d, want %d", test.prefix, test.start, got, test.want)
		}
	}
}
