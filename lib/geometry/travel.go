// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package geometry

import (
	"slices"
)

// TravelPathFunc decides whether a pointer position is still on its
// way from a trigger rectangle toward a floating surface. Overlay
// nodes accept one so the heuristic can be swapped or tested without
// real pointer events.
type TravelPathFunc func(pointer Point, from, to Rect) bool

// InsideTravelPath is the default [TravelPathFunc]. The corridor is the
// convex hull of the corners of both rectangles, so any straight or
// slightly wandering path between them stays inside it. Points inside
// either rectangle are always on the path.
func InsideTravelPath(pointer Point, from, to Rect) bool {
	if from.Contains(pointer) || to.Contains(pointer) {
		return true
	}
	if from.Empty() || to.Empty() {
		return false
	}
	hull := convexHull(append(from.Corners(), to.Corners()...))
	return hullContains(hull, pointer)
}

// cross returns the z component of (a-origin) x (b-origin).
func cross(origin, a, b Point) int {
	return (a.X-origin.X)*(b.Y-origin.Y) - (a.Y-origin.Y)*(b.X-origin.X)
}

// convexHull computes the hull with Andrew's monotone chain. The result
// is counter-clockwise in screen coordinates (Y grows downward) and has
// no collinear points.
func convexHull(points []Point) []Point {
	slices.SortFunc(points, func(a, b Point) int {
		if a.X != b.X {
			return a.X - b.X
		}
		return a.Y - b.Y
	})
	points = slices.Compact(points)
	if len(points) < 3 {
		return points
	}

	hull := make([]Point, 0, 2*len(points))
	for _, point := range points {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], point) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, point)
	}
	lowerSize := len(hull) + 1
	for index := len(points) - 2; index >= 0; index-- {
		point := points[index]
		for len(hull) >= lowerSize && cross(hull[len(hull)-2], hull[len(hull)-1], point) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, point)
	}
	return hull[:len(hull)-1]
}

// hullContains reports whether point lies inside or on the boundary of
// a hull produced by convexHull. Hulls of fewer than three points are
// treated as a segment (or a single point).
func hullContains(hull []Point, point Point) bool {
	switch len(hull) {
	case 0:
		return false
	case 1:
		return hull[0] == point
	case 2:
		return onSegment(hull[0], hull[1], point)
	}
	for index := range hull {
		a := hull[index]
		b := hull[(index+1)%len(hull)]
		if cross(a, b, point) < 0 {
			return false
		}
	}
	return true
}

func onSegment(a, b, point Point) bool {
	if cross(a, b, point) != 0 {
		return false
	}
	return point.X >= min(a.X, b.X) && point.X <= max(a.X, b.X) &&
		point.Y >= min(a.Y, b.Y) && point.Y <= max(a.Y, b.Y)
}
