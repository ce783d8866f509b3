// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package path

import (
	"iter"

	"github.com/gogpu/splatter"
)

// FromPolyline returns the events of a single sub-path through points. An
// empty slice yields no events. A closed polyline ends with
// End{last: final point, first, close: true}; consumers close back to the
// first point themselves.
func FromPolyline(close bool, points []splatter.Point) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		if len(points) == 0 {
			return
		}
		if !yield(Begin(points[0])) {
			return
		}
		for i := 1; i < len(points); i++ {
			if !yield(Line(points[i-1], points[i])) {
				return
			}
		}
		yield(End(points[len(points)-1], points[0], close))
	}
}

// Transform returns events with every point mapped through m at z = 0,
// dropping the resulting Z.
func Transform(events iter.Seq[Event], m splatter.Mat4) iter.Seq[Event] {
	f := func(p splatter.Point) splatter.Point { return m.TransformPoint(p).XY() }
	return func(yield func(Event) bool) {
		for e := range events {
			if !yield(e.Map(f)) {
				return
			}
		}
	}
}
