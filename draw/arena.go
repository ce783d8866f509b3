// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"iter"
	"slices"

	"github.com/gogpu/splatter"
	"github.com/gogpu/splatter/path"
)

// Range is the half-open interval [Start, End) of an arena buffer or of the
// index channel of a mesh.
type Range struct {
	Start, End int
}

// Len returns the number of elements in the range.
func (r Range) Len() int { return r.End - r.Start }

// IsEmpty reports whether the range holds no elements.
func (r Range) IsEmpty() bool { return r.End <= r.Start }

// Arena holds the intermediate buffers shared by all primitives of a frame:
// canonical path events, colored points and textured points. Buffers are
// truncated by Reset and reused, so their capacity survives across frames.
type Arena struct {
	events   []path.Event
	colored  []splatter.ColoredPoint
	textured []splatter.TexturedPoint
}

// PushEvents appends an event stream and returns its range.
func (a *Arena) PushEvents(events iter.Seq[path.Event]) Range {
	start := len(a.events)
	a.events = slices.AppendSeq(a.events, events)
	return Range{Start: start, End: len(a.events)}
}

// PushColored appends colored points and returns their range.
func (a *Arena) PushColored(points iter.Seq[splatter.ColoredPoint]) Range {
	start := len(a.colored)
	a.colored = slices.AppendSeq(a.colored, points)
	return Range{Start: start, End: len(a.colored)}
}

// PushTextured appends textured points and returns their range.
func (a *Arena) PushTextured(points iter.Seq[splatter.TexturedPoint]) Range {
	start := len(a.textured)
	a.textured = slices.AppendSeq(a.textured, points)
	return Range{Start: start, End: len(a.textured)}
}

// Events returns the buffered events of r.
func (a *Arena) Events(r Range) []path.Event { return a.events[r.Start:r.End] }

// Colored returns the buffered colored points of r.
func (a *Arena) Colored(r Range) []splatter.ColoredPoint { return a.colored[r.Start:r.End] }

// Textured returns the buffered textured points of r.
func (a *Arena) Textured(r Range) []splatter.TexturedPoint { return a.textured[r.Start:r.End] }

// Resolve turns a buffered source into iterators over the arena.
func (a *Arena) Resolve(s Source) SourceIter {
	it := SourceIter{Kind: s.Kind, Close: s.Close}
	switch s.Kind {
	case SourceEvents:
		it.Events = slices.Values(a.Events(s.Range))
	case SourceColoredPoints:
		it.Colored = slices.Values(a.Colored(s.Range))
	case SourceTexturedPoints:
		it.Textured = slices.Values(a.Textured(s.Range))
	}
	return it
}

// Len returns the total number of buffered elements.
func (a *Arena) Len() int {
	return len(a.events) + len(a.colored) + len(a.textured)
}

// Reset empties every buffer, keeping capacity.
func (a *Arena) Reset() {
	a.events = a.events[:0]
	a.colored = a.colored[:0]
	a.textured = a.textured[:0]
}
