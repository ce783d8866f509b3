// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package path

import (
	"iter"
	"slices"

	"github.com/gogpu/splatter"
)

// Converter canonicalizes a raw segment source into a well-formed event
// stream. Every opened sub-path is terminated by exactly one End event: a
// move-to while a sub-path is open, or the end of the source, produces a
// synthetic End{close: false}.
//
// One raw segment can produce two events (End then Begin, or an implicit
// Begin then the edge). The second one waits in a fixed queue that is
// drained before the next segment is read. Each call to Next does O(1) work.
//
// A Converter is single-use; create a new one to restart.
type Converter struct {
	src SegmentSource

	// queue holds events waiting to be returned, oldest first.
	queue [2]Event
	head  int
	count int

	// open is true between an emitted Begin and its End.
	open bool
	// needsEnd is true once the open sub-path has at least one edge.
	needsEnd bool
	prev     splatter.Point
	first    splatter.Point
	done     bool
}

// NewConverter returns a converter reading from src.
func NewConverter(src SegmentSource) *Converter {
	return &Converter{src: src}
}

// Convert canonicalizes segs in one call.
func Convert(segs ...Segment) []Event {
	return slices.Collect(NewConverter(Segments(segs...)).All())
}

// Next returns the next canonical event. It returns false once the source is
// exhausted and every open sub-path has been terminated.
func (c *Converter) Next() (Event, bool) {
	for c.count == 0 {
		if c.done {
			return Event{}, false
		}
		c.step()
	}
	e := c.queue[c.head]
	c.head = (c.head + 1) % len(c.queue)
	c.count--
	return e, true
}

// All returns the remaining events as a sequence.
func (c *Converter) All() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			e, ok := c.Next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}

func (c *Converter) push(e Event) {
	c.queue[(c.head+c.count)%len(c.queue)] = e
	c.count++
}

// step consumes one raw segment and queues zero, one or two events.
func (c *Converter) step() {
	seg, ok := c.src.NextSegment()
	if !ok {
		c.done = true
		if c.open {
			c.push(End(c.prev, c.first, false))
			c.open, c.needsEnd = false, false
		}
		return
	}

	switch seg.Op {
	case OpMoveTo:
		p := seg.Points[0]
		if c.open {
			c.push(End(c.prev, c.first, false))
		}
		c.push(Begin(p))
		c.open, c.needsEnd = true, false
		c.first, c.prev = p, p

	case OpLineTo:
		c.beginIfClosed()
		to := seg.Points[0]
		c.push(Line(c.prev, to))
		c.prev, c.needsEnd = to, true

	case OpQuadTo:
		c.beginIfClosed()
		ctrl, to := seg.Points[0], seg.Points[1]
		c.push(Quadratic(c.prev, ctrl, to))
		c.prev, c.needsEnd = to, true

	case OpCubicTo:
		c.beginIfClosed()
		c.push(Cubic(c.prev, seg.Points[0], seg.Points[1], seg.Points[2]))
		c.prev, c.needsEnd = seg.Points[2], true

	case OpClose:
		if !c.open {
			return
		}
		c.prev = c.first
		c.push(End(c.first, c.first, true))
		c.open, c.needsEnd = false, false
	}
}

// beginIfClosed opens an implicit sub-path at the current point when an edge
// arrives with nothing open (after a close, or without an initial move-to).
func (c *Converter) beginIfClosed() {
	if c.open {
		return
	}
	c.push(Begin(c.prev))
	c.open = true
	c.first = c.prev
}

// NeedsEnd reports whether the currently open sub-path has edges that are
// not yet terminated.
func (c *Converter) NeedsEnd() bool { return c.needsEnd }
