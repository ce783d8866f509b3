// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package path

import (
	"fmt"
	"iter"

	"github.com/gogpu/splatter"
)

// Path is an immutable event stream in which every endpoint carries a fixed
// number of float attributes (for example four color channels or two texture
// coordinates). Tessellators interpolate the attributes along edges.
type Path struct {
	numAttrs int
	events   []Event
	// attrs holds numAttrs values per event, for the event's endpoint: the
	// start point of Begin, To of an edge, the first point of End.
	attrs []float32
}

// NumAttributes returns the number of attributes per endpoint.
func (p *Path) NumAttributes() int { return p.numAttrs }

// Len returns the number of events.
func (p *Path) Len() int { return len(p.events) }

// IsEmpty reports whether the path has no events.
func (p *Path) IsEmpty() bool { return len(p.events) == 0 }

// Events returns the events without attributes.
func (p *Path) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for _, e := range p.events {
			if !yield(e) {
				return
			}
		}
	}
}

// AttrEvents yields each event with the attributes of its endpoint. The slice
// aliases the path's storage and must not be modified or retained.
func (p *Path) AttrEvents() iter.Seq2[Event, []float32] {
	return func(yield func(Event, []float32) bool) {
		for i, e := range p.events {
			a := p.attrs[i*p.numAttrs : (i+1)*p.numAttrs : (i+1)*p.numAttrs]
			if !yield(e, a) {
				return
			}
		}
	}
}

// Builder constructs an attributed Path.
//
//	b := path.NewBuilder(4)
//	b.Begin(splatter.Pt(0, 0), red[:])
//	b.LineTo(splatter.Pt(10, 0), blue[:])
//	b.End(false)
//	p := b.Build()
//
// Attribute slices whose length differs from the builder's attribute count
// cause a panic.
type Builder struct {
	numAttrs   int
	events     []Event
	attrs      []float32
	open       bool
	current    splatter.Point
	first      splatter.Point
	firstAttrs int // offset of the open sub-path's first attributes
}

// NewBuilder creates a builder for paths with numAttrs attributes per
// endpoint.
func NewBuilder(numAttrs int) *Builder {
	if numAttrs < 0 {
		panic("path: negative attribute count")
	}
	return &Builder{numAttrs: numAttrs}
}

// Reserve grows the builder's storage for n more events.
func (b *Builder) Reserve(n int) {
	if cap(b.events)-len(b.events) < n {
		events := make([]Event, len(b.events), len(b.events)+n)
		copy(events, b.events)
		b.events = events
		attrs := make([]float32, len(b.attrs), len(b.attrs)+n*b.numAttrs)
		copy(attrs, b.attrs)
		b.attrs = attrs
	}
}

func (b *Builder) push(e Event, attrs []float32) {
	if len(attrs) != b.numAttrs {
		panic(fmt.Sprintf("path: got %d attributes, builder expects %d", len(attrs), b.numAttrs))
	}
	b.events = append(b.events, e)
	b.attrs = append(b.attrs, attrs...)
}

// Begin starts a new sub-path at p. An open sub-path is ended first.
func (b *Builder) Begin(p splatter.Point, attrs []float32) *Builder {
	if b.open {
		b.End(false)
	}
	b.firstAttrs = len(b.attrs)
	b.push(Begin(p), attrs)
	b.open = true
	b.current, b.first = p, p
	return b
}

// LineTo adds a line to p, starting a sub-path at the current point if none
// is open.
func (b *Builder) LineTo(p splatter.Point, attrs []float32) *Builder {
	b.ensureOpen(attrs)
	b.push(Line(b.current, p), attrs)
	b.current = p
	return b
}

// QuadraticTo adds a quadratic Bezier to p.
func (b *Builder) QuadraticTo(ctrl, p splatter.Point, attrs []float32) *Builder {
	b.ensureOpen(attrs)
	b.push(Quadratic(b.current, ctrl, p), attrs)
	b.current = p
	return b
}

// CubicTo adds a cubic Bezier to p.
func (b *Builder) CubicTo(ctrl1, ctrl2, p splatter.Point, attrs []float32) *Builder {
	b.ensureOpen(attrs)
	b.push(Cubic(b.current, ctrl1, ctrl2, p), attrs)
	b.current = p
	return b
}

func (b *Builder) ensureOpen(attrs []float32) {
	if !b.open {
		b.Begin(b.current, attrs)
	}
}

// IsOpen reports whether a sub-path is open.
func (b *Builder) IsOpen() bool { return b.open }

// End terminates the open sub-path; close joins it back to its first point.
// End without an open sub-path does nothing.
func (b *Builder) End(close bool) *Builder {
	if !b.open {
		return b
	}
	first := b.attrs[b.firstAttrs : b.firstAttrs+b.numAttrs]
	// Copy: push may reallocate the slice first aliases.
	b.push(End(b.current, b.first, close), append([]float32(nil), first...))
	b.open = false
	if close {
		b.current = b.first
	}
	return b
}

// Build returns the path, ending any open sub-path. The builder is reset and
// may be reused.
func (b *Builder) Build() *Path {
	b.End(false)
	p := &Path{numAttrs: b.numAttrs, events: b.events, attrs: b.attrs}
	b.events, b.attrs = nil, nil
	b.current, b.first = splatter.Point{}, splatter.Point{}
	return p
}
