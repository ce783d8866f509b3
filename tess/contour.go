// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

import (
	"iter"

	"github.com/gogpu/splatter"
	"github.com/gogpu/splatter/internal/flatten"
	"github.com/gogpu/splatter/path"
)

// samePointEpsilon is the distance below which consecutive flattened points
// are merged.
const samePointEpsilon = 1e-5

// contour is one flattened sub-path with numAttrs attributes per point.
type contour struct {
	points []splatter.Point
	attrs  []float32
	closed bool
}

func (c *contour) attrsAt(i, n int) []float32 {
	return c.attrs[i*n : (i+1)*n : (i+1)*n]
}

func (c *contour) push(p splatter.Point, attrs []float32) {
	c.points = append(c.points, p)
	c.attrs = append(c.attrs, attrs...)
}

// flattener turns an attributed event stream into contours. Buffers are
// reused between calls.
type flattener struct {
	numAttrs  int
	tolerance float32
	contours  []contour
	prevAttrs []float32
	lerped    []float32
}

// plainEvents adapts an event stream without attributes.
func plainEvents(events iter.Seq[path.Event]) iter.Seq2[path.Event, []float32] {
	return func(yield func(path.Event, []float32) bool) {
		for e := range events {
			if !yield(e, nil) {
				return
			}
		}
	}
}

func eventFinite(e path.Event) bool {
	switch e.Kind {
	case path.KindQuadratic:
		return e.From.IsFinite() && e.Ctrl1.IsFinite() && e.To.IsFinite()
	case path.KindCubic:
		return e.From.IsFinite() && e.Ctrl1.IsFinite() && e.Ctrl2.IsFinite() && e.To.IsFinite()
	case path.KindEnd:
		return true
	default:
		return e.To.IsFinite()
	}
}

// run flattens events into f.contours. Edges outside a sub-path open an
// implicit one at their start point. Contours are returned even when empty of
// edges; callers decide what single points mean.
func (f *flattener) run(events iter.Seq2[path.Event, []float32], numAttrs int, tolerance float32) ([]contour, error) {
	f.numAttrs = numAttrs
	f.tolerance = tolerance
	for i := range f.contours {
		f.contours[i].points = f.contours[i].points[:0]
		f.contours[i].attrs = f.contours[i].attrs[:0]
		f.contours[i].closed = false
	}
	f.contours = f.contours[:0]
	if cap(f.prevAttrs) < numAttrs {
		f.prevAttrs = make([]float32, numAttrs)
		f.lerped = make([]float32, numAttrs)
	}
	f.prevAttrs = f.prevAttrs[:numAttrs]
	f.lerped = f.lerped[:numAttrs]

	var cur *contour
	open := false
	for e, attrs := range events {
		if !eventFinite(e) {
			return nil, ErrInvalidPosition
		}
		attrs = f.fitAttrs(attrs)

		if e.IsEdge() && !open {
			cur = f.begin(e.From, attrs)
			open = true
		}
		switch e.Kind {
		case path.KindBegin:
			cur = f.begin(e.At(), attrs)
			open = true
		case path.KindLine:
			cur.push(e.To, attrs)
		case path.KindQuadratic:
			f.curve(cur, attrs, func(emit flatten.Emit) {
				flatten.Quadratic(cur.points[len(cur.points)-1], e.Ctrl1, e.To, f.tolerance, emit)
			})
		case path.KindCubic:
			f.curve(cur, attrs, func(emit flatten.Emit) {
				flatten.Cubic(cur.points[len(cur.points)-1], e.Ctrl1, e.Ctrl2, e.To, f.tolerance, emit)
			})
		case path.KindEnd:
			if open {
				cur.closed = e.Close
				open = false
			}
		}
	}
	return f.contours, nil
}

// fitAttrs returns attrs padded or cut to the attribute count, so that
// malformed input cannot corrupt the per-point layout.
func (f *flattener) fitAttrs(attrs []float32) []float32 {
	if len(attrs) == f.numAttrs {
		return attrs
	}
	out := f.lerped[:0]
	for i := range f.numAttrs {
		var a float32
		if i < len(attrs) {
			a = attrs[i]
		}
		out = append(out, a)
	}
	return out
}

func (f *flattener) begin(p splatter.Point, attrs []float32) *contour {
	if len(f.contours) < cap(f.contours) {
		f.contours = f.contours[:len(f.contours)+1]
	} else {
		f.contours = append(f.contours, contour{})
	}
	c := &f.contours[len(f.contours)-1]
	c.points = c.points[:0]
	c.attrs = c.attrs[:0]
	c.closed = false
	c.push(p, attrs)
	return c
}

// curve flattens one curve, interpolating attributes from the previous point
// to the endpoint by the curve parameter.
func (f *flattener) curve(c *contour, end []float32, run func(flatten.Emit)) {
	n := f.numAttrs
	copy(f.prevAttrs, c.attrsAt(len(c.points)-1, n))
	end = append(f.lerped[:0:0], end...) // end may alias f.lerped
	run(func(p splatter.Point, t float32) {
		if t >= 1 {
			c.push(p, end)
			return
		}
		c.push(p, flatten.Lerp(f.lerped, f.prevAttrs, end, t))
	})
}

// dedupe removes consecutive points closer than samePointEpsilon, keeping the
// first, and for closed contours the last point when it repeats the first.
// It works in place.
func dedupe(c *contour, n int) {
	if len(c.points) == 0 {
		return
	}
	w := 1
	for r := 1; r < len(c.points); r++ {
		if c.points[r].Distance(c.points[w-1]) <= samePointEpsilon {
			continue
		}
		c.points[w] = c.points[r]
		copy(c.attrs[w*n:(w+1)*n], c.attrs[r*n:(r+1)*n])
		w++
	}
	if c.closed && w > 1 && c.points[w-1].Distance(c.points[0]) <= samePointEpsilon {
		w--
	}
	c.points = c.points[:w]
	c.attrs = c.attrs[:w*n]
}

// signedArea returns the shoelace area, positive for counter-clockwise
// contours in a y-up space.
func signedArea(pts []splatter.Point) float32 {
	var sum float32
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].Cross(pts[j])
	}
	return sum / 2
}

// containsPoint reports whether p is inside the polygon by the crossing
// number test.
func containsPoint(pts []splatter.Point, p splatter.Point) bool {
	inside := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}
