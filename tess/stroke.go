// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

import (
	"iter"

	"github.com/chewxy/math32"

	"github.com/gogpu/splatter"
	"github.com/gogpu/splatter/path"
)

// StrokeTessellator triangulates the outline of paths. The zero value is
// ready to use.
//
// Each flattened segment becomes a quad extruded by half the width on both
// sides. Joins fill the wedge on the outer side of each corner and caps
// extend open ends. Sub-paths consisting of a single point produce a dot
// for round and square caps and nothing for butt caps.
//
// Pieces overlap on the inner side of corners, which is invisible for
// opaque strokes.
type StrokeTessellator struct {
	flat flattener
	s    stroker
}

// NewStrokeTessellator creates a stroke tessellator.
func NewStrokeTessellator() *StrokeTessellator {
	return &StrokeTessellator{}
}

// Tessellate strokes a plain event stream. Vertices carry no attributes.
func (t *StrokeTessellator) Tessellate(events iter.Seq[path.Event], opts StrokeOptions, out StrokeGeometryBuilder) error {
	return t.tessellate(plainEvents(events), 0, opts, out)
}

// TessellatePath strokes an attributed path. Extruded vertices take the
// attributes of the source point they are offset from.
func (t *StrokeTessellator) TessellatePath(p *path.Path, opts StrokeOptions, out StrokeGeometryBuilder) error {
	return t.tessellate(p.AttrEvents(), p.NumAttributes(), opts, out)
}

func (t *StrokeTessellator) tessellate(events iter.Seq2[path.Event, []float32], numAttrs int, opts StrokeOptions, out StrokeGeometryBuilder) error {
	if !validTolerance(opts.Tolerance) {
		return ErrInvalidTolerance
	}
	if !(opts.Width > 0) || math32.IsInf(opts.Width, 1) {
		return ErrInvalidWidth
	}
	opts.MiterLimit = max(opts.MiterLimit, MinMiterLimit)

	out.BeginGeometry()
	err := t.stroke(events, numAttrs, opts, out)
	if err != nil {
		out.AbortGeometry()
		return err
	}
	out.EndGeometry()
	return nil
}

func (t *StrokeTessellator) stroke(events iter.Seq2[path.Event, []float32], numAttrs int, opts StrokeOptions, out StrokeGeometryBuilder) error {
	contours, err := t.flat.run(events, numAttrs, opts.Tolerance)
	if err != nil {
		return err
	}
	t.s = stroker{out: out, opts: opts, hw: opts.Width / 2, n: numAttrs}
	for i := range contours {
		c := &contours[i]
		dedupe(c, numAttrs)
		if err := t.s.contour(c); err != nil {
			return err
		}
	}
	return nil
}

// stroker emits the pieces of one stroke.
type stroker struct {
	out  StrokeGeometryBuilder
	opts StrokeOptions
	hw   float32 // half width
	n    int     // attributes per point
}

func (s *stroker) vertex(p, normal splatter.Point, attrs []float32) (VertexID, error) {
	return s.out.AddStrokeVertex(StrokeVertex{Position: p, Normal: normal, Attributes: attrs})
}

func (s *stroker) contour(c *contour) error {
	pts := c.points
	switch {
	case len(pts) == 0:
		return nil
	case len(pts) == 1:
		return s.dot(pts[0], c.attrsAt(0, s.n))
	}

	segs := len(pts) - 1
	if c.closed {
		segs = len(pts)
	}
	next := func(i int) int { return (i + 1) % len(pts) }

	for i := 0; i < segs; i++ {
		if err := s.quad(pts[i], pts[next(i)], c.attrsAt(i, s.n), c.attrsAt(next(i), s.n)); err != nil {
			return err
		}
	}

	// Joins at interior points, and at every point of a closed contour.
	for i := 0; i < len(pts); i++ {
		if !c.closed && (i == 0 || i == len(pts)-1) {
			continue
		}
		prev := (i + len(pts) - 1) % len(pts)
		d0 := pts[i].Sub(pts[prev]).Normalize()
		d1 := pts[next(i)].Sub(pts[i]).Normalize()
		if err := s.join(pts[i], d0, d1, c.attrsAt(i, s.n)); err != nil {
			return err
		}
	}

	if c.closed {
		return nil
	}
	last := len(pts) - 1
	start := pts[1].Sub(pts[0]).Normalize()
	end := pts[last].Sub(pts[last-1]).Normalize()
	if err := s.cap(pts[0], start.Mul(-1), s.opts.StartCap, c.attrsAt(0, s.n)); err != nil {
		return err
	}
	return s.cap(pts[last], end, s.opts.EndCap, c.attrsAt(last, s.n))
}

// quad emits the rectangle covering segment a-b.
func (s *stroker) quad(a, b splatter.Point, attrsA, attrsB []float32) error {
	n := b.Sub(a).Normalize().Perp()
	off := n.Mul(s.hw)
	ids, err := s.vertices(
		vtx{a.Add(off), n, attrsA},
		vtx{a.Sub(off), n.Mul(-1), attrsA},
		vtx{b.Add(off), n, attrsB},
		vtx{b.Sub(off), n.Mul(-1), attrsB},
	)
	if err != nil {
		return err
	}
	s.out.AddTriangle(ids[0], ids[1], ids[2])
	s.out.AddTriangle(ids[2], ids[1], ids[3])
	return nil
}

type vtx struct {
	p, normal splatter.Point
	attrs     []float32
}

func (s *stroker) vertices(vs ...vtx) ([]VertexID, error) {
	ids := make([]VertexID, len(vs))
	for i, v := range vs {
		id, err := s.vertex(v.p, v.normal, v.attrs)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// join fills the outer wedge at p between incoming direction d0 and outgoing
// direction d1 (both unit length).
func (s *stroker) join(p, d0, d1 splatter.Point, attrs []float32) error {
	cross := d0.Cross(d1)
	dot := d0.Dot(d1)
	// Straight continuation needs no join.
	if math32.Abs(cross) < 1e-6 && dot > 0 {
		return nil
	}

	// The outer side is to the right of a left turn and vice versa.
	side := float32(1)
	if cross > 0 {
		side = -1
	}
	u0 := d0.Perp().Mul(side)
	u1 := d1.Perp().Mul(side)

	switch s.opts.Join {
	case JoinRound:
		sweep := math32.Atan2(cross, dot)
		if math32.Abs(cross) < 1e-6 {
			sweep = -side * math32.Pi
		}
		return s.fan(p, u0, sweep, attrs)
	case JoinMiter:
		// Miter length relative to half width is 1/cos(theta/2), with
		// |u0+u1| = 2 cos(theta/2).
		sum := u0.Add(u1)
		l := sum.Length()
		if l > 1e-6 && 2/l <= s.opts.MiterLimit {
			m := sum.Mul(1 / l)
			tip := p.Add(m.Mul(s.hw * 2 / l))
			ids, err := s.vertices(
				vtx{p, splatter.Point{}, attrs},
				vtx{p.Add(u0.Mul(s.hw)), u0, attrs},
				vtx{tip, m, attrs},
				vtx{p.Add(u1.Mul(s.hw)), u1, attrs},
			)
			if err != nil {
				return err
			}
			s.out.AddTriangle(ids[0], ids[1], ids[2])
			s.out.AddTriangle(ids[0], ids[2], ids[3])
			return nil
		}
	}

	// Bevel, also the miter fallback.
	ids, err := s.vertices(
		vtx{p, splatter.Point{}, attrs},
		vtx{p.Add(u0.Mul(s.hw)), u0, attrs},
		vtx{p.Add(u1.Mul(s.hw)), u1, attrs},
	)
	if err != nil {
		return err
	}
	s.out.AddTriangle(ids[0], ids[1], ids[2])
	return nil
}

// cap extends the stroke at endpoint p, where dir points away from the
// stroke.
func (s *stroker) cap(p, dir splatter.Point, lc LineCap, attrs []float32) error {
	n := dir.Perp()
	switch lc {
	case CapSquare:
		off := n.Mul(s.hw)
		ext := dir.Mul(s.hw)
		ids, err := s.vertices(
			vtx{p.Add(off), n, attrs},
			vtx{p.Sub(off), n.Mul(-1), attrs},
			vtx{p.Add(off).Add(ext), n.Add(dir).Normalize(), attrs},
			vtx{p.Sub(off).Add(ext), dir.Sub(n).Normalize(), attrs},
		)
		if err != nil {
			return err
		}
		s.out.AddTriangle(ids[0], ids[1], ids[2])
		s.out.AddTriangle(ids[2], ids[1], ids[3])
	case CapRound:
		// Half turn from the left normal through dir to the right normal.
		return s.fan(p, n, -math32.Pi, attrs)
	}
	return nil
}

// dot draws a single-point sub-path.
func (s *stroker) dot(p splatter.Point, attrs []float32) error {
	switch s.opts.StartCap {
	case CapRound:
		return s.fan(p, splatter.Pt(1, 0), 2*math32.Pi, attrs)
	case CapSquare:
		h := s.hw
		ids, err := s.vertices(
			vtx{p.Add(splatter.Pt(-h, -h)), splatter.Pt(-1, -1).Normalize(), attrs},
			vtx{p.Add(splatter.Pt(h, -h)), splatter.Pt(1, -1).Normalize(), attrs},
			vtx{p.Add(splatter.Pt(h, h)), splatter.Pt(1, 1).Normalize(), attrs},
			vtx{p.Add(splatter.Pt(-h, h)), splatter.Pt(-1, 1).Normalize(), attrs},
		)
		if err != nil {
			return err
		}
		s.out.AddTriangle(ids[0], ids[1], ids[2])
		s.out.AddTriangle(ids[0], ids[2], ids[3])
	}
	return nil
}

// fan emits a circular sector around p of radius hw, starting at unit
// direction u and turning by sweep radians (positive is counter-clockwise).
// The angular step keeps the chord within tolerance of the arc.
func (s *stroker) fan(p, u splatter.Point, sweep float32, attrs []float32) error {
	step := s.arcStep()
	steps := max(int(math32.Ceil(math32.Abs(sweep)/step)), 1)
	delta := sweep / float32(steps)

	center, err := s.vertex(p, splatter.Point{}, attrs)
	if err != nil {
		return err
	}
	prev, err := s.vertex(p.Add(u.Mul(s.hw)), u, attrs)
	if err != nil {
		return err
	}
	start := math32.Atan2(u.Y, u.X)
	for i := 1; i <= steps; i++ {
		sin, cos := math32.Sincos(start + delta*float32(i))
		dir := splatter.Pt(cos, sin)
		id, err := s.vertex(p.Add(dir.Mul(s.hw)), dir, attrs)
		if err != nil {
			return err
		}
		s.out.AddTriangle(center, prev, id)
		prev = id
	}
	return nil
}

// arcStep returns the largest angle whose chord deviates from a circle of
// radius hw by at most the tolerance.
func (s *stroker) arcStep() float32 {
	ratio := 1 - s.opts.Tolerance/s.hw
	if ratio <= 0 {
		return math32.Pi / 2
	}
	return min(2*math32.Acos(ratio), math32.Pi/2)
}
