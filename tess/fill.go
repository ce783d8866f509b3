// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ByteArena/poly2tri-go"
	"github.com/chewxy/math32"

	"github.com/gogpu/splatter"
	"github.com/gogpu/splatter/path"
)

// minContourArea is the absolute area below which a contour encloses nothing.
const minContourArea = 1e-6

// FillTessellator triangulates the interior of paths. The zero value is
// ready to use.
//
// Contours are flattened, classified into filled regions with holes
// according to the fill rule, and each region is triangulated with a
// constrained Delaunay triangulation. Contours that cross each other or
// themselves are split at their intersections first, and every face of the
// result is filled by its winding number.
type FillTessellator struct {
	flat  flattener
	rings []ring
	order   []int
	segs    []segment
	crossed []bool
}

// ring is a cleaned contour with its place in the nesting tree.
type ring struct {
	c       *contour
	area    float32
	parent  int
	winding int
	depth   int
	filled  bool
}

// NewFillTessellator creates a fill tessellator.
func NewFillTessellator() *FillTessellator {
	return &FillTessellator{}
}

// Tessellate fills a plain event stream. Vertices carry no attributes.
func (t *FillTessellator) Tessellate(events iter.Seq[path.Event], opts FillOptions, out FillGeometryBuilder) error {
	return t.tessellate(plainEvents(events), 0, opts, out)
}

// TessellatePath fills an attributed path. Every vertex receives the
// attributes interpolated at its position along the path.
func (t *FillTessellator) TessellatePath(p *path.Path, opts FillOptions, out FillGeometryBuilder) error {
	return t.tessellate(p.AttrEvents(), p.NumAttributes(), opts, out)
}

func (t *FillTessellator) tessellate(events iter.Seq2[path.Event, []float32], numAttrs int, opts FillOptions, out FillGeometryBuilder) error {
	if !validTolerance(opts.Tolerance) {
		return ErrInvalidTolerance
	}
	out.BeginGeometry()
	err := t.fill(events, numAttrs, opts, out)
	if err != nil {
		out.AbortGeometry()
		return err
	}
	out.EndGeometry()
	return nil
}

func (t *FillTessellator) fill(events iter.Seq2[path.Event, []float32], numAttrs int, opts FillOptions, out FillGeometryBuilder) error {
	contours, err := t.flat.run(events, numAttrs, opts.Tolerance)
	if err != nil {
		return err
	}

	t.rings = t.rings[:0]
	for i := range contours {
		c := &contours[i]
		// Fill closes every sub-path.
		c.closed = true
		dedupe(c, numAttrs)
		if numAttrs == 0 {
			dropCollinear(c)
		}
		if len(c.points) < 3 {
			continue
		}
		t.rings = append(t.rings, ring{c: c, area: signedArea(c.points), parent: -1})
	}

	// Rings enclosing no area are dropped unless they cross something, like
	// the two lobes of a figure eight.
	t.segs = appendSegments(t.segs[:0], t.rings)
	t.crossed = markCrossings(t.crossed, t.segs, len(t.rings))
	crossing := false
	kept := t.rings[:0]
	for i, r := range t.rings {
		crossing = crossing || t.crossed[i]
		if t.crossed[i] || math32.Abs(r.area) >= minContourArea {
			kept = append(kept, r)
		}
	}
	t.rings = kept
	if len(t.rings) == 0 {
		return nil
	}
	if crossing {
		t.segs = appendSegments(t.segs[:0], t.rings)
		return t.fillCrossing(numAttrs, opts.Rule, out)
	}

	t.classify(opts.Rule)

	for i := range t.rings {
		r := &t.rings[i]
		if !r.filled || (r.parent >= 0 && t.rings[r.parent].filled) {
			continue
		}
		if err := t.emitRegion(i, numAttrs, out); err != nil {
			return err
		}
	}
	return nil
}

// classify builds the nesting tree and decides which rings bound filled
// regions. A ring's parent is the smallest ring containing it; the winding
// number inside a ring, outside its children, is the sum of the orientation
// signs of the ring and its ancestors.
func (t *FillTessellator) classify(rule FillRule) {
	rings := t.rings
	t.order = t.order[:0]
	for i := range rings {
		t.order = append(t.order, i)
	}
	// Larger rings first so parents are classified before their children.
	slices.SortStableFunc(t.order, func(a, b int) int {
		aa, ab := math32.Abs(rings[a].area), math32.Abs(rings[b].area)
		switch {
		case aa > ab:
			return -1
		case aa < ab:
			return 1
		default:
			return 0
		}
	})

	for pos, i := range t.order {
		sample := rings[i].c.points[0]
		best := -1
		for _, j := range t.order[:pos] {
			if !containsPoint(rings[j].c.points, sample) {
				continue
			}
			if best < 0 || math32.Abs(rings[j].area) < math32.Abs(rings[best].area) {
				best = j
			}
		}
		sign := 1
		if rings[i].area < 0 {
			sign = -1
		}
		rings[i].parent = best
		if best >= 0 {
			rings[i].winding = rings[best].winding + sign
			rings[i].depth = rings[best].depth + 1
		} else {
			rings[i].winding = sign
			rings[i].depth = 1
		}
		rings[i].filled = rule.inside(rings[i].winding, rings[i].depth)
	}
}

// holes returns the rings bounding unfilled areas directly inside the filled
// region rooted at root. Filled rings nested in the region merge into it.
func (t *FillTessellator) holes(root int) []int {
	var holes []int
	var walk func(parent int)
	walk = func(parent int) {
		for i := range t.rings {
			if t.rings[i].parent != parent {
				continue
			}
			if t.rings[i].filled {
				walk(i)
			} else {
				holes = append(holes, i)
			}
		}
	}
	walk(root)
	return holes
}

func (t *FillTessellator) emitRegion(root, numAttrs int, out FillGeometryBuilder) error {
	holes := t.holes(root)
	hc := make([]*contour, len(holes))
	for i, h := range holes {
		hc[i] = t.rings[h].c
	}
	return emitPolygon(t.rings[root].c, hc, numAttrs, out)
}

// emitPolygon triangulates the area inside outer and outside every hole.
func emitPolygon(outer *contour, holes []*contour, numAttrs int, out FillGeometryBuilder) error {
	outerPts := toPoly2tri(outer.points)
	holePts := make([][]*poly2tri.Point, len(holes))
	for i, h := range holes {
		holePts[i] = toPoly2tri(h.points)
	}

	triangles, err := triangulate(outerPts, holePts)
	if err != nil {
		return err
	}

	ids := make(map[*poly2tri.Point]VertexID, len(outerPts))
	emit := func(pts []*poly2tri.Point, c *contour) error {
		for i, p := range pts {
			id, err := out.AddFillVertex(FillVertex{
				Position:   c.points[i],
				Attributes: c.attrsAt(i, numAttrs),
			})
			if err != nil {
				return err
			}
			ids[p] = id
		}
		return nil
	}
	if err := emit(outerPts, outer); err != nil {
		return err
	}
	for i, h := range holes {
		if err := emit(holePts[i], h); err != nil {
			return err
		}
	}

	for _, tri := range triangles {
		var v [3]VertexID
		for k := range v {
			id, ok := ids[tri.Points[k]]
			if !ok {
				return fmt.Errorf("%w: triangle references an unknown point", ErrTriangulation)
			}
			v[k] = id
		}
		out.AddTriangle(v[0], v[1], v[2])
	}
	return nil
}

func toPoly2tri(pts []splatter.Point) []*poly2tri.Point {
	out := make([]*poly2tri.Point, len(pts))
	for i, p := range pts {
		out[i] = poly2tri.NewPoint(float64(p.X), float64(p.Y))
	}
	return out
}

// triangulate runs the sweep, converting panics raised on degenerate input
// into ErrTriangulation.
func triangulate(outer []*poly2tri.Point, holes [][]*poly2tri.Point) (tris []*poly2tri.Triangle, err error) {
	defer func() {
		if r := recover(); r != nil {
			tris = nil
			err = fmt.Errorf("%w: %v", ErrTriangulation, r)
		}
	}()
	// The sweep sorts its point slice in place; outer must keep the contour
	// order so its points pair up with the contour positions.
	ctx := poly2tri.NewSweepContext(slices.Clone(outer), false)
	for _, h := range holes {
		ctx.AddHole(h)
	}
	ctx.Triangulate()
	return ctx.GetTriangles(), nil
}

// dropCollinear removes points lying on the line through their neighbours.
// Only used without attributes, where such points carry no information.
func dropCollinear(c *contour) {
	if len(c.points) < 3 {
		return
	}
	pts := c.points
	w := 0
	for i := range pts {
		prev := pts[(i+len(pts)-1)%len(pts)]
		if w > 0 {
			prev = pts[w-1]
		}
		next := pts[(i+1)%len(pts)]
		d0, d1 := pts[i].Sub(prev), next.Sub(pts[i])
		if math32.Abs(d0.Cross(d1)) <= 1e-9*(d0.Length()*d1.Length()) && d0.Dot(d1) > 0 {
			continue
		}
		pts[w] = pts[i]
		w++
	}
	c.points = pts[:w]
}
