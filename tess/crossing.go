// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/chewxy/math32"

	"github.com/gogpu/splatter"
	"github.com/gogpu/splatter/internal/flatten"
)

const (
	// hitEpsilon is the segment parameter distance within which an
	// intersection counts as an endpoint.
	hitEpsilon = 1e-5

	// parallelEpsilon bounds the sine of the angle between two edges
	// treated as parallel.
	parallelEpsilon = 1e-6

	// snapGrid is the grid on which arrangement vertices are merged.
	snapGrid = 1e-4
)

// segment is the edge from point index to index+1 of a ring.
type segment struct {
	ring, index int
	a, b        splatter.Point
}

func appendSegments(segs []segment, rings []ring) []segment {
	for r := range rings {
		pts := rings[r].c.points
		for i := range pts {
			segs = append(segs, segment{ring: r, index: i, a: pts[i], b: pts[(i+1)%len(pts)]})
		}
	}
	return segs
}

func (s segment) apart(u segment) bool {
	const e = samePointEpsilon
	return max(s.a.X, s.b.X)+e < min(u.a.X, u.b.X) || max(u.a.X, u.b.X)+e < min(s.a.X, s.b.X) ||
		max(s.a.Y, s.b.Y)+e < min(u.a.Y, u.b.Y) || max(u.a.Y, u.b.Y)+e < min(s.a.Y, s.b.Y)
}

// intersect returns the parameters along s and u of the point where they
// meet. Parallel segments never meet.
func intersect(s, u segment) (ts, tu float32, ok bool) {
	d, e := s.b.Sub(s.a), u.b.Sub(u.a)
	den := d.Cross(e)
	if math32.Abs(den) <= parallelEpsilon*d.Length()*e.Length() {
		return 0, 0, false
	}
	w := u.a.Sub(s.a)
	ts, tu = w.Cross(e)/den, w.Cross(d)/den
	if ts < -hitEpsilon || ts > 1+hitEpsilon || tu < -hitEpsilon || tu > 1+hitEpsilon {
		return 0, 0, false
	}
	return min(max(ts, 0), 1), min(max(tu, 0), 1), true
}

func interior(t float32) bool { return t > hitEpsilon && t < 1-hitEpsilon }

// overlaps reports whether s and u are collinear and share more than a point.
func overlaps(s, u segment) bool {
	d := s.b.Sub(s.a)
	l := d.Length()
	e := u.b.Sub(u.a)
	if l == 0 || math32.Abs(d.Cross(e)) > parallelEpsilon*l*e.Length() {
		return false
	}
	if math32.Abs(d.Cross(u.a.Sub(s.a)))/l > samePointEpsilon {
		return false
	}
	t0, t1 := d.Dot(u.a.Sub(s.a))/(l*l), d.Dot(u.b.Sub(s.a))/(l*l)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return min(t1, 1)-max(t0, 0) > hitEpsilon
}

// markCrossings flags every ring with an edge that meets another edge
// anywhere but at shared endpoints.
func markCrossings(crossed []bool, segs []segment, rings int) []bool {
	crossed = append(crossed[:0], make([]bool, rings)...)
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			if segs[i].apart(segs[j]) {
				continue
			}
			if ts, tu, ok := intersect(segs[i], segs[j]); ok && (interior(ts) || interior(tu)) {
				crossed[segs[i].ring] = true
				crossed[segs[j].ring] = true
			}
		}
	}
	return crossed
}

// windingNumber returns how many times the closed polygon winds
// counter-clockwise around p.
func windingNumber(pts []splatter.Point, p splatter.Point) int {
	w := 0
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		side := b.Sub(a).Cross(p.Sub(a))
		if a.Y <= p.Y {
			if b.Y > p.Y && side > 0 {
				w++
			}
		} else if b.Y <= p.Y && side < 0 {
			w--
		}
	}
	return w
}

// interiorPoint returns a point strictly inside the counter-clockwise
// polygon, found just left of one of its edges.
func interiorPoint(pts []splatter.Point) (splatter.Point, bool) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		d := b.Sub(a)
		l := d.Length()
		if l == 0 {
			continue
		}
		mid, n := a.Lerp(b, 0.5), d.Perp().Mul(1/l)
		for _, s := range [...]float32{1e-3, 1e-2, 1e-1} {
			if q := mid.Add(n.Mul(s * l)); containsPoint(pts, q) {
				return q, true
			}
		}
	}
	return splatter.Point{}, false
}

// arrangement is the planar graph formed by the ring edges split at every
// intersection. Half-edges come in twin pairs h, h^1.
type arrangement struct {
	numAttrs int
	pos      []splatter.Point
	attrs    []float32
	snap     map[[2]int64]int
	half     []halfEdge
	out      [][]int
	edges    map[[2]int]struct{}
	parent   []int
}

type halfEdge struct {
	from, to int
	angle    float32
	slot     int
	used     bool
}

type split struct {
	t float32
	v int
}

// face is one cycle of half-edges. Bounded faces run counter-clockwise,
// outer boundaries of connected components clockwise.
type face struct {
	verts   []int
	pts     []splatter.Point
	area    float32
	comp    int
	winding int
	filled  bool
	holes   []int
}

func (a *arrangement) vertex(p splatter.Point, attrs []float32) int {
	key := [2]int64{int64(math32.Round(p.X / snapGrid)), int64(math32.Round(p.Y / snapGrid))}
	if v, ok := a.snap[key]; ok {
		return v
	}
	v := len(a.pos)
	a.snap[key] = v
	a.pos = append(a.pos, p)
	a.attrs = append(a.attrs, attrs...)
	a.out = append(a.out, nil)
	a.parent = append(a.parent, v)
	return v
}

func (a *arrangement) find(v int) int {
	for a.parent[v] != v {
		a.parent[v] = a.parent[a.parent[v]]
		v = a.parent[v]
	}
	return v
}

func (a *arrangement) addEdge(u, v int) error {
	key := [2]int{min(u, v), max(u, v)}
	if _, dup := a.edges[key]; dup {
		return fmt.Errorf("%w: coincident edges", ErrTriangulation)
	}
	a.edges[key] = struct{}{}
	d := a.pos[v].Sub(a.pos[u])
	h := len(a.half)
	a.half = append(a.half,
		halfEdge{from: u, to: v, angle: math32.Atan2(d.Y, d.X)},
		halfEdge{from: v, to: u, angle: math32.Atan2(-d.Y, -d.X)})
	a.out[u] = append(a.out[u], h)
	a.out[v] = append(a.out[v], h+1)
	a.parent[a.find(u)] = a.find(v)
	return nil
}

// next returns the half-edge following h around the face on its left.
func (a *arrangement) next(h int) int {
	tw := h ^ 1
	around := a.out[a.half[h].to]
	return around[(a.half[tw].slot+len(around)-1)%len(around)]
}

func (t *FillTessellator) fillCrossing(numAttrs int, rule FillRule, out FillGeometryBuilder) error {
	segs := t.segs
	a := &arrangement{
		numAttrs: numAttrs,
		snap:     make(map[[2]int64]int),
		edges:    make(map[[2]int]struct{}),
	}
	splits := make([][]split, len(segs))
	for i, s := range segs {
		c := t.rings[s.ring].c
		next := (s.index + 1) % len(c.points)
		splits[i] = append(splits[i],
			split{0, a.vertex(s.a, c.attrsAt(s.index, numAttrs))},
			split{1, a.vertex(s.b, c.attrsAt(next, numAttrs))})
	}

	lerped := make([]float32, numAttrs)
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			s, u := segs[i], segs[j]
			if s.apart(u) {
				continue
			}
			if overlaps(s, u) {
				return fmt.Errorf("%w: overlapping collinear edges", ErrTriangulation)
			}
			ts, tu, ok := intersect(s, u)
			if !ok || !(interior(ts) || interior(tu)) {
				continue
			}
			p := s.a.Lerp(s.b, ts)
			switch {
			case !interior(ts):
				p = s.a.Lerp(s.b, math32.Round(ts))
			case !interior(tu):
				p = u.a.Lerp(u.b, math32.Round(tu))
			}
			c := t.rings[s.ring].c
			attrs := flatten.Lerp(lerped, c.attrsAt(s.index, numAttrs), c.attrsAt((s.index+1)%len(c.points), numAttrs), ts)
			v := a.vertex(p, attrs)
			splits[i] = append(splits[i], split{ts, v})
			splits[j] = append(splits[j], split{tu, v})
		}
	}

	for _, sp := range splits {
		slices.SortFunc(sp, func(x, y split) int { return cmp.Compare(x.t, y.t) })
		for k := 1; k < len(sp); k++ {
			if sp[k].v == sp[k-1].v {
				continue
			}
			if err := a.addEdge(sp[k-1].v, sp[k].v); err != nil {
				return err
			}
		}
	}
	for _, around := range a.out {
		slices.SortFunc(around, func(x, y int) int { return cmp.Compare(a.half[x].angle, a.half[y].angle) })
		for k, h := range around {
			a.half[h].slot = k
		}
	}

	faces := a.faces()
	var bounded, boundaries []int
	for i := range faces {
		f := &faces[i]
		switch {
		case f.area > minContourArea:
			q, ok := interiorPoint(f.pts)
			if !ok {
				continue
			}
			for _, r := range t.rings {
				f.winding += windingNumber(r.c.points, q)
			}
			f.filled = rule.fills(f.winding)
			bounded = append(bounded, i)
		case f.area < -minContourArea:
			boundaries = append(boundaries, i)
		}
	}

	// A component lying inside a face of another component cuts a hole in it.
	for _, b := range boundaries {
		at := faces[b].pts[0]
		best := -1
		for _, f := range bounded {
			if faces[f].comp == faces[b].comp || !containsPoint(faces[f].pts, at) {
				continue
			}
			if best < 0 || faces[f].area < faces[best].area {
				best = f
			}
		}
		if best >= 0 && faces[best].filled {
			faces[best].holes = append(faces[best].holes, b)
		}
	}

	for _, f := range bounded {
		if !faces[f].filled {
			continue
		}
		outer, err := a.contour(faces[f])
		if err != nil {
			return err
		}
		holes := make([]*contour, len(faces[f].holes))
		for k, h := range faces[f].holes {
			if holes[k], err = a.contour(faces[h]); err != nil {
				return err
			}
		}
		if err := emitPolygon(outer, holes, numAttrs, out); err != nil {
			return err
		}
	}
	return nil
}

// faces walks every half-edge cycle of the graph.
func (a *arrangement) faces() []face {
	var faces []face
	for h := range a.half {
		if a.half[h].used {
			continue
		}
		var f face
		for e := h; !a.half[e].used; e = a.next(e) {
			a.half[e].used = true
			f.verts = append(f.verts, a.half[e].from)
			f.pts = append(f.pts, a.pos[a.half[e].from])
		}
		f.area = signedArea(f.pts)
		f.comp = a.find(f.verts[0])
		faces = append(faces, f)
	}
	return faces
}

// contour copies a face cycle into a contour. Cycles that pass through a
// vertex twice cannot be triangulated.
func (a *arrangement) contour(f face) (*contour, error) {
	c := &contour{closed: true}
	seen := make(map[int]struct{}, len(f.verts))
	for _, v := range f.verts {
		if _, twice := seen[v]; twice {
			return nil, fmt.Errorf("%w: face touches itself at %v", ErrTriangulation, a.pos[v])
		}
		seen[v] = struct{}{}
		c.push(a.pos[v], a.attrs[v*a.numAttrs:(v+1)*a.numAttrs])
	}
	return c, nil
}
