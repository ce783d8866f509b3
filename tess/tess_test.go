// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

import (
	"errors"
	"slices"
	"testing"

	"github.com/chewxy/math32"

	"github.com/gogpu/splatter"
	"github.com/gogpu/splatter/path"
)

func pt(x, y float32) splatter.Point { return splatter.Pt(x, y) }

func polygon(close bool, pts ...splatter.Point) []path.Event {
	return slices.Collect(path.FromPolyline(close, pts))
}

func square(x, y, size float32, ccw bool) []splatter.Point {
	pts := []splatter.Point{pt(x, y), pt(x+size, y), pt(x+size, y+size), pt(x, y+size)}
	if !ccw {
		slices.Reverse(pts)
	}
	return pts
}

// area sums the absolute areas of the triangles in b.
func area(b *Buffers) float32 {
	var sum float32
	for i := 0; i+2 < len(b.Indices); i += 3 {
		a, c, d := b.Positions[b.Indices[i]], b.Positions[b.Indices[i+1]], b.Positions[b.Indices[i+2]]
		sum += math32.Abs(c.Sub(a).Cross(d.Sub(a))) / 2
	}
	return sum
}

type bbox struct{ minX, minY, maxX, maxY float32 }

func bounds(b *Buffers) bbox {
	bb := bbox{math32.Inf(1), math32.Inf(1), math32.Inf(-1), math32.Inf(-1)}
	for _, i := range b.Indices {
		p := b.Positions[i]
		bb.minX, bb.minY = min(bb.minX, p.X), min(bb.minY, p.Y)
		bb.maxX, bb.maxY = max(bb.maxX, p.X), max(bb.maxY, p.Y)
	}
	return bb
}

func near(a, b, eps float32) bool { return math32.Abs(a-b) <= eps }

// checkIndices fails if a triangle references a vertex that was not emitted.
func checkIndices(t *testing.T, b *Buffers) {
	t.Helper()
	for _, i := range b.Indices {
		if int(i) >= len(b.Positions) {
			t.Fatalf("index %d out of range (%d vertices)", i, len(b.Positions))
		}
	}
}

func TestFillClosedTriangleArea(t *testing.T) {
	b := NewBuffers(0)
	err := NewFillTessellator().Tessellate(slices.Values(polygon(true, pt(0, 0), pt(10, 0), pt(10, 10))), DefaultFillOptions(), b)
	if err != nil {
		t.Fatalf("Tessellate() error: %v", err)
	}
	checkIndices(t, b)
	if b.TriangleCount() < 1 {
		t.Fatal("no triangles")
	}
	if got := area(b); !near(got, 50, 0.01) {
		t.Errorf("area = %v, want 50", got)
	}
}

func TestFillEmpty(t *testing.T) {
	b := NewBuffers(4)
	if err := NewFillTessellator().Tessellate(slices.Values(polygon(true)), DefaultFillOptions(), b); err != nil {
		t.Fatalf("Tessellate(empty) error: %v", err)
	}
	if len(b.Positions) != 0 || len(b.Indices) != 0 {
		t.Errorf("empty fill produced %d vertices %d indices", len(b.Positions), len(b.Indices))
	}
}

func TestFillDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		events []path.Event
	}{
		{"two points", polygon(true, pt(0, 0), pt(5, 5))},
		{"collinear", polygon(true, pt(0, 0), pt(5, 0), pt(10, 0))},
		{"repeated point", polygon(true, pt(1, 1), pt(1, 1), pt(1, 1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffers(0)
			if err := NewFillTessellator().Tessellate(slices.Values(tt.events), DefaultFillOptions(), b); err != nil {
				t.Fatalf("Tessellate() error: %v", err)
			}
			if b.TriangleCount() != 0 {
				t.Errorf("got %d triangles, want 0", b.TriangleCount())
			}
		})
	}
}

func TestFillRules(t *testing.T) {
	tests := []struct {
		name     string
		innerCCW bool
		rule     FillRule
		want     float32
	}{
		{"even-odd same orientation", true, EvenOdd, 84},
		{"even-odd opposite orientation", false, EvenOdd, 84},
		{"non-zero same orientation", true, NonZero, 100},
		{"non-zero opposite orientation", false, NonZero, 84},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := append(polygon(true, square(0, 0, 10, true)...), polygon(true, square(3, 3, 4, tt.innerCCW)...)...)
			b := NewBuffers(0)
			err := NewFillTessellator().Tessellate(slices.Values(events), DefaultFillOptions().WithRule(tt.rule), b)
			if err != nil {
				t.Fatalf("Tessellate() error: %v", err)
			}
			checkIndices(t, b)
			if got := area(b); !near(got, tt.want, 0.01) {
				t.Errorf("area = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFillIslandInsideHole(t *testing.T) {
	var events []path.Event
	events = append(events, polygon(true, square(0, 0, 30, true)...)...)
	events = append(events, polygon(true, square(5, 5, 20, true)...)...)
	events = append(events, polygon(true, square(10, 10, 10, true)...)...)
	b := NewBuffers(0)
	if err := NewFillTessellator().Tessellate(slices.Values(events), DefaultFillOptions(), b); err != nil {
		t.Fatalf("Tessellate() error: %v", err)
	}
	// 900 - 400 + 100
	if got := area(b); !near(got, 600, 0.05) {
		t.Errorf("area = %v, want 600", got)
	}
}

func TestFillCurveWithinTolerance(t *testing.T) {
	// A circle of radius 10 from four cubics.
	const k = 0.5522847498
	r := float32(10)
	events := []path.Event{
		path.Begin(pt(r, 0)),
		path.Cubic(pt(r, 0), pt(r, r*k), pt(r*k, r), pt(0, r)),
		path.Cubic(pt(0, r), pt(-r*k, r), pt(-r, r*k), pt(-r, 0)),
		path.Cubic(pt(-r, 0), pt(-r, -r*k), pt(-r*k, -r), pt(0, -r)),
		path.Cubic(pt(0, -r), pt(r*k, -r), pt(r, -r*k), pt(r, 0)),
		path.End(pt(r, 0), pt(r, 0), true),
	}
	b := NewBuffers(0)
	if err := NewFillTessellator().Tessellate(slices.Values(events), DefaultFillOptions().WithTolerance(0.01), b); err != nil {
		t.Fatalf("Tessellate() error: %v", err)
	}
	want := math32.Pi * r * r
	if got := area(b); math32.Abs(got-want)/want > 0.01 {
		t.Errorf("circle area = %v, want about %v", got, want)
	}
}

func TestFillAttributesExactAtSourcePoints(t *testing.T) {
	colors := map[splatter.Point][]float32{
		pt(0, 0):   {1, 0, 0, 1},
		pt(10, 0):  {0, 1, 0, 1},
		pt(10, 10): {0, 0, 1, 1},
		pt(0, 10):  {0.25, 0.5, 0.75, 0.5},
	}
	b := path.NewBuilder(4)
	b.Begin(pt(0, 0), colors[pt(0, 0)])
	b.LineTo(pt(10, 0), colors[pt(10, 0)])
	b.LineTo(pt(10, 10), colors[pt(10, 10)])
	b.LineTo(pt(0, 10), colors[pt(0, 10)])
	b.End(true)

	out := NewBuffers(4)
	if err := NewFillTessellator().TessellatePath(b.Build(), DefaultFillOptions(), out); err != nil {
		t.Fatalf("TessellatePath() error: %v", err)
	}
	for i, p := range out.Positions {
		want, ok := colors[p]
		if !ok {
			continue
		}
		got := out.VertexAttributes(i)
		for c := range want {
			if !near(got[c], want[c], 1e-5) {
				t.Errorf("vertex %v attrs = %v, want %v", p, got, want)
				break
			}
		}
	}
}

func TestFillCurveInterpolatesAttributes(t *testing.T) {
	b := path.NewBuilder(1)
	b.Begin(pt(0, 0), []float32{0})
	b.QuadraticTo(pt(5, 10), pt(10, 0), []float32{1})
	b.End(true)
	out := NewBuffers(1)
	if err := NewFillTessellator().TessellatePath(b.Build(), DefaultFillOptions(), out); err != nil {
		t.Fatalf("TessellatePath() error: %v", err)
	}
	if len(out.Positions) < 4 {
		t.Fatalf("got %d vertices, want a flattened curve", len(out.Positions))
	}
	for i, p := range out.Positions {
		a := out.VertexAttributes(i)[0]
		if a < 0 || a > 1 {
			t.Errorf("vertex %v attribute %v outside [0,1]", p, a)
		}
		if p == pt(10, 0) && a != 1 {
			t.Errorf("endpoint attribute = %v, want 1", a)
		}
	}
}

func TestFillIdempotent(t *testing.T) {
	events := append(polygon(true, square(0, 0, 10, true)...), polygon(true, square(2, 2, 3, false)...)...)
	tess := NewFillTessellator()
	run := func() *Buffers {
		b := NewBuffers(0)
		if err := tess.Tessellate(slices.Values(events), DefaultFillOptions(), b); err != nil {
			t.Fatalf("Tessellate() error: %v", err)
		}
		return b
	}
	a, b := run(), run()
	if !slices.Equal(a.Positions, b.Positions) || !slices.Equal(a.Indices, b.Indices) {
		t.Error("repeated tessellation produced different output")
	}
}

func TestFillErrors(t *testing.T) {
	tests := []struct {
		name   string
		events []path.Event
		opts   FillOptions
		want   error
	}{
		{"zero tolerance", polygon(true, square(0, 0, 1, true)...), DefaultFillOptions().WithTolerance(0), ErrInvalidTolerance},
		{"nan tolerance", polygon(true, square(0, 0, 1, true)...), DefaultFillOptions().WithTolerance(math32.NaN()), ErrInvalidTolerance},
		{"nan position", polygon(true, pt(0, 0), pt(math32.NaN(), 1), pt(1, 1)), DefaultFillOptions(), ErrInvalidPosition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffers(0)
			err := NewFillTessellator().Tessellate(slices.Values(tt.events), tt.opts, b)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFillAbortsOnPositionError(t *testing.T) {
	b := NewBuffers(0)
	err := NewFillTessellator().Tessellate(slices.Values(polygon(true, pt(0, 0), pt(math32.Inf(1), 0), pt(1, 1))), DefaultFillOptions(), b)
	if err == nil {
		t.Fatal("expected error")
	}
	if !b.Aborted() {
		t.Error("AbortGeometry was not called")
	}
}

func TestStrokeTwoPointLine(t *testing.T) {
	b := NewBuffers(0)
	opts := DefaultStrokeOptions().WithWidth(8)
	if err := NewStrokeTessellator().Tessellate(slices.Values(polygon(false, pt(0, 0), pt(10, 0))), opts, b); err != nil {
		t.Fatalf("Tessellate() error: %v", err)
	}
	checkIndices(t, b)
	if b.TriangleCount() == 0 {
		t.Fatal("no triangles")
	}
	bb := bounds(b)
	if !near(bb.minY, -4, 1e-4) || !near(bb.maxY, 4, 1e-4) {
		t.Errorf("y range = [%v, %v], want [-4, 4]", bb.minY, bb.maxY)
	}
	if !near(bb.minX, 0, 1e-4) || !near(bb.maxX, 10, 1e-4) {
		t.Errorf("x range = [%v, %v], want [0, 10]", bb.minX, bb.maxX)
	}
	if got := area(b); !near(got, 80, 0.01) {
		t.Errorf("area = %v, want 80", got)
	}
}

func TestStrokeCaps(t *testing.T) {
	// Round caps are polygons within the tolerance of the pen circle.
	tests := []struct {
		name       string
		cap        LineCap
		minX, maxX float32
		eps        float32
	}{
		{"butt", CapButt, 0, 10, 1e-3},
		{"square", CapSquare, -2, 12, 1e-3},
		{"round", CapRound, -2, 12, DefaultTolerance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffers(0)
			opts := DefaultStrokeOptions().WithWidth(4).WithCaps(tt.cap)
			if err := NewStrokeTessellator().Tessellate(slices.Values(polygon(false, pt(0, 0), pt(10, 0))), opts, b); err != nil {
				t.Fatalf("Tessellate() error: %v", err)
			}
			bb := bounds(b)
			if !near(bb.minX, tt.minX, tt.eps) || !near(bb.maxX, tt.maxX, tt.eps) {
				t.Errorf("x range = [%v, %v], want [%v, %v]", bb.minX, bb.maxX, tt.minX, tt.maxX)
			}
			if !near(bb.minY, -2, 1e-3) || !near(bb.maxY, 2, 1e-3) {
				t.Errorf("y range = [%v, %v], want [-2, 2]", bb.minY, bb.maxY)
			}
		})
	}
}

func TestStrokeJoins(t *testing.T) {
	// Right angle turning left at (10,0); outer corner at (12,-2).
	events := polygon(false, pt(0, 0), pt(10, 0), pt(10, 10))
	tests := []struct {
		name  string
		opts  StrokeOptions
		check func(t *testing.T, bb bbox)
	}{
		{"miter reaches the corner", DefaultStrokeOptions().WithWidth(4).WithJoin(JoinMiter), func(t *testing.T, bb bbox) {
			if !near(bb.maxX, 12, 1e-3) || !near(bb.minY, -2, 1e-3) {
				t.Errorf("bbox = %+v, want maxX 12 minY -2", bb)
			}
		}},
		{"miter limit falls back to bevel", DefaultStrokeOptions().WithWidth(4).WithJoin(JoinMiter).WithMiterLimit(1.2), func(t *testing.T, bb bbox) {
			if !near(bb.maxX, 12, 1e-3) {
				t.Errorf("bbox = %+v, want maxX 12", bb)
			}
		}},
		{"round stays on the circle", DefaultStrokeOptions().WithWidth(4).WithJoin(JoinRound), func(t *testing.T, bb bbox) {
			if bb.maxX > 12+1e-3 || bb.minY < -2-1e-3 {
				t.Errorf("bbox = %+v, want within the pen circle", bb)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffers(0)
			if err := NewStrokeTessellator().Tessellate(slices.Values(events), tt.opts, b); err != nil {
				t.Fatalf("Tessellate() error: %v", err)
			}
			checkIndices(t, b)
			tt.check(t, bounds(b))
		})
	}
}

func TestStrokeMiterAreaExceedsBevel(t *testing.T) {
	events := polygon(false, pt(0, 0), pt(10, 0), pt(10, 10))
	strokeArea := func(j LineJoin) float32 {
		b := NewBuffers(0)
		if err := NewStrokeTessellator().Tessellate(slices.Values(events), DefaultStrokeOptions().WithWidth(4).WithJoin(j), b); err != nil {
			t.Fatalf("Tessellate() error: %v", err)
		}
		return area(b)
	}
	bevel, round, miter := strokeArea(JoinBevel), strokeArea(JoinRound), strokeArea(JoinMiter)
	if !(bevel < round && round < miter) {
		t.Errorf("areas bevel=%v round=%v miter=%v, want increasing", bevel, round, miter)
	}
}

func TestStrokeClosedJoinsSeam(t *testing.T) {
	b := NewBuffers(0)
	opts := DefaultStrokeOptions().WithWidth(2)
	if err := NewStrokeTessellator().Tessellate(slices.Values(polygon(true, square(0, 0, 10, true)...)), opts, b); err != nil {
		t.Fatalf("Tessellate() error: %v", err)
	}
	bb := bounds(b)
	want := bbox{-1, -1, 11, 11}
	if !near(bb.minX, want.minX, 1e-3) || !near(bb.minY, want.minY, 1e-3) ||
		!near(bb.maxX, want.maxX, 1e-3) || !near(bb.maxY, want.maxY, 1e-3) {
		t.Errorf("bbox = %+v, want %+v", bb, want)
	}
}

func TestStrokeDot(t *testing.T) {
	events := []path.Event{path.Begin(pt(5, 5)), path.End(pt(5, 5), pt(5, 5), false)}
	tests := []struct {
		cap  LineCap
		tris bool
	}{
		{CapButt, false},
		{CapRound, true},
		{CapSquare, true},
	}
	for _, tt := range tests {
		t.Run(tt.cap.String(), func(t *testing.T) {
			b := NewBuffers(0)
			if err := NewStrokeTessellator().Tessellate(slices.Values(events), DefaultStrokeOptions().WithWidth(2).WithCaps(tt.cap), b); err != nil {
				t.Fatalf("Tessellate() error: %v", err)
			}
			if got := b.TriangleCount() > 0; got != tt.tris {
				t.Errorf("triangles produced = %v, want %v", got, tt.tris)
			}
		})
	}
}

func TestStrokeAttributesFollowSourcePoints(t *testing.T) {
	b := path.NewBuilder(4)
	b.Begin(pt(0, 0), []float32{1, 0, 0, 1})
	b.LineTo(pt(10, 0), []float32{0, 1, 0, 1})
	b.LineTo(pt(10, 10), []float32{0, 0, 1, 1})
	b.End(false)

	out := NewBuffers(4)
	opts := DefaultStrokeOptions().WithWidth(2).WithJoin(JoinRound)
	if err := NewStrokeTessellator().TessellatePath(b.Build(), opts, out); err != nil {
		t.Fatalf("TessellatePath() error: %v", err)
	}
	var pivots int
	for i, p := range out.Positions {
		if p != pt(10, 0) {
			continue
		}
		pivots++
		got := out.VertexAttributes(i)
		want := []float32{0, 1, 0, 1}
		for c := range want {
			if !near(got[c], want[c], 1e-5) {
				t.Errorf("join pivot attrs = %v, want %v", got, want)
				break
			}
		}
	}
	if pivots == 0 {
		t.Error("no vertex at the join source point")
	}
}

func TestStrokeErrors(t *testing.T) {
	events := polygon(false, pt(0, 0), pt(1, 0))
	tests := []struct {
		name string
		opts StrokeOptions
		want error
	}{
		{"zero width", DefaultStrokeOptions().WithWidth(0), ErrInvalidWidth},
		{"negative width", DefaultStrokeOptions().WithWidth(-1), ErrInvalidWidth},
		{"inf width", DefaultStrokeOptions().WithWidth(math32.Inf(1)), ErrInvalidWidth},
		{"negative tolerance", DefaultStrokeOptions().WithTolerance(-1), ErrInvalidTolerance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewStrokeTessellator().Tessellate(slices.Values(events), tt.opts, NewBuffers(0))
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestStrokeIdempotent(t *testing.T) {
	events := polygon(true, pt(0, 0), pt(10, 3), pt(4, 9))
	opts := DefaultStrokeOptions().WithWidth(3).WithJoin(JoinRound)
	tess := NewStrokeTessellator()
	run := func() *Buffers {
		b := NewBuffers(0)
		if err := tess.Tessellate(slices.Values(events), opts, b); err != nil {
			t.Fatalf("Tessellate() error: %v", err)
		}
		return b
	}
	a, b := run(), run()
	if !slices.Equal(a.Positions, b.Positions) || !slices.Equal(a.Indices, b.Indices) {
		t.Error("repeated tessellation produced different output")
	}
}

// regular returns the n corners of a regular polygon of radius r centered at
// the origin, counter-clockwise.
func regular(n int, r float32) []splatter.Point {
	pts := make([]splatter.Point, n)
	for i := range pts {
		a := 2 * math32.Pi * float32(i) / float32(n)
		pts[i] = pt(r*math32.Cos(a), r*math32.Sin(a))
	}
	return pts
}

func regularArea(n int, r float32) float32 {
	return float32(n) / 2 * r * r * math32.Sin(2*math32.Pi/float32(n))
}

func TestFillRegularPolygonArea(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		numAttrs int
	}{
		{"hexagon", 6, 0},
		{"hexagon with attributes", 6, 4},
		{"64-gon", 64, 0},
		{"64-gon with attributes", 64, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const r = 10
			b := path.NewBuilder(tt.numAttrs)
			for i, p := range regular(tt.n, r) {
				attrs := make([]float32, tt.numAttrs)
				for k := range attrs {
					attrs[k] = float32(i) / float32(tt.n)
				}
				if i == 0 {
					b.Begin(p, attrs)
				} else {
					b.LineTo(p, attrs)
				}
			}
			b.End(true)

			out := NewBuffers(tt.numAttrs)
			if err := NewFillTessellator().TessellatePath(b.Build(), DefaultFillOptions(), out); err != nil {
				t.Fatalf("TessellatePath() error: %v", err)
			}
			checkIndices(t, out)
			if got, want := out.TriangleCount(), tt.n-2; got != want {
				t.Errorf("got %d triangles, want %d", got, want)
			}
			want := regularArea(tt.n, r)
			if got := area(out); !near(got, want, 0.01) {
				t.Errorf("area = %v, want %v", got, want)
			}
		})
	}
}

func TestFillConcaveArea(t *testing.T) {
	// An L shape with points in the middle of its edges.
	events := polygon(true,
		pt(0, 0), pt(5, 0), pt(10, 0), pt(10, 5), pt(5, 5), pt(5, 10), pt(2, 10), pt(0, 10))
	b := NewBuffers(0)
	if err := NewFillTessellator().Tessellate(slices.Values(events), DefaultFillOptions(), b); err != nil {
		t.Fatalf("Tessellate() error: %v", err)
	}
	if got := area(b); !near(got, 75, 0.01) {
		t.Errorf("area = %v, want 75", got)
	}
}

func TestFillCrossingContours(t *testing.T) {
	bowtie := polygon(true, pt(0, 0), pt(10, 10), pt(10, 0), pt(0, 10))
	overlap := func(ccw bool) []path.Event {
		return append(polygon(true, square(0, 0, 10, true)...), polygon(true, square(5, 5, 10, ccw)...)...)
	}
	tests := []struct {
		name   string
		events []path.Event
		rule   FillRule
		want   float32
	}{
		{"bowtie even-odd", bowtie, EvenOdd, 50},
		{"bowtie non-zero", bowtie, NonZero, 50},
		{"overlap non-zero", overlap(true), NonZero, 175},
		{"overlap even-odd", overlap(true), EvenOdd, 150},
		{"overlap opposite non-zero", overlap(false), NonZero, 150},
		{"crossing ring around a hole", append(overlap(true), polygon(true, square(1, 1, 2, false)...)...), NonZero, 171},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffers(0)
			err := NewFillTessellator().Tessellate(slices.Values(tt.events), DefaultFillOptions().WithRule(tt.rule), b)
			if err != nil {
				t.Fatalf("Tessellate() error: %v", err)
			}
			checkIndices(t, b)
			if got := area(b); !near(got, tt.want, 0.05) {
				t.Errorf("area = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFillCrossingInterpolatesAttributes(t *testing.T) {
	b := path.NewBuilder(1)
	b.Begin(pt(0, 0), []float32{0})
	b.LineTo(pt(10, 10), []float32{1})
	b.LineTo(pt(10, 0), []float32{0})
	b.LineTo(pt(0, 10), []float32{1})
	b.End(true)

	out := NewBuffers(1)
	if err := NewFillTessellator().TessellatePath(b.Build(), DefaultFillOptions(), out); err != nil {
		t.Fatalf("TessellatePath() error: %v", err)
	}
	found := false
	for i, p := range out.Positions {
		if p.Distance(pt(5, 5)) > 1e-4 {
			continue
		}
		found = true
		if got := out.VertexAttributes(i)[0]; !near(got, 0.5, 1e-5) {
			t.Errorf("crossing attribute = %v, want 0.5", got)
		}
	}
	if !found {
		t.Error("no vertex at the crossing point")
	}
}

func TestFillOverlappingEdgesFail(t *testing.T) {
	// The second contour runs along the bottom of the square and crosses
	// its right side.
	events := append(polygon(true, square(0, 0, 10, true)...),
		polygon(true, pt(2, 0), pt(12, 0), pt(12, 5), pt(2, -5))...)
	b := NewBuffers(0)
	err := NewFillTessellator().Tessellate(slices.Values(events), DefaultFillOptions(), b)
	if !errors.Is(err, ErrTriangulation) {
		t.Fatalf("error = %v, want %v", err, ErrTriangulation)
	}
	if !b.Aborted() {
		t.Error("AbortGeometry was not called")
	}
}
