// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"github.com/gogpu/splatter"
	"github.com/gogpu/splatter/path"
)

// kappa is the control point distance of a unit quarter circle.
const kappa = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)

// Line submits the segment from a to b. Lines only produce geometry when
// stroked.
func (c call) Line(a, b splatter.Point) {
	c.events(KindLine, path.FromPolyline(false, []splatter.Point{a, b}))
}

// Polyline submits an open polyline with the polyline theme colors.
func (c call) Polyline(pts ...splatter.Point) {
	c.events(KindPolyline, path.FromPolyline(false, pts))
}

// Polygon submits a closed polygon.
func (c call) Polygon(pts ...splatter.Point) {
	c.events(KindPolygon, path.FromPolyline(true, pts))
}

// Rect submits a w×h rectangle centered at (x, y).
func (c call) Rect(x, y, w, h float32) {
	hw, hh := w/2, h/2
	c.events(KindRect, path.FromPolyline(true, []splatter.Point{
		splatter.Pt(x-hw, y-hh),
		splatter.Pt(x+hw, y-hh),
		splatter.Pt(x+hw, y+hh),
		splatter.Pt(x-hw, y+hh),
	}))
}

// Ellipse submits an ellipse centered at (cx, cy) built from four cubic
// Beziers.
func (c call) Ellipse(cx, cy, rx, ry float32) {
	kx, ky := kappa*rx, kappa*ry
	pt := splatter.Pt
	c.events(KindEllipse, path.NewConverter(path.Segments(
		path.MoveTo(pt(cx+rx, cy)),
		path.CubicTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)),
		path.CubicTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)),
		path.CubicTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)),
		path.CubicTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)),
		path.ClosePath(),
	)).All())
}

// Circle submits a circle of radius r centered at (cx, cy).
func (c call) Circle(cx, cy, r float32) {
	c.Ellipse(cx, cy, r, r)
}

// Tri submits a closed triangle.
func (c call) Tri(p0, p1, p2 splatter.Point) {
	c.events(KindTri, path.FromPolyline(true, []splatter.Point{p0, p1, p2}))
}

// Quad submits a closed quadrilateral.
func (c call) Quad(p0, p1, p2, p3 splatter.Point) {
	c.events(KindQuad, path.FromPolyline(true, []splatter.Point{p0, p1, p2, p3}))
}
