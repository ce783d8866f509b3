// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svgpath

import (
	"math"

	"github.com/gogpu/splatter"
	"github.com/gogpu/splatter/path"
)

// appendArc converts an SVG elliptical arc from start to end into cubic
// Beziers, using the endpoint to center conversion of the SVG implementation
// notes. Degenerate radii draw a straight line; a zero-length arc draws
// nothing. Computation is done in float64.
func appendArc(segs []path.Segment, start splatter.Point, rx, ry, rotDeg float32, large, sweep bool, end splatter.Point) []path.Segment {
	if start == end {
		return segs
	}
	if rx == 0 || ry == 0 {
		return append(segs, path.LineTo(end))
	}

	x1, y1 := float64(start.X), float64(start.Y)
	x2, y2 := float64(end.X), float64(end.Y)
	rX, rY := math.Abs(float64(rx)), math.Abs(float64(ry))
	phi := float64(rotDeg) * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	dx2, dy2 := (x1-x2)/2, (y1-y2)/2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	// Scale up radii that cannot span the endpoints.
	if lambda := x1p*x1p/(rX*rX) + y1p*y1p/(rY*rY); lambda > 1 {
		s := math.Sqrt(lambda)
		rX, rY = rX*s, rY*s
	}

	num := rX*rX*rY*rY - rX*rX*y1p*y1p - rY*rY*x1p*x1p
	den := rX*rX*y1p*y1p + rY*rY*x1p*x1p
	coef := math.Sqrt(math.Max(0, num/den))
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rX * y1p / rY
	cyp := -coef * rY * x1p / rX
	cx := cosPhi*cxp - sinPhi*cyp + (x1+x2)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y1+y2)/2

	theta1 := math.Atan2((y1p-cyp)/rY, (x1p-cxp)/rX)
	theta2 := math.Atan2((-y1p-cyp)/rY, (-x1p-cxp)/rX)
	dtheta := theta2 - theta1
	if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	} else if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(dtheta)/(math.Pi/2) - 1e-9))
	n = max(n, 1)
	delta := dtheta / float64(n)
	k := 4.0 / 3.0 * math.Tan(delta/4)

	ellipse := func(a float64) (x, y, dx, dy float64) {
		sinA, cosA := math.Sincos(a)
		x = cx + rX*cosA*cosPhi - rY*sinA*sinPhi
		y = cy + rX*cosA*sinPhi + rY*sinA*cosPhi
		dx = -rX*sinA*cosPhi - rY*cosA*sinPhi
		dy = -rX*sinA*sinPhi + rY*cosA*cosPhi
		return x, y, dx, dy
	}

	a1 := theta1
	px, py, pdx, pdy := ellipse(a1)
	for i := 0; i < n; i++ {
		a2 := a1 + delta
		qx, qy, qdx, qdy := ellipse(a2)
		to := splatter.Pt(float32(qx), float32(qy))
		if i == n-1 {
			to = end
		}
		segs = append(segs, path.CubicTo(
			splatter.Pt(float32(px+k*pdx), float32(py+k*pdy)),
			splatter.Pt(float32(qx-k*qdx), float32(qy-k*qdy)),
			to,
		))
		a1 = a2
		px, py, pdx, pdy = qx, qy, qdx, qdy
	}
	return segs
}
