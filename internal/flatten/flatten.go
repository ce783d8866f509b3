// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package flatten approximates Bezier curves with line segments.
//
// The curve is subdivided with de Casteljau's algorithm until the control
// points lie within tolerance of the chord. Every emitted point carries its
// curve parameter t so that callers can interpolate per-endpoint attributes
// along the curve.
package flatten

import "github.com/gogpu/splatter"

// maxDepth bounds recursion for huge or non-finite input. 2^16 segments per
// curve is far beyond any sensible tolerance.
const maxDepth = 16

// Emit receives a flattened point and its curve parameter in (0, 1].
type Emit func(p splatter.Point, t float32)

// Quadratic flattens the quadratic Bezier p0, p1, p2. The start point is not
// emitted; the last emitted point is exactly p2 with t = 1.
func Quadratic(p0, p1, p2 splatter.Point, tolerance float32, emit Emit) {
	quadraticRec(p0, p1, p2, 0, 1, tolerance, 0, emit)
}

func quadraticRec(p0, p1, p2 splatter.Point, t0, t1, tolerance float32, depth int, emit Emit) {
	if depth >= maxDepth || distanceToLine(p1, p0, p2) < tolerance {
		emit(p2, t1)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)
	tm := (t0 + t1) / 2

	quadraticRec(p0, q0, q2, t0, tm, tolerance, depth+1, emit)
	quadraticRec(q2, q1, p2, tm, t1, tolerance, depth+1, emit)
}

// Cubic flattens the cubic Bezier p0, p1, p2, p3. The start point is not
// emitted; the last emitted point is exactly p3 with t = 1.
func Cubic(p0, p1, p2, p3 splatter.Point, tolerance float32, emit Emit) {
	cubicRec(p0, p1, p2, p3, 0, 1, tolerance, 0, emit)
}

func cubicRec(p0, p1, p2, p3 splatter.Point, t0, t1, tolerance float32, depth int, emit Emit) {
	dist := max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if depth >= maxDepth || dist < tolerance {
		emit(p3, t1)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)
	tm := (t0 + t1) / 2

	cubicRec(p0, q0, r0, s, t0, tm, tolerance, depth+1, emit)
	cubicRec(s, r1, q2, p3, tm, t1, tolerance, depth+1, emit)
}

// distanceToLine calculates the distance from p to the segment (a, b).
func distanceToLine(p, a, b splatter.Point) float32 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / (abLen * abLen)
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	default:
		return p.Distance(a.Add(ab.Mul(t)))
	}
}

// Lerp interpolates attribute vectors a and b at t into dst, which must have
// the same length as a and b. It returns dst.
func Lerp(dst, a, b []float32, t float32) []float32 {
	for i := range dst {
		dst[i] = a[i] + (b[i]-a[i])*t
	}
	return dst
}
