// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

import "github.com/chewxy/math32"

// DefaultTolerance is the default maximum distance between a curve and its
// flattened approximation.
const DefaultTolerance = 0.1

// FillRule selects which regions of a path are inside.
type FillRule uint8

const (
	// EvenOdd fills regions enclosed an odd number of times.
	EvenOdd FillRule = iota
	// NonZero fills regions with a non-zero winding number.
	NonZero
)

// String returns the name of the rule.
func (r FillRule) String() string {
	switch r {
	case EvenOdd:
		return "EvenOdd"
	case NonZero:
		return "NonZero"
	default:
		return "Unknown"
	}
}

func (r FillRule) inside(winding, depth int) bool {
	if r == NonZero {
		return winding != 0
	}
	return depth%2 == 1
}

// fills reports whether a region with the given winding number is inside.
func (r FillRule) fills(winding int) bool {
	if r == NonZero {
		return winding != 0
	}
	return winding&1 == 1
}

// FillOptions configures fill tessellation.
type FillOptions struct {
	Tolerance float32
	Rule      FillRule
}

// DefaultFillOptions returns tolerance 0.1 and the even-odd rule.
func DefaultFillOptions() FillOptions {
	return FillOptions{Tolerance: DefaultTolerance, Rule: EvenOdd}
}

// WithTolerance returns a copy with the tolerance set.
func (o FillOptions) WithTolerance(t float32) FillOptions {
	o.Tolerance = t
	return o
}

// WithRule returns a copy with the fill rule set.
func (o FillOptions) WithRule(r FillRule) FillOptions {
	o.Rule = r
	return o
}

// LineCap specifies the shape of open sub-path endpoints.
type LineCap uint8

const (
	// CapButt ends the stroke flat at the endpoint.
	CapButt LineCap = iota
	// CapRound ends the stroke with a semicircle.
	CapRound
	// CapSquare extends the stroke by half its width.
	CapSquare
)

// String returns the name of the cap.
func (c LineCap) String() string {
	switch c {
	case CapButt:
		return "Butt"
	case CapRound:
		return "Round"
	case CapSquare:
		return "Square"
	default:
		return "Unknown"
	}
}

// LineJoin specifies the shape where two segments meet.
type LineJoin uint8

const (
	// JoinMiter extends the outer edges to a point, falling back to a bevel
	// when the miter limit is exceeded.
	JoinMiter LineJoin = iota
	// JoinRound rounds the corner with a circular arc.
	JoinRound
	// JoinBevel cuts the corner with a straight edge.
	JoinBevel
)

// String returns the name of the join.
func (j LineJoin) String() string {
	switch j {
	case JoinMiter:
		return "Miter"
	case JoinRound:
		return "Round"
	case JoinBevel:
		return "Bevel"
	default:
		return "Unknown"
	}
}

// MinMiterLimit is the smallest meaningful miter limit; smaller values are
// raised to it.
const MinMiterLimit = 1.0

// StrokeOptions configures stroke tessellation.
type StrokeOptions struct {
	Tolerance  float32
	Width      float32
	StartCap   LineCap
	EndCap     LineCap
	Join       LineJoin
	MiterLimit float32
}

// DefaultStrokeOptions returns tolerance 0.1, width 1, butt caps and miter
// joins with limit 4.
func DefaultStrokeOptions() StrokeOptions {
	return StrokeOptions{
		Tolerance:  DefaultTolerance,
		Width:      1,
		StartCap:   CapButt,
		EndCap:     CapButt,
		Join:       JoinMiter,
		MiterLimit: 4,
	}
}

// WithTolerance returns a copy with the tolerance set.
func (o StrokeOptions) WithTolerance(t float32) StrokeOptions {
	o.Tolerance = t
	return o
}

// WithWidth returns a copy with the width set.
func (o StrokeOptions) WithWidth(w float32) StrokeOptions {
	o.Width = w
	return o
}

// WithCaps returns a copy with both caps set.
func (o StrokeOptions) WithCaps(c LineCap) StrokeOptions {
	o.StartCap, o.EndCap = c, c
	return o
}

// WithJoin returns a copy with the join set.
func (o StrokeOptions) WithJoin(j LineJoin) StrokeOptions {
	o.Join = j
	return o
}

// WithMiterLimit returns a copy with the miter limit set.
func (o StrokeOptions) WithMiterLimit(l float32) StrokeOptions {
	o.MiterLimit = l
	return o
}

func validTolerance(t float32) bool {
	return t > 0 && !math32.IsInf(t, 1)
}
