// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package path

import "github.com/gogpu/splatter"

// Op identifies the type of a raw segment.
type Op uint8

// Segment operations.
const (
	OpMoveTo Op = iota
	OpLineTo
	OpQuadTo
	OpCubicTo
	OpClose
)

// Segment is one raw drawing instruction from an external curve source.
// Control points come first and the endpoint last:
//
//	MoveTo, LineTo  Points[0]
//	QuadTo          Points[0] ctrl, Points[1] end
//	CubicTo         Points[0] ctrl1, Points[1] ctrl2, Points[2] end
//	Close           no points
type Segment struct {
	Op     Op
	Points [3]splatter.Point
}

// MoveTo creates a move-to segment.
func MoveTo(p splatter.Point) Segment {
	return Segment{Op: OpMoveTo, Points: [3]splatter.Point{p}}
}

// LineTo creates a line-to segment.
func LineTo(p splatter.Point) Segment {
	return Segment{Op: OpLineTo, Points: [3]splatter.Point{p}}
}

// QuadTo creates a quadratic Bezier segment.
func QuadTo(ctrl, p splatter.Point) Segment {
	return Segment{Op: OpQuadTo, Points: [3]splatter.Point{ctrl, p}}
}

// CubicTo creates a cubic Bezier segment.
func CubicTo(ctrl1, ctrl2, p splatter.Point) Segment {
	return Segment{Op: OpCubicTo, Points: [3]splatter.Point{ctrl1, ctrl2, p}}
}

// ClosePath creates a close segment.
func ClosePath() Segment {
	return Segment{Op: OpClose}
}

// EndPoint returns the point the segment finishes at. Close segments return
// the zero point.
func (s Segment) EndPoint() splatter.Point {
	switch s.Op {
	case OpMoveTo, OpLineTo:
		return s.Points[0]
	case OpQuadTo:
		return s.Points[1]
	case OpCubicTo:
		return s.Points[2]
	default:
		return splatter.Point{}
	}
}

// SegmentSource produces raw segments in drawing order. NextSegment returns
// false once the source is exhausted.
type SegmentSource interface {
	NextSegment() (Segment, bool)
}

// SegmentSlice is a SegmentSource over a slice of segments.
type SegmentSlice struct {
	segs []Segment
	pos  int
}

// Segments returns a SegmentSource yielding segs in order.
func Segments(segs ...Segment) *SegmentSlice {
	return &SegmentSlice{segs: segs}
}

// NextSegment implements SegmentSource.
func (s *SegmentSlice) NextSegment() (Segment, bool) {
	if s.pos >= len(s.segs) {
		return Segment{}, false
	}
	seg := s.segs[s.pos]
	s.pos++
	return seg, true
}
