// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import (
	"iter"

	"github.com/gogpu/splatter"
)

// Attr records which optional attributes a Vertex carries.
type Attr uint8

// Vertex attributes.
const (
	AttrColor Attr = 1 << iota
	AttrTexCoords
	AttrNormal
)

// Vertex is one logical mesh vertex: a position plus the attributes that were
// attached to it. Attributes that were never attached read as their defaults.
type Vertex struct {
	Position  splatter.Point3
	Color     splatter.Color
	TexCoords splatter.Point
	Normal    splatter.Point3

	attrs Attr
}

// Pt returns a vertex with only a position.
func Pt(p splatter.Point3) Vertex {
	return Vertex{Position: p, Color: splatter.DefaultVertexColor}
}

// WithColor returns v with a color attached.
func (v Vertex) WithColor(c splatter.Color) Vertex {
	v.Color = c
	v.attrs |= AttrColor
	return v
}

// WithTexCoords returns v with texture coordinates attached.
func (v Vertex) WithTexCoords(tc splatter.Point) Vertex {
	v.TexCoords = tc
	v.attrs |= AttrTexCoords
	return v
}

// WithNormal returns v with a normal attached.
func (v Vertex) WithNormal(n splatter.Point3) Vertex {
	v.Normal = n
	v.attrs |= AttrNormal
	return v
}

// Without returns v with the given attributes reset to their defaults.
func (v Vertex) Without(a Attr) Vertex {
	if a&AttrColor != 0 {
		v.Color = splatter.DefaultVertexColor
	}
	if a&AttrTexCoords != 0 {
		v.TexCoords = splatter.Point{}
	}
	if a&AttrNormal != 0 {
		v.Normal = splatter.Point3{}
	}
	v.attrs &^= a
	return v
}

// Has reports whether every attribute in a was attached to v.
func (v Vertex) Has(a Attr) bool {
	return v.attrs&a == a
}

// Attrs returns the attached attribute set.
func (v Vertex) Attrs() Attr {
	return v.attrs
}

// ColoredPoints adapts a stream of 3D points into draw vertices that all share
// one color and carry default texture coordinates.
func ColoredPoints(points iter.Seq[splatter.Point3], c splatter.Color) iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for p := range points {
			if !yield(Pt(p).WithColor(c).WithTexCoords(splatter.Point{})) {
				return
			}
		}
	}
}

// ColoredPoint2s is like ColoredPoints for 2D points at z = 0.
func ColoredPoint2s(points iter.Seq[splatter.Point], c splatter.Color) iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for p := range points {
			if !yield(Pt(p.To3(0)).WithColor(c).WithTexCoords(splatter.Point{})) {
				return
			}
		}
	}
}

// PerPointColors adapts (point, color) pairs into draw vertices.
func PerPointColors(points iter.Seq[splatter.ColoredPoint]) iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for cp := range points {
			if !yield(Pt(cp.Point.To3(0)).WithColor(cp.Color).WithTexCoords(splatter.Point{})) {
				return
			}
		}
	}
}
