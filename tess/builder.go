// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

import (
	"math"

	"github.com/gogpu/splatter"
)

// VertexID identifies a vertex returned by a geometry builder.
type VertexID uint32

// FillVertex is a vertex produced by fill tessellation. Attributes aliases
// tessellator storage and is only valid during the AddFillVertex call.
type FillVertex struct {
	Position   splatter.Point
	Attributes []float32
}

// StrokeVertex is a vertex produced by stroke tessellation. Normal is the
// unit direction from the source point to the vertex, zero for vertices at
// the source point itself. Attributes aliases tessellator storage and is only
// valid during the AddStrokeVertex call.
type StrokeVertex struct {
	Position   splatter.Point
	Normal     splatter.Point
	Attributes []float32
}

// GeometryBuilder receives the output of a tessellator.
type GeometryBuilder interface {
	// BeginGeometry is called once before any vertex.
	BeginGeometry()
	// EndGeometry is called once after the last triangle of a successful
	// tessellation.
	EndGeometry()
	// AddTriangle adds a triangle of previously returned vertex IDs.
	AddTriangle(a, b, c VertexID)
	// AbortGeometry is called instead of EndGeometry when tessellation
	// fails.
	AbortGeometry()
}

// FillGeometryBuilder accepts fill vertices.
type FillGeometryBuilder interface {
	GeometryBuilder
	AddFillVertex(v FillVertex) (VertexID, error)
}

// StrokeGeometryBuilder accepts stroke vertices.
type StrokeGeometryBuilder interface {
	GeometryBuilder
	AddStrokeVertex(v StrokeVertex) (VertexID, error)
}

// Buffers is an in-memory geometry builder collecting vertices, their
// attributes and triangle indices. It implements both FillGeometryBuilder and
// StrokeGeometryBuilder. Successive tessellations append; call Reset to
// reuse.
type Buffers struct {
	Positions []splatter.Point
	// Attributes holds NumAttributes values per vertex.
	Attributes []float32
	Indices    []uint32

	numAttrs int
	aborted  bool
}

// NewBuffers creates buffers for vertices carrying numAttrs attributes.
func NewBuffers(numAttrs int) *Buffers {
	return &Buffers{numAttrs: numAttrs}
}

// NumAttributes returns the attribute count per vertex.
func (b *Buffers) NumAttributes() int { return b.numAttrs }

// VertexAttributes returns the attributes of vertex i.
func (b *Buffers) VertexAttributes(i int) []float32 {
	return b.Attributes[i*b.numAttrs : (i+1)*b.numAttrs]
}

// TriangleCount returns the number of triangles collected.
func (b *Buffers) TriangleCount() int { return len(b.Indices) / 3 }

// Aborted reports whether the last tessellation failed.
func (b *Buffers) Aborted() bool { return b.aborted }

// Reset clears the buffers, keeping capacity.
func (b *Buffers) Reset() {
	b.Positions = b.Positions[:0]
	b.Attributes = b.Attributes[:0]
	b.Indices = b.Indices[:0]
	b.aborted = false
}

// BeginGeometry implements GeometryBuilder.
func (b *Buffers) BeginGeometry() { b.aborted = false }

// EndGeometry implements GeometryBuilder.
func (b *Buffers) EndGeometry() {}

// AbortGeometry implements GeometryBuilder.
func (b *Buffers) AbortGeometry() { b.aborted = true }

// AddTriangle implements GeometryBuilder.
func (b *Buffers) AddTriangle(v0, v1, v2 VertexID) {
	b.Indices = append(b.Indices, uint32(v0), uint32(v1), uint32(v2))
}

// AddFillVertex implements FillGeometryBuilder.
func (b *Buffers) AddFillVertex(v FillVertex) (VertexID, error) {
	return b.add(v.Position, v.Attributes)
}

// AddStrokeVertex implements StrokeGeometryBuilder.
func (b *Buffers) AddStrokeVertex(v StrokeVertex) (VertexID, error) {
	return b.add(v.Position, v.Attributes)
}

func (b *Buffers) add(p splatter.Point, attrs []float32) (VertexID, error) {
	id := len(b.Positions)
	if uint64(id) > math.MaxUint32 {
		return 0, ErrTooManyVertices
	}
	b.Positions = append(b.Positions, p)
	// Pad or cut to the configured attribute count.
	for i := range b.numAttrs {
		var a float32
		if i < len(attrs) {
			a = attrs[i]
		}
		b.Attributes = append(b.Attributes, a)
	}
	return VertexID(id), nil
}
