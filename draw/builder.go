// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"math"

	"github.com/gogpu/splatter"
	"github.com/gogpu/splatter/mesh"
	"github.com/gogpu/splatter/tess"
)

// Attribute counts carried by attributed paths.
const (
	ColorChannelCount    = 4
	TexCoordChannelCount = 2
)

type attrMode uint8

const (
	attrSingleColor attrMode = iota
	attrColorPerPoint
	attrTexCoordsPerPoint
)

// Attributes selects how a MeshBuilder derives vertex colors and texture
// coordinates.
type Attributes struct {
	mode  attrMode
	color splatter.Color
}

// SingleColor gives every vertex the color c and texture coordinates (0, 0).
func SingleColor(c splatter.Color) Attributes {
	return Attributes{mode: attrSingleColor, color: c}
}

// ColorPerPoint reads the four interpolated attributes of each vertex as a
// linear RGBA color. Texture coordinates are (0, 0).
func ColorPerPoint() Attributes {
	return Attributes{mode: attrColorPerPoint}
}

// TexCoordsPerPoint reads the two interpolated attributes of each vertex as
// texture coordinates. The color is splatter.DefaultVertexColor.
func TexCoordsPerPoint() Attributes {
	return Attributes{mode: attrTexCoordsPerPoint}
}

// NumAttributes returns the number of path attributes the mode consumes.
func (a Attributes) NumAttributes() int {
	switch a.mode {
	case attrColorPerPoint:
		return ColorChannelCount
	case attrTexCoordsPerPoint:
		return TexCoordChannelCount
	default:
		return 0
	}
}

// maxVertexID bounds the vertex IDs a MeshBuilder hands out.
const maxVertexID = math.MaxUint32

// MeshBuilder appends tessellator output to a mesh. It implements
// tess.FillGeometryBuilder and tess.StrokeGeometryBuilder.
//
// Vertex IDs are raw mesh vertex indices, so triangles are pushed to the
// index channel unchanged. MeshBuilder never removes what it wrote; on
// failure the caller truncates the mesh.
type MeshBuilder struct {
	mesh      *mesh.Mesh
	transform splatter.Mat4
	attrs     Attributes
	limit     uint64
}

// NewMeshBuilder creates a builder writing to m. Every vertex position is
// transformed by transform before it is stored.
func NewMeshBuilder(m *mesh.Mesh, transform splatter.Mat4, attrs Attributes) *MeshBuilder {
	return &MeshBuilder{mesh: m, transform: transform, attrs: attrs, limit: maxVertexID}
}

// Mesh returns the target mesh.
func (b *MeshBuilder) Mesh() *mesh.Mesh { return b.mesh }

// BeginGeometry implements tess.GeometryBuilder.
func (b *MeshBuilder) BeginGeometry() {}

// EndGeometry implements tess.GeometryBuilder.
func (b *MeshBuilder) EndGeometry() {}

// AbortGeometry implements tess.GeometryBuilder.
func (b *MeshBuilder) AbortGeometry() {}

// AddTriangle implements tess.GeometryBuilder.
func (b *MeshBuilder) AddTriangle(v0, v1, v2 tess.VertexID) {
	b.mesh.AppendIndices(uint32(v0), uint32(v1), uint32(v2))
}

// AddFillVertex implements tess.FillGeometryBuilder.
func (b *MeshBuilder) AddFillVertex(v tess.FillVertex) (tess.VertexID, error) {
	return b.add(v.Position, v.Attributes)
}

// AddStrokeVertex implements tess.StrokeGeometryBuilder.
func (b *MeshBuilder) AddStrokeVertex(v tess.StrokeVertex) (tess.VertexID, error) {
	return b.add(v.Position, v.Attributes)
}

func (b *MeshBuilder) add(p splatter.Point, attrs []float32) (tess.VertexID, error) {
	id := uint64(b.mesh.RawVertexCount())
	if id > b.limit {
		return 0, tess.ErrTooManyVertices
	}

	v := mesh.Pt(b.transform.TransformPoint(p))
	switch b.attrs.mode {
	case attrColorPerPoint:
		c := splatter.DefaultVertexColor
		if len(attrs) >= ColorChannelCount {
			c = splatter.ColorFromChannels(attrs)
		}
		v = v.WithColor(c).WithTexCoords(splatter.Point{})
	case attrTexCoordsPerPoint:
		var tc splatter.Point
		if len(attrs) >= TexCoordChannelCount {
			tc = splatter.Pt(attrs[0], attrs[1])
		}
		v = v.WithColor(splatter.DefaultVertexColor).WithTexCoords(tc)
	default:
		v = v.WithColor(b.attrs.color).WithTexCoords(splatter.Point{})
	}
	b.mesh.PushVertex(v)
	return tess.VertexID(id), nil
}
