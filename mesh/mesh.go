// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import (
	"fmt"
	"iter"

	"github.com/gogpu/splatter"
)

// Mesh stores vertex attributes in parallel channels and an optional index
// channel. The zero value is not usable; create meshes with New or FromPoints.
//
// Mesh is not safe for concurrent use.
type Mesh struct {
	layout    Layout
	points    []splatter.Point3
	indices   []uint32
	colors    []splatter.Color
	texCoords []splatter.Point
	normals   []splatter.Point3
}

// New creates an empty mesh with the given channels and room for capacity
// vertices. The points channel is always present.
func New(layout Layout, capacity int) *Mesh {
	m := &Mesh{layout: layout | LayoutPoints}
	m.points = make([]splatter.Point3, 0, capacity)
	if m.layout.Has(LayoutIndices) {
		m.indices = make([]uint32, 0, capacity*3/2)
	}
	if m.layout.Has(LayoutColors) {
		m.colors = make([]splatter.Color, 0, capacity)
	}
	if m.layout.Has(LayoutTexCoords) {
		m.texCoords = make([]splatter.Point, 0, capacity)
	}
	if m.layout.Has(LayoutNormals) {
		m.normals = make([]splatter.Point3, 0, capacity)
	}
	return m
}

// FromPoints creates a mesh holding only the given points channel.
// The slice is used directly.
func FromPoints(points []splatter.Point3) *Mesh {
	return &Mesh{layout: LayoutPoints, points: points}
}

// WithIndices adds an index channel. Indices are independent of the vertex
// channels in length.
func (m *Mesh) WithIndices(indices []uint32) *Mesh {
	m.layout |= LayoutIndices
	m.indices = indices
	return m
}

// WithColors adds a color channel. It panics if the channel length differs
// from the points channel length.
func (m *Mesh) WithColors(colors []splatter.Color) *Mesh {
	checkLen("colors", len(colors), len(m.points))
	m.layout |= LayoutColors
	m.colors = colors
	return m
}

// WithTexCoords adds a texture coordinates channel. It panics if the channel
// length differs from the points channel length.
func (m *Mesh) WithTexCoords(texCoords []splatter.Point) *Mesh {
	checkLen("texcoords", len(texCoords), len(m.points))
	m.layout |= LayoutTexCoords
	m.texCoords = texCoords
	return m
}

// WithNormals adds a normals channel. It panics if the channel length differs
// from the points channel length.
func (m *Mesh) WithNormals(normals []splatter.Point3) *Mesh {
	checkLen("normals", len(normals), len(m.points))
	m.layout |= LayoutNormals
	m.normals = normals
	return m
}

func checkLen(channel string, got, want int) {
	if got != want {
		panic(fmt.Sprintf("mesh: %s channel has %d elements but points channel has %d; vertex channels must have equal length",
			channel, got, want))
	}
}

// Layout returns the channels stored by the mesh.
func (m *Mesh) Layout() Layout { return m.layout }

// Points returns the points channel. The slice must not be modified.
func (m *Mesh) Points() []splatter.Point3 { return m.points }

// Indices returns the index channel. The slice must not be modified.
func (m *Mesh) Indices() []uint32 { return m.indices }

// Colors returns the color channel, nil if absent.
func (m *Mesh) Colors() []splatter.Color { return m.colors }

// TexCoords returns the texture coordinates channel, nil if absent.
func (m *Mesh) TexCoords() []splatter.Point { return m.texCoords }

// Normals returns the normals channel, nil if absent.
func (m *Mesh) Normals() []splatter.Point3 { return m.normals }

// PushVertex appends one logical vertex to every vertex channel. Attributes
// the vertex does not carry are written as their defaults.
func (m *Mesh) PushVertex(v Vertex) {
	m.points = append(m.points, v.Position)
	if m.layout.Has(LayoutColors) {
		c := splatter.DefaultVertexColor
		if v.Has(AttrColor) {
			c = v.Color
		}
		m.colors = append(m.colors, c)
	}
	if m.layout.Has(LayoutTexCoords) {
		m.texCoords = append(m.texCoords, v.TexCoords)
	}
	if m.layout.Has(LayoutNormals) {
		m.normals = append(m.normals, v.Normal)
	}
}

// ExtendVertices appends every vertex of the sequence.
func (m *Mesh) ExtendVertices(vertices iter.Seq[Vertex]) {
	for v := range vertices {
		m.PushVertex(v)
	}
}

// PushIndex appends one index, adding the index channel if absent.
func (m *Mesh) PushIndex(i uint32) {
	m.layout |= LayoutIndices
	m.indices = append(m.indices, i)
}

// ExtendIndices appends every index of the sequence.
func (m *Mesh) ExtendIndices(indices iter.Seq[uint32]) {
	m.layout |= LayoutIndices
	for i := range indices {
		m.indices = append(m.indices, i)
	}
}

// AppendIndices appends the given indices.
func (m *Mesh) AppendIndices(indices ...uint32) {
	m.layout |= LayoutIndices
	m.indices = append(m.indices, indices...)
}

// ExtendFromMesh appends the vertices and indices of other, offsetting the
// indices by the current vertex count. Channels other lacks receive defaults.
func (m *Mesh) ExtendFromMesh(other *Mesh) {
	base := uint32(len(m.points))
	for i := range other.points {
		v, _ := other.Vertex(i)
		m.PushVertex(v)
	}
	if len(other.indices) > 0 {
		m.layout |= LayoutIndices
		for _, i := range other.indices {
			m.indices = append(m.indices, base+i)
		}
	}
}

// ClearVertices truncates every vertex channel, keeping capacity.
func (m *Mesh) ClearVertices() {
	m.points = m.points[:0]
	m.colors = m.colors[:0]
	m.texCoords = m.texCoords[:0]
	m.normals = m.normals[:0]
}

// ClearIndices truncates the index channel, keeping capacity.
func (m *Mesh) ClearIndices() {
	m.indices = m.indices[:0]
}

// Clear truncates all channels, keeping capacity for reuse.
func (m *Mesh) Clear() {
	m.ClearVertices()
	m.ClearIndices()
}

// Truncate shrinks the mesh back to the given raw vertex and index counts.
// Counts larger than the current lengths are ignored.
func (m *Mesh) Truncate(vertices, indices int) {
	if vertices < len(m.points) {
		vertices = max(vertices, 0)
		m.points = m.points[:vertices]
		if m.layout.Has(LayoutColors) {
			m.colors = m.colors[:vertices]
		}
		if m.layout.Has(LayoutTexCoords) {
			m.texCoords = m.texCoords[:vertices]
		}
		if m.layout.Has(LayoutNormals) {
			m.normals = m.normals[:vertices]
		}
	}
	if indices < len(m.indices) {
		m.indices = m.indices[:max(indices, 0)]
	}
}

// RawVertexCount returns the number of stored vertices.
func (m *Mesh) RawVertexCount() int { return len(m.points) }

// VertexCount returns the number of vertices produced by the index channel.
func (m *Mesh) VertexCount() int { return len(m.indices) }

// TriangleCount returns the number of complete triangles in the index channel.
func (m *Mesh) TriangleCount() int { return len(m.indices) / 3 }

// Vertex returns the raw vertex at i, with every stored attribute attached.
func (m *Mesh) Vertex(i int) (Vertex, bool) {
	if i < 0 || i >= len(m.points) {
		return Vertex{}, false
	}
	v := Pt(m.points[i])
	if m.layout.Has(LayoutColors) {
		v = v.WithColor(m.colors[i])
	}
	if m.layout.Has(LayoutTexCoords) {
		v = v.WithTexCoords(m.texCoords[i])
	}
	if m.layout.Has(LayoutNormals) {
		v = v.WithNormal(m.normals[i])
	}
	return v, true
}

// RawVertices yields the stored vertices in [start, end) in storage order.
// The range is clamped to the stored vertices.
func (m *Mesh) RawVertices(start, end int) iter.Seq[Vertex] {
	start = max(start, 0)
	end = min(end, len(m.points))
	return func(yield func(Vertex) bool) {
		for i := start; i < end; i++ {
			v, _ := m.Vertex(i)
			if !yield(v) {
				return
			}
		}
	}
}

// Vertices yields one vertex per index, in index order. It panics if an
// index refers to a vertex that does not exist.
func (m *Mesh) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for _, i := range m.indices {
			if !yield(m.mustVertex(i)) {
				return
			}
		}
	}
}

// Triangles yields the index channel's vertices in groups of three. A
// trailing incomplete group is ignored.
func (m *Mesh) Triangles() iter.Seq[[3]Vertex] {
	return func(yield func([3]Vertex) bool) {
		for t := 0; t+2 < len(m.indices); t += 3 {
			tri := [3]Vertex{
				m.mustVertex(m.indices[t]),
				m.mustVertex(m.indices[t+1]),
				m.mustVertex(m.indices[t+2]),
			}
			if !yield(tri) {
				return
			}
		}
	}
}

func (m *Mesh) mustVertex(i uint32) Vertex {
	v, ok := m.Vertex(int(i))
	if !ok {
		panic(fmt.Sprintf("mesh: no vertex for the index %d produced by the indices channel (%d vertices stored)",
			i, len(m.points)))
	}
	return v
}
