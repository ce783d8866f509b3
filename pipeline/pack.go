// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/splatter"
	"github.com/gogpu/splatter/mesh"
)

// ErrMissingChannel is returned when a mesh lacks a channel of the vertex
// layout.
var ErrMissingChannel = errors.New("pipeline: mesh is missing a vertex channel")

// PackVertices interleaves the points, colors and texture coordinates of m
// into little-endian bytes following VertexLayouts.
func PackVertices(m *mesh.Mesh) ([]byte, error) {
	for _, ch := range []mesh.Layout{mesh.LayoutColors, mesh.LayoutTexCoords} {
		if !m.Layout().Has(ch) {
			return nil, fmt.Errorf("%w: %s", ErrMissingChannel, ch)
		}
	}
	return AppendVertices(make([]byte, 0, m.RawVertexCount()*VertexStride), m), nil
}

// AppendVertices is like PackVertices but appends to dst. Every vertex
// channel of the layout must be present.
func AppendVertices(dst []byte, m *mesh.Mesh) []byte {
	colors, texCoords := m.Colors(), m.TexCoords()
	for i, p := range m.Points() {
		c, tc := colors[i], texCoords[i]
		dst = appendFloats(dst, p.X, p.Y, p.Z, c.R, c.G, c.B, c.A, tc.X, tc.Y)
	}
	return dst
}

// PackIndices returns the index channel of m as little-endian uint32s.
func PackIndices(m *mesh.Mesh) []byte {
	indices := m.Indices()
	dst := make([]byte, 0, len(indices)*4)
	for _, i := range indices {
		dst = binary.LittleEndian.AppendUint32(dst, i)
	}
	return dst
}

// PackUniforms returns the uniform block for a view-projection transform.
func PackUniforms(transform splatter.Mat4) []byte {
	cm := transform.ColumnMajor()
	return appendFloats(make([]byte, 0, UniformSize), cm[:]...)
}

// Projection maps a width×height window in points, origin at the center and
// y up, onto normalized device coordinates.
func Projection(width, height float32) splatter.Mat4 {
	return splatter.Scale(2/width, 2/height, 1)
}

func appendFloats(dst []byte, fs ...float32) []byte {
	for _, f := range fs {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	return dst
}
