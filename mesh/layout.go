// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import "strings"

// Layout is the set of channels a mesh stores.
type Layout uint8

// Channels.
const (
	LayoutPoints Layout = 1 << iota
	LayoutIndices
	LayoutColors
	LayoutTexCoords
	LayoutNormals
)

// Named layouts.
const (
	PositionOnly     = LayoutPoints
	PositionColor    = LayoutPoints | LayoutColors
	PositionTex      = LayoutPoints | LayoutTexCoords
	PositionColorTex = LayoutPoints | LayoutColors | LayoutTexCoords

	// Draw is the layout of the shared draw mesh.
	Draw = PositionColorTex | LayoutIndices
)

// Has reports whether every channel of c is part of l.
func (l Layout) Has(c Layout) bool {
	return l&c == c
}

// String returns the channel names joined by '|'.
func (l Layout) String() string {
	names := []struct {
		c    Layout
		name string
	}{
		{LayoutPoints, "points"},
		{LayoutIndices, "indices"},
		{LayoutColors, "colors"},
		{LayoutTexCoords, "texcoords"},
		{LayoutNormals, "normals"},
	}
	var parts []string
	for _, n := range names {
		if l.Has(n.c) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}
