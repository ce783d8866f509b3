// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tess converts path event streams into triangles.
//
// [FillTessellator] fills the area enclosed by a path according to a fill
// rule; [StrokeTessellator] covers the area swept by a pen of a given width
// moving along the path, with configurable caps and joins. Both flatten
// curves to line segments within a tolerance first.
//
// Output goes to a geometry builder following a fixed protocol:
// BeginGeometry, then for each piece its vertices followed by the triangles
// referencing them, then EndGeometry. A triangle only references vertex IDs
// that were already returned by the builder. On failure the tessellator calls
// AbortGeometry and returns the error; whatever the builder received is
// garbage and should be discarded.
//
// Paths may carry per-endpoint attributes (see path.Path). Tessellated
// vertices receive attributes interpolated along the edges they lie on, and
// vertices placed at a source point receive that point's attributes exactly.
//
// Tessellators keep scratch buffers between calls and are not safe for
// concurrent use. Output is deterministic: identical input produces
// identical vertex and triangle sequences.
package tess
