// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package mesh provides a multi-channel mesh store.
//
// A [Mesh] keeps vertex attributes in parallel channels (points, colors,
// texture coordinates, normals) plus an independent index channel. Every
// vertex channel present in the mesh has the same length at all times:
// constructors panic on a mismatch and the push/extend operations always
// write to every channel for each logical vertex.
//
// The draw renderer owns one mesh per frame, clears it at the start of the
// frame and appends the output of every primitive to it.
package mesh
