// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pipeline describes how a GPU renderer consumes a draw frame.
//
// It provides the interleaved vertex layout of the draw mesh, functions that
// pack a mesh into vertex and index buffer bytes, the uniform block layout,
// and the WGSL shaders for the two vertex modes, compiled to SPIR-V with
// naga. Creating devices, buffers and pipeline objects is left to the
// renderer.
//
//	vertices, err := pipeline.PackVertices(frame.Mesh)
//	indices := pipeline.PackIndices(frame.Mesh)
//	spirv, err := pipeline.CompileShader(splatter.TextureMode)
package pipeline
