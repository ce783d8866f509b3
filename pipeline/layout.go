// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/splatter"
)

// Interleaved vertex layout: position f32x3, color f32x4, texcoords f32x2.
const (
	PositionOffset = 0
	ColorOffset    = 12
	TexCoordOffset = 28

	// VertexStride is the size in bytes of one packed vertex.
	VertexStride = 36
)

// Shader locations of the vertex attributes.
const (
	PositionLocation = 0
	ColorLocation    = 1
	TexCoordLocation = 2
)

// UniformSize is the size in bytes of the uniform block: one column-major
// mat4x4<f32>.
const UniformSize = 64

// IndexFormat is the format of packed indices.
const IndexFormat = gputypes.IndexFormatUint32

// VertexLayouts returns the vertex buffer layout of the draw mesh.
func VertexLayouts() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{
					Format:         gputypes.VertexFormatFloat32x3,
					Offset:         PositionOffset,
					ShaderLocation: PositionLocation,
				},
				{
					Format:         gputypes.VertexFormatFloat32x4,
					Offset:         ColorOffset,
					ShaderLocation: ColorLocation,
				},
				{
					Format:         gputypes.VertexFormatFloat32x2,
					Offset:         TexCoordOffset,
					ShaderLocation: TexCoordLocation,
				},
			},
		},
	}
}

// PrimitiveState returns the primitive state for draw meshes. Tessellated
// triangles have no consistent winding, so nothing is culled.
func PrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
}

// BindGroupLayoutEntries returns the bind group layout of the shader for
// mode:
//
//	Binding 0: uniforms (vertex)
//	Binding 1: texture_2d<f32> (fragment, texture mode only)
//	Binding 2: sampler (fragment, texture mode only)
func BindGroupLayoutEntries(mode splatter.VertexMode) []gputypes.BindGroupLayoutEntry {
	entries := []gputypes.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: gputypes.ShaderStageVertex,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		},
	}
	if mode == splatter.TextureMode {
		entries = append(entries,
			gputypes.BindGroupLayoutEntry{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			gputypes.BindGroupLayoutEntry{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		)
	}
	return entries
}
