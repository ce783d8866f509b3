// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"

	"github.com/gogpu/splatter"
)

// Entry points shared by both shaders.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

//go:embed shaders/color.wgsl
var colorShaderWGSL string

//go:embed shaders/texture.wgsl
var textureShaderWGSL string

// ShaderSource returns the WGSL source for mode.
func ShaderSource(mode splatter.VertexMode) string {
	if mode == splatter.TextureMode {
		return textureShaderWGSL
	}
	return colorShaderWGSL
}

// CompileShader compiles the shader for mode to SPIR-V bytes.
func CompileShader(mode splatter.VertexMode) ([]byte, error) {
	spirv, err := naga.Compile(ShaderSource(mode))
	if err != nil {
		return nil, fmt.Errorf("pipeline: compile %s shader: %w", mode, err)
	}
	splatter.Logger().Debug("pipeline: shader compiled", "mode", mode.String(), "bytes", len(spirv))
	return spirv, nil
}

// SPIRVWords converts SPIR-V bytes into little-endian 32-bit words. A
// trailing partial word is dropped.
func SPIRVWords(spirv []byte) []uint32 {
	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = uint32(spirv[i*4]) |
			uint32(spirv[i*4+1])<<8 |
			uint32(spirv[i*4+2])<<16 |
			uint32(spirv[i*4+3])<<24
	}
	return words
}
