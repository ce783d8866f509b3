// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	theme, err := draw.LoadTheme("theme.yaml")
//	...
//	r := draw.NewRenderer(draw.WithTheme(theme), draw.WithMeshCapacity(1 << 16))
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	theme        Theme
	meshCapacity int
}

// defaultMeshCapacity is the initial vertex capacity of the frame mesh.
const defaultMeshCapacity = 1024

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		theme:        DefaultTheme(),
		meshCapacity: defaultMeshCapacity,
	}
}

// WithTheme sets the theme consulted for primitives without a color.
func WithTheme(t Theme) RendererOption {
	return func(o *rendererOptions) {
		o.theme = t
	}
}

// WithMeshCapacity sets the initial vertex capacity of the frame mesh.
// Values below 1 keep the default.
func WithMeshCapacity(n int) RendererOption {
	return func(o *rendererOptions) {
		if n > 0 {
			o.meshCapacity = n
		}
	}
}
