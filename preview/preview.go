// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package preview rasterizes draw frames on the CPU.
//
// It is a reference consumer of the draw mesh for previews, golden images and
// tests: every triangle is filled with the average color of its vertices.
// Textured triangles are modulated by a Sampler when one is configured.
package preview

import (
	"fmt"
	"image"
	imagedraw "image/draw"
	"image/png"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/splatter"
	"github.com/gogpu/splatter/draw"
	"github.com/gogpu/splatter/mesh"
)

// Sampler returns the color of tex at texture coordinates uv.
type Sampler func(tex gpucontext.Texture, uv splatter.Point) splatter.Color

// Option configures Rasterize.
type Option func(*options)

type options struct {
	scale   float32
	sampler Sampler
}

// WithScale sets the number of pixels per point. The default is 1.
func WithScale(s float32) Option {
	return func(o *options) {
		if s > 0 {
			o.scale = s
		}
	}
}

// WithSampler sets the sampler used for texture mode commands.
func WithSampler(s Sampler) Option {
	return func(o *options) {
		o.sampler = s
	}
}

// Rasterize draws frame into a new width×height image. The frame origin is
// the image center and y points up.
func Rasterize(frame *draw.Frame, width, height int, opts ...Option) *image.RGBA {
	o := options{scale: 1}
	for _, opt := range opts {
		opt(&o)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	imagedraw.Draw(img, img.Bounds(), image.NewUniform(frame.Background.NRGBA()), image.Point{}, imagedraw.Src)

	r := rasterizer{
		img:   img,
		z:     vector.NewRasterizer(width, height),
		cx:    float32(width) / 2,
		cy:    float32(height) / 2,
		scale: o.scale,
	}
	var triangles int
	for _, cmd := range frame.Commands {
		triangles += r.command(frame.Mesh, cmd, o.sampler)
	}
	splatter.Logger().Debug("preview: frame rasterized",
		"width", width, "height", height, "commands", len(frame.Commands), "triangles", triangles)
	return img
}

type rasterizer struct {
	img    *image.RGBA
	z      *vector.Rasterizer
	cx, cy float32
	scale  float32
}

func (r *rasterizer) command(m *mesh.Mesh, cmd draw.Command, sampler Sampler) int {
	indices := m.Indices()[cmd.Indices.Start:cmd.Indices.End]
	var n int
	for i := 0; i+2 < len(indices); i += 3 {
		var tri [3]mesh.Vertex
		for k := range tri {
			v, ok := m.Vertex(int(indices[i+k]))
			if !ok {
				panic(fmt.Sprintf("preview: index %d out of range (%d vertices)", indices[i+k], m.RawVertexCount()))
			}
			tri[k] = v
		}
		c := average(tri)
		if cmd.Mode == splatter.TextureMode && sampler != nil {
			uv := tri[0].TexCoords.Add(tri[1].TexCoords).Add(tri[2].TexCoords).Mul(1.0 / 3)
			s := sampler(cmd.Texture, uv)
			c = splatter.RGBA(c.R*s.R, c.G*s.G, c.B*s.B, c.A*s.A)
		}
		r.triangle(tri, c)
		n++
	}
	return n
}

func (r *rasterizer) triangle(tri [3]mesh.Vertex, c splatter.Color) {
	r.z.Reset(r.img.Bounds().Dx(), r.img.Bounds().Dy())
	for k, v := range tri {
		x, y := r.cx+v.Position.X*r.scale, r.cy-v.Position.Y*r.scale
		if k == 0 {
			r.z.MoveTo(x, y)
		} else {
			r.z.LineTo(x, y)
		}
	}
	r.z.ClosePath()
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{})
}

func average(tri [3]mesh.Vertex) splatter.Color {
	a := tri[0].Color
	for _, v := range tri[1:] {
		a = splatter.RGBA(a.R+v.Color.R, a.G+v.Color.G, a.B+v.Color.B, a.A+v.Color.A)
	}
	return splatter.RGBA(a.R/3, a.G/3, a.B/3, a.A/3)
}

// SavePNG writes img to a PNG file.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, img)
}
