// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"iter"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/splatter"
	"github.com/gogpu/splatter/mesh"
	"github.com/gogpu/splatter/path"
	"github.com/gogpu/splatter/tess"
)

// PrimitiveRender is what the renderer needs to know about a rendered
// primitive to pick a pipeline.
type PrimitiveRender struct {
	Texture gpucontext.Texture
	Mode    splatter.VertexMode
}

// Target is the mesh primitives render into together with the tessellators
// used to produce its geometry.
type Target struct {
	Mesh   *mesh.Mesh
	Fill   *tess.FillTessellator
	Stroke *tess.StrokeTessellator

	// limit overrides maxVertexID when non-zero.
	limit uint64
}

// NewTarget returns a target writing to m with fresh tessellators.
func NewTarget(m *mesh.Mesh) Target {
	return Target{
		Mesh:   m,
		Fill:   tess.NewFillTessellator(),
		Stroke: tess.NewStrokeTessellator(),
	}
}

// RenderPathEvents tessellates an event stream with a single color.
func RenderPathEvents(t Target, events iter.Seq[path.Event], color splatter.Color, transform splatter.Mat4, opts Options) PrimitiveRender {
	err := t.tessellate(transform, SingleColor(color), opts, events, nil)
	if err != nil {
		warn(err, opts, SourceEvents)
	}
	return PrimitiveRender{Mode: splatter.ColorMode}
}

// RenderPathPointsColored tessellates a polyline of colored points,
// interpolating the colors across the generated geometry.
func RenderPathPointsColored(t Target, points iter.Seq[splatter.ColoredPoint], close bool, transform splatter.Mat4, opts Options) PrimitiveRender {
	b := path.NewBuilder(ColorChannelCount)
	for cp := range points {
		ch := cp.Color.Channels()
		pointTo(b, cp.Point, ch[:])
	}
	if p := buildPolyline(b, close); p != nil {
		if err := t.tessellate(transform, ColorPerPoint(), opts, nil, p); err != nil {
			warn(err, opts, SourceColoredPoints)
		}
	}
	return PrimitiveRender{Mode: splatter.ColorMode}
}

// RenderPathPointsTextured tessellates a polyline of textured points,
// interpolating the texture coordinates across the generated geometry.
func RenderPathPointsTextured(t Target, points iter.Seq[splatter.TexturedPoint], close bool, texture gpucontext.Texture, transform splatter.Mat4, opts Options) PrimitiveRender {
	b := path.NewBuilder(TexCoordChannelCount)
	for tp := range points {
		pointTo(b, tp.Point, []float32{tp.TexCoords.X, tp.TexCoords.Y})
	}
	if p := buildPolyline(b, close); p != nil {
		if err := t.tessellate(transform, TexCoordsPerPoint(), opts, nil, p); err != nil {
			warn(err, opts, SourceTexturedPoints)
		}
	}
	return PrimitiveRender{Texture: texture, Mode: splatter.TextureMode}
}

// RenderPathSource renders a resolved source. color is used by event
// sources only; texture by textured sources only.
func RenderPathSource(t Target, src SourceIter, color splatter.Color, texture gpucontext.Texture, transform splatter.Mat4, opts Options) PrimitiveRender {
	switch src.Kind {
	case SourceColoredPoints:
		return RenderPathPointsColored(t, src.Colored, src.Close, transform, opts)
	case SourceTexturedPoints:
		return RenderPathPointsTextured(t, src.Textured, src.Close, texture, transform, opts)
	default:
		return RenderPathEvents(t, src.Events, color, transform, opts)
	}
}

func pointTo(b *path.Builder, p splatter.Point, attrs []float32) {
	if b.IsOpen() {
		b.LineTo(p, attrs)
	} else {
		b.Begin(p, attrs)
	}
}

// buildPolyline ends the polyline, returning nil if no point was added.
func buildPolyline(b *path.Builder, close bool) *path.Path {
	if !b.IsOpen() {
		return nil
	}
	b.End(close)
	return b.Build()
}

// tessellate runs the tessellator selected by opts on either events or p.
// On error the mesh is truncated to its state before the call.
func (t Target) tessellate(transform splatter.Mat4, attrs Attributes, opts Options, events iter.Seq[path.Event], p *path.Path) error {
	if events == nil && p == nil {
		return nil
	}
	b := NewMeshBuilder(t.Mesh, transform, attrs)
	if t.limit != 0 {
		b.limit = t.limit
	}
	vertices, indices := t.Mesh.RawVertexCount(), len(t.Mesh.Indices())

	var err error
	if so, ok := opts.StrokeOptions(); ok {
		if p != nil {
			err = t.Stroke.TessellatePath(p, so, b)
		} else {
			err = t.Stroke.Tessellate(events, so, b)
		}
	} else {
		fo, _ := opts.FillOptions()
		if p != nil {
			err = t.Fill.TessellatePath(p, fo, b)
		} else {
			err = t.Fill.Tessellate(events, fo, b)
		}
	}
	if err != nil {
		t.Mesh.Truncate(vertices, indices)
	}
	return err
}

func warn(err error, opts Options, src SourceKind) {
	splatter.Logger().Warn("draw: primitive skipped",
		"tessellation", opts.String(), "source", src.String(), "error", err)
}
