// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"errors"
	"fmt"
	"iter"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/splatter"
	"github.com/gogpu/splatter/path"
	"github.com/gogpu/splatter/tess"
)

// ErrUnknownKind is returned when a primitive kind name is not recognized.
var ErrUnknownKind = errors.New("draw: unknown primitive kind")

// Kind tags a primitive for theme lookups.
type Kind uint8

// Primitive kinds.
const (
	KindPath Kind = iota
	KindLine
	KindPolyline
	KindPolygon
	KindRect
	KindEllipse
	KindTri
	KindQuad

	numKinds
)

var kindNames = [numKinds]string{
	KindPath:     "path",
	KindLine:     "line",
	KindPolyline: "polyline",
	KindPolygon:  "polygon",
	KindRect:     "rect",
	KindEllipse:  "ellipse",
	KindTri:      "tri",
	KindQuad:     "quad",
}

// String returns the kind name used in theme files.
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Options selects fill or stroke tessellation and carries its parameters.
type Options struct {
	stroke bool
	fill   tess.FillOptions
	line   tess.StrokeOptions
}

// Fill returns options for fill tessellation.
func Fill(o tess.FillOptions) Options {
	return Options{fill: o}
}

// Stroke returns options for stroke tessellation.
func Stroke(o tess.StrokeOptions) Options {
	return Options{stroke: true, line: o}
}

// IsStroke reports whether the options select stroke tessellation.
func (o Options) IsStroke() bool { return o.stroke }

// FillOptions returns the fill parameters and whether the options are fill
// options.
func (o Options) FillOptions() (tess.FillOptions, bool) { return o.fill, !o.stroke }

// StrokeOptions returns the stroke parameters and whether the options are
// stroke options.
func (o Options) StrokeOptions() (tess.StrokeOptions, bool) { return o.line, o.stroke }

// String returns "fill" or "stroke".
func (o Options) String() string {
	if o.stroke {
		return "stroke"
	}
	return "fill"
}

// SourceKind identifies the buffer a primitive reads from.
type SourceKind uint8

// Source kinds.
const (
	SourceEvents SourceKind = iota
	SourceColoredPoints
	SourceTexturedPoints
)

// String returns a human-readable name of the source kind.
func (k SourceKind) String() string {
	switch k {
	case SourceEvents:
		return "events"
	case SourceColoredPoints:
		return "colored points"
	case SourceTexturedPoints:
		return "textured points"
	default:
		return unknownStr
	}
}

const unknownStr = "unknown"

// Source references the buffered input of a primitive.
type Source struct {
	Kind  SourceKind
	Range Range
	// Close closes point polylines. Events carry their own close flags.
	Close bool
}

// Buffered returns a source reading canonical events.
func Buffered(r Range) Source {
	return Source{Kind: SourceEvents, Range: r}
}

// ColoredPoints returns a source reading colored points.
func ColoredPoints(r Range, close bool) Source {
	return Source{Kind: SourceColoredPoints, Range: r, Close: close}
}

// TexturedPoints returns a source reading textured points.
func TexturedPoints(r Range, close bool) Source {
	return Source{Kind: SourceTexturedPoints, Range: r, Close: close}
}

// SourceIter is a resolved source. Exactly one of the iterators is set,
// according to Kind.
type SourceIter struct {
	Kind     SourceKind
	Events   iter.Seq[path.Event]
	Colored  iter.Seq[splatter.ColoredPoint]
	Textured iter.Seq[splatter.TexturedPoint]
	Close    bool
}

// Path is one buffered drawing call.
type Path struct {
	Kind    Kind
	Source  Source
	Options Options
	// Color overrides the theme color when HasColor is set. Per-point colors
	// of a colored source take precedence over both.
	Color    splatter.Color
	HasColor bool
	// Position and Orientation (Euler angles in radians) place the path in
	// the coordinate system of Transform.
	Position    splatter.Point3
	Orientation splatter.Point3
	// Texture is sampled by textured sources.
	Texture gpucontext.Texture
	// Transform is the global transform in effect when the call was issued.
	Transform splatter.Mat4
}

// LocalTransform returns the placement of the path from its position and
// orientation.
func (p *Path) LocalTransform() splatter.Mat4 {
	return splatter.Translate(p.Position.X, p.Position.Y, p.Position.Z).
		Mul(splatter.Euler(p.Orientation.X, p.Orientation.Y, p.Orientation.Z))
}

// FullTransform returns Transform × LocalTransform, the matrix applied to
// every tessellated vertex.
func (p *Path) FullTransform() splatter.Mat4 {
	return p.Transform.Mul(p.LocalTransform())
}

// VertexMode returns the vertex mode the path renders with.
func (p *Path) VertexMode() splatter.VertexMode {
	if p.Source.Kind == SourceTexturedPoints {
		return splatter.TextureMode
	}
	return splatter.ColorMode
}
