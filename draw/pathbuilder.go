// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"iter"
	"slices"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/splatter"
	"github.com/gogpu/splatter/path"
	"github.com/gogpu/splatter/svgpath"
	"github.com/gogpu/splatter/tess"
)

// PathInit starts a path drawing call; choose Fill or Stroke.
type PathInit struct {
	d *Draw
}

// Path starts a path drawing call.
func (d *Draw) Path() PathInit {
	return PathInit{d: d}
}

// Fill selects fill tessellation with default options.
func (p PathInit) Fill() PathFill {
	return PathFill{call{d: p.d, fill: tess.DefaultFillOptions()}}
}

// Stroke selects stroke tessellation with default options.
func (p PathInit) Stroke() PathStroke {
	return PathStroke{call{d: p.d, stroke: true, line: tess.DefaultStrokeOptions()}}
}

// call holds the state shared by fill and stroke calls. Its methods submit
// the call to the Draw.
type call struct {
	d      *Draw
	stroke bool
	fill   tess.FillOptions
	line   tess.StrokeOptions

	color       splatter.Color
	hasColor    bool
	position    splatter.Point3
	orientation splatter.Point3
}

func (c call) options() Options {
	if c.stroke {
		return Stroke(c.line)
	}
	return Fill(c.fill)
}

func (c call) submit(kind Kind, src Source, tex gpucontext.Texture) {
	c.d.push(Path{
		Kind:        kind,
		Source:      src,
		Options:     c.options(),
		Color:       c.color,
		HasColor:    c.hasColor,
		Position:    c.position,
		Orientation: c.orientation,
		Texture:     tex,
	})
}

func (c call) events(kind Kind, events iter.Seq[path.Event]) {
	c.submit(kind, Buffered(c.d.arena.PushEvents(events)), nil)
}

// Events submits a canonical event stream.
func (c call) Events(events iter.Seq[path.Event]) {
	c.events(KindPath, events)
}

// Points submits an open polyline.
func (c call) Points(pts ...splatter.Point) {
	c.events(KindPath, path.FromPolyline(false, pts))
}

// PointsClosed submits a closed polyline.
func (c call) PointsClosed(pts ...splatter.Point) {
	c.events(KindPath, path.FromPolyline(true, pts))
}

// PointsColored submits an open polyline whose colors are interpolated
// across the tessellated geometry.
func (c call) PointsColored(pts ...splatter.ColoredPoint) {
	c.submit(KindPath, ColoredPoints(c.d.arena.PushColored(slices.Values(pts)), false), nil)
}

// PointsColoredClosed is like PointsColored for a closed polyline.
func (c call) PointsColoredClosed(pts ...splatter.ColoredPoint) {
	c.submit(KindPath, ColoredPoints(c.d.arena.PushColored(slices.Values(pts)), true), nil)
}

// PointsTextured submits an open polyline that samples tex at the
// interpolated texture coordinates.
func (c call) PointsTextured(tex gpucontext.Texture, pts ...splatter.TexturedPoint) {
	c.submit(KindPath, TexturedPoints(c.d.arena.PushTextured(slices.Values(pts)), false), tex)
}

// PointsTexturedClosed is like PointsTextured for a closed polyline.
func (c call) PointsTexturedClosed(tex gpucontext.Texture, pts ...splatter.TexturedPoint) {
	c.submit(KindPath, TexturedPoints(c.d.arena.PushTextured(slices.Values(pts)), true), tex)
}

// Segments submits raw segments, canonicalized as they are buffered.
func (c call) Segments(src path.SegmentSource) {
	c.events(KindPath, path.NewConverter(src).All())
}

// SVG submits SVG path data. Nothing is submitted if d does not parse.
func (c call) SVG(d string) error {
	segs, err := svgpath.Parse(d)
	if err != nil {
		return err
	}
	c.Segments(path.Segments(segs...))
	return nil
}

// PathFill configures a fill call.
type PathFill struct {
	call
}

// Tolerance sets the curve flattening tolerance.
func (p PathFill) Tolerance(t float32) PathFill {
	p.fill = p.fill.WithTolerance(t)
	return p
}

// Rule sets the fill rule.
func (p PathFill) Rule(r tess.FillRule) PathFill {
	p.fill = p.fill.WithRule(r)
	return p
}

// Color sets an explicit color, overriding the theme.
func (p PathFill) Color(c splatter.Color) PathFill {
	p.color, p.hasColor = c, true
	return p
}

// RGB sets an explicit opaque linear color.
func (p PathFill) RGB(r, g, b float32) PathFill { return p.Color(splatter.RGB(r, g, b)) }

// RGBA sets an explicit linear color.
func (p PathFill) RGBA(r, g, b, a float32) PathFill { return p.Color(splatter.RGBA(r, g, b, a)) }

// XY positions the path.
func (p PathFill) XY(x, y float32) PathFill {
	p.position = splatter.Pt3(x, y, 0)
	return p
}

// XYZ positions the path in 3D.
func (p PathFill) XYZ(x, y, z float32) PathFill {
	p.position = splatter.Pt3(x, y, z)
	return p
}

// RotateZ sets the rotation around the z axis in radians.
func (p PathFill) RotateZ(angle float32) PathFill {
	p.orientation.Z = angle
	return p
}

// Orientation sets the Euler angles in radians.
func (p PathFill) Orientation(x, y, z float32) PathFill {
	p.orientation = splatter.Pt3(x, y, z)
	return p
}

// PathStroke configures a stroke call.
type PathStroke struct {
	call
}

// Tolerance sets the curve flattening tolerance.
func (p PathStroke) Tolerance(t float32) PathStroke {
	p.line = p.line.WithTolerance(t)
	return p
}

// Weight sets the stroke width.
func (p PathStroke) Weight(w float32) PathStroke {
	p.line = p.line.WithWidth(w)
	return p
}

// Caps sets both line caps.
func (p PathStroke) Caps(c tess.LineCap) PathStroke {
	p.line = p.line.WithCaps(c)
	return p
}

// StartCap sets the cap at the start of open sub-paths.
func (p PathStroke) StartCap(c tess.LineCap) PathStroke {
	p.line.StartCap = c
	return p
}

// EndCap sets the cap at the end of open sub-paths.
func (p PathStroke) EndCap(c tess.LineCap) PathStroke {
	p.line.EndCap = c
	return p
}

// Join sets the line join.
func (p PathStroke) Join(j tess.LineJoin) PathStroke {
	p.line = p.line.WithJoin(j)
	return p
}

// MiterLimit sets the miter limit.
func (p PathStroke) MiterLimit(l float32) PathStroke {
	p.line = p.line.WithMiterLimit(l)
	return p
}

// Color sets an explicit color, overriding the theme.
func (p PathStroke) Color(c splatter.Color) PathStroke {
	p.color, p.hasColor = c, true
	return p
}

// RGB sets an explicit opaque linear color.
func (p PathStroke) RGB(r, g, b float32) PathStroke { return p.Color(splatter.RGB(r, g, b)) }

// RGBA sets an explicit linear color.
func (p PathStroke) RGBA(r, g, b, a float32) PathStroke { return p.Color(splatter.RGBA(r, g, b, a)) }

// XY positions the path.
func (p PathStroke) XY(x, y float32) PathStroke {
	p.position = splatter.Pt3(x, y, 0)
	return p
}

// XYZ positions the path in 3D.
func (p PathStroke) XYZ(x, y, z float32) PathStroke {
	p.position = splatter.Pt3(x, y, z)
	return p
}

// RotateZ sets the rotation around the z axis in radians.
func (p PathStroke) RotateZ(angle float32) PathStroke {
	p.orientation.Z = angle
	return p
}

// Orientation sets the Euler angles in radians.
func (p PathStroke) Orientation(x, y, z float32) PathStroke {
	p.orientation = splatter.Pt3(x, y, z)
	return p
}
