// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/splatter"
	"github.com/gogpu/splatter/mesh"
)

// Command is one draw call of a frame: a range of the index channel drawn
// with one pipeline and, in texture mode, one texture.
type Command struct {
	Mode    splatter.VertexMode
	Texture gpucontext.Texture
	Indices Range
}

// Frame is the output of a render: one mesh for the whole frame and the draw
// calls that cover its index channel. A frame aliases renderer storage and is
// valid until the next Render.
type Frame struct {
	Mesh       *mesh.Mesh
	Background splatter.Color
	Commands   []Command
}

// Renderer tessellates the primitives of a Draw into a mesh. It owns the
// mesh and the tessellators and reuses them across frames.
type Renderer struct {
	theme    Theme
	target   Target
	commands []Command
}

// NewRenderer creates a renderer.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		theme:  o.theme,
		target: NewTarget(mesh.New(mesh.Draw, o.meshCapacity)),
	}
}

// Theme returns the renderer's theme.
func (r *Renderer) Theme() Theme { return r.theme }

// SetTheme replaces the theme used by subsequent renders.
func (r *Renderer) SetTheme(t Theme) { r.theme = t }

// Render clears the frame mesh and renders every primitive of d in order.
// Each primitive's vertices are transformed by its captured global
// transform times its local position and orientation. Consecutive
// primitives that share vertex mode and texture are merged into one
// command; primitives that produce no triangles add no command.
func (r *Renderer) Render(d *Draw) *Frame {
	m := r.target.Mesh
	m.Clear()
	r.commands = r.commands[:0]

	for i := range d.paths {
		p := &d.paths[i]
		color := p.Color
		if !p.HasColor {
			color = r.theme.Color(p.Kind, p.Options)
		}
		start := len(m.Indices())
		pr := RenderPathSource(r.target, d.arena.Resolve(p.Source), color, p.Texture, p.FullTransform(), p.Options)
		r.record(pr, Range{Start: start, End: len(m.Indices())})
	}

	splatter.Logger().Debug("draw: frame rendered",
		"primitives", len(d.paths),
		"vertices", m.RawVertexCount(),
		"triangles", m.TriangleCount(),
		"commands", len(r.commands))

	return &Frame{
		Mesh:       m,
		Background: r.theme.Background,
		Commands:   r.commands,
	}
}

func (r *Renderer) record(pr PrimitiveRender, indices Range) {
	if indices.IsEmpty() {
		return
	}
	if n := len(r.commands); n > 0 {
		last := &r.commands[n-1]
		if last.Mode == pr.Mode && last.Texture == pr.Texture && last.Indices.End == indices.Start {
			last.Indices.End = indices.End
			return
		}
	}
	r.commands = append(r.commands, Command{Mode: pr.Mode, Texture: pr.Texture, Indices: indices})
}
