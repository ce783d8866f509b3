// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package draw is the retained-mode drawing frontend.
//
// Drawing calls on a [Draw] are buffered as lightweight [Path] primitives that
// reference ranges of a shared per-frame [Arena]. Nothing is tessellated
// until a [Renderer] renders the frame: each primitive is then resolved, fed
// to the fill or stroke tessellator and appended to one shared mesh through
// a [MeshBuilder].
//
//	d := draw.New()
//	d.Path().Fill().Color(splatter.RGB(1, 0, 0)).Points(a, b, c)
//	d.Path().Stroke().Weight(4).Polyline(pts...)
//
//	r := draw.NewRenderer(draw.WithTheme(theme))
//	frame := r.Render(d)
//	d.Reset()
//
// A primitive that fails to tessellate contributes no geometry; the failure
// is logged through the splatter logger and the frame continues.
//
// Draw, Arena and Renderer are not safe for concurrent use. Ranges recorded
// in one frame are invalid after Reset.
package draw
