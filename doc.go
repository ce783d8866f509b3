// Package splatter is the drawing core of a creative-coding framework.
//
// # Overview
//
// splatter lowers high-level shape descriptions (paths, polylines, colored
// and textured point sequences) into indexed triangle meshes that a GPU
// renderer can consume directly. A whole frame of heterogeneous drawing
// commands shares one mesh buffer.
//
//	d := draw.New()
//	d.Path().Stroke().Weight(8).Color(splatter.RGB(1, 0, 0)).Points(
//	    splatter.Pt(0, 0), splatter.Pt(10, 0))
//
//	r := draw.NewRenderer()
//	frame := r.Render(d)
//	// frame.Mesh holds the vertices; frame.Commands the draw calls.
//
// # Packages
//
//   - splatter: value types shared by everything (Point, Point3, Color, Mat4)
//     and the package logger
//   - path: path events and the converter that canonicalizes raw segments
//   - svgpath: SVG path data parsing
//   - tess: fill and stroke tessellation
//   - mesh: the multi-channel mesh store
//   - draw: the frontend, theme, dispatcher and per-frame renderer
//   - pipeline: vertex layouts, vertex packing and WGSL shaders
//   - preview: a CPU rasterizer for frames, used for previews and tests
//
// # Coordinate System
//
// Coordinates are in points with the origin at the center of the window:
//   - X increases right
//   - Y increases up
//   - Angles in radians, counter-clockwise
//
// Colors are linear RGBA. None of the types are safe for concurrent use
// unless documented otherwise.
package splatter

// Version is the current version of the library.
const Version = "0.1.0"
