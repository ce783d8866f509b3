// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"github.com/gogpu/splatter"
)

// Draw accumulates the drawing calls of one frame.
//
// Every call captures the transform in effect when it is issued. The
// transform stack works like a canvas: Save pushes the current transform,
// Restore pops it, and Translate, Scale and RotateZ post-multiply it.
type Draw struct {
	arena     Arena
	paths     []Path
	transform splatter.Mat4
	stack     []splatter.Mat4
}

// New creates an empty Draw with the identity transform.
func New() *Draw {
	return &Draw{transform: splatter.Identity()}
}

// Reset discards every buffered call and resets the transform, keeping the
// allocated buffers. Call it at the start of each frame.
func (d *Draw) Reset() {
	d.arena.Reset()
	clear(d.paths)
	d.paths = d.paths[:0]
	d.transform = splatter.Identity()
	d.stack = d.stack[:0]
}

// Arena returns the buffers the recorded primitives reference.
func (d *Draw) Arena() *Arena { return &d.arena }

// Paths returns the recorded primitives in drawing order. The slice is owned
// by d and is invalidated by Reset.
func (d *Draw) Paths() []Path { return d.paths }

// Len returns the number of recorded primitives.
func (d *Draw) Len() int { return len(d.paths) }

// Save pushes the current transform onto the stack.
func (d *Draw) Save() {
	d.stack = append(d.stack, d.transform)
}

// Restore pops the transform saved by the matching Save. Restore without a
// saved transform does nothing.
func (d *Draw) Restore() {
	if len(d.stack) == 0 {
		return
	}
	d.transform = d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
}

// Translate moves subsequent calls by (x, y).
func (d *Draw) Translate(x, y float32) {
	d.transform = d.transform.Mul(splatter.Translate(x, y, 0))
}

// Scale scales subsequent calls.
func (d *Draw) Scale(sx, sy float32) {
	d.transform = d.transform.Mul(splatter.Scale(sx, sy, 1))
}

// RotateZ rotates subsequent calls counter-clockwise by angle radians.
func (d *Draw) RotateZ(angle float32) {
	d.transform = d.transform.Mul(splatter.RotateZ(angle))
}

// SetTransform replaces the current transform.
func (d *Draw) SetTransform(m splatter.Mat4) {
	d.transform = m
}

// Transform returns the current transform.
func (d *Draw) Transform() splatter.Mat4 {
	return d.transform
}

func (d *Draw) push(p Path) {
	p.Transform = d.transform
	d.paths = append(d.paths, p)
}
