// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

import "errors"

var (
	// ErrInvalidTolerance is returned when the tolerance is not a positive
	// finite number.
	ErrInvalidTolerance = errors.New("tess: tolerance must be positive and finite")

	// ErrInvalidWidth is returned when the stroke width is not a positive
	// finite number.
	ErrInvalidWidth = errors.New("tess: stroke width must be positive and finite")

	// ErrInvalidPosition is returned when the path contains a NaN or
	// infinite coordinate.
	ErrInvalidPosition = errors.New("tess: non-finite position")

	// ErrTriangulation is returned when a fill region cannot be
	// triangulated, e.g. self-intersecting or overlapping contours.
	ErrTriangulation = errors.New("tess: triangulation failed")

	// ErrTooManyVertices is returned by geometry builders whose vertex
	// index space is exhausted.
	ErrTooManyVertices = errors.New("tess: too many vertices")
)
