// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compute

// Vec2 is a 2D vector in the float32 precision the kernels run at.
type Vec2 struct {
	X, Y float32
}

// Segment is one line of a flattened glyph outline in GPU buffer layout
// (x1, y1, x2, y2). Endpoint order carries the contour winding
// direction; the fill kernel depends on it.
type Segment struct {
	X1, Y1, X2, Y2 float32
}

// Seg builds a Segment from two endpoints.
func Seg(p1, p2 Vec2) Segment {
	return Segment{X1: p1.X, Y1: p1.Y, X2: p2.X, Y2: p2.Y}
}

// FillParams carries the read-only inputs of the fill kernel.
// Rays and Segments are shared views owned by the caller; the kernel
// never mutates or retains them. Extent is the destination image extent
// and must match the bound output image.
type FillParams struct {
	Extent   Vec2
	Rays     []Vec2
	Segments []Segment
}
