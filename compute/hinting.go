// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compute

import "github.com/gogpu/glyphcs/internal/parallel"

// Hint runs the subpixel shaping kernel: a horizontal 3:1 reduction of
// the coverage bitmap src into RGB channels of dst, approximating LCD
// striped subpixel rendering.
//
// Output texel (ox, oy) covers the source block starting at (ox*3, oy).
// Five source samples at horizontal offsets -1..3 from the block
// origin, each scaled by 1/3, feed three overlapping 3-tap box
// averages, one source texel apart:
//
//	R = a + b + c
//	G = b + c + d
//	B = c + d + e
//
// Alpha is fixed at 1. Reads past the source edges return zero, so
// edge texels fade instead of smearing the border (zero border, not
// clamp-to-edge).
//
// Channel values are unitless intensities; no gamma or color-space
// contract is attached to them.
func Hint(src, dst Image) {
	w, h := dst.Extent()
	Dispatch(w, h, func(x, y int) {
		hintInvocation(src, dst, x, y)
	})
}

// HintParallel is Hint with workgroups distributed over pool.
func HintParallel(src, dst Image, pool *parallel.WorkerPool) {
	w, h := dst.Extent()
	DispatchParallel(w, h, pool, func(x, y int) {
		hintInvocation(src, dst, x, y)
	})
}

func hintInvocation(src, dst Image, ox, oy int) {
	const third = float32(1) / 3

	base := ox * 3
	a := src.Load(base-1, oy)[0] * third
	b := src.Load(base, oy)[0] * third
	c := src.Load(base+1, oy)[0] * third
	d := src.Load(base+2, oy)[0] * third
	e := src.Load(base+3, oy)[0] * third

	dst.Store(ox, oy, [4]float32{a + b + c, b + c + d, c + d + e, 1})
}
