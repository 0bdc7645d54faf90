// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compute

import "github.com/gogpu/glyphcs/internal/parallel"

// Downscale runs the 4x4 reduction kernel: output texel (ox, oy) is
// the cubic Hermite interpolation of the source block at (ox*4, oy*4),
// evaluated in two passes. Each of the four block rows is collapsed by
// the spline at its midpoint, then the same spline collapses the four
// row values into the final scalar, written replicated across RGB with
// alpha fixed at 1.
//
// With the parameter fixed at t = 0.5 this is a constant 4-tap filter
// ([-1, 9, 9, -1]/16 applied per axis); the coefficients are derived
// symbolically here to stay term-for-term with the shader.
//
// Reads past the source edges return zero (same border policy as Hint).
func Downscale(src, dst Image) {
	w, h := dst.Extent()
	Dispatch(w, h, func(x, y int) {
		downscaleInvocation(src, dst, x, y)
	})
}

// DownscaleParallel is Downscale with workgroups distributed over pool.
func DownscaleParallel(src, dst Image, pool *parallel.WorkerPool) {
	w, h := dst.Extent()
	DispatchParallel(w, h, pool, func(x, y int) {
		downscaleInvocation(src, dst, x, y)
	})
}

func downscaleInvocation(src, dst Image, ox, oy int) {
	bx := ox * 4
	by := oy * 4

	var rows [4]float32
	for i := 0; i < 4; i++ {
		rows[i] = cubic(
			src.Load(bx, by+i)[0],
			src.Load(bx+1, by+i)[0],
			src.Load(bx+2, by+i)[0],
			src.Load(bx+3, by+i)[0],
			0.5,
		)
	}

	v := cubic(rows[0], rows[1], rows[2], rows[3], 0.5)
	dst.Store(ox, oy, [4]float32{v, v, v, 1})
}

// cubic evaluates the cubic Hermite interpolant of four control values
// at parameter t.
func cubic(v0, v1, v2, v3, t float32) float32 {
	a := -v0/2 + 3*v1/2 - 3*v2/2 + v3/2
	b := v0 - 5*v1/2 + 2*v2 - v3/2
	c := -v0/2 + v2/2
	d := v1

	return ((a*t+b)*t+c)*t + d
}
