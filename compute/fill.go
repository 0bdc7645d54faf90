// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compute

import "github.com/gogpu/glyphcs/internal/parallel"

// Fill runs the fill kernel over dst: every texel is classified as
// inside (1) or outside (0) the outline described by params.Segments
// using nonzero-winding ray casts along every direction in params.Rays.
//
// A texel counts as inside only when every ray independently reports a
// nonzero winding sum. Requiring consensus across directions suppresses
// the misclassification a single ray suffers when it grazes an outline
// vertex or runs collinear with an edge.
//
// The sample point for invocation (x, y) is (x/extent.x, y/extent.y),
// so outlines are expected in the unit domain with Y down. Each test
// ray spans twice its direction vector, which for unit-scale directions
// is guaranteed to exit the sample domain.
func Fill(params *FillParams, dst Image) {
	w, h := dst.Extent()
	Dispatch(w, h, func(x, y int) {
		fillInvocation(params, dst, x, y)
	})
}

// FillParallel is Fill with workgroups distributed over pool.
func FillParallel(params *FillParams, dst Image, pool *parallel.WorkerPool) {
	w, h := dst.Extent()
	DispatchParallel(w, h, pool, func(x, y int) {
		fillInvocation(params, dst, x, y)
	})
}

func fillInvocation(p *FillParams, dst Image, x, y int) {
	sample := Vec2{
		X: float32(x) / p.Extent.X,
		Y: float32(y) / p.Extent.Y,
	}

	for _, dir := range p.Rays {
		// Ray from the sample spanning twice the direction vector.
		ray := Vec2{X: dir.X * 2, Y: dir.Y * 2}

		winding := 0
		for _, seg := range p.Segments {
			hit, w := intersect(sample, ray, seg)
			if !hit {
				continue
			}
			if w < 0 {
				winding++
			} else {
				winding--
			}
		}

		// One ray with winding zero vetoes the texel.
		if winding == 0 {
			dst.Store(x, y, [4]float32{0, 0, 0, 1})
			return
		}
	}

	dst.Store(x, y, [4]float32{1, 1, 1, 1})
}

// intersect tests the ray (origin a, direction r) against seg and, on a
// hit, classifies the crossing direction.
//
// The determinant of the two direction vectors is checked before any
// division: a zero determinant means the pair is parallel or collinear
// and contributes no intersection. The naive closed form divides by it
// unconditionally and feeds NaN or Inf into the winding sum.
//
// Both intersection parameters are accepted on the closed interval
// [0, 1]. Crossings exactly at a segment endpoint or at the ray origin
// or terminus count as hits; rays that graze outline vertices depend on
// this.
//
// The returned scalar w is the cross product of the segment direction
// with the vector from the segment start to the ray origin. Its sign
// tells which side of the segment the sample lies on, which is the
// winding contribution of the crossing.
func intersect(a Vec2, r Vec2, seg Segment) (bool, float32) {
	sx := seg.X2 - seg.X1
	sy := seg.Y2 - seg.Y1

	det := r.X*sy - r.Y*sx
	if det == 0 {
		return false, 0
	}

	qx := seg.X1 - a.X
	qy := seg.Y1 - a.Y

	t := (qx*sy - qy*sx) / det
	u := (qx*r.Y - qy*r.X) / det
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return false, 0
	}

	w := sx*(a.Y-seg.Y1) - sy*(a.X-seg.X1)
	return true, w
}
