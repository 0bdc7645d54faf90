// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compute

import "github.com/gogpu/glyphcs/internal/parallel"

// Workgroup dimensions shared by all kernels. Matching the GPU local
// size keeps CPU and shader dispatch geometry identical; the grouping
// is a scheduling detail with no effect on results.
const (
	WorkgroupWidth  = 8
	WorkgroupHeight = 4
)

// KernelFunc computes one output texel at invocation coordinates (x, y).
// A KernelFunc must depend only on read-only inputs captured at
// dispatch time and must write only its own texel.
type KernelFunc func(x, y int)

// Dispatch runs fn once for every invocation of a w x h grid,
// sequentially in workgroup order. The grid is rounded up to whole
// workgroups and out-of-range invocations are masked, so fn never sees
// coordinates outside the grid.
func Dispatch(w, h int, fn KernelFunc) {
	groupsX := (w + WorkgroupWidth - 1) / WorkgroupWidth
	groupsY := (h + WorkgroupHeight - 1) / WorkgroupHeight

	for gy := 0; gy < groupsY; gy++ {
		for gx := 0; gx < groupsX; gx++ {
			runWorkgroup(gx, gy, w, h, fn)
		}
	}
}

// DispatchParallel runs the same invocation grid as Dispatch with one
// work item per workgroup submitted to pool, and waits for completion.
// Workgroups write disjoint texels, so any execution order and degree
// of parallelism produce results identical to Dispatch.
//
// A nil pool falls back to sequential dispatch.
func DispatchParallel(w, h int, pool *parallel.WorkerPool, fn KernelFunc) {
	if pool == nil {
		Dispatch(w, h, fn)
		return
	}

	groupsX := (w + WorkgroupWidth - 1) / WorkgroupWidth
	groupsY := (h + WorkgroupHeight - 1) / WorkgroupHeight

	work := make([]func(), 0, groupsX*groupsY)
	for gy := 0; gy < groupsY; gy++ {
		for gx := 0; gx < groupsX; gx++ {
			gx, gy := gx, gy
			work = append(work, func() {
				runWorkgroup(gx, gy, w, h, fn)
			})
		}
	}

	pool.ExecuteAll(work)
}

// runWorkgroup executes the 8x4 invocations of one workgroup, masking
// invocations past the grid edge.
func runWorkgroup(gx, gy, w, h int, fn KernelFunc) {
	y0 := gy * WorkgroupHeight
	x0 := gx * WorkgroupWidth

	for ly := 0; ly < WorkgroupHeight; ly++ {
		y := y0 + ly
		if y >= h {
			break
		}
		for lx := 0; lx < WorkgroupWidth; lx++ {
			x := x0 + lx
			if x >= w {
				break
			}
			fn(x, y)
		}
	}
}
