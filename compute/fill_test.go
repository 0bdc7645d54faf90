// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compute

import (
	"testing"

	"github.com/gogpu/glyphcs/internal/parallel"
)

// testRays returns two exact unit-length directions (3-4-5 triangles)
// that avoid axis and diagonal alignment with the test outlines.
func testRays() []Vec2 {
	return []Vec2{{X: 0.6, Y: 0.8}, {X: -0.8, Y: 0.6}}
}

// square returns the four segments of an axis-aligned rectangle wound
// clockwise in the Y-down unit domain.
func square(x0, y0, x1, y1 float32) []Segment {
	return []Segment{
		Seg(Vec2{x0, y0}, Vec2{x1, y0}),
		Seg(Vec2{x1, y0}, Vec2{x1, y1}),
		Seg(Vec2{x1, y1}, Vec2{x0, y1}),
		Seg(Vec2{x0, y1}, Vec2{x0, y0}),
	}
}

// reversed returns segments with start and end points swapped and the
// order inverted, flipping the winding direction.
func reversed(segs []Segment) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		out[len(segs)-1-i] = Segment{X1: s.X2, Y1: s.Y2, X2: s.X1, Y2: s.Y1}
	}
	return out
}

// TestFillSquare tests inside/outside classification for a convex
// outline.
func TestFillSquare(t *testing.T) {
	const size = 8
	dst := NewGrayImage(size, size)
	params := &FillParams{
		Extent:   Vec2{X: size, Y: size},
		Rays:     testRays(),
		Segments: square(0.3, 0.3, 0.7, 0.7),
	}
	Fill(params, dst)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			sx := float32(x) / size
			sy := float32(y) / size

			// Keep a margin around the outline; texels that sample
			// exactly on the boundary are not asserted.
			var want float32
			switch {
			case sx > 0.31 && sx < 0.69 && sy > 0.31 && sy < 0.69:
				want = 1
			case sx < 0.29 || sx > 0.71 || sy < 0.29 || sy > 0.71:
				want = 0
			default:
				continue
			}

			if got := dst.Pix[y*size+x]; got != want {
				t.Errorf("texel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

// TestFillWindingDirection tests that classification is independent of
// outline winding direction: a nonzero sum of either sign is inside.
func TestFillWindingDirection(t *testing.T) {
	const size = 8
	segs := square(0.3, 0.3, 0.7, 0.7)

	cw := NewGrayImage(size, size)
	Fill(&FillParams{Extent: Vec2{X: size, Y: size}, Rays: testRays(), Segments: segs}, cw)

	ccw := NewGrayImage(size, size)
	Fill(&FillParams{Extent: Vec2{X: size, Y: size}, Rays: testRays(), Segments: reversed(segs)}, ccw)

	for i := range cw.Pix {
		if cw.Pix[i] != ccw.Pix[i] {
			t.Errorf("texel %d differs by winding direction: cw=%v ccw=%v",
				i, cw.Pix[i], ccw.Pix[i])
		}
	}
}

// TestFillNonzeroHole tests nonzero-winding semantics on nested
// contours. An inner contour wound opposite to the outer one cancels
// the winding and punches a hole; wound the same way it does not.
func TestFillNonzeroHole(t *testing.T) {
	const size = 16
	outer := square(0.1, 0.1, 0.9, 0.9)
	inner := square(0.35, 0.35, 0.65, 0.65)

	t.Run("opposite winding punches hole", func(t *testing.T) {
		dst := NewGrayImage(size, size)
		segs := append(append([]Segment{}, outer...), reversed(inner)...)
		Fill(&FillParams{Extent: Vec2{X: size, Y: size}, Rays: testRays(), Segments: segs}, dst)

		// Center of the hole.
		if got := dst.Pix[8*size+8]; got != 0 {
			t.Errorf("hole center = %v, want 0", got)
		}
		// Inside the ring.
		if got := dst.Pix[4*size+4]; got != 1 {
			t.Errorf("ring texel = %v, want 1", got)
		}
	})

	t.Run("same winding stays filled", func(t *testing.T) {
		dst := NewGrayImage(size, size)
		segs := append(append([]Segment{}, outer...), inner...)
		Fill(&FillParams{Extent: Vec2{X: size, Y: size}, Rays: testRays(), Segments: segs}, dst)

		if got := dst.Pix[8*size+8]; got != 1 {
			t.Errorf("center = %v, want 1 under nonzero winding", got)
		}
	})
}

// TestFillParallelRayGuard tests the zero-determinant guard: segments
// collinear with a ray direction contribute nothing instead of
// poisoning the winding sum.
func TestFillParallelRayGuard(t *testing.T) {
	const size = 8
	// Horizontal ray against an outline with horizontal edges. The top
	// and bottom edges are parallel to the ray; only the vertical
	// edges can report crossings.
	dst := NewGrayImage(size, size)
	params := &FillParams{
		Extent:   Vec2{X: size, Y: size},
		Rays:     []Vec2{{X: 1, Y: 0}},
		Segments: square(0.3, 0.3, 0.7, 0.7),
	}
	Fill(params, dst)

	if got := dst.Pix[4*size+4]; got != 1 {
		t.Errorf("interior texel = %v, want 1", got)
	}
	if got := dst.Pix[1*size+1]; got != 0 {
		t.Errorf("exterior texel = %v, want 0", got)
	}
}

// TestFillRayConsensus tests that a single ray reporting zero winding
// vetoes the texel even when other rays report hits.
func TestFillRayConsensus(t *testing.T) {
	const size = 8
	// An unclosed outline of a single vertical segment: a leftward ray
	// from the right half crosses it, but a vertical ray never does.
	segs := []Segment{Seg(Vec2{0.5, 0}, Vec2{0.5, 1})}

	one := NewGrayImage(size, size)
	Fill(&FillParams{
		Extent:   Vec2{X: size, Y: size},
		Rays:     []Vec2{{X: -1, Y: 0}},
		Segments: segs,
	}, one)
	if got := one.Pix[4*size+6]; got != 1 {
		t.Fatalf("single crossing ray = %v, want 1", got)
	}

	both := NewGrayImage(size, size)
	Fill(&FillParams{
		Extent:   Vec2{X: size, Y: size},
		Rays:     []Vec2{{X: -1, Y: 0}, {X: 0, Y: 1}},
		Segments: segs,
	}, both)
	if got := both.Pix[4*size+6]; got != 0 {
		t.Errorf("with vetoing ray = %v, want 0", got)
	}
}

// TestFillParallelMatchesSequential tests that parallel dispatch is
// bit-identical to sequential dispatch across worker counts.
func TestFillParallelMatchesSequential(t *testing.T) {
	const size = 32
	params := &FillParams{
		Extent:   Vec2{X: size, Y: size},
		Rays:     testRays(),
		Segments: square(0.2, 0.15, 0.85, 0.8),
	}

	want := NewGrayImage(size, size)
	Fill(params, want)

	for _, workers := range []int{1, 2, 4} {
		pool := parallel.NewWorkerPool(workers)
		got := NewGrayImage(size, size)
		FillParallel(params, got, pool)
		pool.Close()

		for i := range want.Pix {
			if got.Pix[i] != want.Pix[i] {
				t.Errorf("workers=%d: texel %d = %v, want %v",
					workers, i, got.Pix[i], want.Pix[i])
				break
			}
		}
	}
}

// TestIntersect tests the segment intersection primitive directly.
func TestIntersect(t *testing.T) {
	seg := Seg(Vec2{0.5, 0}, Vec2{0.5, 1})

	t.Run("crossing sides differ in sign", func(t *testing.T) {
		hitL, wL := intersect(Vec2{0.25, 0.5}, Vec2{1, 0}, seg)
		hitR, wR := intersect(Vec2{0.75, 0.5}, Vec2{-1, 0}, seg)
		if !hitL || !hitR {
			t.Fatalf("expected hits from both sides: left=%v right=%v", hitL, hitR)
		}
		if wL >= 0 || wR <= 0 {
			t.Errorf("winding signs: left=%v right=%v, want opposite sides", wL, wR)
		}
	})

	t.Run("parallel is no hit", func(t *testing.T) {
		if hit, _ := intersect(Vec2{0.25, 0.5}, Vec2{0, 1}, seg); hit {
			t.Error("ray parallel to segment reported a hit")
		}
	})

	t.Run("collinear is no hit", func(t *testing.T) {
		if hit, _ := intersect(Vec2{0.5, 0.5}, Vec2{0, 1}, seg); hit {
			t.Error("ray collinear with segment reported a hit")
		}
	})

	t.Run("closed interval endpoints", func(t *testing.T) {
		// Ray origin exactly on the segment: t = 0.
		if hit, _ := intersect(Vec2{0.5, 0.5}, Vec2{1, 0}, seg); !hit {
			t.Error("t = 0 crossing not counted")
		}
		// Ray terminus exactly on the segment: t = 1.
		if hit, _ := intersect(Vec2{0.25, 0.5}, Vec2{0.25, 0}, seg); !hit {
			t.Error("t = 1 crossing not counted")
		}
		// Crossing exactly at a segment endpoint: u = 0.
		if hit, _ := intersect(Vec2{0.25, 0}, Vec2{1, 0}, seg); !hit {
			t.Error("u = 0 crossing not counted")
		}
		// Crossing exactly at the far endpoint: u = 1.
		if hit, _ := intersect(Vec2{0.25, 1}, Vec2{1, 0}, seg); !hit {
			t.Error("u = 1 crossing not counted")
		}
	})

	t.Run("miss beyond bounds", func(t *testing.T) {
		// Crossing past the ray terminus.
		if hit, _ := intersect(Vec2{0, 0.5}, Vec2{0.2, 0}, seg); hit {
			t.Error("crossing with t > 1 counted")
		}
		// Crossing beyond the segment extent.
		if hit, _ := intersect(Vec2{0.25, 1.5}, Vec2{1, 0}, seg); hit {
			t.Error("crossing with u > 1 counted")
		}
	})
}
