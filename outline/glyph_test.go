package outline

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/glyphcs/compute"
)

func TestNormalize(t *testing.T) {
	// Rectangle in pixel space, baseline at y=0, glyph above it.
	var b Builder
	b.MoveTo(compute.Vec2{X: 1.25, Y: -7.5})
	b.LineTo(compute.Vec2{X: 6.5, Y: -7.5})
	b.LineTo(compute.Vec2{X: 6.5, Y: -1.25})
	b.LineTo(compute.Vec2{X: 1.25, Y: -1.25})
	segs := b.Finish()

	g, err := Normalize(segs, 7.0)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	// Bounds [1.25, 6.5] x [-7.5, -1.25] expand to [1, 7] x [-8, -1].
	if g.Width != 6 || g.Height != 7 {
		t.Errorf("extent = %dx%d, want 6x7", g.Width, g.Height)
	}
	if g.BearingX != 1 {
		t.Errorf("BearingX = %d, want 1", g.BearingX)
	}
	if g.Top != -8 {
		t.Errorf("Top = %d, want -8", g.Top)
	}

	// The expansion added 6 - 5.25 = 0.75 of width.
	if !near(g.Advance, 7.0-0.75) {
		t.Errorf("Advance = %v, want 6.25", g.Advance)
	}

	// All normalized coordinates stay strictly inside the unit domain.
	minX, minY := float32(1), float32(1)
	maxX, maxY := float32(0), float32(0)
	for _, s := range g.Segments {
		minX = min(minX, s.X1, s.X2)
		maxX = max(maxX, s.X1, s.X2)
		minY = min(minY, s.Y1, s.Y2)
		maxY = max(maxY, s.Y1, s.Y2)
	}
	if minX <= 0 || minY <= 0 || maxX >= 1 || maxY >= 1 {
		t.Errorf("normalized bounds [%v, %v] x [%v, %v] touch the domain border",
			minX, maxX, minY, maxY)
	}
	if !near(minX, 0.25/6) || !near(maxX, 5.5/6) {
		t.Errorf("normalized X bounds = [%v, %v], want [%v, %v]",
			minX, maxX, 0.25/6, 5.5/6)
	}
	if !near(minY, 0.5/7) || !near(maxY, 6.75/7) {
		t.Errorf("normalized Y bounds = [%v, %v], want [%v, %v]",
			minY, maxY, 0.5/7, 6.75/7)
	}
}

func TestNormalizeEmptyOutline(t *testing.T) {
	g, err := Normalize(nil, 3.5)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if g.Width != 0 || g.Height != 0 || g.Segments != nil {
		t.Errorf("empty outline: extent %dx%d with %d segments, want all zero",
			g.Width, g.Height, len(g.Segments))
	}
	if g.Advance != 3.5 {
		t.Errorf("Advance = %v, want 3.5", g.Advance)
	}
}

func TestNormalizeDegenerateBounds(t *testing.T) {
	nan := float32(math.NaN())
	segs := []compute.Segment{{X1: nan, Y1: 0, X2: 1, Y2: 1}}

	if _, err := Normalize(segs, 1); !errors.Is(err, ErrDegenerateOutline) {
		t.Errorf("err = %v, want ErrDegenerateOutline", err)
	}
}

func TestNormalizeMinimumExtent(t *testing.T) {
	// A sliver narrower than a pixel still gets a whole-pixel extent.
	var b Builder
	b.MoveTo(compute.Vec2{X: 2.2, Y: -0.5})
	b.LineTo(compute.Vec2{X: 2.4, Y: -0.5})
	b.LineTo(compute.Vec2{X: 2.3, Y: -0.1})
	segs := b.Finish()

	g, err := Normalize(segs, 1)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if g.Width < 1 || g.Height < 1 {
		t.Errorf("extent = %dx%d, want at least 1x1", g.Width, g.Height)
	}
}

func TestRounding(t *testing.T) {
	tests := []struct {
		v           float32
		left, right float32
	}{
		{2.3, 2, 3},
		{2.0, 2, 3},
		{0.4, 0, 1},
		{-0.4, -1, 0},
		{-2.3, -3, -2},
		{-2.0, -3, -2},
	}

	for _, tt := range tests {
		if got := roundLeft(tt.v); got != tt.left {
			t.Errorf("roundLeft(%v) = %v, want %v", tt.v, got, tt.left)
		}
		if got := roundRight(tt.v); got != tt.right {
			t.Errorf("roundRight(%v) = %v, want %v", tt.v, got, tt.right)
		}
	}
}
