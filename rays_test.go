package glyphcs

import (
	"math"
	"testing"
)

func TestDefaultRays(t *testing.T) {
	rays := DefaultRays()
	if len(rays) != 2 {
		t.Fatalf("got %d rays, want 2", len(rays))
	}

	// 45 and 135 degrees.
	inv := float32(1 / math.Sqrt2)
	if !near(rays[0].X, inv) || !near(rays[0].Y, inv) {
		t.Errorf("ray 0 = %+v, want (%v, %v)", rays[0], inv, inv)
	}
	if !near(rays[1].X, -inv) || !near(rays[1].Y, inv) {
		t.Errorf("ray 1 = %+v, want (%v, %v)", rays[1], -inv, inv)
	}
}

func TestUniformRays(t *testing.T) {
	rays := UniformRays(12)
	if len(rays) != 12 {
		t.Fatalf("got %d rays, want 12", len(rays))
	}

	for i, r := range rays {
		length := math.Hypot(float64(r.X), float64(r.Y))
		if math.Abs(length-1) > 1e-6 {
			t.Errorf("ray %d length = %v, want 1", i, length)
		}

		// 20 degrees start, 30 degree step: never axis-aligned.
		if math.Abs(float64(r.X)) < 1e-3 || math.Abs(float64(r.Y)) < 1e-3 {
			t.Errorf("ray %d = %+v is axis-aligned", i, r)
		}
	}

	// First direction at 20 degrees.
	rad := 20 * math.Pi / 180
	if !near(rays[0].X, float32(math.Cos(rad))) || !near(rays[0].Y, float32(math.Sin(rad))) {
		t.Errorf("ray 0 = %+v, want 20 degree direction", rays[0])
	}
}

func TestUniformRaysInvalidCount(t *testing.T) {
	if got := UniformRays(0); got != nil {
		t.Errorf("UniformRays(0) = %v, want nil", got)
	}
	if got := UniformRays(-3); got != nil {
		t.Errorf("UniformRays(-3) = %v, want nil", got)
	}
}
