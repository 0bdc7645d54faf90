package glyphcs

import (
	"math"

	"github.com/gogpu/glyphcs/compute"
)

// DefaultRays returns the standard two-direction ray set: unit vectors
// at 45 and 135 degrees. Two diagonal rays are the cheapest set that
// still catches the degenerate hits an axis-aligned ray suffers on the
// horizontal and vertical stems dominating glyph outlines.
func DefaultRays() []compute.Vec2 {
	return raysFromAngles([]float64{45, 135})
}

// UniformRays returns n unit ray directions evenly spaced over the full
// circle, starting at 20 degrees. The offset start keeps every
// direction away from the axes for any n divisible by 4.
//
// More rays buy robustness against vertex grazes at O(n) cost per
// sample. Returns nil for n < 1.
func UniformRays(n int) []compute.Vec2 {
	if n < 1 {
		return nil
	}
	angles := make([]float64, n)
	step := 360.0 / float64(n)
	for i := range angles {
		angles[i] = 20 + float64(i)*step
	}
	return raysFromAngles(angles)
}

func raysFromAngles(degrees []float64) []compute.Vec2 {
	rays := make([]compute.Vec2, len(degrees))
	for i, deg := range degrees {
		rad := deg * math.Pi / 180
		rays[i] = compute.Vec2{
			X: float32(math.Cos(rad)),
			Y: float32(math.Sin(rad)),
		}
	}
	return rays
}
