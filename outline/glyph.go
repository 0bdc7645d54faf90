package outline

import (
	"math"

	"github.com/gogpu/glyphcs/compute"
)

// Glyph is a scaled glyph outline prepared for rasterization.
//
// Width and Height are the extent of the image the glyph should be
// rasterized into. BearingX is the left offset from the pen position
// and Top the Y-down offset from the baseline to the first image row
// (negative above the baseline). Advance is the pen advance in pixels.
//
// Width, Height, BearingX and Top are zero and Segments nil when the
// glyph has no outline (a space, for example); the pen should still
// advance by Advance.
type Glyph struct {
	Width    int
	Height   int
	BearingX int
	Top      int
	Advance  float32

	// Segments is the flattened outline mapped into the unit sample
	// domain, Y down. Read-only once built.
	Segments []compute.Segment
}

// Normalize maps a flattened outline in pixel space (Y down, baseline
// at y=0) into the unit sample domain and derives the integer image
// extent and bearings.
//
// The pixel-space bounding box is expanded outward to whole pixels, so
// the outline never touches the image border exactly and the extent is
// at least one pixel per axis. The extra width the expansion added is
// deducted from the advance.
func Normalize(segs []compute.Segment, advance float32) (*Glyph, error) {
	if len(segs) == 0 {
		return &Glyph{Advance: advance}, nil
	}

	minX, minY := segs[0].X1, segs[0].Y1
	maxX, maxY := minX, minY
	for _, s := range segs {
		minX = min(minX, s.X1, s.X2)
		maxX = max(maxX, s.X1, s.X2)
		minY = min(minY, s.Y1, s.Y2)
		maxY = max(maxY, s.Y1, s.Y2)
	}

	xMinW := roundLeft(minX)
	xMaxW := roundRight(maxX)
	yMinW := roundLeft(minY)
	yMaxW := roundRight(maxY)

	w := xMaxW - xMinW
	h := yMaxW - yMinW
	// Negated comparison so non-finite coordinates land here too.
	if !(w > 0 && h > 0) {
		return nil, ErrDegenerateOutline
	}

	advance -= w - (maxX - minX)

	norm := make([]compute.Segment, len(segs))
	for i, s := range segs {
		norm[i] = compute.Segment{
			X1: (s.X1 - xMinW) / w,
			Y1: (s.Y1 - yMinW) / h,
			X2: (s.X2 - xMinW) / w,
			Y2: (s.Y2 - yMinW) / h,
		}
	}

	return &Glyph{
		Width:    int(w),
		Height:   int(h),
		BearingX: int(xMinW),
		Top:      int(yMinW),
		Advance:  advance,
		Segments: norm,
	}, nil
}

// roundLeft rounds toward negative infinity onto the next whole pixel,
// always moving left for non-integral negative values.
func roundLeft(v float32) float32 {
	t := float32(math.Trunc(float64(v)))
	if math.Signbit(float64(v)) {
		return t - 1
	}
	return t
}

// roundRight rounds toward positive infinity onto the next whole
// pixel, always moving right for non-negative values.
func roundRight(v float32) float32 {
	t := float32(math.Trunc(float64(v)))
	if !math.Signbit(float64(v)) {
		return t + 1
	}
	return t
}
