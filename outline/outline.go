// Package outline turns vector glyph outlines into the flattened,
// unit-domain segment buffers consumed by the compute kernels.
//
// The package sits upstream of package compute: it extracts outlines
// from parsed fonts (golang.org/x/image/font/sfnt or
// go-text/typesetting front ends), flattens curves into line segments,
// and normalizes the result into the [0,1]x[0,1] sample domain with
// Y down that the fill kernel expects.
package outline

import (
	"errors"

	"github.com/gogpu/glyphcs/compute"
)

// ErrNoOutline is returned when a glyph carries no vector outline
// (bitmap-only or color glyphs).
var ErrNoOutline = errors.New("outline: glyph has no vector outline")

// ErrDegenerateOutline is returned when an outline's bounds collapse to
// an empty image extent.
var ErrDegenerateOutline = errors.New("outline: degenerate outline bounds")

// curveChords is the number of line segments a curve is flattened
// into. Fixed subdivision keeps the segment buffer size predictable;
// at glyph supersampling resolutions 8 chords stay below a pixel of
// deviation.
const curveChords = 8

// Builder accumulates a flattened outline in pixel space.
//
// Contours are opened with MoveTo and closed either explicitly by the
// font's closing segment or implicitly by the next MoveTo / Finish:
// the builder emits the closing chord itself whenever the pen is away
// from the contour start, so the output loops are always closed and
// the winding test never sees an open boundary.
//
// The zero Builder is ready to use.
type Builder struct {
	segs  []compute.Segment
	start compute.Vec2
	pen   compute.Vec2
	open  bool
}

// MoveTo starts a new contour at p, closing any open contour first.
func (b *Builder) MoveTo(p compute.Vec2) {
	b.closeContour()
	b.start = p
	b.pen = p
	b.open = true
}

// LineTo appends a straight segment from the pen to p.
func (b *Builder) LineTo(p compute.Vec2) {
	if p == b.pen {
		return
	}
	b.segs = append(b.segs, compute.Seg(b.pen, p))
	b.pen = p
}

// QuadTo flattens a quadratic Bezier (control c, endpoint p) into
// chords.
func (b *Builder) QuadTo(c, p compute.Vec2) {
	p0 := b.pen
	prev := p0
	for i := 1; i <= curveChords; i++ {
		t := float32(i) / curveChords
		q := quadAt(p0, c, p, t)
		if q != prev {
			b.segs = append(b.segs, compute.Seg(prev, q))
			prev = q
		}
	}
	b.pen = p
}

// CubeTo flattens a cubic Bezier (controls c1, c2, endpoint p) into
// chords.
func (b *Builder) CubeTo(c1, c2, p compute.Vec2) {
	p0 := b.pen
	prev := p0
	for i := 1; i <= curveChords; i++ {
		t := float32(i) / curveChords
		q := cubeAt(p0, c1, c2, p, t)
		if q != prev {
			b.segs = append(b.segs, compute.Seg(prev, q))
			prev = q
		}
	}
	b.pen = p
}

// Finish closes the open contour and returns the accumulated segments.
// The builder can be reused after Finish; the returned slice is not.
func (b *Builder) Finish() []compute.Segment {
	b.closeContour()
	segs := b.segs
	b.segs = nil
	return segs
}

func (b *Builder) closeContour() {
	if b.open && b.pen != b.start {
		b.segs = append(b.segs, compute.Seg(b.pen, b.start))
	}
	b.open = false
}

func quadAt(p0, c, p1 compute.Vec2, t float32) compute.Vec2 {
	mt := 1 - t
	a := mt * mt
	b := 2 * mt * t
	d := t * t
	return compute.Vec2{
		X: a*p0.X + b*c.X + d*p1.X,
		Y: a*p0.Y + b*c.Y + d*p1.Y,
	}
}

func cubeAt(p0, c1, c2, p1 compute.Vec2, t float32) compute.Vec2 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return compute.Vec2{
		X: a*p0.X + b*c1.X + c*c2.X + d*p1.X,
		Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p1.Y,
	}
}
