package outline

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphcs/compute"
)

// LoadGlyph extracts the outline of gid from an sfnt font at size
// pixels per em, flattens it and normalizes it into the unit sample
// domain.
//
// buf amortizes sfnt allocations across calls; it may be nil. sfnt
// glyph coordinates are already Y down, so they pass through
// unchanged.
func LoadGlyph(f *sfnt.Font, buf *sfnt.Buffer, gid sfnt.GlyphIndex, size float32) (*Glyph, error) {
	ppem := fixed.Int26_6(size * 64)

	segs, err := f.LoadGlyph(buf, gid, ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("outline: load glyph %d: %w", gid, err)
	}

	advance, err := f.GlyphAdvance(buf, gid, ppem, 0)
	if err != nil {
		return nil, fmt.Errorf("outline: glyph %d advance: %w", gid, err)
	}

	var b Builder
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			b.MoveTo(fixedVec(s.Args[0]))
		case sfnt.SegmentOpLineTo:
			b.LineTo(fixedVec(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			b.QuadTo(fixedVec(s.Args[0]), fixedVec(s.Args[1]))
		case sfnt.SegmentOpCubeTo:
			b.CubeTo(fixedVec(s.Args[0]), fixedVec(s.Args[1]), fixedVec(s.Args[2]))
		}
	}

	return Normalize(b.Finish(), fixedFloat(advance))
}

func fixedVec(p fixed.Point26_6) compute.Vec2 {
	return compute.Vec2{X: fixedFloat(p.X), Y: fixedFloat(p.Y)}
}

func fixedFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
