package outline

import (
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/glyphcs/compute"
)

// LoadGlyphGoText extracts the outline of gid from a go-text/typesetting
// face at size pixels per em, flattens it and normalizes it into the
// unit sample domain.
//
// Returns ErrNoOutline for glyphs whose data is not a vector outline
// (bitmap and SVG glyphs). typesetting outlines are in font units with
// Y up; coordinates are scaled and flipped to the Y-down convention
// here.
//
// font.Face is not safe for concurrent use; callers sharing a face
// across goroutines must serialize access.
func LoadGlyphGoText(face *font.Face, gid font.GID, size float32) (*Glyph, error) {
	out, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return nil, ErrNoOutline
	}

	scale := size / float32(face.Upem())

	var b Builder
	for _, seg := range out.Segments {
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			b.MoveTo(fontVec(seg.Args[0], scale))
		case opentype.SegmentOpLineTo:
			b.LineTo(fontVec(seg.Args[0], scale))
		case opentype.SegmentOpQuadTo:
			b.QuadTo(fontVec(seg.Args[0], scale), fontVec(seg.Args[1], scale))
		case opentype.SegmentOpCubeTo:
			b.CubeTo(fontVec(seg.Args[0], scale), fontVec(seg.Args[1], scale), fontVec(seg.Args[2], scale))
		}
	}

	advance := face.HorizontalAdvance(gid) * scale

	return Normalize(b.Finish(), advance)
}

// fontVec scales a font-unit point into pixel space, flipping Y down.
func fontVec(p opentype.SegmentPoint, scale float32) compute.Vec2 {
	return compute.Vec2{X: p.X * scale, Y: -p.Y * scale}
}
