package glyphcs

import (
	"errors"
	"image"

	"github.com/gogpu/glyphcs/compute"
	"github.com/gogpu/glyphcs/internal/parallel"
	"github.com/gogpu/glyphcs/outline"
)

// Common errors for rasterization.
var (
	// ErrNilGlyph is returned when Rasterize is given a nil glyph.
	ErrNilGlyph = errors.New("glyphcs: nil glyph")

	// ErrInvalidExtent is returned when a glyph declares a negative
	// image extent.
	ErrInvalidExtent = errors.New("glyphcs: invalid glyph extent")
)

// Rasterizer turns prepared glyph outlines into coverage images by
// chaining the compute kernels of the configured Pipeline.
//
// A Rasterizer owns a worker pool; Close releases it. All inputs to a
// dispatch are immutable shared views and every rasterization
// allocates its own output buffers, so a Rasterizer is safe for
// concurrent use.
type Rasterizer struct {
	pipeline Pipeline
	rays     []compute.Vec2
	pool     *parallel.WorkerPool
}

// New creates a Rasterizer. With no options it produces grayscale
// masks using the default two-direction ray set and GOMAXPROCS
// dispatch workers.
func New(opts ...Option) *Rasterizer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rays := o.rays
	if len(rays) == 0 {
		rays = DefaultRays()
	}

	return &Rasterizer{
		pipeline: o.pipeline,
		rays:     rays,
		pool:     parallel.NewWorkerPool(o.workers),
	}
}

// Close shuts down the dispatch workers. The Rasterizer must not be
// used afterwards. Close is safe to call multiple times.
func (r *Rasterizer) Close() {
	r.pool.Close()
}

// Pipeline returns the configured kernel chain.
func (r *Rasterizer) Pipeline() Pipeline {
	return r.pipeline
}

// Result is a rasterized glyph.
//
// Exactly one of Gray and RGBA is set, matching the pipeline that
// produced the result. For glyphs without an outline both are nil and
// only Advance is meaningful.
type Result struct {
	// Width and Height are the image extent in pixels.
	Width, Height int

	// BearingX is the left offset from the pen position and Top the
	// Y-down offset from the baseline to the first row.
	BearingX, Top int

	// Advance is the pen advance in pixels.
	Advance float32

	// Gray holds the alpha mask produced by PipelineGray.
	Gray *compute.GrayImage

	// RGBA holds the subpixel image produced by PipelineSubpixel.
	RGBA *compute.RGBAImage
}

// Rasterize renders one glyph through the configured pipeline.
//
// Glyphs without an outline (spaces) produce an empty Result carrying
// only the advance. This is the validation boundary in front of the
// kernels: malformed extents are rejected here, never dispatched.
func (r *Rasterizer) Rasterize(g *outline.Glyph) (*Result, error) {
	if g == nil {
		return nil, ErrNilGlyph
	}
	if g.Width < 0 || g.Height < 0 {
		return nil, ErrInvalidExtent
	}
	if g.Width == 0 || g.Height == 0 || len(g.Segments) == 0 {
		return &Result{Advance: g.Advance}, nil
	}

	ssx, ssy := r.pipeline.Supersample()
	fillW := g.Width * ssx
	fillH := g.Height * ssy

	Logger().Debug("glyphcs: dispatch fill",
		"extent_w", fillW, "extent_h", fillH,
		"segments", len(g.Segments), "rays", len(r.rays))

	coverage := compute.NewGrayImage(fillW, fillH)
	params := &compute.FillParams{
		Extent:   compute.Vec2{X: float32(fillW), Y: float32(fillH)},
		Rays:     r.rays,
		Segments: g.Segments,
	}
	compute.FillParallel(params, coverage, r.pool)

	res := &Result{
		Width:    g.Width,
		Height:   g.Height,
		BearingX: g.BearingX,
		Top:      g.Top,
		Advance:  g.Advance,
	}

	switch r.pipeline {
	case PipelineSubpixel:
		// fill (12W x 4H) -> downscale (3W x H) -> hint (W x H).
		reduced := compute.NewGrayImage(g.Width*3, g.Height)
		compute.DownscaleParallel(coverage, reduced, r.pool)

		res.RGBA = compute.NewRGBAImage(g.Width, g.Height)
		compute.HintParallel(reduced, res.RGBA, r.pool)

	default:
		// fill (4W x 4H) -> downscale (W x H).
		res.Gray = compute.NewGrayImage(g.Width, g.Height)
		compute.DownscaleParallel(coverage, res.Gray, r.pool)
	}

	return res, nil
}

// Glyphs rasterizes a batch in order, stopping at the first error.
func (r *Rasterizer) Glyphs(glyphs []*outline.Glyph) ([]*Result, error) {
	results := make([]*Result, 0, len(glyphs))
	for _, g := range glyphs {
		res, err := r.Rasterize(g)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Image converts the result into a standard library image: an
// *image.Alpha mask for grayscale results, an *image.NRGBA for
// subpixel results. Empty results yield a 1x1 transparent image.
func (res *Result) Image() image.Image {
	switch {
	case res.Gray != nil:
		img := image.NewAlpha(image.Rect(0, 0, res.Width, res.Height))
		for y := 0; y < res.Height; y++ {
			for x := 0; x < res.Width; x++ {
				img.Pix[y*img.Stride+x] = unorm8(res.Gray.Pix[y*res.Width+x])
			}
		}
		return img

	case res.RGBA != nil:
		img := image.NewNRGBA(image.Rect(0, 0, res.Width, res.Height))
		for y := 0; y < res.Height; y++ {
			for x := 0; x < res.Width; x++ {
				src := (y*res.Width + x) * 4
				dst := y*img.Stride + x*4
				img.Pix[dst+0] = unorm8(res.RGBA.Pix[src+0])
				img.Pix[dst+1] = unorm8(res.RGBA.Pix[src+1])
				img.Pix[dst+2] = unorm8(res.RGBA.Pix[src+2])
				img.Pix[dst+3] = unorm8(res.RGBA.Pix[src+3])
			}
		}
		return img

	default:
		return image.NewAlpha(image.Rect(0, 0, 1, 1))
	}
}

// unorm8 converts a [0,1] float to an 8-bit normalized value.
func unorm8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
