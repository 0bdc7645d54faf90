// Package glyphcs rasterizes vector glyph outlines through GPU-style
// data-parallel compute kernels.
//
// # Overview
//
// glyphcs takes a glyph outline that has been flattened into line
// segments and produces an anti-aliased coverage image, either as a
// grayscale alpha mask or as an LCD-style subpixel-shaped RGBA image.
// The three kernels at its core (fill, downscale, hinting) live in
// package compute and run on the CPU under a strict compute-dispatch
// execution model: one independent invocation per output texel,
// grouped into 8x4 workgroups.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glyphcs"
//	    "github.com/gogpu/glyphcs/outline"
//	)
//
//	// Prepare a glyph outline at 32 px/em from a parsed sfnt font.
//	g, err := outline.LoadGlyph(fnt, &buf, gid, 32)
//
//	// Rasterize it to a grayscale alpha mask.
//	r := glyphcs.New()
//	defer r.Close()
//	res, err := r.Rasterize(g)
//	img := res.Image() // image.Image, ready for PNG or atlas upload
//
// # Pipelines
//
// PipelineGray supersamples the fill 4x per axis and reduces it with
// the bicubic downscale kernel, producing a single-channel mask.
// PipelineSubpixel supersamples 12x horizontally and 4x vertically,
// downscales to 3x horizontal resolution and folds the triples into
// RGB subpixel coverage with the hinting kernel.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Rasterizer, Result, ray set constructors
//   - compute: the fill/hinting/downscale kernels and dispatch grid
//   - outline: outline extraction, flattening, unit-domain scaling
//   - backend/wgpu: WGSL compute pipelines for GPU execution
//   - render: integration surface for host GPU applications
//
// # Caller contract
//
// The kernels themselves validate nothing (they have no error
// channel); the Rasterizer rejects nil glyphs and non-positive
// extents before dispatching and returns an error instead of
// invoking a kernel on malformed input.
//
// # Coordinate System
//
// Sample space is the unit square with the origin at the top left and
// Y increasing down. Package outline produces segments in this space.
package glyphcs

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"
)
