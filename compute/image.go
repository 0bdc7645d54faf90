// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compute

// Image is a 2D texel store bound to a kernel dispatch.
//
// Load returns the zero texel for coordinates outside the image bounds.
// This is the border policy of every kernel in this package, not an
// error: the hinting and downscale filters deliberately read one texel
// past the source edges.
//
// Implementations mirror GPU storage image formats: a texel is always
// exchanged as four float32 channels, and the bound format decides
// which channels are retained on store.
type Image interface {
	// Extent returns the image dimensions in texels.
	Extent() (w, h int)

	// Load reads the texel at (x, y), or the zero texel out of bounds.
	Load(x, y int) [4]float32

	// Store writes the texel at (x, y). Out-of-bounds stores are
	// dropped; dispatch masking makes them unreachable from kernels.
	Store(x, y int, texel [4]float32)
}

// GrayImage is a single-channel float32 image, the R8-style format of
// coverage bitmaps. Stores keep only the red channel.
//
// GrayImage is safe for concurrent kernel access because dispatch
// guarantees disjoint writes; it is not otherwise synchronized.
type GrayImage struct {
	Width  int
	Height int
	Pix    []float32 // row-major, len Width*Height
}

// NewGrayImage allocates a zeroed single-channel image.
func NewGrayImage(w, h int) *GrayImage {
	return &GrayImage{Width: w, Height: h, Pix: make([]float32, w*h)}
}

// Extent returns the image dimensions.
func (m *GrayImage) Extent() (w, h int) { return m.Width, m.Height }

// Load returns (r, 0, 0, 1) in bounds and the zero texel outside.
func (m *GrayImage) Load(x, y int) [4]float32 {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return [4]float32{}
	}
	return [4]float32{m.Pix[y*m.Width+x], 0, 0, 1}
}

// Store writes the red channel at (x, y).
func (m *GrayImage) Store(x, y int, texel [4]float32) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	m.Pix[y*m.Width+x] = texel[0]
}

// RGBAImage is a four-channel float32 image used for subpixel-shaped
// output.
type RGBAImage struct {
	Width  int
	Height int
	Pix    []float32 // row-major, 4 floats per texel, len Width*Height*4
}

// NewRGBAImage allocates a zeroed four-channel image.
func NewRGBAImage(w, h int) *RGBAImage {
	return &RGBAImage{Width: w, Height: h, Pix: make([]float32, w*h*4)}
}

// Extent returns the image dimensions.
func (m *RGBAImage) Extent() (w, h int) { return m.Width, m.Height }

// Load returns the texel at (x, y), or the zero texel outside bounds.
func (m *RGBAImage) Load(x, y int) [4]float32 {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return [4]float32{}
	}
	i := (y*m.Width + x) * 4
	return [4]float32{m.Pix[i], m.Pix[i+1], m.Pix[i+2], m.Pix[i+3]}
}

// Store writes all four channels at (x, y).
func (m *RGBAImage) Store(x, y int, texel [4]float32) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	i := (y*m.Width + x) * 4
	m.Pix[i] = texel[0]
	m.Pix[i+1] = texel[1]
	m.Pix[i+2] = texel[2]
	m.Pix[i+3] = texel[3]
}
