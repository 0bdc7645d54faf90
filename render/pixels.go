// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/glyphcs/compute"
)

// PixelsR8 converts a grayscale kernel image to tightly packed R8Unorm
// texture bytes, one byte per texel in row-major order.
func PixelsR8(img *compute.GrayImage) []byte {
	if img == nil {
		return nil
	}
	buf := make([]byte, len(img.Pix))
	for i, v := range img.Pix {
		buf[i] = unorm8(v)
	}
	return buf
}

// PixelsRGBA8 converts an RGBA kernel image to tightly packed
// RGBA8Unorm texture bytes, four bytes per texel in row-major order.
func PixelsRGBA8(img *compute.RGBAImage) []byte {
	if img == nil {
		return nil
	}
	buf := make([]byte, len(img.Pix))
	for i, v := range img.Pix {
		buf[i] = unorm8(v)
	}
	return buf
}

// unorm8 converts a [0, 1] float to an 8-bit unorm value, clamping
// out-of-range input.
func unorm8(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}
