// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render bridges rasterized glyph images to GPU frameworks.
//
// It defines the DeviceHandle integration point through which a host
// application shares its GPU device, describes the texture formats
// glyph results upload as (R8Unorm for grayscale coverage, RGBA8Unorm
// for subpixel output), and converts kernel float images to packed
// texture bytes.
package render
