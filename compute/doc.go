// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package compute implements the glyph rasterization kernels as CPU
// executions of GPU-style compute dispatches.
//
// Three kernels convert a flattened glyph outline into an anti-aliased
// image:
//
//   - Fill classifies every destination pixel as inside or outside the
//     outline using multi-direction nonzero-winding ray casting and
//     produces a single-channel coverage bitmap.
//   - Downscale reduces a coverage bitmap 4x per axis with a cubic
//     Hermite filter.
//   - Hint compresses a coverage bitmap 3:1 horizontally into RGB
//     subpixel coverage, approximating LCD striped rendering.
//
// Every kernel is expressed as a pure function of its invocation
// coordinates over immutable inputs: no kernel reads another output
// texel, holds state between invocations, or writes a texel twice.
// Dispatch partitions the invocation grid into 8x4 workgroups; the
// partitioning is a scheduling detail only, and sequential and parallel
// dispatch produce bit-identical results.
//
// The kernels perform no input validation (see the package-level
// documentation of the glyphcs root package for the caller contract).
// All edge cases resolve to defined values: image reads outside the
// bounds return zero, and a ray parallel to a segment contributes no
// intersection.
package compute
