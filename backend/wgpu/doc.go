// Package wgpu provides a GPU compute backend for the glyph kernels
// using gogpu/wgpu.
//
// The backend compiles the WGSL compute shaders embedded under
// shaders/ to SPIR-V with gogpu/naga and builds one compute pipeline
// per kernel:
//
//   - cs_fill: multi-ray winding fill of an outline into a coverage image
//   - cs_downscale: 4x4 bicubic reduction of a supersampled image
//   - cs_hint: 3:1 horizontal subpixel shaping into RGBA
//
// All three shaders dispatch 8x4 workgroups over the destination image,
// matching the CPU kernels in the compute package. Full GPU buffer
// binding requires HAL API extensions; until those land, the pipelines
// verify the GPU infrastructure and kernel execution runs on the CPU
// with identical results.
package wgpu
