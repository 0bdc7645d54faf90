//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	_ "embed"
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/glyphcs"
	"github.com/gogpu/glyphcs/compute"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
	types "github.com/gogpu/gputypes"
)

//go:embed shaders/fill.wgsl
var fillShaderWGSL string

//go:embed shaders/downscale.wgsl
var downscaleShaderWGSL string

//go:embed shaders/hinting.wgsl
var hintingShaderWGSL string

// GPUFillConfig is the GPU-side fill configuration.
// Must match Config in fill.wgsl.
type GPUFillConfig struct {
	Width       uint32 // Target width in texels
	Height      uint32 // Target height in texels
	NumSegments uint32 // Number of outline segments
	NumRays     uint32 // Number of ray directions
}

// GPUImageConfig is the GPU-side configuration shared by the
// downscale and hinting shaders.
// Must match Config in downscale.wgsl and hinting.wgsl.
type GPUImageConfig struct {
	SrcWidth  uint32 // Source width in texels
	SrcHeight uint32 // Source height in texels
	DstWidth  uint32 // Destination width in texels
	DstHeight uint32 // Destination height in texels
}

// GPURasterizer runs the glyph compute kernels on the GPU.
// It creates one compute pipeline per kernel and caches the compiled
// shader modules.
//
// Note: full GPU buffer binding requires HAL API extensions to expose
// buffer handles. Until then the pipelines serve as infrastructure
// verification and Fill/Downscale/Hint execute the kernels on the CPU.
type GPURasterizer struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue

	// Compute pipelines, one per kernel
	fillPipeline      hal.ComputePipeline
	downscalePipeline hal.ComputePipeline
	hintPipeline      hal.ComputePipeline

	// Shader modules (cached)
	fillModule      hal.ShaderModule
	downscaleModule hal.ShaderModule
	hintModule      hal.ShaderModule

	// Pipeline layouts and bind group layouts
	fillLayout       hal.PipelineLayout
	imageLayout      hal.PipelineLayout
	fillInputLayout  hal.BindGroupLayout
	imageInputLayout hal.BindGroupLayout
	outputBindLayout hal.BindGroupLayout

	// Compiled SPIR-V (cached for verification)
	fillSPIRV      []uint32
	downscaleSPIRV []uint32
	hintSPIRV      []uint32

	// State
	initialized  bool
	shadersReady bool
}

// NewGPURasterizer creates a GPU rasterizer on the given device.
// Returns an error if GPU compute is not supported.
func NewGPURasterizer(device hal.Device, queue hal.Queue) (*GPURasterizer, error) {
	if device == nil || queue == nil {
		return nil, fmt.Errorf("wgpu: device and queue are required")
	}

	r := &GPURasterizer{
		device: device,
		queue:  queue,
	}

	if err := r.init(); err != nil {
		r.Destroy()
		return nil, err
	}

	return r, nil
}

// init initializes GPU resources (shader modules, layouts, pipelines).
func (r *GPURasterizer) init() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	if r.fillSPIRV, err = compileWGSL(fillShaderWGSL); err != nil {
		return fmt.Errorf("wgpu: failed to compile fill shader: %w", err)
	}
	if r.downscaleSPIRV, err = compileWGSL(downscaleShaderWGSL); err != nil {
		return fmt.Errorf("wgpu: failed to compile downscale shader: %w", err)
	}
	if r.hintSPIRV, err = compileWGSL(hintingShaderWGSL); err != nil {
		return fmt.Errorf("wgpu: failed to compile hinting shader: %w", err)
	}
	r.shadersReady = true

	if err := r.createShaderModules(); err != nil {
		return err
	}
	if err := r.createBindGroupLayouts(); err != nil {
		return err
	}
	if err := r.createPipelineLayouts(); err != nil {
		return err
	}
	if err := r.createPipelines(); err != nil {
		return err
	}

	r.initialized = true
	glyphcs.Logger().Warn("wgpu: buffer binding unavailable, kernels execute on CPU")
	return nil
}

// compileWGSL compiles WGSL source to SPIR-V words.
func compileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, err
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

// createShaderModules creates one shader module per kernel.
func (r *GPURasterizer) createShaderModules() error {
	var err error
	r.fillModule, err = r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "glyph_fill_shader",
		Source: hal.ShaderSource{SPIRV: r.fillSPIRV},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create fill shader module: %w", err)
	}

	r.downscaleModule, err = r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "glyph_downscale_shader",
		Source: hal.ShaderSource{SPIRV: r.downscaleSPIRV},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create downscale shader module: %w", err)
	}

	r.hintModule, err = r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "glyph_hinting_shader",
		Source: hal.ShaderSource{SPIRV: r.hintSPIRV},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create hinting shader module: %w", err)
	}
	return nil
}

// createBindGroupLayouts creates the bind group layouts shared by the
// pipelines. The fill kernel binds config + rays + segments; the image
// kernels bind config + source texels. Both write to a storage output
// in group 1.
func (r *GPURasterizer) createBindGroupLayouts() error {
	fillInput, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "glyph_fill_input_layout",
		Entries: []types.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type:           types.BufferBindingTypeUniform,
					MinBindingSize: 16, // sizeof(GPUFillConfig)
				},
			},
			{
				Binding:    1,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type: types.BufferBindingTypeReadOnlyStorage,
				},
			},
			{
				Binding:    2,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type: types.BufferBindingTypeReadOnlyStorage,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create fill input bind group layout: %w", err)
	}
	r.fillInputLayout = fillInput

	imageInput, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "glyph_image_input_layout",
		Entries: []types.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type:           types.BufferBindingTypeUniform,
					MinBindingSize: 16, // sizeof(GPUImageConfig)
				},
			},
			{
				Binding:    1,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type: types.BufferBindingTypeReadOnlyStorage,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create image input bind group layout: %w", err)
	}
	r.imageInputLayout = imageInput

	output, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "glyph_output_layout",
		Entries: []types.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type: types.BufferBindingTypeStorage,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create output bind group layout: %w", err)
	}
	r.outputBindLayout = output

	return nil
}

// createPipelineLayouts creates the fill and image pipeline layouts.
func (r *GPURasterizer) createPipelineLayouts() error {
	fillLayout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "glyph_fill_pipeline_layout",
		BindGroupLayouts: []hal.BindGroupLayout{r.fillInputLayout, r.outputBindLayout},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create fill pipeline layout: %w", err)
	}
	r.fillLayout = fillLayout

	imageLayout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "glyph_image_pipeline_layout",
		BindGroupLayouts: []hal.BindGroupLayout{r.imageInputLayout, r.outputBindLayout},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create image pipeline layout: %w", err)
	}
	r.imageLayout = imageLayout
	return nil
}

// createPipelines creates the three compute pipelines.
func (r *GPURasterizer) createPipelines() error {
	fillPipeline, err := r.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  "glyph_fill_pipeline",
		Layout: r.fillLayout,
		Compute: hal.ComputeState{
			Module:     r.fillModule,
			EntryPoint: "cs_fill",
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create fill pipeline: %w", err)
	}
	r.fillPipeline = fillPipeline

	downscalePipeline, err := r.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  "glyph_downscale_pipeline",
		Layout: r.imageLayout,
		Compute: hal.ComputeState{
			Module:     r.downscaleModule,
			EntryPoint: "cs_downscale",
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create downscale pipeline: %w", err)
	}
	r.downscalePipeline = downscalePipeline

	hintPipeline, err := r.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  "glyph_hinting_pipeline",
		Layout: r.imageLayout,
		Compute: hal.ComputeState{
			Module:     r.hintModule,
			EntryPoint: "cs_hint",
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create hinting pipeline: %w", err)
	}
	r.hintPipeline = hintPipeline

	return nil
}

// Fill runs the fill kernel for the given parameters into dst.
//
// Note: full GPU dispatch requires buffer binding which needs HAL API
// extensions. Until then the kernel executes on the CPU with the same
// algorithm as the shader.
func (r *GPURasterizer) Fill(params *compute.FillParams, dst *compute.GrayImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return fmt.Errorf("wgpu: rasterizer not initialized")
	}
	if params == nil || dst == nil {
		return fmt.Errorf("wgpu: nil fill parameters or destination image")
	}

	// Validate the GPU data conversion even on the CPU path.
	_ = fillConfigToBytes(GPUFillConfig{
		Width:       uint32(dst.Width),
		Height:      uint32(dst.Height),
		NumSegments: uint32(len(params.Segments)),
		NumRays:     uint32(len(params.Rays)),
	})
	_ = raysToBytes(params.Rays)
	_ = segmentsToBytes(params.Segments)

	compute.Fill(params, dst)
	return nil
}

// Downscale runs the downscale kernel from src into dst.
func (r *GPURasterizer) Downscale(src, dst *compute.GrayImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return fmt.Errorf("wgpu: rasterizer not initialized")
	}
	if src == nil || dst == nil {
		return fmt.Errorf("wgpu: nil image")
	}

	_ = imageConfigToBytes(GPUImageConfig{
		SrcWidth:  uint32(src.Width),
		SrcHeight: uint32(src.Height),
		DstWidth:  uint32(dst.Width),
		DstHeight: uint32(dst.Height),
	})

	compute.Downscale(src, dst)
	return nil
}

// Hint runs the hinting kernel from src into dst.
func (r *GPURasterizer) Hint(src *compute.GrayImage, dst *compute.RGBAImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return fmt.Errorf("wgpu: rasterizer not initialized")
	}
	if src == nil || dst == nil {
		return fmt.Errorf("wgpu: nil image")
	}

	_ = imageConfigToBytes(GPUImageConfig{
		SrcWidth:  uint32(src.Width),
		SrcHeight: uint32(src.Height),
		DstWidth:  uint32(dst.Width),
		DstHeight: uint32(dst.Height),
	})

	compute.Hint(src, dst)
	return nil
}

// IsInitialized returns whether the rasterizer is initialized.
func (r *GPURasterizer) IsInitialized() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.initialized
}

// IsShaderReady returns whether all shaders compiled successfully.
func (r *GPURasterizer) IsShaderReady() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shadersReady
}

// SPIRVCode returns the compiled fill shader SPIR-V (for debugging).
func (r *GPURasterizer) SPIRVCode() []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fillSPIRV
}

// Destroy releases all GPU resources.
func (r *GPURasterizer) Destroy() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.device == nil {
		return
	}

	if r.fillPipeline != nil {
		r.device.DestroyComputePipeline(r.fillPipeline)
		r.fillPipeline = nil
	}
	if r.downscalePipeline != nil {
		r.device.DestroyComputePipeline(r.downscalePipeline)
		r.downscalePipeline = nil
	}
	if r.hintPipeline != nil {
		r.device.DestroyComputePipeline(r.hintPipeline)
		r.hintPipeline = nil
	}

	if r.fillLayout != nil {
		r.device.DestroyPipelineLayout(r.fillLayout)
		r.fillLayout = nil
	}
	if r.imageLayout != nil {
		r.device.DestroyPipelineLayout(r.imageLayout)
		r.imageLayout = nil
	}

	if r.fillInputLayout != nil {
		r.device.DestroyBindGroupLayout(r.fillInputLayout)
		r.fillInputLayout = nil
	}
	if r.imageInputLayout != nil {
		r.device.DestroyBindGroupLayout(r.imageInputLayout)
		r.imageInputLayout = nil
	}
	if r.outputBindLayout != nil {
		r.device.DestroyBindGroupLayout(r.outputBindLayout)
		r.outputBindLayout = nil
	}

	if r.fillModule != nil {
		r.device.DestroyShaderModule(r.fillModule)
		r.fillModule = nil
	}
	if r.downscaleModule != nil {
		r.device.DestroyShaderModule(r.downscaleModule)
		r.downscaleModule = nil
	}
	if r.hintModule != nil {
		r.device.DestroyShaderModule(r.hintModule)
		r.hintModule = nil
	}

	r.initialized = false
}

// Byte serialization helpers (for GPU buffer upload)

func writeUint32(buf []byte, offset int, val uint32) {
	buf[offset] = byte(val)
	buf[offset+1] = byte(val >> 8)
	buf[offset+2] = byte(val >> 16)
	buf[offset+3] = byte(val >> 24)
}

func writeFloat32(buf []byte, offset int, val float32) {
	writeUint32(buf, offset, math.Float32bits(val))
}

func fillConfigToBytes(cfg GPUFillConfig) []byte {
	buf := make([]byte, 16)
	writeUint32(buf, 0, cfg.Width)
	writeUint32(buf, 4, cfg.Height)
	writeUint32(buf, 8, cfg.NumSegments)
	writeUint32(buf, 12, cfg.NumRays)
	return buf
}

func imageConfigToBytes(cfg GPUImageConfig) []byte {
	buf := make([]byte, 16)
	writeUint32(buf, 0, cfg.SrcWidth)
	writeUint32(buf, 4, cfg.SrcHeight)
	writeUint32(buf, 8, cfg.DstWidth)
	writeUint32(buf, 12, cfg.DstHeight)
	return buf
}

func raysToBytes(rays []compute.Vec2) []byte {
	buf := make([]byte, len(rays)*8)
	for i, ray := range rays {
		off := i * 8
		writeFloat32(buf, off+0, ray.X)
		writeFloat32(buf, off+4, ray.Y)
	}
	return buf
}

func segmentsToBytes(segments []compute.Segment) []byte {
	buf := make([]byte, len(segments)*16)
	for i, seg := range segments {
		off := i * 16
		writeFloat32(buf, off+0, seg.X1)
		writeFloat32(buf, off+4, seg.Y1)
		writeFloat32(buf, off+8, seg.X2)
		writeFloat32(buf, off+12, seg.Y2)
	}
	return buf
}
