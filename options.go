package glyphcs

import "github.com/gogpu/glyphcs/compute"

// Option configures a Rasterizer during creation.
//
// Example:
//
//	// Grayscale masks, defaults throughout
//	r := glyphcs.New()
//
//	// Subpixel output with a 12-direction ray set
//	r := glyphcs.New(
//	    glyphcs.WithPipeline(glyphcs.PipelineSubpixel),
//	    glyphcs.WithRays(glyphcs.UniformRays(12)),
//	)
type Option func(*rasterizerOptions)

// rasterizerOptions holds optional configuration for Rasterizer creation.
type rasterizerOptions struct {
	pipeline Pipeline
	rays     []compute.Vec2
	workers  int
}

// defaultOptions returns the default rasterizer options.
func defaultOptions() rasterizerOptions {
	return rasterizerOptions{
		pipeline: PipelineGray,
		rays:     nil, // DefaultRays() is substituted if nil
		workers:  0,   // GOMAXPROCS
	}
}

// WithPipeline selects the kernel chain (grayscale or subpixel).
func WithPipeline(p Pipeline) Option {
	return func(o *rasterizerOptions) {
		o.pipeline = p
	}
}

// WithRays sets the ray-direction set used by the fill kernel. The
// slice is used as a shared read-only view; callers must not mutate it
// while the Rasterizer is in use. Directions should be unit length so
// the doubled test ray is guaranteed to exit the sample domain.
func WithRays(rays []compute.Vec2) Option {
	return func(o *rasterizerOptions) {
		o.rays = rays
	}
}

// WithWorkers sets the number of dispatch workers. Zero or negative
// selects GOMAXPROCS. One worker makes dispatch effectively
// sequential, which is occasionally useful when profiling; results are
// identical for any worker count.
func WithWorkers(n int) Option {
	return func(o *rasterizerOptions) {
		o.workers = n
	}
}
