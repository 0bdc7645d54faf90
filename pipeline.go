package glyphcs

// Pipeline selects the kernel chain a Rasterizer runs after the fill
// pass.
type Pipeline int

const (
	// PipelineGray renders a grayscale alpha mask: the outline is
	// filled at 4x supersampling per axis and reduced to target size
	// by the bicubic downscale kernel.
	PipelineGray Pipeline = iota

	// PipelineSubpixel renders an LCD-style subpixel-shaped RGBA
	// image: the outline is filled at 12x horizontal and 4x vertical
	// supersampling, downscaled to 3x horizontal resolution, and
	// folded into RGB subpixel coverage by the hinting kernel.
	PipelineSubpixel
)

// String returns the pipeline name.
func (p Pipeline) String() string {
	switch p {
	case PipelineGray:
		return "Gray"
	case PipelineSubpixel:
		return "Subpixel"
	default:
		return "Unknown"
	}
}

// Supersample returns the fill-pass supersampling factors per axis.
func (p Pipeline) Supersample() (x, y int) {
	if p == PipelineSubpixel {
		return 12, 4
	}
	return 4, 4
}
