package glyphcs

import "testing"

func TestPipelineString(t *testing.T) {
	tests := []struct {
		p    Pipeline
		want string
	}{
		{PipelineGray, "Gray"},
		{PipelineSubpixel, "Subpixel"},
		{Pipeline(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Pipeline(%d).String() = %q, want %q", int(tt.p), got, tt.want)
		}
	}
}

func TestPipelineSupersample(t *testing.T) {
	if x, y := PipelineGray.Supersample(); x != 4 || y != 4 {
		t.Errorf("PipelineGray.Supersample() = %d, %d, want 4, 4", x, y)
	}
	if x, y := PipelineSubpixel.Supersample(); x != 12 || y != 4 {
		t.Errorf("PipelineSubpixel.Supersample() = %d, %d, want 12, 4", x, y)
	}
}
