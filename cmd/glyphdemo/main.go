// Command glyphdemo rasterizes a glyph from a TrueType font to a PNG.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/glyphcs"
	"github.com/gogpu/glyphcs/outline"
)

func main() {
	var (
		fontPath = flag.String("font", "", "path to a TrueType/OpenType font file")
		char     = flag.String("char", "g", "character to rasterize")
		size     = flag.Float64("size", 64, "pixel size")
		subpixel = flag.Bool("subpixel", false, "render with 3:1 subpixel shaping")
		workers  = flag.Int("workers", 0, "worker count (0 = GOMAXPROCS)")
		output   = flag.String("output", "glyph.png", "output file")
	)
	flag.Parse()

	if *fontPath == "" {
		log.Fatal("a -font file is required")
	}
	runes := []rune(*char)
	if len(runes) != 1 {
		log.Fatalf("-char must be a single character, got %q", *char)
	}

	data, err := os.ReadFile(*fontPath)
	if err != nil {
		log.Fatalf("Failed to read font: %v", err)
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		log.Fatalf("Failed to parse font: %v", err)
	}

	var buf sfnt.Buffer
	gid, err := f.GlyphIndex(&buf, runes[0])
	if err != nil {
		log.Fatalf("Failed to look up glyph: %v", err)
	}

	g, err := outline.LoadGlyph(f, &buf, gid, float32(*size))
	if err != nil {
		log.Fatalf("Failed to load outline: %v", err)
	}

	pipeline := glyphcs.PipelineGray
	if *subpixel {
		pipeline = glyphcs.PipelineSubpixel
	}
	r := glyphcs.New(
		glyphcs.WithPipeline(pipeline),
		glyphcs.WithWorkers(*workers),
	)
	defer r.Close()

	result, err := r.Rasterize(g)
	if err != nil {
		log.Fatalf("Failed to rasterize: %v", err)
	}

	out, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer out.Close()

	if err := png.Encode(out, result.Image()); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}

	log.Printf("Rasterized %q to %s (%dx%d, %s)\n",
		*char, *output, result.Width, result.Height, pipeline)
}
