package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	fontkit "github.com/Aloxaf/font-kit"
	"github.com/thatisuday/commando"
	"golang.org/x/image/math/f32"
)

const renderMargin = 4

func parseFormat(s string) (fontkit.Format, error) {
	switch strings.ToLower(s) {
	case "a8", "alpha":
		return fontkit.FormatA8, nil
	case "rgb24", "rgb":
		return fontkit.FormatRGB24, nil
	case "rgba32", "rgba":
		return fontkit.FormatRGBA32, nil
	}
	return fontkit.FormatA8, fmt.Errorf("unsupported canvas format %q (expected a8|rgb24|rgba32)", s)
}

func parseAntialiasing(s string) (fontkit.RasterizationOptions, error) {
	switch strings.ToLower(s) {
	case "bilevel", "none", "mono":
		return fontkit.Bilevel, nil
	case "grayscale", "gray":
		return fontkit.GrayscaleAA, nil
	case "subpixel", "lcd":
		return fontkit.SubpixelAA, nil
	}
	return fontkit.GrayscaleAA, fmt.Errorf("unsupported anti-aliasing %q (expected bilevel|grayscale|subpixel)", s)
}

func runRenderCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setVerbosity(flags)
	path := mustFontPath(args)
	r, err := parseChar(strings.TrimSpace(args["char"].Value))
	if err != nil {
		fatalf("%v", err)
	}
	index := mustFlagInt(flags["index"], "index")
	size := mustFlagInt(flags["size"], "size")
	if index < 0 || size <= 0 {
		fatalf("--index must be >= 0 and --size must be > 0")
	}
	format, err := parseFormat(mustFlagString(flags["format"], "format"))
	if err != nil {
		fatalf("%v", err)
	}
	aa, err := parseAntialiasing(mustFlagString(flags["aa"], "aa"))
	if err != nil {
		fatalf("%v", err)
	}
	outPath := mustFlagString(flags["output"], "output")
	face, err := mustLoader(flags)(fontkit.PathHandle(path, uint32(index)))
	if err != nil {
		fatalf("cannot load font: %v", err)
	}
	img, err := renderGlyph(face, r, float32(size), format, aa)
	if err != nil {
		fatalf("%v", err)
	}
	if err := writePNG(outPath, img); err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("wrote %s (%q of %s at %dpt, %v)\n", outPath, r, face.PostScriptName(), size, aa)
}

// renderGlyph rasterizes the glyph for r onto a canvas just large enough to
// hold it, plus a small margin.
func renderGlyph(face fontkit.Face, r rune, size float32, format fontkit.Format,
	aa fontkit.RasterizationOptions) (*image.Gray, error) {
	//
	gid, ok := face.GlyphForChar(r)
	if !ok {
		return nil, fmt.Errorf("font %s has no glyph for %q", face.PostScriptName(), r)
	}
	rb, err := face.RasterBounds(gid, size, f32.Vec2{}, fontkit.NoHinting, aa)
	if err != nil {
		return nil, err
	}
	origin := f32.Vec2{float32(renderMargin - rb.Min.X), float32(renderMargin - rb.Min.Y)}
	canvas := fontkit.NewCanvas(image.Pt(rb.Dx()+2*renderMargin, rb.Dy()+2*renderMargin), format)
	tracer().Debugf("glyph %d: raster bounds %v, canvas %v", gid, rb, canvas.Size)
	if err := face.RasterizeGlyph(canvas, gid, size, origin, fontkit.NoHinting, aa); err != nil {
		return nil, err
	}
	return canvas.ToImage(), nil
}

func writePNG(outPath string, img image.Image) error {
	if outPath == "" {
		return fmt.Errorf("output path is empty")
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("cannot encode png: %w", err)
	}
	return nil
}
