package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	fontkit "github.com/Aloxaf/font-kit"
	"github.com/Aloxaf/font-kit/internal/fonttest"
	"github.com/Aloxaf/font-kit/loaders/gotext"
	"github.com/Aloxaf/font-kit/loaders/xsfnt"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeight(t *testing.T) {
	for input, expected := range map[string]fontkit.Weight{
		"700": 700, "bold": fontkit.WeightBold, "Semi-Bold": fontkit.WeightSemiBold,
		" regular ": 400, "1000": 1000, "350.5": 350.5,
	} {
		w, err := parseWeight(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, w, input)
	}
	for _, input := range []string{"0", "1001", "heavy", ""} {
		_, err := parseWeight(input)
		assert.Error(t, err, input)
	}
}

func TestParseStretch(t *testing.T) {
	for input, expected := range map[string]fontkit.Stretch{
		"0.75": 0.75, "75%": 0.75, "condensed": fontkit.StretchCondensed, "200%": 2,
		"Ultra-Expanded": fontkit.StretchUltraExpanded,
	} {
		s, err := parseStretch(input)
		require.NoError(t, err, input)
		assert.InDelta(t, float32(expected), float32(s), 1e-6, input)
	}
	for _, input := range []string{"0.4", "250%", "narrow"} {
		_, err := parseStretch(input)
		assert.Error(t, err, input)
	}
}

func TestParseChar(t *testing.T) {
	for input, expected := range map[string]rune{"A": 'A', "ä": 'ä', "U+0041": 'A', "0x20AC": '€'} {
		r, err := parseChar(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, r, input)
	}
	for _, input := range []string{"AB", "U+ZZ", "U+110000", ""} {
		_, err := parseChar(input)
		assert.Error(t, err, input)
	}
}

func TestParseQuery(t *testing.T) {
	spec, err := parseQuery(`"Go Mono",monospace bold italic 75%`)
	require.NoError(t, err)
	assert.Equal(t, []fontkit.FamilySpec{
		fontkit.FamilyName("Go Mono"),
		fontkit.FamilyGeneric(fontkit.Monospace),
	}, spec.Families)
	assert.Equal(t, fontkit.Properties{
		Style:   fontkit.StyleItalic,
		Weight:  fontkit.WeightBold,
		Stretch: fontkit.StretchCondensed,
	}, spec.Properties)
	//
	spec, err = parseQuery("Go")
	require.NoError(t, err)
	assert.Equal(t, fontkit.DefaultProperties(), spec.Properties)
	//
	for _, line := range []string{"", `"Go Mono`, "Go fancy"} {
		_, err := parseQuery(line)
		assert.Error(t, err, line)
	}
}

func TestParseCommand(t *testing.T) {
	op, arg := parseCommand("ps Go-Bold")
	assert.Equal(t, opPostScript, op)
	assert.Equal(t, "Go-Bold", arg)
	op, _ = parseCommand("QUIT")
	assert.Equal(t, opQuit, op)
	op, arg = parseCommand("Go bold")
	assert.Equal(t, opQuery, op)
	assert.Equal(t, "Go bold", arg)
}

func TestLoaderFor(t *testing.T) {
	for _, backend := range []string{"xsfnt", "gotext", "GoText", ""} {
		_, err := loaderFor(backend)
		assert.NoError(t, err, backend)
	}
	_, err := loaderFor("freetype")
	assert.Error(t, err)
}

func TestRenderGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.cli")
	defer teardown()
	//
	for _, load := range []fontkit.Loader{xsfnt.Load, gotext.Load} {
		face, err := load(fontkit.MemoryHandle(fonttest.GoRegular, 0))
		require.NoError(t, err)
		img, err := renderGlyph(face, 'H', 32, fontkit.FormatRGB24, fontkit.GrayscaleAA)
		require.NoError(t, err)
		b := img.Bounds()
		// black ink on white, margins stay white
		assert.Equal(t, uint8(0xff), img.GrayAt(0, 0).Y)
		assert.Equal(t, uint8(0xff), img.GrayAt(b.Max.X-1, b.Max.Y-1).Y)
		dark := 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if img.GrayAt(x, y).Y < 0x80 {
					dark++
				}
			}
		}
		assert.Greater(t, dark, 0)
		//
		_, err = renderGlyph(face, '\U0001F600', 32, fontkit.FormatA8, fontkit.Bilevel)
		assert.Error(t, err)
	}
}

func TestWritePNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sub", "glyph.png")
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	require.NoError(t, writePNG(out, img))
	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestParseFormatAndAntialiasing(t *testing.T) {
	f, err := parseFormat("RGBA32")
	require.NoError(t, err)
	assert.Equal(t, fontkit.FormatRGBA32, f)
	_, err = parseFormat("bgr")
	assert.Error(t, err)
	aa, err := parseAntialiasing("lcd")
	require.NoError(t, err)
	assert.Equal(t, fontkit.SubpixelAA, aa)
	_, err = parseAntialiasing("cleartype")
	assert.Error(t, err)
}
