package gotext

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"sync"
	"testing"

	fontkit "github.com/Aloxaf/font-kit"
	"github.com/Aloxaf/font-kit/internal/fonttest"
	"github.com/Aloxaf/font-kit/loaders/xsfnt"
	"github.com/go-text/typesetting/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
)

func TestFaceBasics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.loader")
	defer teardown()
	//
	face, err := FromBytes(fonttest.GoRegular, 0)
	require.NoError(t, err)
	assert.Equal(t, "GoRegular", face.PostScriptName())
	assert.Equal(t, "Go Regular", face.FullName())
	assert.Equal(t, "Go", face.FamilyName())
	assert.Equal(t, "Regular", face.StyleName())
	assert.Equal(t, fontkit.DefaultProperties(), face.Properties())
	assert.Equal(t, 712, face.GlyphCount())
	assert.False(t, face.IsMonospace())
	m := face.Metrics()
	assert.Equal(t, uint32(2048), m.UnitsPerEm)
	assert.Equal(t, float32(1935), m.Ascent)
	assert.Equal(t, float32(-432), m.Descent)
	assert.Equal(t, float32(1480), m.CapHeight)
	//
	mono, err := FromBytes(fonttest.GoMono, 0)
	require.NoError(t, err)
	assert.True(t, mono.IsMonospace())
	italic, err := FromBytes(fonttest.GoItalic, 0)
	require.NoError(t, err)
	assert.Equal(t, fontkit.StyleItalic, italic.Properties().Style)
}

func TestGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.loader")
	defer teardown()
	//
	face, err := FromBytes(fonttest.GoRegular, 0)
	require.NoError(t, err)
	gid, ok := face.GlyphForChar('A')
	require.True(t, ok)
	assert.Equal(t, uint32(36), gid)
	_, ok = face.GlyphForChar('\U0001F600')
	assert.False(t, ok)
	adv, err := face.Advance(gid)
	require.NoError(t, err)
	assert.Equal(t, f32.Vec2{1366, 0}, adv)
	bounds, err := face.TypographicBounds(gid)
	require.NoError(t, err)
	assert.Equal(t, fontkit.Rect{Min: f32.Vec2{19, 0}, Max: f32.Vec2{1342, 1480}}, bounds)
	origin, err := face.Origin(gid)
	require.NoError(t, err)
	// centered on the advance, the glyph box centered in the line height
	assert.Equal(t, f32.Vec2{683, 1923}, origin)
	path := &fontkit.Path{}
	require.NoError(t, face.Outline(gid, fontkit.NoHinting, path))
	assert.Equal(t, 2, path.Contours())
	//
	_, err = face.Origin(712)
	assert.ErrorIs(t, err, fontkit.ErrNoSuchGlyph)
	assert.ErrorIs(t, face.Outline(5000, fontkit.NoHinting, path), fontkit.ErrNoSuchGlyph)
}

func TestRasterize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.loader")
	defer teardown()
	//
	face, err := FromBytes(fonttest.GoRegular, 0)
	require.NoError(t, err)
	assert.False(t, face.SupportsHintingOptions(fontkit.HintingOptions{Mode: fontkit.HintingVertical, Size: 10}, false))
	gid, _ := face.GlyphForChar('o')
	canvas := fontkit.NewCanvas(image.Pt(40, 40), fontkit.FormatRGBA32)
	require.NoError(t, face.RasterizeGlyph(canvas, gid, 32, f32.Vec2{4, 8}, fontkit.NoHinting, fontkit.Bilevel))
	rb, err := face.RasterBounds(gid, 32, f32.Vec2{4, 8}, fontkit.NoHinting, fontkit.Bilevel)
	require.NoError(t, err)
	inside := image.Rect(rb.Min.X, 40-rb.Max.Y, rb.Max.X, 40-rb.Min.Y)
	ink := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			c := canvas.CoverageAt(x, y)
			require.True(t, c == 0 || c == 0xff, "bilevel pixel (%d,%d) = %d", x, y, c)
			if c != 0 {
				require.True(t, image.Pt(x, y).In(inside), "ink outside raster bounds at (%d,%d)", x, y)
				ink++
			}
		}
	}
	assert.Greater(t, ink, 0)
	// the counter of 'o' stays empty
	center := image.Pt((inside.Min.X+inside.Max.X)/2, (inside.Min.Y+inside.Max.Y)/2)
	assert.Zero(t, canvas.CoverageAt(center.X, center.Y))
}

func TestLoadingErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.loader")
	defer teardown()
	//
	ttc := fonttest.Collection(fonttest.GoRegular, fonttest.GoBold)
	_, err := FromBytes(ttc, 5)
	assert.ErrorIs(t, err, fontkit.ErrNoSuchFontInCollection)
	_, err = FromBytes(fonttest.GoBold, 1)
	assert.ErrorIs(t, err, fontkit.ErrNotACollection)
	_, err = FromPath(filepath.Join(t.TempDir(), "none.otf"), 0)
	assert.ErrorIs(t, err, fontkit.ErrIO)
	_, err = AnalyzeBytes([]byte{1, 2, 3})
	assert.ErrorIs(t, err, fontkit.ErrUnknownFormat)
}

func TestFileLoading(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.loader")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "go.ttc")
	require.NoError(t, os.WriteFile(path, fonttest.Collection(fonttest.GoMedium, fonttest.GoBoldItalic), 0o644))
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	ct, err := AnalyzeFile(file)
	require.NoError(t, err)
	assert.Equal(t, fontkit.CollectionOf(2), ct)
	_, err = file.Seek(0, 0)
	require.NoError(t, err)
	face, err := FromFile(file, 1)
	require.NoError(t, err)
	assert.Equal(t, fontkit.StyleItalic, face.Properties().Style)
	face, err = FromPath(path, 0)
	require.NoError(t, err)
	assert.Equal(t, fontkit.WeightMedium, face.Properties().Weight)
}

func TestNativeFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.loader")
	defer teardown()
	//
	native, err := font.ParseTTF(bytes.NewReader(fonttest.GoBold))
	require.NoError(t, err)
	face := FromNativeFontUnchecked(native)
	assert.Equal(t, "Go", face.FamilyName())
	assert.Equal(t, "SemiBold", face.StyleName())
	assert.Equal(t, "Go-SemiBold", face.PostScriptName())
	assert.Equal(t, 712, face.GlyphCount())
	assert.Equal(t, uint32(2048), face.Metrics().UnitsPerEm)
	_, err = face.CopyFontData()
	assert.ErrorIs(t, err, fontkit.ErrFontDataUnavailable)
	_, err = fontkit.FromFace(Load, face)
	assert.ErrorIs(t, err, fontkit.ErrFontDataUnavailable)
}

func TestConcurrentUse(t *testing.T) {
	face, err := FromBytes(fonttest.GoRegular, 0)
	require.NoError(t, err)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for gid := uint32(i); gid < 712; gid += 8 {
				_, _ = face.TypographicBounds(gid)
				_, _ = face.Advance(gid)
			}
		}(i)
	}
	wg.Wait()
}

// Both backends must agree on what they read from the same bytes.
func TestBackendsAgree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.loader")
	defer teardown()
	//
	ttc := fonttest.Collection(fonttest.GoRegular, fonttest.GoBold, fonttest.GoItalic, fonttest.GoMono)
	for index := uint32(0); index < 4; index++ {
		a, err := FromBytes(ttc, index)
		require.NoError(t, err)
		b, err := xsfnt.FromBytes(ttc, index)
		require.NoError(t, err)
		assert.Equal(t, b.FamilyName(), a.FamilyName(), "font %d", index)
		assert.Equal(t, b.PostScriptName(), a.PostScriptName(), "font %d", index)
		assert.Equal(t, b.Properties(), a.Properties(), "font %d", index)
		assert.Equal(t, b.Metrics(), a.Metrics(), "font %d", index)
		assert.Equal(t, b.GlyphCount(), a.GlyphCount(), "font %d", index)
		assert.Equal(t, b.IsMonospace(), a.IsMonospace(), "font %d", index)
		for _, r := range "Hgx&" {
			ga, _ := a.GlyphForChar(r)
			gb, _ := b.GlyphForChar(r)
			require.Equal(t, gb, ga, "glyph for %q", r)
			advA, _ := a.Advance(ga)
			advB, _ := b.Advance(gb)
			assert.Equal(t, advB, advA, "advance of %q", r)
		}
		// glyphs without curves, so path bounds equal the glyf header box
		for _, r := range "Hx" {
			gid, _ := a.GlyphForChar(r)
			boundsA, _ := a.TypographicBounds(gid)
			boundsB, _ := b.TypographicBounds(gid)
			assert.Equal(t, boundsB, boundsA, "bounds of %q", r)
		}
	}
}

func TestBackendsAgreeOnWidthClass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.loader")
	defer teardown()
	//
	for _, class := range []uint16{0, 3, 5, 10} {
		data := fonttest.WithWidthClass(fonttest.GoRegular, class)
		a, err := FromBytes(data, 0)
		require.NoError(t, err)
		b, err := xsfnt.FromBytes(data, 0)
		require.NoError(t, err)
		assert.Equal(t, b.Properties(), a.Properties(), "usWidthClass=%d", class)
		if class == 0 || class == 10 {
			assert.Equal(t, fontkit.StretchNormal, b.Properties().Stretch, "usWidthClass=%d", class)
		}
	}
}

func TestCopyFontDataRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.loader")
	defer teardown()
	//
	ttc := fonttest.Collection(fonttest.GoMono, fonttest.GoMedium, fonttest.GoItalic)
	for index := uint32(1); index < 3; index++ {
		face, err := FromBytes(ttc, index)
		require.NoError(t, err)
		data, err := face.CopyFontData()
		require.NoError(t, err)
		ct, err := AnalyzeBytes(data)
		require.NoError(t, err)
		assert.False(t, ct.IsCollection, "exported data is a single font")
		again, err := fontkit.FromFace(Load, face)
		require.NoError(t, err)
		assert.Equal(t, face.PostScriptName(), again.PostScriptName())
		assert.Equal(t, face.FamilyName(), again.FamilyName())
		assert.Equal(t, face.Properties(), again.Properties())
		assert.Equal(t, face.Metrics(), again.Metrics())
		assert.Equal(t, face.GlyphCount(), again.GlyphCount())
		gid, ok := again.GlyphForChar('g')
		require.True(t, ok)
		advA, err := face.Advance(gid)
		require.NoError(t, err)
		advB, err := again.Advance(gid)
		require.NoError(t, err)
		assert.Equal(t, advA, advB)
		// and across backends
		other, err := fontkit.FromFace(xsfnt.Load, face)
		require.NoError(t, err)
		assert.Equal(t, face.PostScriptName(), other.PostScriptName())
	}
}
