package fs

import (
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

func fontDir(t *testing.T) string {
	dir := t.TempDir()
	write := func(name string, data []byte) {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, data, 0o644))
	}
	write("Go-Regular.ttf", fonttest.GoRegular)
	write("sub/Go-Bold.TTF", fonttest.GoBold)
	write("sub/more/go-italics.ttc", fonttest.Collection(fonttest.GoItalic, fonttest.GoBoldItalic))
	write("Go-Mono.otf", fonttest.GoMono)
	write("README.txt", []byte("not a font"))
	write("broken.ttf", []byte("not a font either"))
	return dir
}

func TestIsFontFile(t *testing.T) {
	for path, expected := range map[string]bool{
		"a.ttf": true, "B.OTF": true, "c.ttc": true, "d.otc": true,
		"e.woff": false, "ttf": false, "f.pfb": false,
	} {
		assert.Equal(t, expected, IsFontFile(path), path)
	}
}

func TestDirectorySource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.source")
	defer teardown()
	//
	dir := fontDir(t)
	src, err := New(xsfnt.Load, dir)
	require.NoError(t, err)
	assert.Equal(t, 5, src.Len())
	assert.Equal(t, []string{filepath.Join(dir, "broken.ttf")}, src.Skipped())
	families, err := src.AllFamilies()
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Go Mono"}, families)
	fh, err := src.SelectFamilyByName("go")
	require.NoError(t, err)
	require.Len(t, fh.Fonts, 4)
	for _, h := range fh.Fonts {
		assert.True(t, h.IsPath(), "%v is not a path handle", h)
	}
	h, err := src.SelectByPostScriptName("Go-BoldItalic")
	require.NoError(t, err)
	assert.Equal(t, "go-italics.ttc", filepath.Base(h.Path()))
	assert.Equal(t, uint32(1), h.FontIndex())
	face, err := xsfnt.Load(h)
	require.NoError(t, err)
	assert.Equal(t, fontkit.StyleItalic, face.Properties().Style)
}

func TestBackendIndependence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.source")
	defer teardown()
	//
	dir := fontDir(t)
	a, err := New(xsfnt.Load, dir)
	require.NoError(t, err)
	b, err := New(gotext.Load, dir)
	require.NoError(t, err)
	fa, _ := a.AllFamilies()
	fb, _ := b.AllFamilies()
	assert.Equal(t, fa, fb)
}

func TestMissingDirectory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.source")
	defer teardown()
	//
	_, err := New(xsfnt.Load, filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, fontkit.ErrIO)
}

func TestSystemSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.source")
	defer teardown()
	//
	// contents depend on the machine; only check consistency
	src := NewSystem(xsfnt.Load)
	families, err := src.AllFamilies()
	require.NoError(t, err)
	t.Logf("%d system fonts in %d families", src.Len(), len(families))
	for _, name := range families {
		fh, err := src.SelectFamilyByName(name)
		require.NoError(t, err)
		assert.False(t, fh.IsEmpty())
	}
}
