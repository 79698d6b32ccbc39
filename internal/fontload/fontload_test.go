package fontload

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	fontkit "github.com/Aloxaf/font-kit"
	"github.com/Aloxaf/font-kit/internal/fonttest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOpenTypeFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.ot")
	defer teardown()
	//
	f, err := ParseOpenTypeFont(fonttest.GoRegular)
	require.NoError(t, err)
	assert.Equal(t, "Go Regular", f.Fontname)
	assert.NotNil(t, f.OT.Table(0x68656164)) // head
	_, err = ParseOpenTypeFont([]byte("not a font at all"))
	assert.ErrorIs(t, err, fontkit.ErrUnknownFormat)
}

func TestUnpackedLeavesInputAlone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.ot")
	defer teardown()
	//
	ttc := fonttest.Collection(fonttest.GoRegular, fonttest.GoBold)
	orig := append([]byte{}, ttc...)
	buf, err := Unpacked(ttc, 1)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(orig, ttc), "input modified")
	f, err := ParseOpenTypeFont(buf)
	require.NoError(t, err)
	assert.Equal(t, "Go Bold", f.Fontname)
	_, err = Unpacked(ttc, 2)
	assert.ErrorIs(t, err, fontkit.ErrNoSuchFontInCollection)
}

func TestLoadHandle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.ot")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "go.ttc")
	require.NoError(t, os.WriteFile(path, fonttest.Collection(fonttest.GoRegular, fonttest.GoItalic), 0o644))
	f, err := LoadOpenTypeFont(path, 1)
	require.NoError(t, err)
	assert.Equal(t, "Go Italic", f.Fontname)
	f, err = LoadHandle(fontkit.MemoryHandle(fonttest.GoMono, 0))
	require.NoError(t, err)
	assert.Equal(t, "Go Mono", f.Fontname)
	_, err = LoadHandle(fontkit.MemoryHandle(fonttest.GoMono, 1))
	assert.ErrorIs(t, err, fontkit.ErrNotACollection)
	_, err = LoadOpenTypeFont(filepath.Join(t.TempDir(), "missing.ttf"), 0)
	assert.ErrorIs(t, err, fontkit.ErrIO)
}
