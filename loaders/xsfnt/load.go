package xsfnt

import (
	"bytes"
	"fmt"
	"io"
	"os"

	fontkit "github.com/Aloxaf/font-kit"
	"github.com/Aloxaf/font-kit/internal/fontload"
	"github.com/Aloxaf/font-kit/ot"
	"github.com/Aloxaf/font-kit/otquery"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

var _ fontkit.Loader = Load

// Load is the fontkit.Loader of this backend.
func Load(h fontkit.Handle) (fontkit.Face, error) {
	f, err := FromHandle(h)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// FromHandle loads the font a handle references.
func FromHandle(h fontkit.Handle) (*Face, error) {
	sf, err := fontload.LoadHandle(h)
	if err != nil {
		return nil, err
	}
	return newFace(sf)
}

// FromBytes loads font number index from font data. The data is copied
// before a collection is unpacked; data itself is never modified.
func FromBytes(data []byte, index uint32) (*Face, error) {
	return FromHandle(fontkit.MemoryHandle(data, index))
}

// FromFile reads font number index from an open file.
func FromFile(file *os.File, index uint32) (*Face, error) {
	data, err := readAll(file)
	if err != nil {
		return nil, err
	}
	if err := ot.Unpack(data, index); err != nil {
		return nil, err
	}
	sf, err := fontload.ParseOpenTypeFont(data)
	if err != nil {
		return nil, err
	}
	return newFace(sf)
}

// FromPath loads font number index from a font file.
func FromPath(path string, index uint32) (*Face, error) {
	return FromHandle(fontkit.PathHandle(path, index))
}

// AnalyzeBytes reports whether data is a single font or a collection.
func AnalyzeBytes(data []byte) (fontkit.ContainerType, error) {
	return ot.Sniff(data)
}

// AnalyzeFile reports whether an open file is a single font or a collection.
func AnalyzeFile(file *os.File) (fontkit.ContainerType, error) {
	data, err := readAll(file)
	if err != nil {
		return fontkit.ContainerType{}, err
	}
	return ot.Sniff(data)
}

// AnalyzePath reports whether a font file is a single font or a collection.
func AnalyzePath(path string) (fontkit.ContainerType, error) {
	data, err := fontload.ReadFile(path)
	if err != nil {
		return fontkit.ContainerType{}, err
	}
	return ot.Sniff(data)
}

// FromNativeFontUnchecked wraps an already parsed sfnt font. The caller
// vouches that native is valid.
//
// If the source bytes of native cannot be retrieved, which is the case for
// fonts taken from an sfnt.Collection at an index > 0, names, properties and
// metrics are derived from the sfnt API alone, and CopyFontData fails with
// fontkit.ErrFontDataUnavailable.
func FromNativeFontUnchecked(native *sfnt.Font) *Face {
	var src bytes.Buffer
	if _, err := native.WriteSourceTo(nil, &src); err == nil {
		if sf, err := fontload.ParseOpenTypeFont(src.Bytes()); err == nil {
			if f, err := newFace(sf); err == nil {
				f.font = native
				return f
			}
		}
	}
	tracer().Debugf("source of native font unavailable, using sfnt metadata")
	return nativeFace(native)
}

func readAll(file *os.File) ([]byte, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fontkit.ErrIO, err)
	}
	return data, nil
}

func newFace(sf *fontload.ScalableFont) (*Face, error) {
	metrics, err := otquery.FontMetrics(sf.OT)
	if err != nil {
		return nil, err
	}
	f := &Face{
		font:    sf.SFNT,
		data:    sf.Binary,
		names:   otquery.FontNames(sf.OT),
		props:   otquery.FontProperties(sf.OT),
		metrics: metrics,
		mono:    otquery.IsMonospace(sf.OT),
	}
	if f.metrics.XHeight == 0 || f.metrics.CapHeight == 0 {
		// sfnt measures 'x' and 'H' for old OS/2 tables
		m := f.unitMetrics()
		f.metrics.XHeight = m.XHeight
		f.metrics.CapHeight = m.CapHeight
	}
	tracer().Debugf("loaded face %s", f.names.PostScript)
	return f, nil
}

// nativeFace builds a face from the sfnt API only.
func nativeFace(native *sfnt.Font) *Face {
	f := &Face{font: native}
	name := func(ids ...sfnt.NameID) string {
		for _, id := range ids {
			if s, err := native.Name(nil, id); err == nil && s != "" {
				return s
			}
		}
		return ""
	}
	f.names = otquery.Names{
		Family:     name(sfnt.NameIDTypographicFamily, sfnt.NameIDFamily),
		Subfamily:  name(sfnt.NameIDTypographicSubfamily, sfnt.NameIDSubfamily),
		Full:       name(sfnt.NameIDFull),
		PostScript: name(sfnt.NameIDPostScript),
	}
	f.metrics = f.unitMetrics()
	f.props = propertiesFromStyleName(f.names.Subfamily)
	if post := native.PostTable(); post != nil {
		f.metrics.UnderlinePosition = float32(post.UnderlinePosition)
		f.metrics.UnderlineThickness = float32(post.UnderlineThickness)
		f.mono = post.IsFixedPitch
		if post.ItalicAngle != 0 && f.props.Style == fontkit.StyleNormal {
			f.props.Style = fontkit.StyleItalic
		}
	}
	return f
}

// unitMetrics asks sfnt for the vertical metrics in font units.
func (f *Face) unitMetrics() fontkit.Metrics {
	upem := f.font.UnitsPerEm()
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, f.unitsPPEM(), font.HintingNone)
	if err != nil {
		return fontkit.Metrics{UnitsPerEm: uint32(upem)}
	}
	return fontkit.Metrics{
		UnitsPerEm: uint32(upem),
		Ascent:     unitsToFloat(m.Ascent),
		Descent:    -unitsToFloat(m.Descent),
		LineGap:    unitsToFloat(m.Height - m.Ascent - m.Descent),
		XHeight:    unitsToFloat(m.XHeight),
		CapHeight:  unitsToFloat(m.CapHeight),
	}
}

// unitsToFloat converts sfnt results obtained at unitsPPEM.
func unitsToFloat(x fixed.Int26_6) float32 {
	return float32(x)
}
