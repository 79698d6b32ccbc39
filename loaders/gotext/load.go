package gotext

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	fontkit "github.com/Aloxaf/font-kit"
	"github.com/Aloxaf/font-kit/internal/fontload"
	"github.com/Aloxaf/font-kit/ot"
	"github.com/Aloxaf/font-kit/otquery"
	"github.com/go-text/typesetting/font"
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
	data, err := fontload.HandleBytes(h)
	if err != nil {
		return nil, err
	}
	return fromUnpacked(data)
}

// FromBytes loads font number index from font data. The data is copied
// before a collection is unpacked; data itself is never modified.
func FromBytes(data []byte, index uint32) (*Face, error) {
	return FromHandle(fontkit.MemoryHandle(data, index))
}

// FromFile reads font number index from an open file.
func FromFile(file *os.File, index uint32) (*Face, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fontkit.ErrIO, err)
	}
	if err := ot.Unpack(data, index); err != nil {
		return nil, err
	}
	return fromUnpacked(data)
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
	data, err := io.ReadAll(file)
	if err != nil {
		return fontkit.ContainerType{}, fmt.Errorf("%w: %v", fontkit.ErrIO, err)
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

// FromNativeFontUnchecked wraps a face parsed by go-text. The caller vouches
// that native is valid and not used elsewhere concurrently.
//
// go-text does not keep the font's bytes: CopyFontData of the resulting face
// fails with fontkit.ErrFontDataUnavailable. Names other than the family are
// derived from the style properties, e.g. "Go Bold Italic".
func FromNativeFontUnchecked(native *font.Face) *Face {
	desc := native.Describe()
	f := &Face{
		face:  native,
		props: propertiesOf(desc.Aspect),
		// go-text does not export maxp; probe the glyph range instead
		nglyphs: probeGlyphCount(native),
	}
	style := styleName(f.props)
	f.names = otquery.Names{
		Family:     desc.Family,
		Subfamily:  style,
		Full:       desc.Family + " " + style,
		PostScript: strings.ReplaceAll(desc.Family, " ", "") + "-" + strings.ReplaceAll(style, " ", ""),
	}
	f.metrics = metricsOf(native)
	return f
}

func fromUnpacked(data []byte) (*Face, error) {
	otf, err := ot.Parse(data)
	if err != nil {
		return nil, err
	}
	native, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fontkit.ErrParse, err)
	}
	f := &Face{
		face:    native,
		data:    data,
		names:   otquery.FontNames(otf),
		props:   propertiesOf(native.Describe().Aspect),
		metrics: metricsOf(native),
		nglyphs: otquery.NumGlyphs(otf),
	}
	if f.props.Style == fontkit.StyleItalic {
		if os2, ok := otquery.OS2Info(otf); ok && os2.IsOblique() {
			f.props.Style = fontkit.StyleOblique
		}
	}
	tracer().Debugf("loaded face %s", f.names.PostScript)
	return f, nil
}

func propertiesOf(aspect font.Aspect) fontkit.Properties {
	props := fontkit.Properties{
		Style:   fontkit.StyleNormal,
		Weight:  fontkit.Weight(aspect.Weight),
		Stretch: fontkit.Stretch(aspect.Stretch),
	}
	if aspect.Style == font.StyleItalic {
		props.Style = fontkit.StyleItalic
	}
	return props
}

func metricsOf(native *font.Face) fontkit.Metrics {
	m := fontkit.Metrics{
		UnitsPerEm:         uint32(native.Upem()),
		UnderlinePosition:  native.LineMetric(font.UnderlinePosition),
		UnderlineThickness: native.LineMetric(font.UnderlineThickness),
		CapHeight:          native.LineMetric(font.CapHeight),
		XHeight:            native.LineMetric(font.XHeight),
	}
	if ext, ok := native.FontHExtents(); ok {
		m.Ascent, m.Descent, m.LineGap = ext.Ascender, ext.Descender, ext.LineGap
	}
	return m
}

// styleName composes a sub-family name like "Semibold Italic".
func styleName(props fontkit.Properties) string {
	var parts []string
	switch {
	case props.Weight <= 150:
		parts = append(parts, "Thin")
	case props.Weight <= 250:
		parts = append(parts, "ExtraLight")
	case props.Weight <= 350:
		parts = append(parts, "Light")
	case props.Weight <= 450:
	case props.Weight <= 550:
		parts = append(parts, "Medium")
	case props.Weight <= 650:
		parts = append(parts, "SemiBold")
	case props.Weight <= 750:
		parts = append(parts, "Bold")
	case props.Weight <= 850:
		parts = append(parts, "ExtraBold")
	default:
		parts = append(parts, "Black")
	}
	if props.Style != fontkit.StyleNormal {
		parts = append(parts, "Italic")
	}
	if len(parts) == 0 {
		return "Regular"
	}
	return strings.Join(parts, " ")
}

// probeGlyphCount finds the number of glyphs by bisection over the range of
// glyph IDs with a horizontal advance or glyph data.
func probeGlyphCount(native *font.Face) int {
	lo, hi := 0, 0x10000 // glyph lo exists, glyph hi does not
	exists := func(gid int) bool {
		return native.GlyphData(font.GID(gid)) != nil
	}
	if !exists(0) {
		return 0
	}
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if exists(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}
