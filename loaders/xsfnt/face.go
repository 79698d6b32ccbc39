package xsfnt

import (
	"fmt"
	"image"

	fontkit "github.com/Aloxaf/font-kit"
	"github.com/Aloxaf/font-kit/otquery"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/fixed"
)

// Face is a font loaded with golang.org/x/image/font/sfnt.
// Faces are immutable and safe for concurrent use.
type Face struct {
	font    *sfnt.Font
	data    []byte // unpacked font bytes; nil if unavailable
	names   otquery.Names
	props   fontkit.Properties
	metrics fontkit.Metrics
	mono    bool
}

var _ fontkit.Face = (*Face)(nil)

// Native returns the underlying sfnt font.
func (f *Face) Native() *sfnt.Font {
	return f.font
}

func (f *Face) PostScriptName() string         { return f.names.PostScript }
func (f *Face) FullName() string               { return f.names.Full }
func (f *Face) FamilyName() string             { return f.names.Family }
func (f *Face) StyleName() string              { return f.names.Subfamily }
func (f *Face) IsMonospace() bool              { return f.mono }
func (f *Face) Properties() fontkit.Properties { return f.props }
func (f *Face) Metrics() fontkit.Metrics       { return f.metrics }
func (f *Face) GlyphCount() int                { return f.font.NumGlyphs() }

func (f *Face) String() string {
	return fmt.Sprintf("%s %v", f.names.PostScript, f.props)
}

// GlyphForChar maps r to a glyph with the font's cmap. Runes mapping to
// glyph 0 ('.notdef') are reported as missing.
func (f *Face) GlyphForChar(r rune) (uint32, bool) {
	var buf sfnt.Buffer
	gid, err := f.font.GlyphIndex(&buf, r)
	if err != nil || gid == 0 {
		return 0, false
	}
	return uint32(gid), true
}

func (f *Face) checkGlyph(gid uint32) error {
	if gid >= uint32(f.font.NumGlyphs()) {
		return fmt.Errorf("%w: glyph %d of %d in %s", fontkit.ErrNoSuchGlyph, gid,
			f.font.NumGlyphs(), f.names.PostScript)
	}
	return nil
}

// unitsPPEM is the ppem for which sfnt's 26.6 results are plain font units,
// i.e. one 1/64 pixel per font unit.
func (f *Face) unitsPPEM() fixed.Int26_6 {
	return fixed.Int26_6(f.font.UnitsPerEm())
}

// Outline sends the unhinted outline of glyph gid, in font units with y up,
// to pb. Every contour is closed.
func (f *Face) Outline(gid uint32, _ fontkit.HintingOptions, pb fontkit.PathBuilder) error {
	if err := f.checkGlyph(gid); err != nil {
		return err
	}
	var buf sfnt.Buffer
	segs, err := f.font.LoadGlyph(&buf, sfnt.GlyphIndex(gid), f.unitsPPEM(), nil)
	if err != nil {
		return fmt.Errorf("%w: cannot load glyph %d: %v", fontkit.ErrParse, gid, err)
	}
	pt := func(p fixed.Point26_6) f32.Vec2 {
		return f32.Vec2{unitsToFloat(p.X), -unitsToFloat(p.Y)}
	}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				pb.Close()
			}
			pb.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			pb.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			pb.QuadTo(pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			pb.CubeTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
	if open {
		pb.Close()
	}
	return nil
}

// TypographicBounds returns the bounding box of glyph gid in font units.
func (f *Face) TypographicBounds(gid uint32) (fontkit.Rect, error) {
	if err := f.checkGlyph(gid); err != nil {
		return fontkit.Rect{}, err
	}
	var buf sfnt.Buffer
	b, _, err := f.font.GlyphBounds(&buf, sfnt.GlyphIndex(gid), f.unitsPPEM(), font.HintingNone)
	if err != nil {
		return fontkit.Rect{}, fmt.Errorf("%w: cannot get bounds of glyph %d: %v", fontkit.ErrParse, gid, err)
	}
	// sfnt's y-axis points down
	return fontkit.Rect{
		Min: f32.Vec2{unitsToFloat(b.Min.X), -unitsToFloat(b.Max.Y)},
		Max: f32.Vec2{unitsToFloat(b.Max.X), -unitsToFloat(b.Min.Y)},
	}, nil
}

// Advance returns the horizontal advance of glyph gid in font units.
func (f *Face) Advance(gid uint32) (f32.Vec2, error) {
	if err := f.checkGlyph(gid); err != nil {
		return f32.Vec2{}, err
	}
	var buf sfnt.Buffer
	adv, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), f.unitsPPEM(), font.HintingNone)
	if err != nil {
		return f32.Vec2{}, fmt.Errorf("%w: cannot get advance of glyph %d: %v", fontkit.ErrParse, gid, err)
	}
	return f32.Vec2{unitsToFloat(adv), 0}, nil
}

// Origin returns the vertical origin of glyph gid: horizontally centered on
// the advance, at the ascender. sfnt does not read vertical metrics tables.
func (f *Face) Origin(gid uint32) (f32.Vec2, error) {
	adv, err := f.Advance(gid)
	if err != nil {
		return f32.Vec2{}, err
	}
	return f32.Vec2{adv[0] / 2, f.metrics.Ascent}, nil
}

// CopyFontData returns a copy of the font's bytes.
func (f *Face) CopyFontData() ([]byte, error) {
	if f.data == nil {
		return nil, fmt.Errorf("%w: %s", fontkit.ErrFontDataUnavailable, f.names.PostScript)
	}
	data := make([]byte, len(f.data))
	copy(data, f.data)
	return data, nil
}

// SupportsHintingOptions is true for HintingNone only.
func (f *Face) SupportsHintingOptions(h fontkit.HintingOptions, _ bool) bool {
	return h.Mode == fontkit.HintingNone
}

// RasterBounds returns the pixel bounds of glyph gid, y-up.
func (f *Face) RasterBounds(gid uint32, pointSize float32, origin f32.Vec2, _ fontkit.HintingOptions,
	_ fontkit.RasterizationOptions) (image.Rectangle, error) {
	return fontkit.RasterBounds(f, gid, pointSize, origin)
}

// RasterizeGlyph renders glyph gid into canvas; see fontkit.RasterizeOutline.
func (f *Face) RasterizeGlyph(canvas *fontkit.Canvas, gid uint32, pointSize float32, origin f32.Vec2,
	hinting fontkit.HintingOptions, opts fontkit.RasterizationOptions) error {
	return fontkit.RasterizeOutline(f, canvas, gid, pointSize, origin, hinting, opts)
}
