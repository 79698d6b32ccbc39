package gotext

import (
	"fmt"
	"image"
	"sync"

	fontkit "github.com/Aloxaf/font-kit"
	"github.com/Aloxaf/font-kit/otquery"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/math/f32"
)

// Face is a font loaded with go-text. Faces are immutable and safe for
// concurrent use.
type Face struct {
	mu      sync.Mutex // guards face, which caches glyph extents
	face    *font.Face
	data    []byte // unpacked font bytes; nil if unavailable
	names   otquery.Names
	props   fontkit.Properties
	metrics fontkit.Metrics
	nglyphs int
}

var _ fontkit.Face = (*Face)(nil)

func (f *Face) PostScriptName() string         { return f.names.PostScript }
func (f *Face) FullName() string               { return f.names.Full }
func (f *Face) FamilyName() string             { return f.names.Family }
func (f *Face) StyleName() string              { return f.names.Subfamily }
func (f *Face) Properties() fontkit.Properties { return f.props }
func (f *Face) Metrics() fontkit.Metrics       { return f.metrics }
func (f *Face) GlyphCount() int                { return f.nglyphs }

func (f *Face) String() string {
	return fmt.Sprintf("%s %v", f.names.PostScript, f.props)
}

// IsMonospace checks the fixed pitch flag and, failing that, the advances
// of the font's glyphs.
func (f *Face) IsMonospace() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.face.IsMonospace()
}

// GlyphForChar maps r to a glyph with the font's cmap.
func (f *Face) GlyphForChar(r rune) (uint32, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	gid, ok := f.face.NominalGlyph(r)
	if !ok || gid == 0 {
		return 0, false
	}
	return uint32(gid), true
}

func (f *Face) checkGlyph(gid uint32) error {
	if gid >= uint32(f.nglyphs) {
		return fmt.Errorf("%w: glyph %d of %d in %s", fontkit.ErrNoSuchGlyph, gid,
			f.nglyphs, f.names.PostScript)
	}
	return nil
}

// Outline sends the outline of glyph gid, in font units with y up, to pb.
// Every contour is closed. Bitmap-only glyphs fail with fontkit.ErrParse.
func (f *Face) Outline(gid uint32, _ fontkit.HintingOptions, pb fontkit.PathBuilder) error {
	if err := f.checkGlyph(gid); err != nil {
		return err
	}
	f.mu.Lock()
	data := f.face.GlyphData(font.GID(gid))
	f.mu.Unlock()
	var segs []font.Segment
	switch g := data.(type) {
	case font.GlyphOutline:
		segs = g.Segments
	case font.GlyphSVG:
		segs = g.Outline.Segments
	case font.GlyphBitmap:
		if g.Outline == nil {
			return fmt.Errorf("%w: glyph %d is a bitmap without outline", fontkit.ErrParse, gid)
		}
		segs = g.Outline.Segments
	case nil:
		return fmt.Errorf("%w: no data for glyph %d", fontkit.ErrParse, gid)
	}
	pt := func(p font.SegmentPoint) f32.Vec2 {
		return f32.Vec2{p.X, p.Y}
	}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			if open {
				pb.Close()
			}
			pb.MoveTo(pt(seg.Args[0]))
			open = true
		case opentype.SegmentOpLineTo:
			pb.LineTo(pt(seg.Args[0]))
		case opentype.SegmentOpQuadTo:
			pb.QuadTo(pt(seg.Args[0]), pt(seg.Args[1]))
		case opentype.SegmentOpCubeTo:
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
	f.mu.Lock()
	ext, ok := f.face.GlyphExtents(font.GID(gid))
	f.mu.Unlock()
	if !ok {
		return fontkit.Rect{}, fmt.Errorf("%w: no extents for glyph %d", fontkit.ErrParse, gid)
	}
	// Height is negative for y-up extents
	return fontkit.Rect{
		Min: f32.Vec2{ext.XBearing, ext.YBearing + ext.Height},
		Max: f32.Vec2{ext.XBearing + ext.Width, ext.YBearing},
	}, nil
}

// Advance returns the horizontal advance of glyph gid in font units.
func (f *Face) Advance(gid uint32) (f32.Vec2, error) {
	if err := f.checkGlyph(gid); err != nil {
		return f32.Vec2{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f32.Vec2{f.face.HorizontalAdvance(font.GID(gid)), 0}, nil
}

// Origin returns the vertical origin of glyph gid, as computed by go-text
// from the 'VORG' or vertical metrics tables, if present.
func (f *Face) Origin(gid uint32) (f32.Vec2, error) {
	if err := f.checkGlyph(gid); err != nil {
		return f32.Vec2{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	x, y, _ := f.face.GlyphVOrigin(font.GID(gid))
	return f32.Vec2{float32(x), float32(y)}, nil
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
