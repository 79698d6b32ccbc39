package fontkit

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/math/f32"
)

// Face is a single loaded font. Implementations live in the loaders/…
// packages; they share no behavior, only this contract.
//
// Faces are immutable after construction. Coordinates of outlines, bounds,
// advances and origins are in font units, with the y-axis pointing up.
type Face interface {
	PostScriptName() string
	FullName() string
	FamilyName() string
	StyleName() string // sub-family name, e.g. "Bold Italic"
	IsMonospace() bool
	Properties() Properties
	Metrics() Metrics

	// GlyphForChar maps a rune to a glyph ID, using the font's cmap only.
	GlyphForChar(r rune) (uint32, bool)
	GlyphCount() int

	// Outline sends the outline of glyph gid to a path builder.
	Outline(gid uint32, hinting HintingOptions, pb PathBuilder) error
	TypographicBounds(gid uint32) (Rect, error)
	Advance(gid uint32) (f32.Vec2, error)
	// Origin is the origin of glyph gid for vertical layout, relative to the
	// horizontal origin.
	Origin(gid uint32) (f32.Vec2, error)

	// CopyFontData returns the bytes of the (single) font. Faces without a
	// retrievable byte source return ErrFontDataUnavailable.
	CopyFontData() ([]byte, error)

	SupportsHintingOptions(hinting HintingOptions, forRasterization bool) bool
	RasterBounds(gid uint32, pointSize float32, origin f32.Vec2, hinting HintingOptions,
		opts RasterizationOptions) (image.Rectangle, error)
	RasterizeGlyph(canvas *Canvas, gid uint32, pointSize float32, origin f32.Vec2,
		hinting HintingOptions, opts RasterizationOptions) error
}

// Metrics are font-wide measurements in font units.
// Descent is typically negative, as is UnderlinePosition.
type Metrics struct {
	UnitsPerEm         uint32
	Ascent             float32
	Descent            float32
	LineGap            float32
	UnderlinePosition  float32
	UnderlineThickness float32
	CapHeight          float32
	XHeight            float32
}

// ContainerType is the result of sniffing font data.
type ContainerType struct {
	IsCollection bool
	NumFonts     uint32 // 1 for single fonts
}

// SingleFont is the container type of non-collection font data.
var SingleFont = ContainerType{NumFonts: 1}

// CollectionOf returns the container type for a collection of n fonts.
func CollectionOf(n uint32) ContainerType {
	return ContainerType{IsCollection: true, NumFonts: n}
}

func (ct ContainerType) String() string {
	if ct.IsCollection {
		return fmt.Sprintf("collection(%d)", ct.NumFonts)
	}
	return "single"
}

// HintingMode selects grid-fitting of outlines.
type HintingMode int

const (
	HintingNone             HintingMode = iota // no hinting unless required to assemble the glyph
	HintingVertical                            // vertical grid-fitting only
	HintingVerticalSubpixel                    // vertical, tuned for subpixel AA
	HintingFull                                // horizontal and vertical grid-fitting
)

// HintingOptions is a hinting mode together with the point size used for
// grid-fitting. Size is ignored for HintingNone.
type HintingOptions struct {
	Mode HintingMode
	Size float32
}

// NoHinting is the zero value of HintingOptions.
var NoHinting = HintingOptions{}

// GridFittingSize returns the size used for grid-fitting, if any.
func (h HintingOptions) GridFittingSize() (float32, bool) {
	if h.Mode == HintingNone {
		return 0, false
	}
	return h.Size, true
}

// Rect is an axis-aligned rectangle in font units.
type Rect struct {
	Min, Max f32.Vec2
}

// Dx is the width of r.
func (r Rect) Dx() float32 { return r.Max[0] - r.Min[0] }

// Dy is the height of r.
func (r Rect) Dy() float32 { return r.Max[1] - r.Min[1] }

// Empty is true if r has no area.
func (r Rect) Empty() bool {
	return r.Min[0] >= r.Max[0] || r.Min[1] >= r.Max[1]
}

// RasterBounds computes the integer pixel bounds of glyph gid at point size
// `pointSize`: the typographic bounds are scaled by pointSize/UnitsPerEm,
// translated by origin and rounded outward. The result is y-up.
//
// Backends without a better estimate implement Face.RasterBounds with this.
func RasterBounds(f Face, gid uint32, pointSize float32, origin f32.Vec2) (image.Rectangle, error) {
	bounds, err := f.TypographicBounds(gid)
	if err != nil {
		return image.Rectangle{}, err
	}
	upem := f.Metrics().UnitsPerEm
	if upem == 0 {
		return image.Rectangle{}, fmt.Errorf("units per em is 0: %w", ErrParse)
	}
	scale := pointSize / float32(upem)
	r := image.Rect(
		int(math.Floor(float64(bounds.Min[0]*scale+origin[0]))),
		int(math.Floor(float64(bounds.Min[1]*scale+origin[1]))),
		int(math.Ceil(float64(bounds.Max[0]*scale+origin[0]))),
		int(math.Ceil(float64(bounds.Max[1]*scale+origin[1]))),
	)
	return r, nil
}
