package fontkit

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"
)

// coverageRasterizer is a PathBuilder filling outlines in font units into a
// coverage mask. Font coordinates (x,y) map to pixel
// (ox + x·scale, height − (oy + y·scale)).
type coverageRasterizer struct {
	rast   *vector.Rasterizer
	scale  float32
	origin f32.Vec2
	height float32
	open   bool
}

func newCoverageRasterizer(size image.Point, scale float32, origin f32.Vec2) *coverageRasterizer {
	r := vector.NewRasterizer(size.X, size.Y)
	r.DrawOp = draw.Over
	return &coverageRasterizer{
		rast:   r,
		scale:  scale,
		origin: origin,
		height: float32(size.Y),
	}
}

func (cr *coverageRasterizer) pt(p f32.Vec2) (float32, float32) {
	return cr.origin[0] + p[0]*cr.scale, cr.height - (cr.origin[1] + p[1]*cr.scale)
}

func (cr *coverageRasterizer) MoveTo(to f32.Vec2) {
	if cr.open {
		cr.rast.ClosePath()
	}
	cr.rast.MoveTo(cr.pt(to))
	cr.open = true
}

func (cr *coverageRasterizer) LineTo(to f32.Vec2) {
	cr.rast.LineTo(cr.pt(to))
}

func (cr *coverageRasterizer) QuadTo(ctrl, to f32.Vec2) {
	bx, by := cr.pt(ctrl)
	cx, cy := cr.pt(to)
	cr.rast.QuadTo(bx, by, cx, cy)
}

func (cr *coverageRasterizer) CubeTo(ctrl1, ctrl2, to f32.Vec2) {
	bx, by := cr.pt(ctrl1)
	cx, cy := cr.pt(ctrl2)
	dx, dy := cr.pt(to)
	cr.rast.CubeTo(bx, by, cx, cy, dx, dy)
}

func (cr *coverageRasterizer) Close() {
	if cr.open {
		cr.rast.ClosePath()
		cr.open = false
	}
}

func (cr *coverageRasterizer) mask() *image.Alpha {
	cr.Close()
	size := cr.rast.Size()
	mask := image.NewAlpha(image.Rectangle{Max: size})
	if size.X > 0 && size.Y > 0 {
		cr.rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	}
	return mask
}

// RasterizeOutline renders glyph gid of a face into canvas, using the
// outline delivered by f.Outline. It is the shared implementation of
// Face.RasterizeGlyph for backends which rasterize outlines themselves.
//
// origin is in pixels, measured from the bottom-left corner of the canvas,
// with the y-axis pointing up. The canvas is cleared before drawing; ink is
// drawn white. Subpixel anti-aliasing is rendered as grayscale.
// A failing call leaves the canvas untouched.
func RasterizeOutline(f Face, canvas *Canvas, gid uint32, pointSize float32, origin f32.Vec2,
	hinting HintingOptions, opts RasterizationOptions) error {
	//
	if err := canvas.Validate(); err != nil {
		return err
	}
	upem := f.Metrics().UnitsPerEm
	if upem == 0 {
		return fmt.Errorf("units per em is 0: %w", ErrParse)
	}
	cr := newCoverageRasterizer(canvas.Size, pointSize/float32(upem), origin)
	if err := f.Outline(gid, hinting, cr); err != nil {
		return err
	}
	tracer().Debugf("rasterizing glyph %d at %.1fpt into %v canvas", gid, pointSize, canvas.Size)
	canvas.Clear()
	canvas.BlitCoverage(cr.mask(), opts)
	return nil
}
