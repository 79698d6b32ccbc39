package fontkit

import (
	"fmt"
	"image"
	"image/color"
)

// Format is the pixel format of a canvas.
type Format int

const (
	FormatRGBA32 Format = iota // premultiplied, 8 bits per channel
	FormatRGB24                // 8 bits per channel, no alpha
	FormatA8                   // coverage only
)

// BytesPerPixel returns the pixel size in bytes.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatRGBA32:
		return 4
	case FormatRGB24:
		return 3
	}
	return 1
}

func (f Format) String() string {
	switch f {
	case FormatRGBA32:
		return "RGBA32"
	case FormatRGB24:
		return "RGB24"
	case FormatA8:
		return "A8"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// RasterizationOptions select the anti-aliasing method.
type RasterizationOptions int

const (
	Bilevel     RasterizationOptions = iota // no anti-aliasing
	GrayscaleAA                             // grayscale anti-aliasing
	SubpixelAA                              // LCD subpixel anti-aliasing
)

func (ro RasterizationOptions) String() string {
	switch ro {
	case Bilevel:
		return "bilevel"
	case GrayscaleAA:
		return "grayscale"
	case SubpixelAA:
		return "subpixel"
	}
	return fmt.Sprintf("RasterizationOptions(%d)", int(ro))
}

// Canvas is a caller-owned pixel buffer for glyph rasterization.
// Row 0 is the top row of the image.
type Canvas struct {
	Pixels []byte
	Size   image.Point
	Stride int // bytes per row
	Format Format
}

// NewCanvas allocates a canvas with a tightly packed stride.
func NewCanvas(size image.Point, format Format) *Canvas {
	stride := size.X * format.BytesPerPixel()
	return &Canvas{
		Pixels: make([]byte, stride*size.Y),
		Size:   size,
		Stride: stride,
		Format: format,
	}
}

// Validate checks that dimensions, stride and buffer length are consistent.
func (c *Canvas) Validate() error {
	if c == nil {
		return fmt.Errorf("canvas is nil")
	}
	if c.Size.X < 0 || c.Size.Y < 0 {
		return fmt.Errorf("canvas has negative size %v", c.Size)
	}
	if c.Format < FormatRGBA32 || c.Format > FormatA8 {
		return fmt.Errorf("canvas has unknown pixel format %d", c.Format)
	}
	if c.Stride < c.Size.X*c.Format.BytesPerPixel() {
		return fmt.Errorf("canvas stride %d too small for width %d in format %s",
			c.Stride, c.Size.X, c.Format)
	}
	if c.Size.Y > 0 && len(c.Pixels) < (c.Size.Y-1)*c.Stride+c.Size.X*c.Format.BytesPerPixel() {
		return fmt.Errorf("canvas buffer of %d bytes too small for %v", len(c.Pixels), c.Size)
	}
	return nil
}

// Bounds is the canvas rectangle in pixel space.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rectangle{Max: c.Size}
}

// Clear sets all pixels to transparent black.
func (c *Canvas) Clear() {
	for y := 0; y < c.Size.Y; y++ {
		row := c.Pixels[y*c.Stride : y*c.Stride+c.Size.X*c.Format.BytesPerPixel()]
		clear(row)
	}
}

// BlitCoverage copies a coverage mask into the canvas, drawing white ink.
// Pixels outside the mask bounds are left untouched. Bilevel rasterization
// thresholds coverage at 50%.
func (c *Canvas) BlitCoverage(mask *image.Alpha, opts RasterizationOptions) {
	r := mask.Bounds().Intersect(c.Bounds())
	bpp := c.Format.BytesPerPixel()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			a := mask.AlphaAt(x, y).A
			if opts == Bilevel {
				if a >= 128 {
					a = 0xff
				} else {
					a = 0
				}
			}
			i := y*c.Stride + x*bpp
			switch c.Format {
			case FormatRGBA32:
				c.Pixels[i], c.Pixels[i+1], c.Pixels[i+2], c.Pixels[i+3] = a, a, a, a
			case FormatRGB24:
				c.Pixels[i], c.Pixels[i+1], c.Pixels[i+2] = a, a, a
			case FormatA8:
				c.Pixels[i] = a
			}
		}
	}
}

// CoverageAt returns the ink coverage at pixel (x, y).
func (c *Canvas) CoverageAt(x, y int) uint8 {
	if !(image.Point{x, y}).In(c.Bounds()) {
		return 0
	}
	i := y*c.Stride + x*c.Format.BytesPerPixel()
	if c.Format == FormatRGBA32 {
		return c.Pixels[i+3]
	}
	return c.Pixels[i]
}

// ToImage converts the canvas to a standard library image, black ink on
// white, suitable for encoding.
func (c *Canvas) ToImage() *image.Gray {
	img := image.NewGray(c.Bounds())
	for y := 0; y < c.Size.Y; y++ {
		for x := 0; x < c.Size.X; x++ {
			img.SetGray(x, y, color.Gray{Y: 0xff - c.CoverageAt(x, y)})
		}
	}
	return img
}
