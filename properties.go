package fontkit

import (
	"fmt"
	"strings"
)

// Style is the slant of a font, corresponding to CSS `font-style`.
type Style int

const (
	StyleNormal Style = iota // upright
	StyleItalic              // cursive, slanted forms
	StyleOblique             // slanted upright forms
)

func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleItalic:
		return "italic"
	case StyleOblique:
		return "oblique"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle reads a CSS style keyword. Matching is case-insensitive.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal", "regular", "upright":
		return StyleNormal, nil
	case "italic":
		return StyleItalic, nil
	case "oblique":
		return StyleOblique, nil
	}
	return StyleNormal, fmt.Errorf("unknown font style %q", s)
}

// Weight is the boldness of a font, on the CSS numeric scale 1…1000.
type Weight float32

// Named CSS weights.
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// Stretch is the width of a font relative to its normal width, corresponding
// to CSS `font-stretch` (1.0 = 100%). Valid values are 0.5 … 2.0.
type Stretch float32

// Named CSS stretches.
const (
	StretchUltraCondensed Stretch = 0.5
	StretchExtraCondensed Stretch = 0.625
	StretchCondensed      Stretch = 0.75
	StretchSemiCondensed  Stretch = 0.875
	StretchNormal         Stretch = 1.0
	StretchSemiExpanded   Stretch = 1.125
	StretchExpanded       Stretch = 1.25
	StretchExtraExpanded  Stretch = 1.5
	StretchUltraExpanded  Stretch = 2.0
)

// Properties are the style properties of a font, as defined in CSS.
// Properties is a value type and never changes after construction.
type Properties struct {
	Style   Style
	Weight  Weight
	Stretch Stretch
}

// DefaultProperties returns properties for an upright font of normal weight
// and normal width.
func DefaultProperties() Properties {
	return Properties{
		Style:   StyleNormal,
		Weight:  WeightNormal,
		Stretch: StretchNormal,
	}
}

// WithStyle returns a copy of p with style s.
func (p Properties) WithStyle(s Style) Properties {
	p.Style = s
	return p
}

// WithWeight returns a copy of p with weight w.
func (p Properties) WithWeight(w Weight) Properties {
	p.Weight = w
	return p
}

// WithStretch returns a copy of p with stretch s.
func (p Properties) WithStretch(s Stretch) Properties {
	p.Stretch = s
	return p
}

func (p Properties) String() string {
	return fmt.Sprintf("(%s, %g, %g)", p.Style, p.Weight, p.Stretch)
}
