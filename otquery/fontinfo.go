package otquery

import (
	fontkit "github.com/Aloxaf/font-kit"
	"github.com/Aloxaf/font-kit/ot"
	"github.com/Aloxaf/font-kit/stylemap"
)

// FontType returns a human readable name for the outline format of a font.
func FontType(otf *ot.Font) string {
	if otf == nil || otf.Header == nil {
		return "unknown"
	}
	switch otf.Header.FontType {
	case ot.FontTypeTrueType, ot.FontTypeApple:
		return "TrueType"
	case ot.FontTypeCFF:
		return "CFF"
	case ot.FontTypeType1:
		return "Type1"
	}
	return "unknown"
}

// FontProperties derives the style properties of a font from tables 'OS/2'
// and 'head'.
//
// The oblique bit of fsSelection takes precedence over the italic bit. Fonts
// without an 'OS/2' table fall back to the macStyle flags of 'head'.
func FontProperties(otf *ot.Font) fontkit.Properties {
	props := fontkit.DefaultProperties()
	head, _ := HeadInfo(otf)
	os2, ok := OS2Info(otf)
	if !ok {
		if head.IsBold() {
			props.Weight = fontkit.WeightBold
		}
		if head.IsItalic() {
			props.Style = fontkit.StyleItalic
		}
		return props
	}
	props.Weight = stylemap.WeightFromWeightClass(os2.WeightClass)
	props.Stretch = stylemap.StretchFromWidthClass(os2.WidthClass)
	switch {
	case os2.IsOblique():
		props.Style = fontkit.StyleOblique
	case os2.IsItalic() || head.IsItalic():
		props.Style = fontkit.StyleItalic
	}
	return props
}

// IsMonospace reports whether a font is flagged as fixed pitch in table 'post'.
func IsMonospace(otf *ot.Font) bool {
	post, _ := PostInfo(otf)
	return post.IsFixedPitch
}

// FontMetrics retrieves the font-wide metrics of a font, in font units.
//
// Ascent, descent and line gap are taken from 'hhea'; if both ascent and
// descent are zero there, the typographic values of 'OS/2' are used.
// CapHeight and XHeight are left 0 for 'OS/2' tables below version 2.
// A font without a readable 'head' table fails with fontkit.ErrParse.
func FontMetrics(otf *ot.Font) (fontkit.Metrics, error) {
	metrics := fontkit.Metrics{}
	head, ok := HeadInfo(otf)
	if !ok || head.UnitsPerEm == 0 {
		return metrics, ot.FontError{
			Table:    ot.T("head"),
			Section:  "UnitsPerEm",
			Issue:    "missing or invalid head table",
			Severity: ot.SeverityCritical,
			Cause:    fontkit.ErrParse,
		}
	}
	metrics.UnitsPerEm = uint32(head.UnitsPerEm)
	if hhea, ok := HHeaInfo(otf); ok {
		metrics.Ascent = float32(hhea.Ascender)
		metrics.Descent = float32(hhea.Descender)
		metrics.LineGap = float32(hhea.LineGap)
	}
	os2, hasOS2 := OS2Info(otf)
	if hasOS2 {
		if metrics.Ascent == 0 && metrics.Descent == 0 {
			tracer().Debugf("override of ascent/descent by OS/2 typo values")
			metrics.Ascent = float32(os2.TypoAscender)
			metrics.Descent = float32(os2.TypoDescender)
			metrics.LineGap = float32(os2.TypoLineGap)
		}
		if os2.HasHeights {
			metrics.XHeight = float32(os2.XHeight)
			metrics.CapHeight = float32(os2.CapHeight)
		}
	}
	if post, ok := PostInfo(otf); ok {
		metrics.UnderlinePosition = float32(post.UnderlinePosition)
		metrics.UnderlineThickness = float32(post.UnderlineThickness)
	}
	return metrics, nil
}
