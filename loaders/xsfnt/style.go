package xsfnt

import (
	"strings"

	fontkit "github.com/Aloxaf/font-kit"
)

// weightNames maps sub-family keywords to weights. Longer keywords come
// first, so that "semibold" is not taken for "bold".
var weightNames = []struct {
	key    string
	weight fontkit.Weight
}{
	{"extralight", fontkit.WeightExtraLight},
	{"ultralight", fontkit.WeightExtraLight},
	{"extrabold", fontkit.WeightExtraBold},
	{"ultrabold", fontkit.WeightExtraBold},
	{"semibold", fontkit.WeightSemiBold},
	{"demibold", fontkit.WeightSemiBold},
	{"medium", fontkit.WeightMedium},
	{"black", fontkit.WeightBlack},
	{"heavy", fontkit.WeightBlack},
	{"light", fontkit.WeightLight},
	{"thin", fontkit.WeightThin},
	{"bold", fontkit.WeightBold},
}

// propertiesFromStyleName guesses style properties from a sub-family name
// like "Semibold Italic". It is used for fonts whose tables are out of reach.
func propertiesFromStyleName(name string) fontkit.Properties {
	props := fontkit.DefaultProperties()
	key := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(name))
	switch {
	case strings.Contains(key, "oblique"):
		props.Style = fontkit.StyleOblique
	case strings.Contains(key, "italic"):
		props.Style = fontkit.StyleItalic
	}
	for _, wn := range weightNames {
		if strings.Contains(key, wn.key) {
			props.Weight = wn.weight
			break
		}
	}
	switch {
	case strings.Contains(key, "condensed"):
		props.Stretch = fontkit.StretchCondensed
	case strings.Contains(key, "expanded"):
		props.Stretch = fontkit.StretchExpanded
	}
	return props
}
