package fontkit

import (
	"strings"
)

// GenericFamily is one of the CSS generic font families. The zero value
// denotes "not generic", i.e. a family given by name.
type GenericFamily int

const (
	NotGeneric GenericFamily = iota
	Serif
	SansSerif
	Monospace
	Cursive
	Fantasy
)

var genericNames = [...]string{"", "serif", "sans-serif", "monospace", "cursive", "fantasy"}

func (g GenericFamily) String() string {
	if g < NotGeneric || int(g) >= len(genericNames) {
		return "unknown"
	}
	return genericNames[g]
}

// GenericFamilies lists all generic families in CSS order.
func GenericFamilies() []GenericFamily {
	return []GenericFamily{Serif, SansSerif, Monospace, Cursive, Fantasy}
}

// FamilySpec names a family, either literally or as a generic class.
// Generic classes are resolved to a concrete family name by the
// matching engine, using a configurable table of default families.
type FamilySpec struct {
	Name    string        // literal family name, if Generic == NotGeneric
	Generic GenericFamily // generic family class
}

// FamilyName creates a spec for a family given by name.
func FamilyName(name string) FamilySpec {
	return FamilySpec{Name: name}
}

// FamilyGeneric creates a spec for a generic family class.
func FamilyGeneric(g GenericFamily) FamilySpec {
	return FamilySpec{Generic: g}
}

// ParseFamilySpec interprets s as a CSS family name. The CSS generic keywords
// ("serif", "sans-serif", "monospace", "cursive", "fantasy") are recognized
// case-insensitively; quotes around a name are removed.
func ParseFamilySpec(s string) FamilySpec {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return FamilyName(s[1 : len(s)-1])
	}
	for _, g := range GenericFamilies() {
		if strings.EqualFold(s, g.String()) {
			return FamilyGeneric(g)
		}
	}
	return FamilyName(s)
}

// IsGeneric is true if fs denotes a generic family class.
func (fs FamilySpec) IsGeneric() bool {
	return fs.Generic != NotGeneric
}

func (fs FamilySpec) String() string {
	if fs.IsGeneric() {
		return fs.Generic.String()
	}
	return "'" + fs.Name + "'"
}

// Spec is a font-matching specification: an ordered list of families
// (first one tried first) together with the desired style properties.
// A spec without families never matches.
type Spec struct {
	Families   []FamilySpec
	Properties Properties
}

// NewSpec creates a matching specification.
func NewSpec(props Properties, families ...FamilySpec) Spec {
	return Spec{
		Families:   families,
		Properties: props,
	}
}
