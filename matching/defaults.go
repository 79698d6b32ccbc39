package matching

import (
	fontkit "github.com/Aloxaf/font-kit"
	"github.com/npillmayer/schuko"
)

// DefaultFamilies maps generic families to concrete family names.
type DefaultFamilies map[fontkit.GenericFamily]string

// BuiltinDefaultFamilies returns the families used if nothing else is
// configured. These are common on desktop systems, but not guaranteed to
// be installed.
func BuiltinDefaultFamilies() DefaultFamilies {
	return DefaultFamilies{
		fontkit.Serif:     "Times New Roman",
		fontkit.SansSerif: "Arial",
		fontkit.Monospace: "Courier New",
		fontkit.Cursive:   "Comic Sans MS",
		fontkit.Fantasy:   "Papyrus",
	}
}

// ConfigKey is the configuration key holding the default family for g,
// e.g. "fonts.sans-serif".
func ConfigKey(g fontkit.GenericFamily) string {
	return "fonts." + g.String()
}

// DefaultFamiliesFromConfig reads default families from conf, with keys as
// returned by ConfigKey. Generic families not set in conf keep their
// built-in default.
func DefaultFamiliesFromConfig(conf schuko.Configuration) DefaultFamilies {
	df := BuiltinDefaultFamilies()
	if conf == nil {
		return df
	}
	for _, g := range fontkit.GenericFamilies() {
		key := ConfigKey(g)
		if conf.IsSet(key) {
			if name := conf.GetString(key); name != "" {
				tracer().Debugf("configured %s = %q", key, name)
				df[g] = name
			}
		}
	}
	return df
}

// Resolve returns the family name for spec. Literal names resolve to
// themselves, generic families via df. An unmapped generic family does not
// resolve.
func (df DefaultFamilies) Resolve(spec fontkit.FamilySpec) (string, bool) {
	if !spec.IsGeneric() {
		return spec.Name, true
	}
	name, ok := df[spec.Generic]
	return name, ok && name != ""
}
