package matching

import (
	"fmt"

	fontkit "github.com/Aloxaf/font-kit"
)

// Matcher selects fonts from a source. Fonts are loaded with a loader to
// inspect their properties.
type Matcher struct {
	source   fontkit.Source
	load     fontkit.Loader
	defaults DefaultFamilies
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithDefaultFamilies sets the table for resolving generic families.
func WithDefaultFamilies(df DefaultFamilies) Option {
	return func(m *Matcher) {
		m.defaults = df
	}
}

// NewMatcher creates a matcher for fonts of `source`, which are loaded
// with `load`. Without options, generic families resolve with
// BuiltinDefaultFamilies.
func NewMatcher(source fontkit.Source, load fontkit.Loader, opts ...Option) *Matcher {
	m := &Matcher{
		source:   source,
		load:     load,
		defaults: BuiltinDefaultFamilies(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Source returns the source m selects from.
func (m *Matcher) Source() fontkit.Source {
	return m.source
}

// Loader returns the loader m uses for inspecting fonts.
func (m *Matcher) Loader() fontkit.Loader {
	return m.load
}

// DefaultFamilies returns the table for generic families.
func (m *Matcher) DefaultFamilies() DefaultFamilies {
	return m.defaults
}

// SelectFamilyBySpec resolves a family spec to the fonts of the family.
func (m *Matcher) SelectFamilyBySpec(spec fontkit.FamilySpec) (fontkit.FamilyHandle, error) {
	name, ok := m.defaults.Resolve(spec)
	if !ok {
		return fontkit.FamilyHandle{}, fmt.Errorf("%w: no default family for %v", fontkit.ErrNotFound, spec)
	}
	return m.source.SelectFamilyByName(name)
}

// SelectMatchFieldsForFamily loads the fonts of a family and returns their
// match fields. Fonts which fail to load are skipped.
func (m *Matcher) SelectMatchFieldsForFamily(family fontkit.FamilyHandle) ([]fontkit.MatchFields, error) {
	_, fields := m.candidates(family)
	return fields, nil
}

// candidates returns the loadable fonts of family together with their match
// fields, index by index.
func (m *Matcher) candidates(family fontkit.FamilyHandle) ([]fontkit.Handle, []fontkit.MatchFields) {
	handles := make([]fontkit.Handle, 0, len(family.Fonts))
	fields := make([]fontkit.MatchFields, 0, len(family.Fonts))
	for _, h := range family.Fonts {
		face, err := m.load(h)
		if err != nil {
			tracer().Errorf("cannot load font %v: %v", h, err)
			continue
		}
		handles = append(handles, h)
		fields = append(fields, fontkit.MatchFieldsOf(face))
	}
	return handles, fields
}

// SelectBestMatch returns the font best matching spec. Families of spec are
// tried in order; the first one with fonts in the source is used, even if
// none of its fonts matches the properties closely. If no family can be
// found, fontkit.ErrNotFound is returned.
func (m *Matcher) SelectBestMatch(spec fontkit.Spec) (fontkit.Handle, error) {
	for _, fs := range spec.Families {
		family, err := m.SelectFamilyBySpec(fs)
		if err != nil {
			tracer().Debugf("family %v not available: %v", fs, err)
			continue
		}
		handles, fields := m.candidates(family)
		props := make([]fontkit.Properties, len(fields))
		for i, f := range fields {
			props[i] = f.Properties
		}
		index, err := FindBestMatch(props, spec.Properties)
		if err != nil {
			tracer().Debugf("family %v has no usable fonts", fs)
			continue
		}
		tracer().Infof("selected %v from family %v for %v", handles[index], fs, spec.Properties)
		return handles[index], nil
	}
	return fontkit.Handle{}, fmt.Errorf("%w: families %v", fontkit.ErrNotFound, spec.Families)
}

// SelectByPostScriptName finds a font by its PostScript name. Sources with
// an index of PostScript names are asked directly, others are searched
// font by font.
func (m *Matcher) SelectByPostScriptName(name string) (fontkit.Handle, error) {
	return fontkit.SelectByPostScriptName(m.source, m.load, name)
}

// SelectAllFonts returns the fonts of all families of the source.
func (m *Matcher) SelectAllFonts() ([]fontkit.Handle, error) {
	families, err := m.source.AllFamilies()
	if err != nil {
		return nil, err
	}
	var handles []fontkit.Handle
	for _, name := range families {
		family, err := m.source.SelectFamilyByName(name)
		if err != nil {
			tracer().Errorf("family %q listed, but not selectable: %v", name, err)
			continue
		}
		handles = append(handles, family.Fonts...)
	}
	return handles, nil
}
