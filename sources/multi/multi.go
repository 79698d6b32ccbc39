/*
Package multi provides a font source which chains other sources.

Sources are consulted in the order given, so earlier sources take
precedence: a family is taken as a whole from the first source
which knows it.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package multi

import (
	"errors"
	"fmt"

	fontkit "github.com/Aloxaf/font-kit"
	"github.com/Aloxaf/font-kit/sources/mem"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontkit.source'
func tracer() tracing.Trace {
	return tracing.Select("fontkit.source")
}

// Source chains a list of sources.
type Source struct {
	load    fontkit.Loader
	sources []fontkit.Source
}

var _ fontkit.Source = (*Source)(nil)
var _ fontkit.PostScriptNameSelector = (*Source)(nil)

// New creates a source consulting `sources` in order. `load` is needed to
// search sources which cannot look up PostScript names by themselves.
func New(load fontkit.Loader, sources ...fontkit.Source) *Source {
	return &Source{load: load, sources: sources}
}

// Sources returns the chained sources.
func (src *Source) Sources() []fontkit.Source {
	return src.sources
}

// AllFamilies returns the families of all sources. Families present in
// more than one source are reported once, at their first position.
func (src *Source) AllFamilies() ([]string, error) {
	var families []string
	seen := make(map[string]bool)
	for i, s := range src.sources {
		names, err := s.AllFamilies()
		if err != nil {
			return nil, fmt.Errorf("source #%d: %w", i, err)
		}
		for _, name := range names {
			key := mem.FoldName(name)
			if !seen[key] {
				seen[key] = true
				families = append(families, name)
			}
		}
	}
	return families, nil
}

// SelectFamilyByName returns the family from the first source which has it.
// Errors other than fontkit.ErrNotFound stop the search.
func (src *Source) SelectFamilyByName(name string) (fontkit.FamilyHandle, error) {
	for i, s := range src.sources {
		fh, err := s.SelectFamilyByName(name)
		if err == nil {
			tracer().Debugf("family %q found in source #%d", name, i)
			return fh, nil
		}
		if !errors.Is(err, fontkit.ErrNotFound) {
			return fontkit.FamilyHandle{}, fmt.Errorf("source #%d: %w", i, err)
		}
	}
	return fontkit.FamilyHandle{}, fmt.Errorf("%w: family %q", fontkit.ErrNotFound, name)
}

// SelectByPostScriptName searches the sources in order.
func (src *Source) SelectByPostScriptName(name string) (fontkit.Handle, error) {
	for i, s := range src.sources {
		h, err := fontkit.SelectByPostScriptName(s, src.load, name)
		if err == nil {
			return h, nil
		}
		if !errors.Is(err, fontkit.ErrNotFound) {
			return fontkit.Handle{}, fmt.Errorf("source #%d: %w", i, err)
		}
	}
	return fontkit.Handle{}, fmt.Errorf("%w: PostScript name %q", fontkit.ErrNotFound, name)
}
