/*
Package mem provides a font source for fonts registered at runtime, from
memory or from files.

Families are indexed by case-folded name and enumerated in sorted order.
Faces of a family keep their order of registration.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package mem

import (
	"fmt"
	"sync"

	fontkit "github.com/Aloxaf/font-kit"
	"github.com/Aloxaf/font-kit/ot"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/cases"
)

// tracer writes to trace with key 'fontkit.source'
func tracer() tracing.Trace {
	return tracing.Select("fontkit.source")
}

// Source is a font source holding registered fonts. It is safe for
// concurrent use.
type Source struct {
	sync.RWMutex
	load       fontkit.Loader
	families   *treemap.Map // folded family name => *family
	postscript map[string]fontkit.Handle
}

type family struct {
	name    string // as reported by the first face of the family
	handles fontkit.FamilyHandle
}

var _ fontkit.Source = (*Source)(nil)
var _ fontkit.PostScriptNameSelector = (*Source)(nil)

// New creates an empty source. `load` is used to read the names of fonts
// when they are added.
func New(load fontkit.Loader) *Source {
	return &Source{
		load:       load,
		families:   treemap.NewWithStringComparator(),
		postscript: make(map[string]fontkit.Handle),
	}
}

// FoldName is the key under which a family name is indexed.
func FoldName(name string) string {
	return cases.Fold().String(name)
}

// AddFont registers every font contained in data, which may be a single font
// or a collection. data is shared by the returned handles and must not be
// modified afterwards.
//
// No font is registered if any of them fails to load.
func (src *Source) AddFont(data []byte) ([]fontkit.Handle, error) {
	ct, err := ot.Sniff(data)
	if err != nil {
		return nil, err
	}
	handles := make([]fontkit.Handle, ct.NumFonts)
	faces := make([]fontkit.Face, ct.NumFonts)
	for i := range handles {
		handles[i] = fontkit.MemoryHandle(data, uint32(i))
		if faces[i], err = src.load(handles[i]); err != nil {
			return nil, fmt.Errorf("cannot add font #%d: %w", i, err)
		}
	}
	src.Lock()
	defer src.Unlock()
	for i, h := range handles {
		src.register(h, faces[i])
	}
	return handles, nil
}

// AddHandle loads the font referenced by h and registers it.
func (src *Source) AddHandle(h fontkit.Handle) error {
	face, err := src.load(h)
	if err != nil {
		return fmt.Errorf("cannot add font %v: %w", h, err)
	}
	src.Lock()
	defer src.Unlock()
	src.register(h, face)
	return nil
}

// register expects src to be locked.
func (src *Source) register(h fontkit.Handle, face fontkit.Face) {
	name := face.FamilyName()
	key := FoldName(name)
	var fam *family
	if f, ok := src.families.Get(key); ok {
		fam = f.(*family)
	} else {
		fam = &family{name: name}
		src.families.Put(key, fam)
	}
	fam.handles.Add(h)
	if ps := face.PostScriptName(); ps != "" {
		if _, exists := src.postscript[ps]; !exists {
			src.postscript[ps] = h
		}
	}
	tracer().Debugf("registered %s (%s) as %v", face.PostScriptName(), name, h)
}

// Len returns the number of registered fonts.
func (src *Source) Len() int {
	src.RLock()
	defer src.RUnlock()
	n := 0
	for _, f := range src.families.Values() {
		n += len(f.(*family).handles.Fonts)
	}
	return n
}

// AllFamilies returns the family names of all registered fonts, sorted by
// folded name.
func (src *Source) AllFamilies() ([]string, error) {
	src.RLock()
	defer src.RUnlock()
	names := make([]string, 0, src.families.Size())
	it := src.families.Iterator()
	for it.Next() {
		names = append(names, it.Value().(*family).name)
	}
	return names, nil
}

// SelectFamilyByName returns the fonts of a family. Family names are
// compared without regard to case.
func (src *Source) SelectFamilyByName(name string) (fontkit.FamilyHandle, error) {
	src.RLock()
	defer src.RUnlock()
	f, ok := src.families.Get(FoldName(name))
	if !ok {
		return fontkit.FamilyHandle{}, fmt.Errorf("%w: family %q", fontkit.ErrNotFound, name)
	}
	fonts := f.(*family).handles.Fonts
	return fontkit.FamilyHandle{Fonts: append([]fontkit.Handle(nil), fonts...)}, nil
}

// SelectByPostScriptName looks up a font by its exact PostScript name.
// If several fonts share a name, the first one registered wins.
func (src *Source) SelectByPostScriptName(name string) (fontkit.Handle, error) {
	src.RLock()
	defer src.RUnlock()
	if h, ok := src.postscript[name]; ok {
		return h, nil
	}
	return fontkit.Handle{}, fmt.Errorf("%w: PostScript name %q", fontkit.ErrNotFound, name)
}
