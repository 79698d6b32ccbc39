package fontkit

import "fmt"

// Source is a collection of installed or registered fonts, organized
// by family.
type Source interface {
	// AllFamilies returns the names of all families known to the source.
	AllFamilies() ([]string, error)
	// SelectFamilyByName returns the fonts of family `name`, or ErrNotFound.
	SelectFamilyByName(name string) (FamilyHandle, error)
}

// PostScriptNameSelector is implemented by sources which are able to look
// up a font by its PostScript name without loading every font.
type PostScriptNameSelector interface {
	SelectByPostScriptName(name string) (Handle, error)
}

// SelectByPostScriptName finds the font with PostScript name `name` in src.
// Sources implementing PostScriptNameSelector answer directly. For all others
// every font of every family is loaded and compared, which is slow for large
// sources. Fonts which fail to load are skipped.
func SelectByPostScriptName(src Source, load Loader, name string) (Handle, error) {
	if sel, ok := src.(PostScriptNameSelector); ok {
		return sel.SelectByPostScriptName(name)
	}
	families, err := src.AllFamilies()
	if err != nil {
		return Handle{}, err
	}
	for _, family := range families {
		fh, err := src.SelectFamilyByName(family)
		if err != nil {
			continue
		}
		for _, h := range fh.Fonts {
			face, err := load(h)
			if err != nil {
				tracer().Infof("skipping font %v: %v", h, err)
				continue
			}
			if face.PostScriptName() == name {
				return h, nil
			}
		}
	}
	return Handle{}, fmt.Errorf("%w: PostScript name %q", ErrNotFound, name)
}
