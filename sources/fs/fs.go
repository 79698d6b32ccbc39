/*
Package fs provides a font source for font files in directories.

All files with a font extension below the given directories are indexed
when the source is created. NewSystem indexes the platform's font
directories, as located by github.com/flopp/go-findfont.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	fontkit "github.com/Aloxaf/font-kit"
	"github.com/Aloxaf/font-kit/ot"
	"github.com/Aloxaf/font-kit/sources/mem"
	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontkit.source'
func tracer() tracing.Trace {
	return tracing.Select("fontkit.source")
}

// Source is a font source for font files. Fonts are referenced by path
// handles.
type Source struct {
	*mem.Source
	skipped []string // files which could not be loaded
}

// IsFontFile checks the file extension of path.
func IsFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc", ".otc":
		return true
	}
	return false
}

// New creates a source for the font files below dirs. A directory which
// cannot be read results in an error wrapping fontkit.ErrIO; font files
// which fail to load are skipped.
func New(load fontkit.Loader, dirs ...string) (*Source, error) {
	src := &Source{Source: mem.New(load)}
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				if path == dir {
					return err
				}
				tracer().Infof("skipping %s: %v", path, err)
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.IsDir() && IsFontFile(path) {
				src.AddFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", fontkit.ErrIO, err)
		}
	}
	tracer().Infof("indexed %d fonts in %d directories", src.Len(), len(dirs))
	return src, nil
}

// NewSystem creates a source for the fonts installed on the system.
func NewSystem(load fontkit.Loader) *Source {
	src := &Source{Source: mem.New(load)}
	for _, path := range findfont.List() {
		if IsFontFile(path) {
			src.AddFile(path)
		}
	}
	tracer().Infof("indexed %d system fonts", src.Len())
	return src
}

// AddFile registers every font in the file at path and returns the number
// of fonts added.
func (src *Source) AddFile(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		src.skip(path, err)
		return 0
	}
	ct, err := ot.Sniff(data)
	if err != nil {
		src.skip(path, err)
		return 0
	}
	n := 0
	for i := uint32(0); i < ct.NumFonts; i++ {
		if err := src.AddHandle(fontkit.PathHandle(path, i)); err != nil {
			src.skip(path, err)
			continue
		}
		n++
	}
	return n
}

func (src *Source) skip(path string, err error) {
	tracer().Infof("skipping font file %s: %v", path, err)
	src.Lock()
	src.skipped = append(src.skipped, path)
	src.Unlock()
}

// Skipped returns the paths of font files which could not be loaded.
func (src *Source) Skipped() []string {
	src.RLock()
	defer src.RUnlock()
	return append([]string(nil), src.skipped...)
}
