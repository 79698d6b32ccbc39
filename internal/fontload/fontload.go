/*
Package fontload turns font handles into parsed, single-font byte buffers.
It is shared by the loader backends.
*/
package fontload

import (
	"fmt"
	"os"

	fontkit "github.com/Aloxaf/font-kit"
	"github.com/Aloxaf/font-kit/ot"
	"golang.org/x/image/font/sfnt"
)

// ScalableFont is a parsed scalable font with its bytes, its SFNT view and
// its table directory.
type ScalableFont struct {
	Fontname string // full name
	Binary   []byte
	SFNT     *sfnt.Font
	OT       *ot.Font
}

// ReadFile reads a font file. Errors wrap fontkit.ErrIO.
func ReadFile(path string) ([]byte, error) {
	bytez, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fontkit.ErrIO, err)
	}
	return bytez, nil
}

// Unpacked returns a private copy of data, unpacked to font index. The input
// slice is never modified.
func Unpacked(data []byte, index uint32) ([]byte, error) {
	buf := make([]byte, len(data))
	copy(buf, data)
	if err := ot.Unpack(buf, index); err != nil {
		return nil, err
	}
	return buf, nil
}

// HandleBytes resolves a handle into the unpacked bytes of the font it
// references.
func HandleBytes(h fontkit.Handle) ([]byte, error) {
	if h.IsPath() {
		bytez, err := ReadFile(h.Path())
		if err != nil {
			return nil, err
		}
		// freshly read, no need to copy
		if err := ot.Unpack(bytez, h.FontIndex()); err != nil {
			return nil, err
		}
		return bytez, nil
	}
	return Unpacked(h.Bytes(), h.FontIndex())
}

// LoadOpenTypeFont loads font number index from a file.
func LoadOpenTypeFont(fontfile string, index uint32) (*ScalableFont, error) {
	return LoadHandle(fontkit.PathHandle(fontfile, index))
}

// LoadHandle loads and parses the font referenced by a handle.
func LoadHandle(h fontkit.Handle) (*ScalableFont, error) {
	bytez, err := HandleBytes(h)
	if err != nil {
		return nil, err
	}
	return ParseOpenTypeFont(bytez)
}

// ParseOpenTypeFont parses an unpacked OpenType font (TTF or OTF) from memory.
// fbytes is retained and must not be modified afterwards.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	if f.OT, err = ot.Parse(fbytes); err != nil {
		return nil, err
	}
	if f.SFNT, err = sfnt.Parse(f.Binary); err != nil {
		return nil, fmt.Errorf("%w: %v", fontkit.ErrParse, err)
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return f, nil
}
