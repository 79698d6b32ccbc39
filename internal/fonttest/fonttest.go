/*
Package fonttest provides font data for tests: the Go fonts, and collections
assembled from them.
*/
package fonttest

import (
	"encoding/binary"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Go fonts by PostScript name.
var (
	GoRegular    = goregular.TTF
	GoBold       = gobold.TTF
	GoItalic     = goitalic.TTF
	GoBoldItalic = gobolditalic.TTF
	GoMedium     = gomedium.TTF
	GoMono       = gomono.TTF
)

// Collection assembles a TrueType collection from single fonts. Every font
// is copied in full behind the directories, with its table offsets relocated.
func Collection(fonts ...[]byte) []byte {
	be := binary.BigEndian
	header := 12 + 4*len(fonts)
	size := header
	for _, f := range fonts {
		size += dirSize(f)
	}
	buf := make([]byte, align4(size))
	copy(buf, "ttcf")
	be.PutUint16(buf[4:], 1)
	be.PutUint32(buf[8:], uint32(len(fonts)))
	dir := header
	for i, f := range fonts {
		be.PutUint32(buf[12+4*i:], uint32(dir))
		base := uint32(len(buf))
		buf = append(buf, f...)
		for len(buf)%4 != 0 {
			buf = append(buf, 0)
		}
		n := dirSize(f)
		copy(buf[dir:dir+n], f[:n])
		for rec := dir + 12; rec < dir+n; rec += 16 {
			be.PutUint32(buf[rec+8:], be.Uint32(buf[rec+8:])+base)
		}
		dir += n
	}
	return buf
}

func dirSize(font []byte) int {
	return 12 + 16*int(binary.BigEndian.Uint16(font[4:]))
}

func align4(n int) int {
	return (n + 3) &^ 3
}

// WithWidthClass returns a copy of a single font with the OS/2 usWidthClass
// set to class.
func WithWidthClass(font []byte, class uint16) []byte {
	patched := append([]byte{}, font...)
	if off, ok := tableOffset(patched, "OS/2"); ok {
		binary.BigEndian.PutUint16(patched[off+6:], class)
	}
	return patched
}

// WithMacNamesOnly returns a copy of a single font where every Windows
// name record is moved to the Windows symbol encoding, leaving the
// Macintosh Roman records as the only decodable names.
func WithMacNamesOnly(font []byte) []byte {
	be := binary.BigEndian
	patched := append([]byte{}, font...)
	off, ok := tableOffset(patched, "name")
	if !ok {
		return patched
	}
	count := int(be.Uint16(patched[off+2:]))
	for i := range count {
		rec := off + 6 + 12*i
		if be.Uint16(patched[rec:]) == 3 {
			be.PutUint16(patched[rec+2:], 0)
		}
	}
	return patched
}

func tableOffset(font []byte, tag string) (int, bool) {
	be := binary.BigEndian
	for rec := 12; rec < dirSize(font); rec += 16 {
		if string(font[rec:rec+4]) == tag {
			return int(be.Uint32(font[rec+8:])), true
		}
	}
	return 0, false
}
