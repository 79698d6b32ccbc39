package otquery

import (
	"fmt"
	"iter"

	"github.com/Aloxaf/font-kit/ot"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

const (
	nameHeaderSize = 6
	nameRecordSize = 12
)

// nameKey identifies a NameRecord entry in OpenType table 'name'.
// The key follows the OpenType NameRecord fields directly.
type nameKey struct {
	Platform PlatformID
	Encoding EncodingID
	Language uint16
	Name     sfnt.NameID // see https://pkg.go.dev/golang.org/x/image/font/sfnt#NameID
}

type PlatformID uint16

const (
	PlatformIDUnicode   PlatformID = 0
	PlatformIDMacintosh PlatformID = 1 // Roman encoding only
	PlatformIDWindows   PlatformID = 3
)

type EncodingID uint16

const (
	EncodingIDUnicodeBMP    EncodingID = 3
	EncodingIDMacRoman      EncodingID = 0
	EncodingIDWindowsSymbol EncodingID = 0 // for now we will not support symbol fonts
	EncodingIDWindowsBMP    EncodingID = 1
)

// languageEnglishUS is the Windows language ID for en-US.
const languageEnglishUS = 0x0409

// Names are the identifying names of a font.
type Names struct {
	Family     string // typographic family if present, legacy family otherwise
	Subfamily  string
	Full       string
	PostScript string
}

// NamesRange yields decoded `(nameID, value)` pairs from a font's OpenType
// `name` table.
//
// Only currently supported encodings are yielded (Unicode BMP, Windows BMP and
// Macintosh Roman), and malformed or out-of-bounds records are skipped.
func NamesRange(otf *ot.Font) iter.Seq2[sfnt.NameID, string] {
	return func(yield func(sfnt.NameID, string) bool) {
		for key, value := range nameRecords(otf) {
			if !yield(key.Name, value) {
				return
			}
		}
	}
}

// FontNames collects the identifying names of a font. For every name ID,
// an en-US Windows entry wins over other Unicode entries, which in turn win
// over Macintosh Roman entries. Among equals the first entry found is used.
func FontNames(otf *ot.Font) Names {
	found := make(map[sfnt.NameID]string)
	rank := make(map[sfnt.NameID]int)
	for key, value := range nameRecords(otf) {
		switch key.Name {
		case sfnt.NameIDFamily, sfnt.NameIDSubfamily, sfnt.NameIDFull, sfnt.NameIDPostScript,
			sfnt.NameIDTypographicFamily, sfnt.NameIDTypographicSubfamily:
		default:
			continue
		}
		r := nameRank(key)
		if _, ok := found[key.Name]; ok && rank[key.Name] >= r {
			continue
		}
		found[key.Name] = value
		rank[key.Name] = r
	}
	names := Names{
		Family:     found[sfnt.NameIDTypographicFamily],
		Subfamily:  found[sfnt.NameIDTypographicSubfamily],
		Full:       found[sfnt.NameIDFull],
		PostScript: found[sfnt.NameIDPostScript],
	}
	if names.Family == "" {
		names.Family = found[sfnt.NameIDFamily]
	}
	if names.Subfamily == "" {
		names.Subfamily = found[sfnt.NameIDSubfamily]
	}
	tracer().Debugf("font names = %+v", names)
	return names
}

func nameRecords(otf *ot.Font) iter.Seq2[nameKey, string] {
	names := checkNameTableSafe(otf)
	return func(yield func(nameKey, string) bool) {
		if names == nil {
			return
		}
		binary := names.Binary()
		count := int(u16(binary[2:4])) // number of name records
		stringStorageOffset := int(u16(binary[4:6]))
		for i := range count {
			recordSlice := binary[nameHeaderSize+i*nameRecordSize : nameHeaderSize+(i+1)*nameRecordSize]
			key := nameKey{
				Platform: PlatformID(u16(recordSlice[0:2])),
				Encoding: EncodingID(u16(recordSlice[2:4])),
				Language: u16(recordSlice[4:6]),
				Name:     sfnt.NameID(u16(recordSlice[6:8])),
			}
			if !isSupportedNameEncoding(key) {
				continue
			}
			strLen := int(u16(recordSlice[8:10]))
			start := stringStorageOffset + int(u16(recordSlice[10:12]))
			end := start + strLen
			if end > len(binary) {
				continue
			}
			stringValue, err := decodeName(key, binary[start:end])
			if err != nil || stringValue == "" {
				continue
			}
			if !yield(key, stringValue) {
				return
			}
		}
	}
}

// checkNameTableSafe checks if the name table is safe to use, i.e. no out-of-bounds access,
// no empty tables, etc.
func checkNameTableSafe(otf *ot.Font) ot.Table {
	b, ok := tableBytes(otf, "name", nameHeaderSize)
	if !ok {
		return nil
	}
	count := int(u16(b[2:4]))
	strOff := int(u16(b[4:6]))
	if strOff > len(b) {
		tracer().Debugf("name table invalid string offset: %d", strOff)
		return nil
	}
	recordsEnd := nameHeaderSize + count*nameRecordSize
	if recordsEnd > len(b) {
		tracer().Debugf("name table record section out of bounds: count=%d", count)
		return nil
	}
	return otf.Table(ot.T("name"))
}

func isSupportedNameEncoding(key nameKey) bool {
	return (key.Platform == PlatformIDUnicode && key.Encoding == EncodingIDUnicodeBMP) ||
		(key.Platform == PlatformIDWindows && key.Encoding == EncodingIDWindowsBMP) ||
		(key.Platform == PlatformIDMacintosh && key.Encoding == EncodingIDMacRoman)
}

func nameRank(key nameKey) int {
	switch {
	case key.Platform == PlatformIDWindows && key.Language == languageEnglishUS:
		return 2
	case key.Platform == PlatformIDMacintosh:
		return 0
	}
	return 1
}

func decodeName(key nameKey, str []byte) (string, error) {
	if key.Platform == PlatformIDMacintosh {
		s, err := charmap.Macintosh.NewDecoder().Bytes(str)
		if err != nil {
			return "", fmt.Errorf("decoding Mac Roman error: %v", err)
		}
		return string(s), nil
	}
	return decodeNameUTF16(str)
}

func decodeNameUTF16(str []byte) (string, error) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	decoder := enc.NewDecoder()
	s, err := decoder.Bytes(str)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16 error: %v", err)
	}
	return string(s), nil
}
