package ot

import (
	"fmt"
	"math"

	fontkit "github.com/Aloxaf/font-kit"
)

// Code comment often will cite passage from the
// OpenType specification version 1.8.4;
// see https://docs.microsoft.com/en-us/typography/opentype/spec/.

// ---------------------------------------------------------------------------

// Checked arithmetic operations to prevent integer overflow

// checkedMulInt checks for overflow in multiplication of two non-negative integers
func checkedMulInt(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a < 0 || b < 0 || a > math.MaxInt/b {
		return 0, fmt.Errorf("integer overflow: %d * %d", a, b)
	}
	return a * b, nil
}

// checkedAddUint32 checks for overflow in addition of two uint32 values
func checkedAddUint32(a, b uint32) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	return a + b, nil
}

// ---------------------------------------------------------------------------

// Parse parses the table directory of a single OpenType font from a byte slice.
// An ot.Font needs ongoing access to the fonts byte-data after the Parse function returns.
// Its elements are assumed immutable while the ot.Font remains in use.
//
// Font collections have to be unpacked before parsing (see Unpack).
// Errors are of type FontError, wrapping fontkit.ErrParse or
// fontkit.ErrUnknownFormat.
func Parse(font []byte) (*Font, error) {
	src := binarySegm(font)
	// https://www.microsoft.com/typography/otspec/otff.htm: Offset Table is 12 bytes.
	hdr, err := src.view(0, 12)
	if err != nil {
		return nil, critical(0, "Header", 0, fontkit.ErrParse, "font data too short: %d bytes", len(font))
	}
	h := FontHeader{FontType: u32(hdr), TableCount: u16(hdr[4:])}
	tracer().Debugf("header = %v, tag = %x|%s", h, h.FontType, Tag(h.FontType).String())

	if !IsKnownFontType(h.FontType) {
		if Tag(h.FontType) == tagTTC {
			return nil, critical(0, "Header", 0, fontkit.ErrParse, "font collection has to be unpacked first")
		}
		return nil, critical(0, "Header", 0, fontkit.ErrUnknownFormat, "font type not supported: %x", h.FontType)
	}
	otf := &Font{Header: &h, tables: make(map[Tag]Table)}
	ec := &errorCollector{}
	// "The Offset Table is followed immediately by the Table Record entries …
	// sorted in ascending order by tag", 16 bytes each.

	// Check for arithmetic overflow in table record size calculation
	tableRecordsSize, err := checkedMulInt(16, int(h.TableCount))
	if err != nil {
		return nil, critical(0, "TableRecords", 12, fontkit.ErrParse, "table count too large: %v", err)
	}
	buf, err := src.view(12, tableRecordsSize)
	if err != nil {
		return nil, critical(0, "TableRecords", 12, fontkit.ErrParse,
			"table record entries for %d tables exceed font size %d", h.TableCount, len(font))
	}
	for b, prevTag := buf, Tag(0); len(b) > 0; b = b[16:] {
		tag := MakeTag(b)
		if tag < prevTag {
			ec.addWarning(tag, "table directory not sorted by tag", 12)
		}
		prevTag = tag
		off, size := u32(b[8:12]), u32(b[12:16])
		if off&3 != 0 { // ignore checksums, but "all tables must begin on four byte boundries".
			ec.addWarning(tag, "table offset not aligned to 4 bytes", off)
		}

		// Validate table bounds before slicing to prevent panic
		tableEnd, err := checkedAddUint32(off, size)
		if err != nil {
			return nil, critical(tag, "Size", off, fontkit.ErrParse, "size calculation overflow: %v", err)
		}
		if tableEnd > uint32(len(src)) {
			return nil, critical(tag, "Bounds", off, fontkit.ErrParse,
				"bounds [%d:%d] exceed font size %d", off, tableEnd, len(src))
		}
		if _, dup := otf.tables[tag]; dup {
			ec.addWarning(tag, "duplicate table record ignored", off)
			continue
		}
		otf.tables[tag] = newTable(tag, src[off:tableEnd], off, size)
		otf.tags = append(otf.tags, tag)
	}
	if ec.hasWarnings() {
		otf.parseWarnings = ec.warnings
	}
	return otf, nil
}
