package ot

// Helpers to assemble synthetic fonts and collections.

type testTable struct {
	tag  string
	data []byte
}

func putU16(b []byte, off int, v uint16) {
	b[off] = byte(v >> 8)
	b[off+1] = byte(v)
}

func putU32(b []byte, off int, v uint32) {
	b[off] = byte(v >> 24)
	b[off+1] = byte(v >> 16)
	b[off+2] = byte(v >> 8)
	b[off+3] = byte(v)
}

func pad4(b []byte) []byte {
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	return b
}

// appendTables appends table data to buf and fills in the table records of
// the directory at dirOffset.
func appendTables(buf []byte, dirOffset int, tables []testTable) []byte {
	putU32(buf, dirOffset, FontTypeTrueType)
	putU16(buf, dirOffset+4, uint16(len(tables)))
	for i, t := range tables {
		off := len(buf)
		buf = append(buf, pad4(append([]byte{}, t.data...))...)
		rec := dirOffset + dirHeaderSize + tableRecordSize*i
		copy(buf[rec:rec+4], []byte((t.tag + "    ")[:4]))
		putU32(buf, rec+8, uint32(off))
		putU32(buf, rec+12, uint32(len(t.data)))
	}
	return buf
}

// buildFont creates a single font with the given tables, which must be
// sorted by tag.
func buildFont(tables ...testTable) []byte {
	buf := make([]byte, dirHeaderSize+tableRecordSize*len(tables))
	return appendTables(buf, 0, tables)
}

// buildCollection creates a collection with one font for each table list.
// All table directories follow the header, table data follows the
// directories.
func buildCollection(fonts ...[]testTable) []byte {
	hdr := ttcHeaderSize + 4*len(fonts)
	size := hdr
	for _, tables := range fonts {
		size += dirHeaderSize + tableRecordSize*len(tables)
	}
	buf := make([]byte, size)
	copy(buf, "ttcf")
	putU16(buf, 4, 1)
	putU32(buf, 8, uint32(len(fonts)))
	dirOffset := hdr
	for i, tables := range fonts {
		putU32(buf, ttcHeaderSize+4*i, uint32(dirOffset))
		buf = appendTables(buf, dirOffset, tables)
		dirOffset += dirHeaderSize + tableRecordSize*len(tables)
	}
	return buf
}

func twoFontCollection() []byte {
	return buildCollection(
		[]testTable{{"head", []byte("regular-head")}, {"name", []byte("Regular")}},
		[]testTable{{"OS/2", []byte("bold-os2")}, {"head", []byte("bold-head")}, {"name", []byte("Bold")}},
	)
}
