package ot

import (
	fontkit "github.com/Aloxaf/font-kit"
)

// TTC header layout:
//
//	Tag      ttcTag           'ttcf'
//	uint16   majorVersion
//	uint16   minorVersion
//	uint32   numFonts
//	Offset32 tableDirectoryOffsets[numFonts]
//	(version 2 only: DSIG tag, length and offset)
//
// Every table directory is a FontHeader of 12 bytes, followed by
// numTables table records of 16 bytes each.

var tagTTC = T("ttcf")

const (
	ttcHeaderSize   = 12
	dirHeaderSize   = 12
	tableRecordSize = 16
)

// IsCollection is true if buf starts with the tag of a font collection.
func IsCollection(buf []byte) bool {
	return len(buf) >= 4 && MakeTag(buf[:4]) == tagTTC
}

// Sniff inspects the header of font data and reports whether it is a single
// font or a collection. Data not recognized as either fails with
// fontkit.ErrUnknownFormat.
func Sniff(buf []byte) (fontkit.ContainerType, error) {
	if IsCollection(buf) {
		n, _, err := collectionHeader(buf)
		if err != nil {
			return fontkit.ContainerType{}, err
		}
		return fontkit.CollectionOf(n), nil
	}
	if len(buf) >= 4 && IsKnownFontType(u32(buf)) {
		return fontkit.SingleFont, nil
	}
	return fontkit.ContainerType{}, critical(0, "Header", 0, fontkit.ErrUnknownFormat,
		"neither a font nor a font collection")
}

// NumFonts returns the number of fonts in buf, 1 for single fonts.
func NumFonts(buf []byte) (uint32, error) {
	ct, err := Sniff(buf)
	if err != nil {
		return 0, err
	}
	return ct.NumFonts, nil
}

// CollectionOffsets returns the table directory offsets of all fonts of a
// collection.
func CollectionOffsets(buf []byte) ([]uint32, error) {
	if !IsCollection(buf) {
		return nil, critical(0, "TTCHeader", 0, fontkit.ErrNotACollection, "missing 'ttcf' tag")
	}
	n, _, err := collectionHeader(buf)
	if err != nil {
		return nil, err
	}
	offsets := make([]uint32, n)
	for i := range offsets {
		offsets[i] = u32(buf[ttcHeaderSize+4*i:])
	}
	return offsets, nil
}

// collectionHeader validates the TTC header and returns the number of fonts
// and the end of the offset array.
func collectionHeader(buf []byte) (uint32, uint64, error) {
	src := binarySegm(buf)
	numFonts, err := src.u32(8)
	if err != nil {
		return 0, 0, critical(tagTTC, "TTCHeader", 0, fontkit.ErrMalformedCollection,
			"collection header truncated")
	}
	if numFonts == 0 {
		return 0, 0, critical(tagTTC, "TTCHeader", 8, fontkit.ErrMalformedCollection,
			"collection contains no fonts")
	}
	headerEnd := uint64(ttcHeaderSize) + 4*uint64(numFonts)
	if headerEnd > uint64(len(buf)) {
		return 0, 0, critical(tagTTC, "TTCHeader", ttcHeaderSize, fontkit.ErrMalformedCollection,
			"offsets of %d fonts exceed data size %d", numFonts, len(buf))
	}
	return numFonts, headerEnd, nil
}

// Unpack rewrites a font collection in place, so that buf starts with the
// table directory of the font at index. Table data is not moved; the table
// records keep pointing to it, as offsets within a collection are relative
// to the start of the collection file.
//
// If buf is not a collection, Unpack is a no-op for index 0 and fails with
// fontkit.ErrNotACollection otherwise. An index not present in the collection
// fails with fontkit.ErrNoSuchFontInCollection, a broken header with
// fontkit.ErrMalformedCollection. All checks are done before buf is touched;
// a failing Unpack never modifies buf.
//
// Unpack must not be called concurrently on the same buffer.
func Unpack(buf []byte, index uint32) error {
	if !IsCollection(buf) {
		if index == 0 {
			return nil
		}
		return critical(0, "Header", 0, fontkit.ErrNotACollection,
			"font index %d requested for a single font", index)
	}
	numFonts, headerEnd, err := collectionHeader(buf)
	if err != nil {
		return err
	}
	if index >= numFonts {
		return critical(tagTTC, "TTCHeader", 8, fontkit.ErrNoSuchFontInCollection,
			"font index %d out of range, collection has %d fonts", index, numFonts)
	}
	src := binarySegm(buf)
	dirOffset := uint64(u32(buf[ttcHeaderSize+4*index:]))
	// The directory is moved towards the start of the buffer. It must not
	// start within the header, which is the region being overwritten.
	if dirOffset < headerEnd {
		return critical(tagTTC, "TableDirectory", uint32(dirOffset), fontkit.ErrMalformedCollection,
			"table directory of font %d overlaps the collection header", index)
	}
	if dirOffset+dirHeaderSize > uint64(len(buf)) {
		return critical(tagTTC, "TableDirectory", uint32(dirOffset), fontkit.ErrMalformedCollection,
			"table directory of font %d exceeds data size %d", index, len(buf))
	}
	version := u32(buf[dirOffset:])
	if !IsKnownFontType(version) {
		return critical(tagTTC, "TableDirectory", uint32(dirOffset), fontkit.ErrMalformedCollection,
			"unknown sfnt version %x for font %d", version, index)
	}
	numTables := uint64(u16(buf[dirOffset+4:]))
	size := dirHeaderSize + tableRecordSize*numTables
	if dirOffset+size > uint64(len(buf)) {
		return critical(tagTTC, "TableRecords", uint32(dirOffset), fontkit.ErrMalformedCollection,
			"%d table records of font %d exceed data size %d", numTables, index, len(buf))
	}
	// Tables located within the region to be overwritten would be destroyed.
	for i := uint64(0); i < numTables; i++ {
		rec := dirOffset + dirHeaderSize + i*tableRecordSize
		off, _ := src.u32(int(rec + 8))
		if uint64(off) < size {
			return critical(MakeTag(buf[rec:rec+4]), "TableRecords", off, fontkit.ErrMalformedCollection,
				"table data of font %d overlaps the unpacked table directory", index)
		}
	}
	tracer().Debugf("unpacking font %d of %d: moving %d bytes from offset %d", index, numFonts, size, dirOffset)
	copy(buf[:size], buf[dirOffset:dirOffset+size])
	return nil
}
