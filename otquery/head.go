package otquery

import (
	"encoding/binary"

	"github.com/Aloxaf/font-kit/ot"
)

// HeadTableInfo is a typed query view over OpenType table 'head'.
// Values are decoded directly from the raw table bytes.
type HeadTableInfo struct {
	MajorVersion     uint16
	MinorVersion     uint16
	FontRevision     uint32
	MagicNumber      uint32
	Flags            uint16
	UnitsPerEm       uint16
	XMin, YMin       int16
	XMax, YMax       int16
	MacStyle         uint16
	IndexToLocFormat int16
}

const headTableSize = 54

// macStyle bits
const (
	MacStyleBold   uint16 = 1 << 0
	MacStyleItalic uint16 = 1 << 1
)

// IsBold reports whether bit 0 of macStyle is set.
func (h HeadTableInfo) IsBold() bool {
	return h.MacStyle&MacStyleBold != 0
}

// IsItalic reports whether bit 1 of macStyle is set.
func (h HeadTableInfo) IsItalic() bool {
	return h.MacStyle&MacStyleItalic != 0
}

// HeadInfo decodes table 'head' from raw bytes.
// Returns (info, true) on success, or (zero, false) if table is missing/too short.
func HeadInfo(otf *ot.Font) (HeadTableInfo, bool) {
	var info HeadTableInfo
	b, ok := tableBytes(otf, "head", headTableSize)
	if !ok {
		return info, false
	}
	info.MajorVersion = binary.BigEndian.Uint16(b[0:2])
	info.MinorVersion = binary.BigEndian.Uint16(b[2:4])
	info.FontRevision = binary.BigEndian.Uint32(b[4:8])
	info.MagicNumber = binary.BigEndian.Uint32(b[12:16])
	info.Flags = binary.BigEndian.Uint16(b[16:18])
	info.UnitsPerEm = binary.BigEndian.Uint16(b[18:20])
	info.XMin = int16(binary.BigEndian.Uint16(b[36:38]))
	info.YMin = int16(binary.BigEndian.Uint16(b[38:40]))
	info.XMax = int16(binary.BigEndian.Uint16(b[40:42]))
	info.YMax = int16(binary.BigEndian.Uint16(b[42:44]))
	info.MacStyle = binary.BigEndian.Uint16(b[44:46])
	info.IndexToLocFormat = int16(binary.BigEndian.Uint16(b[50:52]))
	return info, true
}

// tableBytes returns the binary of table tag, if present and at least
// minSize bytes long.
func tableBytes(otf *ot.Font, tag string, minSize int) ([]byte, bool) {
	if otf == nil {
		return nil, false
	}
	table := otf.Table(ot.T(tag))
	if table == nil {
		tracer().Debugf("no %s table found in font", tag)
		return nil, false
	}
	b := table.Binary()
	if len(b) < minSize {
		tracer().Debugf("%s table too short: %d", tag, len(b))
		return nil, false
	}
	return b, true
}
