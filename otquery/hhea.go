package otquery

import (
	"github.com/Aloxaf/font-kit/ot"
)

// HHeaTableInfo is a typed query view over OpenType table 'hhea'.
type HHeaTableInfo struct {
	Ascender         int16
	Descender        int16
	LineGap          int16
	AdvanceWidthMax  uint16
	NumberOfHMetrics uint16
}

const hheaTableSize = 36

// HHeaInfo decodes table 'hhea'.
// Returns (info, true) on success, or (zero, false) if table is missing/too short.
func HHeaInfo(otf *ot.Font) (HHeaTableInfo, bool) {
	var info HHeaTableInfo
	b, ok := tableBytes(otf, "hhea", hheaTableSize)
	if !ok {
		return info, false
	}
	info.Ascender = i16(b[4:])
	info.Descender = i16(b[6:])
	info.LineGap = i16(b[8:])
	info.AdvanceWidthMax = u16(b[10:])
	info.NumberOfHMetrics = u16(b[34:])
	return info, true
}
