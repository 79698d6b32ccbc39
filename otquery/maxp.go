package otquery

import (
	"github.com/Aloxaf/font-kit/ot"
)

// MaxPTableInfo is a typed query view over OpenType table 'maxp'.
// Only the fields common to version 0.5 (CFF) and 1.0 (TrueType) are decoded.
type MaxPTableInfo struct {
	VersionFixed uint32
	NumGlyphs    uint16
}

const maxpMinSize = 6

// MaxPInfo decodes table 'maxp' directly from raw bytes.
// Returns (info, true) on success, or (zero, false) if table is missing/too short.
func MaxPInfo(otf *ot.Font) (MaxPTableInfo, bool) {
	var info MaxPTableInfo
	b, ok := tableBytes(otf, "maxp", maxpMinSize)
	if !ok {
		return info, false
	}
	info.VersionFixed = u32(b[0:4])
	info.NumGlyphs = u16(b[4:6])
	return info, true
}

// NumGlyphs returns the number of glyphs of a font, or 0 if the font has no
// readable 'maxp' table.
func NumGlyphs(otf *ot.Font) int {
	m, _ := MaxPInfo(otf)
	return int(m.NumGlyphs)
}
