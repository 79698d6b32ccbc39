package otquery

import (
	"github.com/Aloxaf/font-kit/ot"
)

// PostTableInfo is a typed query view over the header of OpenType table 'post'.
// Glyph names are not decoded.
type PostTableInfo struct {
	Version            uint32
	ItalicAngle        float32 // degrees, counter-clockwise from vertical
	UnderlinePosition  int16
	UnderlineThickness int16
	IsFixedPitch       bool
}

const postHeaderSize = 32

// PostInfo decodes the header of table 'post'.
// Returns (info, true) on success, or (zero, false) if table is missing/too short.
func PostInfo(otf *ot.Font) (PostTableInfo, bool) {
	var info PostTableInfo
	b, ok := tableBytes(otf, "post", postHeaderSize)
	if !ok {
		return info, false
	}
	info.Version = u32(b[0:])
	info.ItalicAngle = float32(int32(u32(b[4:]))) / 65536
	info.UnderlinePosition = i16(b[8:])
	info.UnderlineThickness = i16(b[10:])
	info.IsFixedPitch = u32(b[12:]) != 0
	return info, true
}
