package otquery

import (
	"github.com/Aloxaf/font-kit/ot"
)

// OS2TableInfo is a typed query view over OpenType table 'OS/2'.
// XHeight and CapHeight are present for table versions 2 and later only.
type OS2TableInfo struct {
	Version       uint16
	WeightClass   uint16
	WidthClass    uint16
	FsSelection   uint16
	VendorID      string
	TypoAscender  int16
	TypoDescender int16
	TypoLineGap   int16
	WinAscent     uint16
	WinDescent    uint16
	XHeight       int16
	CapHeight     int16
	HasHeights    bool // true if XHeight and CapHeight have been decoded
}

// fsSelection bits
const (
	FsSelectionItalic  uint16 = 1 << 0
	FsSelectionBold    uint16 = 1 << 5
	FsSelectionRegular uint16 = 1 << 6
	FsSelectionOblique uint16 = 1 << 9
)

const (
	os2V0Size = 78
	os2V2Size = 96
)

// IsItalic reports whether the italic bit of fsSelection is set.
func (os2 OS2TableInfo) IsItalic() bool {
	return os2.FsSelection&FsSelectionItalic != 0
}

// IsOblique reports whether the oblique bit of fsSelection is set.
// The bit is defined for table versions 4 and later.
func (os2 OS2TableInfo) IsOblique() bool {
	return os2.Version >= 4 && os2.FsSelection&FsSelectionOblique != 0
}

// OS2Info decodes table 'OS/2'.
// Returns (info, true) on success, or (zero, false) if table is missing/too short.
func OS2Info(otf *ot.Font) (OS2TableInfo, bool) {
	var info OS2TableInfo
	b, ok := tableBytes(otf, "OS/2", os2V0Size)
	if !ok {
		return info, false
	}
	info.Version = u16(b[0:])
	info.WeightClass = u16(b[4:])
	info.WidthClass = u16(b[6:])
	info.VendorID = string(b[58:62])
	info.FsSelection = u16(b[62:])
	info.TypoAscender = i16(b[68:])
	info.TypoDescender = i16(b[70:])
	info.TypoLineGap = i16(b[72:])
	info.WinAscent = u16(b[74:])
	info.WinDescent = u16(b[76:])
	if info.Version >= 2 && len(b) >= os2V2Size {
		info.XHeight = i16(b[86:])
		info.CapHeight = i16(b[88:])
		info.HasHeights = true
	}
	return info, true
}
