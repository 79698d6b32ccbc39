package fontkit

import (
	"fmt"
	"path/filepath"
)

// Handle is an opaque reference to a font, either on disk or in memory.
// A Handle does not own any rendering resources; use a Loader to
// get a Face for it.
//
// Handles are values and may be copied freely. For memory handles the
// underlying byte slice is shared and must not be modified by clients.
type Handle struct {
	path  string
	data  []byte
	index uint32
}

// PathHandle creates a handle for the font with index `index` in file `path`.
func PathHandle(path string, index uint32) Handle {
	return Handle{path: path, index: index}
}

// MemoryHandle creates a handle for the font with index `index` in `data`.
func MemoryHandle(data []byte, index uint32) Handle {
	return Handle{data: data, index: index}
}

// IsPath is true if h refers to a font file.
func (h Handle) IsPath() bool {
	return h.data == nil && h.path != ""
}

// Path returns the file path for path handles, or "" otherwise.
func (h Handle) Path() string {
	return h.path
}

// Bytes returns the font data for memory handles, or nil otherwise.
func (h Handle) Bytes() []byte {
	return h.data
}

// FontIndex is the index of the font within a collection, 0 for single fonts.
func (h Handle) FontIndex() uint32 {
	return h.index
}

func (h Handle) String() string {
	if h.IsPath() {
		return fmt.Sprintf("%s#%d", filepath.Base(h.path), h.index)
	}
	return fmt.Sprintf("<%d bytes>#%d", len(h.data), h.index)
}

// FamilyHandle is the ordered list of fonts belonging to one family.
// Order is the order of enumeration, not sorted by style.
type FamilyHandle struct {
	Fonts []Handle
}

// IsEmpty is true if the family holds no fonts.
func (fh FamilyHandle) IsEmpty() bool {
	return len(fh.Fonts) == 0
}

// Add appends handles to the family.
func (fh *FamilyHandle) Add(h ...Handle) {
	fh.Fonts = append(fh.Fonts, h...)
}

// MatchFields is the minimal projection of a face needed for
// style matching.
type MatchFields struct {
	FamilyName string
	Properties Properties
}

// MatchFieldsOf projects a face to its match fields.
func MatchFieldsOf(f Face) MatchFields {
	return MatchFields{
		FamilyName: f.FamilyName(),
		Properties: f.Properties(),
	}
}
