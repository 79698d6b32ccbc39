package fontkit

import "errors"

// Loading errors.
var (
	ErrIO                     = errors.New("font I/O error")
	ErrUnknownFormat          = errors.New("unknown font format")
	ErrParse                  = errors.New("font could not be parsed")
	ErrNoSuchFontInCollection = errors.New("no such font in collection")
	ErrNotACollection         = errors.New("font data is not a collection")
	ErrMalformedCollection    = errors.New("malformed font collection")
	ErrFontDataUnavailable    = errors.New("font data unavailable")
)

// ErrNoSuchGlyph is returned for glyph IDs out of range of a face.
var ErrNoSuchGlyph = errors.New("no such glyph")

// ErrNotFound is returned if no font satisfies a selection request.
var ErrNotFound = errors.New("no font found")
