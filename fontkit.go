/*
Package fontkit locates, identifies and compares typefaces.

There is a certain confusion with the nomenclature of typesetting. We will
stick to the following definitions:

▪︎ A "family" is a named group of related fonts. An example is "Helvetica".
A family may be spread over several font files, or be packed into a single
TrueType/OpenType collection (*.ttc, *.otc).

▪︎ A "face" is a single loaded font of a family, i.e. a variant with a certain
weight, slant and width. An example is "Helvetica Bold".

Package fontkit holds the vocabulary shared by all sub-packages: style
properties, family specifications, font handles, metrics, canvases, and the
two capability contracts every backend implements:

▪︎ Face is a loaded font. Concrete faces live in the loaders/… packages.

▪︎ Source enumerates installed fonts. Concrete sources live in the sources/…
packages.

Selecting the best font for a CSS-like specification is done by package
matching, on top of these two contracts.

# Handles and faces

A Handle is a cheap, immutable reference to a font, either by path or by an
in-memory byte slice, together with the index of the font within a collection.
Handles carry no rendering resources. Turning a Handle into a Face is an
explicit step, performed by a Loader.

# Links

CSS Fonts Level 3, font matching algorithm:
https://www.w3.org/TR/css-fonts-3/#font-matching-algorithm

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package fontkit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontkit'
func tracer() tracing.Trace {
	return tracing.Select("fontkit")
}

// Loader resolves a Handle into a loaded Face. Loaders are provided by the
// backend packages, e.g. xsfnt.Load.
type Loader func(h Handle) (Face, error)

// FromFace re-creates a face from the font data of another face, possibly
// of a different backend. The data of `other` is exported with
// CopyFontData; faces constructed from a native font without a retrievable
// byte source will therefore fail with ErrFontDataUnavailable.
func FromFace(load Loader, other Face) (Face, error) {
	data, err := other.CopyFontData()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("re-loading face %q from %d bytes", other.PostScriptName(), len(data))
	return load(MemoryHandle(data, 0))
}
