/*
Package gotext loads faces with github.com/go-text/typesetting/font.

Style properties, metrics, outlines and glyph extents come from go-text.
Names and the glyph count are read from the raw font tables with package
otquery, as go-text does not export them. go-text folds oblique styles into
italic; the oblique bit of the 'OS/2' table is consulted to tell them apart.

Hinting is not supported; HintingNone is the only mode a Face accepts for
rasterization.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package gotext

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontkit.loader'
func tracer() tracing.Trace {
	return tracing.Select("fontkit.loader")
}
