/*
Package xsfnt loads faces with golang.org/x/image/font/sfnt.

Names, style properties and metrics are read from the raw font tables with
package otquery; outlines, advances and glyph bounds come from sfnt. Glyph
rasterization fills the unhinted outline with golang.org/x/image/vector.

Hinting is not supported; HintingNone is the only mode a Face accepts for
rasterization.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package xsfnt

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontkit.loader'
func tracer() tracing.Trace {
	return tracing.Select("fontkit.loader")
}
