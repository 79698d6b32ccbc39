/*
Package otquery answers questions about an OpenType font parsed by package ot.

Queries decode the raw bytes of single tables ('head', 'hhea', 'maxp', 'name',
'OS/2', 'post') on demand. Nothing is cached; callers which need a value
repeatedly should keep it. Missing or truncated tables are reported with a
false flag and never panic.

On top of the table views, otquery derives the font-wide vocabulary of package
fontkit: names, style properties and metrics.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package otquery

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontkit.ot'
func tracer() tracing.Trace {
	return tracing.Select("fontkit.ot")
}
