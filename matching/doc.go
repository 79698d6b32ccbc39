/*
Package matching selects fonts from a source by CSS-like specifications.

Matching proceeds family by family: the first family of a spec which
resolves to a non-empty set of fonts in the source is scored with the
CSS font matching procedure and yields the result. Generic families
(serif, sans-serif, …) are resolved through a table of default family
names, which clients may configure.

Scoring narrows the candidates axis by axis, style first, then stretch,
then weight. See

https://www.w3.org/TR/css-fonts-4/#font-style-matching

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package matching

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontkit.matching'
func tracer() tracing.Trace {
	return tracing.Select("fontkit.matching")
}
