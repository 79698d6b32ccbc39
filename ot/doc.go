/*
Package ot provides access to the binary structure of OpenType font files and
font collections.

Package `ot` will not interpret the tables of a font, but rather just locate
them and expose them to the client. Decoding of individual tables is homed in
the sister package `otquery`. From this point of view, `ot` is a low-level
package.

Font collections (*.ttc, *.otc) hold a number of fonts sharing a single
binary. Each font of a collection has its own table directory, with table
offsets relative to the start of the collection. Unpack moves the table
directory of one font to the start of the buffer, turning the buffer into
something a parser for single fonts will accept. Table data is never moved.

▪︎ Bugs in fonts: many fonts in the wild contain entries that, strictly speaking, infringe
upon the OT specification, but an application using it should not fail because of
recoverable errors. Package `ot` will record such issues as warnings.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package ot

/*
Valuable resources:

▪︎ https://docs.microsoft.com/en-us/typography/opentype/spec/otff#font-collections

▪︎ https://developer.apple.com/fonts/TrueType-Reference-Manual/RM06/Chap6.html
*/

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontkit.ot'
func tracer() tracing.Trace {
	return tracing.Select("fontkit.ot")
}
