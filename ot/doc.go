/*
Package ot provides access to the advanced typography tables of OpenType fonts.

Package ot decodes the Glyph Definition table (GDEF) and the part of GSUB and GPOS
which both tables share: the graph of scripts, language systems, features and
lookups. It also provides the two classification structures found all over the
OpenType layout tables, Coverage and ClassDef, together with the searches
on top of them.

Intended audience for this package are:

▪︎ text shapers, which need glyph classes, mark glyph sets and coverage indices

▪︎ font tools, which author substitution or positioning rules and have to edit the
script/feature/lookup graph of a layout table without breaking index references

Package ot does not interpret lookups. Lookup subtables are kept as raw byte
views; it is up to a shaping layer to decode and apply them.

# Decoding

Binary font data is read through a Decoder, a cursor over a byte buffer. OpenType
tables are graphs of structures linked by 16-bit offsets, relative to the start of
the enclosing structure. ReadPointer follows such an offset and hands the
destination to a sub-decoder; an offset of 0 is a NULL link and results in
None. ReadList reads a count-prefixed array of elements.

Decoding is fail-fast: an unsupported table version or sub-table format
aborts the decoding of the whole table.

# Status

No font collections nor variable fonts are supported.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.opentype'
func tracer() tracing.Trace {
	return tracing.Select("font.opentype")
}
