/*
Package otquery answers questions about an OpenType font which a text shaper or
a font tool typically asks: the GDEF classification of a glyph, its attachment
points and ligature carets, the scripts and language systems a font supports,
and general font information from tables 'head' and 'name'.

All queries are read-only and tolerate missing tables: a font without GDEF has
no classified glyphs, a font without GSUB supports only the default script.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}
