/*
Package otlayout provides access to OpenType font layout features.

A Layout manages one of the layout tables of a font, GSUB or GPOS, and navigates
the graph of scripts, language systems, features and lookups of this table.
Every navigation call has a create flag. With create set, missing nodes are
created on the way, which makes a Layout the entry point for code authoring
substitution or positioning rules:

	lyt := otlayout.New(otf, ot.T("GSUB"))
	lookups, err := lyt.LookupTables(ot.Latn, ot.T("DEU"), ot.T("liga"), 4, true)

Script and language system records are kept sorted by tag. Features may only be
created in ascending tag order (see ot.ErrFeatureOrder).

# Status

Work in progress.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otlayout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}
