/*
Package opentype is the entry point for loading OpenType fonts and accessing
their advanced typography tables.

There is a certain confusion with the nomenclature of typesetting. We will
stick to the following definitions:

▪︎ A "typeface" is a family of fonts. An example is "Helvetica".
This corresponds to a TrueType "collection" (*.ttc).

▪︎ A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Helvetica regular".

The packages of this module deal with scalable fonts only:

▪︎ package ot decodes tables GDEF, GSUB and GPOS

▪︎ package otlayout navigates and edits the script/feature/lookup graph of GSUB and GPOS

▪︎ package otquery answers typical questions of shapers and font tools

# Status

Does not yet contain methods for font collections (*.ttc), e.g.,
/System/Library/Fonts/Helvetica.ttc on Mac OS.

# Links

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package opentype

import (
	"github.com/npillmayer/otlayoutcore/internal/fontload"
	"github.com/npillmayer/otlayoutcore/ot"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}

// Font is a font loaded from a file, together with its decoded tables.
type Font struct {
	Name     string   // full font name
	Filepath string   // empty for fonts created from memory
	OT       *ot.Font // decoded advanced typography tables
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file and decodes
// its advanced typography tables.
func LoadOpenTypeFont(fontfile string) (*Font, error) {
	sf, err := fontload.LoadOpenTypeFont(fontfile)
	if err != nil {
		return nil, err
	}
	otf, err := FromBinary(sf.Binary)
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded font %s with %d glyphs", sf.Fontname, sf.NumGlyphs())
	return &Font{Name: sf.Fontname, Filepath: sf.Filepath, OT: otf}, nil
}
