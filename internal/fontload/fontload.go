// Package fontload loads font files and checks them with the sfnt decoder of
// golang.org/x/image before they are handed over to the layout decoder.
package fontload

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}

// ScalableFont is a font file in memory, together with its sfnt container view.
type ScalableFont struct {
	Fontname string
	Filepath string     // empty for fonts parsed from memory
	Binary   []byte     // raw data, must not be modified
	SFNT     *sfnt.Font // the font's container
}

// NumGlyphs returns the number of glyphs in the font.
func (f *ScalableFont) NumGlyphs() int {
	if f == nil || f.SFNT == nil {
		return 0
	}
	return f.SFNT.NumGlyphs()
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, fmt.Errorf("font file %s: %w", fontfile, err)
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
// Font collections are rejected by the sfnt decoder.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	if f.SFNT, err = sfnt.Parse(f.Binary); err != nil {
		return nil, err
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err != nil {
		tracer().Infof("font has no full name: %v", err)
		f.Fontname = "<unnamed>"
	}
	tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	return f, nil
}
