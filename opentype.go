package opentype

import (
	"github.com/npillmayer/otlayoutcore/ot"
	"github.com/npillmayer/otlayoutcore/otlayout"
	"github.com/npillmayer/otlayoutcore/otquery"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/language"
)

// FromBinary parses raw OpenType bytes and returns a decoded font.
//
// The input is expected to contain a complete single-font SFNT stream.
// It must not change after parsing for the font to be usable.
func FromBinary(data []byte) (*ot.Font, error) {
	otf, err := ot.Parse(data)
	if err != nil {
		return nil, err
	}
	for _, w := range otf.Warnings() {
		tracer().Infof("%s", w)
	}
	return otf, nil
}

// FamilyName extracts family and subfamily names from a font's `name` table.
//
// Returned values are empty if no matching records exist or if records cannot be
// decoded by the current name-table reader.
func FamilyName(f *ot.Font) (family, subfamily string) {
	for nameID, stringValue := range otquery.NamesRange(f) {
		switch nameID {
		case sfnt.NameIDFamily:
			family = stringValue
		case sfnt.NameIDSubfamily:
			subfamily = stringValue
		}
	}
	return
}

// ScriptAndLanguage selects the OpenType script and language system for text in
// language lang. If the font does not support the script of lang, the font's
// default script is selected; if it has no special support for the language,
// 'dflt' is selected.
func ScriptAndLanguage(f *ot.Font, lang language.Tag) (script, langSys ot.Tag) {
	scr, _ := lang.Script()
	script = otlayout.ScriptTagFor(scr)
	langSys = otlayout.LanguageTagFor(lang, language.Low)
	return otquery.FontSupportsScript(f, script, langSys)
}
