package otquery

import (
	"github.com/npillmayer/otlayoutcore/ot"
	"github.com/npillmayer/otlayoutcore/otlayout"
)

// FontSupportsScript returns a tuple (script-tag, language-tag) for a given input
// of a script tag and a language tag. If the language has no special support in the
// font, 'dflt' will be returned for the language. If the script has no support in
// the font, the font's default script will be returned (see
// otlayout.Layout.DefaultScriptName), or DFLT if it has none.
func FontSupportsScript(otf *ot.Font, scr ot.Tag, lang ot.Tag) (ot.Tag, ot.Tag) {
	if otf == nil {
		return 0, 0
	}
	gsub := otlayout.New(otf, ot.T("GSUB"))
	if gsub.Table(false) == nil {
		return ot.DFLT, ot.DefaultLanguage
	}
	if gsub.ScriptTable(scr, false) == nil {
		tracer().Infof("cannot find script %s in font", scr)
		if dflt, ok := gsub.DefaultScriptName(); ok {
			return dflt, ot.DefaultLanguage
		}
		return ot.DFLT, ot.DefaultLanguage
	}
	tracer().Debugf("script %s is contained in GSUB", scr)
	if gsub.LangSysTable(scr, lang, false) != nil {
		return scr, lang
	}
	return scr, ot.DefaultLanguage
}

// LayoutTables returns the names of the advanced typography tables contained
// in the font, sorted by tag.
func LayoutTables(otf *ot.Font) []string {
	var tables []string
	for _, tag := range otf.TableTags() {
		switch tag {
		case ot.T("GDEF"), ot.T("GSUB"), ot.T("GPOS"), ot.T("BASE"), ot.T("JSTF"):
			tables = append(tables, tag.String())
		}
	}
	return tables
}

// LayoutRequirements returns the GDEF sub-tables the lookups of GSUB and GPOS
// depend on, as implied by their lookup flags. Lookups are inspected on every
// call, thus lookups created or edited after decoding the font are included.
func LayoutRequirements(otf *ot.Font) ot.LayoutRequirements {
	var req ot.LayoutRequirements
	for _, tag := range []ot.Tag{ot.T("GSUB"), ot.T("GPOS")} {
		lytt := otf.Layout(tag)
		if lytt == nil {
			continue
		}
		for _, lookup := range lytt.Lookups {
			if lookup != nil {
				req.AddFromLookupFlag(lookup.LookupFlag)
			}
		}
	}
	return req
}
