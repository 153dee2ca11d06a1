package otlayout

import (
	"fmt"
	"slices"
	"strings"

	"github.com/npillmayer/otlayoutcore/ot"
)

// Layout navigates and edits one layout table (GSUB or GPOS) of a font.
//
// Layout does not cache anything: every call goes through the font's table
// registry, so a Layout always sees the current state of the font. Calls with
// create=true modify the font's tables in place and have to be serialized by
// the client.
type Layout struct {
	font  *ot.Font
	table ot.Tag
}

// New creates a Layout for table (ot.T("GSUB") or ot.T("GPOS")) of font otf.
func New(otf *ot.Font, table ot.Tag) *Layout {
	return &Layout{font: otf, table: table}
}

// Table returns the layout table managed by l. If the font does not contain it
// and create is set, an empty layout table is installed in the font.
// Otherwise nil is returned.
func (l *Layout) Table(create bool) *ot.LayoutTable {
	if t := l.font.Layout(l.table); t != nil {
		return t
	}
	if !create {
		return nil
	}
	t := ot.NewLayoutTable(l.table)
	l.font.SetTable(t)
	tracer().Debugf("created empty %s table", l.table)
	return t
}

// ScriptNames returns the tags of all scripts of the layout table, sorted by tag.
func (l *Layout) ScriptNames() []ot.Tag {
	t := l.Table(false)
	if t == nil {
		return []ot.Tag{}
	}
	names := make([]ot.Tag, len(t.Scripts))
	for i, rec := range t.Scripts {
		names[i] = rec.Tag
	}
	return names
}

// DefaultScriptName returns the script to use if a client does not ask for a
// specific one: 'DFLT' if present, 'latn' otherwise. If the table has neither,
// DefaultScriptName returns false.
func (l *Layout) DefaultScriptName() (ot.Tag, bool) {
	t := l.Table(false)
	if t == nil {
		return 0, false
	}
	for _, script := range []ot.Tag{ot.DFLT, ot.Latn} {
		if ot.SearchTag(t.Scripts, script) >= 0 {
			return script, true
		}
	}
	return 0, false
}

// ScriptTable returns the script table for script. A script tag of 0 denotes
// 'DFLT'. If the script is not present and create is set, a new script with an
// empty default language system is inserted, keeping the script list sorted.
// Otherwise nil is returned.
func (l *Layout) ScriptTable(script ot.Tag, create bool) *ot.Script {
	if script == 0 {
		script = ot.DFLT
	}
	t := l.Table(create)
	if t == nil {
		return nil
	}
	i := ot.SearchTag(t.Scripts, script)
	if i >= 0 {
		return t.Scripts[i].Script
	}
	if !create {
		return nil
	}
	s := ot.NewScript()
	t.Scripts = slices.Insert(t.Scripts, ot.InsertionPoint(i), ot.ScriptRecord{Tag: script, Script: s})
	tracer().Debugf("%s: created script '%s'", l.table, script)
	return s
}

// LangSysTable returns the language system lang of script. The default language
// system 'dflt' (compared case-insensitively; a tag of 0 is treated the same)
// is never searched for by tag, but taken from the script's default slot.
// Other language systems are created on demand if create is set, keeping the
// language system records sorted.
func (l *Layout) LangSysTable(script, lang ot.Tag, create bool) *ot.LangSys {
	s := l.ScriptTable(script, create)
	if s == nil {
		return nil
	}
	if isDefaultLanguage(lang) {
		if s.DefaultLangSys == nil && create {
			s.DefaultLangSys = ot.NewLangSys()
		}
		return s.DefaultLangSys
	}
	i := ot.SearchTag(s.LangSysRecords, lang)
	if i >= 0 {
		return s.LangSysRecords[i].LangSys
	}
	if !create {
		return nil
	}
	lsys := ot.NewLangSys()
	s.LangSysRecords = slices.Insert(s.LangSysRecords, ot.InsertionPoint(i),
		ot.LangSysRecord{Tag: lang, LangSys: lsys})
	tracer().Debugf("%s: created language system '%s' for script '%s'", l.table, lang, script)
	return lsys
}

func isDefaultLanguage(lang ot.Tag) bool {
	return lang == 0 || strings.EqualFold(lang.String(), ot.DefaultLanguage.String())
}

// FeatureTable returns feature of the language system (script, lang).
//
// The feature indices of a language system are not sorted, so they are scanned
// linearly. If the language system does not reference the feature and create is
// set, a new feature is appended to the feature list of the table and referenced
// from the language system. Features are shared between language systems by
// index and therefore have to be created in ascending tag order; otherwise an
// error wrapping ot.ErrFeatureOrder is returned and nothing is changed.
//
// A missing feature with create=false is not an error: FeatureTable returns nil.
func (l *Layout) FeatureTable(script, lang, feature ot.Tag, create bool) (*ot.Feature, error) {
	lsys := l.LangSysTable(script, lang, create)
	if lsys == nil {
		return nil, nil
	}
	t := l.Table(false)
	for _, inx := range lsys.FeatureIndexes {
		if int(inx) < len(t.Features) && t.Features[inx].Tag == feature {
			return t.Features[inx].Feature, nil
		}
	}
	if !create {
		return nil, nil
	}
	if len(t.Features) > 0xFFFF {
		return nil, fmt.Errorf("%s: feature list full, cannot add '%s'", l.table, feature)
	}
	inx, err := t.AppendFeature(feature)
	if err != nil {
		tracer().Errorf("%s: %v", l.table, err)
		return nil, err
	}
	lsys.FeatureIndexes = append(lsys.FeatureIndexes, uint16(inx))
	tracer().Debugf("%s: created feature '%s' #%d", l.table, feature, inx)
	return t.Features[inx].Feature, nil
}

// LookupTables returns all lookups of type lookupType referenced by feature of
// language system (script, lang), in the order the feature references them.
// If there are none and create is set, a single empty lookup of lookupType is
// appended to the lookup list of the table and referenced from the feature.
func (l *Layout) LookupTables(script, lang, feature ot.Tag, lookupType ot.LayoutTableLookupType,
	create bool) ([]*ot.LookupTable, error) {
	//
	f, err := l.FeatureTable(script, lang, feature, create)
	if err != nil || f == nil {
		return nil, err
	}
	t := l.Table(false)
	lookups := []*ot.LookupTable{}
	for _, inx := range f.LookupListIndexes {
		if int(inx) >= len(t.Lookups) {
			continue
		}
		if lookup := t.Lookups[inx]; lookup != nil && lookup.LookupType == lookupType {
			lookups = append(lookups, lookup)
		}
	}
	if len(lookups) > 0 || !create {
		return lookups, nil
	}
	if len(t.Lookups) > 0xFFFF {
		return nil, fmt.Errorf("%s: lookup list full", l.table)
	}
	inx := t.AppendLookup(lookupType)
	f.LookupListIndexes = append(f.LookupListIndexes, uint16(inx))
	tracer().Debugf("%s: created lookup #%d of type %d for feature '%s'", l.table, inx, lookupType, feature)
	return []*ot.LookupTable{t.Lookups[inx]}, nil
}

// LanguageNames returns the language systems of script. If the script has a
// default language system, 'dflt' is the first entry; the other tags follow
// in sorted order.
func (l *Layout) LanguageNames(script ot.Tag) []ot.Tag {
	s := l.ScriptTable(script, false)
	if s == nil {
		return []ot.Tag{}
	}
	names := make([]ot.Tag, 0, len(s.LangSysRecords)+1)
	if s.DefaultLangSys != nil {
		names = append(names, ot.DefaultLanguage)
	}
	for _, rec := range s.LangSysRecords {
		names = append(names, rec.Tag)
	}
	return names
}

// FeatureNames returns the tags of the features of language system (script, lang).
// A required feature comes first, the rest follow in the order of the language
// system's feature indices. Tags may repeat.
func (l *Layout) FeatureNames(script, lang ot.Tag) []ot.Tag {
	lsys := l.LangSysTable(script, lang, false)
	if lsys == nil {
		return []ot.Tag{}
	}
	t := l.Table(false)
	names := make([]ot.Tag, 0, len(lsys.FeatureIndexes)+1)
	if r := int(lsys.RequiredFeatureIndex); r != ot.NoRequiredFeature && r < len(t.Features) {
		names = append(names, t.Features[r].Tag)
	}
	for _, inx := range lsys.FeatureIndexes {
		if int(inx) < len(t.Features) {
			names = append(names, t.Features[inx].Tag)
		}
	}
	return names
}

// --- Classification helpers ------------------------------------------------

// GlyphClass returns the class of glyph g in cd, or 0.
func (l *Layout) GlyphClass(cd ot.ClassDef, g ot.GlyphIndex) int {
	return ot.GlyphClass(cd, g)
}

// CoverageIndex returns the coverage index of glyph g in cov, or -1.
func (l *Layout) CoverageIndex(cov ot.Coverage, g ot.GlyphIndex) int {
	return ot.CoverageIndex(cov, g)
}

// ExpandCoverage returns all glyphs covered by cov.
func (l *Layout) ExpandCoverage(cov ot.Coverage) []ot.GlyphIndex {
	return ot.ExpandCoverage(cov)
}
