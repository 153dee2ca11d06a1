package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/npillmayer/otlayoutcore"
	"github.com/npillmayer/otlayoutcore/ot"
	"github.com/npillmayer/otlayoutcore/otlayout"
	"github.com/npillmayer/otlayoutcore/otquery"
	"github.com/pterm/pterm"
)

func tableOp(intp *Intp, op *Op) (error, bool) {
	tag := ot.T(op.arg)
	if tag != ot.T("GSUB") && tag != ot.T("GPOS") {
		return fmt.Errorf("not a layout table: '%s'", op.arg), false
	}
	lyt := otlayout.New(intp.font.OT, tag)
	if lyt.Table(false) == nil {
		return errors.New("table not found in font"), false
	}
	intp.layout, intp.table = lyt, tag
	intp.clearPath()
	tracer().Infof("setting table: %v", tag)
	return nil, false
}

func scriptsOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkTable(); err != nil {
		return
	}
	intp.clearPath()
	pterm.Printf("ScriptList keys: %v\n", intp.layout.ScriptNames())
	if op.arg == "" {
		if dflt, ok := intp.layout.DefaultScriptName(); ok {
			pterm.Printf("default script is '%s'\n", dflt)
		}
		return
	}
	script := ot.T(op.arg)
	if intp.layout.ScriptTable(script, false) == nil {
		return fmt.Errorf("script '%s' not found", script), false
	}
	intp.script = script
	return
}

func langsOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkTable(); err != nil {
		return
	}
	if intp.script == 0 {
		return errors.New("no script selected"), false
	}
	intp.lang, intp.feature = 0, 0
	pterm.Printf("LangSys keys of %s: %v\n", intp.script, intp.layout.LanguageNames(intp.script))
	if op.arg == "" {
		return
	}
	lang := ot.T(op.arg)
	if intp.layout.LangSysTable(intp.script, lang, false) == nil {
		return fmt.Errorf("language system '%s' not found", lang), false
	}
	intp.lang = lang
	return
}

func featuresOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkTable(); err != nil {
		return
	}
	if intp.script == 0 {
		lytt := intp.layout.Table(false)
		pterm.Printf("FeatureList has %d entries\n", len(lytt.Features))
		printFeatureList(lytt)
		return
	}
	lang := intp.lang
	if lang == 0 {
		lang = ot.DefaultLanguage
	}
	intp.feature = 0
	pterm.Printf("features of %s/%s: %v\n", intp.script, lang, intp.layout.FeatureNames(intp.script, lang))
	if op.arg == "" {
		return
	}
	feature := ot.T(op.arg)
	f, err := intp.layout.FeatureTable(intp.script, lang, feature, false)
	if err != nil {
		return err, false
	} else if f == nil {
		return fmt.Errorf("feature '%s' not found", feature), false
	}
	intp.lang, intp.feature = lang, feature
	pterm.Printf("feature '%s' references lookups %v\n", feature, f.LookupListIndexes)
	return
}

func lookupsOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkTable(); err != nil {
		return
	}
	lytt := intp.layout.Table(false)
	if op.arg == "" {
		printLookupList(intp.table, lytt)
		return
	}
	i, err := strconv.Atoi(op.arg)
	if err != nil {
		tracer().Errorf("Lookup index not numeric: %v", op.arg)
		return errors.New("invalid lookup index"), false
	}
	printLookup(intp.table, lytt, i)
	return nil, false
}

func classOp(intp *Intp, op *Op) (err error, stop bool) {
	gid, err := glyphArg(op)
	if err != nil {
		return err, false
	}
	otf := intp.font.OT
	clz := otquery.ClassesForGlyph(otf, gid)
	pterm.Printf("glyph %d: class=%s mark-attach-class=%d attach-points=%v\n",
		gid, clz.Class, clz.MarkAttachClass, otquery.AttachPoints(otf, gid))
	if gdef := otf.GDef(); gdef != nil {
		if sets, ok := gdef.MarkGlyphSets.Unwrap(); ok {
			for i := range sets {
				if otquery.InMarkGlyphSet(otf, i, gid) {
					pterm.Printf("glyph %d is in mark glyph set %d\n", gid, i)
				}
			}
		}
	}
	return
}

func caretsOp(intp *Intp, op *Op) (err error, stop bool) {
	gid, err := glyphArg(op)
	if err != nil {
		return err, false
	}
	carets := otquery.LigatureCarets(intp.font.OT, gid)
	if len(carets) == 0 {
		pterm.Printf("glyph %d has no ligature carets\n", gid)
		return
	}
	data := [][]string{{"#", "Caret"}}
	for i, c := range carets {
		data = append(data, []string{strconv.Itoa(i), formatCaret(c)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return
}

func infoOp(intp *Intp, op *Op) (err error, stop bool) {
	otf := intp.font.OT
	family, subfamily := opentype.FamilyName(otf)
	pterm.Printf("font %s (%s %s), type %s\n", intp.font.Name, family, subfamily, otquery.FontType(otf))
	if h, ok := otquery.HeadInfo(otf); ok {
		pterm.Printf("version %d.%d, %d units per em\n", h.MajorVersion, h.MinorVersion, h.UnitsPerEm)
	}
	pterm.Printf("layout tables: %v\n", otquery.LayoutTables(otf))
	req := otquery.LayoutRequirements(otf)
	pterm.Printf("lookups need GDEF glyph classes=%v, mark attach classes=%v, mark glyph sets=%v\n",
		req.NeedGlyphClassDef, req.NeedMarkAttachClassDef, req.NeedMarkGlyphSets)
	return
}

func warningsOp(intp *Intp, op *Op) (err error, stop bool) {
	warnings := intp.font.OT.Warnings()
	if len(warnings) == 0 {
		pterm.Println("no warnings")
	}
	for _, w := range warnings {
		pterm.Warning.Println(w.String())
	}
	return
}

func glyphArg(op *Op) (ot.GlyphIndex, error) {
	n, err := strconv.ParseUint(op.arg, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("glyph index expected, got '%s'", op.arg)
	}
	return ot.GlyphIndex(n), nil
}
