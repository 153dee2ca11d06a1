package otquery

import (
	"github.com/npillmayer/otlayoutcore/ot"
)

// GlyphClass returns the GDEF glyph class of glyph gid.
// Fonts without a GDEF glyph class table leave every glyph unclassified.
func GlyphClass(otf *ot.Font, gid ot.GlyphIndex) ot.GlyphClassDefEnum {
	return otf.GDef().GlyphClassOf(gid)
}

// IsMark reports whether GDEF classifies glyph gid as a mark.
func IsMark(otf *ot.Font, gid ot.GlyphIndex) bool {
	return GlyphClass(otf, gid) == ot.MarkGlyph
}

// MarkAttachClass returns the mark attachment class of glyph gid, or 0.
func MarkAttachClass(otf *ot.Font, gid ot.GlyphIndex) int {
	return otf.GDef().MarkAttachClassOf(gid)
}

// AttachPoints returns the contour point indices usable for attaching marks
// to glyph gid, or nil.
func AttachPoints(otf *ot.Font, gid ot.GlyphIndex) []uint16 {
	return otf.GDef().AttachPointsOf(gid)
}

// LigatureCarets returns the caret positions within ligature glyph gid, or nil.
func LigatureCarets(otf *ot.Font, gid ot.GlyphIndex) []ot.CaretValue {
	return otf.GDef().LigatureCaretsOf(gid)
}

// InMarkGlyphSet reports whether glyph gid belongs to mark glyph set #set,
// as referenced by lookups with flag USE_MARK_FILTERING_SET.
func InMarkGlyphSet(otf *ot.Font, set int, gid ot.GlyphIndex) bool {
	return otf.GDef().InMarkGlyphSet(set, gid)
}

// GlyphClasses collects the GDEF classification of a glyph.
type GlyphClasses struct {
	Class           ot.GlyphClassDefEnum
	MarkAttachClass int
}

// ClassesForGlyph returns the GDEF classes of glyph gid.
func ClassesForGlyph(otf *ot.Font, gid ot.GlyphIndex) GlyphClasses {
	gdef := otf.GDef()
	if gdef == nil {
		tracer().Debugf("font has no GDEF table")
		return GlyphClasses{}
	}
	return GlyphClasses{
		Class:           gdef.GlyphClassOf(gid),
		MarkAttachClass: gdef.MarkAttachClassOf(gid),
	}
}
