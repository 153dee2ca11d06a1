package ot

import (
	"fmt"
)

// --- GDEF table ------------------------------------------------------------

// GDefTable, the Glyph Definition (GDEF) table, provides various glyph properties
// used in OpenType Layout processing.
//
// Every sub-table is optional. A sub-table linked by a NULL offset is None;
// MarkGlyphSets is always None for GDEF version 1.0.
//
// See also
// https://docs.microsoft.com/en-us/typography/opentype/spec/gdef
type GDefTable struct {
	tableBase
	Version            Version
	GlyphClassDef      Option[ClassDef]
	AttachList         Option[*AttachList]
	LigCaretList       Option[*LigCaretList]
	MarkAttachClassDef Option[ClassDef]
	MarkGlyphSets      Option[[]Coverage]
	// ItemVarStoreOffset is the raw offset to the Item Variation Store (version 1.3).
	// Variation data is not decoded.
	ItemVarStoreOffset uint32
}

// NewGDefTable creates a GDEF table of version 1.2 without any sub-tables.
func NewGDefTable() *GDefTable {
	return &GDefTable{
		tableBase: tableBase{name: T("GDEF")},
		Version:   Version{Major: 1, Minor: 2},
	}
}

// GlyphClassDefEnum lists the glyph classes of GDEF's glyph class definition table.
type GlyphClassDefEnum uint16

const (
	UnclassifiedGlyph GlyphClassDefEnum = iota // no class assigned
	BaseGlyph                                  // single character, spacing glyph
	LigatureGlyph                              // multiple character, spacing glyph
	MarkGlyph                                  // non-spacing combining glyph
	ComponentGlyph                             // part of single character, spacing glyph
)

func (c GlyphClassDefEnum) String() string {
	switch c {
	case BaseGlyph:
		return "Base"
	case LigatureGlyph:
		return "Ligature"
	case MarkGlyph:
		return "Mark"
	case ComponentGlyph:
		return "Component"
	}
	return "Unclassified"
}

// An AttachList lists attachment points for glyphs. For each glyph in Coverage
// (in Coverage Index order) AttachPoints holds the contour point indices usable
// as attachment points, in increasing numerical order.
type AttachList struct {
	Coverage     Coverage
	AttachPoints [][]uint16
}

// A LigCaretList defines caret positions for ligature glyphs. For each glyph in
// Coverage (in Coverage Index order) LigGlyphs holds the caret positions, in
// increasing coordinate order.
type LigCaretList struct {
	Coverage  Coverage
	LigGlyphs [][]CaretValue
}

// CaretValue is a caret position within a ligature.
// A CaretValue is either a CaretCoordinate or a CaretPoint.
type CaretValue interface {
	caretValue()
}

// CaretCoordinate is a caret position given as an X coordinate in design units.
// It stems from CaretValue formats 1 and 3; for format 3 the device or
// variation adjustment is dropped.
type CaretCoordinate struct {
	Coordinate int16
}

// CaretPoint is a caret position given as a contour point index of the
// ligature glyph (CaretValue format 2).
type CaretPoint struct {
	PointIndex uint16
}

func (CaretCoordinate) caretValue() {}
func (CaretPoint) caretValue()      {}

// ParseGDef decodes a GDEF table from b, starting at offset.
//
// The GDEF table begins with a header that starts with a version number. Three
// versions are defined. Version 1.0 contains an offset to a Glyph Class Definition
// table (GlyphClassDef), an offset to an Attachment List table (AttachList), an offset
// to a Ligature Caret List table (LigCaretList), and an offset to a Mark Attachment
// Class Definition table (MarkAttachClassDef). Version 1.2 also includes an offset to
// a Mark Glyph Sets Definition table (MarkGlyphSetsDef). Version 1.3 also includes an
// offset to an Item Variation Store table.
//
// Any unsupported version or sub-table format aborts decoding with a FontError.
func ParseGDef(b []byte, offset int) (*GDefTable, error) {
	tag := T("GDEF")
	d := NewDecoder(b, offset).forTable(tag)
	gdef := &GDefTable{tableBase: tableBase{name: tag, offset: uint32(offset)}}
	var err error
	if gdef.Version, err = d.ReadVersion16Dot16(1); err != nil {
		return nil, errStructure(tag, "Header", offset, err)
	}
	if v := gdef.Version; v.Major != 1 || (v.Minor != 0 && v.Minor != 2 && v.Minor != 3) {
		return nil, errFormat(tag, "Header", offset, fmt.Sprintf("unsupported GDEF version %s", v))
	}
	if gdef.GlyphClassDef, err = ReadPointer(d, ParseClassDef); err != nil {
		return nil, errStructure(tag, "GlyphClassDef", d.Pos(), err)
	}
	if gdef.AttachList, err = ReadPointer(d, parseAttachList); err != nil {
		return nil, errStructure(tag, "AttachList", d.Pos(), err)
	}
	if gdef.LigCaretList, err = ReadPointer(d, parseLigCaretList); err != nil {
		return nil, errStructure(tag, "LigCaretList", d.Pos(), err)
	}
	if gdef.MarkAttachClassDef, err = ReadPointer(d, ParseClassDef); err != nil {
		return nil, errStructure(tag, "MarkAttachClassDef", d.Pos(), err)
	}
	if gdef.Version.AtLeast(1, 2) {
		if gdef.MarkGlyphSets, err = ReadPointer(d, parseMarkGlyphSets); err != nil {
			return nil, errStructure(tag, "MarkGlyphSetsDef", d.Pos(), err)
		}
	}
	if gdef.Version.AtLeast(1, 3) {
		if gdef.ItemVarStoreOffset, err = d.ReadUint32(); err != nil {
			return nil, errStructure(tag, "Header", d.Pos(), err)
		}
	}
	gdef.length = uint32(d.Pos() - offset)
	tracer().Debugf("GDEF table has version %s", gdef.Version)
	return gdef, nil
}

/*
AttachList:
Type      Name                            Description
---------+-------------------------------+-----------------------
Offset16  coverageOffset                  Offset to Coverage table - from beginning of AttachList table
uint16    glyphCount                      Number of glyphs with attachment points
Offset16  attachPointOffsets[glyphCount]  Array of offsets to AttachPoint tables-from beginning of

	AttachList table-in Coverage Index order
*/
func parseAttachList(d *Decoder) (*AttachList, error) {
	cov, err := ReadPointer(d, ParseCoverage)
	if err != nil {
		return nil, err
	}
	points, err := ReadList(d, readNullable(func(d *Decoder) ([]uint16, error) {
		return ReadList(d, readUint16s)
	}))
	if err != nil {
		return nil, err
	}
	return &AttachList{Coverage: cov.Or(nil), AttachPoints: points}, nil
}

// LigCaretList:
//
//	Offset16  coverageOffset                Offset to Coverage table - from beginning of LigCaretList table
//	uint16    ligGlyphCount                 Number of ligature glyphs
//	Offset16  ligGlyphOffsets[ligGlyphCount] Array of offsets to LigGlyph tables, in Coverage Index order
//
// LigGlyph:
//
//	uint16    caretCount                    Number of CaretValue tables for this ligature (components - 1)
//	Offset16  caretValueOffsets[caretCount] Array of offsets to CaretValue tables, from beginning of LigGlyph table
func parseLigCaretList(d *Decoder) (*LigCaretList, error) {
	cov, err := ReadPointer(d, ParseCoverage)
	if err != nil {
		return nil, err
	}
	ligs, err := ReadList(d, readNullable(func(d *Decoder) ([]CaretValue, error) {
		return ReadList(d, readNullable(parseCaretValue))
	}))
	if err != nil {
		return nil, err
	}
	return &LigCaretList{Coverage: cov.Or(nil), LigGlyphs: ligs}, nil
}

// parseCaretValue decodes one of three CaretValue formats. Format 3 carries
// a device table or variation index, which is not supported; its
// coordinate is kept.
func parseCaretValue(d *Decoder) (CaretValue, error) {
	at := d.Pos()
	format, err := d.ReadUint16()
	if err != nil {
		return nil, err
	}
	switch format {
	case 1, 3:
		c, err := d.ReadInt16()
		if err != nil {
			return nil, err
		}
		return CaretCoordinate{Coordinate: c}, nil
	case 2:
		p, err := d.ReadUint16()
		if err != nil {
			return nil, err
		}
		return CaretPoint{PointIndex: p}, nil
	}
	return nil, errFormat(d.table, "CaretValue", at, fmt.Sprintf("unknown CaretValue format %d", format))
}

// Mark glyph sets are defined in a MarkGlyphSets table, which contains offsets to
// individual sets each represented by a standard Coverage table.
//
//	uint16    format                        Format identifier == 1
//	uint16    markGlyphSetCount             Number of mark glyph sets defined
//	Offset32  coverageOffsets[markGlyphSetCount]
func parseMarkGlyphSets(d *Decoder) ([]Coverage, error) {
	if err := d.Skip(2); err != nil { // format
		return nil, err
	}
	return ReadList(d, readMarkGlyphSetCoverage)
}

// readMarkGlyphSetCoverage reads an Offset32 to a coverage table, relative to the
// start of the MarkGlyphSets table.
func readMarkGlyphSetCoverage(d *Decoder) (Coverage, error) {
	offset, err := d.ReadUint32()
	if err != nil {
		return nil, err
	}
	if offset == 0 {
		return nil, nil
	}
	target := d.Base() + int(offset)
	if offset > uint32(len(d.data)) || target >= len(d.data) {
		return nil, fmt.Errorf("mark glyph set offset %d out of bounds: %w", offset, errBufferBounds)
	}
	savedPos, savedBase := d.pos, d.base
	d.pos, d.base = target, target
	cov, err := ParseCoverage(d)
	d.pos, d.base = savedPos, savedBase
	return cov, err
}

// --- Convenience queries ---------------------------------------------------

// GlyphClassOf returns the GDEF glyph class of glyph g.
func (t *GDefTable) GlyphClassOf(g GlyphIndex) GlyphClassDefEnum {
	if t == nil {
		return UnclassifiedGlyph
	}
	if cd, ok := t.GlyphClassDef.Unwrap(); ok {
		return GlyphClassDefEnum(GlyphClass(cd, g))
	}
	return UnclassifiedGlyph
}

// MarkAttachClassOf returns the mark attachment class of glyph g, or 0.
func (t *GDefTable) MarkAttachClassOf(g GlyphIndex) int {
	if t == nil {
		return 0
	}
	if cd, ok := t.MarkAttachClassDef.Unwrap(); ok {
		return GlyphClass(cd, g)
	}
	return 0
}

// AttachPointsOf returns the attachment point indices for glyph g, or nil.
func (t *GDefTable) AttachPointsOf(g GlyphIndex) []uint16 {
	if t == nil {
		return nil
	}
	al, ok := t.AttachList.Unwrap()
	if !ok || al == nil {
		return nil
	}
	if i := CoverageIndex(al.Coverage, g); i >= 0 && i < len(al.AttachPoints) {
		return al.AttachPoints[i]
	}
	return nil
}

// LigatureCaretsOf returns the caret positions of ligature glyph g, or nil.
func (t *GDefTable) LigatureCaretsOf(g GlyphIndex) []CaretValue {
	if t == nil {
		return nil
	}
	lc, ok := t.LigCaretList.Unwrap()
	if !ok || lc == nil {
		return nil
	}
	if i := CoverageIndex(lc.Coverage, g); i >= 0 && i < len(lc.LigGlyphs) {
		return lc.LigGlyphs[i]
	}
	return nil
}

// InMarkGlyphSet reports whether glyph g is a member of mark glyph set #set.
func (t *GDefTable) InMarkGlyphSet(set int, g GlyphIndex) bool {
	if t == nil {
		return false
	}
	sets, ok := t.MarkGlyphSets.Unwrap()
	if !ok || set < 0 || set >= len(sets) || sets[set] == nil {
		return false
	}
	return Covers(sets[set], g)
}

// checkConsistency reports list lengths exceeding their coverage.
func (t *GDefTable) checkConsistency(ec *errorCollector) {
	if al, ok := t.AttachList.Unwrap(); ok && al != nil {
		if len(al.AttachPoints) > CoverageLen(al.Coverage) {
			ec.addWarning(t.name, fmt.Sprintf("AttachList has %d entries for %d covered glyphs",
				len(al.AttachPoints), CoverageLen(al.Coverage)), t.offset)
		}
	}
	if lc, ok := t.LigCaretList.Unwrap(); ok && lc != nil {
		if len(lc.LigGlyphs) > CoverageLen(lc.Coverage) {
			ec.addWarning(t.name, fmt.Sprintf("LigCaretList has %d entries for %d covered glyphs",
				len(lc.LigGlyphs), CoverageLen(lc.Coverage)), t.offset)
		}
	}
}
