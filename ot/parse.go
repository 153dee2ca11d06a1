package ot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Code comment often will cite passage from the
// OpenType specification version 1.8.4;
// see https://docs.microsoft.com/en-us/typography/opentype/spec/.

// Parse decodes the advanced typography tables of an OpenType font.
//
// Parse reads the table directory of the font and decodes tables GDEF, GSUB
// and GPOS. All other tables are kept as raw tables. A Font needs ongoing
// access to the font's byte data after Parse returns; the data is assumed to
// be immutable while the Font remains in use.
//
// Decoding is fail-fast: the first structural error aborts Parse, returning
// a FontError.
func Parse(font []byte) (*Font, error) {
	// https://www.microsoft.com/typography/otspec/otff.htm: Offset Table is 12 bytes.
	r := bytes.NewReader(font)
	h := FontHeader{}
	if err := binary.Read(r, binary.BigEndian, &h); err != nil {
		return nil, errStructure(0, "Header", 0, err)
	}
	tracer().Debugf("header = %v, tag = %x|%s", h, h.FontType, Tag(h.FontType).String())
	otf := NewFont()
	otf.Header = &h
	if !(h.FontType == 0x4f54544f || // OTTO
		h.FontType == 0x00010000 || // TrueType
		h.FontType == 0x74727565) { // true
		return nil, errFormat(0, "Header", 0, fmt.Sprintf("font type not supported: %x", h.FontType))
	}
	src := binarySegm(font)
	// "The Offset Table is followed immediately by the Table Record entries …
	// sorted in ascending order by tag", 16 bytes each.
	buf, err := src.view(12, 16*int(h.TableCount))
	if err != nil {
		return nil, errStructure(0, "TableRecords", 12, err)
	}
	for b, prevTag := buf, Tag(0); len(b) > 0; b = b[16:] {
		tag := MakeTag(b)
		if tag < prevTag {
			otf.ec.addWarning(tag, "table records not sorted by tag", 12)
		}
		prevTag = tag
		off, size := u32(b[8:12]), u32(b[12:16])
		if uint64(off)+uint64(size) > uint64(len(src)) || off > math.MaxInt32 {
			return nil, errStructure(tag, "Bounds", int(off),
				fmt.Errorf("table bounds [%d:%d] exceed font size %d: %w", off, uint64(off)+uint64(size),
					len(src), errBufferBounds))
		}
		t, err := parseTable(tag, src, off, size)
		if err != nil {
			tracer().Errorf("error decoding table %s: %v", tag, err)
			return nil, err
		}
		otf.tables[tag] = t
	}
	validateLayoutRequirements(otf)
	return otf, nil
}

// parseTable dispatches decoding of a table. GDEF, GSUB and GPOS are decoded
// from the complete font data, starting at the table's offset.
func parseTable(tag Tag, src binarySegm, offset, size uint32) (Table, error) {
	switch tag {
	case T("GDEF"):
		gdef, err := ParseGDef(src, int(offset))
		if err != nil {
			return nil, err
		}
		gdef.length = size
		return gdef, nil
	case T("GSUB"), T("GPOS"):
		lytt, err := ParseLayout(tag, src, int(offset))
		if err != nil {
			return nil, err
		}
		lytt.length = size
		return lytt, nil
	}
	tracer().Debugf("font contains table (%s), will not be interpreted", tag)
	return &RawTable{
		tableBase: tableBase{name: tag, offset: offset, length: size},
		data:      src[offset : offset+size],
	}, nil
}

// validateLayoutRequirements checks if GDEF provides the sub-tables the lookups
// of GSUB and GPOS depend on. Missing sub-tables are reported as warnings.
func validateLayoutRequirements(otf *Font) {
	var req LayoutRequirements
	for _, tag := range []Tag{T("GSUB"), T("GPOS")} {
		if lytt := otf.Layout(tag); lytt != nil {
			req.Merge(lytt.Requirements)
			for i, s := range lytt.Scripts {
				if i > 0 && s.Tag < lytt.Scripts[i-1].Tag {
					otf.ec.addWarning(tag, "script records not sorted by tag", lytt.offset)
					break
				}
			}
		}
	}
	gdef := otf.GDef()
	if gdef == nil {
		if req != (LayoutRequirements{}) {
			otf.ec.addWarning(T("GDEF"), "lookup flags require a GDEF table, but font has none", 0)
		}
		return
	}
	gdef.checkConsistency(&otf.ec)
	if req.NeedGlyphClassDef && gdef.GlyphClassDef.IsNone() {
		otf.ec.addWarning(T("GDEF"), "lookup flags require GlyphClassDef, which is missing", gdef.offset)
	}
	if req.NeedMarkAttachClassDef && gdef.MarkAttachClassDef.IsNone() {
		otf.ec.addWarning(T("GDEF"), "lookup flags require MarkAttachClassDef, which is missing", gdef.offset)
	}
	if req.NeedMarkGlyphSets && gdef.MarkGlyphSets.IsNone() {
		otf.ec.addWarning(T("GDEF"), "lookup flags require MarkGlyphSetsDef, which is missing", gdef.offset)
	}
}
