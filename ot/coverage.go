package ot

import "fmt"

// --- Coverage table module -------------------------------------------------

// Coverage denotes an indexed set of glyphs.
// Each LookupSubtable (except an Extension LookupType subtable) in a lookup references
// a Coverage table (Coverage), which specifies all the glyphs affected by a
// substitution or positioning operation described in the subtable.
// The GSUB, GPOS, and GDEF tables rely on this notion of coverage. If a glyph does
// not appear in a Coverage table, the client can skip that subtable and move
// immediately to the next subtable.
//
// A Coverage is either a *CoverageFormat1 or a *CoverageFormat2.
type Coverage interface {
	coverageFormat() uint16
}

// CoverageFormat1 is a coverage table listing glyph IDs in ascending order.
// The Coverage Index of a glyph is its position in the list.
type CoverageFormat1 struct {
	Glyphs []GlyphIndex
}

// CoverageFormat2 is a coverage table consisting of glyph ranges, ordered by
// start glyph ID and non-overlapping.
type CoverageFormat2 struct {
	Ranges []CoverageRange
}

// CoverageRange covers glyphs Start…End (inclusive). StartIndex is the
// Coverage Index of Start; the following glyphs of the range get consecutive
// indices.
type CoverageRange struct {
	Start      GlyphIndex
	End        GlyphIndex
	StartIndex uint16
}

func (*CoverageFormat1) coverageFormat() uint16 { return 1 }
func (*CoverageFormat2) coverageFormat() uint16 { return 2 }

func (r CoverageRange) span() (GlyphIndex, GlyphIndex) { return r.Start, r.End }

// CoverageIndex returns the Coverage Index for glyph g, or -1 if g is
// not covered.
func CoverageIndex(cov Coverage, g GlyphIndex) int {
	switch c := cov.(type) {
	case *CoverageFormat1:
		if i := BinSearch(c.Glyphs, g); i >= 0 {
			return i
		}
	case *CoverageFormat2:
		if r, ok := searchRange(c.Ranges, g); ok {
			return int(r.StartIndex) + int(g-r.Start)
		}
	}
	return -1
}

// Covers reports whether glyph g is contained in cov.
func Covers(cov Coverage, g GlyphIndex) bool {
	return CoverageIndex(cov, g) >= 0
}

// ExpandCoverage returns all glyphs covered by cov, in ascending order.
// For format 1 the stored glyph list itself is returned; clients must not
// modify it.
func ExpandCoverage(cov Coverage) []GlyphIndex {
	switch c := cov.(type) {
	case *CoverageFormat1:
		return c.Glyphs
	case *CoverageFormat2:
		glyphs := make([]GlyphIndex, 0, CoverageLen(cov))
		for _, r := range c.Ranges {
			for g := int(r.Start); g <= int(r.End); g++ {
				glyphs = append(glyphs, GlyphIndex(g))
			}
		}
		return glyphs
	}
	return nil
}

// CoverageLen returns the number of glyphs covered by cov.
func CoverageLen(cov Coverage) int {
	switch c := cov.(type) {
	case *CoverageFormat1:
		return len(c.Glyphs)
	case *CoverageFormat2:
		n := 0
		for _, r := range c.Ranges {
			if r.End >= r.Start {
				n += int(r.End-r.Start) + 1
			}
		}
		return n
	}
	return 0
}

// ParseCoverage decodes a coverage table, which comes in two formats (1 and 2),
// at the current position of d.
//
//	uint16  coverageFormat
//	uint16  glyphCount                 (format 1)
//	uint16  glyphArray[glyphCount]
//	uint16  rangeCount                 (format 2)
//	RangeRecord rangeRecords[rangeCount]
func ParseCoverage(d *Decoder) (Coverage, error) {
	at := d.Pos()
	format, err := d.ReadUint16()
	if err != nil {
		return nil, err
	}
	switch format {
	case 1:
		glyphs, err := ReadList(d, (*Decoder).ReadGlyph)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("coverage format 1 with %d glyphs", len(glyphs))
		return &CoverageFormat1{Glyphs: glyphs}, nil
	case 2:
		ranges, err := ReadList(d, readCoverageRange)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("coverage format 2 with %d ranges", len(ranges))
		return &CoverageFormat2{Ranges: ranges}, nil
	}
	return nil, errFormat(d.table, "Coverage", at, fmt.Sprintf("unknown coverage format %d", format))
}

func readCoverageRange(d *Decoder) (r CoverageRange, err error) {
	if r.Start, err = d.ReadGlyph(); err != nil {
		return
	}
	if r.End, err = d.ReadGlyph(); err != nil {
		return
	}
	r.StartIndex, err = d.ReadUint16()
	return
}
