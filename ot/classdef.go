package ot

import "fmt"

// --- Class definition tables -----------------------------------------------

// ClassDef groups glyphs into classes, denoted as integer values.
//
// From the OpenType specification:
// For efficiency and ease of representation, a font developer can group glyph indices
// to form glyph classes. Class assignments vary in meaning from one lookup subtable
// to another. For example, in the GSUB and GPOS tables, classes are used to describe
// glyph contexts. GDEF tables also use the idea of glyph classes.
// (see https://docs.microsoft.com/en-us/typography/opentype/spec/chapter2#class-definition-table)
//
// Glyphs not assigned to a class fall into class 0.
// A ClassDef is either a *ClassDefFormat1 or a *ClassDefFormat2.
type ClassDef interface {
	classDefFormat() uint16
}

// ClassDefFormat1 assigns classes to a consecutive run of glyph IDs, starting
// at StartGlyph, one class value per glyph.
type ClassDefFormat1 struct {
	StartGlyph GlyphIndex
	Classes    []uint16
}

// ClassDefFormat2 assigns classes to ranges of glyph IDs. Ranges are sorted
// by start glyph ID and do not overlap.
type ClassDefFormat2 struct {
	Ranges []ClassRange
}

// ClassRange assigns Class to the glyphs Start…End (inclusive).
type ClassRange struct {
	Start GlyphIndex
	End   GlyphIndex
	Class uint16
}

func (*ClassDefFormat1) classDefFormat() uint16 { return 1 }
func (*ClassDefFormat2) classDefFormat() uint16 { return 2 }

func (r ClassRange) span() (GlyphIndex, GlyphIndex) { return r.Start, r.End }

// GlyphClass returns the class defined for glyph g, or 0 (= default class).
func GlyphClass(cd ClassDef, g GlyphIndex) int {
	switch c := cd.(type) {
	case *ClassDefFormat1:
		if g < c.StartGlyph || int(g-c.StartGlyph) >= len(c.Classes) {
			return 0
		}
		return int(c.Classes[g-c.StartGlyph])
	case *ClassDefFormat2:
		if r, ok := searchRange(c.Ranges, g); ok {
			return int(r.Class)
		}
	}
	return 0
}

// ParseClassDef decodes a class definition table at the current position of d.
// The ClassDef table can have either of two formats: one that assigns a range of
// consecutive glyph indices to different classes, or one that puts groups of consecutive
// glyph indices into the same class.
//
//	uint16  classFormat
//	uint16  startGlyphID               (format 1)
//	uint16  glyphCount
//	uint16  classValueArray[glyphCount]
//	uint16  classRangeCount            (format 2)
//	ClassRangeRecord classRangeRecords[classRangeCount]
func ParseClassDef(d *Decoder) (ClassDef, error) {
	at := d.Pos()
	format, err := d.ReadUint16()
	if err != nil {
		return nil, err
	}
	switch format {
	case 1:
		start, err := d.ReadGlyph()
		if err != nil {
			return nil, err
		}
		classes, err := ReadList(d, readUint16s)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("ClassDef format 1 starting at glyph %d, %d entries", start, len(classes))
		return &ClassDefFormat1{StartGlyph: start, Classes: classes}, nil
	case 2:
		ranges, err := ReadList(d, readClassRange)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("ClassDef format 2 with %d ranges", len(ranges))
		return &ClassDefFormat2{Ranges: ranges}, nil
	}
	return nil, errFormat(d.table, "ClassDef", at, fmt.Sprintf("unknown ClassDef format %d", format))
}

func readClassRange(d *Decoder) (r ClassRange, err error) {
	if r.Start, err = d.ReadGlyph(); err != nil {
		return
	}
	if r.End, err = d.ReadGlyph(); err != nil {
		return
	}
	r.Class, err = d.ReadUint16()
	return
}
