package ot

import (
	"slices"
)

// Font represents the advanced typography tables of an OpenType font.
//
// A Font exclusively owns its tables. Layout tables may be edited in place
// (see package otlayout); there is no locking, so edits have to be
// serialized by the client. Concurrent read-only access is safe.
type Font struct {
	Header *FontHeader
	tables map[Tag]Table
	ec     errorCollector
}

// FontHeader is the start of the table directory of a font.
//
// OpenType fonts that contain TrueType outlines should use the value of 0x00010000
// for the FontType. OpenType fonts containing CFF data (version 1 or 2) should
// use 0x4F54544F ('OTTO', when re-interpreted as a Tag).
type FontHeader struct {
	FontType   uint32
	TableCount uint16
}

// NewFont creates a font without any tables.
func NewFont() *Font {
	return &Font{tables: make(map[Tag]Table)}
}

// Table returns the font table for a given tag. If a table for a tag cannot
// be found in the font, nil is returned.
//
// Tables GDEF, GSUB and GPOS are decoded; every other table is
// returned as a *RawTable.
func (otf *Font) Table(tag Tag) Table {
	if otf == nil {
		return nil
	}
	if t, ok := otf.tables[tag]; ok {
		return t
	}
	return nil
}

// SetTable installs a table, replacing any table with the same tag.
func (otf *Font) SetTable(t Table) {
	if otf.tables == nil {
		otf.tables = make(map[Tag]Table)
	}
	otf.tables[t.NameTag()] = t
}

// TableTags returns a sorted list of tags, one for each table contained in the font.
func (otf *Font) TableTags() []Tag {
	var tags = make([]Tag, 0, len(otf.tables))
	for tag := range otf.tables {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// GDef returns the GDEF table of the font, or nil.
func (otf *Font) GDef() *GDefTable {
	if g, ok := otf.Table(T("GDEF")).(*GDefTable); ok {
		return g
	}
	return nil
}

// Layout returns the layout table (GSUB or GPOS) for tag, or nil.
func (otf *Font) Layout(tag Tag) *LayoutTable {
	if l, ok := otf.Table(tag).(*LayoutTable); ok {
		return l
	}
	return nil
}

// Warnings returns all warnings encountered during font decoding.
// Warnings indicate potential issues that are generally safe to ignore.
func (otf *Font) Warnings() []FontWarning {
	if otf.ec.warnings == nil {
		return []FontWarning{}
	}
	return otf.ec.warnings
}

// GlyphIndex is a glyph index in a font.
type GlyphIndex uint16

// --- Tag -------------------------------------------------------------------

// Tag is defined by the OpenType specification as:
// Array of four uint8s (length = 32 bits) used to identify a table, design-variation axis,
// script, language system, feature, or baseline.
//
// As tags are stored big-endian, comparing Tags numerically is the same as
// comparing their strings.
type Tag uint32

// Frequently used tags.
var (
	DFLT            = T("DFLT") // default script
	DefaultLanguage = T("dflt") // default language system
	Latn            = T("latn") // script tag for Latin
)

// MakeTag creates a Tag from 4 bytes, e.g.,
// If b is shorter or longer, it will be silently extended or cut as appropriate
//
//	MakeTag([]byte("cmap"))
func MakeTag(b []byte) Tag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return Tag(u32(b))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended (with spaces) or cut.
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(u32([]byte(t)))
}

func (t Tag) String() string {
	bytes := []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
	return string(bytes)
}

// --- Table -----------------------------------------------------------------

// Table represents one of the OpenType font tables.
//
// Concrete types are *GDefTable, *LayoutTable (GSUB and GPOS) and *RawTable
// for all tables not decoded by this package.
type Table interface {
	NameTag() Tag // 4-letter name of the table
}

// tableBase is a common parent for all kinds of OpenType tables.
type tableBase struct {
	name   Tag    // 4-byte name as an integer
	offset uint32 // from offset
	length uint32 // to offset + length
}

// NameTag returns the 4-letter name of a table.
func (tb *tableBase) NameTag() Tag {
	return tb.name
}

// Extent returns offset and byte size of this table within the font data.
// Tables which have been created in memory have an extent of (0, 0).
func (tb *tableBase) Extent() (uint32, uint32) {
	return tb.offset, tb.length
}

// RawTable is a table which is not decoded by this package.
type RawTable struct {
	tableBase
	data binarySegm
}

// NewRawTable wraps data as an uninterpreted table.
func NewRawTable(tag Tag, data []byte) *RawTable {
	return &RawTable{
		tableBase: tableBase{name: tag, length: uint32(len(data))},
		data:      data,
	}
}

// Binary returns the bytes of this table. Should be treated as read-only by
// clients, as it is a view into the original font data.
func (t *RawTable) Binary() []byte {
	return t.data
}
