package ot

/*
From https://docs.microsoft.com/en-us/typography/opentype/spec/chapter2:

OpenType Layout consists of five tables: the Glyph Substitution table (GSUB),
the Glyph Positioning table (GPOS), the Baseline table (BASE),
the Justification table (JSTF), and the Glyph Definition table (GDEF).
These tables use some of the same data formats.
*/

import (
	"fmt"
)

// --- Layout tables ---------------------------------------------------------

// LayoutTable is the part of the layout tables GSUB and GPOS which both
// share: a graph of scripts, language systems, features and lookups.
//
// Scripts is sorted by script tag, as is every list of language system records.
// Features and Lookups are arenas: language systems reference features by their
// index into Features, features reference lookups by their index into Lookups.
// Features therefore may only grow at their end, and appending has to keep them
// sorted by tag (see AppendFeature).
type LayoutTable struct {
	tableBase
	Version  Version
	Scripts  []ScriptRecord
	Features []FeatureRecord
	Lookups  []*LookupTable
	// FeatureVariationsOffset is the raw offset to a FeatureVariations table (version 1.1).
	// Feature variations are not decoded.
	FeatureVariationsOffset uint32
	Requirements            LayoutRequirements
}

// NewLayoutTable creates an empty layout table, i.e. one without scripts,
// features and lookups. tag should be either GSUB or GPOS.
func NewLayoutTable(tag Tag) *LayoutTable {
	return &LayoutTable{
		tableBase: tableBase{name: tag},
		Version:   Version{Major: 1, Minor: 0},
		Scripts:   []ScriptRecord{},
		Features:  []FeatureRecord{},
		Lookups:   []*LookupTable{},
	}
}

// ScriptRecord links a script tag to a script table.
type ScriptRecord struct {
	Tag    Tag
	Script *Script
}

// RecordTag returns the script tag, for SearchTag.
func (r ScriptRecord) RecordTag() Tag { return r.Tag }

// Script is a script table. It holds the default language system of a script
// (which may be nil for a decoded table) and language system records sorted
// by language tag.
type Script struct {
	DefaultLangSys *LangSys
	LangSysRecords []LangSysRecord
}

// LangSysRecord links a language system tag to a language system table.
type LangSysRecord struct {
	Tag     Tag
	LangSys *LangSys
}

// RecordTag returns the language system tag, for SearchTag.
func (r LangSysRecord) RecordTag() Tag { return r.Tag }

// NoRequiredFeature is the value of RequiredFeatureIndex for language systems
// without a required feature.
const NoRequiredFeature = 0xFFFF

// LangSys is a language system table. FeatureIndexes are indices into the
// feature list of the layout table, in arbitrary order.
type LangSys struct {
	LookupOrder          uint16 // reserved, always 0
	RequiredFeatureIndex uint16 // NoRequiredFeature if none
	FeatureIndexes       []uint16
}

// NewLangSys creates a language system without features.
func NewLangSys() *LangSys {
	return &LangSys{RequiredFeatureIndex: NoRequiredFeature, FeatureIndexes: []uint16{}}
}

// NewScript creates a script with an empty default language system and
// without language system records.
func NewScript() *Script {
	return &Script{DefaultLangSys: NewLangSys(), LangSysRecords: []LangSysRecord{}}
}

// FeatureRecord links a feature tag to a feature table.
type FeatureRecord struct {
	Tag     Tag
	Feature *Feature
}

// RecordTag returns the feature tag, for SearchTag.
func (r FeatureRecord) RecordTag() Tag { return r.Tag }

// Feature is a feature table. LookupListIndexes are indices into the lookup
// list of the layout table, in arbitrary order.
type Feature struct {
	FeatureParams     uint16 // raw offset to feature parameters, 0 if none
	LookupListIndexes []uint16
}

// LookupTable is a lookup of a layout table. Subtables are raw views into the
// font data, starting at the respective subtable; their interpretation depends on
// the lookup type and on whether the lookup is part of GSUB or GPOS.
type LookupTable struct {
	LookupType       LayoutTableLookupType
	LookupFlag       LayoutTableLookupFlag
	Subtables        [][]byte
	MarkFilteringSet uint16 // only valid if LOOKUP_FLAG_USE_MARK_FILTERING_SET is set
}

// AppendFeature appends a new, empty feature with the given tag to the feature
// list and returns its index.
//
// Features are referenced by index from language systems. Inserting a feature
// anywhere but at the end would invalidate these references; appending a
// feature with a tag smaller than the tag of the last feature would break the
// sort order of the list. The latter is rejected with ErrFeatureOrder.
func (t *LayoutTable) AppendFeature(tag Tag) (int, error) {
	if n := len(t.Features); n > 0 && tag < t.Features[n-1].Tag {
		return -1, fmt.Errorf("cannot append feature '%s' after '%s': %w",
			tag, t.Features[n-1].Tag, ErrFeatureOrder)
	}
	t.Features = append(t.Features, FeatureRecord{
		Tag:     tag,
		Feature: &Feature{LookupListIndexes: []uint16{}},
	})
	return len(t.Features) - 1, nil
}

// AppendLookup appends a new lookup without subtables and returns its index.
func (t *LayoutTable) AppendLookup(lookupType LayoutTableLookupType) int {
	t.Lookups = append(t.Lookups, &LookupTable{LookupType: lookupType})
	return len(t.Lookups) - 1
}

// LayoutRequirements collects GDEF subtable requirements implied by lookup flags.
// Requirements are aggregated while decoding the lookup list of GSUB and GPOS.
type LayoutRequirements struct {
	NeedGlyphClassDef      bool
	NeedMarkAttachClassDef bool
	NeedMarkGlyphSets      bool
}

// AddFromLookupFlag updates requirements based on a lookup's flag bits.
func (r *LayoutRequirements) AddFromLookupFlag(flag LayoutTableLookupFlag) {
	if flag&(LOOKUP_FLAG_IGNORE_BASE_GLYPHS|LOOKUP_FLAG_IGNORE_LIGATURES|LOOKUP_FLAG_IGNORE_MARKS) != 0 {
		r.NeedGlyphClassDef = true
	}
	if flag&LOOKUP_FLAG_USE_MARK_FILTERING_SET != 0 {
		r.NeedMarkGlyphSets = true
	}
	if flag&LOOKUP_FLAG_MARK_ATTACHMENT_TYPE_MASK != 0 {
		r.NeedMarkAttachClassDef = true
	}
}

// Merge combines requirements from another layout table.
func (r *LayoutRequirements) Merge(other LayoutRequirements) {
	r.NeedGlyphClassDef = r.NeedGlyphClassDef || other.NeedGlyphClassDef
	r.NeedMarkAttachClassDef = r.NeedMarkAttachClassDef || other.NeedMarkAttachClassDef
	r.NeedMarkGlyphSets = r.NeedMarkGlyphSets || other.NeedMarkGlyphSets
}

// LayoutTableLookupFlag is a flag type for layout tables (GPOS and GSUB).
type LayoutTableLookupFlag uint16

// Lookup flags of layout tables (GPOS and GSUB)
const ( // LookupFlag bit enumeration
	// Note that the RIGHT_TO_LEFT flag is used only for GPOS type 3 lookups and is ignored
	// otherwise. It is not used by client software in determining text direction.
	LOOKUP_FLAG_RIGHT_TO_LEFT             LayoutTableLookupFlag = 0x0001
	LOOKUP_FLAG_IGNORE_BASE_GLYPHS        LayoutTableLookupFlag = 0x0002 // If set, skips over base glyphs
	LOOKUP_FLAG_IGNORE_LIGATURES          LayoutTableLookupFlag = 0x0004 // If set, skips over ligatures
	LOOKUP_FLAG_IGNORE_MARKS              LayoutTableLookupFlag = 0x0008 // If set, skips over all combining marks
	LOOKUP_FLAG_USE_MARK_FILTERING_SET    LayoutTableLookupFlag = 0x0010 // If set, indicates that the lookup table structure is followed by a MarkFilteringSet field.
	LOOKUP_FLAG_reserved                  LayoutTableLookupFlag = 0x00E0 // For future use (Set to zero)
	LOOKUP_FLAG_MARK_ATTACHMENT_TYPE_MASK LayoutTableLookupFlag = 0xFF00 // If not zero, skips over all marks of attachment type different from specified.
)

// LayoutTableLookupType is a type identifier for layout lookup records (GPOS and GSUB).
// Enum values are different for GPOS and GSUB.
type LayoutTableLookupType uint16

// --- Decoding --------------------------------------------------------------

// ParseLayout decodes the common part of a GSUB or GPOS table from b, starting
// at offset. tag is the name of the table.
//
// Header versions 1.0 and 1.1 are supported:
//
//	uint16    majorVersion, minorVersion
//	Offset16  scriptListOffset
//	Offset16  featureListOffset
//	Offset16  lookupListOffset
//	Offset32  featureVariationsOffset  (version 1.1)
func ParseLayout(tag Tag, b []byte, offset int) (*LayoutTable, error) {
	d := NewDecoder(b, offset).forTable(tag)
	lytt := NewLayoutTable(tag)
	lytt.offset = uint32(offset)
	var err error
	if lytt.Version, err = d.ReadVersion16Dot16(1); err != nil {
		return nil, errStructure(tag, "Header", offset, err)
	}
	if v := lytt.Version; v.Major != 1 || v.Minor > 1 {
		return nil, errFormat(tag, "Header", offset, fmt.Sprintf("unsupported layout version %s", v))
	}
	scripts, err := ReadPointer(d, func(d *Decoder) ([]ScriptRecord, error) {
		return ReadList(d, readScriptRecord)
	})
	if err != nil {
		return nil, errStructure(tag, "ScriptList", d.Pos(), err)
	}
	features, err := ReadPointer(d, func(d *Decoder) ([]FeatureRecord, error) {
		return ReadList(d, readFeatureRecord)
	})
	if err != nil {
		return nil, errStructure(tag, "FeatureList", d.Pos(), err)
	}
	lookups, err := ReadPointer(d, func(d *Decoder) ([]*LookupTable, error) {
		return ReadList(d, readNullable(parseLookup))
	})
	if err != nil {
		return nil, errStructure(tag, "LookupList", d.Pos(), err)
	}
	if lytt.Version.AtLeast(1, 1) {
		if lytt.FeatureVariationsOffset, err = d.ReadUint32(); err != nil {
			return nil, errStructure(tag, "Header", d.Pos(), err)
		}
	}
	lytt.Scripts = scripts.Or(lytt.Scripts)
	lytt.Features = features.Or(lytt.Features)
	lytt.Lookups = lookups.Or(lytt.Lookups)
	for _, lookup := range lytt.Lookups {
		if lookup != nil {
			lytt.Requirements.AddFromLookupFlag(lookup.LookupFlag)
		}
	}
	lytt.length = uint32(d.Pos() - offset)
	tracer().Debugf("%s has %d scripts, %d features, %d lookups", tag,
		len(lytt.Scripts), len(lytt.Features), len(lytt.Lookups))
	return lytt, nil
}

// A ScriptList table consists of a count of the scripts represented by the glyphs in the
// font (ScriptCount) and an array of records (ScriptRecord), one for each script for which
// the font defines script-specific features. The ScriptRecord array is stored in
// alphabetic order of the script tags.
func readScriptRecord(d *Decoder) (ScriptRecord, error) {
	tag, err := d.ReadTag()
	if err != nil {
		return ScriptRecord{}, err
	}
	script, err := ReadPointer(d, parseScript)
	if err != nil {
		return ScriptRecord{}, err
	}
	return ScriptRecord{Tag: tag, Script: script.Or(&Script{})}, nil
}

func parseScript(d *Decoder) (*Script, error) {
	dflt, err := ReadPointer(d, parseLangSys)
	if err != nil {
		return nil, err
	}
	records, err := ReadList(d, func(d *Decoder) (LangSysRecord, error) {
		tag, err := d.ReadTag()
		if err != nil {
			return LangSysRecord{}, err
		}
		lsys, err := ReadPointer(d, parseLangSys)
		if err != nil {
			return LangSysRecord{}, err
		}
		return LangSysRecord{Tag: tag, LangSys: lsys.Or(NewLangSys())}, nil
	})
	if err != nil {
		return nil, err
	}
	return &Script{DefaultLangSys: dflt.Or(nil), LangSysRecords: records}, nil
}

// uint16  lookupOrderOffset                  = NULL (reserved for an offset to a reordering table)
// uint16  requiredFeatureIndex               Index of a feature required for this language system
// uint16  featureIndexCount                  Number of feature index values for this language system
// uint16  featureIndices[featureIndexCount]  Array of indices into the FeatureList, in arbitrary order
func parseLangSys(d *Decoder) (*LangSys, error) {
	lsys := &LangSys{}
	var err error
	if lsys.LookupOrder, err = d.ReadUint16(); err != nil {
		return nil, err
	}
	if lsys.RequiredFeatureIndex, err = d.ReadUint16(); err != nil {
		return nil, err
	}
	if lsys.FeatureIndexes, err = ReadList(d, readUint16s); err != nil {
		return nil, err
	}
	return lsys, nil
}

// The FeatureList table enumerates features in an array of records (FeatureRecord) and
// specifies the total number of features (FeatureCount). Every feature must have a
// FeatureRecord, which consists of a FeatureTag that identifies the feature and an offset
// to a Feature table. The FeatureRecord array is arranged alphabetically
// by FeatureTag names.
func readFeatureRecord(d *Decoder) (FeatureRecord, error) {
	tag, err := d.ReadTag()
	if err != nil {
		return FeatureRecord{}, err
	}
	feature, err := ReadPointer(d, func(d *Decoder) (*Feature, error) {
		f := &Feature{}
		var err error
		if f.FeatureParams, err = d.ReadUint16(); err != nil {
			return nil, err
		}
		if f.LookupListIndexes, err = ReadList(d, readUint16s); err != nil {
			return nil, err
		}
		return f, nil
	})
	if err != nil {
		return FeatureRecord{}, err
	}
	return FeatureRecord{Tag: tag, Feature: feature.Or(&Feature{})}, nil
}

// parseLookup decodes a lookup table.
// See https://www.microsoft.com/typography/otspec/chapter2.htm#lulTbl
//
//	uint16    lookupType
//	uint16    lookupFlag
//	uint16    subTableCount
//	Offset16  subtableOffsets[subTableCount]  from beginning of Lookup table
//	uint16    markFilteringSet                if USE_MARK_FILTERING_SET is set
func parseLookup(d *Decoder) (*LookupTable, error) {
	lookup := &LookupTable{}
	ltype, err := d.ReadUint16()
	if err != nil {
		return nil, err
	}
	flag, err := d.ReadUint16()
	if err != nil {
		return nil, err
	}
	lookup.LookupType = LayoutTableLookupType(ltype)
	lookup.LookupFlag = LayoutTableLookupFlag(flag)
	lookup.Subtables, err = ReadList(d, readNullable(func(d *Decoder) ([]byte, error) {
		return d.Bytes(d.Pos()), nil
	}))
	if err != nil {
		return nil, err
	}
	if lookup.LookupFlag&LOOKUP_FLAG_USE_MARK_FILTERING_SET != 0 {
		if lookup.MarkFilteringSet, err = d.ReadUint16(); err != nil {
			return nil, err
		}
	}
	return lookup, nil
}
