package ot

import "encoding/binary"

// Helpers to assemble binary font structures for tests.

// be encodes values as a sequence of big-endian uint16s.
func be(vals ...int) []byte {
	b := make([]byte, 2*len(vals))
	for i, v := range vals {
		binary.BigEndian.PutUint16(b[2*i:], uint16(v))
	}
	return b
}

// be32 encodes values as a sequence of big-endian uint32s.
func be32(vals ...uint32) []byte {
	b := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.BigEndian.PutUint32(b[4*i:], v)
	}
	return b
}

func tagBytes(t string) []byte {
	return be32(uint32(T(t)))
}

func cat(parts ...[]byte) []byte {
	var b []byte
	for _, p := range parts {
		b = append(b, p...)
	}
	return b
}

// buildGDef assembles a GDEF 1.2 table with all sub-tables present:
//
//	glyph classes:   10–12 base, 20 ligature, 30–31 mark
//	attach points:   glyph 10 → [3 7]
//	ligature carets: glyph 20 → coordinate 500, point 4, coordinate -20 (format 3)
//	mark attach:     30 → 1, 31 → 2
//	mark glyph sets: set 0 = {30, 31}
func buildGDef() []byte {
	classDef := be(2, 3, 10, 12, 1, 20, 20, 2, 30, 31, 3)
	attachList := cat(be(6, 1, 12), be(1, 1, 10), be(2, 3, 7))
	ligCarets := cat(be(6, 1, 12), be(1, 1, 20), be(3, 8, 12, 16),
		be(1, 500), be(2, 4), be(3, 0xFFEC, 0))
	markAttach := be(1, 30, 2, 1, 2)
	markSets := cat(be(1, 1), be32(8), be(1, 2, 30, 31))
	off1 := 14
	off2 := off1 + len(classDef)
	off3 := off2 + len(attachList)
	off4 := off3 + len(ligCarets)
	off5 := off4 + len(markAttach)
	return cat(be(1, 2, off1, off2, off3, off4, off5),
		classDef, attachList, ligCarets, markAttach, markSets)
}

// buildGSub assembles the common part of a layout table:
//
//	scripts:  DFLT (default LangSys → [0]), latn (no default, DEU → [0 1])
//	features: kern → [0], liga → [0 1]
//	lookups:  #0 type 4, IGNORE_MARKS, one subtable; #1 type 1, mark filtering set 3
func buildGSub() []byte {
	scriptDFLT := cat(be(4, 0), be(0, 0xFFFF, 1, 0))
	scriptLatn := cat(be(0, 1), tagBytes("DEU "), be(10), be(0, 0xFFFF, 2, 0, 1))
	scriptList := cat(be(2),
		tagBytes("DFLT"), be(14),
		tagBytes("latn"), be(14+len(scriptDFLT)),
		scriptDFLT, scriptLatn)
	featureList := cat(be(2),
		tagBytes("kern"), be(14),
		tagBytes("liga"), be(20),
		be(0, 1, 0), be(0, 2, 0, 1))
	lookupList := cat(be(2, 6, 16),
		be(4, 0x0008, 1, 8), be(0xABCD),
		be(1, 0x0010, 0, 3))
	off1 := 10
	off2 := off1 + len(scriptList)
	off3 := off2 + len(featureList)
	return cat(be(1, 0, off1, off2, off3), scriptList, featureList, lookupList)
}

type testTable struct {
	tag  string
	data []byte
}

// buildFont assembles an sfnt container with the given tables, which have to
// be sorted by tag.
func buildFont(fontType uint32, tables ...testTable) []byte {
	dir := cat(be32(fontType), be(len(tables), 0, 0, 0))
	offset := 12 + 16*len(tables)
	var data []byte
	for _, t := range tables {
		dir = cat(dir, tagBytes(t.tag), be32(0, uint32(offset+len(data)), uint32(len(t.data))))
		data = append(data, t.data...)
	}
	return cat(dir, data)
}
