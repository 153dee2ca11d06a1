package otquery

import (
	"encoding/binary"
	"testing"

	"github.com/npillmayer/otlayoutcore/ot"
	"github.com/npillmayer/otlayoutcore/otlayout"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/sfnt"
)

// --- Test Suite Preparation ------------------------------------------------

type QueryTestEnviron struct {
	suite.Suite
	otf *ot.Font
}

// listen for 'go test' command --> run test methods
func TestQueryFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	suite.Run(t, new(QueryTestEnviron))
}

// run once, before test suite methods
func (env *QueryTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("tyse.fonts").SetTraceLevel(tracing.LevelError)
	env.otf = makeTestFont(env.T())
	tracing.Select("tyse.fonts").SetTraceLevel(tracing.LevelInfo)
}

// run once, after test suite methods
func (env *QueryTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *QueryTestEnviron) TestGlyphClasses() {
	env.Equal(ot.BaseGlyph, GlyphClass(env.otf, 4))
	env.Equal(ot.MarkGlyph, GlyphClass(env.otf, 30))
	env.True(IsMark(env.otf, 31))
	env.False(IsMark(env.otf, 4))
	clz := ClassesForGlyph(env.otf, 30)
	env.Equal(ot.MarkGlyph, clz.Class)
	env.Equal(2, clz.MarkAttachClass)
	env.Equal(0, MarkAttachClass(env.otf, 4))
}

func (env *QueryTestEnviron) TestAttachmentAndCarets() {
	env.Equal([]uint16{1, 5}, AttachPoints(env.otf, 4))
	env.Nil(AttachPoints(env.otf, 5))
	carets := LigatureCarets(env.otf, 20)
	env.Require().Len(carets, 2)
	env.Equal(ot.CaretCoordinate{Coordinate: 300}, carets[0])
	env.Equal(ot.CaretPoint{PointIndex: 7}, carets[1])
	env.True(InMarkGlyphSet(env.otf, 0, 31))
	env.False(InMarkGlyphSet(env.otf, 0, 30))
	env.False(InMarkGlyphSet(env.otf, 3, 31))
}

func (env *QueryTestEnviron) TestFontWithoutGDef() {
	otf := ot.NewFont()
	env.Equal(ot.UnclassifiedGlyph, GlyphClass(otf, 4))
	env.Equal(GlyphClasses{}, ClassesForGlyph(otf, 4))
	env.Nil(AttachPoints(otf, 4))
	env.Nil(LigatureCarets(otf, 20))
	env.False(InMarkGlyphSet(otf, 0, 31))
	env.Equal(ot.LayoutRequirements{}, LayoutRequirements(otf))
	scr, lang := FontSupportsScript(otf, ot.Latn, ot.T("DEU"))
	env.Equal(ot.DFLT, scr)
	env.Equal(ot.DefaultLanguage, lang)
}

func (env *QueryTestEnviron) TestScriptSupport() {
	scr, lang := FontSupportsScript(env.otf, ot.Latn, ot.T("DEU"))
	env.Equal(ot.Latn, scr)
	env.Equal(ot.T("DEU"), lang)
	scr, lang = FontSupportsScript(env.otf, ot.Latn, ot.T("TRK"))
	env.Equal(ot.Latn, scr)
	env.Equal(ot.DefaultLanguage, lang, "TRK is not supported")
	scr, _ = FontSupportsScript(env.otf, ot.T("cyrl"), ot.T("RUS"))
	env.Equal(ot.Latn, scr, "expected fallback to default script")
}

func (env *QueryTestEnviron) TestLayoutInfo() {
	layouts := LayoutTables(env.otf)
	env.Equal([]string{"GDEF", "GSUB"}, layouts)
	req := LayoutRequirements(env.otf)
	env.True(req.NeedMarkGlyphSets)
	env.False(req.NeedMarkAttachClassDef)
}

func (env *QueryTestEnviron) TestHeadInfo() {
	env.Equal("TrueType", FontType(env.otf))
	h, ok := HeadInfo(env.otf)
	env.Require().True(ok, "expected to decode table 'head'")
	env.Equal(uint32(0x5F0F3CF5), h.MagicNumber, "expected OpenType head magic number")
	env.Equal(uint16(2048), h.UnitsPerEm)
	env.Equal(int16(-200), h.YMin)
	_, ok = HeadInfo(ot.NewFont())
	env.False(ok)
}

func (env *QueryTestEnviron) TestNameInfo() {
	info := NameInfo(env.otf)
	fam, ok := info["family"]
	env.Require().True(ok, "font familiy identifier not found in font info")
	env.Equal("Test", fam)
	env.Len(info, 1, "Macintosh entries are skipped")
	n := 0
	for id := range NamesRange(env.otf) {
		env.Equal(sfnt.NameIDFamily, id)
		n++
	}
	env.Equal(1, n)
}

// --- Helpers ---------------------------------------------------------------

// makeTestFont assembles a font with tables GDEF, GSUB, head and name:
// glyph 4 is a base glyph with attach points, glyph 20 a ligature,
// glyphs 30 and 31 are marks; mark glyph set 0 contains glyph 31.
func makeTestFont(t *testing.T) *ot.Font {
	otf := ot.NewFont()
	otf.Header = &ot.FontHeader{FontType: 0x00010000, TableCount: 4}
	//
	gdef := ot.NewGDefTable()
	gdef.GlyphClassDef = ot.Some[ot.ClassDef](&ot.ClassDefFormat2{Ranges: []ot.ClassRange{
		{Start: 4, End: 10, Class: uint16(ot.BaseGlyph)},
		{Start: 20, End: 20, Class: uint16(ot.LigatureGlyph)},
		{Start: 30, End: 31, Class: uint16(ot.MarkGlyph)},
	}})
	gdef.MarkAttachClassDef = ot.Some[ot.ClassDef](&ot.ClassDefFormat1{StartGlyph: 30, Classes: []uint16{2, 1}})
	gdef.AttachList = ot.Some(&ot.AttachList{
		Coverage:     &ot.CoverageFormat1{Glyphs: []ot.GlyphIndex{4}},
		AttachPoints: [][]uint16{{1, 5}},
	})
	gdef.LigCaretList = ot.Some(&ot.LigCaretList{
		Coverage:  &ot.CoverageFormat1{Glyphs: []ot.GlyphIndex{20}},
		LigGlyphs: [][]ot.CaretValue{{ot.CaretCoordinate{Coordinate: 300}, ot.CaretPoint{PointIndex: 7}}},
	})
	gdef.MarkGlyphSets = ot.Some([]ot.Coverage{&ot.CoverageFormat1{Glyphs: []ot.GlyphIndex{31}}})
	otf.SetTable(gdef)
	//
	gsub := otlayout.New(otf, ot.T("GSUB"))
	lookups, err := gsub.LookupTables(ot.Latn, ot.T("DEU"), ot.T("ccmp"), 1, true)
	if err != nil {
		t.Fatal(err)
	}
	lookups[0].LookupFlag = ot.LOOKUP_FLAG_USE_MARK_FILTERING_SET
	//
	head := make([]byte, 54)
	binary.BigEndian.PutUint16(head[0:], 1)
	binary.BigEndian.PutUint32(head[12:], 0x5F0F3CF5)
	binary.BigEndian.PutUint16(head[18:], 2048)
	binary.BigEndian.PutUint16(head[38:], uint16(0xFF38)) // -200
	otf.SetTable(ot.NewRawTable(ot.T("head"), head))
	otf.SetTable(ot.NewRawTable(ot.T("name"), makeNameTable()))
	return otf
}

// makeNameTable creates table 'name' with a Windows and a Macintosh entry for the
// family name.
func makeNameTable() []byte {
	be := binary.BigEndian
	b := make([]byte, 6+2*12)
	be.PutUint16(b[2:], 2)  // count
	be.PutUint16(b[4:], 30) // string storage
	win := b[6:]
	be.PutUint16(win[0:], 3)
	be.PutUint16(win[2:], 1)
	be.PutUint16(win[4:], 0x409)
	be.PutUint16(win[6:], uint16(sfnt.NameIDFamily))
	be.PutUint16(win[8:], 8)
	mac := b[18:]
	be.PutUint16(mac[0:], 1)
	be.PutUint16(mac[6:], uint16(sfnt.NameIDFamily))
	be.PutUint16(mac[8:], 4)
	be.PutUint16(mac[10:], 8)
	b = append(b, 0, 'T', 0, 'e', 0, 's', 0, 't')
	return append(b, "Test"...)
}
