package ot

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGDefHeaderOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	gdef, err := ParseGDef(cat(be(1, 3, 0, 0, 0, 0, 0), be32(0)), 0)
	require.NoError(t, err)
	assert.Equal(t, Version{1, 3}, gdef.Version)
	assert.True(t, gdef.GlyphClassDef.IsNone())
	assert.True(t, gdef.AttachList.IsNone())
	assert.True(t, gdef.LigCaretList.IsNone())
	assert.True(t, gdef.MarkAttachClassDef.IsNone())
	assert.True(t, gdef.MarkGlyphSets.IsNone(), "NULL offset to MarkGlyphSets has to be None")
	assert.Equal(t, uint32(0), gdef.ItemVarStoreOffset)
	assert.Equal(t, UnclassifiedGlyph, gdef.GlyphClassOf(10))
	assert.Nil(t, gdef.LigatureCaretsOf(10))
	assert.False(t, gdef.InMarkGlyphSet(0, 10))
}

func TestGDefVersion10(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	// the trailing bytes would be a MarkGlyphSets offset for version 1.2
	gdef, err := ParseGDef(be(1, 0, 0, 0, 0, 0, 12, 1, 0), 0)
	require.NoError(t, err)
	assert.True(t, gdef.MarkGlyphSets.IsNone(), "version 1.0 does not have mark glyph sets")
	_, length := gdef.Extent()
	assert.Equal(t, uint32(12), length)
}

func TestGDefEmptyMarkGlyphSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	gdef, err := ParseGDef(be(1, 2, 0, 0, 0, 0, 14, 1, 0), 0)
	require.NoError(t, err)
	sets, ok := gdef.MarkGlyphSets.Unwrap()
	require.True(t, ok, "present but empty MarkGlyphSets has to be Some")
	assert.Empty(t, sets)
	assert.NotNil(t, sets)
}

func TestGDefFull(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	for _, padding := range []int{0, 10} {
		b := cat(make([]byte, padding), buildGDef())
		gdef, err := ParseGDef(b, padding)
		require.NoError(t, err, "GDEF at offset %d", padding)
		assert.Equal(t, Version{1, 2}, gdef.Version)
		//
		assert.Equal(t, BaseGlyph, gdef.GlyphClassOf(11))
		assert.Equal(t, LigatureGlyph, gdef.GlyphClassOf(20))
		assert.Equal(t, MarkGlyph, gdef.GlyphClassOf(31))
		assert.Equal(t, UnclassifiedGlyph, gdef.GlyphClassOf(13))
		assert.Equal(t, "Mark", gdef.GlyphClassOf(30).String())
		//
		assert.Equal(t, []uint16{3, 7}, gdef.AttachPointsOf(10))
		assert.Nil(t, gdef.AttachPointsOf(11))
		//
		want := []CaretValue{
			CaretCoordinate{Coordinate: 500},
			CaretPoint{PointIndex: 4},
			CaretCoordinate{Coordinate: -20},
		}
		if diff := cmp.Diff(want, gdef.LigatureCaretsOf(20)); diff != "" {
			t.Errorf("ligature carets mismatch (-want +got):\n%s", diff)
		}
		assert.Nil(t, gdef.LigatureCaretsOf(10))
		//
		assert.Equal(t, 1, gdef.MarkAttachClassOf(30))
		assert.Equal(t, 2, gdef.MarkAttachClassOf(31))
		assert.Equal(t, 0, gdef.MarkAttachClassOf(20))
		//
		assert.True(t, gdef.InMarkGlyphSet(0, 30))
		assert.True(t, gdef.InMarkGlyphSet(0, 31))
		assert.False(t, gdef.InMarkGlyphSet(0, 20))
		assert.False(t, gdef.InMarkGlyphSet(1, 30), "there is only one mark glyph set")
		assert.False(t, gdef.InMarkGlyphSet(-1, 30))
	}
}

func TestGDefUnsupportedVersion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	for _, v := range [][2]int{{1, 1}, {2, 0}, {0, 0}} {
		_, err := ParseGDef(cat(be(v[0], v[1], 0, 0, 0, 0, 0), be32(0)), 0)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, "version %d.%d", v[0], v[1])
	}
}

func TestGDefCaretValueFormats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	tests := []struct {
		data []byte
		want CaretValue
	}{
		{be(1, 120), CaretCoordinate{Coordinate: 120}},
		{be(2, 5), CaretPoint{PointIndex: 5}},
		{be(3, 0xFF9C, 6), CaretCoordinate{Coordinate: -100}},
	}
	for _, tt := range tests {
		cv, err := parseCaretValue(NewDecoder(tt.data, 0))
		require.NoError(t, err)
		assert.Equal(t, tt.want, cv)
	}
	_, err := parseCaretValue(NewDecoder(be(4, 1), 0).forTable(T("GDEF")))
	require.Error(t, err)
	var ferr FontError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, "CaretValue", ferr.Section)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestGDefBadSubtableFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	// GlyphClassDef with format 3
	_, err := ParseGDef(be(1, 0, 12, 0, 0, 0, 3, 0), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	var ferr FontError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, "ClassDef", ferr.Section)
	assert.Equal(t, T("GDEF"), ferr.Table)
}

func TestGDefTruncated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	_, err := ParseGDef(be(1, 0, 0), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errBufferBounds)
	var ferr FontError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, SeverityCritical, ferr.Severity)
	//
	_, err = ParseGDef(be(1, 0, 200, 0, 0, 0), 0)
	assert.ErrorIs(t, err, errBufferBounds, "offset beyond buffer has to be rejected")
}

func TestGDefConsistencyWarnings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	// AttachList with 2 entries but only 1 covered glyph; entries are NULL
	gdef, err := ParseGDef(cat(be(1, 0, 0, 12, 0, 0), be(8, 2, 0, 0), be(1, 1, 10)), 0)
	require.NoError(t, err)
	ec := &errorCollector{}
	gdef.checkConsistency(ec)
	require.Len(t, ec.warnings, 1)
	assert.Equal(t, T("GDEF"), ec.warnings[0].Table)
	assert.Nil(t, gdef.AttachPointsOf(10), "NULL attach point entry decodes to nil")
}
