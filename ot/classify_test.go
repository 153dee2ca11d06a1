package ot

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverageFormat1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	cov, err := ParseCoverage(NewDecoder(be(1, 3, 3, 7, 9), 0))
	require.NoError(t, err)
	tests := []struct {
		glyph GlyphIndex
		index int
	}{
		{3, 0}, {7, 1}, {9, 2}, {8, -1}, {0, -1}, {10, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.index, CoverageIndex(cov, tt.glyph), "coverage index of glyph %d", tt.glyph)
	}
	assert.Equal(t, []GlyphIndex{3, 7, 9}, ExpandCoverage(cov))
	assert.Equal(t, 3, CoverageLen(cov))
}

func TestCoverageFormat2(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	cov, err := ParseCoverage(NewDecoder(be(2, 2, 2, 4, 0, 10, 10, 3), 0))
	require.NoError(t, err)
	want := &CoverageFormat2{Ranges: []CoverageRange{
		{Start: 2, End: 4, StartIndex: 0},
		{Start: 10, End: 10, StartIndex: 3},
	}}
	if diff := cmp.Diff(want, cov); diff != "" {
		t.Errorf("decoded coverage mismatch (-want +got):\n%s", diff)
	}
	tests := []struct {
		glyph GlyphIndex
		index int
	}{
		{2, 0}, {3, 1}, {4, 2}, {10, 3}, {1, -1}, {5, -1}, {9, -1}, {11, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.index, CoverageIndex(cov, tt.glyph), "coverage index of glyph %d", tt.glyph)
	}
	assert.True(t, Covers(cov, 3))
	assert.False(t, Covers(cov, 7))
	assert.Equal(t, []GlyphIndex{2, 3, 4, 10}, ExpandCoverage(cov))
	assert.Equal(t, 4, CoverageLen(cov))
}

func TestCoverageEmpty(t *testing.T) {
	for _, b := range [][]byte{be(1, 0), be(2, 0)} {
		cov, err := ParseCoverage(NewDecoder(b, 0))
		require.NoError(t, err)
		assert.Equal(t, -1, CoverageIndex(cov, 0))
		assert.Empty(t, ExpandCoverage(cov))
	}
	assert.Equal(t, -1, CoverageIndex(nil, 0), "nil coverage covers nothing")
}

func TestCoverageUnknownFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	_, err := ParseCoverage(NewDecoder(be(3, 0), 0).forTable(T("GSUB")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	var ferr FontError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, "Coverage", ferr.Section)
	assert.Equal(t, T("GSUB"), ferr.Table)
}

func TestClassDefFormat1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	cd, err := ParseClassDef(NewDecoder(be(1, 5, 3, 1, 2, 0), 0))
	require.NoError(t, err)
	tests := []struct {
		glyph GlyphIndex
		class int
	}{
		{4, 0}, {5, 1}, {6, 2}, {7, 0}, {8, 0}, {0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.class, GlyphClass(cd, tt.glyph), "class of glyph %d", tt.glyph)
	}
}

func TestClassDefFormat2(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	cd, err := ParseClassDef(NewDecoder(be(2, 2, 10, 20, 1, 30, 30, 2), 0))
	require.NoError(t, err)
	tests := []struct {
		glyph GlyphIndex
		class int
	}{
		{9, 0}, {10, 1}, {15, 1}, {20, 1}, {25, 0}, {30, 2}, {31, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.class, GlyphClass(cd, tt.glyph), "class of glyph %d", tt.glyph)
	}
	assert.Equal(t, 0, GlyphClass(nil, 10), "nil ClassDef puts every glyph into class 0")
}

func TestClassDefUnknownFormat(t *testing.T) {
	_, err := ParseClassDef(NewDecoder(be(7), 0))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestSearchTag(t *testing.T) {
	records := []ScriptRecord{{Tag: T("DFLT")}, {Tag: T("cyrl")}, {Tag: T("latn")}}
	tests := []struct {
		tag    string
		result int
	}{
		{"DFLT", 0},
		{"latn", 2},
		{"arab", -2}, // 'DFLT' < 'arab' < 'cyrl'
		{"AAAA", -1},
		{"zzzz", -4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.result, SearchTag(records, T(tt.tag)), "search for '%s'", tt.tag)
	}
	assert.Equal(t, 1, InsertionPoint(SearchTag(records, T("arab"))))
	assert.Equal(t, 2, InsertionPoint(2))
	assert.Equal(t, -1, SearchTag([]FeatureRecord{}, T("liga")))
}

func TestBinSearch(t *testing.T) {
	values := []uint16{1, 5, 9}
	assert.Equal(t, 1, BinSearch(values, 5))
	assert.Equal(t, -3, BinSearch(values, 6))
	assert.Equal(t, -1, BinSearch(values, 0))
	assert.Equal(t, -4, BinSearch(values, 10))
}
