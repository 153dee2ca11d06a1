package ot

import (
	"cmp"
	"slices"
)

// TagRecord is implemented by records which are stored in arrays sorted by tag,
// i.e. script records, language system records and feature records.
type TagRecord interface {
	RecordTag() Tag
}

// SearchTag searches for tag in records, which must be sorted by tag in
// ascending order. If the tag is present, its index is returned. Otherwise
// SearchTag returns -(i)-1, where i is the index at which a record with tag
// would have to be inserted to keep records sorted. Clients may therefore
// both test membership and locate an insertion point with a single call.
func SearchTag[R TagRecord](records []R, tag Tag) int {
	i, found := slices.BinarySearchFunc(records, tag, func(r R, t Tag) int {
		return cmp.Compare(r.RecordTag(), t)
	})
	if found {
		return i
	}
	return -i - 1
}

// BinSearch searches for v in values, which must be sorted in ascending order.
// The return value follows the conventions of SearchTag.
func BinSearch[T cmp.Ordered](values []T, v T) int {
	i, found := slices.BinarySearch(values, v)
	if found {
		return i
	}
	return -i - 1
}

// InsertionPoint decodes the insertion index from a negative search result.
func InsertionPoint(searchResult int) int {
	if searchResult >= 0 {
		return searchResult
	}
	return -searchResult - 1
}

// glyphSpan is implemented by range records covering [start…end] of glyph IDs.
type glyphSpan interface {
	span() (GlyphIndex, GlyphIndex)
}

// searchRange looks for the range containing g. Ranges have to be sorted by
// start glyph and must not overlap.
func searchRange[R glyphSpan](ranges []R, g GlyphIndex) (R, bool) {
	// index of the first range starting after g
	i, _ := slices.BinarySearchFunc(ranges, g, func(r R, g GlyphIndex) int {
		start, _ := r.span()
		if start <= g {
			return -1
		}
		return 1
	})
	var none R
	if i == 0 {
		return none, false
	}
	if _, end := ranges[i-1].span(); g > end {
		return none, false
	}
	return ranges[i-1], true
}
