package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/otlayoutcore/ot"
	"github.com/pterm/pterm"
)

func printFeatureList(table *ot.LayoutTable) {
	if table == nil || len(table.Features) == 0 {
		return
	}
	data := [][]string{
		{"Index", "Tag", "Lookups"},
	}
	for i, rec := range table.Features {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			rec.Tag.String(),
			fmt.Sprintf("%v", rec.Feature.LookupListIndexes),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printLookupList(tag ot.Tag, table *ot.LayoutTable) {
	if table == nil {
		pterm.Error.Printf("%s table is nil\n", tag)
		return
	}
	count := len(table.Lookups)
	pterm.Printf("%s LookupList has %d entries\n", tag, count)
	if count == 0 {
		return
	}
	data := [][]string{
		{"Index", "Type", "Subtables", "Flags"},
	}
	for i, lookup := range table.Lookups {
		if lookup == nil {
			data = append(data, []string{fmt.Sprintf("%d", i), "-", "-", "-"})
			continue
		}
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			formatLookupType(tag, lookup.LookupType),
			fmt.Sprintf("%d", len(lookup.Subtables)),
			formatLookupFlags(lookup.LookupFlag),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printLookup(tag ot.Tag, table *ot.LayoutTable, index int) {
	if table == nil {
		pterm.Error.Printf("%s table is nil\n", tag)
		return
	}
	if index < 0 || index >= len(table.Lookups) || table.Lookups[index] == nil {
		pterm.Error.Printf("Lookup index out of range: %d\n", index)
		return
	}
	lookup := table.Lookups[index]
	pterm.Printf("Lookup %d: type=%s flags=%s subtables=%d\n",
		index,
		formatLookupType(tag, lookup.LookupType),
		formatLookupFlags(lookup.LookupFlag),
		len(lookup.Subtables),
	)
	if lookup.LookupFlag&ot.LOOKUP_FLAG_USE_MARK_FILTERING_SET != 0 {
		pterm.Printf("mark filtering set: %d\n", lookup.MarkFilteringSet)
	}
	data := [][]string{
		{"Sub", "Format", "Bytes available"},
	}
	for i, sub := range lookup.Subtables {
		if len(sub) < 2 {
			data = append(data, []string{fmt.Sprintf("%d", i), "-", "-"})
			continue
		}
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", uint16(sub[0])<<8|uint16(sub[1])),
			fmt.Sprintf("%d", len(sub)),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

var gsubLookupTypes = []string{"", "Single", "Multiple", "Alternate", "Ligature",
	"Context", "ChainingContext", "Extension", "ReverseChaining"}

var gposLookupTypes = []string{"", "SingleAdjustment", "PairAdjustment", "CursiveAttachment",
	"MarkToBase", "MarkToLigature", "MarkToMark", "Context", "ChainingContext", "Extension"}

func formatLookupType(table ot.Tag, ltype ot.LayoutTableLookupType) string {
	names := gsubLookupTypes
	if table == ot.T("GPOS") {
		names = gposLookupTypes
	}
	if ltype == 0 || int(ltype) >= len(names) {
		return fmt.Sprintf("Unknown(%d)", ltype)
	}
	return names[ltype]
}

func formatLookupFlags(flag ot.LayoutTableLookupFlag) string {
	if flag == 0 {
		return "-"
	}
	parts := make([]string, 0, 6)
	if flag&ot.LOOKUP_FLAG_RIGHT_TO_LEFT != 0 {
		parts = append(parts, "RightToLeft")
	}
	if flag&ot.LOOKUP_FLAG_IGNORE_BASE_GLYPHS != 0 {
		parts = append(parts, "IgnoreBase")
	}
	if flag&ot.LOOKUP_FLAG_IGNORE_LIGATURES != 0 {
		parts = append(parts, "IgnoreLigatures")
	}
	if flag&ot.LOOKUP_FLAG_IGNORE_MARKS != 0 {
		parts = append(parts, "IgnoreMarks")
	}
	if flag&ot.LOOKUP_FLAG_USE_MARK_FILTERING_SET != 0 {
		parts = append(parts, "UseMarkFilteringSet")
	}
	if flag&ot.LOOKUP_FLAG_MARK_ATTACHMENT_TYPE_MASK != 0 {
		parts = append(parts, fmt.Sprintf("MarkAttachType=%d", flag>>8))
	}
	return strings.Join(parts, "|")
}

func formatCaret(c ot.CaretValue) string {
	switch v := c.(type) {
	case ot.CaretCoordinate:
		return fmt.Sprintf("x=%d", v.Coordinate)
	case ot.CaretPoint:
		return fmt.Sprintf("point #%d", v.PointIndex)
	}
	return "-"
}
