package otquery

import (
	"encoding/binary"

	"github.com/npillmayer/otlayoutcore/ot"
)

// HeadTableInfo is a typed query view over OpenType table 'head'.
// Values are decoded directly from the raw table bytes; only the fields
// needed to interpret layout data are included.
type HeadTableInfo struct {
	MajorVersion     uint16
	MinorVersion     uint16
	FontRevision     uint32
	MagicNumber      uint32
	Flags            uint16
	UnitsPerEm       uint16
	XMin, YMin       int16
	XMax, YMax       int16
	IndexToLocFormat int16
}

const headTableSize = 54

// HeadInfo decodes table 'head'.
// Returns (info, true) on success, or (zero, false) if table is missing or too short.
func HeadInfo(otf *ot.Font) (HeadTableInfo, bool) {
	var info HeadTableInfo
	b := rawTable(otf, ot.T("head"))
	if len(b) < headTableSize {
		return info, false
	}
	be := binary.BigEndian
	info.MajorVersion = be.Uint16(b[0:2])
	info.MinorVersion = be.Uint16(b[2:4])
	info.FontRevision = be.Uint32(b[4:8])
	info.MagicNumber = be.Uint32(b[12:16])
	info.Flags = be.Uint16(b[16:18])
	info.UnitsPerEm = be.Uint16(b[18:20])
	info.XMin = int16(be.Uint16(b[36:38]))
	info.YMin = int16(be.Uint16(b[38:40]))
	info.XMax = int16(be.Uint16(b[40:42]))
	info.YMax = int16(be.Uint16(b[42:44]))
	info.IndexToLocFormat = int16(be.Uint16(b[50:52]))
	return info, true
}

// FontType returns a human readable description of the outline format of a font.
func FontType(otf *ot.Font) string {
	if otf == nil || otf.Header == nil {
		return "unknown"
	}
	switch otf.Header.FontType {
	case 0x4f54544f:
		return "OpenType/CFF"
	case 0x00010000, 0x74727565:
		return "TrueType"
	}
	return "unknown"
}

// rawTable returns the bytes of an uninterpreted table, or nil.
func rawTable(otf *ot.Font, tag ot.Tag) []byte {
	if raw, ok := otf.Table(tag).(*ot.RawTable); ok {
		return raw.Binary()
	}
	tracer().Debugf("no table '%s' found in font", tag)
	return nil
}
