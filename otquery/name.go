package otquery

import (
	"encoding/binary"
	"fmt"
	"iter"

	"github.com/npillmayer/otlayoutcore/ot"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/encoding/unicode"
)

// Table 'name' starts with a 6-byte header, followed by 12-byte name records:
//
//	uint16  platformID, encodingID, languageID, nameID
//	uint16  length
//	Offset16 stringOffset   from start of string storage
const (
	nameHeaderSize = 6
	nameRecordSize = 12
)

// PlatformID is the platform of a name record.
type PlatformID uint16

// Platforms of name records.
const (
	PlatformIDUnicode   PlatformID = 0
	PlatformIDMacintosh PlatformID = 1 // not supported
	PlatformIDWindows   PlatformID = 3
)

// EncodingID is the platform-specific encoding of a name record.
type EncodingID uint16

// Supported encodings of name records. Both are UTF-16BE.
const (
	EncodingIDUnicodeBMP EncodingID = 3 // with PlatformIDUnicode
	EncodingIDWindowsBMP EncodingID = 1 // with PlatformIDWindows
)

// NamesRange yields decoded (nameID, value) pairs from table 'name'.
//
// Only Unicode BMP and Windows BMP entries are yielded; malformed or
// out-of-bounds records are skipped.
func NamesRange(otf *ot.Font) iter.Seq2[sfnt.NameID, string] {
	b := nameTable(otf)
	return func(yield func(sfnt.NameID, string) bool) {
		if b == nil {
			return
		}
		count := int(binary.BigEndian.Uint16(b[2:4]))
		storage := int(binary.BigEndian.Uint16(b[4:6]))
		for i := range count {
			rec := b[nameHeaderSize+i*nameRecordSize:]
			platform := PlatformID(binary.BigEndian.Uint16(rec[0:2]))
			encoding := EncodingID(binary.BigEndian.Uint16(rec[2:4]))
			if !(platform == PlatformIDUnicode && encoding == EncodingIDUnicodeBMP) &&
				!(platform == PlatformIDWindows && encoding == EncodingIDWindowsBMP) {
				continue
			}
			start := storage + int(binary.BigEndian.Uint16(rec[10:12]))
			end := start + int(binary.BigEndian.Uint16(rec[8:10]))
			if end > len(b) {
				continue
			}
			value, err := decodeUTF16(b[start:end])
			if err != nil || value == "" {
				continue
			}
			if !yield(sfnt.NameID(binary.BigEndian.Uint16(rec[6:8])), value) {
				return
			}
		}
	}
}

// NameInfo returns selected entries of table 'name', keyed by
// "family", "subfamily", "fullname", "version" and "postscript".
// If a name is present in more than one encoding, the first one wins.
func NameInfo(otf *ot.Font) map[string]string {
	keys := map[sfnt.NameID]string{
		sfnt.NameIDFamily:     "family",
		sfnt.NameIDSubfamily:  "subfamily",
		sfnt.NameIDFull:       "fullname",
		sfnt.NameIDVersion:    "version",
		sfnt.NameIDPostScript: "postscript",
	}
	info := make(map[string]string)
	for id, value := range NamesRange(otf) {
		if key, ok := keys[id]; ok {
			if _, dup := info[key]; !dup {
				info[key] = value
			}
		}
	}
	return info
}

// nameTable returns the bytes of table 'name' if its record section is in bounds.
func nameTable(otf *ot.Font) []byte {
	b := rawTable(otf, ot.T("name"))
	if len(b) < nameHeaderSize {
		return nil
	}
	count := int(binary.BigEndian.Uint16(b[2:4]))
	if storage := int(binary.BigEndian.Uint16(b[4:6])); storage > len(b) {
		tracer().Debugf("name table has invalid string offset: %d", storage)
		return nil
	}
	if nameHeaderSize+count*nameRecordSize > len(b) {
		tracer().Debugf("name table record section out of bounds: count=%d", count)
		return nil
	}
	return b
}

func decodeUTF16(str []byte) (string, error) {
	dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	s, err := dec.Bytes(str)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16 error: %w", err)
	}
	return string(s), nil
}
