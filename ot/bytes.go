package ot

import (
	"errors"
	"fmt"
)

// Reading bytes from a font's binary representation

var errBufferBounds = errors.New("internal inconsistency: buffer bounds error")

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

// binarySegm is a segment of byte data.
type binarySegm []byte

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of b.
func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n <= 0 || offset+n > len(b) {
		return nil, errBufferBounds
	}
	return b[offset : offset+n], nil
}

// --- Option ----------------------------------------------------------------

// Option represents an optional value.
//
// Table fields which are linked by an Offset16 are decoded into Options:
// a NULL offset results in None, which is different from a structure which
// is present but empty.
type Option[T any] struct {
	value T
	ok    bool
}

// Some constructs an Option with a value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None constructs an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option contains a value.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool { return !o.ok }

// Unwrap returns the value and a boolean indicating presence,
// following the "(value, ok)" idiom.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.ok
}

// Or returns the contained value or def if o is None.
func (o Option[T]) Or(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// --- Version ---------------------------------------------------------------

// Version is a table version number, consisting of a major and a minor part.
type Version struct {
	Major uint16
	Minor uint16
}

// AtLeast reports whether v is major.minor or a later version.
func (v Version) AtLeast(major, minor uint16) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// --- Decoder ---------------------------------------------------------------

// Decoder is a cursor over a font's binary data. Every read advances the
// cursor by the width of the field read. A Decoder remembers the start of the
// structure it currently decodes (its base); Offset16 links are resolved
// relative to this base.
//
// A Decoder is not safe for concurrent use.
type Decoder struct {
	data  binarySegm
	pos   int // absolute position of the cursor
	base  int // absolute start of the enclosing structure
	table Tag // table currently decoded, for error messages
}

// NewDecoder creates a decoder for b, positioned at offset. The structure base
// is set to offset as well, i.e., offset is expected to be the start of a table.
func NewDecoder(b []byte, offset int) *Decoder {
	return &Decoder{data: b, pos: offset, base: offset}
}

// forTable sets the table tag used for error reporting.
func (d *Decoder) forTable(tag Tag) *Decoder {
	d.table = tag
	return d
}

// Pos returns the absolute position of the cursor.
func (d *Decoder) Pos() int {
	return d.pos
}

// Base returns the absolute start position of the structure currently decoded.
func (d *Decoder) Base() int {
	return d.base
}

// Seek positions the cursor at an absolute position.
func (d *Decoder) Seek(pos int) error {
	if pos < 0 || pos > len(d.data) {
		return fmt.Errorf("seek to %d: %w", pos, errBufferBounds)
	}
	d.pos = pos
	return nil
}

// Skip advances the cursor by n bytes.
func (d *Decoder) Skip(n int) error {
	if _, err := d.data.view(d.pos, n); err != nil {
		return fmt.Errorf("skip %d bytes at %d: %w", n, d.pos, err)
	}
	d.pos += n
	return nil
}

// Bytes returns a read-only view of the data from absolute position pos to the
// end of the buffer.
func (d *Decoder) Bytes(pos int) []byte {
	if pos < 0 || pos > len(d.data) {
		return nil
	}
	return d.data[pos:]
}

func (d *Decoder) next(n int) (binarySegm, error) {
	b, err := d.data.view(d.pos, n)
	if err != nil {
		return nil, fmt.Errorf("read %d bytes at %d: %w", n, d.pos, err)
	}
	d.pos += n
	return b, nil
}

// ReadUint16 reads a big-endian uint16.
func (d *Decoder) ReadUint16() (uint16, error) {
	b, err := d.next(2)
	if err != nil {
		return 0, err
	}
	return u16(b), nil
}

// ReadInt16 reads a big-endian int16.
func (d *Decoder) ReadInt16() (int16, error) {
	n, err := d.ReadUint16()
	return int16(n), err
}

// ReadUint32 reads a big-endian uint32.
func (d *Decoder) ReadUint32() (uint32, error) {
	b, err := d.next(4)
	if err != nil {
		return 0, err
	}
	return u32(b), nil
}

// ReadTag reads a 4-byte tag.
func (d *Decoder) ReadTag() (Tag, error) {
	n, err := d.ReadUint32()
	return Tag(n), err
}

// ReadGlyph reads a 16-bit glyph ID.
func (d *Decoder) ReadGlyph() (GlyphIndex, error) {
	n, err := d.ReadUint16()
	return GlyphIndex(n), err
}

// ReadVersion16Dot16 reads a version number consisting of a 16-bit major and
// a 16-bit minor part. The minor part is divided by minorBase. Header versions
// written as fixed-point numbers use a minorBase of 0x1000 (0x00012000 is
// version 1.2), tables like GDEF store the minor version as a plain
// integer and use a minorBase of 1 (0x00010002 is version 1.2).
func (d *Decoder) ReadVersion16Dot16(minorBase uint16) (Version, error) {
	major, err := d.ReadUint16()
	if err != nil {
		return Version{}, err
	}
	minor, err := d.ReadUint16()
	if err != nil {
		return Version{}, err
	}
	if minorBase == 0 {
		minorBase = 1
	}
	return Version{Major: major, Minor: minor / minorBase}, nil
}

// ReadPointer reads an Offset16, relative to the base of the structure currently
// being decoded, and decodes the structure it links to with sub.
// See ReadPointerFrom.
func ReadPointer[T any](d *Decoder, sub func(*Decoder) (T, error)) (Option[T], error) {
	return ReadPointerFrom(d, d.base, sub)
}

// ReadPointerFrom reads an Offset16, relative to an absolute base position.
// An offset of 0 is a NULL link: ReadPointerFrom returns None without
// calling sub. Otherwise sub is called with the cursor positioned at the
// destination, which also becomes the base for links read by sub. After sub
// returns, the cursor is located just after the offset field.
func ReadPointerFrom[T any](d *Decoder, base int, sub func(*Decoder) (T, error)) (Option[T], error) {
	offset, err := d.ReadUint16()
	if err != nil {
		return None[T](), err
	}
	if offset == 0 {
		return None[T](), nil
	}
	target := base + int(offset)
	if target >= len(d.data) {
		return None[T](), fmt.Errorf("offset16 %d from %d out of bounds: %w", offset, base, errBufferBounds)
	}
	savedPos, savedBase := d.pos, d.base
	d.pos, d.base = target, target
	v, err := sub(d)
	d.pos, d.base = savedPos, savedBase
	if err != nil {
		return None[T](), err
	}
	return Some(v), nil
}

// ReadList reads a uint16 count, followed by count elements, each decoded by
// elem. Elements are returned in stored order.
func ReadList[T any](d *Decoder, elem func(*Decoder) (T, error)) ([]T, error) {
	count, err := d.ReadUint16()
	if err != nil {
		return nil, err
	}
	list := make([]T, 0, count)
	for i := 0; i < int(count); i++ {
		v, err := elem(d)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

// readUint16s is a common element decoder for ReadList.
func readUint16s(d *Decoder) (uint16, error) {
	return d.ReadUint16()
}

// readNullable follows an Offset16 and decodes a structure, mapping a NULL
// link to the zero value of T. It is used for offset arrays, where a NULL
// entry stands for an empty structure.
func readNullable[T any](sub func(*Decoder) (T, error)) func(*Decoder) (T, error) {
	return func(d *Decoder) (T, error) {
		opt, err := ReadPointer(d, sub)
		if err != nil {
			var zero T
			return zero, err
		}
		return opt.Or(*new(T)), nil
	}
}
