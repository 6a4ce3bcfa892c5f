package encoding

import (
	"encoding/binary"

	"github.com/arloliu/strview"
	"github.com/arloliu/strview/endian"
	"github.com/arloliu/strview/errs"
)

// AppendUint16 writes x as 2 bytes in the engine's byte order.
func AppendUint16(s strview.Segment, engine endian.EndianEngine, x uint16) (strview.Segment, error) {
	if err := reserve(s, 2, "uint16"); err != nil {
		return s, err
	}
	engine.PutUint16(s.Bytes(), x)

	return s.Advance(2), nil
}

// AppendUint32 writes x as 4 bytes in the engine's byte order.
func AppendUint32(s strview.Segment, engine endian.EndianEngine, x uint32) (strview.Segment, error) {
	if err := reserve(s, 4, "uint32"); err != nil {
		return s, err
	}
	engine.PutUint32(s.Bytes(), x)

	return s.Advance(4), nil
}

// AppendUint64 writes x as 8 bytes in the engine's byte order.
func AppendUint64(s strview.Segment, engine endian.EndianEngine, x uint64) (strview.Segment, error) {
	if err := reserve(s, 8, "uint64"); err != nil {
		return s, err
	}
	engine.PutUint64(s.Bytes(), x)

	return s.Advance(8), nil
}

// AppendUvarint writes x as an unsigned varint.
func AppendUvarint(s strview.Segment, x uint64) (strview.Segment, error) {
	need := varintLen(x)
	if err := reserve(s, need, "uvarint"); err != nil {
		return s, err
	}
	binary.PutUvarint(s.Bytes(), x)

	return s.Advance(need), nil
}

// AppendVarint writes x as a zigzag-encoded signed varint, so small negative
// values stay short.
func AppendVarint(s strview.Segment, x int64) (strview.Segment, error) {
	ux := uint64(x<<1) ^ uint64(x>>63) //nolint:gosec
	need := varintLen(ux)
	if err := reserve(s, need, "varint"); err != nil {
		return s, err
	}
	binary.PutVarint(s.Bytes(), x)

	return s.Advance(need), nil
}

// ReadUint16 decodes 2 bytes from the start of v.
// ok is false, and rest is v, if v is Invalid or too short.
func ReadUint16(v strview.View, engine endian.EndianEngine) (x uint16, rest strview.View, ok bool) {
	if !v.IsValid() || v.Len() < 2 {
		return 0, v, false
	}

	return engine.Uint16(v.Bytes()), v.Slice(2, strview.End), true
}

// ReadUint32 decodes 4 bytes from the start of v.
func ReadUint32(v strview.View, engine endian.EndianEngine) (x uint32, rest strview.View, ok bool) {
	if !v.IsValid() || v.Len() < 4 {
		return 0, v, false
	}

	return engine.Uint32(v.Bytes()), v.Slice(4, strview.End), true
}

// ReadUint64 decodes 8 bytes from the start of v.
func ReadUint64(v strview.View, engine endian.EndianEngine) (x uint64, rest strview.View, ok bool) {
	if !v.IsValid() || v.Len() < 8 {
		return 0, v, false
	}

	return engine.Uint64(v.Bytes()), v.Slice(8, strview.End), true
}

// ReadUvarint decodes an unsigned varint from the start of v.
func ReadUvarint(v strview.View) (x uint64, rest strview.View, ok bool) {
	if !v.IsValid() {
		return 0, v, false
	}

	x, n := binary.Uvarint(v.Bytes())
	if n <= 0 {
		return 0, v, false
	}

	return x, v.Slice(n, strview.End), true
}

// ReadVarint decodes a zigzag-encoded signed varint from the start of v.
func ReadVarint(v strview.View) (x int64, rest strview.View, ok bool) {
	if !v.IsValid() {
		return 0, v, false
	}

	x, n := binary.Varint(v.Bytes())
	if n <= 0 {
		return 0, v, false
	}

	return x, v.Slice(n, strview.End), true
}

func reserve(s strview.Segment, need int, record string) error {
	if !s.IsUsable() {
		return errs.ErrUnusableSegment
	}
	if need > s.Len() {
		return shortBuffer(record, need, s.Len())
	}

	return nil
}
