package encoding

import (
	"encoding/binary"
	"fmt"
	"iter"

	"github.com/arloliu/strview"
	"github.com/arloliu/strview/errs"
)

// MaxTextLength is the maximum length of a short string.
// It is bounded by the uint8 length prefix.
const MaxTextLength = 255

// VarStringLen returns the number of bytes a var string record of n bytes
// occupies, length prefix included.
func VarStringLen(n int) int {
	return varintLen(uint64(n)) + n //nolint:gosec
}

// AppendVarString writes v as a var string record ([length:uvarint][bytes]).
//
// Parameters:
//   - s: Destination segment
//   - v: Bytes to write; Empty writes a single zero length byte
//
// Returns:
//   - strview.Segment: The segment after the record, or s unchanged on error
//   - error: errs.ErrInvalidView, errs.ErrUnusableSegment, or a wrapped
//     errs.ErrShortBuffer when the record does not fit
func AppendVarString(s strview.Segment, v strview.View) (strview.Segment, error) {
	if err := checkWrite(s, v); err != nil {
		return s, err
	}

	n := v.Len()
	need := VarStringLen(n)
	if need > s.Len() {
		return s, shortBuffer("var string", need, s.Len())
	}

	buf := s.Bytes()
	off := binary.PutUvarint(buf, uint64(n)) //nolint:gosec
	copy(buf[off:], v.Bytes())

	return s.Advance(need), nil
}

// AppendShortString writes v as a short string record ([length:uint8][bytes]).
//
// Returns a wrapped errs.ErrTextTooLong if v is longer than MaxTextLength, and
// otherwise the same errors as AppendVarString.
func AppendShortString(s strview.Segment, v strview.View) (strview.Segment, error) {
	if err := checkWrite(s, v); err != nil {
		return s, err
	}

	n := v.Len()
	if n > MaxTextLength {
		return s, fmt.Errorf("text length %d exceeds maximum %d: %w", n, MaxTextLength, errs.ErrTextTooLong)
	}
	if 1+n > s.Len() {
		return s, shortBuffer("short string", 1+n, s.Len())
	}

	buf := s.Bytes()
	buf[0] = uint8(n) //nolint:gosec
	copy(buf[1:], v.Bytes())

	return s.Advance(1 + n), nil
}

// ReadVarString decodes a var string record from the start of v.
//
// The returned str aliases v. If v is Invalid, truncated or carries a
// malformed length prefix, both results are strview.Invalid.
func ReadVarString(v strview.View) (str, rest strview.View) {
	if !v.IsValid() {
		return strview.Invalid, strview.Invalid
	}

	b := v.Bytes()
	length, n := binary.Uvarint(b)
	if n <= 0 || length > uint64(len(b)-n) {
		return strview.Invalid, strview.Invalid
	}
	end := n + int(length) //nolint:gosec

	return v.Slice(n, end), v.Slice(end, strview.End)
}

// ReadShortString decodes a short string record from the start of v.
// Error handling matches ReadVarString.
func ReadShortString(v strview.View) (str, rest strview.View) {
	c, ok := v.At(0)
	if !ok {
		return strview.Invalid, strview.Invalid
	}

	end := 1 + int(c)
	if end > v.Len() {
		return strview.Invalid, strview.Invalid
	}

	return v.Slice(1, end), v.Slice(end, strview.End)
}

// VarStrings returns an iterator over consecutive var string records in v.
//
// Iteration stops at the end of v or at the first malformed record.
func VarStrings(v strview.View) iter.Seq[strview.View] {
	return func(yield func(strview.View) bool) {
		rest := v
		for rest.IsValid() && !rest.IsEmpty() {
			var str strview.View
			str, rest = ReadVarString(rest)
			if !str.IsValid() || !yield(str) {
				return
			}
		}
	}
}

func checkWrite(s strview.Segment, v strview.View) error {
	if !v.IsValid() {
		return errs.ErrInvalidView
	}
	if !s.IsUsable() {
		return errs.ErrUnusableSegment
	}

	return nil
}

func shortBuffer(record string, need, have int) error {
	return fmt.Errorf("%s needs %d bytes, segment has %d: %w", record, need, have, errs.ErrShortBuffer)
}

// varintLen returns the number of bytes required to encode a uvarint.
func varintLen(n uint64) int {
	size := 1
	for n >= 0x80 {
		n >>= 7
		size++
	}

	return size
}
