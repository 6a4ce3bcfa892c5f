package strview

import (
	"bytes"
	"unsafe"

	"github.com/arloliu/strview/internal/hash"
)

type viewKind uint8

const (
	kindValid viewKind = iota
	kindNotFound
	kindInvalid
)

// View is a read-only, non-owning view over a byte range.
//
// A View never owns the memory it points to: it borrows the lifetime of the
// caller's buffer. The zero value is a valid, empty view.
//
// Views are small values meant to be passed and returned by value. No method
// modifies the receiver or the bytes it refers to.
type View struct {
	b    []byte
	kind viewKind
}

var (
	// Empty is the canonical valid, zero-length view.
	Empty = View{}

	// NotFound is returned by SplitAtByte and SplitNotFunc when the subject has
	// no split point. It is a valid, zero-length view that reports IsNotFound.
	NotFound = View{kind: kindNotFound}

	// Invalid signals malformed input or an operation applied to an Invalid
	// view. Its Len is InvalidLen.
	Invalid = View{kind: kindInvalid}
)

// FromBuffer creates a view over the first n bytes of buf.
//
// This is the pointer-and-length constructor. The buffer is borrowed, not
// copied.
//
// Parameters:
//   - buf: Caller-owned buffer
//   - n: Number of bytes to view
//
// Returns:
//   - View: Invalid if n is negative or exceeds len(buf) (this includes a nil
//     buffer with n > 0), Empty if buf is nil and n is 0, otherwise a view
//     over exactly buf[:n]
func FromBuffer(buf []byte, n int) View {
	if n < 0 || n > len(buf) {
		return Invalid
	}
	if buf == nil {
		return Empty
	}

	return View{b: buf[:n:n]}
}

// FromBytes creates a view over all of b.
func FromBytes(b []byte) View {
	return FromBuffer(b, len(b))
}

// FromString creates a view over the bytes of s without copying.
//
// The returned view shares memory with s; its Bytes must not be modified.
func FromString(s string) View {
	if len(s) == 0 {
		return Empty
	}

	return View{b: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// FromCString creates a view over a NUL-terminated string stored in b.
//
// The view ends before the first NUL byte, or at the end of b when no NUL is
// present. A nil buffer yields Empty.
func FromCString(b []byte) View {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}

	return FromBytes(b)
}

// IsValid reports whether v is anything other than Invalid.
//
// NotFound and Empty are both valid.
func (v View) IsValid() bool {
	return v.kind != kindInvalid
}

// IsNotFound reports whether v is the NotFound sentinel.
func (v View) IsNotFound() bool {
	return v.kind == kindNotFound
}

// Len returns the number of bytes in v, or InvalidLen if v is Invalid.
func (v View) Len() int {
	if v.kind == kindInvalid {
		return InvalidLen
	}

	return len(v.b)
}

// IsEmpty reports whether v is a valid, zero-length view.
// Invalid is never empty.
func (v View) IsEmpty() bool {
	return v.kind != kindInvalid && len(v.b) == 0
}

// State returns the state of v.
//
// NotFound is produced only by SplitAtByte and SplitNotFunc. Operations that
// return their input unchanged (trimming a zero-length view, Find with an
// empty needle, SplitFunc's before half) carry it through; operations that
// build a new view (Slice, the other searches) turn it into Empty.
func (v View) State() State {
	switch {
	case v.kind == kindInvalid:
		return StateInvalid
	case v.kind == kindNotFound:
		return StateNotFound
	case len(v.b) == 0:
		return StateEmpty
	default:
		return StateValid
	}
}

// Bytes returns the viewed bytes.
//
// It returns nil for Empty, NotFound and Invalid views alike, so a nil result
// must not be used to tell them apart. The returned slice aliases the caller's
// buffer and must be treated as read-only.
func (v View) Bytes() []byte {
	if v.kind == kindInvalid || len(v.b) == 0 {
		return nil
	}

	return v.b
}

// At returns the byte at index i.
// The second return value is false if v is Invalid or i is out of range.
func (v View) At(i int) (byte, bool) {
	if v.kind == kindInvalid || i < 0 || i >= len(v.b) {
		return 0, false
	}

	return v.b[i], true
}

// String returns a copy of the viewed bytes as a string.
//
// Unlike every other method, String allocates. It exists for fmt and
// debugging; Invalid renders as "<invalid>" and NotFound as "<not found>".
func (v View) String() string {
	switch v.kind {
	case kindInvalid:
		return "<invalid>"
	case kindNotFound:
		return "<not found>"
	default:
		return string(v.b)
	}
}

// Hash returns the xxHash64 of the viewed bytes.
//
// Views with equal content hash equally regardless of the buffer they point
// into. Invalid hashes to 0.
func (v View) Hash() uint64 {
	if v.kind == kindInvalid {
		return 0
	}

	return hash.Sum64(v.b)
}
