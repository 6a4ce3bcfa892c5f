package strview

// Segment is the remaining writable capacity of a caller-owned buffer.
//
// A Segment is usable when it refers to a buffer; the zero value is unusable.
// A usable segment with zero capacity is still usable but accepts no bytes.
//
// Write operations return a new Segment describing the capacity left after the
// write, which lets callers chain writes without re-checking bounds:
//
//	origin := strview.NewSegment(buf)
//	cursor := origin.Append(a)
//	cursor = cursor.Append(b)
//	written := origin.Filled(cursor)
//
// Writes never touch memory outside the segment's Len bytes.
type Segment struct {
	b []byte
}

// NewSegment creates a segment over all of buf. A nil buf yields an unusable
// segment.
func NewSegment(buf []byte) Segment {
	if buf == nil {
		return Segment{}
	}

	return Segment{b: buf[:len(buf):len(buf)]}
}

// SegmentOf creates a segment over the first capacity bytes of buf.
//
// This is the pointer-and-capacity constructor. It returns an unusable
// segment if buf is nil, or if capacity is negative or exceeds len(buf).
func SegmentOf(buf []byte, capacity int) Segment {
	if buf == nil || capacity < 0 || capacity > len(buf) {
		return Segment{}
	}

	return Segment{b: buf[:capacity:capacity]}
}

// IsUsable reports whether s refers to a buffer.
func (s Segment) IsUsable() bool {
	return s.b != nil
}

// Len returns the remaining capacity of s in bytes.
func (s Segment) Len() int {
	return len(s.b)
}

// Bytes returns the writable region of s, or nil if s is unusable.
func (s Segment) Bytes() []byte {
	return s.b
}

// Copy copies src to the start of s and returns a view over exactly the bytes
// written.
//
// The number of bytes copied is min(src.Len(), s.Len()); a longer src is
// truncated silently. Overlapping regions are handled like the built-in copy.
//
// Returns:
//   - View: Invalid if s is unusable or src is Invalid, otherwise a view of the
//     copied bytes inside s
func (s Segment) Copy(src View) View {
	if s.b == nil || !src.IsValid() {
		return Invalid
	}

	n := copy(s.b, src.b)

	return View{b: s.b[:n:n]}
}

// Append writes src at the start of s and returns the segment left after it.
//
// This is the cursor primitive. It writes min(src.Len(), s.Len()) bytes and
// never reports truncation; compare the Len of the input and output segments
// if that matters.
//
// Returns:
//   - Segment: s unchanged if s is unusable or src is Invalid or empty,
//     otherwise the unwritten tail of s
func (s Segment) Append(src View) Segment {
	if s.b == nil || !src.IsValid() || len(src.b) == 0 {
		return s
	}

	n := copy(s.b, src.b)

	return Segment{b: s.b[n:]}
}

// AppendString is Append for a string source. It does not allocate.
func (s Segment) AppendString(str string) Segment {
	if s.b == nil || len(str) == 0 {
		return s
	}

	n := copy(s.b, str)

	return Segment{b: s.b[n:]}
}

// AppendByte writes a single byte. A full or unusable segment is returned
// unchanged.
func (s Segment) AppendByte(c byte) Segment {
	if len(s.b) == 0 {
		return s
	}

	s.b[0] = c

	return Segment{b: s.b[1:]}
}

// Advance returns the segment left after skipping n bytes, for callers that
// write into Bytes directly. n is clamped to [0, Len].
func (s Segment) Advance(n int) Segment {
	if s.b == nil || n <= 0 {
		return s
	}
	if n > len(s.b) {
		n = len(s.b)
	}

	return Segment{b: s.b[n:]}
}

// Filled returns a view over the bytes of s written before cursor, where
// cursor was obtained from s through Append-style calls.
//
// Returns Invalid if either segment is unusable, if cursor has more capacity
// than s, or if a non-exhausted cursor does not end where s ends (it belongs
// to another buffer). An exhausted cursor carries no position, so it is
// taken to mean all of s.
func (s Segment) Filled(cursor Segment) View {
	if s.b == nil || cursor.b == nil || len(cursor.b) > len(s.b) {
		return Invalid
	}
	if len(cursor.b) > 0 && &cursor.b[len(cursor.b)-1] != &s.b[len(s.b)-1] {
		return Invalid
	}

	n := len(s.b) - len(cursor.b)

	return View{b: s.b[:n:n]}
}
