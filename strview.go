// Package strview provides zero-allocation, byte-oriented string views over
// caller-owned memory.
//
// Strview is designed for firmware-style code paths where every buffer is
// allocated up front and string handling must never touch the heap. It offers
// two value types:
//
//   - View: a read-only, non-owning view over a borrowed byte range
//   - Segment: the remaining writable capacity of a caller-owned buffer
//
// Every operation takes views by value and returns new views. Nothing in this
// package allocates, copies implicitly, or retains references beyond the
// returned values.
//
// # Core Features
//
//   - Tri-state results (Invalid, NotFound, Empty) instead of errors or panics
//   - Comparison, prefix/suffix and ASCII case-folding tests
//   - Byte, predicate and substring search returning suffix views
//   - Python-style slicing with negative indices and full index clamping
//   - Predicate-driven trimming, splitting and tokenizing
//   - Bounded copy and the append cursor pattern over fixed-size buffers
//   - xxHash64 fingerprints for allocation-free deduplication
//
// # Basic Usage
//
// Parsing a key/value pair:
//
//	import "github.com/arloliu/strview"
//
//	line := strview.FromString("  timeout = 30  ")
//	key, rest := line.Trim(strview.IsSpace).SplitAtByte('=')
//	if key.IsNotFound() {
//	    return // no '=' in line
//	}
//	key = key.TrimRight(strview.IsSpace)          // "timeout"
//	value := rest.Slice(1, strview.End).Trim(strview.IsSpace) // "30"
//
// Building output in a fixed buffer:
//
//	var buf [64]byte
//	origin := strview.NewSegment(buf[:])
//	cursor := origin.AppendString("hello")
//	cursor = cursor.AppendByte(' ')
//	cursor = cursor.Append(strview.FromString("world"))
//	msg := origin.Filled(cursor) // "hello world", cursor.Len() == 53
//
// # Result States
//
// Operations never panic on bad input. Instead they return one of:
//
//   - Invalid: malformed input (an out-of-range buffer length) or an operation
//     applied to an Invalid view. Invalid propagates through every operation.
//   - NotFound: a well-formed split found no split point. Operations that
//     return their input unchanged pass it through; the rest yield Empty.
//   - Empty: a successful, zero-length result. Search functions report
//     "no match" as Empty.
//
// Use IsValid, IsNotFound, IsEmpty or State to tell them apart; never rely on
// Bytes() being nil.
//
// # Memory Model
//
// A View borrows the lifetime of the buffer it points into. Mutating that
// buffer while a view over it is in use is the caller's responsibility, much
// like iterator invalidation. Views and segments carry no synchronization.
//
// # Package Structure
//
// The encoding package writes length-prefixed strings and fixed-width
// integers through a Segment and reads them back from a View. The compress
// package compresses a View into a caller-owned Segment.
package strview

import "math"

const (
	// InvalidLen is the length reported by an Invalid view. It is an
	// out-of-band value and never a real length.
	InvalidLen = math.MaxInt

	// End can be passed as the end index of Slice to mean "through the end of
	// the view". Any index past the view's length clamps the same way.
	End = math.MaxInt
)
