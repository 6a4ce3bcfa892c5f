package strview

// Slice returns the sub-view of v between start (inclusive) and end
// (exclusive).
//
// Index normalization:
//  1. A negative index counts from the end: idx = len + idx
//  2. Both indices are then clamped to [0, len]; End clamps to len
//  3. If start >= end after clamping, the result is Empty
//
// The rule holds for every int, including values far outside [-len, len], so
// Slice never reads outside v and always returns 0 <= Len() <= v.Len().
//
// Examples:
//
//	FromString("abcdefgh").Slice(-2, End) // "gh"
//	FromString("abcdefgh").Slice(2, -2)   // "cdef"
//	FromString("abcdefgh").Slice(5, 3)    // Empty
//
// Returns Invalid if v is Invalid.
func (v View) Slice(start, end int) View {
	if !v.IsValid() {
		return Invalid
	}

	n := len(v.b)
	s, e := clampIndex(start, n), clampIndex(end, n)
	if s >= e {
		return Empty
	}

	return View{b: v.b[s:e:e]}
}

// clampIndex normalizes idx into [0, n]. n is never negative, so n+idx
// cannot overflow for a negative idx.
func clampIndex(idx, n int) int {
	if idx < 0 {
		idx += n
		if idx < 0 {
			return 0
		}
	}
	if idx > n {
		return n
	}

	return idx
}

// TrimLeft removes the longest prefix of bytes satisfying p.
//
// A nil predicate or an empty v returns v unchanged, so NotFound stays
// NotFound. If every byte satisfies p the result is Empty. Returns Invalid if
// v is Invalid.
func (v View) TrimLeft(p Predicate) View {
	if !v.IsValid() {
		return Invalid
	}
	if len(v.b) == 0 || p == nil {
		return v
	}

	i := 0
	for i < len(v.b) && p(v.b[i]) {
		i++
	}
	if i == len(v.b) {
		return Empty
	}

	return View{b: v.b[i:]}
}

// TrimRight removes the longest suffix of bytes satisfying p.
//
// A nil predicate or an empty v returns v unchanged, so NotFound stays
// NotFound. If every byte satisfies p the result is Empty. Returns Invalid if
// v is Invalid.
func (v View) TrimRight(p Predicate) View {
	if !v.IsValid() {
		return Invalid
	}
	if len(v.b) == 0 || p == nil {
		return v
	}

	j := len(v.b)
	for j > 0 && p(v.b[j-1]) {
		j--
	}
	if j == 0 {
		return Empty
	}

	return View{b: v.b[:j:j]}
}

// Trim removes both the longest prefix and the longest suffix of bytes
// satisfying p. Trim is idempotent: v.Trim(p).Trim(p) equals v.Trim(p).
func (v View) Trim(p Predicate) View {
	return v.TrimLeft(p).TrimRight(p)
}
