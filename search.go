package strview

import "bytes"

// All search functions share one contract:
//   - Invalid subject: Invalid
//   - empty subject or no match: Empty
//   - match at index i: the suffix of the subject starting at i

// suffix returns v from index i through the end.
func (v View) suffix(i int) View {
	return View{b: v.b[i:]}
}

// FindByte returns the suffix of v starting at the first occurrence of c.
func (v View) FindByte(c byte) View {
	if !v.IsValid() {
		return Invalid
	}

	i := bytes.IndexByte(v.b, c)
	if i < 0 {
		return Empty
	}

	return v.suffix(i)
}

// RFindByte returns the suffix of v starting at the last occurrence of c.
func (v View) RFindByte(c byte) View {
	if !v.IsValid() {
		return Invalid
	}

	i := bytes.LastIndexByte(v.b, c)
	if i < 0 {
		return Empty
	}

	return v.suffix(i)
}

// FindFunc returns the suffix of v starting at the first byte satisfying p.
// A nil predicate never matches.
func (v View) FindFunc(p Predicate) View {
	if !v.IsValid() {
		return Invalid
	}
	if p == nil {
		return Empty
	}

	for i, c := range v.b {
		if p(c) {
			return v.suffix(i)
		}
	}

	return Empty
}

// RFindFunc returns the suffix of v starting at the last byte satisfying p.
// A nil predicate never matches.
func (v View) RFindFunc(p Predicate) View {
	if !v.IsValid() {
		return Invalid
	}
	if p == nil {
		return Empty
	}

	for i := len(v.b) - 1; i >= 0; i-- {
		if p(v.b[i]) {
			return v.suffix(i)
		}
	}

	return Empty
}

// FindFirstNot returns the suffix of v starting at the first byte that does
// not satisfy p. It returns Empty when every byte satisfies p.
//
// A nil predicate matches nothing, so the first byte already qualifies and v
// is returned unchanged.
func (v View) FindFirstNot(p Predicate) View {
	if !v.IsValid() {
		return Invalid
	}
	if len(v.b) == 0 {
		return Empty
	}
	if p == nil {
		return v
	}

	for i, c := range v.b {
		if !p(c) {
			return v.suffix(i)
		}
	}

	return Empty
}

// Find returns the suffix of v starting at the first occurrence of needle.
//
// The result runs through the end of v, not just the needle-length window.
// An empty needle matches at position 0 and returns v unchanged, NotFound
// included. Either view
// being Invalid yields Invalid.
func (v View) Find(needle View) View {
	if !v.IsValid() || !needle.IsValid() {
		return Invalid
	}
	if len(needle.b) == 0 {
		return v
	}
	if len(needle.b) > len(v.b) {
		return Empty
	}

	i := bytes.Index(v.b, needle.b)
	if i < 0 {
		return Empty
	}

	return v.suffix(i)
}

// Index returns the index of the first occurrence of needle in v, or -1 if
// it is absent or either view is Invalid.
func (v View) Index(needle View) int {
	if !v.IsValid() || !needle.IsValid() {
		return -1
	}

	return bytes.Index(v.b, needle.b)
}

// IndexByte returns the index of the first occurrence of c in v, or -1.
func (v View) IndexByte(c byte) int {
	if !v.IsValid() {
		return -1
	}

	return bytes.IndexByte(v.b, c)
}

// Contains reports whether needle occurs in v.
func (v View) Contains(needle View) bool {
	return v.Index(needle) >= 0
}
