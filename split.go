package strview

import (
	"bytes"
	"iter"
)

// splitAt splits v so that before is v[:i] and after is v[i:]. The byte at i
// belongs to after.
func (v View) splitAt(i int) (before, after View) {
	return View{b: v.b[:i:i]}, View{b: v.b[i:]}
}

// SplitAtByte splits v at the first occurrence of delimiter.
//
// Outcomes:
//   - found at index i: before is v[:i], after is v[i:] and starts with the
//     delimiter itself
//   - not found (including an empty v): before and after are both NotFound
//   - v is Invalid: before and after are both Invalid
//
// Example:
//
//	key, rest := FromString("key=value").SplitAtByte('=') // "key", "=value"
func (v View) SplitAtByte(delimiter byte) (before, after View) {
	if !v.IsValid() {
		return Invalid, Invalid
	}

	i := bytes.IndexByte(v.b, delimiter)
	if i < 0 {
		return NotFound, NotFound
	}

	return v.splitAt(i)
}

// SplitFunc splits v at the first byte satisfying p.
//
// Outcomes:
//   - found at index i: before is v[:i], after is v[i:] and starts with the
//     matching byte
//   - not found: before is all of v and after is an empty view positioned at
//     the end of v; unlike SplitAtByte and SplitNotFunc this is not NotFound
//   - v is Invalid or p is nil: before and after are both Invalid
func (v View) SplitFunc(p Predicate) (before, after View) {
	if !v.IsValid() || p == nil {
		return Invalid, Invalid
	}

	for i, c := range v.b {
		if p(c) {
			return v.splitAt(i)
		}
	}

	return v, View{b: v.b[len(v.b):]}
}

// SplitNotFunc splits v at the first byte that does not satisfy p.
//
// Outcomes:
//   - found at index i: before is v[:i], after is v[i:] and starts with the
//     non-matching byte
//   - every byte satisfies p (including an empty v): before and after are both
//     NotFound
//   - v is Invalid or p is nil: before and after are both Invalid
func (v View) SplitNotFunc(p Predicate) (before, after View) {
	if !v.IsValid() || p == nil {
		return Invalid, Invalid
	}

	for i, c := range v.b {
		if !p(c) {
			return v.splitAt(i)
		}
	}

	return NotFound, NotFound
}

// Cut slices v around the first occurrence of sep.
//
// Unlike the Split family, after excludes the separator, matching bytes.Cut.
// If sep is absent, Cut returns v, Empty, false. If either view is Invalid,
// Cut returns Invalid, Invalid, false.
func (v View) Cut(sep View) (before, after View, found bool) {
	if !v.IsValid() || !sep.IsValid() {
		return Invalid, Invalid, false
	}

	i := bytes.Index(v.b, sep.b)
	if i < 0 {
		return v, Empty, false
	}
	end := i + len(sep.b)

	return View{b: v.b[:i:i]}, View{b: v.b[end:]}, true
}

// Tokens returns an iterator over the maximal runs of bytes in v that do not
// satisfy sep. Runs of separators are skipped, so no empty token is yielded.
//
// Example:
//
//	for tok := range FromString("  GET /index  HTTP/1.1").Tokens(IsSpace) {
//	    // "GET", "/index", "HTTP/1.1"
//	}
//
// Nothing is yielded if v is Invalid or sep is nil.
func (v View) Tokens(sep Predicate) iter.Seq[View] {
	return func(yield func(View) bool) {
		if !v.IsValid() || sep == nil {
			return
		}

		rest := v
		for {
			rest = rest.TrimLeft(sep)
			if rest.IsEmpty() {
				return
			}

			tok, after := rest.SplitFunc(sep)
			if !yield(tok) {
				return
			}
			rest = after
		}
	}
}
