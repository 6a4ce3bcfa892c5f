package strview

import "bytes"

// Equal reports whether a and b have the same length and content.
//
// Invalid equals only Invalid. Any two zero-length valid views are equal, so
// Equal(NotFound, Empty) is true; use IsNotFound to check a split outcome.
func Equal(a, b View) bool {
	aValid, bValid := a.IsValid(), b.IsValid()
	if !aValid || !bValid {
		return aValid == bValid
	}

	return bytes.Equal(a.b, b.b)
}

// Equal is the method form of Equal.
func (v View) Equal(o View) bool {
	return Equal(v, o)
}

// Compare orders two views.
//
// Invalid compares equal to Invalid and less than every valid view. Valid
// views are ordered by unsigned byte value; a view that is a proper prefix of
// another sorts first.
//
// Returns:
//   - int: -1 if a < b, 0 if a == b, +1 if a > b
func Compare(a, b View) int {
	aValid, bValid := a.IsValid(), b.IsValid()
	switch {
	case !aValid && !bValid:
		return 0
	case !aValid:
		return -1
	case !bValid:
		return 1
	}

	return bytes.Compare(a.b, b.b)
}

// Compare is the method form of Compare.
func (v View) Compare(o View) int {
	return Compare(v, o)
}

// HasPrefix reports whether v begins with prefix.
//
// It is false if either view is Invalid, true for an empty prefix, and false
// when prefix is longer than v.
func (v View) HasPrefix(prefix View) bool {
	if !v.IsValid() || !prefix.IsValid() {
		return false
	}

	return bytes.HasPrefix(v.b, prefix.b)
}

// HasSuffix reports whether v ends with suffix.
//
// It is false if either view is Invalid, true for an empty suffix, and false
// when suffix is longer than v.
func (v View) HasSuffix(suffix View) bool {
	if !v.IsValid() || !suffix.IsValid() {
		return false
	}

	return bytes.HasSuffix(v.b, suffix.b)
}

// EqualFold reports whether v and o are equal under ASCII case folding.
// Bytes outside A-Z/a-z must match exactly. Invalid rules follow Equal.
func (v View) EqualFold(o View) bool {
	vValid, oValid := v.IsValid(), o.IsValid()
	if !vValid || !oValid {
		return vValid == oValid
	}
	if len(v.b) != len(o.b) {
		return false
	}

	for i := range v.b {
		if toLowerASCII(v.b[i]) != toLowerASCII(o.b[i]) {
			return false
		}
	}

	return true
}

func toLowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}
