package strview

// Predicate tests a single byte.
//
// Context that a predicate needs is captured by the closure itself. A nil
// Predicate is accepted everywhere; each operation documents how it treats
// one.
type Predicate func(c byte) bool

// IsSpace reports whether c is ASCII whitespace: space, \t, \n, \v, \f or \r.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsUpper reports whether c is an ASCII upper-case letter.
func IsUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

// IsLower reports whether c is an ASCII lower-case letter.
func IsLower(c byte) bool {
	return 'a' <= c && c <= 'z'
}

// IsAlpha reports whether c is an ASCII letter.
func IsAlpha(c byte) bool {
	return IsUpper(c) || IsLower(c)
}

// IsAlnum reports whether c is an ASCII letter or digit.
func IsAlnum(c byte) bool {
	return IsAlpha(c) || IsDigit(c)
}

// IsPunct reports whether c is printable ASCII punctuation.
func IsPunct(c byte) bool {
	return ('!' <= c && c <= '/') ||
		(':' <= c && c <= '@') ||
		('[' <= c && c <= '`') ||
		('{' <= c && c <= '~')
}

// ByteIs returns a predicate matching exactly c.
func ByteIs(c byte) Predicate {
	return func(b byte) bool { return b == c }
}

// ByteIn returns a predicate matching any byte of set.
//
// The set is expanded into a 256-entry table once, when ByteIn is called, so
// build set predicates during initialization rather than on hot paths.
func ByteIn(set string) Predicate {
	var table [256]bool
	for i := 0; i < len(set); i++ {
		table[set[i]] = true
	}

	return func(c byte) bool { return table[c] }
}

// Not returns the negation of p. Not(nil) is nil.
func Not(p Predicate) Predicate {
	if p == nil {
		return nil
	}

	return func(c byte) bool { return !p(c) }
}
