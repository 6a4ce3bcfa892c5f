package strview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindByte(t *testing.T) {
	s := FromString("hello world")

	requireView(t, "o world", s.FindByte('o'))
	requireView(t, "hello world", s.FindByte('h'))
	requireView(t, "d", s.FindByte('d'))
	require.Equal(t, StateEmpty, s.FindByte('z').State())
	require.Equal(t, StateEmpty, Empty.FindByte('a').State())
	require.Equal(t, StateEmpty, NotFound.FindByte('a').State())
	requireInvalid(t, Invalid.FindByte('a'))
}

func TestRFindByte(t *testing.T) {
	s := FromString("hello world")

	requireView(t, "orld", s.RFindByte('o'))
	requireView(t, "hello world", s.RFindByte('h'))
	requireView(t, "d", s.RFindByte('d'))
	require.Equal(t, StateEmpty, s.RFindByte('z').State())
	require.Equal(t, StateEmpty, Empty.RFindByte('a').State())
	requireInvalid(t, Invalid.RFindByte('a'))
}

func TestFindFunc(t *testing.T) {
	s := FromString("abc123def")

	requireView(t, "123def", s.FindFunc(IsDigit))
	requireView(t, "abc123def", s.FindFunc(IsAlpha))
	require.Equal(t, StateEmpty, s.FindFunc(IsSpace).State())
	require.Equal(t, StateEmpty, s.FindFunc(nil).State(), "nil predicate never matches")
	require.Equal(t, StateEmpty, Empty.FindFunc(IsDigit).State())
	requireInvalid(t, Invalid.FindFunc(IsDigit))
	requireInvalid(t, Invalid.FindFunc(nil))
}

func TestRFindFunc(t *testing.T) {
	s := FromString("abc123def")

	requireView(t, "3def", s.RFindFunc(IsDigit))
	requireView(t, "f", s.RFindFunc(IsAlpha))
	require.Equal(t, StateEmpty, s.RFindFunc(IsSpace).State())
	require.Equal(t, StateEmpty, s.RFindFunc(nil).State())
	require.Equal(t, StateEmpty, Empty.RFindFunc(IsDigit).State())
	requireInvalid(t, Invalid.RFindFunc(IsDigit))
}

func TestFindFirstNot(t *testing.T) {
	s := FromString("   hello ")

	requireView(t, "hello ", s.FindFirstNot(IsSpace))
	requireView(t, "   hello ", s.FindFirstNot(IsDigit))
	requireView(t, "   hello ", s.FindFirstNot(nil))
	require.Equal(t, StateEmpty, FromString("   ").FindFirstNot(IsSpace).State())
	require.Equal(t, StateEmpty, Empty.FindFirstNot(IsSpace).State())
	require.Equal(t, StateEmpty, Empty.FindFirstNot(nil).State())
	requireInvalid(t, Invalid.FindFirstNot(IsSpace))
	requireInvalid(t, Invalid.FindFirstNot(nil))
}

func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     string
		found    bool
	}{
		{"first match to end", "hello world world", "world", "world world", true},
		{"match at start", "hello", "he", "hello", true},
		{"match at end", "hello", "lo", "lo", true},
		{"whole string", "hello", "hello", "hello", true},
		{"empty needle", "hello", "", "hello", true},
		{"empty both", "", "", "", true},
		{"no match", "hello", "xyz", "", false},
		{"needle longer", "hi", "hello", "", false},
		{"empty haystack", "", "a", "", false},
		{"partial overlap", "aaab", "aab", "aab", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromString(tt.haystack).Find(FromString(tt.needle))
			requireView(t, tt.want, got)
			if !tt.found {
				require.Equal(t, StateEmpty, got.State())
			}
		})
	}

	requireInvalid(t, Invalid.Find(FromString("a")))
	requireInvalid(t, FromString("a").Find(Invalid))
}

func TestIndexAndContains(t *testing.T) {
	s := FromString("key=value")

	require.Equal(t, 3, s.Index(FromString("=")))
	require.Equal(t, 0, s.Index(Empty))
	require.Equal(t, -1, s.Index(FromString("==")))
	require.Equal(t, -1, Invalid.Index(Empty))
	require.Equal(t, -1, s.Index(Invalid))

	require.Equal(t, 4, s.IndexByte('v'))
	require.Equal(t, -1, s.IndexByte('x'))
	require.Equal(t, -1, Invalid.IndexByte('k'))

	require.True(t, s.Contains(FromString("val")))
	require.False(t, s.Contains(FromString("xyz")))
	require.False(t, Invalid.Contains(Empty))
}

func TestFind_ResultAliasesSubject(t *testing.T) {
	buf := []byte("abc=def")
	found := FromBytes(buf).FindByte('=')
	buf[4] = 'X'
	requireView(t, "=Xef", found)
}
