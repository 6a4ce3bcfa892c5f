package strview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitAtByte(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		before, after := FromString("key=value").SplitAtByte('=')
		requireView(t, "key", before)
		requireView(t, "=value", after)
	})

	t.Run("first of many", func(t *testing.T) {
		before, after := FromString("a=b=c").SplitAtByte('=')
		requireView(t, "a", before)
		requireView(t, "=b=c", after)
	})

	t.Run("leading delimiter", func(t *testing.T) {
		before, after := FromString("=value").SplitAtByte('=')
		requireView(t, "", before)
		requireView(t, "=value", after)
	})

	t.Run("only delimiter", func(t *testing.T) {
		before, after := FromString("=").SplitAtByte('=')
		requireView(t, "", before)
		requireView(t, "=", after)
	})

	t.Run("trailing delimiter", func(t *testing.T) {
		before, after := FromString("key=").SplitAtByte('=')
		requireView(t, "key", before)
		requireView(t, "=", after)
	})

	t.Run("not found", func(t *testing.T) {
		before, after := FromString("no delimiter").SplitAtByte('=')
		requireNotFound(t, before)
		requireNotFound(t, after)
	})

	t.Run("single byte not found", func(t *testing.T) {
		before, after := FromString("x").SplitAtByte('=')
		requireNotFound(t, before)
		requireNotFound(t, after)
	})

	t.Run("empty", func(t *testing.T) {
		before, after := Empty.SplitAtByte('=')
		requireNotFound(t, before)
		requireNotFound(t, after)
	})

	t.Run("invalid", func(t *testing.T) {
		before, after := Invalid.SplitAtByte('=')
		requireInvalid(t, before)
		requireInvalid(t, after)
	})

	t.Run("before only", func(t *testing.T) {
		before, _ := FromString("k:v").SplitAtByte(':')
		requireView(t, "k", before)
	})
}

func TestSplitFunc(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		before, after := FromString("abc123").SplitFunc(IsDigit)
		requireView(t, "abc", before)
		requireView(t, "123", after)
	})

	t.Run("match at start", func(t *testing.T) {
		before, after := FromString("1abc").SplitFunc(IsDigit)
		requireView(t, "", before)
		requireView(t, "1abc", after)
	})

	t.Run("match at end", func(t *testing.T) {
		before, after := FromString("abc1").SplitFunc(IsDigit)
		requireView(t, "abc", before)
		requireView(t, "1", after)
	})

	t.Run("not found returns whole subject", func(t *testing.T) {
		buf := []byte("abcdef")
		s := FromBytes(buf)
		before, after := s.SplitFunc(IsDigit)
		requireView(t, "abcdef", before)
		require.Equal(t, StateEmpty, after.State(), "not NotFound")
		require.False(t, after.IsNotFound())

		// after sits at the end of the subject: nothing past it is reachable
		require.Equal(t, 0, cap(after.b))
	})

	t.Run("empty", func(t *testing.T) {
		before, after := Empty.SplitFunc(IsDigit)
		require.Equal(t, StateEmpty, before.State())
		require.Equal(t, StateEmpty, after.State())
	})

	t.Run("nil predicate", func(t *testing.T) {
		before, after := FromString("abc").SplitFunc(nil)
		requireInvalid(t, before)
		requireInvalid(t, after)
	})

	t.Run("invalid", func(t *testing.T) {
		before, after := Invalid.SplitFunc(IsDigit)
		requireInvalid(t, before)
		requireInvalid(t, after)
	})
}

func TestSplitNotFunc(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		before, after := FromString("123abc").SplitNotFunc(IsDigit)
		requireView(t, "123", before)
		requireView(t, "abc", after)
	})

	t.Run("first byte does not match", func(t *testing.T) {
		before, after := FromString("abc").SplitNotFunc(IsDigit)
		requireView(t, "", before)
		requireView(t, "abc", after)
	})

	t.Run("last byte does not match", func(t *testing.T) {
		before, after := FromString("123a").SplitNotFunc(IsDigit)
		requireView(t, "123", before)
		requireView(t, "a", after)
	})

	t.Run("all match", func(t *testing.T) {
		before, after := FromString("12345").SplitNotFunc(IsDigit)
		requireNotFound(t, before)
		requireNotFound(t, after)
	})

	t.Run("empty", func(t *testing.T) {
		before, after := Empty.SplitNotFunc(IsDigit)
		requireNotFound(t, before)
		requireNotFound(t, after)
	})

	t.Run("nil predicate", func(t *testing.T) {
		before, after := FromString("abc").SplitNotFunc(nil)
		requireInvalid(t, before)
		requireInvalid(t, after)
	})

	t.Run("invalid", func(t *testing.T) {
		before, after := Invalid.SplitNotFunc(IsDigit)
		requireInvalid(t, before)
		requireInvalid(t, after)
	})
}

func TestSplit_BeforeAfterReassemble(t *testing.T) {
	subjects := []string{"key=value", "=x", "x=", "a=b=c"}
	for _, s := range subjects {
		v := FromString(s)
		before, after := v.SplitAtByte('=')
		require.Equal(t, v.Len(), before.Len()+after.Len())
		require.True(t, v.HasPrefix(before))
		require.True(t, v.HasSuffix(after))
	}
}

func TestCut(t *testing.T) {
	before, after, found := FromString("Host: example.com").Cut(FromString(": "))
	require.True(t, found)
	requireView(t, "Host", before)
	requireView(t, "example.com", after)

	before, after, found = FromString("no-sep").Cut(FromString(": "))
	require.False(t, found)
	requireView(t, "no-sep", before)
	require.Equal(t, StateEmpty, after.State())

	before, after, found = FromString("abc").Cut(Empty)
	require.True(t, found)
	requireView(t, "", before)
	requireView(t, "abc", after)

	before, after, found = Invalid.Cut(FromString(":"))
	require.False(t, found)
	requireInvalid(t, before)
	requireInvalid(t, after)

	_, _, found = FromString("a:b").Cut(Invalid)
	require.False(t, found)
}

func TestTokens(t *testing.T) {
	collect := func(v View, p Predicate) []string {
		var out []string
		for tok := range v.Tokens(p) {
			out = append(out, tok.String())
		}

		return out
	}

	require.Equal(t, []string{"GET", "/index", "HTTP/1.1"}, collect(FromString("  GET /index  HTTP/1.1\r\n"), IsSpace))
	require.Equal(t, []string{"a", "b", "c"}, collect(FromString("a,b,,c,"), ByteIs(',')))
	require.Equal(t, []string{"single"}, collect(FromString("single"), IsSpace))
	require.Nil(t, collect(FromString("   "), IsSpace))
	require.Nil(t, collect(Empty, IsSpace))
	require.Nil(t, collect(Invalid, IsSpace))
	require.Nil(t, collect(FromString("a b"), nil))

	// early break
	count := 0
	for range FromString("a b c d").Tokens(IsSpace) {
		count++
		if count == 2 {
			break
		}
	}
	require.Equal(t, 2, count)
}
