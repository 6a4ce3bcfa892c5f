package strview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScenario_SplitKeyValue(t *testing.T) {
	before, after := FromString("key=value").SplitAtByte('=')
	requireView(t, "key", before)
	requireView(t, "=value", after)
}

func TestScenario_SplitNoDelimiter(t *testing.T) {
	before, after := FromString("no delimiter").SplitAtByte('=')
	requireNotFound(t, before)
	requireNotFound(t, after)
}

func TestScenario_SliceFromEnd(t *testing.T) {
	requireView(t, "gh", FromString("abcdefgh").Slice(-2, End))
}

func TestScenario_FindSubstringSuffix(t *testing.T) {
	requireView(t, "world world", FromString("hello world world").Find(FromString("world")))
}

func TestScenario_AppendHelloWorld(t *testing.T) {
	buf := make([]byte, 100)
	origin := NewSegment(buf)

	cursor := origin.Append(FromString("hello"))
	cursor = cursor.Append(FromString(" world"))
	cursor = cursor.Append(FromString("!"))

	require.Equal(t, 88, cursor.Len())
	requireView(t, "hello world!", origin.Filled(cursor))
}

func TestScenario_CopyTruncates(t *testing.T) {
	buf := make([]byte, 3)
	got := NewSegment(buf).Copy(FromString("too_long"))
	requireView(t, "too", got)
	require.Equal(t, 3, got.Len())
}

func TestScenario_ParseHeaderLine(t *testing.T) {
	line := FromString("  Content-Type :  text/plain \r\n")

	name, rest := line.TrimLeft(IsSpace).SplitAtByte(':')
	require.False(t, name.IsNotFound())
	name = name.TrimRight(IsSpace)
	value := rest.Slice(1, End).Trim(IsSpace)

	require.True(t, name.EqualFold(FromString("content-type")))
	requireView(t, "text/plain", value)
}
