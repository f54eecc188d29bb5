package utf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubstringTagged(t *testing.T) {
	s := "head <beg>body<end> tail"

	sub, ok := SubstringTagged(s, "<beg>", "<end>")
	require.True(t, ok)
	require.Equal(t, "<beg>body<end>", sub)

	sub, ok = SubstringTagged(s, "", "<end>")
	require.True(t, ok)
	require.Equal(t, "head <beg>body<end>", sub)

	sub, ok = SubstringTagged(s, "<beg>", "")
	require.True(t, ok)
	require.Equal(t, "<beg>body<end> tail", sub)

	_, ok = SubstringTagged(s, "<nope>", "<end>")
	require.False(t, ok)
	_, ok = SubstringTagged(s, "<beg>", "<nope>")
	require.False(t, ok)
}

func TestReplaceRange(t *testing.T) {
	require.Equal(t, "aXYd", ReplaceRange("abcd", 1, 2, "XY"))
	require.Equal(t, "abcd", ReplaceRange("abcd", 1, 0, "XY"))
	require.Equal(t, "abcd", ReplaceRange("abcd", 2, 5, "XY"))
	require.Equal(t, "Ycd", ReplaceRange("abcd", 0, 2, "Y"))
}

func TestReplaceRangeTagged(t *testing.T) {
	s := "config {\nold\n} rest"
	other := "ignored [new body] ignored"

	got := ReplaceRangeTagged(s, "{", "}", other, "[", "]", false)
	require.Equal(t, "config {[new body]} rest", got)

	got = ReplaceRangeTagged(s, "{", "}", other, "[", "]", true)
	require.Equal(t, "config {\n[new body]\n} rest", got)

	// Missing tags leave the string untouched.
	require.Equal(t, s, ReplaceRangeTagged(s, "<", ">", other, "[", "]", false))
	require.Equal(t, s, ReplaceRangeTagged(s, "{", "}", other, "<", ">", false))
}

func TestTrimString(t *testing.T) {
	require.Equal(t, "abc", TrimString("  abc\t\n"))
	require.Equal(t, "abc", TrimString("abc"))
	require.Equal(t, "", TrimString("   "))
	require.Equal(t, "", TrimString(""))
	require.Equal(t, "x", TrimString(" 　x "))
	require.Equal(t, "a b", TrimString(" a b "))
}
