package utf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var roundTripStrings = []string{
	"",
	"plain ascii",
	"café au lait",
	"中文文本",
	"mixed é 中 \U0001d11e \U0001f600 end",
	"\U0010fffd\U00010000�",
	"line1\nline2\r\nline3",
}

// utf8Via16 sends b through UTF-16 in the given byte order and back.
func utf8Via16(t *testing.T, b []byte, little bool) []byte {
	t.Helper()
	to16 := UTF8ToUTF16LE
	from16 := UTF16LEToUTF8
	if !little {
		to16 = UTF8ToUTF16BE
		from16 = UTF16BEToUTF8
	}
	n16, _, _ := UTF8ToUTF16Len(b, len(b), 0)
	u := make([]uint16, n16+1)
	n, consumed, err := to16(u, b, len(b), 0)
	require.NoError(t, err)
	require.Equal(t, len(b), consumed)
	out := make([]byte, len(b)+1)
	n8, _, err := from16(out, u, n, 0)
	require.NoError(t, err)
	return out[:n8]
}

func utf8Via32(t *testing.T, b []byte, little bool) []byte {
	t.Helper()
	to32 := UTF8ToUTF32LE
	from32 := UTF32LEToUTF8
	if !little {
		to32 = UTF8ToUTF32BE
		from32 = UTF32BEToUTF8
	}
	n32, _, _ := UTF8ToUTF32Len(b, len(b), 0)
	u := make([]uint32, n32+1)
	n, _, err := to32(u, b, len(b), 0)
	require.NoError(t, err)
	out := make([]byte, len(b)+1)
	n8, _, err := from32(out, u, n, 0)
	require.NoError(t, err)
	return out[:n8]
}

func TestRoundTripUTF8(t *testing.T) {
	for _, s := range roundTripStrings {
		b := []byte(s)
		require.Equal(t, b, utf8Via16(t, b, true), "via UTF-16LE: %q", s)
		require.Equal(t, b, utf8Via16(t, b, false), "via UTF-16BE: %q", s)
		require.Equal(t, b, utf8Via32(t, b, true), "via UTF-32LE: %q", s)
		require.Equal(t, b, utf8Via32(t, b, false), "via UTF-32BE: %q", s)
	}
}

// UTF-16 <-> UTF-32 in both byte orders, starting from UTF-16.
func TestRoundTripUTF16UTF32(t *testing.T) {
	for _, s := range roundTripStrings {
		b := []byte(s)
		n16, _, err := UTF8ToUTF16Len(b, len(b), 0)
		require.NoError(t, err)
		u16 := make([]uint16, n16+1)
		_, _, err = UTF8ToUTF16LE(u16, b, len(b), 0)
		require.NoError(t, err)
		u16 = u16[:n16]

		n32, _, err := UTF16LEToUTF32Len(u16, n16, 0)
		require.NoError(t, err)
		u32 := make([]uint32, n32+1)
		_, _, err = UTF16LEToUTF32LE(u32, u16, n16, 0)
		require.NoError(t, err)

		back := make([]uint16, n16+1)
		nb, _, err := UTF32LEToUTF16LE(back, u32, n32, 0)
		require.NoError(t, err)
		require.Equal(t, u16, back[:nb], "%q", s)
	}
}
