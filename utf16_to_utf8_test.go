package utf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUTF16NEToUTF8(t *testing.T) {
	dst := make([]byte, len(sampleUTF8)+1)
	n, consumed, err := UTF16NEToUTF8(dst, sampleUTF16, len(sampleUTF16), 0)
	require.NoError(t, err)
	require.Equal(t, len(sampleUTF8), n)
	require.Equal(t, len(sampleUTF16), consumed)
	require.Equal(t, sampleUTF8, dst[:n])
	require.Equal(t, byte(0), dst[n])
}

func TestUTF16LEBEToUTF8(t *testing.T) {
	dst := make([]byte, len(sampleUTF8)+1)
	n, _, err := UTF16LEToUTF8(dst, mapLE16(sampleUTF16), len(sampleUTF16), 0)
	require.NoError(t, err)
	require.Equal(t, sampleUTF8, dst[:n])

	n, _, err = UTF16BEToUTF8(dst, mapBE16(sampleUTF16), len(sampleUTF16), 0)
	require.NoError(t, err)
	require.Equal(t, sampleUTF8, dst[:n])
}

func TestUTF16ToUTF8UnpairedSurrogate(t *testing.T) {
	src := []uint16{0xD834, 0x0041}

	n, consumed, err := UTF16NEToUTF8(make([]byte, 8), src, 2, ErrorOnInvalidCodePoint)
	require.ErrorIs(t, err, ErrCodePoint)
	require.Equal(t, 0, n)
	require.Equal(t, 0, consumed)

	// Replace policy: the lone high surrogate is replaced and the unit
	// after it decodes on its own.
	dst := make([]byte, 8)
	n, consumed, err = UTF16NEToUTF8(dst, src, 2, 0)
	require.NoError(t, err)
	require.Equal(t, []byte{0xEF, 0xBF, 0xBD, 0x41}, dst[:n])
	require.Equal(t, 2, consumed)

	// A lone low surrogate behaves the same way.
	n, _, err = UTF16NEToUTF8(dst, []uint16{0xDC00, 0x41}, 2, 0)
	require.NoError(t, err)
	require.Equal(t, []byte{0xEF, 0xBF, 0xBD, 0x41}, dst[:n])
}

func TestUTF16ToUTF8TruncatedPair(t *testing.T) {
	// High surrogate at the end of a bounded input.
	n, consumed, err := UTF16NEToUTF8(make([]byte, 8), []uint16{0x41, 0xD834}, 2, 0)
	require.ErrorIs(t, err, ErrInvalid)
	require.Equal(t, 1, n)
	require.Equal(t, 1, consumed)

	// High surrogate followed by the terminator.
	_, consumed, err = UTF16NEToUTF8(make([]byte, 8), []uint16{0xD834, 0}, NullTerminated, 0)
	require.ErrorIs(t, err, ErrInvalid)
	require.Equal(t, 0, consumed)
}

func TestUTF16ToUTF8BOMSniffing(t *testing.T) {
	// Little-endian mark selects little-endian units.
	src := []uint16{le16(0xFEFF), le16(0x0041)}
	dst := make([]byte, 4)
	n, consumed, err := UTF16ToUTF8(dst, src, len(src), 0)
	require.NoError(t, err)
	require.Equal(t, []byte{0x41}, dst[:n])
	require.Equal(t, 2, consumed, "consumed includes the byte order mark")

	// Big-endian mark selects big-endian units.
	src = []uint16{be16(0xFEFF), be16(0x0041)}
	n, consumed, err = UTF16ToUTF8(dst, src, len(src), 0)
	require.NoError(t, err)
	require.Equal(t, []byte{0x41}, dst[:n])
	require.Equal(t, 2, consumed)

	// No mark: native order.
	n, consumed, err = UTF16ToUTF8(dst, []uint16{0x0041}, 1, 0)
	require.NoError(t, err)
	require.Equal(t, []byte{0x41}, dst[:n])
	require.Equal(t, 1, consumed)

	// ForbidBOM rejects the mark before anything is consumed.
	_, consumed, err = UTF16ToUTF8(dst, []uint16{le16(0xFEFF), le16(0x0041)}, 2, ForbidBOM)
	require.ErrorIs(t, err, ErrBOM)
	require.Equal(t, 0, consumed)
}

// The fixed-endian routines skip a leading mark of either byte order
// without letting it pick the unit order.
func TestUTF16FixedEndianBOMSkip(t *testing.T) {
	src := append([]uint16{le16(0xFEFF)}, mapLE16([]uint16{0x0041})...)
	dst := make([]byte, 4)
	n, consumed, err := UTF16LEToUTF8(dst, src, len(src), 0)
	require.NoError(t, err)
	require.Equal(t, []byte{0x41}, dst[:n])
	require.Equal(t, 2, consumed)

	_, _, err = UTF16LEToUTF8(dst, src, len(src), ForbidBOM)
	require.ErrorIs(t, err, ErrBOM)
}

func TestUTF16ToUTF8Capacity(t *testing.T) {
	// U+4E2D needs three bytes; with the terminator reserved a four-byte
	// destination takes exactly one of them.
	dst := make([]byte, 4)
	n, consumed, err := UTF16NEToUTF8(dst, []uint16{0x4E2D, 0x4E2D}, 2, 0)
	require.ErrorIs(t, err, ErrNoSpace)
	require.Equal(t, 3, n)
	require.Equal(t, 1, consumed)
}
