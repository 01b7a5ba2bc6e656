package bitcursor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadBitsMSBFirst(t *testing.T) {
	// 0xFF 0xF1 -> 12-bit syncword 0xFFF, then 4 bits 0x1
	c := NewReader([]byte{0xFF, 0xF1})
	v, err := c.ReadBits(12)
	require.NoError(t, err)
	require.Equal(t, uint64(0xFFF), v)

	v, err = c.ReadBits(4)
	require.NoError(t, err)
	require.Equal(t, uint64(0x1), v)
	require.True(t, c.Eos())
}

func TestReadBitsSignedExtends(t *testing.T) {
	// 5-bit value 0b11111 == -1 when interpreted as signed
	c := NewReader([]byte{0xF8})
	v, err := c.ReadBitsSigned(5)
	require.NoError(t, err)
	require.Equal(t, int64(-1), v)
}

func TestPeekBitsDoesNotAdvance(t *testing.T) {
	c := NewReader([]byte{0xAB, 0xCD})
	peeked, err := c.PeekBits(8)
	require.NoError(t, err)
	require.Equal(t, uint64(0xAB), peeked)

	read, err := c.ReadBits(8)
	require.NoError(t, err)
	require.Equal(t, peeked, read)
}

func TestReadBitsEndOfStream(t *testing.T) {
	c := NewReader([]byte{0xFF})
	_, err := c.ReadBits(16)
	require.ErrorIs(t, err, ErrEndOfStream)
}

func TestReadTrailingBitsRejectsNonzero(t *testing.T) {
	c := NewReader([]byte{0b11100000})
	_, err := c.ReadBits(2)
	require.NoError(t, err)
	err = c.ReadTrailingBits()
	require.ErrorIs(t, err, ErrBadAlignment)
}

func TestWriteBitsRoundTrip(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteBits(0xFFF, 12))
	require.NoError(t, w.WriteBits(0x1, 4))
	require.NoError(t, w.WriteTrailingBits())

	buf, err := w.AcquireBuffer()
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF, 0xF1}, buf)
}

func TestWriteBitsGrowsDynamicBuffer(t *testing.T) {
	w := NewWriter()
	for i := 0; i < 300; i++ {
		require.NoError(t, w.WriteBits(uint64(i%2), 1))
	}
	require.NoError(t, w.WriteTrailingBits())
	buf, err := w.AcquireBuffer()
	require.NoError(t, err)
	require.Equal(t, 38, len(buf))
}

func TestAcquireBufferRequiresByteAlignment(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteBits(0x1, 3))
	_, err := w.AcquireBuffer()
	require.ErrorIs(t, err, ErrNotByteAligned)
}

func TestReadRemainingRawBytesRequiresExactMatch(t *testing.T) {
	c := NewReader([]byte{0x01, 0x02, 0x03})
	_, err := c.ReadRemainingRawBytes(2)
	require.ErrorIs(t, err, ErrRawLengthMismatch)

	b, err := c.ReadRemainingRawBytes(3)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, b)
}

func TestWriteRawBytesRequiresAlignment(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteBits(1, 1))
	err := w.WriteRawBytes([]byte{0xAA})
	require.ErrorIs(t, err, ErrNotByteAligned)
}

func TestEosAccountsForCachedBits(t *testing.T) {
	c := NewReader([]byte{0xFF})
	require.False(t, c.Eos())
	_, err := c.ReadBits(8)
	require.NoError(t, err)
	require.True(t, c.Eos())
}
