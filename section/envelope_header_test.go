package section

import (
	"testing"

	"github.com/arloliu/mapitem/errs"
	"github.com/arloliu/mapitem/format"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeHeader_RoundTrip(t *testing.T) {
	h := NewEnvelopeHeader(format.CompressionZstd, 123456, 0x0123456789ABCDEF)
	data := h.Bytes()

	require.Len(t, data, EnvelopeHeaderSize)
	require.Equal(t, []byte("MITM"), data[:4])
	require.True(t, HasEnvelopeMagic(data))

	var parsed EnvelopeHeader
	require.NoError(t, parsed.Parse(data))
	require.Equal(t, h, parsed)
}

func TestEnvelopeHeader_Invalid(t *testing.T) {
	valid := NewEnvelopeHeader(format.CompressionS2, 10, 1)

	var h EnvelopeHeader
	require.ErrorIs(t, h.Parse(valid.Bytes()[:EnvelopeHeaderSize-1]), errs.ErrInvalidHeaderSize)

	data := valid.Bytes()
	data[0] = 'X'
	require.ErrorIs(t, h.Parse(data), errs.ErrInvalidMagic)
	require.False(t, HasEnvelopeMagic(data))

	data = valid.Bytes()
	data[5] = 2
	require.ErrorIs(t, h.Parse(data), errs.ErrInvalidMagic)

	data = valid.Bytes()
	data[7] = 1
	require.ErrorIs(t, h.Parse(data), errs.ErrInvalidMagic)

	data = valid.Bytes()
	data[4] = 0x7F
	require.ErrorIs(t, h.Parse(data), errs.ErrUnsupportedCompression)
}
