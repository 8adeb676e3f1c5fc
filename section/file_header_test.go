package section

import (
	"testing"

	"github.com/arloliu/mapitem/errs"
	"github.com/arloliu/mapitem/token"
	"github.com/stretchr/testify/require"
)

func TestFileHeader_Bytes(t *testing.T) {
	h := FileHeader{
		CoreMapVersion: 900,
		GameID:         token.MustParse("eut2"),
		GameMapVersion: 3,
	}

	data := h.Bytes()
	require.Len(t, data, FileHeaderSize)
	require.Equal(t, []byte{0x84, 0x03, 0x00, 0x00}, data[0:4])
	require.Equal(t, h.GameID.Bytes(), data[4:12])
	require.Equal(t, []byte{0x03, 0x00, 0x00, 0x00}, data[12:16])
}

func TestFileHeader_Parse(t *testing.T) {
	t.Run("Valid header", func(t *testing.T) {
		original := FileHeader{CoreMapVersion: 901, GameID: token.MustParse("ats"), GameMapVersion: 7}

		parsed := FileHeader{}
		require.NoError(t, parsed.Parse(original.Bytes()))
		require.Equal(t, original, parsed)
	})

	t.Run("Invalid size", func(t *testing.T) {
		h := FileHeader{}
		require.ErrorIs(t, h.Parse([]byte{1, 2, 3}), errs.ErrInvalidHeaderSize)
	})
}

func TestParseFileHeader(t *testing.T) {
	original := FileHeader{CoreMapVersion: 1, GameID: token.MustParse("eut2"), GameMapVersion: 2}
	data := append(original.Bytes(), 0xAA, 0xBB)

	parsed, err := ParseFileHeader(data)
	require.NoError(t, err)
	require.Equal(t, original, parsed)

	_, err = ParseFileHeader(data[:FileHeaderSize-1])
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}
