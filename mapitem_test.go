package mapitem

import (
	"errors"
	"testing"

	"github.com/arloliu/mapitem/errs"
	"github.com/arloliu/mapitem/format"
	"github.com/arloliu/mapitem/item"
	"github.com/arloliu/mapitem/section"
	"github.com/arloliu/mapitem/stream"
	"github.com/arloliu/mapitem/token"
	"github.com/stretchr/testify/require"
)

func sampleMap(t *testing.T) stream.Map {
	t.Helper()

	game, err := ParseToken("eut2")
	require.NoError(t, err)
	city, err := ParseToken("Prague")
	require.NoError(t, err)

	return stream.Map{
		Header: section.FileHeader{CoreMapVersion: 900, GameID: game, GameMapVersion: 1},
		Items: []item.Item{
			&item.City{Base: item.Base{UID: 1, ViewDistance: section.DefaultViewDistance}, City: city, Width: 500, Height: 400, NodeUID: 2},
			&item.BusStop{Base: item.Base{UID: 3}, City: city, PrefabUID: 4, NodeUID: 5},
		},
	}
}

func TestParseToken(t *testing.T) {
	tok, err := ParseToken("Prague")
	require.NoError(t, err)
	require.Equal(t, "prague", tok.String())
	require.Equal(t, []byte{182, 76, 192, 74, 0, 0, 0, 0}, tok.Bytes())

	_, err = ParseToken("thirteen_char")
	require.ErrorIs(t, err, errs.ErrInvalidToken)

	_, err = ParseToken("a-b")
	require.ErrorIs(t, err, errs.ErrInvalidToken)

	empty, err := ParseToken("")
	require.NoError(t, err)
	require.Equal(t, token.Token(0), empty)
}

func TestEncodeDecode(t *testing.T) {
	m := sampleMap(t)

	data, err := Encode(m.Header, m.Items)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, m, decoded)
}

func TestDecode_DetectsEnvelope(t *testing.T) {
	m := sampleMap(t)

	for _, comp := range []format.CompressionType{format.CompressionNone, format.CompressionZstd} {
		packed, err := EncodePacked(m.Header, m.Items, comp)
		require.NoError(t, err)

		decoded, err := Decode(packed)
		require.NoError(t, err)
		require.Equal(t, m.Items, decoded.Items)
	}
}

func TestDecode_RawStreamWithMagicVersion(t *testing.T) {
	m := sampleMap(t)
	m.Header.CoreMapVersion = section.EnvelopeMagic

	for _, items := range [][]item.Item{nil, m.Items} {
		data, err := Encode(m.Header, items)
		require.NoError(t, err)
		require.True(t, stream.IsPacked(data))

		decoded, err := Decode(data)
		require.NoError(t, err)
		require.Equal(t, m.Header, decoded.Header)
		require.Equal(t, items, decoded.Items)

		again, err := Encode(decoded.Header, decoded.Items)
		require.NoError(t, err)
		require.Equal(t, data, again)
	}
}

func TestDecode_BrokenEnvelopeReportsEnvelopeError(t *testing.T) {
	m := sampleMap(t)
	packed, err := EncodePacked(m.Header, m.Items, format.CompressionS2)
	require.NoError(t, err)

	packed[len(packed)-1] ^= 0xFF
	_, err = Decode(packed)
	require.True(t, errors.Is(err, errs.ErrChecksumMismatch) || errors.Is(err, errs.ErrTruncatedInput), "%v", err)
}

func TestYAML(t *testing.T) {
	m := sampleMap(t)

	data, err := MarshalYAML(m)
	require.NoError(t, err)
	require.Contains(t, string(data), "city: prague")

	loaded, err := UnmarshalYAML(data)
	require.NoError(t, err)
	require.Equal(t, m, loaded)
}
