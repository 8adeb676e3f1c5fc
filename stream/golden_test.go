package stream

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/arloliu/mapitem/item"
	"github.com/arloliu/mapitem/section"
	"github.com/arloliu/mapitem/token"
	"github.com/stretchr/testify/require"
)

// goldenHookup is a header followed by one hookup, written out by hand.
var goldenHookup = strings.Join([]string{
	"84030000", "e930030000000000", "03000000", // file header
	"2f",                                       // tag
	"0807060504030201",                         // uid
	"0000803f" + strings.Repeat("00000000", 9), // kdop
	"10000000",                                 // flags
	"28",                                       // view distance
	"6448160000000000",                         // name "lamp"
	"0700000000000000",                         // node uid
}, "")

func TestDecode_Golden(t *testing.T) {
	data, err := hex.DecodeString(goldenHookup)
	require.NoError(t, err)
	require.Len(t, data, section.FileHeaderSize+section.ItemHeaderSize+16)

	m, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, section.FileHeader{CoreMapVersion: 900, GameID: token.MustParse("eut2"), GameMapVersion: 3}, m.Header)
	require.Len(t, m.Items, 1)

	want := &item.Hookup{
		Base: item.Base{
			UID:          0x0102030405060708,
			Flags:        0x10,
			ViewDistance: section.DefaultViewDistance,
		},
		Name:    token.MustParse("lamp"),
		NodeUID: 7,
	}
	want.Bounds.Min[0] = 1
	require.Equal(t, want, m.Items[0])

	out, err := Encode(m.Header, m.Items)
	require.NoError(t, err)
	require.Equal(t, goldenHookup, hex.EncodeToString(out))
}
