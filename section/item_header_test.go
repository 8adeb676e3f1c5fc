package section

import (
	"testing"

	"github.com/arloliu/mapitem/encoding"
	"github.com/arloliu/mapitem/errs"
	"github.com/arloliu/mapitem/format"
	"github.com/stretchr/testify/require"
)

func sampleHeader() ItemHeader {
	return ItemHeader{
		Type: format.ItemPrefab,
		UID:  0x5A1B2C3D4E5F6071,
		Bounds: KDOP{
			Min: [KDOPAxes]float32{-10, -1, -20, -30, -40},
			Max: [KDOPAxes]float32{10, 1, 20, 30, 40},
		},
		Flags:        0x00010002,
		ViewDistance: DefaultViewDistance,
	}
}

func TestItemHeader_RoundTrip(t *testing.T) {
	h := sampleHeader()

	w := encoding.NewWriter()
	defer w.Release()
	h.Write(w)
	require.Equal(t, ItemHeaderSize, w.Len())
	require.Equal(t, byte(format.ItemPrefab), w.Bytes()[0])

	r := encoding.NewReader(w.Bytes())
	var parsed ItemHeader
	parsed.Read(r)
	require.NoError(t, r.Err())
	require.Equal(t, h, parsed)
	require.Equal(t, 400, parsed.ViewDistanceMeters())
}

func TestReadItemType_Unknown(t *testing.T) {
	for _, tag := range []byte{0x00, 0x0A, 0x0E, 0x31, 0xFF} {
		data := make([]byte, ItemHeaderSize)
		data[0] = tag

		r := encoding.NewReader(data)
		require.Equal(t, format.ItemType(0), ReadItemType(r))
		require.ErrorIs(t, r.Err(), errs.ErrUnknownItemType)
		require.Equal(t, 1, r.Offset(), "only the tag is consumed")
	}
}

func TestItemHeader_Truncated(t *testing.T) {
	h := sampleHeader()
	w := encoding.NewWriter()
	defer w.Release()
	h.Write(w)

	for cut := 0; cut < ItemHeaderSize; cut++ {
		r := encoding.NewReader(w.Bytes()[:cut])
		var parsed ItemHeader
		parsed.Read(r)
		require.ErrorIs(t, r.Err(), errs.ErrTruncatedInput, "cut=%d", cut)
	}
}

func TestKDOP(t *testing.T) {
	a := KDOP{Min: [KDOPAxes]float32{0, 0, 0, 0, 0}, Max: [KDOPAxes]float32{1, 1, 1, 1, 1}}
	b := KDOP{Min: [KDOPAxes]float32{-1, 2, 0, 0, 0}, Max: [KDOPAxes]float32{0, 3, 1, 1, 5}}

	require.True(t, Empty().IsEmpty())
	require.False(t, a.IsEmpty())
	require.Equal(t, a, Empty().Extend(a))

	merged := a.Extend(b)
	require.Equal(t, [KDOPAxes]float32{-1, 0, 0, 0, 0}, merged.Min)
	require.Equal(t, [KDOPAxes]float32{1, 3, 1, 1, 5}, merged.Max)
}
