package mapyaml

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/arloliu/mapitem/errs"
	"github.com/arloliu/mapitem/item"
	"github.com/arloliu/mapitem/section"
	"github.com/arloliu/mapitem/stream"
	"github.com/arloliu/mapitem/token"
	"github.com/stretchr/testify/require"
)

func tok(s string) token.Token {
	return token.MustParse(s)
}

func base(uid uint64) item.Base {
	return item.Base{
		UID: uid,
		Bounds: section.KDOP{
			Min: [section.KDOPAxes]float32{-0.1, -2, -3, -4.25, -5},
			Max: [section.KDOPAxes]float32{0.1, 2, 3, 4.25, 5},
		},
		Flags:        0x0102,
		ViewDistance: 12,
	}
}

var negZero = float32(math.Copysign(0, -1))

func negZeroBase(uid uint64) item.Base {
	b := base(uid)
	b.Bounds.Min[0] = negZero

	return b
}

func testMap() stream.Map {
	return stream.Map{
		Header: section.FileHeader{CoreMapVersion: 900, GameID: tok("eut2"), GameMapVersion: 3},
		Items: []item.Item{
			&item.Terrain{
				Base: base(0xF000_0000_0000_0001), Material: tok("grass"), StartNodeUID: 1, EndNodeUID: 2,
				Length: 33.3, RightProfile: tok("hills"), Seed: 12,
				Vegetation: []item.VegetationSpot{{Name: tok("oak"), Density: 300, From: 0, To: 33.3}},
			},
			&item.Prefab{
				Base: base(2), Model: tok("cross_4"), NodeUIDs: []uint64{10, 11},
				NodeProfiles: []item.NodeProfile{
					{Terrain: tok("grass"), Profile: tok("flat"), Coefficient: 1},
					{Terrain: tok("sand"), Profile: tok("dunes"), Coefficient: 0.75},
				},
			},
			&item.Model{Base: base(3), Model: tok("0"), Look: token.Token(38), Scale: item.Vec3{X: 1, Y: 2, Z: 3}},
			&item.Sign{
				Base: base(4), Model: tok("sign_nav"),
				Boards:           []item.SignBoard{{RoadUID: 1, Cities: []token.Token{tok("berlin"), tok("true")}}},
				OverrideTemplate: "line one\nline: two",
			},
			&item.BezierPatch{Base: base(5), TessellationX: 4, TessellationZ: 4},
			&item.Compound{
				Base: base(6), NodeUID: 60,
				Items: []item.Item{
					&item.Sound{Base: base(61), Name: tok("birds"), NodeUID: 62},
					&item.Compound{Base: base(63), Items: []item.Item{
						&item.Hookup{Base: base(64), Name: tok("smoke")},
					}},
				},
			},
			&item.Cutscene{
				Base: base(7), Tags: []token.Token{tok("intro")},
				Actions: []item.CutsceneAction{{Type: 2, Texts: []string{"Hello", ""}, TargetUIDs: []uint64{3}}},
			},
			&item.City{Base: negZeroBase(8), City: tok("berlin"), Width: negZero, Height: 100, NodeUID: 80},
		},
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	m := testMap()

	data, err := Marshal(m)
	require.NoError(t, err)

	loaded, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, m.Header, loaded.Header)
	require.Equal(t, m.Items, loaded.Items)

	city, ok := loaded.Items[len(loaded.Items)-1].(*item.City)
	require.True(t, ok)
	require.True(t, math.Signbit(float64(city.Width)))
	require.True(t, math.Signbit(float64(city.Bounds.Min[0])))
	require.False(t, math.Signbit(float64(city.Height)))
}

func TestMarshal_PreservesEncodedBytes(t *testing.T) {
	m := testMap()
	original, err := stream.Encode(m.Header, m.Items)
	require.NoError(t, err)

	decoded, err := stream.Decode(original)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, decoded))

	loaded, err := Load(&buf)
	require.NoError(t, err)

	reencoded, err := stream.Encode(loaded.Header, loaded.Items)
	require.NoError(t, err)
	require.Equal(t, original, reencoded)
}

func TestMarshal_Layout(t *testing.T) {
	data, err := Marshal(testMap())
	require.NoError(t, err)

	text := string(data)
	require.Contains(t, text, "game_id: eut2")
	require.Contains(t, text, "- type: prefab")
	require.Contains(t, text, "#0000000000000026")
	require.Contains(t, text, "type: hookup")
}

func TestMarshal_NilItem(t *testing.T) {
	m := stream.Map{Items: []item.Item{nil}}
	_, err := Marshal(m)
	require.ErrorIs(t, err, errs.ErrInvalidItem)
}

func TestUnmarshal_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown type", "items:\n  - type: spaceship\n    uid: 1\n", errs.ErrUnknownItemType},
		{"missing type", "items:\n  - uid: 1\n", errs.ErrUnknownItemType},
		{"bad token", "items:\n  - type: sound\n    name: Not-A-Token\n", errs.ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.doc))
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Unmarshal([]byte("items: 3\n"))
	require.Error(t, err)

	_, err = Unmarshal([]byte("items:\n  - [1, 2]\n"))
	require.Error(t, err)
}

func TestUnmarshal_EmptyItems(t *testing.T) {
	for _, doc := range []string{"header:\n  core_map_version: 1\n", "items: []\n"} {
		m, err := Unmarshal([]byte(doc))
		require.NoError(t, err)
		require.Empty(t, m.Items)
	}

	data, err := Marshal(stream.Map{})
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), "items: []"))
}
