package stream

import (
	"github.com/arloliu/mapitem/item"
	"github.com/arloliu/mapitem/section"
	"github.com/arloliu/mapitem/token"
)

func tok(s string) token.Token {
	return token.MustParse(s)
}

func testHeader() section.FileHeader {
	return section.FileHeader{CoreMapVersion: 900, GameID: tok("eut2"), GameMapVersion: 3}
}

func bounds() section.KDOP {
	return section.KDOP{
		Min: [section.KDOPAxes]float32{-5, -1, -5, -7, -7},
		Max: [section.KDOPAxes]float32{5, 1, 5, 7, 7},
	}
}

func testBase(uid uint64) item.Base {
	return item.Base{UID: uid, Bounds: bounds(), ViewDistance: section.DefaultViewDistance}
}

// testItems returns a small map: a road, a prefab, a compound with two
// children, a sign and a city.
func testItems() []item.Item {
	return []item.Item{
		&item.Road{
			Base: testBase(100), RoadLook: tok("hw2_2"), StartNodeUID: 1, EndNodeUID: 2, Length: 150, Seed: 4,
			Models: []item.RoadModel{{Name: tok("lamp"), Distance: 30, Offset: 5}},
		},
		&item.Prefab{
			Base: testBase(101), Model: tok("cross_4"), Variant: tok("shoulder"), Look: tok("city"),
			NodeUIDs: []uint64{2, 3, 4, 5},
			NodeProfiles: []item.NodeProfile{
				{Terrain: tok("grass"), Profile: tok("flat"), Coefficient: 1},
				{Terrain: tok("grass"), Profile: tok("flat"), Coefficient: 1},
				{Terrain: tok("grass"), Profile: tok("hills"), Coefficient: 0.5},
				{Terrain: tok("grass"), Profile: tok("flat"), Coefficient: 1},
			},
		},
		&item.Compound{
			Base: testBase(102), NodeUID: 6,
			Items: []item.Item{
				&item.Model{Base: testBase(200), Model: tok("bench"), NodeUID: 7, Scale: item.Vec3{X: 1, Y: 1, Z: 1}},
				&item.Sound{Base: testBase(201), Name: tok("fountain"), NodeUID: 8},
			},
		},
		&item.Sign{
			Base: testBase(103), Model: tok("sign_nav"), NodeUID: 9,
			Boards:           []item.SignBoard{{RoadUID: 100, Cities: []token.Token{tok("berlin")}}},
			OverrideTemplate: "A9",
		},
		&item.City{Base: testBase(104), City: tok("berlin"), Width: 800, Height: 600, NodeUID: 10},
	}
}

func nested(depth int) item.Item {
	var it item.Item = &item.Hookup{Base: testBase(900), Name: tok("leaf"), NodeUID: 1}
	for i := range depth {
		it = &item.Compound{Base: testBase(901 + uint64(i)), Items: []item.Item{it}} //nolint:gosec
	}

	return it
}
