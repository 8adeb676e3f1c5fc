package item

import (
	"github.com/arloliu/mapitem/format"
	"github.com/arloliu/mapitem/section"
	"github.com/arloliu/mapitem/token"
)

func tok(s string) token.Token {
	return token.MustParse(s)
}

func base(uid uint64) Base {
	return Base{
		UID: uid,
		Bounds: section.KDOP{
			Min: [section.KDOPAxes]float32{-1.5, -2, -3, -4, -5},
			Max: [section.KDOPAxes]float32{1.5, 2, 3, 4, 5},
		},
		Flags:        0x00A1_0003,
		ViewDistance: section.DefaultViewDistance,
	}
}

// sampleItems returns one populated item of every kind, keyed by kind.
func sampleItems() map[format.ItemType]Item {
	items := []Item{
		&Terrain{
			Base: base(0x1001), Material: tok("grass"), StartNodeUID: 11, EndNodeUID: 12, Length: 42.5,
			RightProfile: tok("hills"), LeftProfile: tok("flat"), RightSize: 30, LeftSize: 10, Seed: 7,
			Vegetation: []VegetationSpot{
				{Name: tok("oak"), Density: 500, HiPolyDistance: 5, Scale: 2, From: 0, To: 42.5},
				{Name: tok("pine"), Density: 120, HiPolyDistance: 3, Scale: 1, From: 10, To: 20},
			},
		},
		&Building{
			Base: base(0x1002), Scheme: tok("sch_city"), Look: tok("brick"), StartNodeUID: 21, EndNodeUID: 22,
			Length: 80, Seed: 3, Stretch: 1.25, HeightOffsets: []float32{0, 0.5, -0.5},
		},
		&Road{
			Base: base(0x1003), RoadLook: tok("hw2_2"), LeftVariant: tok("broken"), RightVariant: tok("broken"),
			LeftEdge: tok("curb"), RightEdge: tok("rail"), StartNodeUID: 31, EndNodeUID: 32, Length: 120, Seed: 99,
			Models: []RoadModel{{Name: tok("lamp"), Distance: 25, Offset: 4}},
			VegetationSpheres: []VegetationSphere{
				{Position: Vec3{X: 1, Y: 2, Z: 3}, Radius: 15, Type: 1},
			},
		},
		&Prefab{
			Base: base(0x1004), Model: tok("cross_4"), Variant: tok("shoulder"), Look: tok("city"),
			AdditionalParts: []token.Token{tok("sidewalk")},
			NodeUIDs:        []uint64{41, 42, 43, 44},
			SlaveUIDs:       []uint64{0x2006},
			FerryLinkUID:    0,
			Origin:          2,
			NodeProfiles: []NodeProfile{
				{Terrain: tok("grass"), Profile: tok("flat"), Coefficient: 1},
				{Terrain: tok("grass"), Profile: tok("hills"), Coefficient: 0.5},
				{Terrain: tok("sand"), Profile: tok("flat"), Coefficient: 1},
				{Terrain: tok("sand"), Profile: tok("dunes"), Coefficient: 2},
			},
		},
		&Model{
			Base: base(0x1005), Model: tok("barn"), Variant: tok("red"), Look: tok("old"), NodeUID: 51,
			Scale: Vec3{X: 1, Y: 1, Z: 2}, AdditionalParts: []token.Token{tok("roof"), tok("silo")},
		},
		&Company{
			Base: base(0x1006), Overlay: tok("tradeaux"), City: tok("berlin"), PrefabUID: 0x1004, NodeUID: 61,
			UnloadEasy: []uint64{1, 2}, UnloadMedium: []uint64{3}, UnloadHard: []uint64{4},
			TrailerSpawn: []uint64{5, 6, 7}, LongTrailer: []uint64{8},
		},
		&Service{Base: base(0x1007), NodeUID: 71, PrefabUID: 0x1004, ServiceType: 4, NodeUIDs: []uint64{72, 73}},
		&CutPlane{Base: base(0x1008), NodeUIDs: []uint64{81, 82}},
		&Mover{
			Base: base(0x1009), Tags: []token.Token{tok("people")}, Model: tok("walker_m"), Look: tok("default"),
			Variant: tok("summer"), Speed: 1.4, EndDelay: 2, Width: 0.5, Count: 3,
			Lengths: []float32{10, 12.5}, NodeUIDs: []uint64{91, 92, 93},
		},
		&NoWeatherArea{Base: base(0x100B), NodeUID: 111, Width: 50, Height: 20, FogBehavior: 1},
		&City{Base: base(0x100C), City: tok("prague"), Width: 900, Height: 700, NodeUID: 121},
		&Hinge{Base: base(0x100D), Model: tok("gate"), Look: tok("steel"), NodeUID: 131, MinRotation: -90, MaxRotation: 90},
		&AnimatedModel{Base: base(0x100F), Tags: []token.Token{tok("windmill")}, Model: tok("mill"), Look: tok("wood"), NodeUID: 151},
		&MapOverlay{Base: base(0x1012), Look: tok("parking"), OverlayType: 2, NodeUID: 181},
		&Ferry{Base: base(0x1013), Port: tok("calais"), PrefabUID: 0x1004, NodeUID: 191, UnloadOffset: Vec3{X: 0, Y: 0, Z: -30}},
		&Sound{Base: base(0x1015), Name: tok("seagulls"), NodeUID: 211},
		&Garage{Base: base(0x1016), City: tok("berlin"), BuyMode: 1, NodeUID: 221, PrefabUID: 0x1004, TrailerSpawnUIDs: []uint64{222}},
		&CameraPoint{Base: base(0x1017), Tags: []token.Token{tok("viewpoint")}, NodeUID: 231},
		&Walker{
			Base: base(0x101C), Name: tok("tourists"), Speed: 1.1, EndDelay: 4, Count: 6, Width: 1, Angle: 15,
			Lengths: []float32{20}, NodeUIDs: []uint64{281, 282},
		},
		&Trigger{
			Base: base(0x1022), Tags: []token.Token{tok("toll")}, NodeUIDs: []uint64{341, 342, 343},
			Actions: []TriggerAction{
				{Name: tok("hud_text"), Params: []float32{5}, Texts: []string{"Toll gate ahead"}},
				{Name: tok("pay"), Params: []float32{12.5, 1}},
			},
			Range: 15, ResetDelay: 60, ResetDistance: 100,
		},
		&FuelPump{Base: base(0x1023), NodeUID: 351, PrefabUID: 0x1004},
		&Sign{
			Base: base(0x1024), Model: tok("sign_nav"), NodeUID: 361, Look: tok("de"), Variant: tok("big"),
			Boards: []SignBoard{
				{RoadUID: 0x1003, Cities: []token.Token{tok("berlin"), tok("prague")}},
				{RoadUID: 0x1003},
			},
			OverrideTemplate: "exit 12 ▸ Dresden",
		},
		&BusStop{Base: base(0x1025), City: tok("prague"), PrefabUID: 0x1004, NodeUID: 371},
		&TrafficArea{
			Base: base(0x1026), Tags: []token.Token{tok("school")}, NodeUIDs: []uint64{381, 382, 383},
			Rule: tok("speed_30"), Range: 40,
		},
		&BezierPatch{
			Base:              base(0x1027),
			ControlPoints:     bezierGrid(),
			TessellationX:     8,
			TessellationZ:     8,
			Seed:              17,
			VegetationSpheres: []VegetationSphere{{Position: Vec3{X: 5, Y: 0, Z: 5}, Radius: 3, Type: 2}},
		},
		&Compound{
			Base: base(0x1028), NodeUID: 401,
			Items: []Item{
				&Model{Base: base(0x3001), Model: tok("bench"), NodeUID: 402, Scale: Vec3{X: 1, Y: 1, Z: 1}},
				&Sound{Base: base(0x3002), Name: tok("fountain"), NodeUID: 403},
			},
		},
		&Trajectory{
			Base: base(0x1029), NodeUIDs: []uint64{411, 412}, AccessRule: 3,
			Rules:       []TrajectoryRule{{Rule: tok("stop"), Params: []float32{2}}, {Rule: tok("go")}},
			Checkpoints: []Checkpoint{{Route: tok("route_a"), Name: tok("cp_1")}},
			Tags:        []token.Token{tok("police")},
		},
		&MapArea{Base: base(0x102A), NodeUIDs: []uint64{421, 422, 423}, Color: 0xFF336699},
		&FarModel{
			Base: base(0x102B), Width: 200, Height: 80,
			Models:   []FarModelEntry{{Model: tok("skyline"), Scale: Vec3{X: 2, Y: 2, Z: 2}}},
			NodeUIDs: []uint64{431},
		},
		&Curve{
			Base: base(0x102C), Model: tok("fence"), Look: tok("wood"), StartNodeUID: 441, EndNodeUID: 442,
			Length: 33, Seed: 5, Stretch: 1, FixedStep: 2.5, HeightOffsets: []float32{0.25},
		},
		&CameraPath{
			Base: base(0x102D), Tags: []token.Token{tok("intro")}, NodeUIDs: []uint64{451, 452},
			Keyframes: []CameraKeyframe{{Speed: 10, Duration: 3, Rotation: 45, Zoom: 1}},
		},
		&Cutscene{
			Base: base(0x102E), Tags: []token.Token{tok("tutorial")}, NodeUID: 461,
			Actions: []CutsceneAction{
				{Type: 1, Params: []float32{0.5}, Texts: []string{"Welcome", ""}, TargetUIDs: []uint64{0x1029}},
				{Type: 7},
			},
		},
		&Hookup{Base: base(0x102F), Name: tok("smoke"), NodeUID: 471},
		&VisibilityArea{Base: base(0x1030), NodeUID: 481, Width: 30, Height: 10, ChildUIDs: []uint64{0x1005, 0x1012}},
	}

	out := make(map[format.ItemType]Item, len(items))
	for _, it := range items {
		out[it.Kind()] = it
	}

	return out
}

func bezierGrid() [BezierControlPoints]Vec3 {
	var grid [BezierControlPoints]Vec3
	for i := range grid {
		grid[i] = Vec3{X: float32(i % 4 * 10), Y: float32(i) * 0.5, Z: float32(i / 4 * 10)}
	}

	return grid
}

// nestedCompound returns a chain of depth compounds around a single leaf.
func nestedCompound(depth int) Item {
	var it Item = &Hookup{Base: base(0x9000), Name: tok("leaf"), NodeUID: 1}
	for i := range depth {
		it = &Compound{Base: base(0x9001 + uint64(i)), NodeUID: uint64(i), Items: []Item{it}} //nolint:gosec
	}

	return it
}
