// Package format defines the closed enumerations that appear on the wire: the
// item type tag of every map item and the compression type of a packed stream.
package format

type (
	ItemType        uint8
	CompressionType uint8
)

// Item type tags. The enumeration is sparse: codes between the constants
// below are reserved and must be rejected.
const (
	ItemTerrain        ItemType = 0x01
	ItemBuilding       ItemType = 0x02
	ItemRoad           ItemType = 0x03
	ItemPrefab         ItemType = 0x04
	ItemModel          ItemType = 0x05
	ItemCompany        ItemType = 0x06
	ItemService        ItemType = 0x07
	ItemCutPlane       ItemType = 0x08
	ItemMover          ItemType = 0x09
	ItemNoWeatherArea  ItemType = 0x0B
	ItemCity           ItemType = 0x0C
	ItemHinge          ItemType = 0x0D
	ItemAnimatedModel  ItemType = 0x0F
	ItemMapOverlay     ItemType = 0x12
	ItemFerry          ItemType = 0x13
	ItemSound          ItemType = 0x15
	ItemGarage         ItemType = 0x16
	ItemCameraPoint    ItemType = 0x17
	ItemWalker         ItemType = 0x1C
	ItemTrigger        ItemType = 0x22
	ItemFuelPump       ItemType = 0x23
	ItemSign           ItemType = 0x24
	ItemBusStop        ItemType = 0x25
	ItemTrafficArea    ItemType = 0x26
	ItemBezierPatch    ItemType = 0x27
	ItemCompound       ItemType = 0x28
	ItemTrajectory     ItemType = 0x29
	ItemMapArea        ItemType = 0x2A
	ItemFarModel       ItemType = 0x2B
	ItemCurve          ItemType = 0x2C
	ItemCameraPath     ItemType = 0x2D
	ItemCutscene       ItemType = 0x2E
	ItemHookup         ItemType = 0x2F
	ItemVisibilityArea ItemType = 0x30
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores the stream as-is.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
)

var itemTypeNames = map[ItemType]string{
	ItemTerrain:        "terrain",
	ItemBuilding:       "building",
	ItemRoad:           "road",
	ItemPrefab:         "prefab",
	ItemModel:          "model",
	ItemCompany:        "company",
	ItemService:        "service",
	ItemCutPlane:       "cut_plane",
	ItemMover:          "mover",
	ItemNoWeatherArea:  "no_weather_area",
	ItemCity:           "city",
	ItemHinge:          "hinge",
	ItemAnimatedModel:  "animated_model",
	ItemMapOverlay:     "map_overlay",
	ItemFerry:          "ferry",
	ItemSound:          "sound",
	ItemGarage:         "garage",
	ItemCameraPoint:    "camera_point",
	ItemWalker:         "walker",
	ItemTrigger:        "trigger",
	ItemFuelPump:       "fuel_pump",
	ItemSign:           "sign",
	ItemBusStop:        "bus_stop",
	ItemTrafficArea:    "traffic_area",
	ItemBezierPatch:    "bezier_patch",
	ItemCompound:       "compound",
	ItemTrajectory:     "trajectory",
	ItemMapArea:        "map_area",
	ItemFarModel:       "far_model",
	ItemCurve:          "curve",
	ItemCameraPath:     "camera_path",
	ItemCutscene:       "cutscene",
	ItemHookup:         "hookup",
	ItemVisibilityArea: "visibility_area",
}

var itemTypesByName = func() map[string]ItemType {
	m := make(map[string]ItemType, len(itemTypeNames))
	for t, name := range itemTypeNames {
		m[name] = t
	}

	return m
}()

// IsValid reports whether t is one of the defined item type tags.
func (t ItemType) IsValid() bool {
	_, ok := itemTypeNames[t]
	return ok
}

func (t ItemType) String() string {
	if name, ok := itemTypeNames[t]; ok {
		return name
	}

	return "Unknown"
}

// ParseItemType returns the item type with the given snake_case name.
func ParseItemType(name string) (ItemType, bool) {
	t, ok := itemTypesByName[name]
	return t, ok
}

// ItemTypes returns every defined item type in ascending tag order.
func ItemTypes() []ItemType {
	types := make([]ItemType, 0, len(itemTypeNames))
	for t := ItemTerrain; t <= ItemVisibilityArea; t++ {
		if t.IsValid() {
			types = append(types, t)
		}
	}

	return types
}

// IsValid reports whether c is a supported compression type.
func (c CompressionType) IsValid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
