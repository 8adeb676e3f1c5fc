package item

import (
	"fmt"
	"reflect"

	"github.com/arloliu/mapitem/encoding"
	"github.com/arloliu/mapitem/errs"
	"github.com/arloliu/mapitem/format"
	"github.com/arloliu/mapitem/section"
)

// DefaultMaxDepth is the default limit on compound nesting.
const DefaultMaxDepth = 4

// Item is one map item record.
type Item interface {
	// Kind returns the item's type tag.
	Kind() format.ItemType
	// Header returns the fields shared by every item.
	Header() *Base

	decodeBody(r *encoding.Reader, c Codec)
	encodeBody(w *encoding.Writer, c Codec)
	validate() error
}

// Base holds the header fields common to every item. The type tag is not
// stored; it is implied by the variant.
type Base struct {
	UID          uint64       `yaml:"uid"`
	Bounds       section.KDOP `yaml:"bounds"`
	Flags        uint32       `yaml:"flags"`
	ViewDistance uint8        `yaml:"view_distance"`
}

// Header returns b.
func (b *Base) Header() *Base {
	return b
}

// ItemHeader returns the wire header of an item of the given kind.
func (b *Base) ItemHeader(kind format.ItemType) section.ItemHeader {
	return section.ItemHeader{
		Type:         kind,
		UID:          b.UID,
		Bounds:       b.Bounds,
		Flags:        b.Flags,
		ViewDistance: b.ViewDistance,
	}
}

func (b *Base) setHeader(h section.ItemHeader) {
	b.UID = h.UID
	b.Bounds = h.Bounds
	b.Flags = h.Flags
	b.ViewDistance = h.ViewDistance
}

func (b *Base) validate() error {
	return nil
}

// New returns a zero item of the given kind.
//
// Returns:
//   - Item: Pointer to the zero value of the variant
//   - error: ErrUnknownItemType if kind is not a defined item type
func New(kind format.ItemType) (Item, error) {
	switch kind {
	case format.ItemTerrain:
		return &Terrain{}, nil
	case format.ItemBuilding:
		return &Building{}, nil
	case format.ItemRoad:
		return &Road{}, nil
	case format.ItemPrefab:
		return &Prefab{}, nil
	case format.ItemModel:
		return &Model{}, nil
	case format.ItemCompany:
		return &Company{}, nil
	case format.ItemService:
		return &Service{}, nil
	case format.ItemCutPlane:
		return &CutPlane{}, nil
	case format.ItemMover:
		return &Mover{}, nil
	case format.ItemNoWeatherArea:
		return &NoWeatherArea{}, nil
	case format.ItemCity:
		return &City{}, nil
	case format.ItemHinge:
		return &Hinge{}, nil
	case format.ItemAnimatedModel:
		return &AnimatedModel{}, nil
	case format.ItemMapOverlay:
		return &MapOverlay{}, nil
	case format.ItemFerry:
		return &Ferry{}, nil
	case format.ItemSound:
		return &Sound{}, nil
	case format.ItemGarage:
		return &Garage{}, nil
	case format.ItemCameraPoint:
		return &CameraPoint{}, nil
	case format.ItemWalker:
		return &Walker{}, nil
	case format.ItemTrigger:
		return &Trigger{}, nil
	case format.ItemFuelPump:
		return &FuelPump{}, nil
	case format.ItemSign:
		return &Sign{}, nil
	case format.ItemBusStop:
		return &BusStop{}, nil
	case format.ItemTrafficArea:
		return &TrafficArea{}, nil
	case format.ItemBezierPatch:
		return &BezierPatch{}, nil
	case format.ItemCompound:
		return &Compound{}, nil
	case format.ItemTrajectory:
		return &Trajectory{}, nil
	case format.ItemMapArea:
		return &MapArea{}, nil
	case format.ItemFarModel:
		return &FarModel{}, nil
	case format.ItemCurve:
		return &Curve{}, nil
	case format.ItemCameraPath:
		return &CameraPath{}, nil
	case format.ItemCutscene:
		return &Cutscene{}, nil
	case format.ItemHookup:
		return &Hookup{}, nil
	case format.ItemVisibilityArea:
		return &VisibilityArea{}, nil
	default:
		return nil, fmt.Errorf("%w: 0x%02X", errs.ErrUnknownItemType, uint8(kind))
	}
}

// Codec reads and writes item records. The zero value uses DefaultMaxDepth.
type Codec struct {
	// MaxDepth bounds how deeply compounds may nest.
	MaxDepth int
}

func (c Codec) maxDepth() int {
	if c.MaxDepth <= 0 {
		return DefaultMaxDepth
	}

	return c.MaxDepth
}

// Decode reads one item record: the tag, the rest of the header and the body.
// An unknown tag fails before any other byte is consumed.
func (c Codec) Decode(r *encoding.Reader) (Item, error) {
	it := c.read(r)
	if err := r.Err(); err != nil {
		return nil, err
	}

	return it, nil
}

func (c Codec) read(r *encoding.Reader) Item {
	kind := section.ReadItemType(r)
	if r.Err() != nil {
		return nil
	}

	it, err := New(kind)
	if err != nil {
		r.Fail("item.type", err)
		return nil
	}

	var h section.ItemHeader
	h.ReadFields(r)
	it.Header().setHeader(h)
	it.decodeBody(r, c)
	if r.Err() != nil {
		return nil
	}

	return it
}

// Encode writes one item record.
//
// Returns:
//   - error: ErrInvalidItem for a nil item or a violated precondition
func (c Codec) Encode(w *encoding.Writer, it Item) error {
	c.write(w, it)
	return w.Err()
}

func (c Codec) write(w *encoding.Writer, it Item) {
	if w.Err() != nil {
		return
	}
	if isNil(it) {
		w.Fail("item", fmt.Errorf("%w: nil item", errs.ErrInvalidItem))
		return
	}
	if err := it.validate(); err != nil {
		w.Fail(it.Kind().String(), err)
		return
	}

	h := it.Header().ItemHeader(it.Kind())
	h.Write(w)
	it.encodeBody(w, c)
}

// Validate reports whether it can be encoded.
func Validate(it Item) error {
	if isNil(it) {
		return fmt.Errorf("%w: nil item", errs.ErrInvalidItem)
	}

	return it.validate()
}

// DecodeItem reads one item record with the default codec.
func DecodeItem(r *encoding.Reader) (Item, error) {
	return Codec{}.Decode(r)
}

// EncodeItem writes one item record with the default codec.
func EncodeItem(w *encoding.Writer, it Item) error {
	return Codec{}.Encode(w, it)
}

func isNil(it Item) bool {
	if it == nil {
		return true
	}

	v := reflect.ValueOf(it)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
