package item

import (
	"github.com/arloliu/mapitem/encoding"
	"github.com/arloliu/mapitem/format"
	"github.com/arloliu/mapitem/token"
)

// Terrain is a strip of terrain between two nodes.
type Terrain struct {
	Base         `yaml:",inline"`
	Material     token.Token      `yaml:"material"`
	StartNodeUID uint64           `yaml:"start_node_uid"`
	EndNodeUID   uint64           `yaml:"end_node_uid"`
	Length       float32          `yaml:"length"`
	RightProfile token.Token      `yaml:"right_profile"`
	LeftProfile  token.Token      `yaml:"left_profile"`
	RightSize    float32          `yaml:"right_size"`
	LeftSize     float32          `yaml:"left_size"`
	Seed         uint32           `yaml:"seed"`
	Vegetation   []VegetationSpot `yaml:"vegetation,omitempty"`
}

func (*Terrain) Kind() format.ItemType { return format.ItemTerrain }

func (t *Terrain) decodeBody(r *encoding.Reader, _ Codec) {
	t.Material = r.Token("terrain.material")
	t.StartNodeUID = r.Uint64("terrain.start_node_uid")
	t.EndNodeUID = r.Uint64("terrain.end_node_uid")
	t.Length = r.Float32("terrain.length")
	t.RightProfile = r.Token("terrain.right_profile")
	t.LeftProfile = r.Token("terrain.left_profile")
	t.RightSize = r.Float32("terrain.right_size")
	t.LeftSize = r.Float32("terrain.left_size")
	t.Seed = r.Uint32("terrain.seed")
	t.Vegetation = readElems[VegetationSpot](r, "terrain.vegetation", vegetationSpotSize)
}

func (t *Terrain) encodeBody(w *encoding.Writer, _ Codec) {
	w.Token(t.Material)
	w.Uint64(t.StartNodeUID)
	w.Uint64(t.EndNodeUID)
	w.Float32(t.Length)
	w.Token(t.RightProfile)
	w.Token(t.LeftProfile)
	w.Float32(t.RightSize)
	w.Float32(t.LeftSize)
	w.Uint32(t.Seed)
	writeElems(w, "terrain.vegetation", t.Vegetation)
}

// Building is a row of buildings generated along a segment.
type Building struct {
	Base          `yaml:",inline"`
	Scheme        token.Token `yaml:"scheme"`
	Look          token.Token `yaml:"look"`
	StartNodeUID  uint64      `yaml:"start_node_uid"`
	EndNodeUID    uint64      `yaml:"end_node_uid"`
	Length        float32     `yaml:"length"`
	Seed          uint32      `yaml:"seed"`
	Stretch       float32     `yaml:"stretch"`
	HeightOffsets []float32   `yaml:"height_offsets,omitempty,flow"`
}

func (*Building) Kind() format.ItemType { return format.ItemBuilding }

func (b *Building) decodeBody(r *encoding.Reader, _ Codec) {
	b.Scheme = r.Token("building.scheme")
	b.Look = r.Token("building.look")
	b.StartNodeUID = r.Uint64("building.start_node_uid")
	b.EndNodeUID = r.Uint64("building.end_node_uid")
	b.Length = r.Float32("building.length")
	b.Seed = r.Uint32("building.seed")
	b.Stretch = r.Float32("building.stretch")
	b.HeightOffsets = encoding.ReadFloat32s(r, "building.height_offsets")
}

func (b *Building) encodeBody(w *encoding.Writer, _ Codec) {
	w.Token(b.Scheme)
	w.Token(b.Look)
	w.Uint64(b.StartNodeUID)
	w.Uint64(b.EndNodeUID)
	w.Float32(b.Length)
	w.Uint32(b.Seed)
	w.Float32(b.Stretch)
	encoding.WriteFloat32s(w, "building.height_offsets", b.HeightOffsets)
}

// Road is a road segment between two nodes.
type Road struct {
	Base              `yaml:",inline"`
	RoadLook          token.Token        `yaml:"road_look"`
	LeftVariant       token.Token        `yaml:"left_variant"`
	RightVariant      token.Token        `yaml:"right_variant"`
	LeftEdge          token.Token        `yaml:"left_edge"`
	RightEdge         token.Token        `yaml:"right_edge"`
	StartNodeUID      uint64             `yaml:"start_node_uid"`
	EndNodeUID        uint64             `yaml:"end_node_uid"`
	Length            float32            `yaml:"length"`
	Seed              uint32             `yaml:"seed"`
	Models            []RoadModel        `yaml:"models,omitempty"`
	VegetationSpheres []VegetationSphere `yaml:"vegetation_spheres,omitempty"`
}

func (*Road) Kind() format.ItemType { return format.ItemRoad }

func (rd *Road) decodeBody(r *encoding.Reader, _ Codec) {
	rd.RoadLook = r.Token("road.road_look")
	rd.LeftVariant = r.Token("road.left_variant")
	rd.RightVariant = r.Token("road.right_variant")
	rd.LeftEdge = r.Token("road.left_edge")
	rd.RightEdge = r.Token("road.right_edge")
	rd.StartNodeUID = r.Uint64("road.start_node_uid")
	rd.EndNodeUID = r.Uint64("road.end_node_uid")
	rd.Length = r.Float32("road.length")
	rd.Seed = r.Uint32("road.seed")
	rd.Models = readElems[RoadModel](r, "road.models", roadModelSize)
	rd.VegetationSpheres = readElems[VegetationSphere](r, "road.vegetation_spheres", vegetationSphereSize)
}

func (rd *Road) encodeBody(w *encoding.Writer, _ Codec) {
	w.Token(rd.RoadLook)
	w.Token(rd.LeftVariant)
	w.Token(rd.RightVariant)
	w.Token(rd.LeftEdge)
	w.Token(rd.RightEdge)
	w.Uint64(rd.StartNodeUID)
	w.Uint64(rd.EndNodeUID)
	w.Float32(rd.Length)
	w.Uint32(rd.Seed)
	writeElems(w, "road.models", rd.Models)
	writeElems(w, "road.vegetation_spheres", rd.VegetationSpheres)
}

// Curve is a model stretched along a curve between two nodes.
type Curve struct {
	Base          `yaml:",inline"`
	Model         token.Token `yaml:"model"`
	Look          token.Token `yaml:"look"`
	StartNodeUID  uint64      `yaml:"start_node_uid"`
	EndNodeUID    uint64      `yaml:"end_node_uid"`
	Length        float32     `yaml:"length"`
	Seed          uint32      `yaml:"seed"`
	Stretch       float32     `yaml:"stretch"`
	FixedStep     float32     `yaml:"fixed_step"`
	HeightOffsets []float32   `yaml:"height_offsets,omitempty,flow"`
}

func (*Curve) Kind() format.ItemType { return format.ItemCurve }

func (c *Curve) decodeBody(r *encoding.Reader, _ Codec) {
	c.Model = r.Token("curve.model")
	c.Look = r.Token("curve.look")
	c.StartNodeUID = r.Uint64("curve.start_node_uid")
	c.EndNodeUID = r.Uint64("curve.end_node_uid")
	c.Length = r.Float32("curve.length")
	c.Seed = r.Uint32("curve.seed")
	c.Stretch = r.Float32("curve.stretch")
	c.FixedStep = r.Float32("curve.fixed_step")
	c.HeightOffsets = encoding.ReadFloat32s(r, "curve.height_offsets")
}

func (c *Curve) encodeBody(w *encoding.Writer, _ Codec) {
	w.Token(c.Model)
	w.Token(c.Look)
	w.Uint64(c.StartNodeUID)
	w.Uint64(c.EndNodeUID)
	w.Float32(c.Length)
	w.Uint32(c.Seed)
	w.Float32(c.Stretch)
	w.Float32(c.FixedStep)
	encoding.WriteFloat32s(w, "curve.height_offsets", c.HeightOffsets)
}
