package item

import (
	"github.com/arloliu/mapitem/encoding"
	"github.com/arloliu/mapitem/token"
)

// element is implemented by the pointer of every composite sequence element.
type element[T any] interface {
	*T
	read(r *encoding.Reader)
	write(w *encoding.Writer)
}

// readElems reads a counted sequence of composite elements.
func readElems[T any, P element[T]](r *encoding.Reader, field string, minSize int) []T {
	return encoding.ReadSeq(r, field, minSize, func(r *encoding.Reader) T {
		var v T
		P(&v).read(r)

		return v
	})
}

// writeElems writes a counted sequence of composite elements.
func writeElems[T any, P element[T]](w *encoding.Writer, field string, s []T) {
	encoding.WriteSeq(w, field, s, func(w *encoding.Writer, v T) {
		P(&v).write(w)
	})
}

// Encoded sizes of the composite elements. For elements that contain their
// own sequences the size is the minimum, with every inner sequence empty.
const (
	vec3Size             = 3 * encoding.SizeFloat32
	vegetationSpotSize   = encoding.SizeToken + encoding.SizeUint16 + 2*encoding.SizeUint8 + 2*encoding.SizeFloat32
	vegetationSphereSize = vec3Size + encoding.SizeFloat32 + encoding.SizeUint32
	roadModelSize        = encoding.SizeToken + 2*encoding.SizeFloat32
	nodeProfileSize      = 2*encoding.SizeToken + encoding.SizeFloat32
	signBoardMinSize     = encoding.SizeUint64 + encoding.SizeCount
	triggerActionMinSize = encoding.SizeToken + 2*encoding.SizeCount
	trajectoryRuleMin    = encoding.SizeToken + encoding.SizeCount
	checkpointSize       = 2 * encoding.SizeToken
	farModelEntrySize    = encoding.SizeToken + vec3Size
	cameraKeyframeSize   = 4 * encoding.SizeFloat32
	cutsceneActionMin    = encoding.SizeUint32 + 3*encoding.SizeCount
)

// Vec3 is a point or scale in world space.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

func (v *Vec3) read(r *encoding.Reader) {
	v.X = r.Float32("vec3.x")
	v.Y = r.Float32("vec3.y")
	v.Z = r.Float32("vec3.z")
}

func (v *Vec3) write(w *encoding.Writer) {
	w.Float32(v.X)
	w.Float32(v.Y)
	w.Float32(v.Z)
}

// VegetationSpot places vegetation along one side of a terrain segment.
type VegetationSpot struct {
	Name           token.Token `yaml:"name"`
	Density        uint16      `yaml:"density"`
	HiPolyDistance uint8       `yaml:"hi_poly_distance"`
	Scale          uint8       `yaml:"scale"`
	From           float32     `yaml:"from"`
	To             float32     `yaml:"to"`
}

func (v *VegetationSpot) read(r *encoding.Reader) {
	v.Name = r.Token("vegetation.name")
	v.Density = r.Uint16("vegetation.density")
	v.HiPolyDistance = r.Uint8("vegetation.hi_poly_distance")
	v.Scale = r.Uint8("vegetation.scale")
	v.From = r.Float32("vegetation.from")
	v.To = r.Float32("vegetation.to")
}

func (v *VegetationSpot) write(w *encoding.Writer) {
	w.Token(v.Name)
	w.Uint16(v.Density)
	w.Uint8(v.HiPolyDistance)
	w.Uint8(v.Scale)
	w.Float32(v.From)
	w.Float32(v.To)
}

// VegetationSphere clears or restricts vegetation inside a sphere.
type VegetationSphere struct {
	Position Vec3    `yaml:"position,flow"`
	Radius   float32 `yaml:"radius"`
	Type     uint32  `yaml:"type"`
}

func (v *VegetationSphere) read(r *encoding.Reader) {
	v.Position.read(r)
	v.Radius = r.Float32("vegetation_sphere.radius")
	v.Type = r.Uint32("vegetation_sphere.type")
}

func (v *VegetationSphere) write(w *encoding.Writer) {
	v.Position.write(w)
	w.Float32(v.Radius)
	w.Uint32(v.Type)
}

// RoadModel is a model repeated along a road.
type RoadModel struct {
	Name     token.Token `yaml:"name"`
	Distance float32     `yaml:"distance"`
	Offset   float32     `yaml:"offset"`
}

func (m *RoadModel) read(r *encoding.Reader) {
	m.Name = r.Token("road_model.name")
	m.Distance = r.Float32("road_model.distance")
	m.Offset = r.Float32("road_model.offset")
}

func (m *RoadModel) write(w *encoding.Writer) {
	w.Token(m.Name)
	w.Float32(m.Distance)
	w.Float32(m.Offset)
}

// NodeProfile is the terrain profile attached to one prefab node.
type NodeProfile struct {
	Terrain     token.Token `yaml:"terrain"`
	Profile     token.Token `yaml:"profile"`
	Coefficient float32     `yaml:"coefficient"`
}

func (p *NodeProfile) read(r *encoding.Reader) {
	p.Terrain = r.Token("node_profile.terrain")
	p.Profile = r.Token("node_profile.profile")
	p.Coefficient = r.Float32("node_profile.coefficient")
}

func (p *NodeProfile) write(w *encoding.Writer) {
	w.Token(p.Terrain)
	w.Token(p.Profile)
	w.Float32(p.Coefficient)
}

// SignBoard is one navigation board of a sign: the road it points along and
// the cities it lists.
type SignBoard struct {
	RoadUID uint64        `yaml:"road_uid"`
	Cities  []token.Token `yaml:"cities,omitempty"`
}

func (b *SignBoard) read(r *encoding.Reader) {
	b.RoadUID = r.Uint64("sign.board.road_uid")
	b.Cities = encoding.ReadTokens(r, "sign.board.cities")
}

func (b *SignBoard) write(w *encoding.Writer) {
	w.Uint64(b.RoadUID)
	encoding.WriteTokens(w, "sign.board.cities", b.Cities)
}

// TriggerAction is an action fired by a trigger.
type TriggerAction struct {
	Name   token.Token `yaml:"name"`
	Params []float32   `yaml:"params,omitempty,flow"`
	Texts  []string    `yaml:"texts,omitempty"`
}

func (a *TriggerAction) read(r *encoding.Reader) {
	a.Name = r.Token("trigger.action.name")
	a.Params = encoding.ReadFloat32s(r, "trigger.action.params")
	a.Texts = encoding.ReadStrings(r, "trigger.action.texts")
}

func (a *TriggerAction) write(w *encoding.Writer) {
	w.Token(a.Name)
	encoding.WriteFloat32s(w, "trigger.action.params", a.Params)
	encoding.WriteStrings(w, "trigger.action.texts", a.Texts)
}

// TrajectoryRule is a traffic rule applied along a trajectory.
type TrajectoryRule struct {
	Rule   token.Token `yaml:"rule"`
	Params []float32   `yaml:"params,omitempty,flow"`
}

func (t *TrajectoryRule) read(r *encoding.Reader) {
	t.Rule = r.Token("trajectory.rule.rule")
	t.Params = encoding.ReadFloat32s(r, "trajectory.rule.params")
}

func (t *TrajectoryRule) write(w *encoding.Writer) {
	w.Token(t.Rule)
	encoding.WriteFloat32s(w, "trajectory.rule.params", t.Params)
}

// Checkpoint is a named checkpoint on a route.
type Checkpoint struct {
	Route token.Token `yaml:"route"`
	Name  token.Token `yaml:"name"`
}

func (c *Checkpoint) read(r *encoding.Reader) {
	c.Route = r.Token("checkpoint.route")
	c.Name = r.Token("checkpoint.name")
}

func (c *Checkpoint) write(w *encoding.Writer) {
	w.Token(c.Route)
	w.Token(c.Name)
}

// FarModelEntry is one model rendered by a far model item.
type FarModelEntry struct {
	Model token.Token `yaml:"model"`
	Scale Vec3        `yaml:"scale,flow"`
}

func (e *FarModelEntry) read(r *encoding.Reader) {
	e.Model = r.Token("far_model.entry.model")
	e.Scale.read(r)
}

func (e *FarModelEntry) write(w *encoding.Writer) {
	w.Token(e.Model)
	e.Scale.write(w)
}

// CameraKeyframe is one keyframe of a camera path.
type CameraKeyframe struct {
	Speed    float32 `yaml:"speed"`
	Duration float32 `yaml:"duration"`
	Rotation float32 `yaml:"rotation"`
	Zoom     float32 `yaml:"zoom"`
}

func (k *CameraKeyframe) read(r *encoding.Reader) {
	k.Speed = r.Float32("camera_path.keyframe.speed")
	k.Duration = r.Float32("camera_path.keyframe.duration")
	k.Rotation = r.Float32("camera_path.keyframe.rotation")
	k.Zoom = r.Float32("camera_path.keyframe.zoom")
}

func (k *CameraKeyframe) write(w *encoding.Writer) {
	w.Float32(k.Speed)
	w.Float32(k.Duration)
	w.Float32(k.Rotation)
	w.Float32(k.Zoom)
}

// CutsceneAction is one scripted step of a cutscene.
type CutsceneAction struct {
	Type       uint32    `yaml:"type"`
	Params     []float32 `yaml:"params,omitempty,flow"`
	Texts      []string  `yaml:"texts,omitempty"`
	TargetUIDs []uint64  `yaml:"target_uids,omitempty,flow"`
}

func (a *CutsceneAction) read(r *encoding.Reader) {
	a.Type = r.Uint32("cutscene.action.type")
	a.Params = encoding.ReadFloat32s(r, "cutscene.action.params")
	a.Texts = encoding.ReadStrings(r, "cutscene.action.texts")
	a.TargetUIDs = encoding.ReadUint64s(r, "cutscene.action.target_uids")
}

func (a *CutsceneAction) write(w *encoding.Writer) {
	w.Uint32(a.Type)
	encoding.WriteFloat32s(w, "cutscene.action.params", a.Params)
	encoding.WriteStrings(w, "cutscene.action.texts", a.Texts)
	encoding.WriteUint64s(w, "cutscene.action.target_uids", a.TargetUIDs)
}
