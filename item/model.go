package item

import (
	"github.com/arloliu/mapitem/encoding"
	"github.com/arloliu/mapitem/format"
	"github.com/arloliu/mapitem/token"
)

// Model is a static model placed on a node.
type Model struct {
	Base            `yaml:",inline"`
	Model           token.Token   `yaml:"model"`
	Variant         token.Token   `yaml:"variant"`
	Look            token.Token   `yaml:"look"`
	NodeUID         uint64        `yaml:"node_uid"`
	Scale           Vec3          `yaml:"scale,flow"`
	AdditionalParts []token.Token `yaml:"additional_parts,omitempty,flow"`
}

func (*Model) Kind() format.ItemType { return format.ItemModel }

func (m *Model) decodeBody(r *encoding.Reader, _ Codec) {
	m.Model = r.Token("model.model")
	m.Variant = r.Token("model.variant")
	m.Look = r.Token("model.look")
	m.NodeUID = r.Uint64("model.node_uid")
	m.Scale.read(r)
	m.AdditionalParts = encoding.ReadTokens(r, "model.additional_parts")
}

func (m *Model) encodeBody(w *encoding.Writer, _ Codec) {
	w.Token(m.Model)
	w.Token(m.Variant)
	w.Token(m.Look)
	w.Uint64(m.NodeUID)
	m.Scale.write(w)
	encoding.WriteTokens(w, "model.additional_parts", m.AdditionalParts)
}

// AnimatedModel is a model that plays an animation.
type AnimatedModel struct {
	Base    `yaml:",inline"`
	Tags    []token.Token `yaml:"tags,omitempty,flow"`
	Model   token.Token   `yaml:"model"`
	Look    token.Token   `yaml:"look"`
	NodeUID uint64        `yaml:"node_uid"`
}

func (*AnimatedModel) Kind() format.ItemType { return format.ItemAnimatedModel }

func (m *AnimatedModel) decodeBody(r *encoding.Reader, _ Codec) {
	m.Tags = encoding.ReadTokens(r, "animated_model.tags")
	m.Model = r.Token("animated_model.model")
	m.Look = r.Token("animated_model.look")
	m.NodeUID = r.Uint64("animated_model.node_uid")
}

func (m *AnimatedModel) encodeBody(w *encoding.Writer, _ Codec) {
	encoding.WriteTokens(w, "animated_model.tags", m.Tags)
	w.Token(m.Model)
	w.Token(m.Look)
	w.Uint64(m.NodeUID)
}

// Hinge is a model that swings around an axis, like a gate.
type Hinge struct {
	Base        `yaml:",inline"`
	Model       token.Token `yaml:"model"`
	Look        token.Token `yaml:"look"`
	NodeUID     uint64      `yaml:"node_uid"`
	MinRotation float32     `yaml:"min_rotation"`
	MaxRotation float32     `yaml:"max_rotation"`
}

func (*Hinge) Kind() format.ItemType { return format.ItemHinge }

func (h *Hinge) decodeBody(r *encoding.Reader, _ Codec) {
	h.Model = r.Token("hinge.model")
	h.Look = r.Token("hinge.look")
	h.NodeUID = r.Uint64("hinge.node_uid")
	h.MinRotation = r.Float32("hinge.min_rotation")
	h.MaxRotation = r.Float32("hinge.max_rotation")
}

func (h *Hinge) encodeBody(w *encoding.Writer, _ Codec) {
	w.Token(h.Model)
	w.Token(h.Look)
	w.Uint64(h.NodeUID)
	w.Float32(h.MinRotation)
	w.Float32(h.MaxRotation)
}

// FarModel renders distant scenery inside an area.
type FarModel struct {
	Base     `yaml:",inline"`
	Width    float32         `yaml:"width"`
	Height   float32         `yaml:"height"`
	Models   []FarModelEntry `yaml:"models,omitempty"`
	NodeUIDs []uint64        `yaml:"node_uids,omitempty,flow"`
}

func (*FarModel) Kind() format.ItemType { return format.ItemFarModel }

func (f *FarModel) decodeBody(r *encoding.Reader, _ Codec) {
	f.Width = r.Float32("far_model.width")
	f.Height = r.Float32("far_model.height")
	f.Models = readElems[FarModelEntry](r, "far_model.models", farModelEntrySize)
	f.NodeUIDs = encoding.ReadUint64s(r, "far_model.node_uids")
}

func (f *FarModel) encodeBody(w *encoding.Writer, _ Codec) {
	w.Float32(f.Width)
	w.Float32(f.Height)
	writeElems(w, "far_model.models", f.Models)
	encoding.WriteUint64s(w, "far_model.node_uids", f.NodeUIDs)
}

// Mover moves animated models along a path of nodes.
type Mover struct {
	Base     `yaml:",inline"`
	Tags     []token.Token `yaml:"tags,omitempty,flow"`
	Model    token.Token   `yaml:"model"`
	Look     token.Token   `yaml:"look"`
	Variant  token.Token   `yaml:"variant"`
	Speed    float32       `yaml:"speed"`
	EndDelay float32       `yaml:"end_delay"`
	Width    float32       `yaml:"width"`
	Count    uint32        `yaml:"count"`
	Lengths  []float32     `yaml:"lengths,omitempty,flow"`
	NodeUIDs []uint64      `yaml:"node_uids,omitempty,flow"`
}

func (*Mover) Kind() format.ItemType { return format.ItemMover }

func (m *Mover) decodeBody(r *encoding.Reader, _ Codec) {
	m.Tags = encoding.ReadTokens(r, "mover.tags")
	m.Model = r.Token("mover.model")
	m.Look = r.Token("mover.look")
	m.Variant = r.Token("mover.variant")
	m.Speed = r.Float32("mover.speed")
	m.EndDelay = r.Float32("mover.end_delay")
	m.Width = r.Float32("mover.width")
	m.Count = r.Uint32("mover.count")
	m.Lengths = encoding.ReadFloat32s(r, "mover.lengths")
	m.NodeUIDs = encoding.ReadUint64s(r, "mover.node_uids")
}

func (m *Mover) encodeBody(w *encoding.Writer, _ Codec) {
	encoding.WriteTokens(w, "mover.tags", m.Tags)
	w.Token(m.Model)
	w.Token(m.Look)
	w.Token(m.Variant)
	w.Float32(m.Speed)
	w.Float32(m.EndDelay)
	w.Float32(m.Width)
	w.Uint32(m.Count)
	encoding.WriteFloat32s(w, "mover.lengths", m.Lengths)
	encoding.WriteUint64s(w, "mover.node_uids", m.NodeUIDs)
}

// Walker moves pedestrians along a path of nodes.
type Walker struct {
	Base     `yaml:",inline"`
	Name     token.Token `yaml:"name"`
	Speed    float32     `yaml:"speed"`
	EndDelay float32     `yaml:"end_delay"`
	Count    uint32      `yaml:"count"`
	Width    float32     `yaml:"width"`
	Angle    float32     `yaml:"angle"`
	Lengths  []float32   `yaml:"lengths,omitempty,flow"`
	NodeUIDs []uint64    `yaml:"node_uids,omitempty,flow"`
}

func (*Walker) Kind() format.ItemType { return format.ItemWalker }

func (wk *Walker) decodeBody(r *encoding.Reader, _ Codec) {
	wk.Name = r.Token("walker.name")
	wk.Speed = r.Float32("walker.speed")
	wk.EndDelay = r.Float32("walker.end_delay")
	wk.Count = r.Uint32("walker.count")
	wk.Width = r.Float32("walker.width")
	wk.Angle = r.Float32("walker.angle")
	wk.Lengths = encoding.ReadFloat32s(r, "walker.lengths")
	wk.NodeUIDs = encoding.ReadUint64s(r, "walker.node_uids")
}

func (wk *Walker) encodeBody(w *encoding.Writer, _ Codec) {
	w.Token(wk.Name)
	w.Float32(wk.Speed)
	w.Float32(wk.EndDelay)
	w.Uint32(wk.Count)
	w.Float32(wk.Width)
	w.Float32(wk.Angle)
	encoding.WriteFloat32s(w, "walker.lengths", wk.Lengths)
	encoding.WriteUint64s(w, "walker.node_uids", wk.NodeUIDs)
}
