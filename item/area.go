package item

import (
	"github.com/arloliu/mapitem/encoding"
	"github.com/arloliu/mapitem/format"
	"github.com/arloliu/mapitem/token"
)

// CutPlane hides geometry behind a plane spanned by its nodes.
type CutPlane struct {
	Base     `yaml:",inline"`
	NodeUIDs []uint64 `yaml:"node_uids,omitempty,flow"`
}

func (*CutPlane) Kind() format.ItemType { return format.ItemCutPlane }

func (c *CutPlane) decodeBody(r *encoding.Reader, _ Codec) {
	c.NodeUIDs = encoding.ReadUint64s(r, "cut_plane.node_uids")
}

func (c *CutPlane) encodeBody(w *encoding.Writer, _ Codec) {
	encoding.WriteUint64s(w, "cut_plane.node_uids", c.NodeUIDs)
}

// NoWeatherArea suppresses weather effects inside a box.
type NoWeatherArea struct {
	Base        `yaml:",inline"`
	NodeUID     uint64  `yaml:"node_uid"`
	Width       float32 `yaml:"width"`
	Height      float32 `yaml:"height"`
	FogBehavior uint32  `yaml:"fog_behavior"`
}

func (*NoWeatherArea) Kind() format.ItemType { return format.ItemNoWeatherArea }

func (n *NoWeatherArea) decodeBody(r *encoding.Reader, _ Codec) {
	n.NodeUID = r.Uint64("no_weather_area.node_uid")
	n.Width = r.Float32("no_weather_area.width")
	n.Height = r.Float32("no_weather_area.height")
	n.FogBehavior = r.Uint32("no_weather_area.fog_behavior")
}

func (n *NoWeatherArea) encodeBody(w *encoding.Writer, _ Codec) {
	w.Uint64(n.NodeUID)
	w.Float32(n.Width)
	w.Float32(n.Height)
	w.Uint32(n.FogBehavior)
}

// MapArea is a polygon drawn on the UI map.
type MapArea struct {
	Base     `yaml:",inline"`
	NodeUIDs []uint64 `yaml:"node_uids,omitempty,flow"`
	Color    uint32   `yaml:"color"`
}

func (*MapArea) Kind() format.ItemType { return format.ItemMapArea }

func (m *MapArea) decodeBody(r *encoding.Reader, _ Codec) {
	m.NodeUIDs = encoding.ReadUint64s(r, "map_area.node_uids")
	m.Color = r.Uint32("map_area.color")
}

func (m *MapArea) encodeBody(w *encoding.Writer, _ Codec) {
	encoding.WriteUint64s(w, "map_area.node_uids", m.NodeUIDs)
	w.Uint32(m.Color)
}

// TrafficArea applies a traffic rule inside a polygon.
type TrafficArea struct {
	Base     `yaml:",inline"`
	Tags     []token.Token `yaml:"tags,omitempty,flow"`
	NodeUIDs []uint64      `yaml:"node_uids,omitempty,flow"`
	Rule     token.Token   `yaml:"rule"`
	Range    float32       `yaml:"range"`
}

func (*TrafficArea) Kind() format.ItemType { return format.ItemTrafficArea }

func (t *TrafficArea) decodeBody(r *encoding.Reader, _ Codec) {
	t.Tags = encoding.ReadTokens(r, "traffic_area.tags")
	t.NodeUIDs = encoding.ReadUint64s(r, "traffic_area.node_uids")
	t.Rule = r.Token("traffic_area.rule")
	t.Range = r.Float32("traffic_area.range")
}

func (t *TrafficArea) encodeBody(w *encoding.Writer, _ Codec) {
	encoding.WriteTokens(w, "traffic_area.tags", t.Tags)
	encoding.WriteUint64s(w, "traffic_area.node_uids", t.NodeUIDs)
	w.Token(t.Rule)
	w.Float32(t.Range)
}

// VisibilityArea toggles the visibility of child items inside a box.
type VisibilityArea struct {
	Base      `yaml:",inline"`
	NodeUID   uint64   `yaml:"node_uid"`
	Width     float32  `yaml:"width"`
	Height    float32  `yaml:"height"`
	ChildUIDs []uint64 `yaml:"child_uids,omitempty,flow"`
}

func (*VisibilityArea) Kind() format.ItemType { return format.ItemVisibilityArea }

func (v *VisibilityArea) decodeBody(r *encoding.Reader, _ Codec) {
	v.NodeUID = r.Uint64("visibility_area.node_uid")
	v.Width = r.Float32("visibility_area.width")
	v.Height = r.Float32("visibility_area.height")
	v.ChildUIDs = encoding.ReadUint64s(r, "visibility_area.child_uids")
}

func (v *VisibilityArea) encodeBody(w *encoding.Writer, _ Codec) {
	w.Uint64(v.NodeUID)
	w.Float32(v.Width)
	w.Float32(v.Height)
	encoding.WriteUint64s(w, "visibility_area.child_uids", v.ChildUIDs)
}

// MapOverlay is an icon or label drawn on the UI map.
type MapOverlay struct {
	Base        `yaml:",inline"`
	Look        token.Token `yaml:"look"`
	OverlayType uint8       `yaml:"overlay_type"`
	NodeUID     uint64      `yaml:"node_uid"`
}

func (*MapOverlay) Kind() format.ItemType { return format.ItemMapOverlay }

func (m *MapOverlay) decodeBody(r *encoding.Reader, _ Codec) {
	m.Look = r.Token("map_overlay.look")
	m.OverlayType = r.Uint8("map_overlay.overlay_type")
	m.NodeUID = r.Uint64("map_overlay.node_uid")
}

func (m *MapOverlay) encodeBody(w *encoding.Writer, _ Codec) {
	w.Token(m.Look)
	w.Uint8(m.OverlayType)
	w.Uint64(m.NodeUID)
}

// CameraPoint is a tagged camera position.
type CameraPoint struct {
	Base    `yaml:",inline"`
	Tags    []token.Token `yaml:"tags,omitempty,flow"`
	NodeUID uint64        `yaml:"node_uid"`
}

func (*CameraPoint) Kind() format.ItemType { return format.ItemCameraPoint }

func (c *CameraPoint) decodeBody(r *encoding.Reader, _ Codec) {
	c.Tags = encoding.ReadTokens(r, "camera_point.tags")
	c.NodeUID = r.Uint64("camera_point.node_uid")
}

func (c *CameraPoint) encodeBody(w *encoding.Writer, _ Codec) {
	encoding.WriteTokens(w, "camera_point.tags", c.Tags)
	w.Uint64(c.NodeUID)
}

// Sound is a positional sound source.
type Sound struct {
	Base    `yaml:",inline"`
	Name    token.Token `yaml:"name"`
	NodeUID uint64      `yaml:"node_uid"`
}

func (*Sound) Kind() format.ItemType { return format.ItemSound }

func (s *Sound) decodeBody(r *encoding.Reader, _ Codec) {
	s.Name = r.Token("sound.name")
	s.NodeUID = r.Uint64("sound.node_uid")
}

func (s *Sound) encodeBody(w *encoding.Writer, _ Codec) {
	w.Token(s.Name)
	w.Uint64(s.NodeUID)
}

// Hookup attaches a named effect or animation hookup to a node.
type Hookup struct {
	Base    `yaml:",inline"`
	Name    token.Token `yaml:"name"`
	NodeUID uint64      `yaml:"node_uid"`
}

func (*Hookup) Kind() format.ItemType { return format.ItemHookup }

func (h *Hookup) decodeBody(r *encoding.Reader, _ Codec) {
	h.Name = r.Token("hookup.name")
	h.NodeUID = r.Uint64("hookup.node_uid")
}

func (h *Hookup) encodeBody(w *encoding.Writer, _ Codec) {
	w.Token(h.Name)
	w.Uint64(h.NodeUID)
}
