package item

import (
	"github.com/arloliu/mapitem/encoding"
	"github.com/arloliu/mapitem/format"
	"github.com/arloliu/mapitem/token"
)

// Company is a company depot attached to a prefab, with the nodes used to
// spawn and unload trailers.
type Company struct {
	Base         `yaml:",inline"`
	Overlay      token.Token `yaml:"overlay"`
	City         token.Token `yaml:"city"`
	PrefabUID    uint64      `yaml:"prefab_uid"`
	NodeUID      uint64      `yaml:"node_uid"`
	UnloadEasy   []uint64    `yaml:"unload_easy,omitempty,flow"`
	UnloadMedium []uint64    `yaml:"unload_medium,omitempty,flow"`
	UnloadHard   []uint64    `yaml:"unload_hard,omitempty,flow"`
	TrailerSpawn []uint64    `yaml:"trailer_spawn,omitempty,flow"`
	LongTrailer  []uint64    `yaml:"long_trailer,omitempty,flow"`
}

func (*Company) Kind() format.ItemType { return format.ItemCompany }

func (c *Company) decodeBody(r *encoding.Reader, _ Codec) {
	c.Overlay = r.Token("company.overlay")
	c.City = r.Token("company.city")
	c.PrefabUID = r.Uint64("company.prefab_uid")
	c.NodeUID = r.Uint64("company.node_uid")
	c.UnloadEasy = encoding.ReadUint64s(r, "company.unload_easy")
	c.UnloadMedium = encoding.ReadUint64s(r, "company.unload_medium")
	c.UnloadHard = encoding.ReadUint64s(r, "company.unload_hard")
	c.TrailerSpawn = encoding.ReadUint64s(r, "company.trailer_spawn")
	c.LongTrailer = encoding.ReadUint64s(r, "company.long_trailer")
}

func (c *Company) encodeBody(w *encoding.Writer, _ Codec) {
	w.Token(c.Overlay)
	w.Token(c.City)
	w.Uint64(c.PrefabUID)
	w.Uint64(c.NodeUID)
	encoding.WriteUint64s(w, "company.unload_easy", c.UnloadEasy)
	encoding.WriteUint64s(w, "company.unload_medium", c.UnloadMedium)
	encoding.WriteUint64s(w, "company.unload_hard", c.UnloadHard)
	encoding.WriteUint64s(w, "company.trailer_spawn", c.TrailerSpawn)
	encoding.WriteUint64s(w, "company.long_trailer", c.LongTrailer)
}

// Service is a service point (parking, repair, recruitment, ...) of a prefab.
type Service struct {
	Base        `yaml:",inline"`
	NodeUID     uint64   `yaml:"node_uid"`
	PrefabUID   uint64   `yaml:"prefab_uid"`
	ServiceType uint32   `yaml:"service_type"`
	NodeUIDs    []uint64 `yaml:"node_uids,omitempty,flow"`
}

func (*Service) Kind() format.ItemType { return format.ItemService }

func (s *Service) decodeBody(r *encoding.Reader, _ Codec) {
	s.NodeUID = r.Uint64("service.node_uid")
	s.PrefabUID = r.Uint64("service.prefab_uid")
	s.ServiceType = r.Uint32("service.service_type")
	s.NodeUIDs = encoding.ReadUint64s(r, "service.node_uids")
}

func (s *Service) encodeBody(w *encoding.Writer, _ Codec) {
	w.Uint64(s.NodeUID)
	w.Uint64(s.PrefabUID)
	w.Uint32(s.ServiceType)
	encoding.WriteUint64s(w, "service.node_uids", s.NodeUIDs)
}

// Garage is a purchasable garage of a city.
type Garage struct {
	Base             `yaml:",inline"`
	City             token.Token `yaml:"city"`
	BuyMode          uint32      `yaml:"buy_mode"`
	NodeUID          uint64      `yaml:"node_uid"`
	PrefabUID        uint64      `yaml:"prefab_uid"`
	TrailerSpawnUIDs []uint64    `yaml:"trailer_spawn_uids,omitempty,flow"`
}

func (*Garage) Kind() format.ItemType { return format.ItemGarage }

func (g *Garage) decodeBody(r *encoding.Reader, _ Codec) {
	g.City = r.Token("garage.city")
	g.BuyMode = r.Uint32("garage.buy_mode")
	g.NodeUID = r.Uint64("garage.node_uid")
	g.PrefabUID = r.Uint64("garage.prefab_uid")
	g.TrailerSpawnUIDs = encoding.ReadUint64s(r, "garage.trailer_spawn_uids")
}

func (g *Garage) encodeBody(w *encoding.Writer, _ Codec) {
	w.Token(g.City)
	w.Uint32(g.BuyMode)
	w.Uint64(g.NodeUID)
	w.Uint64(g.PrefabUID)
	encoding.WriteUint64s(w, "garage.trailer_spawn_uids", g.TrailerSpawnUIDs)
}

// FuelPump is a fuel station point of a prefab.
type FuelPump struct {
	Base      `yaml:",inline"`
	NodeUID   uint64 `yaml:"node_uid"`
	PrefabUID uint64 `yaml:"prefab_uid"`
}

func (*FuelPump) Kind() format.ItemType { return format.ItemFuelPump }

func (f *FuelPump) decodeBody(r *encoding.Reader, _ Codec) {
	f.NodeUID = r.Uint64("fuel_pump.node_uid")
	f.PrefabUID = r.Uint64("fuel_pump.prefab_uid")
}

func (f *FuelPump) encodeBody(w *encoding.Writer, _ Codec) {
	w.Uint64(f.NodeUID)
	w.Uint64(f.PrefabUID)
}

// BusStop is a bus stop of a city.
type BusStop struct {
	Base      `yaml:",inline"`
	City      token.Token `yaml:"city"`
	PrefabUID uint64      `yaml:"prefab_uid"`
	NodeUID   uint64      `yaml:"node_uid"`
}

func (*BusStop) Kind() format.ItemType { return format.ItemBusStop }

func (b *BusStop) decodeBody(r *encoding.Reader, _ Codec) {
	b.City = r.Token("bus_stop.city")
	b.PrefabUID = r.Uint64("bus_stop.prefab_uid")
	b.NodeUID = r.Uint64("bus_stop.node_uid")
}

func (b *BusStop) encodeBody(w *encoding.Writer, _ Codec) {
	w.Token(b.City)
	w.Uint64(b.PrefabUID)
	w.Uint64(b.NodeUID)
}

// Ferry is a ferry or train port.
type Ferry struct {
	Base         `yaml:",inline"`
	Port         token.Token `yaml:"port"`
	PrefabUID    uint64      `yaml:"prefab_uid"`
	NodeUID      uint64      `yaml:"node_uid"`
	UnloadOffset Vec3        `yaml:"unload_offset,flow"`
}

func (*Ferry) Kind() format.ItemType { return format.ItemFerry }

func (f *Ferry) decodeBody(r *encoding.Reader, _ Codec) {
	f.Port = r.Token("ferry.port")
	f.PrefabUID = r.Uint64("ferry.prefab_uid")
	f.NodeUID = r.Uint64("ferry.node_uid")
	f.UnloadOffset.read(r)
}

func (f *Ferry) encodeBody(w *encoding.Writer, _ Codec) {
	w.Token(f.Port)
	w.Uint64(f.PrefabUID)
	w.Uint64(f.NodeUID)
	f.UnloadOffset.write(w)
}

// City marks the area of a city.
type City struct {
	Base    `yaml:",inline"`
	City    token.Token `yaml:"city"`
	Width   float32     `yaml:"width"`
	Height  float32     `yaml:"height"`
	NodeUID uint64      `yaml:"node_uid"`
}

func (*City) Kind() format.ItemType { return format.ItemCity }

func (c *City) decodeBody(r *encoding.Reader, _ Codec) {
	c.City = r.Token("city.city")
	c.Width = r.Float32("city.width")
	c.Height = r.Float32("city.height")
	c.NodeUID = r.Uint64("city.node_uid")
}

func (c *City) encodeBody(w *encoding.Writer, _ Codec) {
	w.Token(c.City)
	w.Float32(c.Width)
	w.Float32(c.Height)
	w.Uint64(c.NodeUID)
}
