package item

import (
	"fmt"

	"github.com/arloliu/mapitem/encoding"
	"github.com/arloliu/mapitem/errs"
	"github.com/arloliu/mapitem/format"
	"github.com/arloliu/mapitem/token"
)

// Prefab is an instance of a prefab model such as a junction or a depot.
//
// NodeProfiles has no count of its own: it is either empty or holds exactly
// one entry per node, in NodeUIDs order. On the wire a u32 presence count
// follows Origin and must be 0 or len(NodeUIDs).
type Prefab struct {
	Base            `yaml:",inline"`
	Model           token.Token   `yaml:"model"`
	Variant         token.Token   `yaml:"variant"`
	Look            token.Token   `yaml:"look"`
	AdditionalParts []token.Token `yaml:"additional_parts,omitempty,flow"`
	NodeUIDs        []uint64      `yaml:"node_uids,omitempty,flow"`
	SlaveUIDs       []uint64      `yaml:"slave_uids,omitempty,flow"`
	FerryLinkUID    uint64        `yaml:"ferry_link_uid"`
	Origin          uint16        `yaml:"origin"`
	NodeProfiles    []NodeProfile `yaml:"node_profiles,omitempty"`
}

func (*Prefab) Kind() format.ItemType { return format.ItemPrefab }

func (p *Prefab) decodeBody(r *encoding.Reader, _ Codec) {
	p.Model = r.Token("prefab.model")
	p.Variant = r.Token("prefab.variant")
	p.Look = r.Token("prefab.look")
	p.AdditionalParts = encoding.ReadTokens(r, "prefab.additional_parts")
	p.NodeUIDs = encoding.ReadUint64s(r, "prefab.node_uids")
	p.SlaveUIDs = encoding.ReadUint64s(r, "prefab.slave_uids")
	p.FerryLinkUID = r.Uint64("prefab.ferry_link_uid")
	p.Origin = r.Uint16("prefab.origin")

	off := r.Offset()
	present := r.Uint32("prefab.node_profiles")
	if r.Err() != nil {
		return
	}
	switch {
	case present == 0:
		p.NodeProfiles = nil
	case int64(present) != int64(len(p.NodeUIDs)):
		r.FailAt(off, "prefab.node_profiles", fmt.Errorf("%w: %d node profiles for %d nodes",
			errs.ErrCountMismatch, present, len(p.NodeUIDs)))
	default:
		p.NodeProfiles = encoding.ReadSeqN(r, "prefab.node_profiles", len(p.NodeUIDs), nodeProfileSize,
			func(r *encoding.Reader) NodeProfile {
				var np NodeProfile
				np.read(r)

				return np
			})
	}
}

func (p *Prefab) encodeBody(w *encoding.Writer, _ Codec) {
	w.Token(p.Model)
	w.Token(p.Variant)
	w.Token(p.Look)
	encoding.WriteTokens(w, "prefab.additional_parts", p.AdditionalParts)
	encoding.WriteUint64s(w, "prefab.node_uids", p.NodeUIDs)
	encoding.WriteUint64s(w, "prefab.slave_uids", p.SlaveUIDs)
	w.Uint64(p.FerryLinkUID)
	w.Uint16(p.Origin)
	w.Count("prefab.node_profiles", len(p.NodeProfiles))
	encoding.WriteSeqN(w, p.NodeProfiles, func(w *encoding.Writer, np NodeProfile) { np.write(w) })
}

func (p *Prefab) validate() error {
	if len(p.NodeProfiles) != 0 && len(p.NodeProfiles) != len(p.NodeUIDs) {
		return fmt.Errorf("%w: prefab %d has %d node profiles for %d nodes",
			errs.ErrInvalidItem, p.UID, len(p.NodeProfiles), len(p.NodeUIDs))
	}

	return nil
}
