package item

import (
	"github.com/arloliu/mapitem/encoding"
	"github.com/arloliu/mapitem/format"
	"github.com/arloliu/mapitem/token"
)

// Sign is a road sign. Navigation signs carry one board per direction;
// OverrideTemplate replaces the text template of the sign model when set.
type Sign struct {
	Base             `yaml:",inline"`
	Model            token.Token `yaml:"model"`
	NodeUID          uint64      `yaml:"node_uid"`
	Look             token.Token `yaml:"look"`
	Variant          token.Token `yaml:"variant"`
	Boards           []SignBoard `yaml:"boards,omitempty"`
	OverrideTemplate string      `yaml:"override_template,omitempty"`
}

func (*Sign) Kind() format.ItemType { return format.ItemSign }

func (s *Sign) decodeBody(r *encoding.Reader, _ Codec) {
	s.Model = r.Token("sign.model")
	s.NodeUID = r.Uint64("sign.node_uid")
	s.Look = r.Token("sign.look")
	s.Variant = r.Token("sign.variant")
	s.Boards = readElems[SignBoard](r, "sign.boards", signBoardMinSize)
	s.OverrideTemplate = r.String("sign.override_template")
}

func (s *Sign) encodeBody(w *encoding.Writer, _ Codec) {
	w.Token(s.Model)
	w.Uint64(s.NodeUID)
	w.Token(s.Look)
	w.Token(s.Variant)
	writeElems(w, "sign.boards", s.Boards)
	w.String("sign.override_template", s.OverrideTemplate)
}
