package item

import (
	"fmt"

	"github.com/arloliu/mapitem/encoding"
	"github.com/arloliu/mapitem/errs"
	"github.com/arloliu/mapitem/format"
	"github.com/arloliu/mapitem/section"
)

// Compound groups child items that are loaded and culled together.
//
// Children are complete item records, header included, and may themselves be
// compounds up to the codec's nesting limit.
type Compound struct {
	Base    `yaml:",inline"`
	NodeUID uint64 `yaml:"node_uid"`
	Items   []Item `yaml:"-"`
}

func (*Compound) Kind() format.ItemType { return format.ItemCompound }

func (c *Compound) decodeBody(r *encoding.Reader, codec Codec) {
	c.NodeUID = r.Uint64("compound.node_uid")
	if !r.Enter("compound.items", codec.maxDepth()) {
		return
	}
	c.Items = encoding.ReadSeq(r, "compound.items", section.ItemHeaderSize, codec.read)
	r.Leave()
}

func (c *Compound) encodeBody(w *encoding.Writer, codec Codec) {
	w.Uint64(c.NodeUID)
	if !w.Enter("compound.items", codec.maxDepth()) {
		return
	}
	encoding.WriteSeq(w, "compound.items", c.Items, codec.write)
	w.Leave()
}

func (c *Compound) validate() error {
	for i, child := range c.Items {
		if isNil(child) {
			return fmt.Errorf("%w: compound %d child %d is nil", errs.ErrInvalidItem, c.UID, i)
		}
	}

	return nil
}

// Walk calls fn for every item in items and, depth first, for every child of
// each compound. It stops early when fn returns false.
func Walk(items []Item, fn func(it Item, depth int) bool) bool {
	return walk(items, 0, fn)
}

func walk(items []Item, depth int, fn func(Item, int) bool) bool {
	for _, it := range items {
		if isNil(it) {
			continue
		}
		if !fn(it, depth) {
			return false
		}
		if c, ok := it.(*Compound); ok {
			if !walk(c.Items, depth+1, fn) {
				return false
			}
		}
	}

	return true
}
