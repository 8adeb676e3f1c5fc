package section

import (
	"fmt"

	"github.com/arloliu/mapitem/encoding"
	"github.com/arloliu/mapitem/errs"
	"github.com/arloliu/mapitem/format"
)

// ItemHeader is the common prefix of every item record.
type ItemHeader struct {
	// Type is the item type tag.
	Type format.ItemType
	// UID identifies the item and is the key other records link to.
	UID uint64
	// Bounds is the item's bounding volume.
	Bounds KDOP
	// Flags is the item-specific flag word.
	Flags uint32
	// ViewDistance is the view distance in meters divided by 10.
	ViewDistance uint8
}

// ReadItemType reads an item tag and validates it against the closed
// enumeration. An unknown tag fails with errs.ErrUnknownItemType and leaves
// the rest of the header unread.
func ReadItemType(r *encoding.Reader) format.ItemType {
	off := r.Offset()
	tag := format.ItemType(r.Uint8("item.type"))
	if r.Err() != nil {
		return 0
	}
	if !tag.IsValid() {
		r.FailAt(off, "item.type", fmt.Errorf("%w: 0x%02X", errs.ErrUnknownItemType, uint8(tag)))
		return 0
	}

	return tag
}

// Read decodes the header, tag included.
func (h *ItemHeader) Read(r *encoding.Reader) {
	h.Type = ReadItemType(r)
	h.ReadFields(r)
}

// ReadFields decodes the header fields that follow the tag.
func (h *ItemHeader) ReadFields(r *encoding.Reader) {
	h.UID = r.Uint64("item.uid")
	h.Bounds.Read(r)
	h.Flags = r.Uint32("item.flags")
	h.ViewDistance = r.Uint8("item.view_distance")
}

// Write encodes the header, tag included.
func (h *ItemHeader) Write(w *encoding.Writer) {
	w.Grow(ItemHeaderSize)
	w.Uint8(uint8(h.Type))
	w.Uint64(h.UID)
	h.Bounds.Write(w)
	w.Uint32(h.Flags)
	w.Uint8(h.ViewDistance)
}

// ViewDistanceMeters returns the view distance in meters.
func (h *ItemHeader) ViewDistanceMeters() int {
	return int(h.ViewDistance) * 10
}
