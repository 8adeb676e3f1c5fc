package stream

import (
	"github.com/arloliu/mapitem/format"
	"github.com/arloliu/mapitem/internal/uidindex"
	"github.com/arloliu/mapitem/item"
	"github.com/arloliu/mapitem/section"
)

// Map is a decoded item stream: the file header and the top-level items in
// stream order.
type Map struct {
	Header section.FileHeader
	Items  []item.Item
}

// Len returns the number of top-level items.
func (m *Map) Len() int {
	return len(m.Items)
}

// CountByKind counts every item, compound children included, per kind.
func (m *Map) CountByKind() map[format.ItemType]int {
	counts := make(map[format.ItemType]int)
	item.Walk(m.Items, func(it item.Item, _ int) bool {
		counts[it.Kind()]++
		return true
	})

	return counts
}

// Index builds a uid index over every item, compound children included.
// Duplicate uids are recorded; Lookup returns the first occurrence in
// depth-first stream order.
func (m *Map) Index() *Index {
	idx := &Index{}
	item.Walk(m.Items, func(it item.Item, _ int) bool {
		idx.items = append(idx.items, it)
		return true
	})

	idx.tracker = uidindex.NewTracker(len(idx.items))
	for pos, it := range idx.items {
		idx.tracker.Track(it.Header().UID, pos)
	}

	return idx
}

// Index maps uids to items.
type Index struct {
	items   []item.Item
	tracker *uidindex.Tracker
}

// Lookup returns the first item with the given uid.
func (x *Index) Lookup(uid uint64) (item.Item, bool) {
	pos, ok := x.tracker.Lookup(uid)
	if !ok {
		return nil, false
	}

	return x.items[pos], true
}

// LookupAll returns every item with the given uid.
func (x *Index) LookupAll(uid uint64) []item.Item {
	positions := x.tracker.Positions(uid)
	if len(positions) == 0 {
		return nil
	}

	out := make([]item.Item, len(positions))
	for i, pos := range positions {
		out[i] = x.items[pos]
	}

	return out
}

// Duplicates returns the uids carried by more than one item.
func (x *Index) Duplicates() []uint64 {
	return x.tracker.Duplicates()
}

// Len returns the number of indexed items.
func (x *Index) Len() int {
	return len(x.items)
}
