// Package uidindex tracks item uids by position and detects duplicates.
package uidindex

// Tracker maps uids to the positions they were seen at. A uid seen more than
// once is a duplicate; duplicates are recorded, never rejected.
type Tracker struct {
	first      map[uint64]int   // uid -> first position
	extra      map[uint64][]int // uid -> later positions, duplicates only
	duplicates []uint64         // duplicate uids in the order they first repeated
	count      int
}

// NewTracker creates a tracker sized for about capacity uids.
func NewTracker(capacity int) *Tracker {
	return &Tracker{
		first: make(map[uint64]int, max(capacity, 0)),
		extra: make(map[uint64][]int),
	}
}

// Track records that uid occurs at pos. It reports whether uid had been seen
// before.
func (t *Tracker) Track(uid uint64, pos int) bool {
	t.count++

	if _, exists := t.first[uid]; !exists {
		t.first[uid] = pos
		return false
	}

	if _, seen := t.extra[uid]; !seen {
		t.duplicates = append(t.duplicates, uid)
	}
	t.extra[uid] = append(t.extra[uid], pos)

	return true
}

// Lookup returns the first position of uid.
func (t *Tracker) Lookup(uid uint64) (int, bool) {
	pos, ok := t.first[uid]
	return pos, ok
}

// Positions returns every position of uid in tracking order.
func (t *Tracker) Positions(uid uint64) []int {
	pos, ok := t.first[uid]
	if !ok {
		return nil
	}

	return append([]int{pos}, t.extra[uid]...)
}

// HasDuplicates reports whether any uid was tracked more than once.
func (t *Tracker) HasDuplicates() bool {
	return len(t.duplicates) > 0
}

// Duplicates returns the uids tracked more than once.
func (t *Tracker) Duplicates() []uint64 {
	return t.duplicates
}

// Count returns the number of Track calls.
func (t *Tracker) Count() int {
	return t.count
}

// Unique returns the number of distinct uids.
func (t *Tracker) Unique() int {
	return len(t.first)
}

// Reset clears all tracked uids, keeping allocated capacity.
func (t *Tracker) Reset() {
	clear(t.first)
	clear(t.extra)
	t.duplicates = t.duplicates[:0]
	t.count = 0
}
