package neraca

import (
	"fmt"
	"sort"

	"github.com/hpratama/neraca/date"
	"github.com/shopspring/decimal"
)

// Outcome reports what an upsert did to the book.
type Outcome int

const (
	Created Outcome = iota
	Updated
	RejectedDuplicate
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case RejectedDuplicate:
		return "rejected duplicate"
	default:
		panic(fmt.Sprintf("unknown outcome %d", o))
	}
}

// UpsertPolicy decides what happens when a snapshot already exists for a date.
type UpsertPolicy int

const (
	// RejectDuplicate leaves the existing snapshot untouched and signals
	// RejectedDuplicate to the caller.
	RejectDuplicate UpsertPolicy = iota
	// Overwrite replaces the existing snapshot's values in place.
	Overwrite
)

// Book is the in-memory table of monthly snapshots, at most one per date.
// It is a plain value owned by the caller for the duration of one
// interaction; mutations return an Outcome and the backing file is written
// separately by SaveBook.
type Book struct {
	snapshots []Snapshot // kept sorted by date ascending
}

// NewBook returns an empty book.
func NewBook() *Book { return &Book{} }

// Len returns the number of snapshots in the book.
func (b *Book) Len() int { return len(b.snapshots) }

// index returns the position of the snapshot exactly matching on, or -1.
func (b *Book) index(on date.Date) int {
	for i, s := range b.snapshots {
		if s.on == on {
			return i
		}
	}
	return -1
}

// Get returns the snapshot exactly matching the date.
func (b *Book) Get(on date.Date) (Snapshot, bool) {
	if i := b.index(on); i >= 0 {
		return b.snapshots[i], true
	}
	return Snapshot{}, false
}

// Upsert records values (aligned positionally to Schema) under the given
// date. When a snapshot already exists at that date the policy decides
// between rejecting the write and replacing the values in place.
func (b *Book) Upsert(on date.Date, values []decimal.Decimal, policy UpsertPolicy) Outcome {
	if i := b.index(on); i >= 0 {
		if policy == RejectDuplicate {
			return RejectedDuplicate
		}
		b.snapshots[i] = NewSnapshot(on, values)
		return Updated
	}
	b.snapshots = append(b.snapshots, NewSnapshot(on, values))
	b.sort()
	return Created
}

// Delete removes the snapshot exactly matching the date. Deleting a date
// that is not present is a no-op, not an error.
func (b *Book) Delete(on date.Date) bool {
	i := b.index(on)
	if i < 0 {
		return false
	}
	b.snapshots = append(b.snapshots[:i], b.snapshots[i+1:]...)
	return true
}

// Snapshots returns the book's snapshots sorted by date ascending.
// Dates are unique so ties cannot occur.
func (b *Book) Snapshots() []Snapshot {
	out := make([]Snapshot, len(b.snapshots))
	copy(out, b.snapshots)
	return out
}

// Between returns the snapshots whose date falls inside the range,
// sorted by date ascending.
func (b *Book) Between(r date.Range) []Snapshot {
	var out []Snapshot
	for _, s := range b.snapshots {
		if r.Contains(s.on) {
			out = append(out, s)
		}
	}
	return out
}

func (b *Book) sort() {
	sort.SliceStable(b.snapshots, func(i, j int) bool {
		return b.snapshots[i].on.Before(b.snapshots[j].on)
	})
}
