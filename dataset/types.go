package dataset

// Item is a single scored row: two real-valued coordinates that participate
// in the linear scoring function f_w(x,y) = w1*x + w2*y, plus zero or more
// opaque group labels used solely by a fairness oracle.
//
// Items are immutable once placed in a Dataset. The sweep engine never
// mutates an Item's fields; it only reorders *Item pointers.
type Item struct {
	// X and Y are the two scoring coordinates.
	X, Y float64

	// Groups holds opaque group-label fields at fixed positional slots
	// agreed between the caller and whichever oracle is in use. The
	// dataset and sweep packages never interpret these values.
	Groups []string
}

// Group returns the group label at the given slot and whether that slot
// exists on this item. Out-of-range slots report ok=false rather than
// panicking, since group vectors are allowed to vary in length across a
// loosely-typed dataset.
func (it *Item) Group(slot int) (value string, ok bool) {
	if slot < 0 || slot >= len(it.Groups) {
		return "", false
	}
	return it.Groups[slot], true
}

// Dataset is an immutable collection of Items. A Dataset is built once and
// handed to sweep.Run as a pointer; the sweep consumes a private ordering
// snapshot and never mutates the Dataset itself.
type Dataset struct {
	items []*Item
}

// New copies items into a new Dataset, allocating each Item exactly once so
// that its address becomes a stable identity for the lifetime of the
// Dataset. Returns ErrEmptyDataset if fewer than two items are supplied.
func New(items []Item) (*Dataset, error) {
	if len(items) < 2 {
		return nil, ErrEmptyDataset
	}

	owned := make([]*Item, len(items))
	for i := range items {
		it := items[i] // copy by value, then take the address of the copy
		owned[i] = &it
	}

	return &Dataset{items: owned}, nil
}

// Len reports the number of items in the Dataset.
func (d *Dataset) Len() int {
	return len(d.items)
}

// Snapshot returns a fresh slice referencing the Dataset's items in their
// original order. The slice itself may be freely sorted and mutated by the
// caller (e.g. the sweep engine's ordering) without affecting the Dataset,
// since the *Item pointers it contains are never mutated.
func (d *Dataset) Snapshot() []*Item {
	out := make([]*Item, len(d.items))
	copy(out, d.items)
	return out
}
