package oracle

import "github.com/nadav-alali/fairsweep/dataset"

// TopKCap implements the single-protected-group cap fairness model (FM1):
// among the top-k items of the current ordering, at most MaxProtected
// fraction of them may belong to ProtectedValue.
type TopKCap struct {
	protectedValue  string
	groupSlot       int
	topKFraction    float64
	maxProtectedFrc float64
}

// TopKCapOption customizes a TopKCap beyond its required parameters.
type TopKCapOption func(*TopKCap)

// WithGroupSlot sets which Item.Groups slot holds the value compared
// against ProtectedValue. Defaults to slot 0. Panics on a negative slot,
// matching the validate-and-panic discipline of a functional option
// constructor.
func WithGroupSlot(slot int) TopKCapOption {
	if slot < 0 {
		panic(ErrBadGroupSlot.Error())
	}

	return func(o *TopKCap) { o.groupSlot = slot }
}

// NewTopKCap constructs a TopKCap oracle.
//
//   - protectedValue: the group label considered "protected"; must be non-empty.
//   - topKFraction: fraction of the ordering's head to examine; must lie in (0, 1].
//   - maxProtectedFraction: the cap on the protected share of the top-k; must lie in [0, 1].
func NewTopKCap(protectedValue string, topKFraction, maxProtectedFraction float64, opts ...TopKCapOption) (*TopKCap, error) {
	if protectedValue == "" {
		return nil, ErrEmptyProtectedValue
	}
	if topKFraction <= 0 || topKFraction > 1 {
		return nil, ErrBadFraction
	}
	if maxProtectedFraction < 0 || maxProtectedFraction > 1 {
		return nil, ErrBadCap
	}

	o := &TopKCap{
		protectedValue:  protectedValue,
		groupSlot:       0,
		topKFraction:    topKFraction,
		maxProtectedFrc: maxProtectedFraction,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o, nil
}

// Evaluate reports whether the protected group's share of the top-k items
// (counted from index 0) does not exceed the configured cap.
func (o *TopKCap) Evaluate(ordering []*dataset.Item) (bool, error) {
	n := len(ordering)
	if n == 0 {
		return true, nil
	}

	k := topK(n, o.topKFraction)

	var protected int
	for _, it := range ordering[:k] {
		if v, ok := it.Group(o.groupSlot); ok && v == o.protectedValue {
			protected++
		}
	}

	fraction := float64(protected) / float64(k)

	return fraction <= o.maxProtectedFrc, nil
}

// Reset is a no-op: TopKCap keeps no state across Evaluate calls.
func (o *TopKCap) Reset() {}
