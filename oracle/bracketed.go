package oracle

import "github.com/nadav-alali/fairsweep/dataset"

// Bracket is an inclusive [Min, Max] fraction window.
type Bracket struct {
	Min, Max float64
}

// Bracketed implements multi-attribute bracketed constraints: for each
// configured attribute slot, every named group's observed fraction of the
// top-k must fall within its Bracket.
type Bracketed struct {
	topKFraction float64
	constraints  map[int]map[string]Bracket
}

// NewBracketed constructs a Bracketed oracle from a map of attribute slot
// to per-group Bracket. At least one slot with at least one bracket is
// required; every Bracket must satisfy 0 <= Min <= Max <= 1.
func NewBracketed(topKFraction float64, constraints map[int]map[string]Bracket) (*Bracketed, error) {
	if topKFraction <= 0 || topKFraction > 1 {
		return nil, ErrBadFraction
	}
	if len(constraints) == 0 {
		return nil, ErrNoConstraints
	}

	owned := make(map[int]map[string]Bracket, len(constraints))
	for slot, groups := range constraints {
		if slot < 0 {
			return nil, ErrBadGroupSlot
		}
		if len(groups) == 0 {
			return nil, ErrNoConstraints
		}

		ownedGroups := make(map[string]Bracket, len(groups))
		for group, b := range groups {
			if b.Min < 0 || b.Max > 1 || b.Min > b.Max {
				return nil, ErrBadBracket
			}
			ownedGroups[group] = b
		}
		owned[slot] = ownedGroups
	}

	return &Bracketed{topKFraction: topKFraction, constraints: owned}, nil
}

// Evaluate reports whether every configured group, on every configured
// attribute slot, falls within its bracket among the top-k items (counted
// from index 0).
func (o *Bracketed) Evaluate(ordering []*dataset.Item) (bool, error) {
	n := len(ordering)
	if n == 0 {
		return true, nil
	}

	k := topK(n, o.topKFraction)
	top := ordering[:k]

	for slot, groups := range o.constraints {
		counts := make(map[string]int, len(groups))
		for _, it := range top {
			if v, ok := it.Group(slot); ok {
				counts[v]++
			}
		}

		for group, b := range groups {
			fraction := float64(counts[group]) / float64(k)
			if fraction < b.Min || fraction > b.Max {
				return false, nil
			}
		}
	}

	return true, nil
}

// Reset is a no-op: Bracketed keeps no state across Evaluate calls.
func (o *Bracketed) Reset() {}
