package oracle

import "github.com/nadav-alali/fairsweep/dataset"

// Oracle is a fairness predicate evaluated against the sweep's current
// ordering. Evaluate must be deterministic in the ordering's content and
// total: it must not hang or loop, and any failure must be reported via
// the returned error rather than a panic, since package sweep treats an
// Oracle error as fatal and propagates it to its caller verbatim.
//
// Reset clears any internal cache an Oracle implementation keeps. The
// sweep engine never calls Reset; it is a hook for callers that reuse one
// Oracle value across multiple independent sweeps.
type Oracle interface {
	Evaluate(ordering []*dataset.Item) (bool, error)
	Reset()
}

// Func adapts a plain predicate function to the Oracle interface. Its
// Reset is a no-op, matching a pure function's lack of state.
type Func func(ordering []*dataset.Item) (bool, error)

// Evaluate calls f.
func (f Func) Evaluate(ordering []*dataset.Item) (bool, error) { return f(ordering) }

// Reset does nothing; Func values are stateless.
func (f Func) Reset() {}

// topK computes max(1, floor(n*fraction)), clamped to n.
func topK(n int, fraction float64) int {
	k := int(float64(n) * fraction)
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}

	return k
}
