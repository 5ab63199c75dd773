// Package oracle defines the fairness-predicate contract consumed by
// package sweep, plus a small set of ready-made oracles.
//
// An Oracle is a pure function of the current ordering: same ordering
// content in, same bool (or error) out. The sweep engine calls Evaluate
// once per distinct ordering it produces; it never calls it concurrently
// and never inspects Reset itself — Reset exists purely so a caller
// composing several sweeps over different dataset slices can tell a
// stateful oracle (one that memoizes something expensive, e.g. a top-k
// cut point) to drop any cached state between independent runs.
//
// Included oracles:
//
//   - TopKCap implements the single-protected-group cap described as FM1
//     in the fairness-ranking literature this package's sweep engine was
//     built for: at most a fraction of the top-k ranked items may belong
//     to a named protected group.
//   - Bracketed implements multi-attribute bracketed constraints: for
//     several attributes at once, each group's observed fraction of the
//     top-k must fall within a caller-supplied [min, max] bracket.
//   - Func adapts an arbitrary predicate function to the Oracle interface.
//
// Both TopKCap and Bracketed count "top-k" from index 0 of the ordering
// they are handed — the convention the sweep's Phase-1 descending-by-X
// sort establishes for "best". An oracle that needs the opposite
// convention should reverse its own view of the slice; the sweep itself
// is, by design, indifferent to which end of the ordering an oracle calls
// "top".
package oracle
