// Package fairsweep is the top-level namespace for a rotational
// plane-sweep engine that computes, for a two-dimensional linear scoring
// function f_w(x, y) = w1*x + w2*y, every weight direction θ ∈ [0, π/2] at
// which a fairness oracle's verdict on the induced ranking holds.
//
// The module has no code at this package; it exists to host the shared
// module path and a single entry point for documentation. The working
// packages are:
//
//   - dataset: immutable, pointer-identity-stable item collections.
//   - eventqueue: the lazy decrease-key min-heap driving the sweep.
//   - oracle: the fairness-predicate interface plus two concrete oracles
//     (single-group top-k cap, multi-attribute bracketed constraints).
//   - oracle/oracleconfig: YAML loading for the bracketed oracle.
//   - sweep: the rotational sweep itself.
//   - locate: the online locator that snaps an arbitrary weight vector to
//     the nearest boundary of a precomputed sweep.
//
// Runnable Example functions for the sweep live in sweep/example_test.go.
package fairsweep
