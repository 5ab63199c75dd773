// Package sweep implements the rotational plane-sweep that is the
// computational heart of this module: given a dataset and a fairness
// oracle, it enumerates every angular direction θ ∈ [0, π/2] at which the
// oracle's verdict on the induced ranking can possibly change, and returns
// the sorted list of boundaries delimiting the satisfactory regions.
//
// Algorithm overview:
//
//   - The ordering starts as the dataset sorted descending by X — the
//     ranking under direction (1, 0), i.e. θ = 0.
//   - Each adjacent pair (ordering[i], ordering[i+1]) with a strictly
//     smaller Y on the left exchanges rank at a single angle θ in
//     [0, π/2); that angle becomes an eventqueue.Event.
//   - Events are popped in increasing θ order. A popped event is stale
//     (and silently dropped) if the two items it names are no longer at
//     positions i, i+1 — some earlier swap already moved one of them.
//   - A valid pop swaps the pair and recomputes up to two new events, for
//     the pairs now adjacent to the swap site.
//   - Phase 1 advances θ from 0 until the oracle first returns true.
//     Phase 2 then records every true/false transition as a Start/End
//     boundary pair until the queue empties, closing any still-open
//     region at θ = π/2.
//
// Complexity: O(n log n) for the initial sort, O(n) for the initial event
// population, and O(n²) swaps worst case (each pair exchanges at most once
// in [0, π/2]), each swap doing O(log n) heap work — O(n² log n) overall.
//
// Concurrency: Run is synchronous and single-threaded; its ordering and
// event queue are private to the call and never shared. Run independent
// sweeps over independent datasets on independent goroutines to
// parallelize across datasets.
package sweep
