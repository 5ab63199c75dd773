// Package eventqueue implements the min-heap of candidate adjacent-pair
// exchanges consumed by the rotational sweep in package sweep.
//
// Design:
//
//   - A standard container/heap min-heap, keyed by Event.Theta. Duplicate
//     events are permitted; the heap never attempts to remove or decrease
//     an entry when the positions it refers to are mutated by a swap
//     elsewhere in the ordering.
//   - This mirrors the "lazy decrease-key" discipline lvlath's dijkstra
//     package uses for its own priority queue: push fresh entries, let
//     stale ones sit in the heap, and let the caller recognize staleness
//     when an entry is popped (here, via pointer-identity comparison
//     against the items currently at Event.Index and Event.Index+1).
//
// Complexity: Push/Pop are O(log n); Size/Empty are O(1).
package eventqueue
