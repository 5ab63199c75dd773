// Package dataset defines the item and dataset value types consumed by the
// rotational sweep in package sweep.
//
// A Dataset owns an immutable slice of *Item. Items are allocated once, at
// construction time, and never copied thereafter: every consumer of a
// Dataset (the sweep engine, an oracle) works with the same *Item pointers,
// so pointer identity is a reliable, cheap way to recognize "the same item"
// across an ordering that has been sorted, swapped, and re-sorted many
// times over the course of a sweep.
//
// Items carry two numeric coordinates (X, Y) that participate in the
// scoring arithmetic, plus zero or more opaque group labels consulted only
// by a fairness oracle (package oracle). The dataset package itself never
// inspects group labels.
//
// Ingestion from a file (CSV, COMPAS-style exports, or anything else) is
// explicitly out of scope here; construct a Dataset from in-memory Items,
// however they were obtained.
package dataset
