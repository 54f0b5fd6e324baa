// Package pathindex implements the read-only path index consumed by package
// sgd: for every embedded path, the sequence of
// oriented node visits and their cumulative nucleotide offsets, plus the
// succinct "np" (node-pangenomic) layout — a bit-vector marking node-boundary
// positions and two integer arrays recording, for every path step and every
// node-boundary position, the owning path id and step rank.
//
// Index is built once from a graph and a caller-supplied ordered list of paths,
// then never mutated; every accessor is a pure read. Construction (New) does
// all the work so that queries are O(log n) or O(1).
package pathindex
