// Package odgi computes 1-D layouts for pangenome variation graphs using
// path-guided stochastic gradient descent.
//
// A pangenome graph is a set of nodes (sequence fragments) and edges between
// their ends, with a collection of paths (haplotypes, references) threaded
// through it as ordered sequences of oriented node visits. Laying such a
// graph out along a single numeric axis so that path-adjacent nodes end up
// coordinate-adjacent makes the graph viewable, sortable and compressible.
//
// The module is organized into three packages:
//
//	graph/     — the bidirected handle graph: compact node ids, node ends,
//	             sequence lengths, weakly-connected-component partitioning
//	pathindex/ — a read-only index over a graph's paths: per-step positions,
//	             succinct node/step boundary bitvector accessors
//	sgd/       — the layout engine itself: learning-rate schedule, Zipfian
//	             term sampler, Hogwild! update kernel, concurrent and
//	             deterministic drivers, and the order finalizer
//
// sgd.Layout is the one-call entry point: given a *graph.Graph and a
// pathindex.Reader over it, it returns the node order derived from the
// converged coordinate vector.
//
//	result, err := sgd.Layout(g, idx, paths, sgd.WithIterMax(100))
package odgi
