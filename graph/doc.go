// Package graph implements the read-only bidirected sequence graph consumed by
// package sgd: a compact set of node IDs {1...N}, each carrying a DNA sequence,
// whose ends are referenced as oriented Handles.
//
// Graph is safe for concurrent reads and writes: muNodes guards the node table,
// muEdge guards the adjacency lists used by WeaklyConnectedComponents. Once a run
// of the SGD layout engine has started, callers are expected to stop mutating the
// graph — the engine only reads it.
//
//	g := graph.New()
//	g.AddNode(1, "ACGT")
//	g.AddNode(2, "GGCA")
//	g.AddEdge(graph.Handle{ID: 1, Reverse: false}, graph.Handle{ID: 2, Reverse: false})
//
// Node IDs are 1-based; UnpackNumber converts a Handle to the 0-based index used
// throughout package sgd to index the coordinate vector X.
package graph
