package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrDuplicateNode indicates AddNode was called twice for the same ID.
	ErrDuplicateNode = errors.New("graph: duplicate node id")

	// ErrEmptySequence indicates a node was added with a zero-length sequence;
	// the data model requires ell(n) >= 1 for every node.
	ErrEmptySequence = errors.New("graph: node sequence must have length >= 1")

	// ErrNonCompactIDs indicates the node ID set is not exactly {1...N}, which
	// the engine relies on to index the coordinate vector by id-1.
	ErrNonCompactIDs = errors.New("graph: node ids must be compact (1..N)")
)

// Handle is an oriented reference to a node end: (node id, strand).
// Reverse == false is the forward/"+" end; Reverse == true is the reverse/"-" end.
type Handle struct {
	ID      uint64
	Reverse bool
}

// node holds the immutable per-node data: its DNA sequence (only its length
// matters to the layout engine, but the sequence is kept for fidelity with a
// bidirected sequence graph's data model).
type node struct {
	sequence string
}

// Graph is the in-memory bidirected sequence graph.
//
// muNodes guards nodes/order; muEdge guards adjacency. The two are kept separate
// so that WeaklyConnectedComponents (which only needs adjacency) never blocks a
// concurrent node lookup, mirroring the core.Graph muVert/muEdgeAdj split.
type Graph struct {
	muNodes sync.RWMutex
	nodes   map[uint64]*node
	order   []uint64 // insertion order, iterated by ForEachHandle

	muEdge    sync.RWMutex
	adjacency map[uint64]map[uint64]struct{} // undirected, node id -> neighbor ids
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// New creates an empty Graph.
func New(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[uint64]*node),
		adjacency: make(map[uint64]map[uint64]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
