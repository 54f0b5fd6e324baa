package graph

import "fmt"

// AddNode registers a node with the given 1-based ID and DNA sequence.
// Returns ErrEmptySequence if seq is empty, ErrDuplicateNode if id was already
// added. Complexity: O(1) amortized.
func (g *Graph) AddNode(id uint64, seq string) error {
	if len(seq) == 0 {
		return fmt.Errorf("%w: node %d", ErrEmptySequence, id)
	}

	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}
	g.nodes[id] = &node{sequence: seq}
	g.order = append(g.order, id)

	g.muEdge.Lock()
	g.adjacency[id] = make(map[uint64]struct{})
	g.muEdge.Unlock()

	return nil
}

// AddEdge connects the two node ends referenced by a and b with an undirected
// adjacency link. Orientation on the handles does not affect adjacency — it only
// matters to the path index and the SGD sampler. Returns ErrNodeNotFound if
// either endpoint is unknown.
func (g *Graph) AddEdge(a, b Handle) error {
	g.muNodes.RLock()
	_, aok := g.nodes[a.ID]
	_, bok := g.nodes[b.ID]
	g.muNodes.RUnlock()
	if !aok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, a.ID)
	}
	if !bok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, b.ID)
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	g.adjacency[a.ID][b.ID] = struct{}{}
	g.adjacency[b.ID][a.ID] = struct{}{}

	return nil
}

// NodeCount returns the number of nodes in the graph. Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	return len(g.nodes)
}

// Length returns the DNA sequence length of the node referenced by h.
// Complexity: O(1).
func (g *Graph) Length(h Handle) (uint64, error) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	n, ok := g.nodes[h.ID]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, h.ID)
	}

	return uint64(len(n.sequence)), nil
}

// IsReverse reports the strand carried by the handle. It is a pure projection
// of Handle.Reverse, exposed as a function so callers outside this package
// never need to touch Handle's fields directly.
func IsReverse(h Handle) bool { return h.Reverse }

// ID returns the 1-based node identifier carried by the handle.
func ID(h Handle) uint64 { return h.ID }

// UnpackNumber converts a Handle's node ID to the 0-based index used to index
// the coordinate vector X in package sgd: i = id - 1.
func UnpackNumber(h Handle) uint64 { return h.ID - 1 }

// ForEachHandle calls fn once per node, in insertion order, with the node's
// forward handle. This is the graph's one stable iteration order — package sgd
// relies on it to seed the initial coordinate vector.
func (g *Graph) ForEachHandle(fn func(Handle)) {
	g.muNodes.RLock()
	order := make([]uint64, len(g.order))
	copy(order, g.order)
	g.muNodes.RUnlock()

	for _, id := range order {
		fn(Handle{ID: id, Reverse: false})
	}
}

// NeighborIDs returns the node IDs adjacent to id via any edge, in arbitrary
// order. Used only by WeaklyConnectedComponents. Complexity: O(degree(id)).
func (g *Graph) NeighborIDs(id uint64) ([]uint64, error) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	out := make([]uint64, 0, len(adj))
	for nbr := range adj {
		out = append(out, nbr)
	}

	return out, nil
}

// ValidateCompactIDs checks that the node ID set is exactly {1...N}, the
// invariant package sgd relies on to index X by id-1 without a lookup table.
func (g *Graph) ValidateCompactIDs() error {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	n := uint64(len(g.nodes))
	for id := uint64(1); id <= n; id++ {
		if _, ok := g.nodes[id]; !ok {
			return fmt.Errorf("%w: missing id %d among %d nodes", ErrNonCompactIDs, id, n)
		}
	}

	return nil
}
