package graph

// WeaklyConnectedComponents partitions the node set by undirected reachability
// through graph edges. Each returned component is the slice of node IDs that
// belong to it, in discovery order; components themselves are returned in the
// order their first node was encountered during the top-level scan (graph
// insertion order), which package sgd's order finalizer later re-ranks by
// mean node id.
//
// Time: O(V+E). Memory: O(V) for the seen set and the output.
func (g *Graph) WeaklyConnectedComponents() [][]uint64 {
	g.muNodes.RLock()
	order := make([]uint64, len(g.order))
	copy(order, g.order)
	g.muNodes.RUnlock()

	seen := make(map[uint64]bool, len(order))
	var comps [][]uint64

	for _, start := range order {
		if seen[start] {
			continue
		}
		queue := []uint64{start}
		seen[start] = true
		var comp []uint64

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			nbrs, err := g.NeighborIDs(u)
			if err != nil {
				continue // unreachable: u came from g.order
			}
			for _, v := range nbrs {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
