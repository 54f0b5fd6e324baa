// SPDX-License-Identifier: MIT
package sgd

import (
	"sort"

	"github.com/Overcraft90/odgi/graph"
)

// layoutEntry is one node's sort key for FinalizeOrder: which weakly
// connected component it belongs to (by rank, not raw component index), its
// 1-D coordinate, and the handle itself as the final tie-breaker.
type layoutEntry struct {
	component int
	pos       float64
	handle    graph.Handle
}

// handleInt packs a handle into a single comparable integer (id, then
// orientation), matching the ordering a bit-packed handle representation
// would sort under.
func handleInt(h graph.Handle) uint64 {
	v := h.ID << 1
	if h.Reverse {
		v |= 1
	}

	return v
}

// componentRanks assigns every node id a rank among the graph's weakly
// connected components, ordered by each component's mean node id. Components
// whose mean id is smaller sort first, which keeps the final order stable
// across runs that don't change the graph's topology.
func componentRanks(g *graph.Graph) map[uint64]int {
	components := g.WeaklyConnectedComponents()

	type meanID struct {
		mean float64
		idx  int
	}
	ranked := make([]meanID, len(components))
	for i, comp := range components {
		var sum uint64
		for _, id := range comp {
			sum += id
		}
		ranked[i] = meanID{mean: float64(sum) / float64(len(comp)), idx: i}
	}
	sort.Slice(ranked, func(a, b int) bool { return ranked[a].mean < ranked[b].mean })

	rankOf := make([]int, len(components))
	for finalRank, r := range ranked {
		rankOf[r.idx] = finalRank
	}

	nodeComponent := make(map[uint64]int, g.NodeCount())
	for i, comp := range components {
		for _, id := range comp {
			nodeComponent[id] = rankOf[i]
		}
	}

	return nodeComponent
}

// FinalizeOrder turns a coordinate vector into a total node order: sort by
// (component rank, coordinate, handle integer). X must be indexed by
// graph.UnpackNumber(handle), i.e. the same convention seedCoordVector uses.
func FinalizeOrder(g *graph.Graph, X []float64) []graph.Handle {
	nodeComponent := componentRanks(g)

	entries := make([]layoutEntry, 0, g.NodeCount())
	g.ForEachHandle(func(h graph.Handle) {
		entries = append(entries, layoutEntry{
			component: nodeComponent[h.ID],
			pos:       X[graph.UnpackNumber(h)],
			handle:    h,
		})
	})

	sort.Slice(entries, func(a, b int) bool {
		ea, eb := entries[a], entries[b]
		if ea.component != eb.component {
			return ea.component < eb.component
		}
		if ea.pos != eb.pos {
			return ea.pos < eb.pos
		}

		return handleInt(ea.handle) < handleInt(eb.handle)
	})

	order := make([]graph.Handle, len(entries))
	for i, e := range entries {
		order[i] = e.handle
	}

	return order
}

// OrderSnapshot is one recorded node order during a run, paired with the
// outer iteration it was captured at.
type OrderSnapshot struct {
	Iteration uint64
	Order     []graph.Handle
}

// FinalizeSnapshots converts every coordinate Snapshot into an OrderSnapshot
// using the same component ranking FinalizeOrder uses, so snapshot orders
// and the final order are directly comparable.
func FinalizeSnapshots(g *graph.Graph, snapshots []Snapshot) []OrderSnapshot {
	out := make([]OrderSnapshot, len(snapshots))
	for i, s := range snapshots {
		out[i] = OrderSnapshot{Iteration: s.Iteration, Order: FinalizeOrder(g, s.X)}
	}

	return out
}
