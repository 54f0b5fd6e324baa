package pathindex

import (
	"fmt"
	"sort"

	"github.com/Overcraft90/odgi/graph"
)

// npEntry is one position in the succinct "np" (node-pangenomic) layout: either
// a node-boundary marker (Boundary == true) or a (path, step-rank) pair
// recording that the path visits the node at this np position.
type npEntry struct {
	boundary bool
	path     PathID
	stepRank int // 1-based, as stored in nr_iv
}

// Index is the concrete, immutable implementation of Reader. It is built once
// from a graph.Graph and an ordered list of paths (each a sequence of
// oriented handles) and serves all reads without further allocation.
type Index struct {
	g *graph.Graph

	paths      [][]graph.Handle // steps per path, in caller order
	pathLen    []uint64         // L(P) per path
	stepOffset [][]uint64       // stepOffset[p][i] = 0-based nucleotide offset of step i

	np   []npEntry
	npBV *BitVector
}

// New builds a path index over g for the given paths. Each path is a sequence
// of handles; paths must be non-empty. The graph's node
// IDs are assumed compact ({1...N}), matching graph.Graph's invariant.
func New(g *graph.Graph, paths [][]graph.Handle) (*Index, error) {
	if len(paths) == 0 {
		return nil, ErrEmptyPathSet
	}

	idx := &Index{
		g:          g,
		paths:      paths,
		pathLen:    make([]uint64, len(paths)),
		stepOffset: make([][]uint64, len(paths)),
	}

	// occurrences[nodeID] collects every (path, 1-based step rank) that visits
	// that node, in path-then-step order; used below to lay out the np arrays.
	n := g.NodeCount()
	occurrences := make([][]npEntry, n+1) // 1-based, index 0 unused

	for p, steps := range paths {
		offsets := make([]uint64, len(steps))
		var cursor uint64
		for i, h := range steps {
			offsets[i] = cursor
			length, err := g.Length(h)
			if err != nil {
				return nil, fmt.Errorf("pathindex: path %d step %d: %w", p, i, err)
			}
			cursor += length
			occurrences[h.ID] = append(occurrences[h.ID], npEntry{path: PathID(p), stepRank: i + 1})
		}
		idx.stepOffset[p] = offsets
		idx.pathLen[p] = cursor
	}

	totalOccurrences := 0
	for _, o := range occurrences {
		totalOccurrences += len(o)
	}
	np := make([]npEntry, 0, n+totalOccurrences)
	var nodeID uint64
	for nodeID = 1; nodeID <= uint64(n); nodeID++ {
		np = append(np, npEntry{boundary: true})
		np = append(np, occurrences[nodeID]...)
	}
	idx.np = np

	bv := NewBitVector(len(np))
	for i, e := range np {
		if e.boundary {
			bv.Set(i)
		}
	}
	bv.Freeze()
	idx.npBV = bv

	return idx, nil
}

// PathLength returns L(P) for path p.
func (idx *Index) PathLength(p PathID) (uint64, error) {
	if int(p) < 0 || int(p) >= len(idx.pathLen) {
		return 0, fmt.Errorf("%w: %d", ErrPathNotFound, p)
	}

	return idx.pathLen[p], nil
}

// GetStepAtPosition resolves the step covering 0-based offset pos in path p
// via binary search over that path's step-offset table. Complexity: O(log k)
// where k is the number of steps in p.
func (idx *Index) GetStepAtPosition(p PathID, pos uint64) (Step, error) {
	if int(p) < 0 || int(p) >= len(idx.pathLen) {
		return Step{}, fmt.Errorf("%w: %d", ErrPathNotFound, p)
	}
	if pos >= idx.pathLen[p] {
		return Step{}, fmt.Errorf("%w: pos=%d path=%d length=%d", ErrPositionOutOfRange, pos, p, idx.pathLen[p])
	}
	offsets := idx.stepOffset[p]
	// last offset with offsets[i] <= pos
	rank := sort.Search(len(offsets), func(i int) bool { return offsets[i] > pos }) - 1
	if rank < 0 {
		return Step{}, fmt.Errorf("%w: pos=%d path=%d", ErrPositionOutOfRange, pos, p)
	}

	return Step{Path: p, Rank: rank}, nil
}

// GetHandleOfStep returns the handle visited by s.
func (idx *Index) GetHandleOfStep(s Step) (graph.Handle, error) {
	if int(s.Path) < 0 || int(s.Path) >= len(idx.paths) {
		return graph.Handle{}, fmt.Errorf("%w: %d", ErrPathNotFound, s.Path)
	}
	steps := idx.paths[s.Path]
	if s.Rank < 0 || s.Rank >= len(steps) {
		return graph.Handle{}, fmt.Errorf("%w: rank=%d path=%d", ErrPositionOutOfRange, s.Rank, s.Path)
	}

	return steps[s.Rank], nil
}

// GetPositionOfStep returns the 0-based nucleotide offset where s begins.
func (idx *Index) GetPositionOfStep(s Step) (uint64, error) {
	if int(s.Path) < 0 || int(s.Path) >= len(idx.paths) {
		return 0, fmt.Errorf("%w: %d", ErrPathNotFound, s.Path)
	}
	offsets := idx.stepOffset[s.Path]
	if s.Rank < 0 || s.Rank >= len(offsets) {
		return 0, fmt.Errorf("%w: rank=%d path=%d", ErrPositionOutOfRange, s.Rank, s.Path)
	}

	return offsets[s.Rank], nil
}

// NPLen returns len(np_bv).
func (idx *Index) NPLen() int { return len(idx.np) }

// NPBoundary reports whether np position k is a node-boundary marker.
func (idx *Index) NPBoundary(k int) bool { return idx.np[k].boundary }

// NPPath returns the path id recorded at np position k.
func (idx *Index) NPPath(k int) PathID { return idx.np[k].path }

// NPStepRank returns the 1-based step rank recorded at np position k.
func (idx *Index) NPStepRank(k int) int { return idx.np[k].stepRank }

// NPSelect1 returns the np position of the k-th node-boundary bit (1-based k).
func (idx *Index) NPSelect1(k int) int { return idx.npBV.Select1(k) }
