// SPDX-License-Identifier: MIT
package sgd

import (
	"sort"

	"github.com/Overcraft90/odgi/pathindex"
)

// intervalIndex maps a pangenomic nucleotide position to the path that owns
// it and that path's starting offset. It is built once from the
// caller-supplied path order; offsets are disjoint and sorted by
// construction, so overlap() is a binary search rather than a general
// interval tree — the ranges never overlap, which makes a tree unnecessary.
type intervalIndex struct {
	starts  []uint64
	lengths []uint64
	paths   []pathindex.PathID
	total   uint64
}

// newIntervalIndex builds the interval index over paths, in the given order,
// querying each path's length from idx.
func newIntervalIndex(idx pathindex.Reader, paths []pathindex.PathID) (*intervalIndex, error) {
	ii := &intervalIndex{
		starts:  make([]uint64, len(paths)),
		lengths: make([]uint64, len(paths)),
		paths:   append([]pathindex.PathID(nil), paths...),
	}
	var offset uint64
	for i, p := range paths {
		l, err := idx.PathLength(p)
		if err != nil {
			return nil, err
		}
		ii.starts[i] = offset
		ii.lengths[i] = l
		offset += l
	}
	ii.total = offset

	return ii, nil
}

// overlap resolves the path covering 0-based pangenomic position pos, along
// with that path's start offset. Returns ErrIndexInconsistency if pos falls
// outside every interval — unreachable when pos in [0, total).
func (ii *intervalIndex) overlap(pos uint64) (pathindex.PathID, uint64, error) {
	// last interval with starts[i] <= pos
	i := sort.Search(len(ii.starts), func(i int) bool { return ii.starts[i] > pos }) - 1
	if i < 0 || pos >= ii.starts[i]+ii.lengths[i] {
		return 0, 0, indexErrorf("no interval covers position %d (total=%d)", pos, ii.total)
	}

	return ii.paths[i], ii.starts[i], nil
}
