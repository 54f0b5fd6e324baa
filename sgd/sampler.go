// SPDX-License-Identifier: MIT
//
// sampler.go — the term sampler: produces one SGD term (i, j, d_ij) given
// a thread-local RNG, dispatching across the three sampling modes with
// node-sampling taking precedence over path-sampling when both are set.

package sgd

import (
	"errors"
	"math"
	"math/rand"

	"github.com/Overcraft90/odgi/graph"
	"github.com/Overcraft90/odgi/pathindex"
)

// Term is one SGD training example: a pair of node-end indices (0-based, as
// used to index CoordVector) and their in-path nucleotide distance.
type Term struct {
	I, J int
	Dij  float64
	Path pathindex.PathID
}

// sampleCtx bundles everything sampleTerm needs to resolve a term, so the
// function signature stays readable across the three dispatch modes.
type sampleCtx struct {
	g        *graph.Graph
	idx      pathindex.Reader
	interval *intervalIndex
	zipf     *Zipf
	numNodes uint64
	cfg      Config
}

// sampleTerm attempts to produce one Term. ok is false whenever the draw
// lands on a position that yields no usable pair (the caller should simply
// draw again); err is non-nil only for the fatal IndexInconsistency case.
func sampleTerm(sc *sampleCtx, rng *rand.Rand) (Term, bool, error) {
	path, posA, pathLenMinus1, ok, err := pickStartPosition(sc, rng)
	if err != nil {
		if errors.Is(err, ErrIndexInconsistency) {
			return Term{}, false, err
		}
		return Term{}, false, indexErrorf("%v", err)
	}
	if !ok {
		return Term{}, false, nil
	}

	z := sc.zipf.Draw(rng)
	posB, ok := pickSecondPosition(rng, posA, pathLenMinus1, z)
	if !ok {
		return Term{}, false, nil
	}

	stepA, err := sc.idx.GetStepAtPosition(path, posA)
	if err != nil {
		return Term{}, false, indexErrorf("%v", err)
	}
	stepB, err := sc.idx.GetStepAtPosition(path, posB)
	if err != nil {
		return Term{}, false, indexErrorf("%v", err)
	}

	termI, err := sc.idx.GetHandleOfStep(stepA)
	if err != nil {
		return Term{}, false, indexErrorf("%v", err)
	}
	termJ, err := sc.idx.GetHandleOfStep(stepB)
	if err != nil {
		return Term{}, false, indexErrorf("%v", err)
	}

	nodeStartA, err := sc.idx.GetPositionOfStep(stepA)
	if err != nil {
		return Term{}, false, indexErrorf("%v", err)
	}
	nodeStartB, err := sc.idx.GetPositionOfStep(stepB)
	if err != nil {
		return Term{}, false, indexErrorf("%v", err)
	}

	// Adjust for relative orientation: a reverse-strand handle is pinned from
	// its other end, so its effective position is shifted by its length.
	if graph.IsReverse(termI) {
		l, lerr := sc.g.Length(termI)
		if lerr != nil {
			return Term{}, false, indexErrorf("%v", lerr)
		}
		nodeStartA += l
	}
	if graph.IsReverse(termJ) {
		l, lerr := sc.g.Length(termJ)
		if lerr != nil {
			return Term{}, false, indexErrorf("%v", lerr)
		}
		nodeStartB += l
	}

	dij := math.Abs(float64(nodeStartA) - float64(nodeStartB))
	if dij == 0 {
		return Term{}, false, nil // SkipCondition: zero-distance term
	}

	return Term{
		I:    int(graph.UnpackNumber(termI)),
		J:    int(graph.UnpackNumber(termJ)),
		Dij:  dij,
		Path: path,
	}, true, nil
}

// pickStartPosition dispatches across the three sampling modes, returning
// the chosen path, the 0-based offset within it, and L = path_len(path)-1
// (the max valid in-path offset).
func pickStartPosition(sc *sampleCtx, rng *rand.Rand) (pathindex.PathID, uint64, uint64, bool, error) {
	switch {
	case sc.cfg.SampleFromNodes:
		return pickFromNodes(sc, rng)
	case sc.cfg.SampleFromPaths:
		return pickFromPaths(sc, rng)
	default:
		return pickFromSteps(sc, rng)
	}
}

// pickFromPaths implements mode 1: path-uniform sampling.
func pickFromPaths(sc *sampleCtx, rng *rand.Rand) (pathindex.PathID, uint64, uint64, bool, error) {
	pos := uint64(rng.Int63n(int64(sc.interval.total)))
	path, start, err := sc.interval.overlap(pos)
	if err != nil {
		return 0, 0, 0, false, err
	}
	posA := pos - start
	l, err := sc.idx.PathLength(path)
	if err != nil {
		return 0, 0, 0, false, err
	}

	return path, posA, l - 1, true, nil
}

// pickFromSteps implements mode 2: step-uniform sampling over np_bv.
func pickFromSteps(sc *sampleCtx, rng *rand.Rand) (pathindex.PathID, uint64, uint64, bool, error) {
	pos := rng.Intn(sc.idx.NPLen())
	if sc.idx.NPBoundary(pos) {
		return 0, 0, 0, false, nil // SkipCondition: hit a node boundary bit
	}
	path := sc.idx.NPPath(pos)
	step := pathindex.Step{Path: path, Rank: sc.idx.NPStepRank(pos) - 1}
	posA, err := sc.idx.GetPositionOfStep(step)
	if err != nil {
		return 0, 0, 0, false, err
	}
	l, err := sc.idx.PathLength(path)
	if err != nil {
		return 0, 0, 0, false, err
	}

	return path, posA, l - 1, true, nil
}

// pickFromNodes implements mode 3: node-uniform sampling with a per-node
// path pick (takes precedence over SampleFromPaths when both are set).
func pickFromNodes(sc *sampleCtx, rng *rand.Rand) (pathindex.PathID, uint64, uint64, bool, error) {
	pos := uint64(1 + rng.Int63n(int64(sc.numNodes)))
	nodeIndex := sc.idx.NPSelect1(int(pos))
	var next int
	if pos == sc.numNodes {
		next = sc.idx.NPLen()
	} else {
		next = sc.idx.NPSelect1(int(pos) + 1)
	}
	hit := next - nodeIndex - 1
	if hit <= 0 {
		return 0, 0, 0, false, nil // SkipCondition: node visited by no indexed path
	}
	k := 1 + rng.Intn(hit)
	npIdx := nodeIndex + k
	path := sc.idx.NPPath(npIdx)
	step := pathindex.Step{Path: path, Rank: sc.idx.NPStepRank(npIdx) - 1}
	posA, err := sc.idx.GetPositionOfStep(step)
	if err != nil {
		return 0, 0, 0, false, err
	}
	l, err := sc.idx.PathLength(path)
	if err != nil {
		return 0, 0, 0, false, err
	}

	return path, posA, l - 1, true, nil
}

// pickSecondPosition implements the direction/Zipf-clamp logic shared by all
// three modes, once the first position in the path is known.
func pickSecondPosition(rng *rand.Rand, posA, l uint64, z uint64) (uint64, bool) {
	if rng.Intn(2) == 0 {
		if posA == 0 {
			return 0, false // SkipCondition: no room to the left
		}
		if z > posA {
			z %= posA
		}

		return posA - z, true
	}

	room := l - posA
	if room == 0 {
		return 0, false // SkipCondition: no room to the right
	}
	if z > room {
		z %= room
	}

	return posA + z, true
}
