package pathindex

import (
	"errors"

	"github.com/Overcraft90/odgi/graph"
)

// Sentinel errors for the path index.
var (
	// ErrPathNotFound indicates a PathID outside the indexed range.
	ErrPathNotFound = errors.New("pathindex: path not found")

	// ErrEmptyPathSet indicates New was called with zero paths.
	ErrEmptyPathSet = errors.New("pathindex: no paths to index")

	// ErrPositionOutOfRange indicates a queried offset fell outside [0, L(P)).
	ErrPositionOutOfRange = errors.New("pathindex: position out of range")
)

// PathID identifies one path within the indexed set by its position in the
// caller-supplied path order.
type PathID int

// Step identifies one visit of a path to a handle: (path, rank-within-path).
type Step struct {
	Path PathID
	Rank int // 0-based position in the path's handle sequence
}

// Reader is the read-only contract package sgd depends on. Index below is
// the only implementation, but sgd is written
// against this interface so a caller can substitute a different backing
// representation without touching the core algorithm.
type Reader interface {
	// PathLength returns L(P), the total nucleotide length of path p.
	PathLength(p PathID) (uint64, error)
	// GetStepAtPosition resolves the step covering 0-based offset pos in p.
	GetStepAtPosition(p PathID, pos uint64) (Step, error)
	// GetHandleOfStep returns the oriented handle visited by s.
	GetHandleOfStep(s Step) (graph.Handle, error)
	// GetPositionOfStep returns the 0-based nucleotide offset where s begins.
	GetPositionOfStep(s Step) (uint64, error)

	// NPLen returns the length of the np_bv/npi_iv/nr_iv arrays.
	NPLen() int
	// NPBoundary reports whether np position k marks a node boundary
	// (np_bv[k] == 1) rather than a path step.
	NPBoundary(k int) bool
	// NPPath returns the path id recorded at np position k (npi_iv[k]).
	NPPath(k int) PathID
	// NPStepRank returns the 1-based step rank recorded at np position k
	// (nr_iv[k]); callers subtract 1 to get the 0-based step rank.
	NPStepRank(k int) int
	// NPSelect1 returns the np position of the k-th node-boundary bit
	// (np_bv_select(k), 1-based k).
	NPSelect1(k int) int
}
