// SPDX-License-Identifier: MIT
package sgd

import (
	"github.com/Overcraft90/odgi/graph"
	"github.com/Overcraft90/odgi/pathindex"
)

// Result is the outcome of a Layout call: the final node order, and — when
// WithSnapshot(true) is set — the node order at each recorded intermediate
// iteration.
type Result struct {
	Order     []graph.Handle
	Snapshots []OrderSnapshot
}

// Layout computes a 1-D path-guided coordinate for every node of g over the
// given paths, then derives a total node order from it. It is the one-call
// entry point composing a driver (RunConcurrent or RunDeterministic,
// depending on WithDeterministic) with FinalizeOrder.
func Layout(g *graph.Graph, idx pathindex.Reader, paths []pathindex.PathID, opts ...Option) (Result, error) {
	cfg, err := resolve(opts...)
	if err != nil {
		return Result{}, err
	}
	if err := g.ValidateCompactIDs(); err != nil {
		return Result{}, err
	}

	var X *CoordVector
	var snapshots []Snapshot
	if cfg.Deterministic {
		X, snapshots, err = RunDeterministic(g, idx, paths, cfg)
	} else {
		X, snapshots, err = RunConcurrent(g, idx, paths, cfg)
	}
	if err != nil {
		return Result{}, err
	}

	return Result{
		Order:     FinalizeOrder(g, X.Snapshot()),
		Snapshots: FinalizeSnapshots(g, snapshots),
	}, nil
}
