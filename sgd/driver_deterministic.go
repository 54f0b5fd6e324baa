// SPDX-License-Identifier: MIT
package sgd

import (
	"hash/fnv"
	"math/rand"

	"github.com/Overcraft90/odgi/graph"
	"github.com/Overcraft90/odgi/pathindex"
)

// seedRNG turns an arbitrary seed byte sequence into a deterministic
// math/rand source, via FNV-1a rather than a cryptographic hash: the only
// requirement is that the same bytes always produce the same stream, not
// that the mapping resist inversion.
func seedRNG(seed []byte) *rand.Rand {
	h := fnv.New64a()
	h.Write(seed) //nolint:errcheck // hash.Hash.Write never errors
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

// RunDeterministic runs the single-threaded, seeded twin of RunConcurrent.
// Given the same graph, path index, paths and Config (with Deterministic
// and Seed set), it reproduces the exact same sequence of sampled terms and
// coordinate updates on every invocation, which RunConcurrent cannot
// guarantee under goroutine scheduling.
func RunDeterministic(g *graph.Graph, idx pathindex.Reader, paths []pathindex.PathID, cfg Config) (*CoordVector, []Snapshot, error) {
	ii, err := newIntervalIndex(idx, paths)
	if err != nil {
		return nil, nil, err
	}

	wMin, wMax := etaBounds(cfg)
	schedule := NewSchedule(wMin, wMax, cfg.IterMax, cfg.IterWithMaxLearningRate, cfg.Eps)
	zipf := NewZipf(cfg.Space, cfg.Theta)

	X := seedCoordVector(g)
	cs := newControlState(schedule.At(0))

	sc := &sampleCtx{
		g:        g,
		idx:      idx,
		interval: ii,
		zipf:     zipf,
		numNodes: uint64(g.NodeCount()),
		cfg:      cfg,
	}

	rng := seedRNG(cfg.Seed)
	var snapshots []Snapshot

	for iteration := uint64(0); iteration < cfg.IterMax; iteration++ {
		if cfg.Snapshot && iteration < cfg.IterMax-1 {
			snapshots = append(snapshots, Snapshot{Iteration: iteration, X: X.Snapshot()})
		}

		var updatesThisIteration uint64
		for termUpdate := uint64(0); termUpdate < cfg.MinTermUpdates; termUpdate++ {
			term, ok, err := sampleTerm(sc, rng)
			if err != nil {
				return nil, nil, err
			}
			if !ok {
				continue
			}
			applyUpdate(X, cs, term)
			updatesThisIteration++
		}

		if cs.deltaMax.Load() <= cfg.Delta {
			if cfg.Progress {
				cfg.progressFn(ProgressReport{
					Iteration: iteration,
					IterMax:   cfg.IterMax,
					Eta:       cs.eta.Load(),
					DeltaMax:  cs.deltaMax.Load(),
					Updates:   updatesThisIteration,
				})
			}
			break
		}

		if cfg.Progress {
			cfg.progressFn(ProgressReport{
				Iteration: iteration + 1,
				IterMax:   cfg.IterMax,
				Eta:       cs.eta.Load(),
				DeltaMax:  cs.deltaMax.Load(),
				Updates:   updatesThisIteration,
			})
		}

		if iteration+1 < cfg.IterMax {
			cs.eta.Store(schedule.At(iteration + 1))
			cs.deltaMax.Store(cfg.Delta)
		}
	}

	return X, snapshots, nil
}
