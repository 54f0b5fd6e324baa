// SPDX-License-Identifier: MIT
package sgd

import (
	"math/rand"
	"sync"
	"time"

	"github.com/Overcraft90/odgi/graph"
	"github.com/Overcraft90/odgi/pathindex"
)

// Snapshot captures the coordinate vector as it stood at the start of one
// outer iteration, recorded only when Config.Snapshot is set.
type Snapshot struct {
	Iteration uint64
	X         []float64
}

const checkerPollInterval = time.Millisecond

// seedCoordVector builds the initial coordinate vector by walking the graph
// in its stable insertion order and placing each node at the cumulative
// sequence length seen so far — the same "lay nodes out end to end" seed the
// deterministic driver also starts from.
func seedCoordVector(g *graph.Graph) *CoordVector {
	X := NewCoordVector(g.NodeCount())
	var length uint64
	g.ForEachHandle(func(h graph.Handle) {
		X.Store(int(graph.UnpackNumber(h)), float64(length))
		l, _ := g.Length(h) // ForEachHandle only yields handles that exist
		length += l
	})

	return X
}

// etaBounds derives the weight bounds the schedule is built from: w_min is
// 1/eta_max, so the schedule's peak learning rate is eta_max; w_max is always
// 1 since term weights are bounded above by 1/1.
func etaBounds(cfg Config) (wMin, wMax float64) {
	return 1.0 / cfg.EtaMax, 1.0
}

// RunConcurrent runs the Hogwild!-style concurrent PG-SGD driver: NThreads
// worker goroutines sample and apply terms against a shared coordinate
// vector with no locking, a controller goroutine advances the learning-rate
// schedule and decides when to stop, and — when Config.Snapshot is set — a
// snapshot goroutine records X once per outer iteration.
func RunConcurrent(g *graph.Graph, idx pathindex.Reader, paths []pathindex.PathID, cfg Config) (*CoordVector, []Snapshot, error) {
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

	var wg sync.WaitGroup
	wg.Add(int(cfg.NThreads))
	for t := uint64(0); t < cfg.NThreads; t++ {
		go func(tid uint64) {
			defer wg.Done()
			runWorker(sc, X, cs, tid)
		}(t)
	}

	checkerDone := make(chan struct{})
	go func() {
		defer close(checkerDone)
		runChecker(cs, schedule, cfg)
	}()

	var snapshots []Snapshot
	var snapshotDone chan struct{}
	if cfg.Snapshot {
		snapshotDone = make(chan struct{})
		go func() {
			defer close(snapshotDone)
			snapshots = runSnapshotter(cs, X, cfg)
		}()
	}

	wg.Wait()
	if snapshotDone != nil {
		<-snapshotDone
	}
	<-checkerDone

	if cs.failOnce != nil {
		return nil, nil, cs.failOnce
	}

	return X, snapshots, nil
}

// runWorker is one worker goroutine's body: draw a term, apply it, repeat
// until the controller signals that work is done.
func runWorker(sc *sampleCtx, X *CoordVector, cs *controlState, tid uint64) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano() ^ int64(tid)))
	for cs.workTodo.Load() {
		term, ok, err := sampleTerm(sc, rng)
		if err != nil {
			cs.fail(err)
			return
		}
		if !ok {
			continue
		}
		applyUpdate(X, cs, term)
	}
}

// runChecker is the controller goroutine: it advances the learning-rate
// schedule once min_term_updates worth of work has landed, reports progress,
// and decides when the run has converged or exhausted its iteration budget.
func runChecker(cs *controlState, schedule Schedule, cfg Config) {
	var iteration uint64
	for cs.workTodo.Load() {
		if updates := cs.termUpdates.Load(); updates >= cfg.MinTermUpdates {
			iteration++
			cs.iteration.Store(iteration)
			deltaMax := cs.deltaMax.Load()
			switch {
			case iteration >= cfg.IterMax:
				if cfg.Progress {
					cfg.progressFn(ProgressReport{
						Iteration: iteration,
						IterMax:   cfg.IterMax,
						Eta:       cs.eta.Load(),
						DeltaMax:  deltaMax,
						Updates:   updates,
					})
				}
				cs.workTodo.Store(false)
			case deltaMax <= cfg.Delta:
				if cfg.Progress {
					cfg.progressFn(ProgressReport{
						Iteration: iteration,
						IterMax:   cfg.IterMax,
						Eta:       cs.eta.Load(),
						DeltaMax:  deltaMax,
						Updates:   updates,
					})
				}
				cs.workTodo.Store(false)
			default:
				if cfg.Progress {
					cfg.progressFn(ProgressReport{
						Iteration: iteration,
						IterMax:   cfg.IterMax,
						Eta:       cs.eta.Load(),
						DeltaMax:  deltaMax,
						Updates:   updates,
					})
				}
				cs.eta.Store(schedule.At(iteration))
				cs.deltaMax.Store(cfg.Delta)
			}
			cs.termUpdates.Store(0)
		}
		time.Sleep(checkerPollInterval)
	}
}

// runSnapshotter is the optional snapshot goroutine: once per outer
// iteration (skipping the very last, which the caller already sees in the
// final X), it copies X into a plain slice.
func runSnapshotter(cs *controlState, X *CoordVector, cfg Config) []Snapshot {
	var snapshots []Snapshot
	var seen uint64
	for cs.workTodo.Load() {
		iteration := cs.iteration.Load()
		if seen < iteration && iteration != cfg.IterMax {
			snapshots = append(snapshots, Snapshot{Iteration: iteration, X: X.Snapshot()})
			seen = iteration
		}
		time.Sleep(checkerPollInterval)
	}

	return snapshots
}
