// SPDX-License-Identifier: MIT
//
// state.go — the shared, atomically-updated control state of an SGD run.
// X is the hot, lock-free path; the scalar control fields are separate
// atomics so workers and the controller never contend on a shared mutex.

package sgd

import (
	"math"
	"sync"
	"sync/atomic"
)

// atomicFloat64 is a float64 readable/writable via atomic.Uint64, using the
// math.Float64bits/Float64frombits round-trip — the same "small atomic
// counter" idiom used elsewhere for monotonically-assigned ids, extended
// from uint64 to float64 since Go's sync/atomic has no native float64 type.
type atomicFloat64 struct {
	bits atomic.Uint64
}

func (a *atomicFloat64) Load() float64 {
	return math.Float64frombits(a.bits.Load())
}

func (a *atomicFloat64) Store(v float64) {
	a.bits.Store(math.Float64bits(v))
}

// monotoneMax stores v if v is currently the largest value observed, via a
// compare-and-swap retry loop, so concurrent callers never lose a larger
// value to one another. The controller's reset of the value is a plain
// Store that may race with it; the controller treats the result as a hint.
func (a *atomicFloat64) monotoneMax(v float64) {
	for {
		cur := a.bits.Load()
		if v <= math.Float64frombits(cur) {
			return
		}
		if a.bits.CompareAndSwap(cur, math.Float64bits(v)) {
			return
		}
	}
}

// CoordVector is the shared 1-D coordinate vector X, safe for concurrent
// lock-free load/store from many worker goroutines in the Hogwild! style:
// the read-modify-write sequence in the update kernel is not itself atomic,
// only the individual loads and stores are.
type CoordVector struct {
	x []atomicFloat64
}

// NewCoordVector allocates a CoordVector of length n, all zero.
func NewCoordVector(n int) *CoordVector {
	return &CoordVector{x: make([]atomicFloat64, n)}
}

// Len returns n.
func (c *CoordVector) Len() int { return len(c.x) }

// Load returns X[i].
func (c *CoordVector) Load(i int) float64 { return c.x[i].Load() }

// Store sets X[i] = v.
func (c *CoordVector) Store(i int, v float64) { c.x[i].Store(v) }

// Snapshot copies X into a plain, non-atomic []float64.
func (c *CoordVector) Snapshot() []float64 {
	out := make([]float64, len(c.x))
	for i := range c.x {
		out[i] = c.x[i].Load()
	}

	return out
}

// controlState holds the run-wide atomics driven by the controller and read
// by workers. Workers increment termUpdates and raise deltaMax, which the
// controller polls and resets; eta is written by the controller and read by
// workers; workTodo is the sole cancellation
// signal used to stop all workers once convergence or iter_max is reached.
type controlState struct {
	termUpdates atomic.Uint64
	eta         atomicFloat64
	deltaMax    atomicFloat64
	iteration   atomic.Uint64
	workTodo    atomic.Bool

	failOnce error
	failGate sync.Once
}

func newControlState(initialEta float64) *controlState {
	cs := &controlState{}
	cs.eta.Store(initialEta)
	cs.workTodo.Store(true)

	return cs
}

// fail records the first fatal error reported by any worker and stops the
// run. Only the first caller's error is kept; later callers are no-ops.
func (cs *controlState) fail(err error) {
	cs.failGate.Do(func() {
		cs.failOnce = err
		cs.workTodo.Store(false)
	})
}
