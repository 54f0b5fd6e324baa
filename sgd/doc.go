// Package sgd implements the path-guided stochastic gradient descent (PG-SGD)
// 1-D layout engine: given a bidirected sequence graph (package graph) and a
// pre-built path index (package pathindex), it computes a real-valued
// coordinate for every node such that nodes close together along embedded
// paths end up close together in the coordinate, and derives a total node
// order from it.
//
// The engine is organized as eight cooperating pieces:
//
//	Schedule (NewSchedule)        - the learning-rate sequence eta[0..T)
//	Zipf sampler (NewZipf)        - the second-point distance distribution
//	interval index (newIntervalIndex) - pangenomic offset -> path resolver
//	term sampler (sampleTerm)     - produces one SGD training example
//	update kernel (applyUpdate)   - applies one term to the shared vector X
//	concurrent driver (RunConcurrent) - worker/controller/snapshot goroutines
//	deterministic driver (RunDeterministic) - seeded, single-threaded twin
//	order finalizer (FinalizeOrder) - X -> weakly-connected-component order
//
// Layout composes the driver and the finalizer into a single call that
// builds a coordinate vector and returns the resulting node order.
package sgd
