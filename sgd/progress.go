// SPDX-License-Identifier: MIT
package sgd

import (
	"fmt"
	"io"
	"os"
)

// ProgressReport carries the state a progress callback needs to render one
// line of feedback during a run.
type ProgressReport struct {
	Iteration uint64  // the outer-loop iteration just completed
	IterMax   uint64  // the total configured iterations
	Eta       float64 // the learning rate in effect during this iteration
	DeltaMax  float64 // the largest per-term coordinate change observed during this iteration (reset to Delta each iteration)
	Updates   uint64  // term updates applied during this iteration
}

// ProgressFunc is called once per outer iteration when WithProgress(true) is
// set. Implementations must not block for long: a slow ProgressFunc directly
// delays the controller/deterministic loop that calls it.
type ProgressFunc func(ProgressReport)

// DefaultProgressFunc writes one line per call to os.Stderr, in the style of
// a long-running CLI tool reporting percent-complete and the current
// convergence metric.
func DefaultProgressFunc(r ProgressReport) {
	writeProgress(os.Stderr, r)
}

func writeProgress(w io.Writer, r ProgressReport) {
	var percent float64
	if r.IterMax > 0 {
		percent = (float64(r.Iteration) / float64(r.IterMax)) * 100.0
	}
	fmt.Fprintf(w, "[path sgd sort]: eta: %f delta_max: %f\n", r.Eta, r.DeltaMax)
	fmt.Fprintf(w, "[path sgd sort]: %.2f%% progress: iteration %d of %d, number of updates: %d\n",
		percent, r.Iteration, r.IterMax, r.Updates)
}
