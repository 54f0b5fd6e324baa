// SPDX-License-Identifier: MIT
package sgd

import (
	"errors"
	"fmt"
)

// Sentinel errors for the sgd package. ConfigError and IndexInconsistency
// are the two error classes this package defines; every other failure
// condition inside the sampler/update kernel (a skipped term, a numerical
// guard) is recovered locally and never returned. Errors from collaborators
// are passed through unchanged where they arise before a run starts:
// Layout returns graph.ErrNonCompactIDs, and the drivers return the path
// index's error for a path id it does not know.
var (
	// ErrConfig is the sentinel wrapped by every hyperparameter-precondition
	// failure (iter_max == 0, space < 1, theta <= 0, eta_max <= 0, eps <= 0,
	// nthreads == 0, ...). Use errors.Is(err, ErrConfig) to branch on it.
	ErrConfig = errors.New("sgd: invalid configuration")

	// ErrIndexInconsistency is the sentinel wrapped when the path-interval
	// index fails to resolve a position known to lie in [0, T) — a fatal,
	// unreachable-in-practice condition.
	ErrIndexInconsistency = errors.New("sgd: path index inconsistency")
)

// configErrorf wraps ErrConfig with call-site context, mirroring the
// teacher's builderErrorf helper (builder/errors.go).
func configErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

// indexErrorf wraps ErrIndexInconsistency with call-site context.
func indexErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrIndexInconsistency, fmt.Sprintf(format, args...))
}
