// SPDX-License-Identifier: MIT
package sgd

import "math"

// Schedule is the length-T sequence of learning rates produced by
// NewSchedule. It peaks at index Peak and decays exponentially in both
// directions in log space — a "tent" shape.
type Schedule struct {
	eta  []float64
	Peak uint64
}

// NewSchedule computes eta[t] = eta_hi * exp(-lambda * |t - peak|) for
// t in [0, iterMax), where eta_hi = 1/wMin, eta_lo = eps/wMax, and
// lambda = ln(eta_hi/eta_lo) / (iterMax-1).
//
// Preconditions (enforced by Config.Validate before this is ever called):
// iterMax >= 1, wMin > 0, wMax > 0, eps > 0.
func NewSchedule(wMin, wMax float64, iterMax, peak uint64, eps float64) Schedule {
	etaHi := 1.0 / wMin
	etaLo := eps / wMax

	eta := make([]float64, iterMax)
	if iterMax == 1 {
		eta[0] = etaHi
		return Schedule{eta: eta, Peak: peak}
	}

	lambda := math.Log(etaHi/etaLo) / float64(iterMax-1)
	for t := uint64(0); t < iterMax; t++ {
		var dist int64
		if t >= peak {
			dist = int64(t - peak)
		} else {
			dist = int64(peak - t)
		}
		eta[t] = etaHi * math.Exp(-lambda*float64(dist))
	}

	return Schedule{eta: eta, Peak: peak}
}

// At returns eta[t]. The caller (the controller / deterministic outer loop)
// is responsible for keeping t within [0, Len()).
func (s Schedule) At(t uint64) float64 { return s.eta[t] }

// Len returns T, the schedule length.
func (s Schedule) Len() int { return len(s.eta) }
