package draw

import (
	"errors"
	"sort"
)

// #region errors
// ErrSamplingExhausted is returned when a single draw discards too many
// candidates without completing a combination. The caller treats it as a
// skipped draw, not a fatal condition.
var ErrSamplingExhausted = errors.New("sampling exhausted: too many discarded draws")
// #endregion errors

// #region sampler
// maxDiscards bounds worst-case work per draw when the exclusion set is large
// relative to the ball range.
const maxDiscards = 1000

// Sampler produces combinations of distinct balls, uniformly or weighted.
type Sampler struct {
	src     RandomSource
	weights *WeightTable
}

// NewSampler creates a sampler. weights may be nil, in which case the
// process-wide default table is used for weighted draws.
func NewSampler(src RandomSource, weights *WeightTable) *Sampler {
	if weights == nil {
		weights = DefaultWeights()
	}
	return &Sampler{src: src, weights: weights}
}

// Sample draws a combination of DrawSize distinct balls. Every ball in fixed is
// included; no ball in excluded ever appears. A draw colliding with an already
// chosen or excluded ball is discarded and the iteration wasted; after
// maxDiscards wasted iterations the draw fails with ErrSamplingExhausted.
func (s *Sampler) Sample(mode Mode, fixed, excluded []int) (Combination, error) {
	chosen := make(map[int]bool, DrawSize)
	for _, n := range fixed {
		chosen[n] = true
	}
	banned := make(map[int]bool, len(excluded))
	for _, n := range excluded {
		banned[n] = true
	}

	discards := 0
	for len(chosen) < DrawSize {
		var n int
		if mode == Weighted {
			n = s.weights.Pick(s.src)
		} else {
			n = MinBall + s.src.IntN(MaxBall-MinBall+1)
		}
		if chosen[n] || banned[n] {
			discards++
			if discards >= maxDiscards {
				return nil, ErrSamplingExhausted
			}
			continue
		}
		chosen[n] = true
	}

	out := make(Combination, 0, DrawSize)
	for n := range chosen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out, nil
}
// #endregion sampler
