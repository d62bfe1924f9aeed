package draw

import (
	"math"
	"sync"
)

// #region weight-table
const (
	// weightFloor keeps every ball reachable even after perturbation.
	weightFloor = 0.1

	curvePeak  = 23.0
	curveSpan  = 180.0
	curveBoost = 0.6
)

// WeightTable assigns a fixed positive weight to every ball in [MinBall, MaxBall].
// It is built once and never mutated afterwards, so concurrent reads need no
// synchronization.
type WeightTable struct {
	weights [MaxBall + 1]float64
	total   float64
}

// NewWeightTable builds the table from the deterministic base curve plus a
// one-time random perturbation per entry drawn from src.
func NewWeightTable(src RandomSource) *WeightTable {
	t := &WeightTable{}
	for n := MinBall; n <= MaxBall; n++ {
		d := float64(n) - curvePeak
		base := 1.0 + curveBoost*math.Exp(-d*d/curveSpan)
		w := base * (0.85 + 0.3*src.Float64())
		if w < weightFloor {
			w = weightFloor
		}
		t.weights[n] = w
		t.total += w
	}
	return t
}

// Weight returns the weight for a single ball. Out-of-range balls weigh zero.
func (t *WeightTable) Weight(n int) float64 {
	if n < MinBall || n > MaxBall {
		return 0
	}
	return t.weights[n]
}

// Total returns the sum of all weights.
func (t *WeightTable) Total() float64 { return t.total }

// Pick performs one roulette-wheel selection over the full table. The roll is
// always against the complete, un-renormalized distribution regardless of which
// balls a caller has already taken.
func (t *WeightTable) Pick(src RandomSource) int {
	roll := src.Float64() * t.total
	for n := MinBall; n <= MaxBall; n++ {
		roll -= t.weights[n]
		if roll < 0 {
			return n
		}
	}
	return MaxBall
}
// #endregion weight-table

// #region default-table
var (
	defaultTableOnce sync.Once
	defaultTable     *WeightTable
)

// DefaultWeights returns the process-wide table, built on first use.
func DefaultWeights() *WeightTable {
	defaultTableOnce.Do(func() {
		defaultTable = NewWeightTable(DefaultSource())
	})
	return defaultTable
}
// #endregion default-table
