package score

import (
	"github.com/danielpatrickdp/lotto-forge/internal/draw"
	"github.com/danielpatrickdp/lotto-forge/internal/filter"
)

// #region policy
// Rewards and penalties per filter. The magnitudes are deliberately asymmetric:
// the sum penalty dominates in practice, making that filter a near-hard
// constraint while the others stay soft preferences. The mirror filter only
// rewards; failing it costs nothing.
const (
	SumReward     = 20.0
	SumPenalty    = -50.0
	ACReward      = 15.0
	ACPenalty     = -20.0
	MirrorReward  = 10.0
	MatrixReward  = 10.0
	MatrixPenalty = -10.0

	// noiseSpan is the width of the uniform tie-breaking term.
	noiseSpan = 10.0
)
// #endregion policy

// #region score
// Score rates a candidate against the enabled filters. The random noise term in
// [0, noiseSpan) ensures two equally-filtered candidates almost never compare
// exactly equal.
func Score(c draw.Combination, cfg filter.Config, src draw.RandomSource) float64 {
	s := src.Float64() * noiseSpan

	if cfg.Sum {
		if filter.SumPass(c) {
			s += SumReward
		} else {
			s += SumPenalty
		}
	}
	if cfg.AC {
		if filter.ACPass(c) {
			s += ACReward
		} else {
			s += ACPenalty
		}
	}
	if cfg.Mirror && filter.MirrorPass(c) {
		s += MirrorReward
	}
	if cfg.Matrix {
		if filter.MatrixPass(c) {
			s += MatrixReward
		} else {
			s += MatrixPenalty
		}
	}
	return s
}
// #endregion score
