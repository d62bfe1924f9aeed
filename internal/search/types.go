package search

import (
	"errors"

	"github.com/danielpatrickdp/lotto-forge/internal/draw"
	"github.com/danielpatrickdp/lotto-forge/internal/filter"
)

// #region errors
var (
	// ErrDuplicateFixed means the caller pinned the same ball twice.
	ErrDuplicateFixed = errors.New("config: duplicate fixed ball")
	// ErrTooManyFixed means more than two balls were pinned.
	ErrTooManyFixed = errors.New("config: at most two fixed balls allowed")
	// ErrFixedExcluded means a pinned ball is also in the exclusion set.
	ErrFixedExcluded = errors.New("config: fixed ball is also excluded")
	// ErrFixedOutOfRange means a pinned ball falls outside the ball range.
	ErrFixedOutOfRange = errors.New("config: fixed ball out of range")
	// ErrNoCandidate means zero draws succeeded across the whole run. Distinct
	// from a valid low-scoring result; the caller should advise relaxing the
	// fixed/excluded configuration.
	ErrNoCandidate = errors.New("search: no candidate found")
)
// #endregion errors

// #region params
const (
	// DefaultBatchSize is how many draws run between progress reports.
	DefaultBatchSize = 500

	// MonteCarloDraws is the draw count for exhaustive runs, QuickDraws for
	// interactive ones. Both are caller defaults, not engine invariants.
	MonteCarloDraws = 10000
	QuickDraws      = 100
)

// Params configures one search run.
type Params struct {
	TotalDraws int
	BatchSize  int
	Filters    filter.Config
	Fixed      []int
	Excluded   []int
	Mode       draw.Mode
}
// #endregion params

// #region progress
// Progress is one incremental report, emitted after each batch. Observational
// only; there is no backpressure.
type Progress struct {
	Percent int    `json:"percent"`
	Phase   string `json:"phase"`
}

// ProgressFunc receives progress reports. May be nil.
type ProgressFunc func(Progress)
// #endregion progress

// #region result
// Result is the best-scoring candidate a run observed, with its display metrics.
type Result struct {
	RunID       string           `json:"run_id"`
	Combination draw.Combination `json:"combination"`
	Score       float64          `json:"score"`
	Metrics     filter.Metrics   `json:"metrics"`
}
// #endregion result
