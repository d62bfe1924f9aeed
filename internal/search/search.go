package search

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/lotto-forge/internal/draw"
	"github.com/danielpatrickdp/lotto-forge/internal/filter"
	"github.com/danielpatrickdp/lotto-forge/internal/score"
)

// #region engine
// Engine runs the sample → filter → score → select loop.
type Engine struct {
	sampler *draw.Sampler
	src     draw.RandomSource
}

// NewEngine creates an engine. src feeds the scorer's tie-breaking noise and
// should be the same source the sampler draws from.
func NewEngine(sampler *draw.Sampler, src draw.RandomSource) *Engine {
	return &Engine{sampler: sampler, src: src}
}

// Default returns an engine on the process-wide random source and weight table.
func Default() *Engine {
	src := draw.DefaultSource()
	return NewEngine(draw.NewSampler(src, nil), src)
}
// #endregion engine

// #region validate
// Validate checks the fixed/excluded configuration. It runs before any
// sampling; a failure aborts the run with no partial execution.
func Validate(fixed, excluded []int) error {
	if len(fixed) > 2 {
		return ErrTooManyFixed
	}
	seen := make(map[int]bool, len(fixed))
	banned := make(map[int]bool, len(excluded))
	for _, n := range excluded {
		banned[n] = true
	}
	for _, n := range fixed {
		if n < draw.MinBall || n > draw.MaxBall {
			return ErrFixedOutOfRange
		}
		if seen[n] {
			return ErrDuplicateFixed
		}
		if banned[n] {
			return ErrFixedExcluded
		}
		seen[n] = true
	}
	return nil
}
// #endregion validate

// #region run
// Run executes the full search. Draws proceed in batches; after each batch a
// progress report goes out and the context is checked, so cancellation lands on
// batch boundaries only. The incumbent is replaced on strictly greater score;
// ties keep the first-seen candidate.
func (e *Engine) Run(ctx context.Context, p Params, report ProgressFunc) (Result, error) {
	if err := Validate(p.Fixed, p.Excluded); err != nil {
		return Result{}, err
	}

	total := p.TotalDraws
	if total <= 0 {
		total = QuickDraws
	}
	batch := p.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}

	runID := uuid.New().String()
	log.Printf("[SEARCH] run %s: %d draws, mode=%s, filters=%+v", runID, total, p.Mode, p.Filters)

	var best Result
	found := false

	for processed := 0; processed < total; {
		if err := ctx.Err(); err != nil {
			log.Printf("[SEARCH] run %s cancelled at %d/%d draws", runID, processed, total)
			return Result{}, err
		}

		n := batch
		if remaining := total - processed; remaining < n {
			n = remaining
		}
		for i := 0; i < n; i++ {
			c, err := e.sampler.Sample(p.Mode, p.Fixed, p.Excluded)
			if err != nil {
				// Exhausted draw: skip without touching the incumbent.
				continue
			}
			s := score.Score(c, p.Filters, e.src)
			if !found || s > best.Score {
				best = Result{RunID: runID, Combination: c, Score: s}
				found = true
			}
		}
		processed += n

		if report != nil {
			report(progressAt(processed, total))
		}
	}

	if !found {
		log.Printf("[SEARCH] run %s: no successful draw", runID)
		return Result{}, ErrNoCandidate
	}

	best.Metrics = filter.Compute(best.Combination)
	log.Printf("[SEARCH] run %s: best %v score=%.2f", runID, best.Combination, best.Score)
	return best, nil
}
// #endregion run

// #region progress
// progressAt converts processed/total into a capped percentage with a coarse
// phase label. The label advances at the 30/60/90 marks; it is UI feedback only.
func progressAt(processed, total int) Progress {
	percent := processed * 100 / total
	if percent > 100 {
		percent = 100
	}
	var phase string
	switch {
	case percent >= 90:
		phase = "finalizing"
	case percent >= 60:
		phase = "converging"
	case percent >= 30:
		phase = "refining"
	default:
		phase = "scanning"
	}
	return Progress{Percent: percent, Phase: phase}
}
// #endregion progress

// #region helpers
// IsConfigError reports whether err is a pre-flight configuration rejection,
// as opposed to a search that ran and found nothing.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrDuplicateFixed) ||
		errors.Is(err, ErrTooManyFixed) ||
		errors.Is(err, ErrFixedExcluded) ||
		errors.Is(err, ErrFixedOutOfRange)
}
// #endregion helpers
