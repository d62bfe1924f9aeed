package search

import (
	"context"
	"errors"
	"testing"

	"github.com/danielpatrickdp/lotto-forge/internal/draw"
	"github.com/danielpatrickdp/lotto-forge/internal/filter"
)

func seededEngine(seed uint64) *Engine {
	src := draw.NewSeededSource(seed)
	return NewEngine(draw.NewSampler(src, draw.NewWeightTable(draw.NewSeededSource(seed+1000))), src)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name     string
		fixed    []int
		excluded []int
		want     error
	}{
		{"empty ok", nil, nil, nil},
		{"two distinct ok", []int{7, 12}, []int{20}, nil},
		{"duplicate fixed", []int{7, 7}, nil, ErrDuplicateFixed},
		{"fixed inside excluded", []int{7}, []int{7}, ErrFixedExcluded},
		{"three fixed", []int{1, 2, 3}, nil, ErrTooManyFixed},
		{"fixed out of range", []int{0}, nil, ErrFixedOutOfRange},
	}
	for _, tc := range cases {
		if got := Validate(tc.fixed, tc.excluded); !errors.Is(got, tc.want) {
			t.Errorf("%s: Validate = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRunRejectsBadConfigBeforeSampling(t *testing.T) {
	e := seededEngine(1)
	p := Params{TotalDraws: 100, Fixed: []int{7, 7}, Filters: filter.AllEnabled()}

	reported := false
	_, err := e.Run(context.Background(), p, func(Progress) { reported = true })
	if !errors.Is(err, ErrDuplicateFixed) {
		t.Fatalf("expected ErrDuplicateFixed, got %v", err)
	}
	if reported {
		t.Fatal("no progress may be reported for a rejected config")
	}
	if !IsConfigError(err) {
		t.Fatal("IsConfigError must recognize the rejection")
	}
}

func TestRunFixedBallsAlwaysPresent(t *testing.T) {
	e := seededEngine(2)
	p := Params{
		TotalDraws: 200,
		Filters:    filter.AllEnabled(),
		Fixed:      []int{7, 12},
		Excluded:   []int{20},
	}

	res, err := e.Run(context.Background(), p, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Combination.Contains(7) || !res.Combination.Contains(12) {
		t.Fatalf("fixed balls missing from best candidate %v", res.Combination)
	}
	if res.Combination.Contains(20) {
		t.Fatalf("excluded ball in best candidate %v", res.Combination)
	}
	if res.RunID == "" {
		t.Fatal("expected a run ID")
	}
}

func TestRunNoCandidateWhenStarved(t *testing.T) {
	e := seededEngine(3)

	// Only four balls remain legal; no draw can ever complete.
	var excluded []int
	for n := draw.MinBall; n <= draw.MaxBall-4; n++ {
		excluded = append(excluded, n)
	}
	p := Params{TotalDraws: 20, BatchSize: 10, Filters: filter.AllEnabled(), Excluded: excluded}

	_, err := e.Run(context.Background(), p, nil)
	if !errors.Is(err, ErrNoCandidate) {
		t.Fatalf("expected ErrNoCandidate, got %v", err)
	}
	if IsConfigError(err) {
		t.Fatal("ErrNoCandidate is not a config error")
	}
}

func TestRunBatchingIsCosmetic(t *testing.T) {
	p := Params{
		TotalDraws: 2000,
		Filters:    filter.AllEnabled(),
		Mode:       draw.Weighted,
	}

	single := p
	single.BatchSize = 2000
	resA, err := seededEngine(42).Run(context.Background(), single, nil)
	if err != nil {
		t.Fatalf("single batch: %v", err)
	}

	many := p
	many.BatchSize = 100
	resB, err := seededEngine(42).Run(context.Background(), many, nil)
	if err != nil {
		t.Fatalf("many batches: %v", err)
	}

	if resA.Score != resB.Score {
		t.Fatalf("batching changed the outcome: %f vs %f", resA.Score, resB.Score)
	}
	for i := range resA.Combination {
		if resA.Combination[i] != resB.Combination[i] {
			t.Fatalf("batching changed the combination: %v vs %v", resA.Combination, resB.Combination)
		}
	}
}

func TestRunProgressReports(t *testing.T) {
	e := seededEngine(5)
	p := Params{TotalDraws: 1000, BatchSize: 100, Filters: filter.AllEnabled()}

	var seen []Progress
	_, err := e.Run(context.Background(), p, func(pr Progress) { seen = append(seen, pr) })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(seen) != 10 {
		t.Fatalf("expected 10 reports, got %d", len(seen))
	}
	last := -1
	for _, pr := range seen {
		if pr.Percent <= last || pr.Percent > 100 {
			t.Fatalf("progress not monotonic within bounds: %+v", seen)
		}
		last = pr.Percent
	}
	if seen[len(seen)-1].Percent != 100 {
		t.Fatalf("final report %d%%, want 100%%", seen[len(seen)-1].Percent)
	}
}

func TestProgressPhases(t *testing.T) {
	cases := []struct {
		processed, total int
		phase            string
	}{
		{10, 100, "scanning"},
		{30, 100, "refining"},
		{60, 100, "converging"},
		{90, 100, "finalizing"},
		{100, 100, "finalizing"},
	}
	for _, tc := range cases {
		pr := progressAt(tc.processed, tc.total)
		if pr.Phase != tc.phase {
			t.Errorf("progressAt(%d,%d).Phase = %s, want %s", tc.processed, tc.total, pr.Phase, tc.phase)
		}
	}
}

func TestRunCancelledAtBatchBoundary(t *testing.T) {
	e := seededEngine(6)
	ctx, cancel := context.WithCancel(context.Background())

	batches := 0
	p := Params{TotalDraws: 1000, BatchSize: 100, Filters: filter.AllEnabled()}
	_, err := e.Run(ctx, p, func(Progress) {
		batches++
		if batches == 2 {
			cancel()
		}
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if batches != 2 {
		t.Fatalf("expected exactly 2 completed batches before cancel, got %d", batches)
	}
}
