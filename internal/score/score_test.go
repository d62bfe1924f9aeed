package score

import (
	"math"
	"testing"

	"github.com/danielpatrickdp/lotto-forge/internal/draw"
	"github.com/danielpatrickdp/lotto-forge/internal/filter"
)

// zeroSource removes the noise term so reward sums are exact.
type zeroSource struct{}

func (zeroSource) Float64() float64 { return 0 }
func (zeroSource) IntN(n int) int   { return 0 }

func TestScoreAllFiltersPass(t *testing.T) {
	// Sum 136, AC 8, repeated last digit (7), two balls per band.
	c := draw.Combination{3, 7, 16, 28, 37, 45}

	got := Score(c, filter.AllEnabled(), zeroSource{})
	want := SumReward + ACReward + MirrorReward + MatrixReward
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("score = %f, want %f", got, want)
	}
}

func TestScoreAllFiltersFail(t *testing.T) {
	// Sum 21, AC 0, six distinct last digits, six balls in one band.
	c := draw.Combination{1, 2, 3, 4, 5, 6}

	got := Score(c, filter.AllEnabled(), zeroSource{})
	// Mirror failure costs nothing.
	want := SumPenalty + ACPenalty + MatrixPenalty
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("score = %f, want %f", got, want)
	}
}

func TestScoreDisabledFiltersContributeNothing(t *testing.T) {
	c := draw.Combination{1, 2, 3, 4, 5, 6}

	got := Score(c, filter.Config{}, zeroSource{})
	if got != 0 {
		t.Fatalf("score with all filters disabled = %f, want 0", got)
	}
}

func TestScoreNoiseBounded(t *testing.T) {
	c := draw.Combination{3, 7, 16, 28, 37, 45}
	src := draw.NewSeededSource(11)
	base := SumReward + ACReward + MirrorReward + MatrixReward

	for i := 0; i < 500; i++ {
		s := Score(c, filter.AllEnabled(), src)
		if s < base || s >= base+10 {
			t.Fatalf("noise term out of [0,10): score %f, base %f", s, base)
		}
	}
}
