package filter

import (
	"fmt"

	"github.com/danielpatrickdp/lotto-forge/internal/draw"
)

// #region config
// Config toggles the individual acceptability filters for one run.
// Disabled filters contribute nothing to scoring in either direction.
type Config struct {
	Sum    bool `json:"sum" yaml:"sum"`
	AC     bool `json:"ac" yaml:"ac"`
	Mirror bool `json:"mirror" yaml:"mirror"`
	Matrix bool `json:"matrix" yaml:"matrix"`
}

// AllEnabled returns a config with every filter switched on.
func AllEnabled() Config {
	return Config{Sum: true, AC: true, Mirror: true, Matrix: true}
}
// #endregion config

// #region sum
const (
	// SumMin and SumMax bound the acceptable combination total, inclusive.
	SumMin = 120
	SumMax = 170
)

// SumPass reports whether the combination total falls in [SumMin, SumMax].
func SumPass(c draw.Combination) bool {
	s := c.Sum()
	return s >= SumMin && s <= SumMax
}
// #endregion sum

// #region ac
// ACThreshold is the minimum arithmetic complexity an acceptable combination needs.
const ACThreshold = 7

// ACValue computes the arithmetic complexity: the count of distinct pairwise
// absolute differences, minus (len-1). Exposed standalone for display.
func ACValue(c draw.Combination) int {
	distinct := make(map[int]bool)
	for i := 0; i < len(c); i++ {
		for j := i + 1; j < len(c); j++ {
			d := c[j] - c[i]
			if d < 0 {
				d = -d
			}
			distinct[d] = true
		}
	}
	return len(distinct) - (len(c) - 1)
}

// ACPass reports whether the arithmetic complexity meets the threshold.
func ACPass(c draw.Combination) bool {
	return ACValue(c) >= ACThreshold
}
// #endregion ac

// #region mirror
// MirrorPass reports whether at least two balls share a last decimal digit.
func MirrorPass(c draw.Combination) bool {
	digits := make(map[int]bool)
	for _, n := range c {
		digits[n%10] = true
	}
	return len(digits) < len(c)
}
// #endregion mirror

// #region matrix
// matrixBandCap is the most balls one contiguous band may hold.
const matrixBandCap = 4

// MatrixPass partitions the range into three 15-ball bands and reports whether
// no band holds more than matrixBandCap balls.
func MatrixPass(c draw.Combination) bool {
	var bands [3]int
	for _, n := range c {
		switch {
		case n <= 15:
			bands[0]++
		case n <= 30:
			bands[1]++
		default:
			bands[2]++
		}
	}
	for _, count := range bands {
		if count > matrixBandCap {
			return false
		}
	}
	return true
}
// #endregion matrix

// #region metrics
// lowHighSplit is the highest ball counted as "low".
const lowHighSplit = 22

// Metrics holds the display-only descriptive values for a combination.
type Metrics struct {
	Sum     int    `json:"sum"`
	AC      int    `json:"ac"`
	OddEven string `json:"odd_even"`
	LowHigh string `json:"low_high"`
}

// Compute derives all display metrics for a combination.
func Compute(c draw.Combination) Metrics {
	odd, low := 0, 0
	for _, n := range c {
		if n%2 == 1 {
			odd++
		}
		if n <= lowHighSplit {
			low++
		}
	}
	return Metrics{
		Sum:     c.Sum(),
		AC:      ACValue(c),
		OddEven: fmt.Sprintf("%d:%d", odd, len(c)-odd),
		LowHigh: fmt.Sprintf("%d:%d", low, len(c)-low),
	}
}
// #endregion metrics
