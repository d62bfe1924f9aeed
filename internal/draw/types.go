package draw

// #region constants
const (
	// MinBall and MaxBall bound the ball number range.
	MinBall = 1
	MaxBall = 45

	// DrawSize is the number of balls in a complete combination.
	DrawSize = 6
)
// #endregion constants

// #region combination
// Combination is a complete draw of DrawSize distinct balls, sorted ascending.
// Once produced by the sampler it is never mutated.
type Combination []int

// Sum returns the total of all ball values.
func (c Combination) Sum() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Contains reports whether the combination holds the given ball.
func (c Combination) Contains(n int) bool {
	for _, v := range c {
		if v == n {
			return true
		}
	}
	return false
}
// #endregion combination

// #region mode
// Mode selects how individual balls are drawn.
type Mode int

const (
	// Uniform draws every ball in range with equal probability.
	Uniform Mode = iota
	// Weighted draws via roulette-wheel selection over the weight table.
	Weighted
)

func (m Mode) String() string {
	if m == Weighted {
		return "weighted"
	}
	return "uniform"
}
// #endregion mode
