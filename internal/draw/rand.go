package draw

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// #region source
// RandomSource abstracts the random generator so production code can use a
// crypto-backed source while tests inject a seeded, reproducible one.
type RandomSource interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}
// #endregion source

// #region crypto
type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return rand.Float64()
	}
	// Keep 53 bits so the result fits float64 precision exactly.
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53)
}

func (s cryptoSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Float64() * float64(n))
}

// DefaultSource returns the process-wide crypto-backed random source.
func DefaultSource() RandomSource { return cryptoSource{} }
// #endregion crypto

// #region seeded
type seededSource struct{ r *rand.Rand }

// NewSeededSource returns a deterministic source for tests and replayable runs.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededSource) Float64() float64 { return s.r.Float64() }
func (s *seededSource) IntN(n int) int   { return s.r.IntN(n) }
// #endregion seeded
