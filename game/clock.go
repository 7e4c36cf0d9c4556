package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// Clock returns monotonic time in seconds.
type Clock interface {
	Now() float64
}

// SystemClock measures seconds since it was created.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// RNG draws uniform integers in [0, n).
type RNG interface {
	Intn(n int) int
}

// NewRNG returns a PCG-backed generator. A zero seed is replaced with one
// taken from the wall clock.
func NewRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
