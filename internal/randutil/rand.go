// Package randutil builds the random sources used for shuffling.
package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG seeds are derived from the one value so that tests can replay a
// shuffle from a single number.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// FromClock seeds a generator from the current time of clock. The game calls
// this once per process; every shuffle after that draws from the same stream.
func FromClock(clock quartz.Clock) (*rand.Rand, int64) {
	seed := clock.Now().UnixNano()
	return New(seed), seed
}

// splitmix64 finaliser
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
