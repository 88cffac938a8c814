// Package rng provides the randomness substrate shared by the
// non-deterministic transformations.
//
// Every transformation call owns its own Rng instance; nothing in this
// package holds shared mutable state beyond an atomic stream counter used
// to decorrelate entropy-seeded generators created in the same nanosecond.
// A seeded Rng reproduces the same sequence for the same seed, which is how
// the --seed CLI flag and the seed field of the HTTP API thread
// determinism through RNG-consuming transformations.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/bits"
	"sync/atomic"
	"time"
)

var streamCounter atomic.Uint64

// Rng is a small linear congruential generator with a splitmix64-style
// seed mixer. It is NOT cryptographically secure; the transformations it
// feeds are obfuscation patterns, not cryptography.
type Rng struct {
	state uint64
}

func mix64(v uint64) uint64 {
	v = (v ^ (v >> 30)) * 0xbf58476d1ce4e5b9
	v = (v ^ (v >> 27)) * 0x94d049bb133111eb
	return v ^ (v >> 31)
}

// New returns an entropy-seeded generator. The seed is drawn from
// crypto/rand, falling back to wall-clock nanoseconds if the system source
// is unavailable, and mixed with a process-wide counter so two generators
// created back to back never share a state.
func New() *Rng {
	var seed uint64
	var b [8]byte
	if _, err := crand.Read(b[:]); err == nil {
		seed = binary.LittleEndian.Uint64(b[:])
	} else {
		seed = uint64(time.Now().UnixNano())
	}
	counter := streamCounter.Add(1)
	seed ^= bits.RotateLeft64(counter, 17) ^ 0x9E3779B97F4A7C15
	return NewSeeded(seed)
}

// NewSeeded returns a deterministic generator. Equal seeds produce equal
// sequences regardless of what other generators do elsewhere in the process.
func NewSeeded(seed uint64) *Rng {
	return &Rng{state: mix64(seed)}
}

// Uint64 advances the generator and returns the next pseudo-random value.
func (r *Rng) Uint64() uint64 {
	r.state = r.state*6364136223846793005 + 1
	return r.state
}

// Intn returns a pseudo-random int in [0, n). n must be > 0.
func (r *Rng) Intn(n int) int {
	return int(r.Uint64() % uint64(n))
}

// Chance reports true roughly once in n calls.
func (r *Rng) Chance(n int) bool {
	return r.Uint64()%uint64(n) == 0
}

// Bool returns a uniform random bit.
func (r *Rng) Bool() bool {
	return r.Uint64()%2 == 0
}

// Pick returns a uniformly chosen element of items, which must be non-empty.
func Pick[T any](r *Rng, items []T) T {
	return items[r.Intn(len(items))]
}
