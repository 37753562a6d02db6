// Package random supplies the injectable random source shared by plume generation
// and attribute sampling. Consumers take a Source rather than reaching for a global
// generator so a fixed seed replays the same animation.
package random

import "time"

// Source yields a uniform integer in [0, n)
type Source interface {
	Intn(n int) int
}

// FastRand is a xorshift64 (13, 17, 5) generator
// Not safe for concurrent use; the renderer owns it on a single goroutine
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator, zero seed is coerced to 1 since xorshift sticks at zero
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// NewSeeded creates a generator from a user seed, zero means derive one from the clock
func NewSeeded(seed uint64) (*FastRand, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewFastRand(seed), seed
}

// Next advances the state and returns it
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), 0 for non-positive n
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Sequence replays a fixed list of draws, each reduced modulo the requested range
// Wraps around when exhausted
type Sequence struct {
	values []int
	pos    int
}

// NewSequence creates a scripted source
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// Intn returns the next scripted value modulo n
func (s *Sequence) Intn(n int) int {
	if n <= 0 || len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Draws returns how many values have been consumed
func (s *Sequence) Draws() int {
	return s.pos
}
