package adapter

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

// RandomSource yields uniformly distributed integers.
type RandomSource interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

// SeededRandomSource is a RandomSource safe for concurrent use.
type SeededRandomSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededRandomSource builds a source from seed. A zero seed uses the current time.
func NewSeededRandomSource(seed uint64) *SeededRandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &SeededRandomSource{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a value in [0, n).
func (s *SeededRandomSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Intn(n)
}
