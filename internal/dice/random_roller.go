package dice

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"
)

// randomRoller implements Roller with a generator owned by the roller
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from the clock
func NewRandomRoller() Roller {
	return NewSeededRoller(uint64(time.Now().UnixNano()))
}

// NewSeededRoller creates a roller whose sequence is fully determined by seed
func NewSeededRoller(seed uint64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}

	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, count)
	for i := range out {
		out[i] = r.rng.IntN(sides) + 1
	}

	return newRollResult(sides, out), nil
}
