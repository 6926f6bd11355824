package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/heroparty/internal/dice Roller

import (
	"math/rand"
	"sync"
	"time"
)

// Sides is the number of faces on every die the game rolls
const Sides = 6

// Roller provides dice rolling and shuffling from one random source
type Roller interface {
	// Roll returns a uniform value in [1, sides]
	Roll(sides int) int

	// Shuffle randomizes n elements through swap
	Shuffle(n int, swap func(i, j int))
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// randomRoller implements Roller with math/rand. Every game room shares
// one roller, so access to the source is locked.
type randomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *randomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &randomRoller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *randomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = Sides
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(sides) + 1
}

// Shuffle randomizes n elements
func (r *randomRoller) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.random.Shuffle(n, swap)
}

// RollPair rolls two six-sided dice and returns their sum
func RollPair(r Roller) int {
	return r.Roll(Sides) + r.Roll(Sides)
}
