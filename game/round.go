package game

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/salesman/matrix"
)

// Round defaults: ten cities A..J with integer distances in [50, 100].
const (
	DefaultMinDistance = 50
	DefaultMaxDistance = 100

	// defaultSeed replaces seed 0 so that the zero value stays reproducible.
	defaultSeed int64 = 1
)

// Round is one generated game board: a symmetric distance table over
// Labels and a home city. PickTargets draws from the same stream, so a
// Round must not be shared across goroutines.
type Round struct {
	Labels Labels
	Dist   *matrix.Dense
	Home   string

	rng *rand.Rand
}

// RoundOption customizes NewRound.
type RoundOption func(*roundConfig)

type roundConfig struct {
	labels   []string
	min, max int
	rng      *rand.Rand
}

// WithSeed seeds the round stream. Seed 0 maps to a fixed default seed.
func WithSeed(seed int64) RoundOption {
	if seed == 0 {
		seed = defaultSeed
	}

	return func(c *roundConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r as the round stream. Panics on nil.
func WithRand(r *rand.Rand) RoundOption {
	if r == nil {
		panic("game: WithRand(nil)")
	}

	return func(c *roundConfig) { c.rng = r }
}

// WithDistanceRange draws integer distances uniformly in [min, max].
// Panics unless 0 < min ≤ max; a zero off-diagonal distance would merge
// two cities.
func WithDistanceRange(min, max int) RoundOption {
	if min <= 0 || max < min {
		panic(fmt.Sprintf("game: WithDistanceRange(%d, %d)", min, max))
	}

	return func(c *roundConfig) { c.min, c.max = min, max }
}

// WithLabels replaces DefaultLabels. The list is checked by NewRound.
func WithLabels(names ...string) RoundOption {
	return func(c *roundConfig) { c.labels = append([]string(nil), names...) }
}

// NewRound draws a distance table and a home city.
//
// Draw order is fixed (upper triangle row by row, then home), so a seed
// fully determines the board.
//
// Errors: ErrBadRoundConfig wrapping ErrBadLabels for an unusable label
// list, or when fewer than two cities are given.
// Complexity: O(n²).
func NewRound(opts ...RoundOption) (*Round, error) {
	cfg := roundConfig{
		labels: DefaultLabels,
		min:    DefaultMinDistance,
		max:    DefaultMaxDistance,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	labels, err := NewLabels(cfg.labels...)
	if err != nil {
		return nil, fmt.Errorf("NewRound: %w: %w", ErrBadRoundConfig, err)
	}
	n := labels.Len()
	if n < 2 {
		return nil, fmt.Errorf("NewRound: %d cities, need at least 2: %w", n, ErrBadRoundConfig)
	}

	dist, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewRound: %w", err)
	}
	var (
		i, j int
		span = cfg.max - cfg.min + 1
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err = dist.SetSymmetric(i, j, float64(cfg.min+cfg.rng.Intn(span))); err != nil {
				return nil, fmt.Errorf("NewRound: %w", err)
			}
		}
	}

	return &Round{
		Labels: labels,
		Dist:   dist,
		Home:   labels.Label(cfg.rng.Intn(n)),
		rng:    cfg.rng,
	}, nil
}

// PickTargets draws k distinct non-home cities in random order.
// Errors: ErrBadRoundConfig when k is negative or exceeds the n-1 cities
// available.
func (r *Round) PickTargets(k int) ([]string, error) {
	n := r.Labels.Len()
	if k < 0 || k > n-1 {
		return nil, fmt.Errorf("PickTargets: k=%d, want 0..%d: %w", k, n-1, ErrBadRoundConfig)
	}

	pool := make([]string, 0, n-1)
	for _, name := range r.Labels.names {
		if name != r.Home {
			pool = append(pool, name)
		}
	}
	r.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	return pool[:k], nil
}
