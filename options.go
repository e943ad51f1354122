package cubesim

import "math/rand/v2"

// DefaultScrambleLength is the number of moves a Scrambler draws by default.
const DefaultScrambleLength = 40

// Option configures a Scrambler.
type Option func(*config)

type config struct {
	length int
	rng    Intner
}

func defaultConfig() *config {
	return &config{
		length: DefaultScrambleLength,
	}
}

// WithLength sets the number of moves drawn per scramble.
// Values below zero are treated as zero.
func WithLength(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.length = n
	}
}

// WithSeed makes scrambles reproducible by seeding a PCG generator.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = NewRand(seed)
	}
}

// WithRand supplies the random source directly.
func WithRand(rng Intner) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// NewRand returns a deterministic generator for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
