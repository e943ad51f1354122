package cubesim

import (
	"math/rand/v2"
	"strings"
)

// Intner is the random source used for scrambling. *rand.Rand satisfies it.
type Intner interface {
	IntN(n int) int
}

// Shuffle applies n moves drawn uniformly, with replacement, from the full
// 18-move alphabet. It returns the scrambled cube and the sequence that
// undoes the scramble, so that scrambled.Do(inverse) equals c.
func (c Cube) Shuffle(rng Intner, n int) (Cube, string) {
	if n <= 0 {
		return c, ""
	}

	ops := make([]byte, n)
	for i := range ops {
		ops[i] = Alphabet[rng.IntN(NumMoves)]
	}

	return c.Do(string(ops)), Invert(string(ops))
}

// Scrambler generates scrambles with a fixed length and random source.
type Scrambler struct {
	cfg *config
}

// Scramble is the result of one Scrambler run.
type Scramble struct {
	Start    Cube   // Cube before scrambling
	Cube     Cube   // Scrambled cube
	Sequence string // Tokens applied
	Solution string // Tokens that undo Sequence
}

// NewScrambler creates a scrambler. Without WithSeed or WithRand it draws
// from a generator seeded by the runtime.
func NewScrambler(opts ...Option) *Scrambler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Scrambler{cfg: cfg}
}

// Length returns the number of moves per scramble.
func (s *Scrambler) Length() int {
	return s.cfg.length
}

// Scramble scrambles c and records both the applied sequence and its inverse.
func (s *Scrambler) Scramble(c Cube) Scramble {
	recorder := &recordingIntner{src: s.cfg.rng}
	scrambled, solution := c.Shuffle(recorder, s.cfg.length)
	return Scramble{
		Start:    c,
		Cube:     scrambled,
		Sequence: recorder.sequence(),
		Solution: solution,
	}
}

// recordingIntner remembers every draw so the applied sequence can be
// reported alongside the inverse Shuffle returns.
type recordingIntner struct {
	src   Intner
	draws []int
}

func (r *recordingIntner) IntN(n int) int {
	v := r.src.IntN(n)
	r.draws = append(r.draws, v)
	return v
}

func (r *recordingIntner) sequence() string {
	var b strings.Builder
	b.Grow(len(r.draws))
	for _, d := range r.draws {
		b.WriteByte(Alphabet[d])
	}
	return b.String()
}
