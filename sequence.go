package cubesim

import "strings"

// Do applies a token sequence left to right and returns the resulting cube.
// Bytes outside the move alphabet are skipped.
func (c Cube) Do(ops string) Cube {
	cube := c
	for i := 0; i < len(ops); i++ {
		if m, ok := ParseMove(ops[i]); ok {
			cube = cube.Apply(m)
		}
	}
	return cube
}

// DoMoves applies a slice of moves in order.
func (c Cube) DoMoves(moves []Move) Cube {
	cube := c
	for _, m := range moves {
		cube = cube.Apply(m)
	}
	return cube
}

// Invert returns the sequence that undoes ops: the tokens in reverse order,
// each replaced by its inverse. Bytes outside the alphabet are dropped.
func Invert(ops string) string {
	var b strings.Builder
	b.Grow(len(ops))
	for i := len(ops) - 1; i >= 0; i-- {
		if m, ok := ParseMove(ops[i]); ok {
			b.WriteByte(m.Inverse().Symbol())
		}
	}
	return b.String()
}

// FormatMoves joins moves into a token string.
func FormatMoves(moves []Move) string {
	buf := make([]byte, len(moves))
	for i, m := range moves {
		buf[i] = m.Symbol()
	}
	return string(buf)
}

type rewrite struct {
	from, to string
}

// simplifyRules is applied once, in order: triple collapses for every move,
// then inverse-pair cancellations.
var simplifyRules = func() []rewrite {
	rules := make([]rewrite, 0, 2*NumMoves)
	for _, m := range Moves() {
		s := m.String()
		rules = append(rules, rewrite{from: s + s + s, to: m.Inverse().String()})
	}
	for _, m := range Moves() {
		rules = append(rules, rewrite{from: m.String() + m.Inverse().String(), to: ""})
	}
	return rules
}()

// Simplify performs a single pass of local rewrites over a token sequence:
// three identical quarter turns become one inverse turn, and adjacent inverse
// pairs cancel. The output is not re-scanned, so patterns exposed by a later
// rule can remain: Simplify("UFfu") is "Uu".
func Simplify(seq string) string {
	for _, r := range simplifyRules {
		seq = strings.ReplaceAll(seq, r.from, r.to)
	}
	return seq
}
