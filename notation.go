package cubesim

import (
	"fmt"
	"strings"
)

// ParseNotation converts standard cube notation into a token string.
// Examples: R, R', R2, U, U', U2, x, y', z2
//
// Face turns use uppercase letters. Whole-cube rotations are accepted in
// either case (x or X). Half turns expand to two quarter turns, so
// "R U2 x'" becomes "RUUx". A half turn may carry a prime on either side of
// the 2 (R2' and R'2); it has no effect. Whitespace between moves is optional.
// Lowercase face letters (wide moves) are rejected with ErrInvalidNotation.
func ParseNotation(s string) (string, error) {
	var b strings.Builder

	i := 0
	for i < len(s) {
		ch := s[i]
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == ',' {
			i++
			continue
		}

		var m Move
		switch ch {
		case 'U':
			m = U
		case 'F':
			m = F
		case 'R':
			m = R
		case 'B':
			m = B
		case 'L':
			m = L
		case 'D':
			m = D
		case 'x', 'X':
			m = X
		case 'y', 'Y':
			m = Y
		case 'z', 'Z':
			m = Z
		default:
			return "", fmt.Errorf("%w: %q at offset %d", ErrInvalidNotation, ch, i)
		}
		i++

		// Extract turn: "2" and a prime may come in either order
		count, prime := 1, false
	suffix:
		for i < len(s) {
			switch {
			case s[i] == '2' && count == 1:
				count = 2
			case (s[i] == '\'' || s[i] == '`') && !prime:
				prime = true
			default:
				break suffix
			}
			i++
		}
		if prime && count == 1 {
			m = m.Inverse()
		}

		for n := 0; n < count; n++ {
			b.WriteByte(m.Symbol())
		}
	}

	return b.String(), nil
}

// FormatNotation renders a token string in standard notation, one move per
// token, separated by spaces. Bytes outside the alphabet are dropped.
// Example: "RUru" becomes "R U R' U'" and "Xy" becomes "x y'".
func FormatNotation(ops string) string {
	parts := make([]string, 0, len(ops))
	for i := 0; i < len(ops); i++ {
		m, ok := ParseMove(ops[i])
		if !ok {
			continue
		}
		parts = append(parts, m.Notation())
	}
	return strings.Join(parts, " ")
}

// Notation returns the standard notation for a single move.
// Examples: U, U', x, x'
func (m Move) Notation() string {
	base := m
	suffix := ""
	if m&1 == 1 {
		base = m.Inverse()
		suffix = "'"
	}
	if base.IsRotation() {
		return strings.ToLower(base.String()) + suffix
	}
	return base.String() + suffix
}
