package cubesim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNotation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"R U R' U2 x y'", "RUrUUXy"},
		{"R", "R"},
		{"R'", "r"},
		{"R`", "r"},
		{"R2", "RR"},
		{"R2'", "RR"},
		{"R'2", "RR"},
		{"U'2 F", "UUF"},
		{"x'2", "XX"},
		{"F R U' R' U' R U R' F'", "FRuruRUrf"},
		{"RUR'U'", "RUru"},
		{"X Y' Z2", "XyZZ"},
		{"z'", "z"},
		{"", ""},
		{"  L, D ", "LD"},
	}
	for _, tt := range tests {
		got, err := ParseNotation(tt.in)
		require.NoError(t, err, "ParseNotation(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseNotation(%q)", tt.in)
	}
}

func TestParseNotationInvalid(t *testing.T) {
	for _, in := range []string{"r", "R U M", "Q", "R3", "'", "R22", "R''", "R'2'"} {
		_, err := ParseNotation(in)
		assert.ErrorIs(t, err, ErrInvalidNotation, "ParseNotation(%q)", in)
	}
}

func TestFormatNotation(t *testing.T) {
	assert.Equal(t, "R U R' U'", FormatNotation(SexyMove))
	assert.Equal(t, "x y' z", FormatNotation("XyZ"))
	assert.Equal(t, "F", FormatNotation("F?"))
	assert.Equal(t, "", FormatNotation(""))
}

func TestNotationRoundTrip(t *testing.T) {
	for _, ops := range []string{Alphabet, TPerm, Commutator} {
		got, err := ParseNotation(FormatNotation(ops))
		require.NoError(t, err)
		assert.Equal(t, ops, got)
	}
}
