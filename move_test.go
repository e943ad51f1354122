package cubesim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	for i := 0; i < len(Alphabet); i++ {
		m, ok := ParseMove(Alphabet[i])
		require.True(t, ok, "%q", Alphabet[i])
		assert.Equal(t, Move(i), m)
		assert.Equal(t, Alphabet[i], m.Symbol())
	}

	for _, b := range []byte{'Q', 'M', ' ', '2', '\'', 0} {
		_, ok := ParseMove(b)
		assert.False(t, ok, "%q", b)
	}
}

func TestInversePairs(t *testing.T) {
	pairs := map[Move]Move{
		U: UPrime, F: FPrime, R: RPrime, B: BPrime, L: LPrime, D: DPrime,
		X: XPrime, Y: YPrime, Z: ZPrime,
	}
	for m, inv := range pairs {
		assert.Equal(t, inv, m.Inverse())
		assert.Equal(t, m, inv.Inverse())
	}
	assert.Len(t, Moves(), NumMoves)
}

func TestMoveThenInverseIsIdentity(t *testing.T) {
	cubes := []Cube{NewCube(), scrambledCube(t, 11), scrambledCube(t, 12)}
	for _, c := range cubes {
		for _, m := range Moves() {
			got := c.Apply(m).Apply(m.Inverse())
			assert.Equal(t, c, got, "%s then %s", m, m.Inverse())
		}
	}
}

func TestMoveFourTimesIsIdentity(t *testing.T) {
	c := scrambledCube(t, 21)
	for _, m := range Moves() {
		got := c.Apply(m).Apply(m).Apply(m).Apply(m)
		assert.Equal(t, c, got, "%s x 4", m)
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	c := NewCube()
	for i := 0; i < 6; i++ {
		c = c.Do(SexyMove)
	}
	assert.True(t, c.Equal(NewCube()))
}

func TestTPermTwiceReturnsToSolved(t *testing.T) {
	c := NewCube().Do(TPerm)
	assert.False(t, c.IsSolved())
	assert.True(t, c.Do(TPerm).Equal(NewCube()))
}

func TestFaceRotationOrder(t *testing.T) {
	f := labelledCube().Up()

	assert.Equal(t, f, f.Clockwise().Clockwise().Clockwise().Clockwise())
	assert.Equal(t, f, f.Counterclockwise().Counterclockwise().Counterclockwise().Counterclockwise())
	assert.Equal(t, f, f.Clockwise().Counterclockwise())
	assert.Equal(t, f, f.Counterclockwise().Clockwise())

	cw := f.Clockwise()
	assert.Equal(t, Face{{6, 3, 0}, {7, 4, 1}, {8, 5, 2}}, cw)
}
