package cubesim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorOrdinals(t *testing.T) {
	names := []string{"white", "red", "blue", "orange", "green", "yellow"}
	letters := "WRBOGY"

	for i, c := range Colors() {
		assert.Equal(t, Color(i), c)
		assert.True(t, c.Valid())
		assert.Equal(t, names[i], c.String())
		assert.Equal(t, string(letters[i]), c.Letter())
	}

	assert.False(t, Color(NumColors).Valid())
	assert.Equal(t, "unknown", Color(NumColors).String())
	assert.Equal(t, "?", Color(NumColors).Letter())
}

func TestSolvedColorsBySide(t *testing.T) {
	c := NewCube()
	want := map[Side]Color{
		SideUp:    White,
		SideFront: Red,
		SideRight: Blue,
		SideBack:  Orange,
		SideLeft:  Green,
		SideDown:  Yellow,
	}
	for side, color := range want {
		assert.Equal(t, Uniform(color), c.Face(side), side.String())
	}
}
