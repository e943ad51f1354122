package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/render"
)

func newTestModel(t *testing.T) (Model, cubesim.Scramble) {
	t.Helper()
	scrambler := cubesim.NewScrambler(cubesim.WithSeed(5), cubesim.WithLength(6))
	s := scrambler.Scramble(cubesim.NewCube())
	return New(s, scrambler, render.NewPlain()), s
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeysApplyMoves(t *testing.T) {
	m, s := newTestModel(t)

	m = press(t, m, runes("R"))
	m = press(t, m, runes("u?"))
	assert.Equal(t, "Ru", m.Moves())
	assert.Equal(t, s.Cube.Do("Ru"), m.Cube())
}

func TestBackspaceUndoes(t *testing.T) {
	m, s := newTestModel(t)

	m = press(t, m, runes("FF"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "F", m.Moves())
	assert.Equal(t, s.Cube.Apply(cubesim.F), m.Cube())
}

func TestSolvingShowsMessage(t *testing.T) {
	m, s := newTestModel(t)

	m = press(t, m, runes(s.Solution))
	assert.True(t, m.Solved())
	assert.Contains(t, m.View(), "Solved in 6 moves!")
	assert.Contains(t, m.View(), "Stage:      Solved")
}

func TestRestartAndNewScramble(t *testing.T) {
	m, s := newTestModel(t)

	m = press(t, m, runes("RU"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, "", m.Moves())
	assert.Equal(t, s.Cube, m.Cube())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.NotEqual(t, s.Sequence, m.Scramble())
	assert.Equal(t, cubesim.NewCube().Do(m.Scramble()), m.Cube())
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, "", next.View())
}
