// Package tui implements the interactive trainer used by the play command.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/render"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	solvedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

const help = "U u F f R r B b L l D d X x Y y Z z: move  backspace: undo  ctrl+r: restart  ctrl+n: new scramble  esc: quit"

// Model is the bubbletea model for the trainer. The player starts from a
// scrambled cube and types tokens until it is solved.
type Model struct {
	tracker   *cubesim.Tracker
	scrambler *cubesim.Scrambler
	renderer  *render.Renderer
	scramble  string
	solved    bool
	quitting  bool
}

// New creates a trainer for the given scramble.
func New(s cubesim.Scramble, scrambler *cubesim.Scrambler, renderer *render.Renderer) Model {
	return Model{
		tracker:   cubesim.NewTracker(s.Cube),
		scrambler: scrambler,
		renderer:  renderer,
		scramble:  s.Sequence,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyBackspace:
		m.tracker.Undo()

	case tea.KeyCtrlR:
		m.tracker.Reset()

	case tea.KeyCtrlN:
		s := m.scrambler.Scramble(cubesim.NewCube())
		m.tracker.Restart(s.Cube)
		m.scramble = s.Sequence
		log.Debug().Str("scramble", s.Sequence).Msg("new scramble")

	case tea.KeyRunes:
		for _, r := range key.Runes {
			if r > 0x7f {
				continue
			}
			if mv, ok := cubesim.ParseMove(byte(r)); ok {
				m.tracker.Apply(mv)
			}
		}
	}

	m.solved = m.tracker.Len() > 0 && m.tracker.IsSolved()
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("cubesim trainer") + "\n\n")
	b.WriteString(m.renderer.Render(m.tracker.Cube()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Stage:      %s\n", m.tracker.Cube().DetectStage().DisplayName())
	fmt.Fprintf(&b, "Scramble:   %s\n", m.scramble)
	fmt.Fprintf(&b, "Moves:      %s\n", m.tracker.History())
	fmt.Fprintf(&b, "Simplified: %s\n", cubesim.Simplify(m.tracker.History()))
	if m.solved {
		b.WriteString("\n" + solvedStyle.Render(fmt.Sprintf("Solved in %d moves!", m.tracker.Len())) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render(help) + "\n")
	return b.String()
}

// Moves returns the tokens played since the last (re)start.
func (m Model) Moves() string {
	return m.tracker.History()
}

// Scramble returns the scramble currently being played.
func (m Model) Scramble() string {
	return m.scramble
}

// Solved reports whether the player has returned the cube to a solved state.
func (m Model) Solved() bool {
	return m.solved
}

// Cube returns the cube as currently shown.
func (m Model) Cube() cubesim.Cube {
	return m.tracker.Cube()
}
