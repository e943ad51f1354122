// Package render draws a cube as an unfolded net for the terminal.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesim"
)

// Sticker is the glyph drawn for every sticker.
const Sticker = "■"

// palette maps a color ordinal to its ANSI display color. Orange has no
// basic ANSI slot, so it is shown as magenta.
var palette = [cubesim.NumColors]lipgloss.Color{
	cubesim.White:  lipgloss.Color("15"),
	cubesim.Red:    lipgloss.Color("9"),
	cubesim.Blue:   lipgloss.Color("12"),
	cubesim.Orange: lipgloss.Color("13"),
	cubesim.Green:  lipgloss.Color("10"),
	cubesim.Yellow: lipgloss.Color("11"),
}

// Renderer draws cubes. It only reads the cubes it is given.
type Renderer struct {
	styles [cubesim.NumColors]lipgloss.Style
	plain  bool
}

// New creates a renderer whose color profile is detected from w.
func New(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	out := &Renderer{}
	for i, c := range palette {
		out.styles[i] = r.NewStyle().Foreground(c)
	}
	return out
}

// NewPlain creates a renderer that prints color letters instead of glyphs.
func NewPlain() *Renderer {
	return &Renderer{plain: true}
}

// DisplayColor returns the terminal color used for c.
func DisplayColor(c cubesim.Color) lipgloss.Color {
	return palette[c]
}

func (r *Renderer) sticker(c cubesim.Color) string {
	if r.plain {
		return c.Letter()
	}
	return r.styles[c].Render(Sticker)
}

func (r *Renderer) row(f cubesim.Face, i int) string {
	var b strings.Builder
	for _, c := range f[i] {
		b.WriteString(r.sticker(c))
	}
	return b.String()
}

// Render returns the net: up above, left front right back in the middle
// band, down below.
func (r *Renderer) Render(c cubesim.Cube) string {
	var b strings.Builder
	indent := strings.Repeat(" ", 3)

	for i := 0; i < 3; i++ {
		b.WriteString(indent + r.row(c.Up(), i) + "\n")
	}

	for i := 0; i < 3; i++ {
		b.WriteString(r.row(c.Left(), i))
		b.WriteString(r.row(c.Front(), i))
		b.WriteString(r.row(c.Right(), i))
		b.WriteString(r.row(c.Back(), i))
		b.WriteString("\n")
	}

	for i := 0; i < 3; i++ {
		b.WriteString(indent + r.row(c.Down(), i) + "\n")
	}

	return b.String()
}
