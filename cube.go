package cubesim

import (
	"fmt"
	"strings"
)

// Side names one of the six face positions of the cube.
type Side int

const (
	SideUp    Side = 0
	SideFront Side = 1
	SideRight Side = 2
	SideBack  Side = 3
	SideLeft  Side = 4
	SideDown  Side = 5
)

// NumSides is the number of faces on the cube.
const NumSides = 6

// NumStickers is the number of stickers across all six faces.
const NumStickers = NumSides * 9

func (s Side) String() string {
	switch s {
	case SideUp:
		return "up"
	case SideFront:
		return "front"
	case SideRight:
		return "right"
	case SideBack:
		return "back"
	case SideLeft:
		return "left"
	case SideDown:
		return "down"
	default:
		return "?"
	}
}

// Cube is an immutable 3x3x3 cube state.
//
// The net is laid out as:
//
//	    UUU
//	    UUU
//	    UUU
//	LLL FFF RRR BBB
//	LLL FFF RRR BBB
//	LLL FFF RRR BBB
//	    DDD
//	    DDD
//	    DDD
//
// A Cube is a plain value: every move returns a new Cube and the receiver is
// never modified, so values can be shared freely between goroutines.
type Cube struct {
	faces [NumSides]Face
}

// NewCube returns a solved cube: white up, red front, blue right,
// orange back, green left, yellow down.
func NewCube() Cube {
	var c Cube
	for s := SideUp; s <= SideDown; s++ {
		c.faces[s] = Uniform(solvedColor(s))
	}
	return c
}

// solvedColor returns the color of a side when solved.
func solvedColor(s Side) Color {
	switch s {
	case SideUp:
		return White
	case SideFront:
		return Red
	case SideRight:
		return Blue
	case SideBack:
		return Orange
	case SideLeft:
		return Green
	case SideDown:
		return Yellow
	default:
		return White
	}
}

// NewCubeFromFaces builds a cube from six explicit faces. It returns an error
// wrapping ErrInvariantViolation unless every color appears exactly 9 times.
func NewCubeFromFaces(up, front, right, back, left, down Face) (Cube, error) {
	c := Cube{faces: [NumSides]Face{up, front, right, back, left, down}}
	if err := c.check(); err != nil {
		return Cube{}, err
	}
	return c, nil
}

// FromIndices rebuilds a cube from the flat form produced by Indices.
func FromIndices(indices []int) (Cube, error) {
	if len(indices) != NumStickers {
		return Cube{}, fmt.Errorf("%w: expected %d stickers, got %d", ErrInvariantViolation, NumStickers, len(indices))
	}

	var c Cube
	for i, v := range indices {
		if v < 0 || v >= NumColors {
			return Cube{}, fmt.Errorf("%w: sticker %d has invalid color %d", ErrInvariantViolation, i, v)
		}
		c.faces[i/9][(i%9)/3][i%3] = Color(v)
	}

	if err := c.check(); err != nil {
		return Cube{}, err
	}
	return c, nil
}

// check verifies that each color occurs exactly 9 times.
func (c Cube) check() error {
	var counts [NumColors]int
	for _, face := range c.faces {
		for _, row := range face {
			for _, color := range row {
				if !color.Valid() {
					return fmt.Errorf("%w: invalid color %d", ErrInvariantViolation, color)
				}
				counts[color]++
			}
		}
	}

	for color, n := range counts {
		if n != 9 {
			return fmt.Errorf("%w: %s has incorrect count %d", ErrInvariantViolation, Color(color), n)
		}
	}
	return nil
}

// Face returns the face at side s.
func (c Cube) Face(s Side) Face {
	return c.faces[s]
}

// Up returns the up face.
func (c Cube) Up() Face { return c.faces[SideUp] }

// Front returns the front face.
func (c Cube) Front() Face { return c.faces[SideFront] }

// Right returns the right face.
func (c Cube) Right() Face { return c.faces[SideRight] }

// Back returns the back face.
func (c Cube) Back() Face { return c.faces[SideBack] }

// Left returns the left face.
func (c Cube) Left() Face { return c.faces[SideLeft] }

// Down returns the down face.
func (c Cube) Down() Face { return c.faces[SideDown] }

// Indices flattens the cube to color ordinals: up, front, right, back, left,
// down, row-major within each face. Two cubes are equal iff their indices are.
func (c Cube) Indices() [NumStickers]int {
	var out [NumStickers]int
	i := 0
	for _, face := range c.faces {
		for _, row := range face {
			for _, color := range row {
				out[i] = int(color)
				i++
			}
		}
	}
	return out
}

// Equal reports whether two cubes have identical stickers.
func (c Cube) Equal(other Cube) bool {
	return c.Indices() == other.Indices()
}

// IsSolved returns true if every face is a single color.
func (c Cube) IsSolved() bool {
	for _, face := range c.faces {
		if !isUniform(face) {
			return false
		}
	}
	return true
}

// String returns a letter net of the cube.
func (c Cube) String() string {
	var b strings.Builder

	writeRow := func(f Face, r int) {
		for _, color := range f[r] {
			b.WriteString(color.Letter())
		}
	}

	for r := 0; r < 3; r++ {
		b.WriteString("   ")
		writeRow(c.faces[SideUp], r)
		b.WriteByte('\n')
	}

	for r := 0; r < 3; r++ {
		for _, s := range []Side{SideLeft, SideFront, SideRight, SideBack} {
			writeRow(c.faces[s], r)
		}
		b.WriteByte('\n')
	}

	for r := 0; r < 3; r++ {
		b.WriteString("   ")
		writeRow(c.faces[SideDown], r)
		b.WriteByte('\n')
	}

	return b.String()
}
