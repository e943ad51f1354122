package cubesim

// Color represents a sticker color.
type Color uint8

const (
	White  Color = 0 // Up face when solved
	Red    Color = 1 // Front face when solved
	Blue   Color = 2 // Right face when solved
	Orange Color = 3 // Back face when solved
	Green  Color = 4 // Left face when solved
	Yellow Color = 5 // Down face when solved
)

// NumColors is the number of sticker colors.
const NumColors = 6

// Colors returns every color in ordinal order.
func Colors() [NumColors]Color {
	return [NumColors]Color{White, Red, Blue, Orange, Green, Yellow}
}

// Valid reports whether c is one of the six sticker colors.
func (c Color) Valid() bool {
	return c < NumColors
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Orange:
		return "orange"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Letter returns a single-letter abbreviation of the color.
func (c Color) Letter() string {
	switch c {
	case White:
		return "W"
	case Red:
		return "R"
	case Blue:
		return "B"
	case Orange:
		return "O"
	case Green:
		return "G"
	case Yellow:
		return "Y"
	default:
		return "?"
	}
}
