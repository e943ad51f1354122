package cubesim

// Move is one of the 18 quarter-turn tokens. Each uppercase token turns
// clockwise and is paired with its lowercase inverse.
type Move uint8

const (
	U      Move = iota // Up clockwise
	UPrime             // Up counter-clockwise
	F                  // Front clockwise
	FPrime             // Front counter-clockwise
	R                  // Right clockwise
	RPrime             // Right counter-clockwise
	B                  // Back clockwise
	BPrime             // Back counter-clockwise
	L                  // Left clockwise
	LPrime             // Left counter-clockwise
	D                  // Down clockwise
	DPrime             // Down counter-clockwise
	X                  // Whole cube, following R
	XPrime             // Whole cube, following R'
	Y                  // Whole cube, following U
	YPrime             // Whole cube, following U'
	Z                  // Whole cube, following F
	ZPrime             // Whole cube, following F'

	// NumMoves is the size of the move alphabet.
	NumMoves = 18
)

// Alphabet is the token alphabet in Move order.
const Alphabet = "UuFfRrBbLlDdXxYyZz"

var moveFuncs = [NumMoves]func(Cube) Cube{
	U:      twistU,
	UPrime: twistUPrime,
	F:      twistF,
	FPrime: twistFPrime,
	R:      twistR,
	RPrime: twistRPrime,
	B:      twistB,
	BPrime: twistBPrime,
	L:      twistL,
	LPrime: twistLPrime,
	D:      twistD,
	DPrime: twistDPrime,
	X:      rotateX,
	XPrime: rotateXPrime,
	Y:      rotateY,
	YPrime: rotateYPrime,
	Z:      rotateZ,
	ZPrime: rotateZPrime,
}

// symbolToMove maps a token byte to its move; 0xFF marks bytes outside the alphabet.
var symbolToMove = func() [256]uint8 {
	var table [256]uint8
	for i := range table {
		table[i] = 0xFF
	}
	for i := 0; i < NumMoves; i++ {
		table[Alphabet[i]] = uint8(i)
	}
	return table
}()

// Moves returns every move in alphabet order.
func Moves() []Move {
	out := make([]Move, NumMoves)
	for i := range out {
		out[i] = Move(i)
	}
	return out
}

// ParseMove looks up a single token. It returns false for bytes outside the alphabet.
func ParseMove(symbol byte) (Move, bool) {
	m := symbolToMove[symbol]
	if m == 0xFF {
		return 0, false
	}
	return Move(m), true
}

// Symbol returns the token byte for the move.
func (m Move) Symbol() byte {
	return Alphabet[m]
}

// String returns the token as a string.
func (m Move) String() string {
	return string(m.Symbol())
}

// Inverse returns the move that undoes m.
// U becomes u, u becomes U.
func (m Move) Inverse() Move {
	return m ^ 1
}

// IsRotation returns true for the whole-cube rotations X, Y and Z.
func (m Move) IsRotation() bool {
	return m >= X
}

// Apply returns the cube after applying m. The receiver is unchanged.
func (c Cube) Apply(m Move) Cube {
	return moveFuncs[m](c)
}
