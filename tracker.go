package cubesim

// Tracker follows a chain of moves from a starting cube and keeps the
// history so moves can be undone. Each step replaces the current cube
// with a new value; cubes handed out earlier are never affected.
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	start        Cube
	cube         Cube
	history      []Move
	moveCallback func(m Move, cube Cube)
}

// NewTracker creates a tracker starting from the given cube.
func NewTracker(start Cube) *Tracker {
	return &Tracker{
		start: start,
		cube:  start,
	}
}

// OnMove sets a callback that fires after every applied or undone move.
func (t *Tracker) OnMove(cb func(m Move, cube Cube)) {
	t.moveCallback = cb
}

// Reset returns to the starting cube and clears the history.
func (t *Tracker) Reset() {
	t.cube = t.start
	t.history = t.history[:0]
}

// Restart makes c the new starting cube and clears the history.
func (t *Tracker) Restart(c Cube) {
	t.start = c
	t.Reset()
}

// Apply applies a move and records it.
func (t *Tracker) Apply(m Move) Cube {
	t.cube = t.cube.Apply(m)
	t.history = append(t.history, m)
	t.notify(m)
	return t.cube
}

// Do applies every recognized token of ops.
func (t *Tracker) Do(ops string) Cube {
	for i := 0; i < len(ops); i++ {
		if m, ok := ParseMove(ops[i]); ok {
			t.Apply(m)
		}
	}
	return t.cube
}

// Undo reverts the last move. It returns false if there is nothing to undo.
func (t *Tracker) Undo() bool {
	if len(t.history) == 0 {
		return false
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	inv := last.Inverse()
	t.cube = t.cube.Apply(inv)
	t.notify(inv)
	return true
}

func (t *Tracker) notify(m Move) {
	if t.moveCallback != nil {
		t.moveCallback(m, t.cube)
	}
}

// Cube returns the current cube.
func (t *Tracker) Cube() Cube {
	return t.cube
}

// Start returns the starting cube.
func (t *Tracker) Start() Cube {
	return t.start
}

// History returns the applied moves as a token string.
func (t *Tracker) History() string {
	return FormatMoves(t.history)
}

// Len returns the number of moves in the history.
func (t *Tracker) Len() int {
	return len(t.history)
}

// Solution returns the sequence that takes the current cube back to the start.
func (t *Tracker) Solution() string {
	return Invert(t.History())
}

// IsSolved returns true if the current cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// String returns a letter net of the current cube.
func (t *Tracker) String() string {
	return t.cube.String()
}
