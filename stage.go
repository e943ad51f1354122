package cubesim

// Stage is a checkpoint of the layer-by-layer method, measured from the
// current up face down. Stages progress from StageScrambled (0) to
// StageSolved (7), allowing comparison with < and >.
//
// Every check compares stickers with face centers, so a whole-cube rotation
// changes which layer counts as the first one.
type Stage int

const (
	// StageScrambled indicates no stage is complete.
	StageScrambled Stage = iota

	// StageCross indicates the four up-face edges show the up center color
	// and their side stickers match the side centers.
	StageCross

	// StageFirstLayer indicates the whole up layer is solved.
	StageFirstLayer

	// StageSecondLayer indicates the middle layer edges are solved too.
	StageSecondLayer

	// StageLastCross indicates the four down-face edges show the down
	// center color. Their side stickers may still be wrong.
	StageLastCross

	// StageCornersPositioned indicates every down corner holds the right
	// three colors, possibly twisted.
	StageCornersPositioned

	// StageCornersOriented indicates the down face and the down corners are
	// solved, leaving at most the last-layer edges.
	StageCornersOriented

	// StageSolved indicates every face is monochrome.
	StageSolved
)

// String returns a short identifier for the stage.
func (s Stage) String() string {
	switch s {
	case StageScrambled:
		return "scrambled"
	case StageCross:
		return "cross"
	case StageFirstLayer:
		return "first_layer"
	case StageSecondLayer:
		return "second_layer"
	case StageLastCross:
		return "last_cross"
	case StageCornersPositioned:
		return "corners_positioned"
	case StageCornersOriented:
		return "corners_oriented"
	case StageSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the stage.
func (s Stage) DisplayName() string {
	switch s {
	case StageScrambled:
		return "Scrambled"
	case StageCross:
		return "Cross"
	case StageFirstLayer:
		return "First Layer"
	case StageSecondLayer:
		return "Second Layer"
	case StageLastCross:
		return "Last Layer Cross"
	case StageCornersPositioned:
		return "Last Corners Positioned"
	case StageCornersOriented:
		return "Last Corners Oriented"
	case StageSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

var sideFaces = [4]Side{SideFront, SideRight, SideBack, SideLeft}

// center returns the color of the center sticker of a face.
func (c Cube) center(s Side) Color {
	return c.faces[s][1][1]
}

// edgeStickers lists the four edge positions of a face.
var edgeStickers = [4][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}}

// IsCrossComplete reports whether the up cross is solved.
func (c Cube) IsCrossComplete() bool {
	up := c.center(SideUp)
	for _, p := range edgeStickers {
		if c.faces[SideUp][p[0]][p[1]] != up {
			return false
		}
	}

	for _, s := range sideFaces {
		if c.faces[s][0][1] != c.center(s) {
			return false
		}
	}

	return true
}

// IsFirstLayerComplete reports whether the whole up layer is solved.
func (c Cube) IsFirstLayerComplete() bool {
	if !c.IsCrossComplete() {
		return false
	}

	if !isUniform(c.faces[SideUp]) {
		return false
	}

	for _, s := range sideFaces {
		center := c.center(s)
		if c.faces[s][0][0] != center || c.faces[s][0][2] != center {
			return false
		}
	}

	return true
}

// IsSecondLayerComplete reports whether the middle layer edges are solved
// on top of the first layer.
func (c Cube) IsSecondLayerComplete() bool {
	if !c.IsFirstLayerComplete() {
		return false
	}

	for _, s := range sideFaces {
		center := c.center(s)
		if c.faces[s][1][0] != center || c.faces[s][1][2] != center {
			return false
		}
	}

	return true
}

// IsLastCrossComplete reports whether the down edges show the down color.
// The edges' side stickers are not checked.
func (c Cube) IsLastCrossComplete() bool {
	if !c.IsSecondLayerComplete() {
		return false
	}

	down := c.center(SideDown)
	for _, p := range edgeStickers {
		if c.faces[SideDown][p[0]][p[1]] != down {
			return false
		}
	}

	return true
}

// downCorners lists the three stickers of each down corner as
// (side, row, col) triples.
var downCorners = [4][3][3]int{
	{{int(SideDown), 0, 0}, {int(SideFront), 2, 0}, {int(SideLeft), 2, 2}},
	{{int(SideDown), 0, 2}, {int(SideRight), 2, 0}, {int(SideFront), 2, 2}},
	{{int(SideDown), 2, 2}, {int(SideBack), 2, 0}, {int(SideRight), 2, 2}},
	{{int(SideDown), 2, 0}, {int(SideLeft), 2, 0}, {int(SideBack), 2, 2}},
}

// AreCornersPositioned reports whether each down corner holds the colors of
// the three faces it touches, in any orientation.
func (c Cube) AreCornersPositioned() bool {
	if !c.IsLastCrossComplete() {
		return false
	}

	for _, corner := range downCorners {
		var actual, expected [3]Color
		for i, p := range corner {
			actual[i] = c.faces[p[0]][p[1]][p[2]]
			expected[i] = c.center(Side(p[0]))
		}
		if !sameColors(actual, expected) {
			return false
		}
	}

	return true
}

// AreCornersOriented reports whether the down face and the down corners are
// solved.
func (c Cube) AreCornersOriented() bool {
	if !c.AreCornersPositioned() {
		return false
	}

	if !isUniform(c.faces[SideDown]) {
		return false
	}

	for _, s := range sideFaces {
		center := c.center(s)
		if c.faces[s][2][0] != center || c.faces[s][2][2] != center {
			return false
		}
	}

	return true
}

// DetectStage returns the furthest stage the cube has reached.
func (c Cube) DetectStage() Stage {
	if c.IsSolved() {
		return StageSolved
	}
	if c.AreCornersOriented() {
		return StageCornersOriented
	}
	if c.AreCornersPositioned() {
		return StageCornersPositioned
	}
	if c.IsLastCrossComplete() {
		return StageLastCross
	}
	if c.IsSecondLayerComplete() {
		return StageSecondLayer
	}
	if c.IsFirstLayerComplete() {
		return StageFirstLayer
	}
	if c.IsCrossComplete() {
		return StageCross
	}
	return StageScrambled
}

func isUniform(f Face) bool {
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			if f[r][col] != f[1][1] {
				return false
			}
		}
	}
	return true
}

// sameColors checks if two color triples contain the same colors (in any order).
func sameColors(a, b [3]Color) bool {
	var count [NumColors]int
	for i := range a {
		count[a[i]]++
		count[b[i]]--
	}
	for _, v := range count {
		if v != 0 {
			return false
		}
	}
	return true
}
