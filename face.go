package cubesim

// Face is a 3x3 grid of stickers, row-major:
//
//	(0,0) (0,1) (0,2)
//	(1,0) (1,1) (1,2)
//	(2,0) (2,1) (2,2)
type Face [3][3]Color

// strip is one row or column of a face, read in index order.
type strip [3]Color

// Uniform returns a face with every sticker set to c.
func Uniform(c Color) Face {
	return Face{{c, c, c}, {c, c, c}, {c, c, c}}
}

// Clockwise returns the face rotated 90 degrees clockwise.
//
//	0 1 2    6 3 0
//	3 4 5 -> 7 4 1
//	6 7 8    8 5 2
func (f Face) Clockwise() Face {
	var out Face
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = f[2-c][r]
		}
	}
	return out
}

// Counterclockwise returns the face rotated 90 degrees counter-clockwise.
func (f Face) Counterclockwise() Face {
	var out Face
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = f[c][2-r]
		}
	}
	return out
}

// halfTurn returns the face rotated 180 degrees.
func (f Face) halfTurn() Face {
	return f.Clockwise().Clockwise()
}

func (f Face) row(i int) strip {
	return strip(f[i])
}

func (f Face) col(j int) strip {
	return strip{f[0][j], f[1][j], f[2][j]}
}

func (f Face) withRow(i int, s strip) Face {
	f[i] = s
	return f
}

func (f Face) withCol(j int, s strip) Face {
	f[0][j] = s[0]
	f[1][j] = s[1]
	f[2][j] = s[2]
	return f
}

func (s strip) reversed() strip {
	return strip{s[2], s[1], s[0]}
}
