package cubesim

// Whole-cube rotations relabel the six faces without turning any layer.
// X follows R, Y follows U and Z follows F.

func rotateX(c Cube) Cube {
	return Cube{faces: [NumSides]Face{
		SideUp:    c.faces[SideFront],
		SideFront: c.faces[SideDown],
		SideRight: c.faces[SideRight].Clockwise(),
		SideBack:  c.faces[SideUp].halfTurn(),
		SideLeft:  c.faces[SideLeft].Counterclockwise(),
		SideDown:  c.faces[SideBack].halfTurn(),
	}}
}

func rotateXPrime(c Cube) Cube {
	return Cube{faces: [NumSides]Face{
		SideUp:    c.faces[SideBack].halfTurn(),
		SideFront: c.faces[SideUp],
		SideRight: c.faces[SideRight].Counterclockwise(),
		SideBack:  c.faces[SideDown].halfTurn(),
		SideLeft:  c.faces[SideLeft].Clockwise(),
		SideDown:  c.faces[SideFront],
	}}
}

func rotateY(c Cube) Cube {
	return Cube{faces: [NumSides]Face{
		SideUp:    c.faces[SideUp].Clockwise(),
		SideFront: c.faces[SideRight],
		SideRight: c.faces[SideBack],
		SideBack:  c.faces[SideLeft],
		SideLeft:  c.faces[SideFront],
		SideDown:  c.faces[SideDown].Counterclockwise(),
	}}
}

func rotateYPrime(c Cube) Cube {
	return Cube{faces: [NumSides]Face{
		SideUp:    c.faces[SideUp].Counterclockwise(),
		SideFront: c.faces[SideLeft],
		SideRight: c.faces[SideFront],
		SideBack:  c.faces[SideRight],
		SideLeft:  c.faces[SideBack],
		SideDown:  c.faces[SideDown].Clockwise(),
	}}
}

func rotateZ(c Cube) Cube {
	return Cube{faces: [NumSides]Face{
		SideUp:    c.faces[SideLeft].Clockwise(),
		SideFront: c.faces[SideFront].Clockwise(),
		SideRight: c.faces[SideUp].Clockwise(),
		SideBack:  c.faces[SideBack].Counterclockwise(),
		SideLeft:  c.faces[SideDown].Clockwise(),
		SideDown:  c.faces[SideRight].Clockwise(),
	}}
}

func rotateZPrime(c Cube) Cube {
	return Cube{faces: [NumSides]Face{
		SideUp:    c.faces[SideRight].Counterclockwise(),
		SideFront: c.faces[SideFront].Counterclockwise(),
		SideRight: c.faces[SideDown].Counterclockwise(),
		SideBack:  c.faces[SideBack].Clockwise(),
		SideLeft:  c.faces[SideUp].Counterclockwise(),
		SideDown:  c.faces[SideLeft].Counterclockwise(),
	}}
}
