package cubesim

// Layer twists. Each rotates one face and cycles the ring of 12 stickers on
// the four neighbouring faces. Faces a twist does not touch are copied as-is.

func twistU(c Cube) Cube {
	up, front, right, back, left := c.faces[SideUp], c.faces[SideFront], c.faces[SideRight], c.faces[SideBack], c.faces[SideLeft]
	n := c
	n.faces[SideUp] = up.Clockwise()
	n.faces[SideFront] = front.withRow(0, right.row(0))
	n.faces[SideRight] = right.withRow(0, back.row(0))
	n.faces[SideBack] = back.withRow(0, left.row(0))
	n.faces[SideLeft] = left.withRow(0, front.row(0))
	return n
}

func twistUPrime(c Cube) Cube {
	up, front, right, back, left := c.faces[SideUp], c.faces[SideFront], c.faces[SideRight], c.faces[SideBack], c.faces[SideLeft]
	n := c
	n.faces[SideUp] = up.Counterclockwise()
	n.faces[SideFront] = front.withRow(0, left.row(0))
	n.faces[SideRight] = right.withRow(0, front.row(0))
	n.faces[SideBack] = back.withRow(0, right.row(0))
	n.faces[SideLeft] = left.withRow(0, back.row(0))
	return n
}

func twistF(c Cube) Cube {
	up, front, right, left, down := c.faces[SideUp], c.faces[SideFront], c.faces[SideRight], c.faces[SideLeft], c.faces[SideDown]
	n := c
	n.faces[SideFront] = front.Clockwise()
	n.faces[SideUp] = up.withRow(2, left.col(2).reversed())
	n.faces[SideRight] = right.withCol(0, up.row(2))
	n.faces[SideLeft] = left.withCol(2, down.row(0))
	n.faces[SideDown] = down.withRow(0, right.col(0).reversed())
	return n
}

func twistFPrime(c Cube) Cube {
	up, front, right, left, down := c.faces[SideUp], c.faces[SideFront], c.faces[SideRight], c.faces[SideLeft], c.faces[SideDown]
	n := c
	n.faces[SideFront] = front.Counterclockwise()
	n.faces[SideUp] = up.withRow(2, right.col(0))
	n.faces[SideRight] = right.withCol(0, down.row(0).reversed())
	n.faces[SideLeft] = left.withCol(2, up.row(2).reversed())
	n.faces[SideDown] = down.withRow(0, left.col(2))
	return n
}

func twistR(c Cube) Cube {
	up, front, right, back, down := c.faces[SideUp], c.faces[SideFront], c.faces[SideRight], c.faces[SideBack], c.faces[SideDown]
	n := c
	n.faces[SideRight] = right.Clockwise()
	n.faces[SideUp] = up.withCol(2, front.col(2))
	n.faces[SideFront] = front.withCol(2, down.col(2))
	n.faces[SideBack] = back.withCol(0, up.col(2).reversed())
	n.faces[SideDown] = down.withCol(2, back.col(0).reversed())
	return n
}

func twistRPrime(c Cube) Cube {
	up, front, right, back, down := c.faces[SideUp], c.faces[SideFront], c.faces[SideRight], c.faces[SideBack], c.faces[SideDown]
	n := c
	n.faces[SideRight] = right.Counterclockwise()
	n.faces[SideUp] = up.withCol(2, back.col(0).reversed())
	n.faces[SideFront] = front.withCol(2, up.col(2))
	n.faces[SideBack] = back.withCol(0, down.col(2).reversed())
	n.faces[SideDown] = down.withCol(2, front.col(2))
	return n
}

func twistB(c Cube) Cube {
	up, right, back, left, down := c.faces[SideUp], c.faces[SideRight], c.faces[SideBack], c.faces[SideLeft], c.faces[SideDown]
	n := c
	n.faces[SideBack] = back.Clockwise()
	n.faces[SideUp] = up.withRow(0, right.col(2))
	n.faces[SideRight] = right.withCol(2, down.row(2).reversed())
	n.faces[SideLeft] = left.withCol(0, up.row(0).reversed())
	n.faces[SideDown] = down.withRow(2, left.col(0))
	return n
}

func twistBPrime(c Cube) Cube {
	up, right, back, left, down := c.faces[SideUp], c.faces[SideRight], c.faces[SideBack], c.faces[SideLeft], c.faces[SideDown]
	n := c
	n.faces[SideBack] = back.Counterclockwise()
	n.faces[SideUp] = up.withRow(0, left.col(0).reversed())
	n.faces[SideRight] = right.withCol(2, up.row(0))
	n.faces[SideLeft] = left.withCol(0, down.row(2))
	n.faces[SideDown] = down.withRow(2, right.col(2).reversed())
	return n
}

func twistL(c Cube) Cube {
	up, front, back, left, down := c.faces[SideUp], c.faces[SideFront], c.faces[SideBack], c.faces[SideLeft], c.faces[SideDown]
	n := c
	n.faces[SideLeft] = left.Clockwise()
	n.faces[SideUp] = up.withCol(0, back.col(2).reversed())
	n.faces[SideFront] = front.withCol(0, up.col(0))
	n.faces[SideBack] = back.withCol(2, down.col(0).reversed())
	n.faces[SideDown] = down.withCol(0, front.col(0))
	return n
}

func twistLPrime(c Cube) Cube {
	up, front, back, left, down := c.faces[SideUp], c.faces[SideFront], c.faces[SideBack], c.faces[SideLeft], c.faces[SideDown]
	n := c
	n.faces[SideLeft] = left.Counterclockwise()
	n.faces[SideUp] = up.withCol(0, front.col(0))
	n.faces[SideFront] = front.withCol(0, down.col(0))
	n.faces[SideBack] = back.withCol(2, up.col(0).reversed())
	n.faces[SideDown] = down.withCol(0, back.col(2).reversed())
	return n
}

func twistD(c Cube) Cube {
	front, right, back, left, down := c.faces[SideFront], c.faces[SideRight], c.faces[SideBack], c.faces[SideLeft], c.faces[SideDown]
	n := c
	n.faces[SideDown] = down.Clockwise()
	n.faces[SideFront] = front.withRow(2, left.row(2))
	n.faces[SideRight] = right.withRow(2, front.row(2))
	n.faces[SideBack] = back.withRow(2, right.row(2))
	n.faces[SideLeft] = left.withRow(2, back.row(2))
	return n
}

func twistDPrime(c Cube) Cube {
	front, right, back, left, down := c.faces[SideFront], c.faces[SideRight], c.faces[SideBack], c.faces[SideLeft], c.faces[SideDown]
	n := c
	n.faces[SideDown] = down.Counterclockwise()
	n.faces[SideFront] = front.withRow(2, right.row(2))
	n.faces[SideRight] = right.withRow(2, back.row(2))
	n.faces[SideBack] = back.withRow(2, left.row(2))
	n.faces[SideLeft] = left.withRow(2, front.row(2))
	return n
}
