// Package cubesim models the state of a 3x3x3 Rubik's cube and the closed
// algebra of 18 quarter-turn moves over it.
//
// # Features
//
//   - Immutable cube values validated at construction
//   - 12 layer twists (U u F f R r B b L l D d) and 6 whole-cube
//     rotations (X x Y y Z z), each with an exact inverse
//   - Sequence application, inversion and one-pass simplification
//   - Seeded random scrambles with their inverse solution
//   - Flat serialization to 54 color ordinals
//   - Layer-by-layer progress detection (DetectStage)
//
// # Quick Start
//
//	cube := cubesim.NewCube()
//
//	// Apply moves by token; unknown bytes are ignored.
//	cube = cube.Do("FURurf")
//
//	// Or from standard notation
//	ops, err := cubesim.ParseNotation("R U R' U'")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cube = cube.Do(ops)
//
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Tokens
//
// Uppercase tokens turn clockwise, lowercase counter-clockwise:
//
//	U u   up layer
//	F f   front layer
//	R r   right layer
//	B b   back layer
//	L l   left layer
//	D d   down layer
//	X x   whole cube, following R
//	Y y   whole cube, following U
//	Z z   whole cube, following F
//
// # Scrambling
//
// Shuffle takes an explicit random source so scrambles are reproducible:
//
//	scrambled, solution := cubesim.NewCube().Shuffle(cubesim.NewRand(42), 25)
//	fmt.Println(scrambled.Do(solution).IsSolved()) // true
package cubesim
