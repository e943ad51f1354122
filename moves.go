package cubesim

// Named sequences, written as token strings.
//
// Example:
//
//	cube := cubesim.NewCube().Do(cubesim.SexyMove)
const (
	// Commutator is the F U R U' R' F' composite used as a golden fixture.
	Commutator = "FURurf"

	// Sexy move: R U R' U' - repeating it six times returns to the start.
	SexyMove = "RUru"

	// Inverse sexy move: U R U' R'
	InverseSexyMove = "URur"

	// T-perm: R U R' U' R' F R2 U' R' U' R U R' F'
	TPerm = "RUrurFRRuruRUrf"
)

// Commutator applies the FURurf composite.
func (c Cube) Commutator() Cube {
	return c.Apply(F).Apply(U).Apply(R).Apply(UPrime).Apply(RPrime).Apply(FPrime)
}
