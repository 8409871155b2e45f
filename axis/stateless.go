package axis

type semantics = Semantics

// A few stateless built-in semantics.
var (
	// Weights in [0, 1], combined weights also clamped to [0, 1].
	// Used for morph targets.
	Unit semantics = unitSemantics{}

	// Weights in [-1, 1] representing signed displacement. Combined
	// weights are left as they are, since loop and once magnifications
	// are allowed to push the sum beyond a single unit.
	Signed semantics = signedSemantics{}
)

type unitSemantics struct{}

func (unitSemantics) Domain() (float64, float64) { return 0, 1 }

func (unitSemantics) Clamp(weight float64) float64 {
	return min(max(weight, 0), 1)
}

type signedSemantics struct{}

func (signedSemantics) Domain() (float64, float64) { return -1, 1 }

func (signedSemantics) Clamp(weight float64) float64 {
	return weight
}
