package axis

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Determines how a jitter displacement is written onto a transform value.
type Mode uint8

const (
	// The displacement replaces the target value.
	Override Mode = iota

	// The displacement is applied on top of a stored reference value.
	// This is the default and the safest option.
	Reference

	// The displacement is applied on top of the current value. Only
	// sensible when something else (like an animation) resets the value
	// every tick, otherwise the displacements accumulate.
	Additive

	modeEndSentinel
)

// Returns a string representation of the mode.
func (self Mode) String() string {
	switch self {
	case Override:
		return "Override"
	case Reference:
		return "Reference"
	case Additive:
		return "Additive"
	default:
		panic("invalid axis.Mode")
	}
}

// Returns whether the mode is one of the declared constants.
func (self Mode) IsValid() bool {
	return self < modeEndSentinel
}

// Parses a mode from its [Mode.String]() representation.
func ParseMode(name string) (Mode, error) {
	for m := Override; m < modeEndSentinel; m++ {
		if m.String() == name {
			return m, nil
		}
	}
	return Reference, fmt.Errorf("unknown axis mode %q", name)
}

// Implements [yaml.Marshaler].
func (self Mode) MarshalYAML() (any, error) {
	if self >= modeEndSentinel {
		return nil, fmt.Errorf("invalid axis mode %d", uint8(self))
	}
	return self.String(), nil
}

// Implements [yaml.Unmarshaler].
func (self *Mode) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	mode, err := ParseMode(name)
	if err != nil {
		return err
	}
	*self = mode
	return nil
}

// Composes an additive vector displacement (positions, scales).
func (self Mode) ComposeVec(reference, current, delta mgl32.Vec3) mgl32.Vec3 {
	switch self {
	case Override:
		return delta
	case Reference:
		return reference.Add(delta)
	case Additive:
		return current.Add(delta)
	default:
		panic("invalid axis.Mode")
	}
}

// Composes a multiplicative rotation displacement.
func (self Mode) ComposeQuat(reference, current, delta mgl32.Quat) mgl32.Quat {
	switch self {
	case Override:
		return delta
	case Reference:
		return reference.Mul(delta)
	case Additive:
		return current.Mul(delta)
	default:
		panic("invalid axis.Mode")
	}
}

// Builds a rotation from Euler angles in degrees. The rotation applies
// Z first, then X, then Y, which is the usual convention for character
// rigs exported from game engines.
func EulerToQuat(degrees mgl32.Vec3) mgl32.Quat {
	qx := mgl32.QuatRotate(mgl32.DegToRad(degrees[0]), mgl32.Vec3{1, 0, 0})
	qy := mgl32.QuatRotate(mgl32.DegToRad(degrees[1]), mgl32.Vec3{0, 1, 0})
	qz := mgl32.QuatRotate(mgl32.DegToRad(degrees[2]), mgl32.Vec3{0, 0, 1})
	return qy.Mul(qx).Mul(qz)
}
