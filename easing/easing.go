// This package defines the named interpolation curves that jitter
// oscillators use to blend between the values of successive cycles.
//
// All easings respect f(0) = 0 and f(1) = 1, except for [None],
// which always stays at the start value. That's what keeps the
// oscillator weights continuous across cycle boundaries.
package easing

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// See [Easing.Evaluate]().
type Easing uint8

const (
	None Easing = iota
	Linear
	QuadIn
	QuadOut
	QuadInOut
	CubicIn
	CubicOut
	CubicInOut
	QuartIn
	QuartOut
	QuartInOut
	QuintIn
	QuintOut
	QuintInOut
	ElasticIn
	ElasticOut
	ElasticInOut
	SinIn
	SinOut
	SinInOut

	// Cubic smoothstep (3 - 2t)t². Older jitter setups used this
	// as their only "curve" blend; it's kept as a compatible
	// alternative to [CubicInOut].
	Smooth

	easingEndSentinel
)

var names = [easingEndSentinel]string{
	"None", "Linear",
	"QuadIn", "QuadOut", "QuadInOut",
	"CubicIn", "CubicOut", "CubicInOut",
	"QuartIn", "QuartOut", "QuartInOut",
	"QuintIn", "QuintOut", "QuintInOut",
	"ElasticIn", "ElasticOut", "ElasticInOut",
	"SinIn", "SinOut", "SinInOut",
	"Smooth",
}

// Returns all the valid easings, in declaration order.
func All() []Easing {
	all := make([]Easing, 0, easingEndSentinel)
	for e := None; e < easingEndSentinel; e++ {
		all = append(all, e)
	}
	return all
}

// Returns a string representation of the easing.
func (self Easing) String() string {
	if self >= easingEndSentinel {
		panic("invalid Easing")
	}
	return names[self]
}

// Returns whether the easing is one of the declared constants.
func (self Easing) IsValid() bool {
	return self < easingEndSentinel
}

// Parses an easing from its [Easing.String]() representation.
func Parse(name string) (Easing, error) {
	for i, candidate := range names {
		if candidate == name {
			return Easing(i), nil
		}
	}
	return None, fmt.Errorf("unknown easing %q", name)
}

// Returns a + (b - a)*f(t), where f is the basis function of the easing.
// Callers are expected to clamp t to [0, 1] before invoking this.
func (self Easing) Evaluate(a, b, t float64) float64 {
	f := self.basis(t)
	return a*(1.0-f) + b*f
}

func (self Easing) basis(t float64) float64 {
	switch self {
	case None:
		return 0
	case Linear:
		return t
	case QuadIn:
		return t * t
	case QuadOut:
		return t * (2 - t)
	case QuadInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	case CubicIn:
		return t * t * t
	case CubicOut:
		u := t - 1
		return u*u*u + 1
	case CubicInOut:
		if t < 0.5 {
			return 4 * t * t * t
		}
		return (t-1)*(2*t-2)*(2*t-2) + 1
	case QuartIn:
		return t * t * t * t
	case QuartOut:
		u := t - 1
		return 1 - u*u*u*u
	case QuartInOut:
		if t < 0.5 {
			return 8 * t * t * t * t
		}
		u := t - 1
		return 1 - 8*u*u*u*u
	case QuintIn:
		return t * t * t * t * t
	case QuintOut:
		u := t - 1
		return 1 + u*u*u*u*u
	case QuintInOut:
		if t < 0.5 {
			return 16 * t * t * t * t * t
		}
		u := t - 1
		return 1 + 16*u*u*u*u*u
	case ElasticIn:
		if t == 1 {
			return 1
		}
		u := t - 1
		return 0.04 * t / u * math.Sin(25*u)
	case ElasticOut:
		if t == 0 {
			return 0
		}
		return (0.04-0.04/t)*math.Sin(25*t) + 1
	case ElasticInOut:
		if t == 0.5 {
			return 0.5
		}
		u := t - 0.5
		if u < 0 {
			return (0.02 + 0.01/u) * math.Sin(50*u)
		}
		return (0.02-0.01/u)*math.Sin(50*u) + 1
	case SinIn:
		return 1 + math.Sin(math.Pi/2*t-math.Pi/2)
	case SinOut:
		return math.Sin(math.Pi / 2 * t)
	case SinInOut:
		return (1 + math.Sin(math.Pi*t-math.Pi/2)) / 2
	case Smooth:
		return (3 - 2*t) * t * t
	default:
		panic("invalid Easing")
	}
}

// Implements [yaml.Marshaler], encoding the easing by name.
func (self Easing) MarshalYAML() (any, error) {
	if !self.IsValid() {
		return nil, fmt.Errorf("invalid easing %d", uint8(self))
	}
	return self.String(), nil
}

// Implements [yaml.Unmarshaler].
func (self *Easing) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := Parse(name)
	if err != nil {
		return err
	}
	*self = parsed
	return nil
}
