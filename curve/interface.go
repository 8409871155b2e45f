// This package defines the [Curve] interface that jitter oscillators
// use to map the normalized cycle time to a waveform value, and
// provides a few primitive shapes.
//
// All provided primitives respect a couple properties:
//   - Normalized time: the curves are defined on t in [0, 1], and
//     evaluating outside that range returns the closest end value.
//   - Bounded output: values stay within [-1, 1], so amplitude and
//     offset keep their meaning regardless of the chosen shape.
//
// If you are writing your own curves you can ignore the second
// property, but the oscillators will clamp the final weight anyway.
package curve

// The interface for waveform shapes.
//
// Given a normalized cycle time t, Evaluate() returns the shape value
// that the oscillator will scale by amplitude and shift by offset.
type Curve interface {
	Evaluate(t float64) float64
}
