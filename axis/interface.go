// This package defines the axis semantics that a jitter channel uses
// to interpret oscillator weights: the numeric domain they are clamped
// to and how the final displacement is composed onto a target value.
//
// Blend shapes and transforms run on the same channel code and only
// differ in the semantics value they pass to it.
package axis

// The interface for channel axis semantics.
type Semantics interface {
	// Returns the range that each oscillator weight is clamped to.
	Domain() (lo, hi float64)

	// Clamps the combined loop + once weight of a channel.
	Clamp(weight float64) float64
}
