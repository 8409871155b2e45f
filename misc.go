package jitter

// Scale of the weights stored on morph targets. Oscillators work in
// [0, 1] and morph magnifications go up to this value.
const MorphScale = 100.0

// Shortest fade accepted by FadeIn and FadeOut, in seconds.
const minFadeSeconds = 0.01

// Fade levels within this distance of 0 or 1 are snapped. Summing
// tick deltas accumulates rounding errors, and a fade that should end
// after exactly N seconds must not linger one extra tick.
const fadeEpsilon = 1e-9

// --- helpers ---

func clamp(value, lo, hi float64) float64 {
	return min(max(value, lo), hi)
}

func clamp01(value float64) float64 {
	return min(max(value, 0), 1)
}

func setAt[T any](slice []T, element T, index int) []T {
	// base case: element index already in range
	if index < len(slice) {
		slice[index] = element
		return slice
	}

	// append case: element index is the next
	if index == len(slice) {
		return append(slice, element)
	}

	// more capacity needed: grow with zero values up to index
	growth := (index + 1) - len(slice)
	slice = append(slice, make([]T, growth)...)
	slice[index] = element
	return slice
}

// optional variadic magnification, as used by PlayLoop and PlayOnce
func magnificationArg(magnification []float64) float64 {
	switch len(magnification) {
	case 0:
		return 1
	case 1:
		return max(0, magnification[0])
	default:
		panic(multipleMagnifications)
	}
}

// --- panic messages ---
const multipleMagnifications = "can't pass more than one magnification"
const mismatchedParams = "loop and once parameter counts must match"
const invalidChild = "child must be a different unattached Transform on the same node and property"
