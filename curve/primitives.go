package curve

import "math"

// A few built-in shapes. Each call returns a fresh copy, so
// callers can edit the keys without affecting anyone else.

// Flat zero. Useful when only the offset should move.
func Zero() Keyframes {
	return Keyframes{Key(0, 0, 0, 0), Key(1, 0, 0, 0)}
}

// Smooth bump peaking at the middle of the cycle.
func UpDown5() Keyframes {
	return Keyframes{Key(0, 0, 0, 0), Key(0.5, 1, 0, 0), Key(1, 0, 0, 0)}
}

// Quick attack peaking at 10% of the cycle, then a long release.
func UpDown1() Keyframes {
	return Keyframes{Key(0, 0, 0, 0), Key(0.1, 1, 0, 0), Key(1, 0, 0, 0)}
}

// Attack until 20%, hold until 50%, then release.
func UpDown25() Keyframes {
	return Keyframes{Key(0, 0, 0, 0), Key(0.2, 1, 0, 0), Key(0.5, 1, 0, 0), Key(1, 0, 0, 0)}
}

// One sine period approximated with four keys.
func Sin() Keyframes {
	tan := math.Pi * math.Pi / 2 // 45 degrees * 2π, in radians
	return Keyframes{Key(0, 0, 0, tan), Key(0.25, 1, 0, 0), Key(0.75, -1, 0, 0), Key(1, 0, tan, 0)}
}

// One cosine period approximated with three keys.
func Cos() Keyframes {
	return Keyframes{Key(0, 1, 0, 0), Key(0.5, -1, 0, 0), Key(1, 1, 0, 0)}
}

// Symmetric linear up-down triangle peaking at the middle.
func Triangle() Keyframes {
	return Linear(Point{0, 0}, Point{0.5, 1}, Point{1, 0})
}
