package curve

import "sort"

// A single curve key. Tangents are slopes (value units per time unit),
// with InTangent applying to the segment that ends at this key and
// OutTangent to the segment that starts at it.
type Keyframe struct {
	Time       float64 `yaml:"time"`
	Value      float64 `yaml:"value"`
	InTangent  float64 `yaml:"in_tangent"`
	OutTangent float64 `yaml:"out_tangent"`
}

// Creates a keyframe with the given tangents.
func Key(time, value, inTangent, outTangent float64) Keyframe {
	return Keyframe{Time: time, Value: value, InTangent: inTangent, OutTangent: outTangent}
}

// A curve defined by cubic Hermite segments between sorted keys.
// Evaluating before the first key or after the last one returns
// the value of that key. An empty curve always evaluates to zero.
type Keyframes []Keyframe

// Implements [Curve].
func (self Keyframes) Evaluate(t float64) float64 {
	switch len(self) {
	case 0:
		return 0
	case 1:
		return self[0].Value
	}

	if t <= self[0].Time {
		return self[0].Value
	}
	last := len(self) - 1
	if t >= self[last].Time {
		return self[last].Value
	}

	// first key strictly after t, segment is [next - 1, next]
	next := sort.Search(len(self), func(i int) bool { return self[i].Time > t })
	k0, k1 := self[next-1], self[next]
	span := k1.Time - k0.Time
	if span <= 0 {
		return k1.Value
	}

	s := (t - k0.Time) / span
	s2 := s * s
	s3 := s2 * s
	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2
	return h00*k0.Value + h10*span*k0.OutTangent + h01*k1.Value + h11*span*k1.InTangent
}

// Returns a deep copy of the keys.
func (self Keyframes) Clone() Keyframes {
	if self == nil {
		return nil
	}
	clone := make(Keyframes, len(self))
	copy(clone, self)
	return clone
}

// Returns whether the key times are sorted in non-decreasing order.
func (self Keyframes) IsSorted() bool {
	return sort.SliceIsSorted(self, func(i, j int) bool { return self[i].Time < self[j].Time })
}

// Sorts the keys by time in place.
func (self Keyframes) Sort() {
	sort.SliceStable(self, func(i, j int) bool { return self[i].Time < self[j].Time })
}

// A (time, value) pair for [Linear]().
type Point struct {
	Time  float64
	Value float64
}

// Creates keyframes that interpolate linearly between the given
// points. Tangents are set to the slopes of the adjacent segments,
// which makes the Hermite segments exactly linear.
func Linear(points ...Point) Keyframes {
	keys := make(Keyframes, len(points))
	for i, pt := range points {
		keys[i] = Keyframe{Time: pt.Time, Value: pt.Value}
		if i > 0 {
			prev := points[i-1]
			if span := pt.Time - prev.Time; span > 0 {
				slope := (pt.Value - prev.Value) / span
				keys[i-1].OutTangent = slope
				keys[i].InTangent = slope
			}
		}
	}
	return keys
}
