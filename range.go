package jitter

import "math"

// Source of uniform random values in [0, 1). [*math/rand.Rand]
// satisfies this interface.
type Rand interface {
	Float64() float64
}

// A [Min, Max] range constrained to [MinLimit, MaxLimit]. Limits can
// be exclusive, in which case Min and Max must stay strictly inside.
//
// Periods, intervals, amplitudes and offsets are all configured as
// ranges, and oscillators sample a new value from them every cycle.
type FloatRange struct {
	Min          float64 `yaml:"min"`
	Max          float64 `yaml:"max"`
	MinLimit     float64 `yaml:"min_limit"`
	MaxLimit     float64 `yaml:"max_limit"`
	MinExclusive bool    `yaml:"min_exclusive,omitempty"`
	MaxExclusive bool    `yaml:"max_exclusive,omitempty"`
}

// Creates a range spanning its limits.
func NewFloatRange(minLimit, maxLimit float64, minExclusive, maxExclusive bool) FloatRange {
	r := FloatRange{
		Min: minLimit, Max: maxLimit,
		MinLimit: minLimit, MaxLimit: maxLimit,
		MinExclusive: minExclusive, MaxExclusive: maxExclusive,
	}
	r.ClampToLimits()
	return r
}

// Returns the [0, 1] range with inclusive limits.
func UnitRange() FloatRange {
	return FloatRange{Min: 0, Max: 1, MinLimit: 0, MaxLimit: 1}
}

// Returns a value uniformly distributed in [Min, Max].
func (self *FloatRange) Sample(rng Rand) float64 {
	if self.Max <= self.Min {
		return self.Min
	}
	value := self.Min + (self.Max-self.Min)*rng.Float64()
	return min(max(value, self.Min), self.Max)
}

// Reports whether value lies within the limits.
func (self *FloatRange) Contains(value float64) bool {
	lo, hi := self.bounds()
	return value >= lo && value <= hi
}

// Re-clamps Min and Max into the limits, preserving Min <= Max.
func (self *FloatRange) ClampToLimits() {
	if self.MaxLimit < self.MinLimit {
		self.MinLimit, self.MaxLimit = self.MaxLimit, self.MinLimit
	}
	lo, hi := self.bounds()
	self.Min = clamp(self.Min, lo, hi)
	self.Max = clamp(self.Max, self.Min, hi)
}

// Sets the value so that Min = Max = value (clamped to the limits).
func (self *FloatRange) SetFixed(value float64) {
	self.Min, self.Max = value, value
	self.ClampToLimits()
}

// Copies Min and Max from another range. Limits are kept, and the
// copied values are clamped to them.
func (self *FloatRange) CopyFrom(other FloatRange) {
	self.Min, self.Max = other.Min, other.Max
	self.ClampToLimits()
}

// effective inclusive bounds, nudging exclusive limits inwards
func (self *FloatRange) bounds() (lo, hi float64) {
	lo, hi = self.MinLimit, self.MaxLimit
	if self.MinExclusive {
		lo = math.Nextafter(lo, math.Inf(1))
	}
	if self.MaxExclusive {
		hi = math.Nextafter(hi, math.Inf(-1))
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
