package jitter

import (
	"github.com/edwinsyarief/jitter/axis"
	"github.com/edwinsyarief/jitter/curve"
	"github.com/edwinsyarief/jitter/easing"
)

const (
	minLimitPeriod   = 0.04
	maxLimitPeriod   = 5.0
	minLimitInterval = 0.0
	maxLimitInterval = 5.0
)

// Static waveform configuration for one oscillator. Loop and once
// playback use separate parameters.
//
// The weight of an oscillator during a cycle is
//
//	clamp(Shape(t)*amplitude + offset) * Magnification
//
// where t goes from 0 to 1 during Period seconds, followed by Interval
// seconds of rest. Period, amplitude and offset are blended towards the
// values of the next cycle with their respective easings.
type Parameter struct {
	Period    FloatRange      `yaml:"period"`
	Interval  FloatRange      `yaml:"interval"`
	Amplitude FloatRange      `yaml:"amplitude"`
	Offset    FloatRange      `yaml:"offset"`
	Shape     curve.Keyframes `yaml:"shape"`

	Magnification   float64       `yaml:"magnification"`
	PeriodEasing    easing.Easing `yaml:"period_easing"`
	AmplitudeEasing easing.Easing `yaml:"amplitude_easing"`
	OffsetEasing    easing.Easing `yaml:"offset_easing"`

	Enabled bool `yaml:"enabled"`
	Loop    bool `yaml:"loop"`

	// values seen on the previous Adjust() call
	prevMaxAmplitude float64
	prevMinAmplitude float64
	prevMaxOffset    float64
	prevMinOffset    float64
}

// Creates a parameter with the default ranges for the given axis
// semantics. Loop parameters blend smoothly between cycles, once
// parameters keep their values fixed for their single cycle.
func NewParameter(shape curve.Keyframes, semantics axis.Semantics, loop bool) *Parameter {
	lo, hi := semantics.Domain()
	self := &Parameter{
		Period:        NewFloatRange(minLimitPeriod, maxLimitPeriod, false, true),
		Interval:      NewFloatRange(minLimitInterval, maxLimitInterval, false, true),
		Amplitude:     FloatRange{Min: 0, Max: 1, MinLimit: lo, MaxLimit: hi},
		Offset:        FloatRange{Min: 0, Max: 0, MinLimit: lo, MaxLimit: hi},
		Shape:         shape,
		Magnification: 1,
		Enabled:       true,
		Loop:          loop,
	}

	self.Period.Min = 1
	self.Interval.Max = 0
	signed := lo < 0
	if loop {
		self.Period.Max = 3
		self.Offset.Max = 0.3
		if signed {
			self.Offset.Min = -0.3
		}
		self.PeriodEasing = easing.CubicInOut
		self.AmplitudeEasing = easing.CubicInOut
		self.OffsetEasing = easing.CubicInOut
	} else {
		self.Period.Max = 1
		if signed {
			self.Amplitude.Min, self.Amplitude.Max = -0.5, 0.5
		} else {
			self.Amplitude.Min, self.Amplitude.Max = 0.5, 1
		}
	}
	self.markAdjusted()
	return self
}

// Keeps the amplitude and offset ranges mutually consistent, so that
// amplitude + offset can't exceed the limits of the domain. Whichever
// bound changed since the last call takes priority.
func (self *Parameter) Adjust() {
	amp, ofs := &self.Amplitude, &self.Offset

	if amp.Max != self.prevMaxAmplitude {
		ofs.Max = clamp(ofs.Max, ofs.MinLimit, ofs.MaxLimit-amp.Max)
		ofs.Min = clamp(ofs.Min, ofs.MinLimit, ofs.Max)
	}
	if amp.Min != self.prevMinAmplitude {
		ofs.Min = clamp(ofs.Min, ofs.MinLimit-amp.Min, ofs.Max)
		ofs.Max = clamp(ofs.Max, ofs.Min, ofs.MaxLimit)
	}
	if ofs.Max != self.prevMaxOffset {
		amp.Max = clamp(amp.Max, amp.MinLimit, amp.MaxLimit-ofs.Max)
		amp.Min = clamp(amp.Min, amp.MinLimit, amp.Max)
	}
	if ofs.Min != self.prevMinOffset {
		amp.Min = clamp(amp.Min, amp.MinLimit-ofs.Min, amp.Max)
		amp.Max = clamp(amp.Max, amp.Min, amp.MaxLimit)
	}

	self.markAdjusted()
}

// records the current bounds as the baseline for the next Adjust()
func (self *Parameter) markAdjusted() {
	self.prevMaxAmplitude, self.prevMinAmplitude = self.Amplitude.Max, self.Amplitude.Min
	self.prevMaxOffset, self.prevMinOffset = self.Offset.Max, self.Offset.Min
}

// Clamps out of range values instead of rejecting them: negative
// magnifications become zero, ranges are brought back into their
// limits and invalid easings fall back to [easing.None].
func (self *Parameter) Validate() {
	self.Magnification = max(0, self.Magnification)
	self.Period.ClampToLimits()
	self.Interval.ClampToLimits()
	self.Amplitude.ClampToLimits()
	self.Offset.ClampToLimits()
	if !self.PeriodEasing.IsValid() {
		self.PeriodEasing = easing.None
	}
	if !self.AmplitudeEasing.IsValid() {
		self.AmplitudeEasing = easing.None
	}
	if !self.OffsetEasing.IsValid() {
		self.OffsetEasing = easing.None
	}
	if !self.Shape.IsSorted() {
		self.Shape.Sort()
	}
	self.markAdjusted()
}

// Copies the selected groups of settings from src. Period covers
// period and interval, amplitude covers amplitude and offset, easing
// covers the three easings and shape covers the curve and the
// magnification.
func (self *Parameter) CopyFrom(src *Parameter, period, amplitude, easings, shape bool) {
	if period {
		self.Period.CopyFrom(src.Period)
		self.Interval.CopyFrom(src.Interval)
	}
	if amplitude {
		self.Amplitude.CopyFrom(src.Amplitude)
		self.Offset.CopyFrom(src.Offset)
	}
	if easings {
		self.PeriodEasing = src.PeriodEasing
		self.AmplitudeEasing = src.AmplitudeEasing
		self.OffsetEasing = src.OffsetEasing
	}
	if shape {
		self.Shape = src.Shape.Clone()
		self.Magnification = src.Magnification
	}
}

// Returns a deep copy of the parameter.
func (self *Parameter) Clone() *Parameter {
	clone := *self
	clone.Shape = self.Shape.Clone()
	return &clone
}
