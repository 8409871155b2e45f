package jitter

// Per-instance timing and value state of one waveform, driven once per
// tick by a [Channel].
//
// The timer goes from 0 to 1 during the active phase of a cycle, then
// keeps counting seconds up to 1 + interval during the rest phase. When
// it goes past that, loop oscillators wrap back to 0 and sample the
// values of a new cycle, while once oscillators stop.
type Oscillator struct {
	param *Parameter
	rng   Rand

	timer       float64
	fastForward float64

	curPeriod     float64
	nextPeriod    float64
	curInterval   float64
	curAmplitude  float64
	nextAmplitude float64
	curOffset     float64
	nextOffset    float64

	processing bool
}

// Creates an idle oscillator bound to the given parameter. The values
// for the first cycle are sampled right away.
func NewOscillator(param *Parameter, rng Rand) *Oscillator {
	self := &Oscillator{param: param, rng: rng}
	self.sampleNext()
	self.rollover()
	return self
}

// Returns the parameter the oscillator samples its values from.
func (self *Oscillator) Parameter() *Parameter { return self.param }

// Returns the current timer value. See [Oscillator] for the meaning.
func (self *Oscillator) Timer() float64 { return self.timer }

// Returns whether the oscillator is active.
func (self *Oscillator) IsProcessing() bool { return self.processing }

// Returns the period of the current cycle, blended towards the period
// of the next cycle with the parameter's period easing.
func (self *Oscillator) EffectivePeriod() float64 {
	return self.param.PeriodEasing.Evaluate(self.curPeriod, self.nextPeriod, clamp01(self.timer))
}

// Sets the fraction of the remaining phase that gets skipped on every
// advance. 0 disables fast forwarding, 1 jumps straight to the end of
// the current phase. Cleared on rollover.
func (self *Oscillator) SetFastForward(factor float64) {
	self.fastForward = clamp01(factor)
}

// Advances the oscillator in loop mode. Returns true if a new cycle
// started during this call, in which case the timer is exactly 0.
func (self *Oscillator) AdvanceLoop(dt float64) bool {
	self.processing = true
	if self.advance(dt) {
		return false
	}
	self.timer = 0
	self.fastForward = 0
	self.rollover()
	return true
}

// Advances the oscillator in once mode. When the single cycle ends,
// the oscillator goes idle and onComplete is invoked (if not nil).
// Does nothing if the oscillator isn't processing.
func (self *Oscillator) AdvanceOnce(dt float64, onComplete func()) {
	if !self.processing {
		return
	}
	if self.advance(dt) {
		return
	}
	self.timer = 0
	self.fastForward = 0
	self.processing = false
	if onComplete != nil {
		onComplete()
	}
}

// returns false when the cycle is already over
func (self *Oscillator) advance(dt float64) bool {
	switch {
	case self.timer < 1:
		period := self.EffectivePeriod()
		if period <= 0 {
			self.timer = 1
		} else {
			self.timer += dt / period
		}
		if self.timer < 1 {
			self.timer += (1 - self.timer) * self.fastForward
		}
		return true
	case self.timer < 1+self.curInterval:
		self.timer += dt
		end := 1 + self.curInterval
		if self.timer < end {
			self.timer += (end - self.timer) * self.fastForward
		}
		return true
	default:
		return false
	}
}

// Returns the weight for the current timer value, clamped to [lo, hi]
// and then scaled by the parameter's magnification.
func (self *Oscillator) Weight(lo, hi float64) float64 {
	return self.weightAt(self.param, self.timer, lo, hi)
}

// Evaluates the sampled values of this oscillator with the shape,
// easings and magnification of param, at the given timer. Synced
// pairs use this to share values while keeping their own shapes.
func (self *Oscillator) weightAt(param *Parameter, timer, lo, hi float64) float64 {
	if self.curPeriod <= 0 {
		return self.curOffset
	}
	t := clamp01(timer)
	shape := param.Shape.Evaluate(t)
	amp := param.AmplitudeEasing.Evaluate(self.curAmplitude, self.nextAmplitude, t)
	ofs := param.OffsetEasing.Evaluate(self.curOffset, self.nextOffset, t)
	return clamp(shape*amp+ofs, lo, hi) * param.Magnification
}

// Restarts the cycle sharing the timing and/or amplitude values of
// other instead of sampling them. Values that are not shared are
// sampled as on a regular rollover.
func (self *Oscillator) SyncFrom(other *Oscillator, period, amplitude bool) {
	self.timer = 0
	self.fastForward = 0
	if !period {
		self.curPeriod = self.nextPeriod
		self.nextPeriod = self.param.Period.Sample(self.rng)
		self.curInterval = self.param.Interval.Sample(self.rng)
	}
	if !amplitude {
		self.curAmplitude = self.nextAmplitude
		self.nextAmplitude = self.param.Amplitude.Sample(self.rng)
		self.curOffset = self.nextOffset
		self.nextOffset = self.param.Offset.Sample(self.rng)
	}
	self.share(other, period, amplitude)
}

// copies the selected sampled values, leaving the timer alone
func (self *Oscillator) share(other *Oscillator, period, amplitude bool) {
	if period {
		self.curPeriod, self.nextPeriod = other.curPeriod, other.nextPeriod
		self.curInterval = other.curInterval
	}
	if amplitude {
		self.curAmplitude, self.nextAmplitude = other.curAmplitude, other.nextAmplitude
		self.curOffset, self.nextOffset = other.curOffset, other.nextOffset
	}
}

// Samples fresh values for a single cycle and marks the oscillator as
// processing, restarting from timer 0. Current and next values are
// the same, so easings have no effect during once playback.
func (self *Oscillator) ArmOnce() {
	self.sampleNext()
	self.curPeriod = self.nextPeriod
	self.curAmplitude = self.nextAmplitude
	self.curOffset = self.nextOffset
	self.curInterval = self.param.Interval.Sample(self.rng)
	self.timer = 0
	self.fastForward = 0
	self.processing = true
}

// Sends the oscillator back to idle. Sampled values are kept.
func (self *Oscillator) Reset() {
	self.timer = 0
	self.fastForward = 0
	self.processing = false
}

func (self *Oscillator) sampleNext() {
	self.nextPeriod = self.param.Period.Sample(self.rng)
	self.nextAmplitude = self.param.Amplitude.Sample(self.rng)
	self.nextOffset = self.param.Offset.Sample(self.rng)
}

// moves next values into current ones and samples a new next
func (self *Oscillator) rollover() {
	self.curPeriod, self.curAmplitude, self.curOffset = self.nextPeriod, self.nextAmplitude, self.nextOffset
	self.curInterval = self.param.Interval.Sample(self.rng)
	self.sampleNext()
}
