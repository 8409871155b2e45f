package jitter

import "github.com/edwinsyarief/jitter/axis"

// Optional callbacks for [Channel] events. Any of them can be nil.
type Hooks struct {
	// Invoked when an active loop group stops, either explicitly or
	// because a fade out reached zero.
	LoopStopped func()

	// Invoked when the last processing once oscillator completes its
	// cycle. Not invoked by StopOnce or Initialize.
	OnceFinished func()

	// Invoked when the loop oscillator at the given index starts a new
	// cycle. With period sync only index 0 starts cycles.
	CycleStarted func(index int)
}

// Aggregates loop and once oscillator pairs for a group of targets
// (one morph each, or the axes of a transform property) and combines
// their weights once per tick.
//
// Each tick advances loops first, then onces, then the fade level, and
// only after that computes the weights and hands them to the sink. A
// fade out that reaches zero stops the loop group before the weights
// of that same tick are computed.
type Channel struct {
	semantics axis.Semantics
	rng       Rand

	loops       []*Oscillator
	onces       []*Oscillator
	loopEnabled []bool
	onceEnabled []bool
	weights     []float64

	loopGroupEnabled bool
	onceGroupEnabled bool
	syncPeriod       bool
	syncAmplitude    bool
	overrideOnce     bool

	loopMagnification float64
	onceMagnification float64
	fader             fader

	sink  func(weights []float64)
	hooks Hooks
}

// Creates a channel with one loop/once pair per index. Loop and once
// parameters must have the same length, and the same parameter can be
// shared by multiple pairs. If rng is nil a time-seeded default is used.
func NewChannel(semantics axis.Semantics, loopParams, onceParams []*Parameter, rng Rand) *Channel {
	if len(loopParams) != len(onceParams) {
		panic(mismatchedParams)
	}
	rng = randOrDefault(rng)
	self := &Channel{
		semantics:         semantics,
		rng:               rng,
		loopGroupEnabled:  true,
		onceGroupEnabled:  true,
		loopMagnification: 1,
		onceMagnification: 1,
	}
	n := len(loopParams)
	self.loops = make([]*Oscillator, n)
	self.onces = make([]*Oscillator, n)
	self.loopEnabled = make([]bool, n)
	self.onceEnabled = make([]bool, n)
	self.weights = make([]float64, n)
	for i := range n {
		self.loops[i] = NewOscillator(loopParams[i], rng)
		self.onces[i] = NewOscillator(onceParams[i], rng)
		self.loopEnabled[i] = loopParams[i].Enabled
		self.onceEnabled[i] = onceParams[i].Enabled
	}
	return self
}

// Returns the number of loop/once pairs.
func (self *Channel) Len() int { return len(self.loops) }

// Returns the loop oscillator at the given index.
func (self *Channel) Loop(index int) *Oscillator { return self.loops[index] }

// Returns the once oscillator at the given index.
func (self *Channel) Once(index int) *Oscillator { return self.onces[index] }

// Sets the function receiving the combined weights after every tick
// and every stop. The slice is reused between calls.
func (self *Channel) SetSink(sink func(weights []float64)) { self.sink = sink }

// Sets the event callbacks.
func (self *Channel) SetHooks(hooks Hooks) { self.hooks = hooks }

// Enables or disables the loop and once groups as a whole. Disabling
// a group also stops it.
func (self *Channel) SetGroupsEnabled(loop, once bool) {
	if !loop && self.loopGroupEnabled {
		self.stopLoop()
	}
	if !once && self.onceGroupEnabled {
		self.resetOnces()
	}
	self.loopGroupEnabled, self.onceGroupEnabled = loop, once
}

// Returns whether the loop and once groups are enabled.
func (self *Channel) GroupsEnabled() (loop, once bool) {
	return self.loopGroupEnabled, self.onceGroupEnabled
}

// Enables or disables the loop and once contributions of one pair.
func (self *Channel) SetPairEnabled(index int, loop, once bool) {
	self.loopEnabled[index], self.onceEnabled[index] = loop, once
}

// Makes every pair share the cycle timing (period sync) and/or the
// sampled amplitude and offset (amplitude sync) of pair 0.
func (self *Channel) SetSync(period, amplitude bool) {
	self.syncPeriod, self.syncAmplitude = period, amplitude
}

// Sets whether PlayOnce can restart a once cycle still in progress.
func (self *Channel) SetOverrideOnce(override bool) { self.overrideOnce = override }

// Returns the play state of the loop group.
func (self *Channel) State() PlayState { return self.fader.state }

// Returns the current fade level of the loop group.
func (self *Channel) FadeLevel() float64 { return self.fader.Level() }

// Returns the loop group magnification set by the last PlayLoop.
func (self *Channel) LoopMagnification() float64 { return self.loopMagnification }

// Returns the once group magnification set by the last PlayOnce.
func (self *Channel) OnceMagnification() float64 { return self.onceMagnification }

// Returns whether any once oscillator is still processing.
func (self *Channel) IsOnceProcessing() bool {
	for _, once := range self.onces {
		if once.processing {
			return true
		}
	}
	return false
}

// Returns the combined weight of the given pair as computed on the
// last tick or stop.
func (self *Channel) Weight(index int) float64 { return self.weights[index] }

// Returns all the combined weights. The slice must not be modified.
func (self *Channel) Weights() []float64 { return self.weights }

// Advances the channel by dt seconds and writes the new weights.
func (self *Channel) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	self.tickLoops(dt)
	self.tickOnces(dt)
	if self.fader.Update(dt) {
		self.resetLoops()
		self.loopStopped()
	}
	self.write()
}

func (self *Channel) tickLoops(dt float64) {
	if !self.loopGroupEnabled || !self.fader.IsActive() || len(self.loops) == 0 {
		return
	}
	if self.syncPeriod {
		leader := self.loops[0]
		if leader.AdvanceLoop(dt) {
			for _, loop := range self.loops[1:] {
				loop.SyncFrom(leader, true, self.syncAmplitude)
			}
			self.cycleStarted(0)
		}
		for _, loop := range self.loops[1:] {
			loop.processing = leader.processing
		}
		return
	}
	for i, loop := range self.loops {
		if !self.loopEnabled[i] {
			continue
		}
		if loop.AdvanceLoop(dt) {
			self.cycleStarted(i)
		}
	}
}

func (self *Channel) tickOnces(dt float64) {
	if !self.onceGroupEnabled || !self.IsOnceProcessing() {
		return
	}
	if self.syncPeriod {
		self.onces[0].AdvanceOnce(dt, func() {
			for _, once := range self.onces[1:] {
				once.Reset()
			}
		})
	} else {
		for _, once := range self.onces {
			once.AdvanceOnce(dt, nil)
		}
	}
	if !self.IsOnceProcessing() && self.hooks.OnceFinished != nil {
		self.hooks.OnceFinished()
	}
}

// Starts the loop group at full level. Magnification defaults to 1,
// and passing more than one value panics. Does nothing if there are
// no pairs or the loop group is disabled.
func (self *Channel) PlayLoop(magnification ...float64) {
	mag := magnificationArg(magnification)
	if len(self.loops) == 0 || !self.loopGroupEnabled {
		return
	}
	self.resetLoops()
	self.syncLoops()
	self.loopMagnification = mag
	self.fader.Play()
	self.write()
}

// Stops the loop group and writes the resulting weights.
func (self *Channel) StopLoop() {
	self.stopLoop()
	self.write()
}

func (self *Channel) stopLoop() {
	wasActive := self.fader.IsActive()
	self.fader.Stop()
	self.resetLoops()
	if wasActive {
		self.loopStopped()
	}
}

// Starts fading the loop group in over the given seconds, enabling
// the group if it was disabled. If the loop was stopped it restarts
// from a fresh cycle with magnification 1. Does nothing if already
// playing or fading in.
func (self *Channel) FadeIn(seconds float64) {
	if len(self.loops) == 0 {
		return
	}
	self.loopGroupEnabled = true
	wasStopped := self.fader.state == Stopped
	if !self.fader.FadeIn(seconds) {
		return
	}
	if wasStopped {
		self.resetLoops()
		self.syncLoops()
		self.loopMagnification = 1
	}
}

// Starts fading the loop group out over the given seconds. Once the
// level reaches zero the loop stops. Does nothing if already stopped.
func (self *Channel) FadeOut(seconds float64) {
	self.fader.FadeOut(seconds)
}

// Starts a single cycle on every pair. Magnification defaults to 1,
// and passing more than one value panics. If a once cycle is still in
// progress the request is ignored, unless override once is set.
func (self *Channel) PlayOnce(magnification ...float64) {
	mag := magnificationArg(magnification)
	if len(self.onces) == 0 || !self.onceGroupEnabled {
		return
	}
	if self.IsOnceProcessing() && !self.overrideOnce {
		return
	}
	self.resetOnces()
	self.onceMagnification = mag
	for _, once := range self.onces {
		once.ArmOnce()
	}
	if self.syncPeriod || self.syncAmplitude {
		for _, once := range self.onces[1:] {
			once.share(self.onces[0], self.syncPeriod, self.syncAmplitude)
		}
	}
	self.write()
}

// Stops any once cycle in progress and writes the resulting weights.
func (self *Channel) StopOnce() {
	self.resetOnces()
	self.write()
}

// Stops everything and writes the rest weights.
func (self *Channel) Initialize() {
	self.fader.Stop()
	self.resetLoops()
	self.resetOnces()
	self.write()
}

// Fast forwards the loop group towards the start of the next cycle.
// Speed is the fraction of the remaining phase skipped on each tick,
// with 1 skipping the whole phase.
func (self *Channel) MoveNext(speed float64) {
	if self.syncPeriod && len(self.loops) > 0 {
		self.loops[0].SetFastForward(speed)
		return
	}
	for _, loop := range self.loops {
		loop.SetFastForward(speed)
	}
}

// Recomputes the weights without advancing time and hands them to
// the sink.
func (self *Channel) Refresh() { self.write() }

func (self *Channel) write() {
	self.computeWeights()
	if self.sink != nil {
		self.sink(self.weights)
	}
}

func (self *Channel) computeWeights() {
	lo, hi := self.semantics.Domain()
	fade := self.fader.Level()
	for i := range self.weights {
		weight := 0.0
		if self.loopGroupEnabled && self.loopEnabled[i] {
			weight += self.pairWeight(self.loops, i, lo, hi) * self.loopMagnification * fade
		}
		if self.onceGroupEnabled && self.onceEnabled[i] {
			weight += self.pairWeight(self.onces, i, lo, hi) * self.onceMagnification
		}
		self.weights[i] = self.semantics.Clamp(weight)
	}
}

// weight of one oscillator. Under any sync the timer comes from pair
// 0, and amplitude sync also takes its sampled values, since those
// are eased along pair 0's own cycle.
func (self *Channel) pairWeight(oscillators []*Oscillator, index int, lo, hi float64) float64 {
	clock, source := oscillators[index], oscillators[index]
	if self.syncPeriod || self.syncAmplitude {
		clock = oscillators[0]
	}
	if self.syncAmplitude {
		source = oscillators[0]
	}
	if !clock.processing {
		return 0
	}
	return source.weightAt(oscillators[index].param, clock.timer, lo, hi)
}

func (self *Channel) resetLoops() {
	for _, loop := range self.loops {
		loop.Reset()
	}
}

func (self *Channel) resetOnces() {
	for _, once := range self.onces {
		once.Reset()
	}
}

func (self *Channel) syncLoops() {
	if !self.syncPeriod || len(self.loops) == 0 {
		return
	}
	for _, loop := range self.loops[1:] {
		loop.share(self.loops[0], true, self.syncAmplitude)
	}
}

func (self *Channel) loopStopped() {
	if self.hooks.LoopStopped != nil {
		self.hooks.LoopStopped()
	}
}

func (self *Channel) cycleStarted(index int) {
	if self.hooks.CycleStarted != nil {
		self.hooks.CycleStarted(index)
	}
}
