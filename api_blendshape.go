package jitter

import (
	"github.com/edwinsyarief/jitter/axis"
	"github.com/edwinsyarief/jitter/curve"
)

var _ Component = (*BlendShape)(nil)

// A morph animated by a [BlendShape]. The morph is looked up by name
// on the target, again every time the name changes.
type Morph struct {
	Name string `yaml:"name"`

	// Weight written when the combined jitter weight is 1, in
	// [0, MorphScale].
	Magnification float64 `yaml:"magnification"`

	index        int
	resolvedName string
	resolvedFor  MorphTarget
}

// Creates a morph entry.
func NewMorph(name string, magnification float64) *Morph {
	return &Morph{Name: name, Magnification: magnification, index: -1}
}

// Returns the resolved morph index on the last target written to, or
// -1 if unresolved.
func (self *Morph) Index() int { return self.index }

func (self *Morph) write(target MorphTarget, weight float64) {
	if self.Name != self.resolvedName || target != self.resolvedFor {
		self.index = MorphIndex(target, self.Name)
		self.resolvedName, self.resolvedFor = self.Name, target
	}
	if self.index < 0 {
		return
	}
	target.SetMorphWeight(self.index, clamp(weight*self.Magnification, 0, MorphScale))
}

// Jitters the weights of one or more morphs of a [MorphTarget].
//
// Every morph gets its own oscillators, all driven by the same loop and
// once parameters. The first morph is the main one: its weight is
// attenuated by every damper, and with Sync enabled the rest of the
// morphs copy its weight from before the attenuation.
type BlendShape struct {
	Target  MorphTarget
	Morphs  []*Morph
	Dampers []*Damper

	Loop *Parameter
	Once *Parameter

	Sync             bool
	OverrideOnce     bool
	PlayOnInit       bool
	LoopGroupEnabled bool
	OnceGroupEnabled bool

	// Event callbacks, applied on OnInit and OnConfigChanged.
	Hooks Hooks

	rng     Rand
	channel *Channel
}

// Creates a blend shape component with default parameters. If rng is
// nil a time-seeded default is used.
func NewBlendShape(target MorphTarget, rng Rand) *BlendShape {
	return &BlendShape{
		Target:           target,
		Loop:             NewParameter(curve.UpDown5(), axis.Unit, true),
		Once:             NewParameter(curve.UpDown1(), axis.Unit, false),
		PlayOnInit:       true,
		LoopGroupEnabled: true,
		OnceGroupEnabled: true,
		rng:              randOrDefault(rng),
	}
}

// Returns the underlying channel, or nil before OnInit.
func (self *BlendShape) Channel() *Channel { return self.channel }

// Returns the play state of the loop group.
func (self *BlendShape) State() PlayState {
	if self.channel == nil {
		return Stopped
	}
	return self.channel.State()
}

// Returns whether a once cycle is in progress.
func (self *BlendShape) IsOnceProcessing() bool {
	return self.channel != nil && self.channel.IsOnceProcessing()
}

// --- lifecycle ---

func (self *BlendShape) OnInit() {
	self.validate()
	self.build()
	if self.PlayOnInit {
		self.PlayLoop()
	}
}

func (self *BlendShape) OnTick(dt float64) {
	if self.channel == nil {
		return
	}
	self.channel.Tick(dt)
}

func (self *BlendShape) OnConfigChanged() {
	self.validate()
	if self.channel == nil {
		return
	}
	if self.channel.Len() != len(self.Morphs) {
		self.build()
		return
	}
	self.configure()
	self.channel.Refresh()
}

func (self *BlendShape) OnTeardown() {
	self.Initialize()
}

// --- playback ---

func (self *BlendShape) PlayLoop(magnification ...float64) {
	mag := magnificationArg(magnification)
	if self.channel != nil {
		self.channel.PlayLoop(mag)
	}
}

func (self *BlendShape) StopLoop() {
	if self.channel != nil {
		self.channel.StopLoop()
	}
}

func (self *BlendShape) FadeIn(seconds float64) {
	if self.channel != nil {
		self.LoopGroupEnabled = true
		self.channel.FadeIn(seconds)
	}
}

func (self *BlendShape) FadeOut(seconds float64) {
	if self.channel != nil {
		self.channel.FadeOut(seconds)
	}
}

func (self *BlendShape) PlayOnce(magnification ...float64) {
	mag := magnificationArg(magnification)
	if self.channel != nil {
		self.channel.PlayOnce(mag)
	}
}

func (self *BlendShape) Initialize() {
	if self.channel != nil {
		self.channel.Initialize()
	}
}

// Fast forwards the loop towards its next cycle. See [Channel.MoveNext].
func (self *BlendShape) MoveNext(speed float64) {
	if self.channel != nil {
		self.channel.MoveNext(speed)
	}
}

// --- discovery ---

// Replaces the morph list with every morph of the target currently
// above zero weight, using that weight as the magnification.
func (self *BlendShape) CollectMorphs() {
	if self.Target == nil {
		warnf("blend shape has no target to collect morphs from")
		return
	}
	self.Morphs = self.Morphs[:0]
	for i := range self.Target.MorphCount() {
		if weight := self.Target.MorphWeight(i); weight > 0 {
			self.Morphs = append(self.Morphs, NewMorph(self.Target.MorphName(i), weight))
		}
	}
	if len(self.Morphs) == 0 {
		warnf("no morphs with weight > 0 found")
	}
	self.OnConfigChanged()
}

// Replaces the damper list with every morph of the target currently
// above zero weight.
func (self *BlendShape) CollectDampers() {
	if self.Target == nil {
		warnf("blend shape has no target to collect dampers from")
		return
	}
	self.Dampers = self.Dampers[:0]
	for i := range self.Target.MorphCount() {
		if self.Target.MorphWeight(i) > 0 {
			damper := NewDamper(self.Target.MorphName(i), defaultDamperMagnification)
			damper.Bind(self.Target)
			self.Dampers = append(self.Dampers, damper)
		}
	}
	if len(self.Dampers) == 0 {
		warnf("no morphs with weight > 0 found")
	}
}

// --- internal ---

func (self *BlendShape) validate() {
	self.Loop.Adjust()
	self.Loop.Validate()
	self.Once.Adjust()
	self.Once.Validate()
	for _, morph := range self.Morphs {
		morph.Magnification = clamp(morph.Magnification, 0, MorphScale)
	}
	for _, damper := range self.Dampers {
		damper.Magnification = max(0, damper.Magnification)
		damper.Bind(self.Target)
	}
}

func (self *BlendShape) build() {
	loops := make([]*Parameter, len(self.Morphs))
	onces := make([]*Parameter, len(self.Morphs))
	for i := range self.Morphs {
		loops[i], onces[i] = self.Loop, self.Once
	}
	self.channel = NewChannel(axis.Unit, loops, onces, self.rng)
	self.channel.SetSink(self.apply)
	self.configure()
}

func (self *BlendShape) configure() {
	self.channel.SetGroupsEnabled(self.LoopGroupEnabled, self.OnceGroupEnabled)
	self.channel.SetOverrideOnce(self.OverrideOnce)
	self.channel.SetHooks(self.Hooks)
	for i := range self.Morphs {
		self.channel.SetPairEnabled(i, self.Loop.Enabled, self.Once.Enabled)
	}
}

// Returns the weight of the main morph after damper attenuation.
func (self *BlendShape) dampedWeight(weight float64) float64 {
	for _, damper := range self.Dampers {
		weight *= 1 - damper.weightOn(self.Target)
	}
	return axis.Unit.Clamp(weight)
}

func (self *BlendShape) apply(weights []float64) {
	if self.Target == nil || len(weights) == 0 {
		return
	}
	main := self.dampedWeight(weights[0])
	for i, morph := range self.Morphs {
		weight := weights[i]
		switch {
		case i == 0:
			weight = main
		case self.Sync:
			weight = weights[0]
		}
		morph.write(self.Target, weight)
	}
}
