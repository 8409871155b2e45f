package jitter

// Default magnification for dampers found by [BlendShape.CollectDampers].
const defaultDamperMagnification = 0.5

// A passive channel reading the live weight of another morph in order
// to attenuate the main morph of a [BlendShape]. A damper never writes
// to the morph it samples.
type Damper struct {
	Name          string  `yaml:"name"`
	Magnification float64 `yaml:"magnification"`

	target       MorphTarget
	index        int
	resolvedName string
	resolvedFor  MorphTarget
}

// Creates an unbound damper.
func NewDamper(name string, magnification float64) *Damper {
	return &Damper{Name: name, Magnification: magnification, index: -1}
}

// Binds the damper to a target, resolving the morph index by name.
func (self *Damper) Bind(target MorphTarget) {
	self.target = target
	self.resolve()
}

func (self *Damper) resolve() {
	self.index = MorphIndex(self.target, self.Name)
	self.resolvedName, self.resolvedFor = self.Name, self.target
}

// Returns the sampled weight normalized to [0, 1] and multiplied by
// the damper's magnification. Unbound dampers return 0.
func (self *Damper) Weight() float64 {
	return self.weightOn(self.target)
}

// samples target, rebinding first if it isn't the resolved one
func (self *Damper) weightOn(target MorphTarget) float64 {
	if self.Name != self.resolvedName || target != self.resolvedFor {
		self.Bind(target)
	}
	if self.index < 0 {
		return 0
	}
	return clamp01(self.target.MorphWeight(self.index)/MorphScale) * self.Magnification
}

// Returns the index of the sampled morph, or -1 if unresolved.
func (self *Damper) Index() int { return self.index }
